package controller

import (
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	groupservice "cyberwarrior_backend/internals/features/secretary/groups/service"
	"cyberwarrior_backend/internals/features/secretary/performance/dto"
	"cyberwarrior_backend/internals/features/secretary/performance/model"
	"cyberwarrior_backend/internals/features/secretary/performance/service"
	helper "cyberwarrior_backend/internals/helpers"
)

type PerformanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPerformanceController(db *gorm.DB) *PerformanceController {
	return &PerformanceController{DB: db, Validate: validator.New()}
}

// CreateWarrior enrols a warrior with their season targets, resolving the
// team by name within the institution.
func (ctrl *PerformanceController) CreateWarrior(c *fiber.Ctx) error {
	var req dto.CreateWarriorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing required fields")
	}

	institutionID, err := institutionIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Institution not resolved from session")
	}

	targetsJSON, err := sonic.Marshal(req.Targets)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid targets")
	}

	var created model.WarriorModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		group, err := groupservice.FindOrCreateGroup(tx, institutionID, req.GroupName)
		if err != nil {
			return err
		}
		created = model.WarriorModel{
			WarriorName:          req.Name,
			WarriorTargets:       datatypes.JSON(targetsJSON),
			WarriorGroupID:       group.GroupID,
			WarriorInstitutionID: institutionID,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		log.Printf("[WARRIOR] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to enrol warrior")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Warrior enrolled", created)
}

// GetAll lists the institution's warriors.
func (ctrl *PerformanceController) GetAll(c *fiber.Ctx) error {
	institutionID, err := institutionIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Institution not resolved from session")
	}

	var warriors []model.WarriorModel
	if err := ctrl.DB.
		Where("warrior_institution_id = ?", institutionID).
		Order("warrior_name asc").
		Find(&warriors).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch warriors")
	}
	return helper.Success(c, "OK", warriors)
}

// GetByID returns one warrior's targets next to their computed achievements
// and contribution records.
func (ctrl *PerformanceController) GetByID(c *fiber.Ctx) error {
	warrior, err := ctrl.findWarrior(c)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Warrior not found")
	}

	achievement, err := service.ComputeAchievement(ctrl.DB, warrior)
	if err != nil {
		log.Printf("[WARRIOR] achievement aggregation failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute performance")
	}

	var challenges []model.FrameChallengeModel
	if err := ctrl.DB.Where("challenge_warrior_id = ?", warrior.WarriorID).
		Order("challenge_date asc").Find(&challenges).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute performance")
	}
	var posts []model.SocialMediaPostModel
	if err := ctrl.DB.Where("post_warrior_id = ?", warrior.WarriorID).
		Order("post_date asc").Find(&posts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute performance")
	}
	var coverages []model.MediaCoverageModel
	if err := ctrl.DB.Where("coverage_warrior_id = ?", warrior.WarriorID).
		Order("coverage_date asc").Find(&coverages).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute performance")
	}
	var links []model.ActivityLinkModel
	if err := ctrl.DB.Where("link_warrior_id = ?", warrior.WarriorID).
		Order("link_date asc").Find(&links).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute performance")
	}

	return helper.Success(c, "OK", fiber.Map{
		"warrior":           warrior,
		"achievement":       achievement,
		"frame_challenges":  challenges,
		"social_media_posts": posts,
		"media_coverages":   coverages,
		"activity_links":    links,
	})
}

// AddFrameChallenge records a frame-challenge completion for a warrior.
func (ctrl *PerformanceController) AddFrameChallenge(c *fiber.Ctx) error {
	warrior, err := ctrl.findWarrior(c)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Warrior not found")
	}

	var req dto.AddFrameChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing required fields")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	challenge := model.FrameChallengeModel{
		ChallengeWarriorID: warrior.WarriorID,
		ChallengeDate:      date,
		ChallengeName:      req.ChallengeName,
	}
	if err := ctrl.DB.Create(&challenge).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save frame challenge")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Frame challenge added!", challenge)
}

// RemoveFrameChallenge deletes one frame-challenge entry.
func (ctrl *PerformanceController) RemoveFrameChallenge(c *fiber.Ctx) error {
	warrior, err := ctrl.findWarrior(c)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Warrior not found")
	}

	res := ctrl.DB.
		Where("challenge_id = ? AND challenge_warrior_id = ?", c.Params("challengeId"), warrior.WarriorID).
		Delete(&model.FrameChallengeModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to remove frame challenge")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Frame challenge not found")
	}
	return helper.Success(c, "Frame challenge removed!", nil)
}

// AddSocialMediaPost records a batch of posts for a warrior.
func (ctrl *PerformanceController) AddSocialMediaPost(c *fiber.Ctx) error {
	warrior, err := ctrl.findWarrior(c)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Warrior not found")
	}

	var req dto.AddSocialMediaPostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing required fields")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	post := model.SocialMediaPostModel{
		PostWarriorID: warrior.WarriorID,
		PostDate:      date,
		PostCount:     req.NumberOfPosts,
		PostAccountID: req.AccountID,
	}
	if err := ctrl.DB.Create(&post).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save social media post")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Post recorded", post)
}

// AddMediaCoverage records a media mention for a warrior.
func (ctrl *PerformanceController) AddMediaCoverage(c *fiber.Ctx) error {
	warrior, err := ctrl.findWarrior(c)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Warrior not found")
	}

	var req dto.AddMediaCoverageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing required fields")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	coverage := model.MediaCoverageModel{
		CoverageWarriorID: warrior.WarriorID,
		CoverageDate:      date,
		CoverageMediaName: req.MediaName,
		CoverageLink:      req.Link,
	}
	if err := ctrl.DB.Create(&coverage).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save media coverage")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Media coverage recorded", coverage)
}

// ReplacePresentationLinks swaps out a warrior's proof links on one
// presentation with the submitted set.
func (ctrl *PerformanceController) ReplacePresentationLinks(c *fiber.Ctx) error {
	return ctrl.replaceLinks(c, model.LinkParentPresentation)
}

// ReplaceImpactLinks swaps out a warrior's proof links on one impact
// activity with the submitted set.
func (ctrl *PerformanceController) ReplaceImpactLinks(c *fiber.Ctx) error {
	return ctrl.replaceLinks(c, model.LinkParentImpact)
}

func (ctrl *PerformanceController) replaceLinks(c *fiber.Ctx, parentType string) error {
	warrior, err := ctrl.findWarrior(c)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Warrior not found")
	}

	parentID, err := uuid.Parse(c.Params("entryId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid entry id")
	}

	var req dto.ReplaceLinksRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing required fields")
	}

	buildRows := func(kind string, links []dto.DatedLink) ([]model.ActivityLinkModel, error) {
		rows := make([]model.ActivityLinkModel, 0, len(links))
		for _, l := range links {
			date, err := time.Parse("2006-01-02", l.Date)
			if err != nil {
				return nil, err
			}
			rows = append(rows, model.ActivityLinkModel{
				LinkWarriorID:  warrior.WarriorID,
				LinkParentType: parentType,
				LinkParentID:   parentID,
				LinkKind:       kind,
				LinkDate:       date,
				LinkURL:        l.URL,
			})
		}
		return rows, nil
	}

	media, err := buildRows(model.LinkKindMedia, req.MediaLinks)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid link date, expected YYYY-MM-DD")
	}
	social, err := buildRows(model.LinkKindSocial, req.SocialMediaLinks)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid link date, expected YYYY-MM-DD")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("link_warrior_id = ? AND link_parent_type = ? AND link_parent_id = ?",
				warrior.WarriorID, parentType, parentID).
			Delete(&model.ActivityLinkModel{}).Error; err != nil {
			return err
		}
		rows := append(media, social...)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		log.Printf("[WARRIOR] link update failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save links")
	}

	return helper.Success(c, "All changes saved successfully!", nil)
}

func (ctrl *PerformanceController) findWarrior(c *fiber.Ctx) (*model.WarriorModel, error) {
	institutionID, err := institutionIDFromLocals(c)
	if err != nil {
		return nil, err
	}
	var warrior model.WarriorModel
	if err := ctrl.DB.
		First(&warrior, "warrior_id = ? AND warrior_institution_id = ?", c.Params("id"), institutionID).Error; err != nil {
		return nil, err
	}
	return &warrior, nil
}

func institutionIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("institution_id").(string)
	return uuid.Parse(raw)
}
