package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	groupservice "cyberwarrior_backend/internals/features/secretary/groups/service"
	"cyberwarrior_backend/internals/features/secretary/impact_activities/dto"
	"cyberwarrior_backend/internals/features/secretary/impact_activities/model"
	surveyservice "cyberwarrior_backend/internals/features/secretary/surveys/service"
	helper "cyberwarrior_backend/internals/helpers"
)

type ImpactActivityController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewImpactActivityController(db *gorm.DB) *ImpactActivityController {
	return &ImpactActivityController{DB: db, Validate: validator.New()}
}

// Create records an outreach activity. The team named in cyberWarriors is
// resolved (or created) within the secretary's institution.
func (ctrl *ImpactActivityController) Create(c *fiber.Ctx) error {
	var req dto.CreateImpactActivityRequest
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

	participants := req.Participants.Int()
	if participants <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Participants must be greater than zero")
	}
	if req.ActivityDuration.Int() < 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Activity duration cannot be negative")
	}

	institutionID, err := institutionIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Institution not resolved from session")
	}
	rawUser, _ := c.Locals("user_id").(string)
	secretaryID, err := uuid.Parse(rawUser)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid session")
	}

	var created model.ImpactActivityModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		group, err := groupservice.FindOrCreateGroup(tx, institutionID, req.CyberWarriors)
		if err != nil {
			return err
		}

		created = model.ImpactActivityModel{
			ImpactOrganizationName:  req.Organization,
			ImpactLeaderName:        req.LeaderName,
			ImpactMessagePropagated: req.MessagePropagated,
			ImpactDate:              date,
			ImpactDurationMinutes:   req.ActivityDuration.Int(),
			ImpactLocation:          req.Location,
			ImpactParticipantsCount: participants,
			ImpactResourcesInvolved: req.ResourceInvolved,
			ImpactSocialMediaLinks:  pq.StringArray(req.SocialLinks),
			ImpactMediaLinks:        pq.StringArray(req.MediaLinks),
			ImpactRemarks:           req.Remarks,
			ImpactGroupID:           group.GroupID,
			ImpactInstitutionID:     institutionID,
			ImpactSecretaryID:       secretaryID,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		log.Printf("[IMPACT] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save impact activity")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Impact activity recorded", created)
}

// AttachFeedback validates the participant survey counts against the stored
// participant count before persisting them.
func (ctrl *ImpactActivityController) AttachFeedback(c *fiber.Ctx) error {
	id := c.Params("id")

	var activity model.ImpactActivityModel
	if err := ctrl.DB.First(&activity, "impact_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Impact activity not found")
	}

	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if len(req.FeedbackData) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Missing required fields")
	}

	counts, err := surveyservice.ExtractCounts(req.FeedbackData)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Feedback counts must be whole numbers")
	}

	if errs := surveyservice.Validate(surveyservice.VariantImpact, counts, activity.ImpactParticipantsCount); len(errs) > 0 {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Feedback does not balance", errs)
	}

	if err := ctrl.DB.Model(&activity).
		Update("impact_feedback", datatypes.JSON(req.FeedbackData)).Error; err != nil {
		log.Printf("[IMPACT] feedback update failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save feedback")
	}

	return helper.Success(c, "Feedback saved", fiber.Map{"impact_id": activity.ImpactID})
}

// GetAll lists the institution's impact activities, newest first.
func (ctrl *ImpactActivityController) GetAll(c *fiber.Ctx) error {
	institutionID, err := institutionIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Institution not resolved from session")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.ImpactActivityModel{}).
		Where("impact_institution_id = ?", institutionID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch impact activities")
	}

	var activities []model.ImpactActivityModel
	if err := base.
		Order("impact_date desc, impact_created_at desc").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&activities).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch impact activities")
	}

	return helper.Success(c, "OK", fiber.Map{
		"impact_activities": activities,
		"pagination":        helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(activities)),
	})
}

func institutionIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("institution_id").(string)
	return uuid.Parse(raw)
}
