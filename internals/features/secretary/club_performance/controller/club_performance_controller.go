package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"cyberwarrior_backend/internals/features/secretary/club_performance/model"
	"cyberwarrior_backend/internals/features/secretary/club_performance/service"
	helper "cyberwarrior_backend/internals/helpers"
)

type ClubPerformanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClubPerformanceController(db *gorm.DB) *ClubPerformanceController {
	return &ClubPerformanceController{DB: db, Validate: validator.New()}
}

// GetDashboard returns the institution's commitment-versus-achievement
// summary, seeding default commitments on first access.
func (ctrl *ClubPerformanceController) GetDashboard(c *fiber.Ctx) error {
	institutionID, err := institutionIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Institution not resolved from session")
	}

	dashboard, err := service.BuildDashboard(ctrl.DB, institutionID)
	if err != nil {
		log.Printf("[CLUB] dashboard aggregation failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}
	return helper.Success(c, "OK", dashboard)
}

// GetCommitments returns the raw commitment row for editing.
func (ctrl *ClubPerformanceController) GetCommitments(c *fiber.Ctx) error {
	institutionID, err := institutionIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Institution not resolved from session")
	}

	commitments, err := service.LoadCommitments(ctrl.DB, institutionID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch commitments")
	}
	return helper.Success(c, "OK", commitments)
}

type updateCommitmentsRequest struct {
	Sensitization    *int `json:"sensitization" validate:"omitempty,min=0"`
	Presentations    *int `json:"presentations" validate:"omitempty,min=0"`
	ImpactActivities *int `json:"impactActivities" validate:"omitempty,min=0"`
	ImpactOutreach   *int `json:"impactOutreach" validate:"omitempty,min=0"`
	MassActivities   *int `json:"massActivities" validate:"omitempty,min=0"`
	MassOutreach     *int `json:"massOutreach" validate:"omitempty,min=0"`
	SocialMediaPosts *int `json:"socialMediaPosts" validate:"omitempty,min=0"`
	FrameChallenge   *int `json:"frameChallenge" validate:"omitempty,min=0"`
	MediaCoverage    *int `json:"mediaCoverage" validate:"omitempty,min=0"`
	BookletDownloads *int `json:"bookletDownloads" validate:"omitempty,min=0"`
	Weeks            *int `json:"weeks" validate:"omitempty,min=1"`

	BookletDownloadsAchieved *int `json:"bookletDownloadsAchieved" validate:"omitempty,min=0"`
}

// UpdateCommitments patches individual commitment values; omitted fields are
// left untouched.
func (ctrl *ClubPerformanceController) UpdateCommitments(c *fiber.Ctx) error {
	institutionID, err := institutionIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Institution not resolved from session")
	}

	var req updateCommitmentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, err := service.LoadCommitments(ctrl.DB, institutionID); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update commitments")
	}

	updates := map[string]interface{}{}
	set := func(column string, v *int) {
		if v != nil {
			updates[column] = *v
		}
	}
	set("commitment_sensitization", req.Sensitization)
	set("commitment_presentations", req.Presentations)
	set("commitment_impact_activities", req.ImpactActivities)
	set("commitment_impact_outreach", req.ImpactOutreach)
	set("commitment_mass_activities", req.MassActivities)
	set("commitment_mass_outreach", req.MassOutreach)
	set("commitment_social_media_posts", req.SocialMediaPosts)
	set("commitment_frame_challenge", req.FrameChallenge)
	set("commitment_media_coverage", req.MediaCoverage)
	set("commitment_booklet_downloads", req.BookletDownloads)
	set("commitment_weeks", req.Weeks)
	set("booklet_downloads_achieved", req.BookletDownloadsAchieved)

	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(&model.ClubCommitmentModel{}).
		Where("commitment_institution_id = ?", institutionID).
		Updates(updates).Error; err != nil {
		log.Printf("[CLUB] commitment update failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update commitments")
	}
	return helper.Success(c, "Commitments updated", nil)
}

func institutionIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("institution_id").(string)
	return uuid.Parse(raw)
}
