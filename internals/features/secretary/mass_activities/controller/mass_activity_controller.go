package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	institutionmodel "cyberwarrior_backend/internals/features/institutions/model"
	"cyberwarrior_backend/internals/features/secretary/mass_activities/dto"
	"cyberwarrior_backend/internals/features/secretary/mass_activities/model"
	helper "cyberwarrior_backend/internals/helpers"
)

type MassActivityController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMassActivityController(db *gorm.DB) *MassActivityController {
	return &MassActivityController{DB: db, Validate: validator.New()}
}

// Create records a mass activity. The institution comes from the request body
// and must exist; omitting it is the one required-field failure with its own
// message.
func (ctrl *MassActivityController) Create(c *fiber.Ctx) error {
	var req dto.CreateMassActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.InstitutionID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing required fields (institutionId is mandatory)")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing required fields")
	}

	institutionID, err := uuid.Parse(req.InstitutionID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid institutionId")
	}
	var institution institutionmodel.InstitutionModel
	if err := ctrl.DB.First(&institution, "institution_id = ?", institutionID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Institution not found")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	participants := req.Participants.Int()
	if participants <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Participants must be greater than zero")
	}

	rawUser, _ := c.Locals("user_id").(string)
	secretaryID, err := uuid.Parse(rawUser)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid session")
	}

	created := model.MassActivityModel{
		MassActivityName:      req.ActivityName,
		MassDescription:       req.ActivityDescription,
		MassDate:              date,
		MassDuration:          req.Duration,
		MassLocation:          req.Location,
		MassParticipantsCount: participants,
		MassStakeholders:      req.Stakeholders,
		MassSocialMediaLinks:  pq.StringArray(req.SocialMediaLinks),
		MassMediaLinks:        pq.StringArray(req.MediaLinks),
		MassInstitutionID:     institutionID,
		MassSecretaryID:       secretaryID,
	}
	if err := ctrl.DB.Create(&created).Error; err != nil {
		log.Printf("[MASS] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save mass activity")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Mass activity recorded", created)
}

// GetAll lists the institution's mass activities, newest first.
func (ctrl *MassActivityController) GetAll(c *fiber.Ctx) error {
	raw, _ := c.Locals("institution_id").(string)
	institutionID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Institution not resolved from session")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.MassActivityModel{}).
		Where("mass_institution_id = ?", institutionID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch mass activities")
	}

	var activities []model.MassActivityModel
	if err := base.
		Order("mass_date desc, mass_created_at desc").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&activities).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch mass activities")
	}

	return helper.Success(c, "OK", fiber.Map{
		"mass_activities": activities,
		"pagination":      helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(activities)),
	})
}
