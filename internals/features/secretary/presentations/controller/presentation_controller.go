package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	groupservice "cyberwarrior_backend/internals/features/secretary/groups/service"
	"cyberwarrior_backend/internals/features/secretary/presentations/dto"
	"cyberwarrior_backend/internals/features/secretary/presentations/model"
	"cyberwarrior_backend/internals/features/secretary/presentations/service"
	surveyservice "cyberwarrior_backend/internals/features/secretary/surveys/service"
	helper "cyberwarrior_backend/internals/helpers"
)

type PresentationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPresentationController(db *gorm.DB) *PresentationController {
	return &PresentationController{DB: db, Validate: validator.New()}
}

// Create records a school presentation together with its per-grade audience
// rows. Totals are computed server-side from the rows that belong to the
// submitted class band.
func (ctrl *PresentationController) Create(c *fiber.Ctx) error {
	var req dto.CreatePresentationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing required fields")
	}

	if _, ok := service.RowsForClassGroup(req.ClassGroup); !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class group")
	}
	if req.Rating != "" && !service.ValidRating(req.Rating) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid rating")
	}
	if req.Medium != "" && !service.ValidMedium(req.Medium) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid medium")
	}

	date, err := time.Parse("2006-01-02", req.PresentationDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	rows := make([]service.StudentClassCount, 0, len(req.StudentData))
	for _, sc := range req.StudentData {
		if sc.BoysCount < 0 || sc.GirlsCount < 0 {
			return helper.Error(c, fiber.StatusBadRequest, "Student counts cannot be negative")
		}
		rows = append(rows, service.StudentClassCount{
			ClassType: sc.ClassType,
			Boys:      sc.BoysCount,
			Girls:     sc.GirlsCount,
		})
	}

	totals := service.CalculateStudentTotals(req.ClassGroup, rows)
	if totals.Total == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "At least one student is required for the selected class group")
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

	var created model.PresentationModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		group, err := groupservice.FindOrCreateGroup(tx, institutionID, req.CyberWarriors)
		if err != nil {
			return err
		}

		created = model.PresentationModel{
			PresentationSchoolName:    req.SchoolName,
			PresentationAddress:       req.Address,
			PresentationPhoneNo:       req.PhoneNo,
			PresentationEmailID:       req.EmailID,
			PresentationPrincipalName: req.PrincipalName,
			PresentationCity:          req.City,
			PresentationTaluka:        req.Taluka,
			PresentationDistrict:      req.District,
			PresentationMedium:        req.Medium,
			PresentationDate:          date,
			PresentationTimeFrom:      req.TimeFrom,
			PresentationTimeTo:        req.TimeTo,
			PresentationClassGroup:    req.ClassGroup,
			PresentationRating:        req.Rating,
			PresentationRemarks:       req.Remarks,
			PresentationTotalBoys:     totals.Boys,
			PresentationTotalGirls:    totals.Girls,
			PresentationTotalStudents: totals.Total,
			PresentationGroupID:       group.GroupID,
			PresentationInstitutionID: institutionID,
			PresentationSecretaryID:   secretaryID,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		classes := make([]model.PresentationStudentClassModel, 0, len(req.StudentData))
		for _, sc := range req.StudentData {
			classes = append(classes, model.PresentationStudentClassModel{
				StudentClassPresentationID: created.PresentationID,
				StudentClassType:           sc.ClassType,
				StudentClassLabel:          service.MapClassType(sc.ClassType),
				StudentClassBoysCount:      sc.BoysCount,
				StudentClassGirlsCount:     sc.GirlsCount,
			})
		}
		return tx.Create(&classes).Error
	})
	if err != nil {
		log.Printf("[PRESENTATION] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save presentation")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Presentation recorded", created)
}

// AttachFeedback validates the Digital Behavior Survey counts against the
// presentation's stored audience size and persists them. Unbalanced question
// groups come back as 422 with one message per failing group.
func (ctrl *PresentationController) AttachFeedback(c *fiber.Ctx) error {
	id := c.Params("id")

	var presentation model.PresentationModel
	if err := ctrl.DB.First(&presentation, "presentation_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Presentation not found")
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

	variant, ok := surveyservice.VariantForClassGroup(presentation.PresentationClassGroup)
	if !ok {
		return helper.Error(c, fiber.StatusInternalServerError, "Presentation has no survey variant")
	}

	if errs := surveyservice.Validate(variant, counts, presentation.PresentationTotalStudents); len(errs) > 0 {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Feedback does not balance", errs)
	}

	if err := ctrl.DB.Model(&presentation).
		Update("presentation_feedback", datatypes.JSON(req.FeedbackData)).Error; err != nil {
		log.Printf("[PRESENTATION] feedback update failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save feedback")
	}

	return helper.Success(c, "Feedback saved", fiber.Map{
		"presentation_id": presentation.PresentationID,
	})
}

// GetAll lists the institution's presentations, newest first, with paging.
func (ctrl *PresentationController) GetAll(c *fiber.Ctx) error {
	institutionID, err := institutionIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Institution not resolved from session")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	base := ctrl.DB.Model(&model.PresentationModel{}).
		Where("presentation_institution_id = ?", institutionID)
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch presentations")
	}

	var presentations []model.PresentationModel
	if err := base.
		Preload("StudentClasses").
		Order("presentation_date desc, presentation_created_at desc").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&presentations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch presentations")
	}

	return helper.Success(c, "OK", fiber.Map{
		"presentations": presentations,
		"pagination":    helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(presentations)),
	})
}

// GetByID fetches one presentation with its grade rows.
func (ctrl *PresentationController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var presentation model.PresentationModel
	if err := ctrl.DB.Preload("StudentClasses").
		First(&presentation, "presentation_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Presentation not found")
	}
	return helper.Success(c, "OK", presentation)
}

func institutionIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("institution_id").(string)
	return uuid.Parse(raw)
}
