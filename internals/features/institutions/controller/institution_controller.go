package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cyberwarrior_backend/internals/features/institutions/dto"
	"cyberwarrior_backend/internals/features/institutions/model"
	helper "cyberwarrior_backend/internals/helpers"
)

type InstitutionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewInstitutionController(db *gorm.DB) *InstitutionController {
	return &InstitutionController{DB: db, Validate: validator.New()}
}

func (ctrl *InstitutionController) Create(c *fiber.Ctx) error {
	var req dto.CreateInstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	institution := req.ToModel()
	if err := ctrl.DB.Create(institution).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create institution")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Institution created", institution)
}

func (ctrl *InstitutionController) GetAll(c *fiber.Ctx) error {
	var institutions []model.InstitutionModel
	if err := ctrl.DB.Order("institution_name asc").Find(&institutions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch institutions")
	}
	return helper.Success(c, "OK", institutions)
}

func (ctrl *InstitutionController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var institution model.InstitutionModel
	if err := ctrl.DB.First(&institution, "institution_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Institution not found")
	}
	return helper.Success(c, "OK", institution)
}
