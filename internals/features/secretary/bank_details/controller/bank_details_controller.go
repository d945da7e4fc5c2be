package controller

import (
	"log"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	usermodel "cyberwarrior_backend/internals/features/users/user/model"
	"cyberwarrior_backend/internals/features/secretary/bank_details/dto"
	helper "cyberwarrior_backend/internals/helpers"
)

// RBI format: four bank letters, a zero, six branch characters.
var ifscPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

type BankDetailsController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBankDetailsController(db *gorm.DB) *BankDetailsController {
	return &BankDetailsController{DB: db, Validate: validator.New()}
}

// Update stores a secretary's payout details. Response texts are kept
// exactly as older clients expect them.
func (ctrl *BankDetailsController) Update(c *fiber.Ctx) error {
	var req dto.UpdateBankDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing Fields")
	}

	ifsc := strings.ToUpper(strings.TrimSpace(req.IFSCCode))
	if !ifscPattern.MatchString(ifsc) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid IFSC code")
	}

	var secretary usermodel.SecretaryModel
	if err := ctrl.DB.Select("secretary_id").
		First(&secretary, "secretary_id = ?", req.ID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Secretary Doesn't Exist")
	}

	updates := map[string]interface{}{
		"secretary_bank_acc_number": req.AccountNumber,
		"secretary_ifsc_code":       ifsc,
		"secretary_bank_name":       req.BankName,
		"secretary_bank_branch":     req.BranchName,
	}
	if err := ctrl.DB.Model(&usermodel.SecretaryModel{}).
		Where("secretary_id = ?", req.ID).
		Updates(updates).Error; err != nil {
		log.Printf("[BANK] update failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update bank details")
	}

	return helper.Success(c, "Secretary Updated Successfully", fiber.Map{
		"secretary_id": req.ID,
	})
}
