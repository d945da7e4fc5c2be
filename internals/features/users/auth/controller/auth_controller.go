package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cyberwarrior_backend/internals/configs"
	"cyberwarrior_backend/internals/constants"
	authdto "cyberwarrior_backend/internals/features/users/auth/dto"
	authmodel "cyberwarrior_backend/internals/features/users/auth/model"
	"cyberwarrior_backend/internals/features/users/auth/service"
	usermodel "cyberwarrior_backend/internals/features/users/user/model"
	helper "cyberwarrior_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

/* ==========================
   REGISTER
========================== */

// Register creates a secretary account. In production accounts are seeded by the
// program admin; the endpoint stays rate limited.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authdto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	secretary := usermodel.SecretaryModel{
		SecretaryName:     strings.TrimSpace(req.Name),
		SecretaryEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		SecretaryPassword: string(hash),
		SecretaryIsActive: true,
	}
	instID, err := uuid.Parse(req.InstitutionID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid institutionId")
	}
	secretary.SecretaryInstitutionID = instID

	if err := ctrl.DB.Create(&secretary).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Secretary registered", fiber.Map{
		"id":    secretary.SecretaryID,
		"email": secretary.SecretaryEmail,
	})
}

/* ==========================
   LOGIN
========================== */

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authdto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var secretary usermodel.SecretaryModel
	if err := ctrl.DB.Where("secretary_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&secretary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(secretary.SecretaryPassword), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return ctrl.issueTokens(c, &secretary)
}

// LoginGoogle verifies a Google ID token and logs in an existing secretary.
// Unknown emails are rejected: secretary accounts are provisioned, never
// auto-created from Google.
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req authdto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if configs.GoogleClientID == "" {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Google login is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}

	var secretary usermodel.SecretaryModel
	if err := ctrl.DB.Where("secretary_email = ?", strings.ToLower(claimSet.Email)).
		First(&secretary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "No secretary account for this Google user")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return ctrl.issueTokens(c, &secretary)
}

/* ==========================
   REFRESH / LOGOUT
========================== */

func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		// body fallback for non-browser clients
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&body); err == nil {
			refreshCookie = strings.TrimSpace(body.RefreshToken)
		}
	}
	if refreshCookie == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	secretaryID, err := service.ParseRefreshToken(refreshCookie)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	known, err := service.RefreshTokenKnown(ctrl.DB, refreshCookie)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !known {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token unknown")
	}

	var secretary usermodel.SecretaryModel
	if err := ctrl.DB.First(&secretary, "secretary_id = ?", secretaryID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Account not found")
	}

	// rotate: drop the old record before issuing the new pair
	if err := service.RotateRefreshToken(ctrl.DB, refreshCookie); err != nil {
		log.Printf("[refresh] rotate failed: %v", err)
	}

	return ctrl.issueTokens(c, &secretary)
}

// Logout blacklists the current access token until its natural expiry.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - Missing token")
	}

	expiredAt := time.Now().Add(service.AccessTokenTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := authmodel.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		low := strings.ToLower(err.Error())
		if !strings.Contains(low, "duplicate key") && !strings.Contains(low, "unique") {
			log.Printf("[ERROR] logout blacklist: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
	}

	c.ClearCookie("access_token", "refresh_token")
	return helper.Success(c, "Logged out", nil)
}

/* ==========================
   internals
========================== */

func (ctrl *AuthController) issueTokens(c *fiber.Ctx, secretary *usermodel.SecretaryModel) error {
	if !secretary.SecretaryIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account has been deactivated")
	}

	access, err := service.CreateAccessToken(secretary, constants.RoleSecretary)
	if err != nil {
		log.Printf("[ERROR] access token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create access token")
	}
	refresh, err := service.CreateRefreshToken(ctrl.DB, secretary.SecretaryID, c.Get("User-Agent"), c.IP())
	if err != nil {
		log.Printf("[ERROR] refresh token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create refresh token")
	}

	// browser clients authenticate off this cookie; API clients use the
	// Authorization header with the token from the response body
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  time.Now().Add(service.AccessTokenTTL),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  time.Now().Add(service.RefreshTokenTTL),
	})

	return helper.Success(c, "Login success", authdto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User: authdto.LoginUserDTO{
			ID:            secretary.SecretaryID.String(),
			Name:          secretary.SecretaryName,
			Email:         secretary.SecretaryEmail,
			Role:          constants.RoleSecretary,
			InstitutionID: secretary.SecretaryInstitutionID.String(),
		},
	})
}
