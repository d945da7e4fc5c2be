package service

import (
	"crypto/sha256"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"cyberwarrior_backend/internals/configs"
	authmodel "cyberwarrior_backend/internals/features/users/auth/model"
	usermodel "cyberwarrior_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 2 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

/* ==========================
   TOKEN CREATION
========================== */

// CreateAccessToken builds the short-lived JWT the role middleware consumes.
func CreateAccessToken(secretary *usermodel.SecretaryModel, role string) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret is not configured")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":        secretary.SecretaryID.String(),
		"user_name":      secretary.SecretaryName,
		"role":           role,
		"institution_id": secretary.SecretaryInstitutionID.String(),
		"iat":            now.Unix(),
		"exp":            now.Add(AccessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

// CreateRefreshToken issues a refresh JWT and records its hash for rotation.
func CreateRefreshToken(db *gorm.DB, secretaryID uuid.UUID, userAgent, ip string) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT refresh secret is not configured")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": secretaryID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", err
	}

	hash := HashRefreshToken(token)
	rec := authmodel.RefreshToken{
		SecretaryID: secretaryID,
		TokenHash:   hash,
		ExpiresAt:   now.Add(RefreshTokenTTL),
	}
	if userAgent != "" {
		rec.UserAgent = &userAgent
	}
	if ip != "" {
		rec.IP = &ip
	}
	if err := db.Create(&rec).Error; err != nil {
		return "", err
	}
	return token, nil
}

/* ==========================
   TOKEN VERIFICATION
========================== */

// ParseRefreshToken validates the refresh JWT and returns the secretary id.
func ParseRefreshToken(tokenString string) (uuid.UUID, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	return id, nil
}

// RotateRefreshToken deletes the old record after a successful refresh.
func RotateRefreshToken(db *gorm.DB, oldToken string) error {
	return db.Where("token_hash = ?", HashRefreshToken(oldToken)).
		Delete(&authmodel.RefreshToken{}).Error
}

// RefreshTokenKnown reports whether the hash is still stored (not rotated out).
func RefreshTokenKnown(db *gorm.DB, token string) (bool, error) {
	var count int64
	err := db.Model(&authmodel.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", HashRefreshToken(token)).
		Count(&count).Error
	return count > 0, err
}

func HashRefreshToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}
