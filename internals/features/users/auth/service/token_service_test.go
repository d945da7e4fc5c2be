package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberwarrior_backend/internals/configs"
	usermodel "cyberwarrior_backend/internals/features/users/user/model"
)

func TestCreateAccessTokenClaims(t *testing.T) {
	configs.JWTSecret = "test-secret"

	secretary := &usermodel.SecretaryModel{
		SecretaryID:            uuid.New(),
		SecretaryName:          "Akash T",
		SecretaryInstitutionID: uuid.New(),
	}

	token, err := CreateAccessToken(secretary, "SECRETARY")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, secretary.SecretaryID.String(), claims["user_id"])
	assert.Equal(t, "Akash T", claims["user_name"])
	assert.Equal(t, "SECRETARY", claims["role"])
	assert.Equal(t, secretary.SecretaryInstitutionID.String(), claims["institution_id"])

	exp := int64(claims["exp"].(float64))
	iat := int64(claims["iat"].(float64))
	assert.Equal(t, int64(AccessTokenTTL/time.Second), exp-iat)
}

func TestCreateAccessTokenRequiresSecret(t *testing.T) {
	configs.JWTSecret = ""
	_, err := CreateAccessToken(&usermodel.SecretaryModel{}, "SECRETARY")
	assert.Error(t, err)
}

func TestParseRefreshTokenRoundTrip(t *testing.T) {
	configs.JWTRefreshSecret = "refresh-secret"

	id := uuid.New()
	now := time.Now().UTC()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": id.String(),
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}).SignedString([]byte(configs.JWTRefreshSecret))
	require.NoError(t, err)

	got, err := ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParseRefreshTokenRejectsBadSignature(t *testing.T) {
	configs.JWTRefreshSecret = "refresh-secret"

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestHashRefreshTokenIsStable(t *testing.T) {
	a := HashRefreshToken("token-one")
	b := HashRefreshToken("token-one")
	c := HashRefreshToken("token-two")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}
