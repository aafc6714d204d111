package utils

import (
	"testing"

	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	claims := model.JWTClaims{
		UserID: "00000000-0000-0000-0000-000000000001",
		Email:  "perawat@klinik.ac.id",
		Role:   "nurse",
		Name:   "Perawat Satu",
	}

	pair, err := GenerateTokenPair(claims, "test-secret", 1, 24)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	parsed, err := ValidateToken(pair.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Equal(t, claims.Email, parsed.Email)
	assert.Equal(t, claims.Role, parsed.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	pair, err := GenerateTokenPair(model.JWTClaims{UserID: "abc"}, "secret-a", 1, 24)
	require.NoError(t, err)

	_, err = ValidateToken(pair.AccessToken, "secret-b")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("bukan.token.jwt", "secret")
	assert.Error(t, err)
}
