package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken_RoundTrip(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateToken("operator")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims["sub"])
}

func TestParseToken_RejectsOtherSigningMethods(t *testing.T) {
	SetSecret("test-secret")

	claims := jwt.MapClaims{
		"sub": "operator",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	// Signed with the right secret but the wrong algorithm.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	SetSecret("test-secret")
	token, err := GenerateToken("operator")
	require.NoError(t, err)

	SetSecret("another-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}
