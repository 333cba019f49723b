package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelmate-api/pkg/errs"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := CreateJWTToken("64f0c1a2b3d4e5f60718293a", "user@example.com", "employee", "secret")
	require.NoError(t, err)

	accountID, err := ParseJWTToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "64f0c1a2b3d4e5f60718293a", accountID)
}

func TestParseJWTToken_WrongSecret(t *testing.T) {
	token, err := CreateJWTToken("64f0c1a2b3d4e5f60718293a", "user@example.com", "employee", "secret")
	require.NoError(t, err)

	_, err = ParseJWTToken(token, "other-secret")
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestParseJWTToken_Expired(t *testing.T) {
	claims := jwt.MapClaims{
		"userId": "64f0c1a2b3d4e5f60718293a",
		"exp":    time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseJWTToken(token, "secret")
	assert.ErrorIs(t, err, errs.ErrExpiredToken)
}

func TestParseJWTToken_Garbage(t *testing.T) {
	_, err := ParseJWTToken("not.a.token", "secret")
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestParseJWTToken_MissingSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseJWTToken(token, "secret")
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}
