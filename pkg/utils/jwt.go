package utils

import (
	"time"

	"github.com/golang-jwt/jwt"

	"travelmate-api/pkg/errs"
)

func CreateJWTToken(accountID string, email string, role string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userId"] = accountID
	claims["email"] = email
	claims["role"] = role
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

// ParseJWTToken validates the signature and expiry of a bearer token and
// returns the account id carried in its claims.
func ParseJWTToken(tokenString string, jwtSecretKey string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil {
		validationErr, ok := err.(*jwt.ValidationError)
		if ok && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", errs.ErrExpiredToken
		}
		return "", errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errs.ErrInvalidToken
	}

	accountID, ok := claims["userId"].(string)
	if !ok || accountID == "" {
		return "", errs.ErrInvalidToken
	}

	return accountID, nil
}
