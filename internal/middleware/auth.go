package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelmate-api/internal/dto"
	"travelmate-api/internal/repository"
	"travelmate-api/pkg/errs"
	"travelmate-api/pkg/response"
	"travelmate-api/pkg/utils"
)

const identityKey = "identity"

// Authenticate verifies the bearer token, resolves the referenced
// account and attaches a typed identity to the request. An account
// deleted after token issuance fails here; there is no revocation list.
func Authenticate(repo repository.AccountRepository, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			accountID, err := utils.ParseJWTToken(strings.TrimPrefix(authHeader, "Bearer "), jwtSecret)
			if err != nil {
				return response.WriteErrorResponse(c, err, nil)
			}

			oid, err := primitive.ObjectIDFromHex(accountID)
			if err != nil {
				return response.WriteErrorResponse(c, errs.ErrInvalidToken, nil)
			}

			account, err := repo.GetAccountByID(c.Request().Context(), oid)
			if err != nil {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			c.Set(identityKey, dto.Identity{
				ID:             account.ID,
				Email:          account.Email,
				Name:           account.Name,
				Avatar:         account.Avatar,
				Role:           account.Role,
				EmployeeNumber: account.EmployeeNumber,
			})

			return next(c)
		}
	}
}

// IdentityFrom returns the identity resolved by Authenticate. The second
// return is false when no authentication middleware ran for the route.
func IdentityFrom(c echo.Context) (dto.Identity, bool) {
	identity, ok := c.Get(identityKey).(dto.Identity)
	return identity, ok
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
		}
		if !identity.IsAdmin() {
			return response.WriteErrorResponse(c, errs.ErrAdminOnly, nil)
		}
		return next(c)
	}
}

func RequireEmployee(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
		}
		if !identity.IsEmployee() {
			return response.WriteErrorResponse(c, errs.ErrEmployeeOnly, nil)
		}
		return next(c)
	}
}
