package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer   = http.StatusInternalServerError
	ErrStatusClient           = http.StatusBadRequest
	ErrStatusUnauthorized     = http.StatusUnauthorized
	ErrStatusNoPermission     = http.StatusForbidden
	ErrStatusNotFound         = http.StatusNotFound
	ErrStatusEmailAlreadyUsed = http.StatusBadRequest
	ErrStatusBadGateway       = http.StatusBadGateway
)

var (
	ErrInternalServer          = errors.New("Internal server error")
	ErrClient                  = errors.New("Bad request")
	ErrMissingFields           = errors.New("Missing required fields")
	ErrNotLoggedIn             = errors.New("Unauthorized access")
	ErrInvalidCredentialsEmail = errors.New("Email or password is incorrect")
	ErrUnauthorized            = errors.New("Forbidden access")
	ErrAdminOnly               = errors.New("Access denied. Admin only.")
	ErrEmployeeOnly            = errors.New("Access denied. Employee or Admin only.")
	ErrNotFound                = errors.New("Resource not found")
	ErrAccountNotFound         = errors.New("Account not found")
	ErrEmailAlreadyUsed        = errors.New("Account already exists")
	ErrExpiredToken            = errors.New("Token has expired")
	ErrInvalidToken            = errors.New("Invalid token")
	ErrInvalidStatus           = errors.New("Invalid status value")
	ErrInvalidLocation         = errors.New("Invalid location value")
	ErrUnknownCurrency         = errors.New("Unknown currency code")
	ErrCityNotFound            = errors.New("City not found")
	ErrWeatherUnavailable      = errors.New("Weather service is unavailable")
)

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrMissingFields:           ErrStatusClient,
	ErrNotLoggedIn:             ErrStatusUnauthorized,
	ErrInvalidCredentialsEmail: ErrStatusUnauthorized,
	ErrUnauthorized:            ErrStatusNoPermission,
	ErrAdminOnly:               ErrStatusNoPermission,
	ErrEmployeeOnly:            ErrStatusNoPermission,
	ErrNotFound:                ErrStatusNotFound,
	ErrAccountNotFound:         ErrStatusNotFound,
	ErrEmailAlreadyUsed:        ErrStatusEmailAlreadyUsed,
	ErrExpiredToken:            ErrStatusUnauthorized,
	ErrInvalidToken:            ErrStatusUnauthorized,
	ErrInvalidStatus:           ErrStatusClient,
	ErrInvalidLocation:         ErrStatusClient,
	ErrUnknownCurrency:         ErrStatusClient,
	ErrCityNotFound:            ErrStatusNotFound,
	ErrWeatherUnavailable:      ErrStatusBadGateway,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
