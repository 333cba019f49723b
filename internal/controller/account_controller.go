package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"travelmate-api/internal/domain"
	"travelmate-api/internal/dto"
	"travelmate-api/internal/middleware"
	"travelmate-api/internal/service"
	"travelmate-api/pkg/response"
)

type AccountController struct {
	service service.AccountService
}

func CreateAccountController(e *echo.Group, service service.AccountService, isLoggedIn echo.MiddlewareFunc) {
	c := AccountController{
		service: service,
	}

	e.POST("/travelers/auth/register", c.RegisterTraveler)
	e.POST("/travelers/auth/login", c.Login)
	e.POST("/employees/auth/register", c.RegisterEmployee)
	e.POST("/employees/auth/login", c.Login)
	e.POST("/companies/auth/register", c.RegisterCompany)
	e.POST("/companies/auth/login", c.Login)

	e.GET("/users", c.GetAccounts, isLoggedIn, middleware.RequireAdmin)
	e.GET("/users/:id", c.GetAccountByID, isLoggedIn)
}

func (c *AccountController) RegisterTraveler(e echo.Context) error {
	return c.register(e, domain.RoleTraveler)
}

func (c *AccountController) RegisterEmployee(e echo.Context) error {
	return c.register(e, domain.RoleEmployee)
}

// Company registrations administer employee absence requests.
func (c *AccountController) RegisterCompany(e echo.Context) error {
	return c.register(e, domain.RoleAdmin)
}

func (c *AccountController) register(e echo.Context, role string) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	resp, err := c.service.Register(e.Request().Context(), role, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Account created successfully", resp)
}

func (c *AccountController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Login successful", resp)
}

func (c *AccountController) GetAccounts(e echo.Context) error {
	resp, err := c.service.GetAccounts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *AccountController) GetAccountByID(e echo.Context) error {
	resp, err := c.service.GetAccountByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
