package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"travelmate-api/internal/dto"
	"travelmate-api/internal/middleware"
	"travelmate-api/internal/service"
	"travelmate-api/pkg/errs"
	"travelmate-api/pkg/response"
)

type AbsenceController struct {
	service service.AbsenceService
}

func CreateAbsenceController(e *echo.Group, service service.AbsenceService, isLoggedIn echo.MiddlewareFunc) {
	c := AbsenceController{
		service: service,
	}

	e.GET("/weather/absence", c.GetAbsenceRequests, isLoggedIn, middleware.RequireAdmin)
	e.GET("/weather/absence/me", c.GetMyAbsenceRequests, isLoggedIn)
	e.POST("/weather/absence", c.AddAbsenceRequest, isLoggedIn, middleware.RequireEmployee)
	e.PUT("/weather/absence/:id", c.ReviewAbsenceRequest, isLoggedIn, middleware.RequireAdmin)
	e.DELETE("/weather/absence/:id", c.DeleteAbsenceRequest, isLoggedIn)
}

func (c *AbsenceController) GetAbsenceRequests(e echo.Context) error {
	filter := dto.SearchFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetAbsenceRequests").Msg("")
	}

	resp, err := c.service.GetAbsenceRequests(e.Request().Context(), filter.Search)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *AbsenceController) GetMyAbsenceRequests(e echo.Context) error {
	identity, ok := middleware.IdentityFrom(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	filter := dto.SearchFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetMyAbsenceRequests").Msg("")
	}

	resp, err := c.service.GetMyAbsenceRequests(e.Request().Context(), identity, filter.Search)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *AbsenceController) AddAbsenceRequest(e echo.Context) error {
	identity, ok := middleware.IdentityFrom(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.AbsenceRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddAbsenceRequest").Msg("")
	}

	resp, err := c.service.AddAbsenceRequest(e.Request().Context(), identity, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Weather absence request created", resp)
}

func (c *AbsenceController) ReviewAbsenceRequest(e echo.Context) error {
	payload := dto.AbsenceReviewRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "ReviewAbsenceRequest").Msg("")
	}

	resp, err := c.service.ReviewAbsenceRequest(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Request updated successfully", resp)
}

func (c *AbsenceController) DeleteAbsenceRequest(e echo.Context) error {
	identity, ok := middleware.IdentityFrom(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	err := c.service.DeleteAbsenceRequest(e.Request().Context(), identity, e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Request deleted successfully", nil)
}
