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

type WorkReportController struct {
	service service.WorkReportService
}

func CreateWorkReportController(e *echo.Group, service service.WorkReportService, isLoggedIn echo.MiddlewareFunc) {
	c := WorkReportController{
		service: service,
	}

	e.GET("/weather/reports", c.GetWorkReports, isLoggedIn, middleware.RequireEmployee)
	e.POST("/weather/reports", c.AddWorkReport, isLoggedIn, middleware.RequireEmployee)
	e.PUT("/weather/reports/:id", c.UpdateWorkReport, isLoggedIn, middleware.RequireEmployee)
	e.DELETE("/weather/reports/:id", c.DeleteWorkReport, isLoggedIn, middleware.RequireEmployee)
}

func (c *WorkReportController) GetWorkReports(e echo.Context) error {
	identity, ok := middleware.IdentityFrom(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	filter := dto.SearchFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetWorkReports").Msg("")
	}

	resp, err := c.service.GetWorkReports(e.Request().Context(), identity, filter.Search)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *WorkReportController) AddWorkReport(e echo.Context) error {
	identity, ok := middleware.IdentityFrom(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.WorkReportRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddWorkReport").Msg("")
	}

	resp, err := c.service.AddWorkReport(e.Request().Context(), identity, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Work report created", resp)
}

func (c *WorkReportController) UpdateWorkReport(e echo.Context) error {
	identity, ok := middleware.IdentityFrom(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.WorkReportUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateWorkReport").Msg("")
	}

	resp, err := c.service.UpdateWorkReport(e.Request().Context(), identity, e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Work report updated successfully", resp)
}

func (c *WorkReportController) DeleteWorkReport(e echo.Context) error {
	identity, ok := middleware.IdentityFrom(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	err := c.service.DeleteWorkReport(e.Request().Context(), identity, e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Report deleted successfully", nil)
}
