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

type MemoryController struct {
	service service.MemoryService
}

func CreateMemoryController(e *echo.Group, service service.MemoryService, isLoggedIn echo.MiddlewareFunc) {
	c := MemoryController{
		service: service,
	}

	e.GET("/memories", c.GetMemories, isLoggedIn)
	e.GET("/memories/:id", c.GetMemoryByID, isLoggedIn)
	e.POST("/memories", c.AddMemory, isLoggedIn)
	e.PUT("/memories/:id", c.UpdateMemory, isLoggedIn)
	e.DELETE("/memories/:id", c.DeleteMemory, isLoggedIn)
}

func (c *MemoryController) GetMemories(e echo.Context) error {
	identity, ok := middleware.IdentityFrom(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	filter := dto.SearchFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetMemories").Msg("")
	}

	resp, err := c.service.GetMemories(e.Request().Context(), identity, filter.Search)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *MemoryController) GetMemoryByID(e echo.Context) error {
	identity, ok := middleware.IdentityFrom(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	resp, err := c.service.GetMemoryByID(e.Request().Context(), identity, e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *MemoryController) AddMemory(e echo.Context) error {
	identity, ok := middleware.IdentityFrom(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.MemoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddMemory").Msg("")
	}

	resp, err := c.service.AddMemory(e.Request().Context(), identity, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Memory created successfully", resp)
}

func (c *MemoryController) UpdateMemory(e echo.Context) error {
	identity, ok := middleware.IdentityFrom(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.MemoryUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateMemory").Msg("")
	}

	resp, err := c.service.UpdateMemory(e.Request().Context(), identity, e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Memory updated successfully", resp)
}

func (c *MemoryController) DeleteMemory(e echo.Context) error {
	identity, ok := middleware.IdentityFrom(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	err := c.service.DeleteMemory(e.Request().Context(), identity, e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Memory deleted successfully", nil)
}
