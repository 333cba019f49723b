package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"travelmate-api/internal/dto"
	"travelmate-api/internal/service"
	"travelmate-api/pkg/response"
)

type WeatherController struct {
	service service.WeatherService
}

func CreateWeatherController(e *echo.Group, service service.WeatherService, isLoggedIn echo.MiddlewareFunc) {
	c := WeatherController{
		service: service,
	}

	e.GET("/weather/current", c.CurrentWeather, isLoggedIn)
	e.GET("/weather/forecast", c.Forecast, isLoggedIn)
	e.GET("/currency/convert", c.ConvertCurrency, isLoggedIn)
}

func (c *WeatherController) CurrentWeather(e echo.Context) error {
	query := dto.CityQuery{}
	err := e.Bind(&query)
	if err != nil {
		log.Error().Err(err).Str("component", "CurrentWeather").Msg("")
	}

	resp, err := c.service.CurrentWeather(e.Request().Context(), query.City)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *WeatherController) Forecast(e echo.Context) error {
	query := dto.CityQuery{}
	err := e.Bind(&query)
	if err != nil {
		log.Error().Err(err).Str("component", "Forecast").Msg("")
	}

	resp, err := c.service.Forecast(e.Request().Context(), query.City, query.Days)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *WeatherController) ConvertCurrency(e echo.Context) error {
	query := dto.CurrencyQuery{}
	err := e.Bind(&query)
	if err != nil {
		log.Error().Err(err).Str("component", "ConvertCurrency").Msg("")
	}

	resp, err := c.service.ConvertCurrency(query.From, query.To, query.Amount)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
