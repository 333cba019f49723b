package service

import (
	"context"

	"travelmate-api/internal/dto"
	"travelmate-api/pkg/errs"
)

const (
	defaultForecastDays = 7
	maxForecastDays     = 16
)

type WeatherServiceImpl struct {
	provider WeatherProvider
}

func CreateNewWeatherService(provider WeatherProvider) WeatherService {
	return &WeatherServiceImpl{provider: provider}
}

func (s *WeatherServiceImpl) CurrentWeather(ctx context.Context, city string) (resp dto.CurrentWeatherResponse, err error) {
	if city == "" {
		return resp, errs.ErrMissingFields
	}

	loc, err := s.provider.GeocodeCity(ctx, city)
	if err != nil {
		return resp, err
	}

	current, err := s.provider.CurrentWeather(ctx, loc)
	if err != nil {
		return resp, err
	}

	resp = dto.CurrentWeatherResponse{
		City:        loc.Name,
		Temperature: current.Temperature,
		Condition:   current.Condition,
		Humidity:    current.Humidity,
		WindSpeed:   current.WindSpeed,
	}

	return resp, nil
}

func (s *WeatherServiceImpl) Forecast(ctx context.Context, city string, days int) (resp dto.ForecastResponse, err error) {
	if city == "" {
		return resp, errs.ErrMissingFields
	}

	if days <= 0 {
		days = defaultForecastDays
	}
	if days > maxForecastDays {
		days = maxForecastDays
	}

	loc, err := s.provider.GeocodeCity(ctx, city)
	if err != nil {
		return resp, err
	}

	daily, err := s.provider.Forecast(ctx, loc, days)
	if err != nil {
		return resp, err
	}

	resp.Location = dto.LocationResponse{
		Name:      loc.Name,
		Country:   loc.Country,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}
	for _, day := range daily {
		resp.Daily = append(resp.Daily, dto.DailyForecast{
			Date:      day.Date,
			MaxTemp:   day.MaxTemp,
			MinTemp:   day.MinTemp,
			Condition: day.Condition,
			Humidity:  day.Humidity,
			WindSpeed: day.WindSpeed,
		})
	}

	return resp, nil
}

func (s *WeatherServiceImpl) ConvertCurrency(from string, to string, amount float64) (resp dto.CurrencyConversionResponse, err error) {
	fromRate, ok := currencyRates[from]
	if !ok {
		return resp, errs.ErrUnknownCurrency
	}

	toRate, ok := currencyRates[to]
	if !ok {
		return resp, errs.ErrUnknownCurrency
	}

	rate := toRate / fromRate
	resp = dto.CurrencyConversionResponse{
		From:      from,
		To:        to,
		Amount:    amount,
		Converted: amount * rate,
		Rate:      rate,
	}

	return resp, nil
}
