package service

import (
	"context"

	"travelmate-api/internal/domain"
	"travelmate-api/internal/dto"
	"travelmate-api/internal/infrastructure/weather"
)

type AccountService interface {
	Register(ctx context.Context, role string, payload dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, payload dto.LoginRequest) (dto.AuthResponse, error)
	GetAccounts(ctx context.Context) ([]dto.AccountResponse, error)
	GetAccountByID(ctx context.Context, id string) (dto.AccountResponse, error)
}

type MemoryService interface {
	GetMemories(ctx context.Context, actor dto.Identity, search string) ([]domain.Memory, error)
	GetMemoryByID(ctx context.Context, actor dto.Identity, id string) (domain.Memory, error)
	AddMemory(ctx context.Context, actor dto.Identity, payload dto.MemoryRequest) (domain.Memory, error)
	UpdateMemory(ctx context.Context, actor dto.Identity, id string, payload dto.MemoryUpdateRequest) (domain.Memory, error)
	DeleteMemory(ctx context.Context, actor dto.Identity, id string) error
}

type WorkReportService interface {
	GetWorkReports(ctx context.Context, actor dto.Identity, search string) ([]domain.WorkReport, error)
	AddWorkReport(ctx context.Context, actor dto.Identity, payload dto.WorkReportRequest) (domain.WorkReport, error)
	UpdateWorkReport(ctx context.Context, actor dto.Identity, id string, payload dto.WorkReportUpdateRequest) (domain.WorkReport, error)
	DeleteWorkReport(ctx context.Context, actor dto.Identity, id string) error
}

type AbsenceService interface {
	GetAbsenceRequests(ctx context.Context, search string) ([]domain.WeatherAbsenceRequest, error)
	GetMyAbsenceRequests(ctx context.Context, actor dto.Identity, search string) ([]domain.WeatherAbsenceRequest, error)
	AddAbsenceRequest(ctx context.Context, actor dto.Identity, payload dto.AbsenceRequest) (domain.WeatherAbsenceRequest, error)
	ReviewAbsenceRequest(ctx context.Context, id string, payload dto.AbsenceReviewRequest) (domain.WeatherAbsenceRequest, error)
	DeleteAbsenceRequest(ctx context.Context, actor dto.Identity, id string) error
	ReverifyPendingRequests()
}

type WeatherService interface {
	CurrentWeather(ctx context.Context, city string) (dto.CurrentWeatherResponse, error)
	Forecast(ctx context.Context, city string, days int) (dto.ForecastResponse, error)
	ConvertCurrency(from string, to string, amount float64) (dto.CurrencyConversionResponse, error)
}

// WeatherProvider is the outbound geocoding + forecast collaborator.
type WeatherProvider interface {
	GeocodeCity(ctx context.Context, city string) (weather.Location, error)
	CurrentWeather(ctx context.Context, loc weather.Location) (weather.CurrentConditions, error)
	Forecast(ctx context.Context, loc weather.Location, days int) ([]weather.DailyConditions, error)
}
