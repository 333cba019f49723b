package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"

	"travelmate-api/config"
	"travelmate-api/internal/controller"
	circuitbreaker "travelmate-api/internal/infrastructure/circuit-breaker"
	"travelmate-api/internal/infrastructure/tracing"
	"travelmate-api/internal/infrastructure/weather"
	"travelmate-api/internal/middleware"
	"travelmate-api/internal/repository"
	"travelmate-api/internal/service"
)

const reverifyInterval = 30 * time.Minute

type App struct {
	DB            *mongo.Database
	Config        *config.Config
	KafkaProducer *kafka.Conn
	Server        *echo.Echo
	scheduler     gocron.Scheduler
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	e.HideBanner = true

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("travelmate-api")

			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	// Used empty string so that metrics are not prefixed with the service name
	e.Use(echoprometheus.NewMiddleware(""))

	if app.Config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.HideBanner = true
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	g := e.Group("/api/v1")

	g.Use(middleware.Logger)

	g.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "OK", "message": "Server is running"})
	})

	accountRepo := repository.CreateNewAccountRepository(app.DB)
	memoryRepo := repository.CreateNewMemoryRepository(app.DB)
	reportRepo := repository.CreateNewWorkReportRepository(app.DB)
	absenceRepo := repository.CreateNewAbsenceRepository(app.DB)

	cb := circuitbreaker.CreateCircuitBreaker("open-meteo")
	weatherClient := weather.CreateOpenMeteoClient(app.Config.WeatherConfig, cb)

	accountSvc := service.CreateNewAccountService(accountRepo, *app.Config)
	memorySvc := service.CreateNewMemoryService(memoryRepo)
	reportSvc := service.CreateNewWorkReportService(reportRepo)
	absenceSvc := service.CreateNewAbsenceService(absenceRepo, accountRepo, weatherClient, *app.Config, app.KafkaProducer)
	weatherSvc := service.CreateNewWeatherService(weatherClient)

	isLoggedIn := middleware.Authenticate(accountRepo, app.Config.JWTSecret)

	controller.CreateAccountController(g, accountSvc, isLoggedIn)
	controller.CreateMemoryController(g, memorySvc, isLoggedIn)
	controller.CreateWorkReportController(g, reportSvc, isLoggedIn)
	controller.CreateAbsenceController(g, absenceSvc, isLoggedIn)
	controller.CreateWeatherController(g, weatherSvc, isLoggedIn)

	app.startScheduler(absenceSvc)

	app.Server = e
	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func (app *App) startScheduler(absenceSvc service.AbsenceService) {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create scheduler")
		return
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			reverifyInterval,
		),
		gocron.NewTask(
			absenceSvc.ReverifyPendingRequests,
		),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to schedule re-verification job")
		return
	}

	s.Start()
	app.scheduler = s
}

func (app *App) StopServer() error {
	if app.scheduler != nil {
		if err := app.scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown scheduler")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
