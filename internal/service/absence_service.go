package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/gomail.v2"

	"travelmate-api/config"
	"travelmate-api/internal/domain"
	"travelmate-api/internal/dto"
	"travelmate-api/internal/infrastructure/weather"
	"travelmate-api/internal/repository"
	"travelmate-api/pkg/errs"
	"travelmate-api/pkg/utils"
)

type AbsenceServiceImpl struct {
	repo          repository.AbsenceRepository
	accountRepo   repository.AccountRepository
	provider      WeatherProvider
	config        config.Config
	kafkaProducer *kafka.Conn
}

func CreateNewAbsenceService(repo repository.AbsenceRepository, accountRepo repository.AccountRepository, provider WeatherProvider, config config.Config, kafkaProducer *kafka.Conn) AbsenceService {
	return &AbsenceServiceImpl{
		repo:          repo,
		accountRepo:   accountRepo,
		provider:      provider,
		config:        config,
		kafkaProducer: kafkaProducer,
	}
}

func (s *AbsenceServiceImpl) GetAbsenceRequests(ctx context.Context, search string) ([]domain.WeatherAbsenceRequest, error) {
	return s.repo.GetAbsenceRequests(ctx, search)
}

func (s *AbsenceServiceImpl) GetMyAbsenceRequests(ctx context.Context, actor dto.Identity, search string) ([]domain.WeatherAbsenceRequest, error) {
	return s.repo.GetAbsenceRequestsByUser(ctx, actor.ID, search)
}

func (s *AbsenceServiceImpl) AddAbsenceRequest(ctx context.Context, actor dto.Identity, payload dto.AbsenceRequest) (request domain.WeatherAbsenceRequest, err error) {
	if payload.Location == "" {
		return request, errs.ErrMissingFields
	}

	snapshot, err := s.verifyWeather(ctx, payload.Location)
	if err != nil {
		return request, err
	}

	employeeName := payload.EmployeeName
	if employeeName == "" {
		employeeName = actor.Name
	}
	employeeID := payload.EmployeeID
	if employeeID == "" {
		employeeID = actor.EmployeeNumber
	}

	request = domain.WeatherAbsenceRequest{
		UserID:       actor.ID,
		EmployeeName: employeeName,
		EmployeeID:   employeeID,
		Location:     payload.Location,
		Description:  payload.Description,
		Verification: snapshot,
		Status:       domain.AbsenceStatusPending,
		SubmittedAt:  time.Now(),
	}

	id, err := s.repo.AddAbsenceRequest(ctx, request)
	if err != nil {
		return request, err
	}
	request.ID = id

	s.publishAbsenceEvent(ctx, "absence_submitted", request)

	return request, nil
}

func (s *AbsenceServiceImpl) ReviewAbsenceRequest(ctx context.Context, id string, payload dto.AbsenceReviewRequest) (request domain.WeatherAbsenceRequest, err error) {
	requestID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return request, errs.ErrNotFound
	}

	request, err = s.repo.GetAbsenceRequestByID(ctx, requestID)
	if err != nil {
		return request, err
	}

	status := request.Status
	if payload.Status != nil {
		if !domain.ValidAbsenceStatus(*payload.Status) {
			return request, errs.ErrInvalidStatus
		}
		status = *payload.Status
	}

	if err = s.repo.UpdateAbsenceReview(ctx, requestID, status, payload.Comment); err != nil {
		return request, err
	}

	request.Status = status
	if payload.Comment != nil {
		request.Comment = *payload.Comment
	}
	now := time.Now()
	request.ReviewedAt = &now

	s.publishAbsenceEvent(ctx, "absence_reviewed", request)
	s.notifySubmitter(ctx, request)

	return request, nil
}

func (s *AbsenceServiceImpl) DeleteAbsenceRequest(ctx context.Context, actor dto.Identity, id string) error {
	requestID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}

	// Admins may delete any request; everyone else goes through the
	// ownership filter so a foreign id reads as not-found.
	if actor.IsAdmin() {
		return s.repo.DeleteAbsenceRequest(ctx, requestID)
	}

	return s.repo.DeleteAbsenceRequestByOwner(ctx, requestID, actor.ID)
}

// ReverifyPendingRequests refreshes the weather snapshot of every pending
// request. It runs on a schedule, off the request path.
func (s *AbsenceServiceImpl) ReverifyPendingRequests() {
	ctx := context.Background()

	requests, err := s.repo.GetPendingAbsenceRequests(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "ReverifyPendingRequests").Msg("")
		return
	}

	for _, request := range requests {
		snapshot, err := s.verifyWeather(ctx, request.Location)
		if err != nil {
			log.Error().Err(err).Str("component", "ReverifyPendingRequests").Str("request_id", request.ID.Hex()).Msg("")
			continue
		}

		if err := s.repo.UpdateAbsenceVerification(ctx, request.ID, snapshot); err != nil && err != errs.ErrNotFound {
			log.Error().Err(err).Str("component", "ReverifyPendingRequests").Str("request_id", request.ID.Hex()).Msg("")
		}
	}
}

func (s *AbsenceServiceImpl) verifyWeather(ctx context.Context, city string) (snapshot domain.VerificationSnapshot, err error) {
	loc, err := s.provider.GeocodeCity(ctx, city)
	if err != nil {
		return snapshot, err
	}

	current, err := s.provider.CurrentWeather(ctx, loc)
	if err != nil {
		return snapshot, err
	}

	snapshot = domain.VerificationSnapshot{
		Verified: IsSevereWeather(current),
		Weather: domain.WeatherSnapshot{
			City:        loc.Name,
			Temperature: current.Temperature,
			Condition:   current.Condition,
			Humidity:    current.Humidity,
			WindSpeed:   current.WindSpeed,
		},
		CheckedAt: time.Now(),
	}

	return snapshot, nil
}

// IsSevereWeather decides whether conditions justify a weather absence:
// stormy or rainy skies, wind above 20 km/h, or temperature below 0 or
// above 35 degrees Celsius.
func IsSevereWeather(current weather.CurrentConditions) bool {
	if current.Condition == weather.ConditionStormy || current.Condition == weather.ConditionRainy {
		return true
	}

	return current.WindSpeed > 20 || current.Temperature < 0 || current.Temperature > 35
}

func (s *AbsenceServiceImpl) publishAbsenceEvent(ctx context.Context, eventType string, request domain.WeatherAbsenceRequest) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data: dto.AbsenceEvent{
			RequestID:    request.ID.Hex(),
			EmployeeName: request.EmployeeName,
			Location:     request.Location,
			Status:       request.Status,
			Verified:     request.Verification.Verified,
		},
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishAbsenceEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = s.writeKafkaMessage(jsonMsg)
		if err == nil {
			break
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishAbsenceEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}
}

func (s *AbsenceServiceImpl) writeKafkaMessage(msg []byte) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}

func (s *AbsenceServiceImpl) notifySubmitter(ctx context.Context, request domain.WeatherAbsenceRequest) {
	if s.config.SMTPConfig.Host == "" {
		return
	}

	account, err := s.accountRepo.GetAccountByID(ctx, request.UserID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "notifySubmitter").Msg("")
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.config.SMTPConfig.Sender)
	message.SetHeader("To", account.Email)
	message.SetHeader("Subject", fmt.Sprintf("Weather absence request %s", request.Status))
	message.SetBody("text/plain", fmt.Sprintf("Your weather absence request for %s has been %s. %s", request.Location, request.Status, request.Comment))

	if err := utils.SendEmail(message, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "notifySubmitter").Msg("")
	}
}
