package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelmate-api/internal/domain"
)

type AccountRepository interface {
	AddAccount(ctx context.Context, data domain.Account) (primitive.ObjectID, error)
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)
	GetAccountByID(ctx context.Context, id primitive.ObjectID) (domain.Account, error)
	GetAccounts(ctx context.Context) ([]domain.Account, error)
}

type MemoryRepository interface {
	AddMemory(ctx context.Context, data domain.Memory) (primitive.ObjectID, error)
	GetMemories(ctx context.Context, userID primitive.ObjectID, search string) ([]domain.Memory, error)
	GetMemoryByID(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) (domain.Memory, error)
	UpdateMemory(ctx context.Context, data domain.Memory) error
	DeleteMemory(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error
}

type WorkReportRepository interface {
	AddWorkReport(ctx context.Context, data domain.WorkReport) (primitive.ObjectID, error)
	GetWorkReports(ctx context.Context, userID primitive.ObjectID, search string) ([]domain.WorkReport, error)
	GetWorkReportByID(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) (domain.WorkReport, error)
	UpdateWorkReport(ctx context.Context, data domain.WorkReport) error
	DeleteWorkReport(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error
}

type AbsenceRepository interface {
	AddAbsenceRequest(ctx context.Context, data domain.WeatherAbsenceRequest) (primitive.ObjectID, error)
	GetAbsenceRequests(ctx context.Context, search string) ([]domain.WeatherAbsenceRequest, error)
	GetAbsenceRequestsByUser(ctx context.Context, userID primitive.ObjectID, search string) ([]domain.WeatherAbsenceRequest, error)
	GetPendingAbsenceRequests(ctx context.Context) ([]domain.WeatherAbsenceRequest, error)
	GetAbsenceRequestByID(ctx context.Context, id primitive.ObjectID) (domain.WeatherAbsenceRequest, error)
	UpdateAbsenceReview(ctx context.Context, id primitive.ObjectID, status string, comment *string) error
	UpdateAbsenceVerification(ctx context.Context, id primitive.ObjectID, snapshot domain.VerificationSnapshot) error
	DeleteAbsenceRequest(ctx context.Context, id primitive.ObjectID) error
	DeleteAbsenceRequestByOwner(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error
}
