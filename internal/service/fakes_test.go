package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelmate-api/internal/domain"
	"travelmate-api/internal/infrastructure/weather"
	"travelmate-api/pkg/errs"
)

// In-memory repositories mirroring the Mongo implementations' contract:
// owner-scoped lookups report not-found for foreign ids, and search is a
// case-insensitive substring match.

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

type fakeAccountRepo struct {
	accounts map[primitive.ObjectID]domain.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[primitive.ObjectID]domain.Account{}}
}

func (r *fakeAccountRepo) AddAccount(ctx context.Context, data domain.Account) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	data.ID = id
	r.accounts[id] = data
	return id, nil
}

func (r *fakeAccountRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return domain.Account{}, errs.ErrAccountNotFound
}

func (r *fakeAccountRepo) GetAccountByID(ctx context.Context, id primitive.ObjectID) (domain.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, errs.ErrAccountNotFound
	}
	return account, nil
}

func (r *fakeAccountRepo) GetAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	for _, account := range r.accounts {
		accounts = append(accounts, account)
	}
	return accounts, nil
}

type fakeMemoryRepo struct {
	memories map[primitive.ObjectID]domain.Memory
}

func newFakeMemoryRepo() *fakeMemoryRepo {
	return &fakeMemoryRepo{memories: map[primitive.ObjectID]domain.Memory{}}
}

func (r *fakeMemoryRepo) AddMemory(ctx context.Context, data domain.Memory) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	data.ID = id
	r.memories[id] = data
	return id, nil
}

func (r *fakeMemoryRepo) GetMemories(ctx context.Context, userID primitive.ObjectID, search string) ([]domain.Memory, error) {
	var memories []domain.Memory
	for _, memory := range r.memories {
		if memory.UserID != userID {
			continue
		}
		if search != "" && !containsFold(memory.Title, search) && !containsFold(memory.Description, search) && !containsFold(memory.Location, search) {
			continue
		}
		memories = append(memories, memory)
	}
	return memories, nil
}

func (r *fakeMemoryRepo) GetMemoryByID(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) (domain.Memory, error) {
	memory, ok := r.memories[id]
	if !ok || memory.UserID != userID {
		return domain.Memory{}, errs.ErrNotFound
	}
	return memory, nil
}

func (r *fakeMemoryRepo) UpdateMemory(ctx context.Context, data domain.Memory) error {
	memory, ok := r.memories[data.ID]
	if !ok || memory.UserID != data.UserID {
		return errs.ErrNotFound
	}
	r.memories[data.ID] = data
	return nil
}

func (r *fakeMemoryRepo) DeleteMemory(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	memory, ok := r.memories[id]
	if !ok || memory.UserID != userID {
		return errs.ErrNotFound
	}
	delete(r.memories, id)
	return nil
}

type fakeWorkReportRepo struct {
	reports map[primitive.ObjectID]domain.WorkReport
}

func newFakeWorkReportRepo() *fakeWorkReportRepo {
	return &fakeWorkReportRepo{reports: map[primitive.ObjectID]domain.WorkReport{}}
}

func (r *fakeWorkReportRepo) AddWorkReport(ctx context.Context, data domain.WorkReport) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	data.ID = id
	r.reports[id] = data
	return id, nil
}

func (r *fakeWorkReportRepo) GetWorkReports(ctx context.Context, userID primitive.ObjectID, search string) ([]domain.WorkReport, error) {
	var reports []domain.WorkReport
	for _, report := range r.reports {
		if report.UserID != userID {
			continue
		}
		if search != "" && !containsFold(report.Project, search) && !containsFold(report.Tasks, search) && !containsFold(report.Location, search) && !containsFold(report.Status, search) {
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (r *fakeWorkReportRepo) GetWorkReportByID(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) (domain.WorkReport, error) {
	report, ok := r.reports[id]
	if !ok || report.UserID != userID {
		return domain.WorkReport{}, errs.ErrNotFound
	}
	return report, nil
}

func (r *fakeWorkReportRepo) UpdateWorkReport(ctx context.Context, data domain.WorkReport) error {
	report, ok := r.reports[data.ID]
	if !ok || report.UserID != data.UserID {
		return errs.ErrNotFound
	}
	r.reports[data.ID] = data
	return nil
}

func (r *fakeWorkReportRepo) DeleteWorkReport(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	report, ok := r.reports[id]
	if !ok || report.UserID != userID {
		return errs.ErrNotFound
	}
	delete(r.reports, id)
	return nil
}

type fakeAbsenceRepo struct {
	requests map[primitive.ObjectID]domain.WeatherAbsenceRequest
}

func newFakeAbsenceRepo() *fakeAbsenceRepo {
	return &fakeAbsenceRepo{requests: map[primitive.ObjectID]domain.WeatherAbsenceRequest{}}
}

func (r *fakeAbsenceRepo) AddAbsenceRequest(ctx context.Context, data domain.WeatherAbsenceRequest) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	data.ID = id
	r.requests[id] = data
	return id, nil
}

func (r *fakeAbsenceRepo) matches(request domain.WeatherAbsenceRequest, search string) bool {
	if search == "" {
		return true
	}
	return containsFold(request.EmployeeName, search) || containsFold(request.EmployeeID, search) ||
		containsFold(request.Location, search) || containsFold(request.Description, search)
}

func (r *fakeAbsenceRepo) GetAbsenceRequests(ctx context.Context, search string) ([]domain.WeatherAbsenceRequest, error) {
	var requests []domain.WeatherAbsenceRequest
	for _, request := range r.requests {
		if r.matches(request, search) {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (r *fakeAbsenceRepo) GetAbsenceRequestsByUser(ctx context.Context, userID primitive.ObjectID, search string) ([]domain.WeatherAbsenceRequest, error) {
	var requests []domain.WeatherAbsenceRequest
	for _, request := range r.requests {
		if request.UserID == userID && r.matches(request, search) {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (r *fakeAbsenceRepo) GetPendingAbsenceRequests(ctx context.Context) ([]domain.WeatherAbsenceRequest, error) {
	var requests []domain.WeatherAbsenceRequest
	for _, request := range r.requests {
		if request.Status == domain.AbsenceStatusPending {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (r *fakeAbsenceRepo) GetAbsenceRequestByID(ctx context.Context, id primitive.ObjectID) (domain.WeatherAbsenceRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return domain.WeatherAbsenceRequest{}, errs.ErrNotFound
	}
	return request, nil
}

func (r *fakeAbsenceRepo) UpdateAbsenceReview(ctx context.Context, id primitive.ObjectID, status string, comment *string) error {
	request, ok := r.requests[id]
	if !ok {
		return errs.ErrNotFound
	}
	request.Status = status
	if comment != nil {
		request.Comment = *comment
	}
	r.requests[id] = request
	return nil
}

func (r *fakeAbsenceRepo) UpdateAbsenceVerification(ctx context.Context, id primitive.ObjectID, snapshot domain.VerificationSnapshot) error {
	request, ok := r.requests[id]
	if !ok || request.Status != domain.AbsenceStatusPending {
		return errs.ErrNotFound
	}
	request.Verification = snapshot
	r.requests[id] = request
	return nil
}

func (r *fakeAbsenceRepo) DeleteAbsenceRequest(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.requests[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.requests, id)
	return nil
}

func (r *fakeAbsenceRepo) DeleteAbsenceRequestByOwner(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	request, ok := r.requests[id]
	if !ok || request.UserID != userID {
		return errs.ErrNotFound
	}
	delete(r.requests, id)
	return nil
}

type fakeWeatherProvider struct {
	location     weather.Location
	current      weather.CurrentConditions
	daily        []weather.DailyConditions
	geocodeErr   error
	currentErr   error
	forecastErr  error
	requestedDay int
}

func (p *fakeWeatherProvider) GeocodeCity(ctx context.Context, city string) (weather.Location, error) {
	if p.geocodeErr != nil {
		return weather.Location{}, p.geocodeErr
	}
	return p.location, nil
}

func (p *fakeWeatherProvider) CurrentWeather(ctx context.Context, loc weather.Location) (weather.CurrentConditions, error) {
	if p.currentErr != nil {
		return weather.CurrentConditions{}, p.currentErr
	}
	return p.current, nil
}

func (p *fakeWeatherProvider) Forecast(ctx context.Context, loc weather.Location, days int) ([]weather.DailyConditions, error) {
	p.requestedDay = days
	if p.forecastErr != nil {
		return nil, p.forecastErr
	}
	return p.daily, nil
}
