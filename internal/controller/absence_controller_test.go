package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelmate-api/internal/domain"
	"travelmate-api/internal/dto"
	"travelmate-api/internal/middleware"
	"travelmate-api/pkg/errs"
	"travelmate-api/pkg/utils"
)

const testSecret = "controller-test-secret"

type stubAccountRepo struct {
	accounts map[primitive.ObjectID]domain.Account
}

func (r *stubAccountRepo) AddAccount(ctx context.Context, data domain.Account) (primitive.ObjectID, error) {
	return data.ID, nil
}

func (r *stubAccountRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	return domain.Account{}, errs.ErrAccountNotFound
}

func (r *stubAccountRepo) GetAccountByID(ctx context.Context, id primitive.ObjectID) (domain.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, errs.ErrAccountNotFound
	}
	return account, nil
}

func (r *stubAccountRepo) GetAccounts(ctx context.Context) ([]domain.Account, error) {
	return nil, nil
}

// stubAbsenceService records which operations ran so the tests can assert
// that gated routes never reach the service.
type stubAbsenceService struct {
	calls []string
	err   error
}

func (s *stubAbsenceService) GetAbsenceRequests(ctx context.Context, search string) ([]domain.WeatherAbsenceRequest, error) {
	s.calls = append(s.calls, "list")
	return nil, s.err
}

func (s *stubAbsenceService) GetMyAbsenceRequests(ctx context.Context, actor dto.Identity, search string) ([]domain.WeatherAbsenceRequest, error) {
	s.calls = append(s.calls, "list-mine")
	return nil, s.err
}

func (s *stubAbsenceService) AddAbsenceRequest(ctx context.Context, actor dto.Identity, payload dto.AbsenceRequest) (domain.WeatherAbsenceRequest, error) {
	s.calls = append(s.calls, "add")
	return domain.WeatherAbsenceRequest{Location: payload.Location, Status: domain.AbsenceStatusPending}, s.err
}

func (s *stubAbsenceService) ReviewAbsenceRequest(ctx context.Context, id string, payload dto.AbsenceReviewRequest) (domain.WeatherAbsenceRequest, error) {
	s.calls = append(s.calls, "review")
	return domain.WeatherAbsenceRequest{}, s.err
}

func (s *stubAbsenceService) DeleteAbsenceRequest(ctx context.Context, actor dto.Identity, id string) error {
	s.calls = append(s.calls, "delete")
	return s.err
}

func (s *stubAbsenceService) ReverifyPendingRequests() {}

type AbsenceControllerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	service  *stubAbsenceService
	accounts *stubAccountRepo
}

func (s *AbsenceControllerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.service = &stubAbsenceService{}
	s.accounts = &stubAccountRepo{accounts: map[primitive.ObjectID]domain.Account{}}

	group := s.echo.Group("/api/v1")
	isLoggedIn := middleware.Authenticate(s.accounts, testSecret)
	CreateAbsenceController(group, s.service, isLoggedIn)
}

func (s *AbsenceControllerTestSuite) tokenFor(role string) string {
	account := domain.Account{
		ID:    primitive.NewObjectID(),
		Email: role + "@example.com",
		Name:  role,
		Role:  role,
	}
	s.accounts.accounts[account.ID] = account

	token, err := utils.CreateJWTToken(account.ID.Hex(), account.Email, account.Role, testSecret)
	s.Require().NoError(err)
	return token
}

func (s *AbsenceControllerTestSuite) Test_Routes() {
	requestID := primitive.NewObjectID().Hex()

	type TestCase struct {
		Name           string
		Method         string
		Path           string
		Role           string
		Body           interface{}
		ServiceErr     error
		ExpectedStatus int
		ExpectedCalls  []string
	}

	testCases := []TestCase{
		{
			Name:           "List requires admin",
			Method:         http.MethodGet,
			Path:           "/api/v1/weather/absence",
			Role:           domain.RoleEmployee,
			ExpectedStatus: http.StatusForbidden,
		},
		{
			Name:           "Admin lists all",
			Method:         http.MethodGet,
			Path:           "/api/v1/weather/absence",
			Role:           domain.RoleAdmin,
			ExpectedStatus: http.StatusOK,
			ExpectedCalls:  []string{"list"},
		},
		{
			Name:           "Anyone authenticated lists own",
			Method:         http.MethodGet,
			Path:           "/api/v1/weather/absence/me",
			Role:           domain.RoleTraveler,
			ExpectedStatus: http.StatusOK,
			ExpectedCalls:  []string{"list-mine"},
		},
		{
			Name:           "Traveler cannot submit",
			Method:         http.MethodPost,
			Path:           "/api/v1/weather/absence",
			Role:           domain.RoleTraveler,
			Body:           dto.AbsenceRequest{Location: "Bergen"},
			ExpectedStatus: http.StatusForbidden,
		},
		{
			Name:           "Employee submits",
			Method:         http.MethodPost,
			Path:           "/api/v1/weather/absence",
			Role:           domain.RoleEmployee,
			Body:           dto.AbsenceRequest{Location: "Bergen"},
			ExpectedStatus: http.StatusCreated,
			ExpectedCalls:  []string{"add"},
		},
		{
			Name:           "Review requires admin",
			Method:         http.MethodPut,
			Path:           "/api/v1/weather/absence/" + requestID,
			Role:           domain.RoleEmployee,
			Body:           dto.AbsenceReviewRequest{},
			ExpectedStatus: http.StatusForbidden,
		},
		{
			Name:           "Service not-found surfaces as 404",
			Method:         http.MethodDelete,
			Path:           "/api/v1/weather/absence/" + requestID,
			Role:           domain.RoleEmployee,
			ServiceErr:     errs.ErrNotFound,
			ExpectedStatus: http.StatusNotFound,
			ExpectedCalls:  []string{"delete"},
		},
		{
			Name:           "Upstream weather failure surfaces as 502",
			Method:         http.MethodPost,
			Path:           "/api/v1/weather/absence",
			Role:           domain.RoleEmployee,
			Body:           dto.AbsenceRequest{Location: "Bergen"},
			ServiceErr:     errs.ErrWeatherUnavailable,
			ExpectedStatus: http.StatusBadGateway,
			ExpectedCalls:  []string{"add"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			s.service.calls = nil
			s.service.err = tc.ServiceErr

			var body *bytes.Buffer
			if tc.Body != nil {
				raw, err := json.Marshal(tc.Body)
				s.Require().NoError(err)
				body = bytes.NewBuffer(raw)
			} else {
				body = bytes.NewBuffer(nil)
			}

			req := httptest.NewRequest(tc.Method, tc.Path, body)
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.tokenFor(tc.Role))
			rec := httptest.NewRecorder()

			s.echo.ServeHTTP(rec, req)

			s.Equal(tc.ExpectedStatus, rec.Code)
			s.Equal(tc.ExpectedCalls, s.service.calls)
		})
	}
}

func (s *AbsenceControllerTestSuite) Test_Unauthenticated() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather/absence/me", nil)
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Empty(s.service.calls)

	var resp map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("error", resp["status"])
}

func TestAbsenceControllerTestSuite(t *testing.T) {
	suite.Run(t, new(AbsenceControllerTestSuite))
}
