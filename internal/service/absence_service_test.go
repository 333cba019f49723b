package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelmate-api/config"
	"travelmate-api/internal/domain"
	"travelmate-api/internal/dto"
	"travelmate-api/internal/infrastructure/weather"
	"travelmate-api/pkg/errs"
)

type AbsenceServiceTestSuite struct {
	suite.Suite
	repo     *fakeAbsenceRepo
	accounts *fakeAccountRepo
	provider *fakeWeatherProvider
	service  AbsenceService
	employee dto.Identity
	admin    dto.Identity
}

func (s *AbsenceServiceTestSuite) SetupTest() {
	s.repo = newFakeAbsenceRepo()
	s.accounts = newFakeAccountRepo()
	s.provider = &fakeWeatherProvider{
		location: weather.Location{Name: "Bergen", Country: "Norway", Latitude: 60.39, Longitude: 5.32},
		current:  weather.CurrentConditions{Temperature: 8, Condition: weather.ConditionStormy, Humidity: 90, WindSpeed: 45},
	}
	s.service = CreateNewAbsenceService(s.repo, s.accounts, s.provider, config.Config{}, nil)
	s.employee = dto.Identity{
		ID:             primitive.NewObjectID(),
		Name:           "Kari Nordmann",
		Role:           domain.RoleEmployee,
		EmployeeNumber: "01J5TESTEMPLOYEE",
	}
	s.admin = dto.Identity{ID: primitive.NewObjectID(), Role: domain.RoleAdmin}
}

func (s *AbsenceServiceTestSuite) submit() domain.WeatherAbsenceRequest {
	request, err := s.service.AddAbsenceRequest(context.Background(), s.employee, dto.AbsenceRequest{
		Location:    "Bergen",
		Description: "Storm warning issued for the region",
	})
	s.Require().NoError(err)
	return request
}

func (s *AbsenceServiceTestSuite) Test_AddAbsenceRequest_SevereWeather() {
	request := s.submit()

	s.Equal(domain.AbsenceStatusPending, request.Status)
	s.Equal(s.employee.ID, request.UserID)
	s.Equal("Kari Nordmann", request.EmployeeName)
	s.Equal("01J5TESTEMPLOYEE", request.EmployeeID)
	s.True(request.Verification.Verified)
	s.Equal("Bergen", request.Verification.Weather.City)
	s.Equal(weather.ConditionStormy, request.Verification.Weather.Condition)
	s.False(request.Verification.CheckedAt.IsZero())
}

func (s *AbsenceServiceTestSuite) Test_AddAbsenceRequest_MildWeather() {
	s.provider.current = weather.CurrentConditions{Temperature: 22, Condition: weather.ConditionSunny, Humidity: 40, WindSpeed: 10}

	request := s.submit()
	s.Equal(domain.AbsenceStatusPending, request.Status)
	s.False(request.Verification.Verified)
}

func (s *AbsenceServiceTestSuite) Test_AddAbsenceRequest_Errors() {
	_, err := s.service.AddAbsenceRequest(context.Background(), s.employee, dto.AbsenceRequest{})
	s.ErrorIs(err, errs.ErrMissingFields)

	s.provider.geocodeErr = errs.ErrCityNotFound
	_, err = s.service.AddAbsenceRequest(context.Background(), s.employee, dto.AbsenceRequest{Location: "Atlantis"})
	s.ErrorIs(err, errs.ErrCityNotFound)

	s.provider.geocodeErr = nil
	s.provider.currentErr = errs.ErrWeatherUnavailable
	_, err = s.service.AddAbsenceRequest(context.Background(), s.employee, dto.AbsenceRequest{Location: "Bergen"})
	s.ErrorIs(err, errs.ErrWeatherUnavailable)
}

func (s *AbsenceServiceTestSuite) Test_ReviewAbsenceRequest() {
	request := s.submit()

	status := domain.AbsenceStatusApproved
	comment := "Take care out there"
	reviewed, err := s.service.ReviewAbsenceRequest(context.Background(), request.ID.Hex(), dto.AbsenceReviewRequest{
		Status:  &status,
		Comment: &comment,
	})
	s.NoError(err)
	s.Equal(domain.AbsenceStatusApproved, reviewed.Status)
	s.Equal("Take care out there", reviewed.Comment)
	s.NotNil(reviewed.ReviewedAt)

	stored, err := s.repo.GetAbsenceRequestByID(context.Background(), request.ID)
	s.NoError(err)
	s.Equal(domain.AbsenceStatusApproved, stored.Status)
}

func (s *AbsenceServiceTestSuite) Test_ReviewAbsenceRequest_Invalid() {
	request := s.submit()

	bad := "maybe"
	_, err := s.service.ReviewAbsenceRequest(context.Background(), request.ID.Hex(), dto.AbsenceReviewRequest{Status: &bad})
	s.ErrorIs(err, errs.ErrInvalidStatus)

	status := domain.AbsenceStatusRejected
	_, err = s.service.ReviewAbsenceRequest(context.Background(), primitive.NewObjectID().Hex(), dto.AbsenceReviewRequest{Status: &status})
	s.ErrorIs(err, errs.ErrNotFound)

	_, err = s.service.ReviewAbsenceRequest(context.Background(), "nope", dto.AbsenceReviewRequest{Status: &status})
	s.ErrorIs(err, errs.ErrNotFound)
}

func (s *AbsenceServiceTestSuite) Test_DeleteAbsenceRequest() {
	request := s.submit()
	stranger := dto.Identity{ID: primitive.NewObjectID(), Role: domain.RoleEmployee}

	// A non-owner non-admin sees the request as absent.
	err := s.service.DeleteAbsenceRequest(context.Background(), stranger, request.ID.Hex())
	s.ErrorIs(err, errs.ErrNotFound)

	// The owner can delete it.
	s.NoError(s.service.DeleteAbsenceRequest(context.Background(), s.employee, request.ID.Hex()))

	// Admins delete without the ownership filter.
	request = s.submit()
	s.NoError(s.service.DeleteAbsenceRequest(context.Background(), s.admin, request.ID.Hex()))

	err = s.service.DeleteAbsenceRequest(context.Background(), s.admin, request.ID.Hex())
	s.ErrorIs(err, errs.ErrNotFound)
}

func (s *AbsenceServiceTestSuite) Test_GetMyAbsenceRequests() {
	mine := s.submit()

	otherEmployee := dto.Identity{ID: primitive.NewObjectID(), Name: "Ola", Role: domain.RoleEmployee}
	_, err := s.service.AddAbsenceRequest(context.Background(), otherEmployee, dto.AbsenceRequest{Location: "Bergen"})
	s.Require().NoError(err)

	requests, err := s.service.GetMyAbsenceRequests(context.Background(), s.employee, "")
	s.NoError(err)
	s.Len(requests, 1)
	s.Equal(mine.ID, requests[0].ID)

	all, err := s.service.GetAbsenceRequests(context.Background(), "")
	s.NoError(err)
	s.Len(all, 2)
}

func (s *AbsenceServiceTestSuite) Test_ReverifyPendingRequests() {
	request := s.submit()

	approved := s.submit()
	status := domain.AbsenceStatusApproved
	_, err := s.service.ReviewAbsenceRequest(context.Background(), approved.ID.Hex(), dto.AbsenceReviewRequest{Status: &status})
	s.Require().NoError(err)

	// Weather has since calmed down.
	s.provider.current = weather.CurrentConditions{Temperature: 18, Condition: weather.ConditionSunny, Humidity: 50, WindSpeed: 5}
	s.service.ReverifyPendingRequests()

	refreshed, err := s.repo.GetAbsenceRequestByID(context.Background(), request.ID)
	s.NoError(err)
	s.False(refreshed.Verification.Verified)
	s.Equal(weather.ConditionSunny, refreshed.Verification.Weather.Condition)

	// Reviewed requests keep their original snapshot.
	untouched, err := s.repo.GetAbsenceRequestByID(context.Background(), approved.ID)
	s.NoError(err)
	s.True(untouched.Verification.Verified)
}

func TestAbsenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AbsenceServiceTestSuite))
}

func TestIsSevereWeather(t *testing.T) {
	type TestCase struct {
		Name     string
		Current  weather.CurrentConditions
		Expected bool
	}

	testCases := []TestCase{
		{Name: "Stormy", Current: weather.CurrentConditions{Condition: weather.ConditionStormy, Temperature: 20}, Expected: true},
		{Name: "Rainy", Current: weather.CurrentConditions{Condition: weather.ConditionRainy, Temperature: 20}, Expected: true},
		{Name: "High wind", Current: weather.CurrentConditions{Condition: weather.ConditionSunny, Temperature: 20, WindSpeed: 21}, Expected: true},
		{Name: "Wind at threshold", Current: weather.CurrentConditions{Condition: weather.ConditionSunny, Temperature: 20, WindSpeed: 20}, Expected: false},
		{Name: "Freezing", Current: weather.CurrentConditions{Condition: weather.ConditionSunny, Temperature: -1}, Expected: true},
		{Name: "Zero degrees", Current: weather.CurrentConditions{Condition: weather.ConditionSunny, Temperature: 0}, Expected: false},
		{Name: "Heat", Current: weather.CurrentConditions{Condition: weather.ConditionCloudy, Temperature: 36}, Expected: true},
		{Name: "Hot but bearable", Current: weather.CurrentConditions{Condition: weather.ConditionCloudy, Temperature: 35}, Expected: false},
		{Name: "Mild", Current: weather.CurrentConditions{Condition: weather.ConditionPartlyCloudy, Temperature: 22, WindSpeed: 10}, Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := IsSevereWeather(tc.Current); got != tc.Expected {
				t.Errorf("IsSevereWeather(%+v) = %v, want %v", tc.Current, got, tc.Expected)
			}
		})
	}
}
