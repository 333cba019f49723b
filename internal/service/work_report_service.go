package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelmate-api/internal/domain"
	"travelmate-api/internal/dto"
	"travelmate-api/internal/repository"
	"travelmate-api/pkg/errs"
)

type WorkReportServiceImpl struct {
	repo repository.WorkReportRepository
}

func CreateNewWorkReportService(repo repository.WorkReportRepository) WorkReportService {
	return &WorkReportServiceImpl{repo: repo}
}

func (s *WorkReportServiceImpl) GetWorkReports(ctx context.Context, actor dto.Identity, search string) ([]domain.WorkReport, error) {
	return s.repo.GetWorkReports(ctx, actor.ID, search)
}

func (s *WorkReportServiceImpl) AddWorkReport(ctx context.Context, actor dto.Identity, payload dto.WorkReportRequest) (report domain.WorkReport, err error) {
	if payload.Date == "" || payload.Project == "" {
		return report, errs.ErrMissingFields
	}

	status := payload.Status
	if status == "" {
		status = domain.ReportStatusInProgress
	}
	if !domain.ValidReportStatus(status) {
		return report, errs.ErrInvalidStatus
	}

	if payload.Location != "" && !domain.ValidReportLocation(payload.Location) {
		return report, errs.ErrInvalidLocation
	}

	now := time.Now()
	report = domain.WorkReport{
		UserID:    actor.ID,
		Date:      payload.Date,
		Project:   payload.Project,
		Tasks:     payload.Tasks,
		Location:  payload.Location,
		Status:    status,
		Hours:     payload.Hours,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.AddWorkReport(ctx, report)
	if err != nil {
		return report, err
	}
	report.ID = id

	return report, nil
}

func (s *WorkReportServiceImpl) UpdateWorkReport(ctx context.Context, actor dto.Identity, id string, payload dto.WorkReportUpdateRequest) (report domain.WorkReport, err error) {
	reportID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return report, errs.ErrNotFound
	}

	report, err = s.repo.GetWorkReportByID(ctx, reportID, actor.ID)
	if err != nil {
		return report, err
	}

	if payload.Date != nil {
		report.Date = *payload.Date
	}
	if payload.Project != nil {
		report.Project = *payload.Project
	}
	if payload.Tasks != nil {
		report.Tasks = *payload.Tasks
	}
	if payload.Location != nil {
		if !domain.ValidReportLocation(*payload.Location) {
			return report, errs.ErrInvalidLocation
		}
		report.Location = *payload.Location
	}
	if payload.Status != nil {
		if !domain.ValidReportStatus(*payload.Status) {
			return report, errs.ErrInvalidStatus
		}
		report.Status = *payload.Status
	}
	if payload.Hours != nil {
		// An explicit empty string clears the optional hours field.
		report.Hours = *payload.Hours
	}
	report.UpdatedAt = time.Now()

	if err = s.repo.UpdateWorkReport(ctx, report); err != nil {
		return report, err
	}

	return report, nil
}

func (s *WorkReportServiceImpl) DeleteWorkReport(ctx context.Context, actor dto.Identity, id string) error {
	reportID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}

	return s.repo.DeleteWorkReport(ctx, reportID, actor.ID)
}
