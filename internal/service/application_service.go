package service

import (
	"context"
	"strings"

	"blogspot/internal/models"
	"blogspot/internal/repository"
	"blogspot/internal/validation"
)

// Cover letters shorter than this read as spam; the original admin flow
// rejected them at intake.
const minCoverLetterLen = 50

type ApplicationService struct {
	appRepo repository.ApplicationRepository
}

type CreateApplicationInput struct {
	Name        string
	Email       string
	Phone       string
	Position    string
	Experience  string
	Skills      string
	CoverLetter string
	ResumeURL   string
}

type ListApplicationsInput struct {
	Status   string
	Position string
	Limit    int
	Offset   int
}

type ApplicationStats struct {
	Pending     int64 `json:"pending"`
	Reviewing   int64 `json:"reviewing"`
	Interviewed int64 `json:"interviewed"`
	Hired       int64 `json:"hired"`
	Rejected    int64 `json:"rejected"`
	Total       int64 `json:"total"`
}

func NewApplicationService(appRepo repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{appRepo: appRepo}
}

func (s *ApplicationService) CreateApplication(ctx context.Context, in CreateApplicationInput) (*models.CareerApplication, error) {
	if err := validation.Required(
		validation.Field{Name: "Name", Value: in.Name},
		validation.Field{Name: "Email", Value: in.Email},
		validation.Field{Name: "Position", Value: in.Position},
		validation.Field{Name: "Experience", Value: in.Experience},
		validation.Field{Name: "Skills", Value: in.Skills},
	); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.MinLength("Cover letter", in.CoverLetter, minCoverLetterLen); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	app := &models.CareerApplication{
		Name:        strings.TrimSpace(in.Name),
		Email:       validation.NormalizeEmail(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Position:    strings.TrimSpace(in.Position),
		Experience:  strings.TrimSpace(in.Experience),
		Skills:      strings.TrimSpace(in.Skills),
		CoverLetter: in.CoverLetter,
		ResumeURL:   strings.TrimSpace(in.ResumeURL),
		Status:      models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) GetApplication(ctx context.Context, id uint) (*models.CareerApplication, error) {
	return s.appRepo.GetByID(ctx, id)
}

func (s *ApplicationService) ListApplications(ctx context.Context, in ListApplicationsInput) ([]*models.CareerApplication, int64, error) {
	if err := validation.OneOf("Status", in.Status, models.ApplicationStatuses); err != nil {
		return nil, 0, models.NewValidationError(err.Error())
	}
	return s.appRepo.List(ctx, repository.ApplicationFilter{
		Status:   in.Status,
		Position: strings.TrimSpace(in.Position),
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
}

func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, id uint, status string) (*models.CareerApplication, error) {
	if err := validation.Required(validation.Field{Name: "Status", Value: status}); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.OneOf("Status", status, models.ApplicationStatuses); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status == status {
		return app, nil
	}

	app.Status = status
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) DeleteApplication(ctx context.Context, id uint) error {
	return s.appRepo.Delete(ctx, id)
}

func (s *ApplicationService) ApplicationStats(ctx context.Context) (*ApplicationStats, error) {
	stats := &ApplicationStats{}
	for _, status := range models.ApplicationStatuses {
		count, err := s.appRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		switch status {
		case models.ApplicationStatusPending:
			stats.Pending = count
		case models.ApplicationStatusReviewing:
			stats.Reviewing = count
		case models.ApplicationStatusInterviewed:
			stats.Interviewed = count
		case models.ApplicationStatusHired:
			stats.Hired = count
		case models.ApplicationStatusRejected:
			stats.Rejected = count
		}
		stats.Total += count
	}
	return stats, nil
}
