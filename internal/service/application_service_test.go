package service

import (
	"context"
	"strings"
	"testing"

	"blogspot/internal/models"
	"blogspot/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applicationRepoStub is a stub for repository.ApplicationRepository.
type applicationRepoStub struct {
	createFn        func(context.Context, *models.CareerApplication) error
	getByIDFn       func(context.Context, uint) (*models.CareerApplication, error)
	listFn          func(context.Context, repository.ApplicationFilter) ([]*models.CareerApplication, int64, error)
	updateFn        func(context.Context, *models.CareerApplication) error
	deleteFn        func(context.Context, uint) error
	countByStatusFn func(context.Context, string) (int64, error)
}

func (s *applicationRepoStub) Create(ctx context.Context, app *models.CareerApplication) error {
	return s.createFn(ctx, app)
}
func (s *applicationRepoStub) GetByID(ctx context.Context, id uint) (*models.CareerApplication, error) {
	return s.getByIDFn(ctx, id)
}
func (s *applicationRepoStub) List(ctx context.Context, f repository.ApplicationFilter) ([]*models.CareerApplication, int64, error) {
	return s.listFn(ctx, f)
}
func (s *applicationRepoStub) Update(ctx context.Context, app *models.CareerApplication) error {
	return s.updateFn(ctx, app)
}
func (s *applicationRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *applicationRepoStub) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.countByStatusFn(ctx, status)
}

func noopApplicationRepo() *applicationRepoStub {
	return &applicationRepoStub{
		createFn: func(_ context.Context, _ *models.CareerApplication) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.CareerApplication, error) {
			return &models.CareerApplication{}, nil
		},
		listFn: func(_ context.Context, _ repository.ApplicationFilter) ([]*models.CareerApplication, int64, error) {
			return nil, 0, nil
		},
		updateFn:        func(_ context.Context, _ *models.CareerApplication) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		countByStatusFn: func(_ context.Context, _ string) (int64, error) { return 0, nil },
	}
}

func TestApplicationService_CreateApplication_Validation(t *testing.T) {
	t.Parallel()

	repo := noopApplicationRepo()
	repo.createFn = func(_ context.Context, _ *models.CareerApplication) error {
		t.Fatal("store must not be touched on validation failure")
		return nil
	}
	svc := NewApplicationService(repo)
	ctx := context.Background()

	t.Run("missing position", func(t *testing.T) {
		_, err := svc.CreateApplication(ctx, CreateApplicationInput{
			Name: "A", Email: "a@example.com", Experience: "5y", Skills: "Go",
		})
		assertValidationError(t, err)
		assert.Equal(t, "Position is required", err.(*models.AppError).Message)
	})

	t.Run("short cover letter", func(t *testing.T) {
		_, err := svc.CreateApplication(ctx, CreateApplicationInput{
			Name: "A", Email: "a@example.com", Position: "SRE",
			Experience: "5y", Skills: "Go", CoverLetter: "too short",
		})
		assertValidationError(t, err)
		assert.Equal(t, "Cover letter must be at least 50 characters", err.(*models.AppError).Message)
	})

	t.Run("absent cover letter passes", func(t *testing.T) {
		repo2 := noopApplicationRepo()
		svc2 := NewApplicationService(repo2)
		_, err := svc2.CreateApplication(ctx, CreateApplicationInput{
			Name: "A", Email: "a@example.com", Position: "SRE",
			Experience: "5y", Skills: "Go",
		})
		require.NoError(t, err)
	})
}

func TestApplicationService_CreateApplication_StartsPending(t *testing.T) {
	t.Parallel()

	var created *models.CareerApplication
	repo := noopApplicationRepo()
	repo.createFn = func(_ context.Context, a *models.CareerApplication) error {
		a.ID = 11
		created = a
		return nil
	}

	svc := NewApplicationService(repo)
	app, err := svc.CreateApplication(context.Background(), CreateApplicationInput{
		Name:        "Applicant",
		Email:       "Applicant@Example.com",
		Position:    "Backend Engineer",
		Experience:  "4 years",
		Skills:      "Go, Postgres",
		CoverLetter: strings.Repeat("I would really like this position. ", 3),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(11), app.ID)
	assert.Equal(t, models.ApplicationStatusPending, created.Status)
	assert.Equal(t, "applicant@example.com", created.Email)
}

func TestApplicationService_UpdateApplicationStatus(t *testing.T) {
	t.Parallel()

	t.Run("unknown status rejected with exact message", func(t *testing.T) {
		t.Parallel()
		svc := NewApplicationService(noopApplicationRepo())
		_, err := svc.UpdateApplicationStatus(context.Background(), 1, "shortlisted")
		assertValidationError(t, err)
		assert.Equal(t,
			"Status must be: pending, reviewing, interviewed, hired, or rejected",
			err.(*models.AppError).Message)
	})

	t.Run("hire persists", func(t *testing.T) {
		t.Parallel()
		repo := noopApplicationRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.CareerApplication, error) {
			return &models.CareerApplication{ID: 1, Status: models.ApplicationStatusInterviewed}, nil
		}
		updated := false
		repo.updateFn = func(_ context.Context, a *models.CareerApplication) error {
			updated = true
			assert.Equal(t, models.ApplicationStatusHired, a.Status)
			return nil
		}
		svc := NewApplicationService(repo)
		_, err := svc.UpdateApplicationStatus(context.Background(), 1, models.ApplicationStatusHired)
		require.NoError(t, err)
		assert.True(t, updated)
	})
}

func TestApplicationService_ApplicationStats_AllZero(t *testing.T) {
	t.Parallel()

	svc := NewApplicationService(noopApplicationRepo())
	stats, err := svc.ApplicationStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.Pending)
	assert.EqualValues(t, 0, stats.Reviewing)
	assert.EqualValues(t, 0, stats.Interviewed)
	assert.EqualValues(t, 0, stats.Hired)
	assert.EqualValues(t, 0, stats.Rejected)
	assert.EqualValues(t, 0, stats.Total)
}

func TestApplicationService_ApplicationStats(t *testing.T) {
	t.Parallel()

	repo := noopApplicationRepo()
	repo.countByStatusFn = func(_ context.Context, status string) (int64, error) {
		switch status {
		case models.ApplicationStatusPending:
			return 6, nil
		case models.ApplicationStatusHired:
			return 1, nil
		}
		return 0, nil
	}

	svc := NewApplicationService(repo)
	stats, err := svc.ApplicationStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 6, stats.Pending)
	assert.EqualValues(t, 1, stats.Hired)
	assert.EqualValues(t, 7, stats.Total)
}
