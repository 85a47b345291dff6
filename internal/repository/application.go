package repository

import (
	"context"
	"errors"

	"blogspot/internal/models"
	"blogspot/internal/observability"

	"gorm.io/gorm"
)

// ApplicationFilter narrows a career application listing.
type ApplicationFilter struct {
	Status   string
	Position string
	Limit    int
	Offset   int
}

// ApplicationRepository defines the interface for career application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.CareerApplication) error
	GetByID(ctx context.Context, id uint) (*models.CareerApplication, error)
	List(ctx context.Context, filter ApplicationFilter) ([]*models.CareerApplication, int64, error)
	Update(ctx context.Context, app *models.CareerApplication) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new career application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *models.CareerApplication) error {
	defer observability.TrackQuery("create", "career_applications")()
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.CareerApplication, error) {
	defer observability.TrackQuery("get", "career_applications")()

	var app models.CareerApplication
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Application", id)
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) filtered(ctx context.Context, f ApplicationFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.CareerApplication{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Position != "" {
		q = q.Where("position = ?", f.Position)
	}
	return q
}

func (r *applicationRepository) List(ctx context.Context, f ApplicationFilter) ([]*models.CareerApplication, int64, error) {
	defer observability.TrackQuery("list", "career_applications")()

	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// gorm treats LIMIT 0 literally; a zero-value filter means "no limit".
	limit := f.Limit
	if limit <= 0 {
		limit = -1
	}

	apps := []*models.CareerApplication{}
	err := r.filtered(ctx, f).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(f.Offset).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *applicationRepository) Update(ctx context.Context, app *models.CareerApplication) error {
	defer observability.TrackQuery("update", "career_applications")()
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *applicationRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "career_applications")()

	res := r.db.WithContext(ctx).Delete(&models.CareerApplication{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Application", id)
	}
	return nil
}

func (r *applicationRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	defer observability.TrackQuery("count", "career_applications")()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CareerApplication{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
