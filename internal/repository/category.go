package repository

import (
	"context"
	"errors"
	"strings"

	"blogspot/internal/cache"
	"blogspot/internal/models"
	"blogspot/internal/observability"

	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	List(ctx context.Context) ([]*models.Category, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	defer observability.TrackQuery("create", "categories")()

	err := r.db.WithContext(ctx).Create(category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.NewValidationError("Category already exists")
		}
		return err
	}
	cache.InvalidateCategories(ctx)
	return nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*models.Category, int64, error) {
	categories := []*models.Category{}
	err := cache.Aside(ctx, cache.CategoriesListKey, "categories", &categories, cache.CategoriesTTL, func() error {
		defer observability.TrackQuery("list", "categories")()
		return r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return categories, int64(len(categories)), nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	defer observability.TrackQuery("get", "categories")()

	var category models.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Category", slug)
		}
		return nil, err
	}
	return &category, nil
}
