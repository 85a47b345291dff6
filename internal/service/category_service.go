package service

import (
	"context"
	"regexp"
	"strings"

	"blogspot/internal/models"
	"blogspot/internal/repository"
	"blogspot/internal/validation"
)

var slugCleanup = regexp.MustCompile(`[^a-z0-9]+`)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

type CreateCategoryInput struct {
	Name        string
	Slug        string
	Description string
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Slugify lowercases and collapses everything outside [a-z0-9] to single
// hyphens.
func Slugify(s string) string {
	slug := slugCleanup.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	return strings.Trim(slug, "-")
}

func (s *CategoryService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	if err := validation.Required(
		validation.Field{Name: "Name", Value: in.Name},
	); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	slug := Slugify(in.Slug)
	if slug == "" {
		slug = Slugify(in.Name)
	}
	if slug == "" {
		return nil, models.NewValidationError("Slug is required")
	}

	category := &models.Category{
		Name:        strings.TrimSpace(in.Name),
		Slug:        slug,
		Description: strings.TrimSpace(in.Description),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, int64, error) {
	return s.categoryRepo.List(ctx)
}
