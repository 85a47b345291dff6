// Package repository provides data access layer implementations for the application.
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

// BlogFilter narrows a blog listing.
type BlogFilter struct {
	Status string // equality filter, empty means all
	Search string // case-insensitive substring match on title
	Limit  int
	Offset int
}

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id uint) (*models.Blog, error)
	List(ctx context.Context, filter BlogFilter) ([]*models.Blog, int64, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	IncrementViews(ctx context.Context, id uint) (*models.Blog, error)
	AdjustLikes(ctx context.Context, id uint, delta int) (*models.Blog, error)
}

// blogRepository implements BlogRepository
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	defer observability.TrackQuery("create", "blogs")()
	return r.db.WithContext(ctx).Create(blog).Error
}

func (r *blogRepository) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	defer observability.TrackQuery("get", "blogs")()

	var blog models.Blog
	err := cache.Aside(ctx, cache.BlogKey(id), "blog", &blog, cache.BlogTTL, func() error {
		return r.db.WithContext(ctx).First(&blog, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Blog", id)
		}
		return nil, err
	}
	return &blog, nil
}

// filtered returns a fresh query with the filter's WHERE clauses applied.
// Count and Find must not share a chain; gorm keeps clause state between calls.
func (r *blogRepository) filtered(ctx context.Context, f BlogFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Blog{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	return q
}

func (r *blogRepository) List(ctx context.Context, f BlogFilter) ([]*models.Blog, int64, error) {
	defer observability.TrackQuery("list", "blogs")()

	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// gorm treats LIMIT 0 literally; a zero-value filter means "no limit".
	limit := f.Limit
	if limit <= 0 {
		limit = -1
	}

	blogs := []*models.Blog{}
	err := r.filtered(ctx, f).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(f.Offset).
		Find(&blogs).Error
	if err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	defer observability.TrackQuery("update", "blogs")()

	// Counters are adjusted through UpdateColumn; writing them here would
	// clobber increments that raced this edit.
	if err := r.db.WithContext(ctx).Omit("views", "likes").Save(blog).Error; err != nil {
		return err
	}
	cache.InvalidateBlog(ctx, blog.ID)
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "blogs")()

	res := r.db.WithContext(ctx).Delete(&models.Blog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Blog", id)
	}
	cache.InvalidateBlog(ctx, id)
	return nil
}

func (r *blogRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	defer observability.TrackQuery("count", "blogs")()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *blogRepository) IncrementViews(ctx context.Context, id uint) (*models.Blog, error) {
	defer observability.TrackQuery("update", "blogs")()

	res := r.db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Blog", id)
	}
	cache.InvalidateBlog(ctx, id)
	return r.GetByID(ctx, id)
}

func (r *blogRepository) AdjustLikes(ctx context.Context, id uint, delta int) (*models.Blog, error) {
	defer observability.TrackQuery("update", "blogs")()

	q := r.db.WithContext(ctx).Model(&models.Blog{}).Where("id = ?", id)
	if delta < 0 {
		// Likes never go below zero; an unlike at the floor is a no-op.
		q = q.Where("likes > 0")
	}
	res := q.UpdateColumn("likes", gorm.Expr("likes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	cache.InvalidateBlog(ctx, id)
	// RowsAffected is zero both for a missing blog and a floored unlike;
	// the fetch below distinguishes the two.
	return r.GetByID(ctx, id)
}
