package repository

import (
	"context"
	"errors"

	"blogspot/internal/models"
	"blogspot/internal/observability"

	"gorm.io/gorm"
)

// CommentFilter narrows a comment listing.
type CommentFilter struct {
	BlogID string
	Status string
	Limit  int
	Offset int
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	List(ctx context.Context, filter CommentFilter) ([]*models.Comment, int64, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	defer observability.TrackQuery("create", "comments")()
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	defer observability.TrackQuery("get", "comments")()

	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) filtered(ctx context.Context, f CommentFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Comment{})
	if f.BlogID != "" {
		q = q.Where("blog_id = ?", f.BlogID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

func (r *commentRepository) List(ctx context.Context, f CommentFilter) ([]*models.Comment, int64, error) {
	defer observability.TrackQuery("list", "comments")()

	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// gorm treats LIMIT 0 literally; a zero-value filter means "no limit".
	limit := f.Limit
	if limit <= 0 {
		limit = -1
	}

	comments := []*models.Comment{}
	err := r.filtered(ctx, f).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(f.Offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	defer observability.TrackQuery("update", "comments")()
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "comments")()

	res := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Comment", id)
	}
	return nil
}

func (r *commentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	defer observability.TrackQuery("count", "comments")()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
