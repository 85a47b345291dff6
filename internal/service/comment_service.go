package service

import (
	"context"
	"strings"

	"blogspot/internal/models"
	"blogspot/internal/repository"
	"blogspot/internal/validation"
)

type CommentService struct {
	commentRepo repository.CommentRepository
}

type CreateCommentInput struct {
	BlogID      string
	AuthorName  string
	AuthorEmail string
	Content     string
}

type ListCommentsInput struct {
	BlogID string
	Status string
	Limit  int
	Offset int
}

type CommentStats struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Total    int64 `json:"total"`
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// CreateComment accepts a public submission. New comments always start
// pending regardless of what the caller sends.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := validation.Required(
		validation.Field{Name: "Blog ID", Value: in.BlogID},
		validation.Field{Name: "Name", Value: in.AuthorName},
		validation.Field{Name: "Email", Value: in.AuthorEmail},
		validation.Field{Name: "Content", Value: in.Content},
	); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.AuthorEmail); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment := &models.Comment{
		BlogID:      strings.TrimSpace(in.BlogID),
		AuthorName:  strings.TrimSpace(in.AuthorName),
		AuthorEmail: validation.NormalizeEmail(in.AuthorEmail),
		Content:     in.Content,
		Status:      models.CommentStatusPending,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *CommentService) ListComments(ctx context.Context, in ListCommentsInput) ([]*models.Comment, int64, error) {
	if err := validation.OneOf("Status", in.Status, models.CommentStatuses); err != nil {
		return nil, 0, models.NewValidationError(err.Error())
	}
	return s.commentRepo.List(ctx, repository.CommentFilter{
		BlogID: strings.TrimSpace(in.BlogID),
		Status: in.Status,
		Limit:  in.Limit,
		Offset: in.Offset,
	})
}

// ListApprovedComments is the public view of a blog's comment thread.
func (s *CommentService) ListApprovedComments(ctx context.Context, blogID string, limit, offset int) ([]*models.Comment, int64, error) {
	return s.commentRepo.List(ctx, repository.CommentFilter{
		BlogID: strings.TrimSpace(blogID),
		Status: models.CommentStatusApproved,
		Limit:  limit,
		Offset: offset,
	})
}

// UpdateCommentStatus moderates a comment. Re-applying the current status
// succeeds without another write.
func (s *CommentService) UpdateCommentStatus(ctx context.Context, id uint, status string) (*models.Comment, error) {
	if err := validation.Required(validation.Field{Name: "Status", Value: status}); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.OneOf("Status", status, models.CommentStatuses); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.Status == status {
		return comment, nil
	}

	comment.Status = status
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	return s.commentRepo.Delete(ctx, id)
}

func (s *CommentService) CommentStats(ctx context.Context) (*CommentStats, error) {
	stats := &CommentStats{}
	for _, status := range models.CommentStatuses {
		count, err := s.commentRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		switch status {
		case models.CommentStatusPending:
			stats.Pending = count
		case models.CommentStatusApproved:
			stats.Approved = count
		case models.CommentStatusRejected:
			stats.Rejected = count
		}
		stats.Total += count
	}
	return stats, nil
}
