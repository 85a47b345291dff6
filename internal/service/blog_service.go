// Package service holds the business rules between the HTTP layer and the
// repositories: input validation, normalization, partial-update merges, and
// stats fan-out.
package service

import (
	"context"
	"strings"

	"blogspot/internal/models"
	"blogspot/internal/repository"
	"blogspot/internal/validation"
)

type BlogService struct {
	blogRepo repository.BlogRepository
}

type CreateBlogInput struct {
	Title         string
	Content       string
	Excerpt       string
	Author        string
	Category      string
	Tags          []string
	FeaturedImage string
	Status        string
}

// UpdateBlogInput is a partial merge: nil fields keep their stored value.
type UpdateBlogInput struct {
	Title         *string
	Content       *string
	Excerpt       *string
	Author        *string
	Category      *string
	Tags          *[]string
	FeaturedImage *string
	Status        *string
}

type ListBlogsInput struct {
	Status string
	Search string
	Limit  int
	Offset int
}

// BlogStats mirrors the admin dashboard counters.
type BlogStats struct {
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
	Total     int64 `json:"total"`
}

func NewBlogService(blogRepo repository.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

func (s *BlogService) CreateBlog(ctx context.Context, in CreateBlogInput) (*models.Blog, error) {
	if err := validation.Required(
		validation.Field{Name: "Title", Value: in.Title},
		validation.Field{Name: "Content", Value: in.Content},
		validation.Field{Name: "Author", Value: in.Author},
		validation.Field{Name: "Category", Value: in.Category},
	); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.OneOf("Status", in.Status, models.BlogStatuses); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	blog := &models.Blog{
		Title:         strings.TrimSpace(in.Title),
		Content:       in.Content,
		Excerpt:       strings.TrimSpace(in.Excerpt),
		Author:        strings.TrimSpace(in.Author),
		Category:      strings.TrimSpace(in.Category),
		Tags:          in.Tags,
		FeaturedImage: strings.TrimSpace(in.FeaturedImage),
		Status:        in.Status, // empty falls back to the column default
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) GetBlog(ctx context.Context, id uint) (*models.Blog, error) {
	return s.blogRepo.GetByID(ctx, id)
}

func (s *BlogService) ListBlogs(ctx context.Context, in ListBlogsInput) ([]*models.Blog, int64, error) {
	if err := validation.OneOf("Status", in.Status, models.BlogStatuses); err != nil {
		return nil, 0, models.NewValidationError(err.Error())
	}
	return s.blogRepo.List(ctx, repository.BlogFilter{
		Status: in.Status,
		Search: strings.TrimSpace(in.Search),
		Limit:  in.Limit,
		Offset: in.Offset,
	})
}

// SearchBlogs looks for published blogs whose title contains q.
func (s *BlogService) SearchBlogs(ctx context.Context, q string, limit, offset int) ([]*models.Blog, int64, error) {
	if strings.TrimSpace(q) == "" {
		return nil, 0, models.NewValidationError("Search query is required")
	}
	return s.blogRepo.List(ctx, repository.BlogFilter{
		Status: models.BlogStatusPublished,
		Search: strings.TrimSpace(q),
		Limit:  limit,
		Offset: offset,
	})
}

func (s *BlogService) UpdateBlog(ctx context.Context, id uint, in UpdateBlogInput) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if err := validation.Required(validation.Field{Name: "Title", Value: *in.Title}); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		blog.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		if err := validation.Required(validation.Field{Name: "Content", Value: *in.Content}); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		blog.Content = *in.Content
	}
	if in.Excerpt != nil {
		blog.Excerpt = strings.TrimSpace(*in.Excerpt)
	}
	if in.Author != nil {
		blog.Author = strings.TrimSpace(*in.Author)
	}
	if in.Category != nil {
		blog.Category = strings.TrimSpace(*in.Category)
	}
	if in.Tags != nil {
		blog.Tags = *in.Tags
	}
	if in.FeaturedImage != nil {
		blog.FeaturedImage = strings.TrimSpace(*in.FeaturedImage)
	}
	if in.Status != nil {
		if err := validation.OneOf("Status", *in.Status, models.BlogStatuses); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if *in.Status != "" {
			blog.Status = *in.Status
		}
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// UpdateBlogStatus moves a blog between draft and published. Re-applying the
// current status is a no-op that still succeeds.
func (s *BlogService) UpdateBlogStatus(ctx context.Context, id uint, status string) (*models.Blog, error) {
	if err := validation.Required(validation.Field{Name: "Status", Value: status}); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.OneOf("Status", status, models.BlogStatuses); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog.Status == status {
		return blog, nil
	}

	blog.Status = status
	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) DeleteBlog(ctx context.Context, id uint) error {
	return s.blogRepo.Delete(ctx, id)
}

func (s *BlogService) RecordView(ctx context.Context, id uint) (*models.Blog, error) {
	return s.blogRepo.IncrementViews(ctx, id)
}

func (s *BlogService) LikeBlog(ctx context.Context, id uint) (*models.Blog, error) {
	return s.blogRepo.AdjustLikes(ctx, id, 1)
}

func (s *BlogService) UnlikeBlog(ctx context.Context, id uint) (*models.Blog, error) {
	return s.blogRepo.AdjustLikes(ctx, id, -1)
}

// BlogStats issues one count per status; total is their sum, so the numbers
// always reconcile even if writes land between the queries.
func (s *BlogService) BlogStats(ctx context.Context) (*BlogStats, error) {
	stats := &BlogStats{}
	for _, status := range models.BlogStatuses {
		count, err := s.blogRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		switch status {
		case models.BlogStatusPublished:
			stats.Published = count
		case models.BlogStatusDraft:
			stats.Draft = count
		}
		stats.Total += count
	}
	return stats, nil
}
