package service

import (
	"context"
	"testing"

	"blogspot/internal/models"
	"blogspot/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	getByIDFn       func(context.Context, uint) (*models.Comment, error)
	listFn          func(context.Context, repository.CommentFilter) ([]*models.Comment, int64, error)
	updateFn        func(context.Context, *models.Comment) error
	deleteFn        func(context.Context, uint) error
	countByStatusFn func(context.Context, string) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) List(ctx context.Context, f repository.CommentFilter) ([]*models.Comment, int64, error) {
	return s.listFn(ctx, f)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.countByStatusFn(ctx, status)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:  func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listFn: func(_ context.Context, _ repository.CommentFilter) ([]*models.Comment, int64, error) {
			return nil, 0, nil
		},
		updateFn:        func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		countByStatusFn: func(_ context.Context, _ string) (int64, error) { return 0, nil },
	}
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()

	repo := noopCommentRepo()
	repo.createFn = func(_ context.Context, _ *models.Comment) error {
		t.Fatal("store must not be touched on validation failure")
		return nil
	}
	svc := NewCommentService(repo)
	ctx := context.Background()

	t.Run("missing blog id", func(t *testing.T) {
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			AuthorName: "A", AuthorEmail: "a@example.com", Content: "hi",
		})
		assertValidationError(t, err)
		assert.Equal(t, "Blog ID is required", err.(*models.AppError).Message)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			BlogID: "1", AuthorName: "A", AuthorEmail: "not-an-email", Content: "hi",
		})
		assertValidationError(t, err)
		assert.Equal(t, "Please provide a valid email address", err.(*models.AppError).Message)
	})

	t.Run("presence checked before email format", func(t *testing.T) {
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			BlogID: "1", AuthorEmail: "not-an-email", Content: "hi",
		})
		assertValidationError(t, err)
		assert.Equal(t, "Name is required", err.(*models.AppError).Message)
	})
}

func TestCommentService_CreateComment_StartsPending(t *testing.T) {
	t.Parallel()

	var created *models.Comment
	repo := noopCommentRepo()
	repo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 3
		created = c
		return nil
	}

	svc := NewCommentService(repo)
	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		BlogID:      "1",
		AuthorName:  "Reader",
		AuthorEmail: "  Reader@Example.COM ",
		Content:     "Nice one",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), comment.ID)
	assert.Equal(t, models.CommentStatusPending, created.Status)
	assert.Equal(t, "reader@example.com", created.AuthorEmail)
}

func TestCommentService_ListApprovedComments(t *testing.T) {
	t.Parallel()

	repo := noopCommentRepo()
	var gotFilter repository.CommentFilter
	repo.listFn = func(_ context.Context, f repository.CommentFilter) ([]*models.Comment, int64, error) {
		gotFilter = f
		return []*models.Comment{{ID: 1, Status: models.CommentStatusApproved}}, 1, nil
	}

	svc := NewCommentService(repo)
	comments, total, err := svc.ListApprovedComments(context.Background(), "1", 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, comments, 1)
	assert.Equal(t, models.CommentStatusApproved, gotFilter.Status)
	assert.Equal(t, "1", gotFilter.BlogID)
}

func TestCommentService_UpdateCommentStatus(t *testing.T) {
	t.Parallel()

	t.Run("invalid status", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
			t.Fatal("store must not be touched on validation failure")
			return nil, nil
		}
		svc := NewCommentService(repo)
		_, err := svc.UpdateCommentStatus(context.Background(), 1, "spam")
		assertValidationError(t, err)
		assert.Equal(t, "Status must be: pending, approved, or rejected", err.(*models.AppError).Message)
	})

	t.Run("approve persists", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
			return &models.Comment{ID: 1, Status: models.CommentStatusPending}, nil
		}
		updated := false
		repo.updateFn = func(_ context.Context, c *models.Comment) error {
			updated = true
			assert.Equal(t, models.CommentStatusApproved, c.Status)
			return nil
		}
		svc := NewCommentService(repo)
		comment, err := svc.UpdateCommentStatus(context.Background(), 1, models.CommentStatusApproved)
		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, models.CommentStatusApproved, comment.Status)
	})

	t.Run("idempotent re-apply skips the write", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
			return &models.Comment{ID: 1, Status: models.CommentStatusApproved}, nil
		}
		repo.updateFn = func(_ context.Context, _ *models.Comment) error {
			t.Fatal("unchanged status must not write")
			return nil
		}
		svc := NewCommentService(repo)
		_, err := svc.UpdateCommentStatus(context.Background(), 1, models.CommentStatusApproved)
		require.NoError(t, err)
	})
}

func TestCommentService_CommentStats(t *testing.T) {
	t.Parallel()

	repo := noopCommentRepo()
	repo.countByStatusFn = func(_ context.Context, status string) (int64, error) {
		switch status {
		case models.CommentStatusPending:
			return 4, nil
		case models.CommentStatusApproved:
			return 10, nil
		case models.CommentStatusRejected:
			return 1, nil
		}
		return 0, nil
	}

	svc := NewCommentService(repo)
	stats, err := svc.CommentStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.Pending)
	assert.EqualValues(t, 10, stats.Approved)
	assert.EqualValues(t, 1, stats.Rejected)
	assert.EqualValues(t, 15, stats.Total)
}
