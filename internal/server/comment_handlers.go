package server

import (
	"blogspot/internal/models"
	"blogspot/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		BlogID      string `json:"blog_id"`
		AuthorName  string `json:"author_name"`
		AuthorEmail string `json:"author_email"`
		Content     string `json:"content"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		BlogID:      req.BlogID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondCreated(c, comment, "Comment submitted for review")
}

// GetBlogComments handles GET /api/blogs/:id/comments
func (s *Server) GetBlogComments(c *fiber.Ctx) error {
	page := parsePagination(c)

	comments, total, err := s.commentService.ListApprovedComments(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondList(c, comments, total, "Comments fetched successfully")
}

// GetComments handles GET /api/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	page := parsePagination(c)

	comments, total, err := s.commentService.ListComments(c.Context(), service.ListCommentsInput{
		BlogID: c.Query("blog_id"),
		Status: c.Query("status"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondList(c, comments, total, "Comments fetched successfully")
}

// UpdateCommentStatus handles PUT /api/comments/:id/status
func (s *Server) UpdateCommentStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	comment, err := s.commentService.UpdateCommentStatus(c.Context(), id, req.Status)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, comment, "Comment status updated successfully")
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), id); err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, nil, "Comment deleted successfully")
}

// GetCommentStats handles GET /api/comments/stats
func (s *Server) GetCommentStats(c *fiber.Ctx) error {
	stats, err := s.commentService.CommentStats(c.Context())
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, stats, "Comment statistics fetched successfully")
}
