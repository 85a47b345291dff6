package server

import (
	"blogspot/internal/models"
	"blogspot/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetBlogs handles GET /api/blogs
func (s *Server) GetBlogs(c *fiber.Ctx) error {
	page := parsePagination(c)

	blogs, total, err := s.blogService.ListBlogs(c.Context(), service.ListBlogsInput{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondList(c, blogs, total, "Blogs fetched successfully")
}

// SearchBlogs handles GET /api/blogs/search?q=...
func (s *Server) SearchBlogs(c *fiber.Ctx) error {
	page := parsePagination(c)

	blogs, total, err := s.blogService.SearchBlogs(c.Context(), c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondList(c, blogs, total, "Search results fetched successfully")
}

// GetBlog handles GET /api/blogs/:id
func (s *Server) GetBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	blog, err := s.blogService.GetBlog(c.Context(), id)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, blog, "Blog fetched successfully")
}

// CreateBlog handles POST /api/blogs
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	var req struct {
		Title         string   `json:"title"`
		Content       string   `json:"content"`
		Excerpt       string   `json:"excerpt"`
		Author        string   `json:"author"`
		Category      string   `json:"category"`
		Tags          []string `json:"tags"`
		FeaturedImage string   `json:"featured_image"`
		Status        string   `json:"status"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	blog, err := s.blogService.CreateBlog(c.Context(), service.CreateBlogInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Author:        req.Author,
		Category:      req.Category,
		Tags:          req.Tags,
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondCreated(c, blog, "Blog created successfully")
}

// UpdateBlog handles PUT /api/blogs/:id
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	// Pointer fields distinguish "absent" from "set to empty".
	var req struct {
		Title         *string   `json:"title"`
		Content       *string   `json:"content"`
		Excerpt       *string   `json:"excerpt"`
		Author        *string   `json:"author"`
		Category      *string   `json:"category"`
		Tags          *[]string `json:"tags"`
		FeaturedImage *string   `json:"featured_image"`
		Status        *string   `json:"status"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	blog, err := s.blogService.UpdateBlog(c.Context(), id, service.UpdateBlogInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Author:        req.Author,
		Category:      req.Category,
		Tags:          req.Tags,
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, blog, "Blog updated successfully")
}

// UpdateBlogStatus handles PUT /api/blogs/:id/status
func (s *Server) UpdateBlogStatus(c *fiber.Ctx) error {
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

	blog, err := s.blogService.UpdateBlogStatus(c.Context(), id, req.Status)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, blog, "Blog status updated successfully")
}

// DeleteBlog handles DELETE /api/blogs/:id
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.blogService.DeleteBlog(c.Context(), id); err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, nil, "Blog deleted successfully")
}

// RecordBlogView handles POST /api/blogs/:id/views
func (s *Server) RecordBlogView(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	blog, err := s.blogService.RecordView(c.Context(), id)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, blog, "View recorded")
}

// LikeBlog handles POST /api/blogs/:id/like
func (s *Server) LikeBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	blog, err := s.blogService.LikeBlog(c.Context(), id)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, blog, "Blog liked")
}

// UnlikeBlog handles DELETE /api/blogs/:id/like
func (s *Server) UnlikeBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	blog, err := s.blogService.UnlikeBlog(c.Context(), id)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, blog, "Blog unliked")
}

// GetBlogStats handles GET /api/blogs/stats
func (s *Server) GetBlogStats(c *fiber.Ctx) error {
	stats, err := s.blogService.BlogStats(c.Context())
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, stats, "Blog statistics fetched successfully")
}
