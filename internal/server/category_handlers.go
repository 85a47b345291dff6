package server

import (
	"blogspot/internal/models"
	"blogspot/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCategories handles GET /api/categories
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, total, err := s.categoryService.ListCategories(c.Context())
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondList(c, categories, total, "Categories fetched successfully")
}

// CreateCategory handles POST /api/categories
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	category, err := s.categoryService.CreateCategory(c.Context(), service.CreateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondCreated(c, category, "Category created successfully")
}
