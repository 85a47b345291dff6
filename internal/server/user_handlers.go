package server

import (
	"blogspot/internal/models"
	"blogspot/internal/service"

	"github.com/gofiber/fiber/v2"
)

// User IDs are issued by the identity provider and are opaque strings,
// so these handlers read the raw path parameter instead of parseID.

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	page := parsePagination(c)

	users, total, err := s.userService.ListUsers(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondList(c, users, total, "Users fetched successfully")
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, user, "User fetched successfully")
}

// UpdateUser handles PUT /api/users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	user, err := s.userService.UpdateUser(c.Context(), c.Params("id"), service.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, user, "User updated successfully")
}

// UpdateUserStatus handles PUT /api/users/:id/status
func (s *Server) UpdateUserStatus(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	user, err := s.userService.UpdateUserStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, user, "User status updated successfully")
}

// DeleteUser handles DELETE /api/users/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	if err := s.userService.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, nil, "User deleted successfully")
}

// GetUserStats handles GET /api/users/stats
func (s *Server) GetUserStats(c *fiber.Ctx) error {
	stats, err := s.userService.UserStats(c.Context())
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, stats, "User statistics fetched successfully")
}
