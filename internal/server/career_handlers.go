package server

import (
	"blogspot/internal/models"
	"blogspot/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateApplication handles POST /api/careers
func (s *Server) CreateApplication(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Position    string `json:"position"`
		Experience  string `json:"experience"`
		Skills      string `json:"skills"`
		CoverLetter string `json:"cover_letter"`
		ResumeURL   string `json:"resume_url"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	app, err := s.applicationService.CreateApplication(c.Context(), service.CreateApplicationInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Position:    req.Position,
		Experience:  req.Experience,
		Skills:      req.Skills,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondCreated(c, app, "Application submitted successfully")
}

// GetApplications handles GET /api/careers
func (s *Server) GetApplications(c *fiber.Ctx) error {
	page := parsePagination(c)

	apps, total, err := s.applicationService.ListApplications(c.Context(), service.ListApplicationsInput{
		Status:   c.Query("status"),
		Position: c.Query("position"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondList(c, apps, total, "Applications fetched successfully")
}

// GetApplication handles GET /api/careers/:id
func (s *Server) GetApplication(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	app, err := s.applicationService.GetApplication(c.Context(), id)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, app, "Application fetched successfully")
}

// UpdateApplicationStatus handles PUT /api/careers/:id/status
func (s *Server) UpdateApplicationStatus(c *fiber.Ctx) error {
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

	app, err := s.applicationService.UpdateApplicationStatus(c.Context(), id, req.Status)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, app, "Application status updated successfully")
}

// DeleteApplication handles DELETE /api/careers/:id
func (s *Server) DeleteApplication(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.applicationService.DeleteApplication(c.Context(), id); err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, nil, "Application deleted successfully")
}

// GetApplicationStats handles GET /api/careers/stats
func (s *Server) GetApplicationStats(c *fiber.Ctx) error {
	stats, err := s.applicationService.ApplicationStats(c.Context())
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, stats, "Application statistics fetched successfully")
}
