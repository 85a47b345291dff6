package server

import (
	"blogspot/internal/models"
	"blogspot/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateTicket handles POST /api/support
func (s *Server) CreateTicket(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Subject  string `json:"subject"`
		Message  string `json:"message"`
		Priority string `json:"priority"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	ticket, err := s.ticketService.CreateTicket(c.Context(), service.CreateTicketInput{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		Priority: req.Priority,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondCreated(c, ticket, "Support ticket created successfully")
}

// GetTickets handles GET /api/support
func (s *Server) GetTickets(c *fiber.Ctx) error {
	page := parsePagination(c)

	tickets, total, err := s.ticketService.ListTickets(c.Context(), service.ListTicketsInput{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondList(c, tickets, total, "Tickets fetched successfully")
}

// GetTicket handles GET /api/support/:id
func (s *Server) GetTicket(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	ticket, err := s.ticketService.GetTicket(c.Context(), id)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, ticket, "Ticket fetched successfully")
}

// UpdateTicketStatus handles PUT /api/support/:id/status
func (s *Server) UpdateTicketStatus(c *fiber.Ctx) error {
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

	ticket, err := s.ticketService.UpdateTicketStatus(c.Context(), id, req.Status)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, ticket, "Ticket status updated successfully")
}

// DeleteTicket handles DELETE /api/support/:id
func (s *Server) DeleteTicket(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.ticketService.DeleteTicket(c.Context(), id); err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, nil, "Ticket deleted successfully")
}

// GetTicketStats handles GET /api/support/stats
func (s *Server) GetTicketStats(c *fiber.Ctx) error {
	stats, err := s.ticketService.TicketStats(c.Context())
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, stats, "Ticket statistics fetched successfully")
}
