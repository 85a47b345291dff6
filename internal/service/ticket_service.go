package service

import (
	"context"
	"strings"

	"blogspot/internal/models"
	"blogspot/internal/repository"
	"blogspot/internal/validation"
)

type TicketService struct {
	ticketRepo repository.TicketRepository
}

type CreateTicketInput struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	Priority string
}

type ListTicketsInput struct {
	Status   string
	Priority string
	Limit    int
	Offset   int
}

type TicketStats struct {
	Open         int64 `json:"open"`
	InProgress   int64 `json:"in_progress"`
	Closed       int64 `json:"closed"`
	HighPriority int64 `json:"high_priority"`
	Total        int64 `json:"total"`
}

func NewTicketService(ticketRepo repository.TicketRepository) *TicketService {
	return &TicketService{ticketRepo: ticketRepo}
}

func (s *TicketService) CreateTicket(ctx context.Context, in CreateTicketInput) (*models.SupportTicket, error) {
	if err := validation.Required(
		validation.Field{Name: "Name", Value: in.Name},
		validation.Field{Name: "Email", Value: in.Email},
		validation.Field{Name: "Subject", Value: in.Subject},
		validation.Field{Name: "Message", Value: in.Message},
	); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.OneOf("Priority", in.Priority, models.TicketPriorities); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	ticket := &models.SupportTicket{
		Name:     strings.TrimSpace(in.Name),
		Email:    validation.NormalizeEmail(in.Email),
		Subject:  strings.TrimSpace(in.Subject),
		Message:  in.Message,
		Priority: in.Priority, // empty falls back to medium
		Status:   models.TicketStatusOpen,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) GetTicket(ctx context.Context, id uint) (*models.SupportTicket, error) {
	return s.ticketRepo.GetByID(ctx, id)
}

func (s *TicketService) ListTickets(ctx context.Context, in ListTicketsInput) ([]*models.SupportTicket, int64, error) {
	if err := validation.OneOf("Status", in.Status, models.TicketStatuses); err != nil {
		return nil, 0, models.NewValidationError(err.Error())
	}
	if err := validation.OneOf("Priority", in.Priority, models.TicketPriorities); err != nil {
		return nil, 0, models.NewValidationError(err.Error())
	}
	return s.ticketRepo.List(ctx, repository.TicketFilter{
		Status:   in.Status,
		Priority: in.Priority,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
}

func (s *TicketService) UpdateTicketStatus(ctx context.Context, id uint, status string) (*models.SupportTicket, error) {
	if err := validation.Required(validation.Field{Name: "Status", Value: status}); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.OneOf("Status", status, models.TicketStatuses); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket.Status == status {
		return ticket, nil
	}

	ticket.Status = status
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) DeleteTicket(ctx context.Context, id uint) error {
	return s.ticketRepo.Delete(ctx, id)
}

func (s *TicketService) TicketStats(ctx context.Context) (*TicketStats, error) {
	stats := &TicketStats{}
	for _, status := range models.TicketStatuses {
		count, err := s.ticketRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		switch status {
		case models.TicketStatusOpen:
			stats.Open = count
		case models.TicketStatusInProgress:
			stats.InProgress = count
		case models.TicketStatusClosed:
			stats.Closed = count
		}
		stats.Total += count
	}

	high, err := s.ticketRepo.CountByPriority(ctx, models.TicketPriorityHigh)
	if err != nil {
		return nil, err
	}
	stats.HighPriority = high
	return stats, nil
}
