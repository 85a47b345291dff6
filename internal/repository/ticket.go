package repository

import (
	"context"
	"errors"

	"blogspot/internal/models"
	"blogspot/internal/observability"

	"gorm.io/gorm"
)

// TicketFilter narrows a support ticket listing.
type TicketFilter struct {
	Status   string
	Priority string
	Limit    int
	Offset   int
}

// TicketRepository defines the interface for support ticket data operations
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.SupportTicket) error
	GetByID(ctx context.Context, id uint) (*models.SupportTicket, error)
	List(ctx context.Context, filter TicketFilter) ([]*models.SupportTicket, int64, error)
	Update(ctx context.Context, ticket *models.SupportTicket) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByPriority(ctx context.Context, priority string) (int64, error)
}

type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new support ticket repository
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *models.SupportTicket) error {
	defer observability.TrackQuery("create", "support_tickets")()
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *ticketRepository) GetByID(ctx context.Context, id uint) (*models.SupportTicket, error) {
	defer observability.TrackQuery("get", "support_tickets")()

	var ticket models.SupportTicket
	if err := r.db.WithContext(ctx).First(&ticket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Support ticket", id)
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) filtered(ctx context.Context, f TicketFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.SupportTicket{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	return q
}

func (r *ticketRepository) List(ctx context.Context, f TicketFilter) ([]*models.SupportTicket, int64, error) {
	defer observability.TrackQuery("list", "support_tickets")()

	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// gorm treats LIMIT 0 literally; a zero-value filter means "no limit".
	limit := f.Limit
	if limit <= 0 {
		limit = -1
	}

	tickets := []*models.SupportTicket{}
	err := r.filtered(ctx, f).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(f.Offset).
		Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *models.SupportTicket) error {
	defer observability.TrackQuery("update", "support_tickets")()
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *ticketRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "support_tickets")()

	res := r.db.WithContext(ctx).Delete(&models.SupportTicket{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Support ticket", id)
	}
	return nil
}

func (r *ticketRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	defer observability.TrackQuery("count", "support_tickets")()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SupportTicket{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *ticketRepository) CountByPriority(ctx context.Context, priority string) (int64, error) {
	defer observability.TrackQuery("count", "support_tickets")()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SupportTicket{}).
		Where("priority = ?", priority).
		Count(&count).Error
	return count, err
}
