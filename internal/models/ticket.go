package models

import "time"

// Support ticket statuses.
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusClosed     = "closed"
)

// Support ticket priorities.
const (
	TicketPriorityLow    = "low"
	TicketPriorityMedium = "medium"
	TicketPriorityHigh   = "high"
)

// TicketStatuses lists every valid ticket status, in enum order.
var TicketStatuses = []string{TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed}

// TicketPriorities lists every valid ticket priority.
var TicketPriorities = []string{TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh}

// SupportTicket is a customer support request submitted through the public site.
type SupportTicket struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Priority  string    `gorm:"not null;default:medium;index" json:"priority"`
	Status    string    `gorm:"not null;default:open;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
