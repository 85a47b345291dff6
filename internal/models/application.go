package models

import "time"

// Career application statuses.
const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusReviewing   = "reviewing"
	ApplicationStatusInterviewed = "interviewed"
	ApplicationStatusHired       = "hired"
	ApplicationStatusRejected    = "rejected"
)

// ApplicationStatuses lists every valid application status, in enum order.
var ApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusReviewing,
	ApplicationStatusInterviewed,
	ApplicationStatusHired,
	ApplicationStatusRejected,
}

// CareerApplication is a job application submitted through the careers page.
// Resume files live in external storage; only the URL is kept here.
type CareerApplication struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"not null" json:"email"`
	Phone       string    `json:"phone"`
	Position    string    `gorm:"not null" json:"position"`
	Experience  string    `gorm:"not null" json:"experience"`
	Skills      string    `gorm:"not null" json:"skills"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`
	ResumeURL   string    `json:"resume_url"`
	Status      string    `gorm:"not null;default:pending;index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
