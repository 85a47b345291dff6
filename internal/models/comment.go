package models

import "time"

// Comment statuses.
const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusRejected = "rejected"
)

// CommentStatuses lists every valid comment status, in enum order.
var CommentStatuses = []string{CommentStatusPending, CommentStatusApproved, CommentStatusRejected}

// Comment is a reader comment on a blog. BlogID is an opaque reference to
// the blog document; no foreign key is enforced and deleting a blog does
// not cascade to its comments.
type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BlogID      string    `gorm:"not null;index" json:"blog_id"`
	AuthorName  string    `gorm:"not null" json:"author_name"`
	AuthorEmail string    `gorm:"not null" json:"author_email"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Status      string    `gorm:"not null;default:pending;index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
