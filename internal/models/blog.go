// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Blog statuses.
const (
	BlogStatusPublished = "published"
	BlogStatusDraft     = "draft"
)

// BlogStatuses lists every valid blog status, in enum order.
var BlogStatuses = []string{BlogStatusPublished, BlogStatusDraft}

// Blog represents a published or draft blog post.
type Blog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Excerpt       string    `json:"excerpt"`
	Author        string    `gorm:"not null" json:"author"`
	Category      string    `gorm:"not null;index" json:"category"`
	Tags          []string  `gorm:"serializer:json" json:"tags"`
	FeaturedImage string    `json:"featured_image"`
	Status        string    `gorm:"not null;default:published;index" json:"status"`
	Views         int       `gorm:"not null;default:0" json:"views"`
	Likes         int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
