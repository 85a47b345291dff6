// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"blogspot/internal/models"
	"blogspot/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumBlogs        int
	NumComments     int
	NumTickets      int
	NumApplications int
	ShouldClean     bool
}

var (
	categoryNames = []string{
		"Go", "Databases", "DevOps", "Cloud", "Frontend", "Backend",
		"Career", "Tutorials", "Announcements", "Engineering Culture",
	}

	positions = []string{
		"Backend Engineer", "Frontend Engineer", "Site Reliability Engineer",
		"Product Designer", "Engineering Manager", "Technical Writer",
	}

	blogTagPool = []string{
		"go", "postgres", "redis", "docker", "kubernetes", "testing",
		"performance", "api-design", "observability", "security",
	}
)

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	log.Printf("🌱 Starting database seeding with %d blogs and %d comments...",
		opts.NumBlogs, opts.NumComments)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	categories, err := createCategories(db)
	if err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	log.Printf("✓ %d categories available", len(categories))

	blogs, err := createBlogs(db, categories, opts.NumBlogs)
	if err != nil {
		return fmt.Errorf("failed to create blogs: %w", err)
	}
	log.Printf("✓ %d blogs created", len(blogs))

	if err := createComments(db, blogs, opts.NumComments); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", opts.NumComments)

	if err := createTickets(db, opts.NumTickets); err != nil {
		return fmt.Errorf("failed to create tickets: %w", err)
	}
	log.Printf("✓ %d support tickets created", opts.NumTickets)

	if err := createApplications(db, opts.NumApplications); err != nil {
		return fmt.Errorf("failed to create applications: %w", err)
	}
	log.Printf("✓ %d career applications created", opts.NumApplications)

	log.Println("🎉 Seeding complete")
	return nil
}

// clearData removes seeded rows. Order matters only for readability here;
// there are no cross-table foreign keys.
func clearData(db *gorm.DB) error {
	for _, model := range []any{
		&models.Comment{},
		&models.Blog{},
		&models.Category{},
		&models.SupportTicket{},
		&models.CareerApplication{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createCategories(db *gorm.DB) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category := models.Category{
			Name:        name,
			Slug:        service.Slugify(name),
			Description: gofakeit.Sentence(8),
		}
		// idempotent on re-runs without -clean
		if err := db.Where(models.Category{Slug: category.Slug}).
			FirstOrCreate(&category).Error; err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func createBlogs(db *gorm.DB, categories []models.Category, count int) ([]models.Blog, error) {
	blogs := make([]models.Blog, 0, count)
	for i := 0; i < count; i++ {
		category := categories[rand.Intn(len(categories))]

		status := models.BlogStatusPublished
		if rand.Intn(4) == 0 {
			status = models.BlogStatusDraft
		}

		tagCount := 1 + rand.Intn(3)
		tags := make([]string, 0, tagCount)
		for _, j := range rand.Perm(len(blogTagPool))[:tagCount] {
			tags = append(tags, blogTagPool[j])
		}

		content := gofakeit.Paragraph(3, 5, 12, "\n\n")
		blog := models.Blog{
			Title:         gofakeit.Sentence(6),
			Content:       content,
			Excerpt:       gofakeit.Sentence(12),
			Author:        gofakeit.Name(),
			Category:      category.Slug,
			Tags:          tags,
			FeaturedImage: fmt.Sprintf("https://picsum.photos/seed/%s/1200/630", gofakeit.UUID()),
			Status:        status,
			Views:         rand.Intn(5000),
			Likes:         rand.Intn(300),
			CreatedAt:     randomPastTime(180),
		}
		if err := db.Create(&blog).Error; err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, nil
}

func createComments(db *gorm.DB, blogs []models.Blog, count int) error {
	if len(blogs) == 0 {
		return nil
	}

	statuses := []string{
		models.CommentStatusApproved,
		models.CommentStatusApproved,
		models.CommentStatusPending,
		models.CommentStatusRejected,
	}

	for i := 0; i < count; i++ {
		blog := blogs[rand.Intn(len(blogs))]
		comment := models.Comment{
			BlogID:      fmt.Sprintf("%d", blog.ID),
			AuthorName:  gofakeit.Name(),
			AuthorEmail: gofakeit.Email(),
			Content:     gofakeit.Sentence(10 + rand.Intn(20)),
			Status:      statuses[rand.Intn(len(statuses))],
			CreatedAt:   randomPastTime(90),
		}
		if err := db.Create(&comment).Error; err != nil {
			return err
		}
	}
	return nil
}

func createTickets(db *gorm.DB, count int) error {
	for i := 0; i < count; i++ {
		ticket := models.SupportTicket{
			Name:      gofakeit.Name(),
			Email:     gofakeit.Email(),
			Subject:   gofakeit.Sentence(5),
			Message:   gofakeit.Paragraph(1, 3, 8, "\n"),
			Priority:  models.TicketPriorities[rand.Intn(len(models.TicketPriorities))],
			Status:    models.TicketStatuses[rand.Intn(len(models.TicketStatuses))],
			CreatedAt: randomPastTime(60),
		}
		if err := db.Create(&ticket).Error; err != nil {
			return err
		}
	}
	return nil
}

func createApplications(db *gorm.DB, count int) error {
	for i := 0; i < count; i++ {
		application := models.CareerApplication{
			Name:        gofakeit.Name(),
			Email:       gofakeit.Email(),
			Phone:       gofakeit.Phone(),
			Position:    positions[rand.Intn(len(positions))],
			Experience:  fmt.Sprintf("%d years", 1+rand.Intn(12)),
			Skills:      gofakeit.Sentence(6),
			CoverLetter: gofakeit.Paragraph(1, 4, 10, " "),
			ResumeURL:   gofakeit.URL(),
			Status:      models.ApplicationStatuses[rand.Intn(len(models.ApplicationStatuses))],
			CreatedAt:   randomPastTime(120),
		}
		if err := db.Create(&application).Error; err != nil {
			return err
		}
	}
	return nil
}

// randomPastTime spreads created_at over the past maxDays for realistic lists.
func randomPastTime(maxDays int) time.Time {
	daysBack := rand.Intn(maxDays)
	hoursBack := rand.Intn(24)
	minsBack := rand.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
