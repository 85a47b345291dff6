// Command main runs the database seeder for BlogSpot.
package main

import (
	"flag"
	"log"

	"blogspot/internal/config"
	"blogspot/internal/database"
	"blogspot/internal/seed"
)

func main() {
	// Parse command line flags
	numBlogs := flag.Int("blogs", 40, "Number of blogs to create")
	numComments := flag.Int("comments", 200, "Number of comments to create")
	numTickets := flag.Int("tickets", 25, "Number of support tickets to create")
	numApplications := flag.Int("applications", 15, "Number of career applications to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d blogs, %d comments, %d tickets, %d applications, clean=%v\n",
		*numBlogs, *numComments, *numTickets, *numApplications, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(database.DB, seed.Options{
		NumBlogs:        *numBlogs,
		NumComments:     *numComments,
		NumTickets:      *numTickets,
		NumApplications: *numApplications,
		ShouldClean:     *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
