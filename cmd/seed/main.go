// Command main runs the database seeder for RedSocial.
package main

import (
	"flag"
	"log"

	"redsocial/internal/config"
	"redsocial/internal/database"
	"redsocial/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPublications := flag.Int("publications", 100, "Number of publications to create")
	followDensity := flag.Int("density", 5, "Average follows per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Skip password hashing (fast, accounts cannot log in)")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d publications, density=%d, clean=%v\n",
		*numUsers, *numPublications, *followDensity, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db, seed.Options{
		NumUsers:        *numUsers,
		NumPublications: *numPublications,
		FollowDensity:   *followDensity,
		SkipBcrypt:      *skipBcrypt,
	})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}
	if err := s.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
