// Package seed provides database seeding utilities for development and
// testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"redsocial/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configuration for the seeder
type Options struct {
	NumUsers        int
	NumPublications int
	// FollowDensity is the average number of users each seeded user
	// follows.
	FollowDensity int
	ShouldClean   bool
	// SkipBcrypt stores a plaintext marker instead of hashing, for fast
	// local iteration. Seeded accounts then cannot log in.
	SkipBcrypt bool
}

// Seeder populates the database with demo users, a follow mesh, and
// publications.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		opts: opts,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Order matters: edges and publications
// reference users.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{&models.Follow{}, &models.Publication{}, &models.User{}} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("seed: clear %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds users, follows, and publications according to the options.
func (s *Seeder) Run() error {
	users, err := s.seedUsers()
	if err != nil {
		return err
	}
	if err := s.seedFollows(users); err != nil {
		return err
	}
	if err := s.seedPublications(users); err != nil {
		return err
	}
	log.Printf("Seed complete: %d users", len(users))
	return nil
}

func (s *Seeder) seedUsers() ([]*models.User, error) {
	n := s.opts.NumUsers
	if n <= 0 {
		n = 25
	}

	password := "password123"
	if s.opts.SkipBcrypt {
		password = "seed-plaintext"
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("seed: hash password: %w", err)
		}
		password = string(hashed)
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		user := &models.User{
			Name:     first,
			LastName: last,
			Nick:     fmt.Sprintf("%s%d", strings.ToLower(first), gofakeit.Number(100, 9999)),
			Email:    strings.ToLower(fmt.Sprintf("%s.%s%d@%s", first, last, i, gofakeit.DomainName())),
			Password: password,
			Role:     models.RoleUser,
		}
		users = append(users, user)
	}

	if err := s.db.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("seed: create users: %w", err)
	}
	log.Printf("Seeded %d users (password: password123)", len(users))
	return users, nil
}

func (s *Seeder) seedFollows(users []*models.User) error {
	if len(users) < 2 {
		return nil
	}
	density := s.opts.FollowDensity
	if density <= 0 {
		density = 5
	}
	if density >= len(users) {
		density = len(users) - 1
	}

	var edges []*models.Follow
	for _, user := range users {
		for _, j := range s.rand.Perm(len(users))[:density] {
			target := users[j]
			if target.ID == user.ID {
				continue
			}
			edges = append(edges, &models.Follow{
				FollowingUserID: user.ID,
				FollowedUserID:  target.ID,
			})
		}
	}

	// Random picks can collide; let the unique pair index swallow repeats.
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edges).Error; err != nil {
		return fmt.Errorf("seed: create follows: %w", err)
	}
	log.Printf("Seeded %d follow edges", len(edges))
	return nil
}

func (s *Seeder) seedPublications(users []*models.User) error {
	n := s.opts.NumPublications
	if n <= 0 {
		n = 100
	}

	publications := make([]*models.Publication, 0, n)
	now := time.Now()
	for i := 0; i < n; i++ {
		author := users[s.rand.Intn(len(users))]
		publications = append(publications, &models.Publication{
			UserID:    author.ID,
			Text:      gofakeit.Sentence(s.rand.Intn(15) + 3),
			CreatedAt: now.Add(-time.Duration(s.rand.Intn(90*24)) * time.Hour),
		})
	}

	if err := s.db.Create(&publications).Error; err != nil {
		return fmt.Errorf("seed: create publications: %w", err)
	}
	log.Printf("Seeded %d publications", len(publications))
	return nil
}
