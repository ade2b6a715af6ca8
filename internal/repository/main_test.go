package repository

import (
	"fmt"
	"testing"

	"redsocial/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Follow{}, &models.Publication{}),
		"migrate sqlite")
	return db
}

func seedUser(t *testing.T, db *gorm.DB, nick string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "Test",
		LastName: "User",
		Nick:     nick,
		Email:    fmt.Sprintf("%s@example.com", nick),
		Password: "not-a-real-hash",
		Role:     models.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
