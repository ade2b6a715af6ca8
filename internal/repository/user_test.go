package repository

import (
	"context"
	"errors"
	"testing"

	"redsocial/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestUserGetByEmailIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seeded := seedUser(t, db, "ada")

	user, err := repo.GetByEmail(ctx, "  ADA@Example.COM ")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, seeded.ID, user.ID)
}

func TestUserGetByEmailMissReturnsNilNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserGetByNickIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seeded := seedUser(t, db, "Grace")

	user, err := repo.GetByNick(ctx, "gRaCe")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, seeded.ID, user.ID)

	user, err = repo.GetByNick(ctx, "hopper")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUserCreateDuplicateEmailIsConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "ada")

	dup := &models.User{
		Name:     "Other",
		LastName: "User",
		Nick:     "ada2",
		Email:    "ada@example.com",
		Password: "not-a-real-hash",
		Role:     models.RoleUser,
	}
	err := repo.Create(ctx, dup)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

// The lower(nick) unique index is the backstop for registrations that race
// past the handler-level duplicate check: the second insert must fail even
// when only the casing differs.
func TestUserCreateDuplicateNickCaseInsensitiveIsConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "Ana")

	dup := &models.User{
		Name:     "Other",
		LastName: "User",
		Nick:     "ana",
		Email:    "other@example.com",
		Password: "not-a-real-hash",
		Role:     models.RoleUser,
	}
	err := repo.Create(ctx, dup)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestUserListPublicPaginates(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, nick := range []string{"u1", "u2", "u3"} {
		seedUser(t, db, nick)
	}

	page, err := repo.ListPublic(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 1, page.Page)
	// Projection must not leak credentials; PublicUser has no such fields,
	// only the display columns come back.
	assert.Equal(t, "u1", page.Items[0].Nick)

	page, err = repo.ListPublic(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "u3", page.Items[0].Nick)

	// Past-the-end pages are empty, not errors.
	page, err = repo.ListPublic(ctx, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(3), page.Total)
}

func TestNormalizePage(t *testing.T) {
	page, limit := NormalizePage(0, 0, 25)
	assert.Equal(t, 1, page)
	assert.Equal(t, 25, limit)

	page, limit = NormalizePage(3, 500, 25)
	assert.Equal(t, 3, page)
	assert.Equal(t, maxPageSize, limit)
}

// Driver failures below gorm must surface as internal errors, not leak raw
// SQL errors to callers.
func TestUserGetByEmailDatabaseError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))

	repo := NewUserRepository(db)
	_, err = repo.GetByEmail(context.Background(), "ada@example.com")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeInternal, appErr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
