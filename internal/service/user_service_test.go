package service

import (
	"context"
	"testing"

	"redsocial/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func TestUserServiceUpdateProfileNickTaken(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Nick: "old_nick"}, nil
	}
	users.getByNickFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 42, Nick: "taken"}, nil
	}

	svc := NewUserService(users)
	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Nick: "taken"})
	if !models.IsCode(err, models.CodeConflict) {
		t.Fatalf("expected conflict app error, got %#v", err)
	}
}

func TestUserServiceUpdateProfileKeepOwnNick(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Nick: "mine", Name: "Old"}, nil
	}
	users.getByNickFn = func(context.Context, string) (*models.User, error) {
		t.Fatal("nick lookup must be skipped when the nick is unchanged")
		return nil, nil
	}

	svc := NewUserService(users)
	user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Nick: "mine", Name: "New"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "New" {
		t.Fatalf("expected name updated, got %q", user.Name)
	}
}

func TestUserServiceUpdateProfileEmailLowercased(t *testing.T) {
	var saved *models.User
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Email: "old@example.com"}, nil
	}
	users.updateFn = func(_ context.Context, u *models.User) error {
		saved = u
		return nil
	}

	svc := NewUserService(users)
	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Email: "New@Example.COM"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.Email != "new@example.com" {
		t.Fatalf("expected case-folded email, got %#v", saved)
	}
}

func TestUserServiceUpdateProfileRehashesPassword(t *testing.T) {
	var saved *models.User
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Password: "old-hash"}, nil
	}
	users.updateFn = func(_ context.Context, u *models.User) error {
		saved = u
		return nil
	}

	svc := NewUserService(users)
	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.Password == "old-hash" {
		t.Fatal("expected password replaced with a new hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("secret")) != nil {
		t.Fatal("stored hash does not verify against the new password")
	}
}

func TestUserServiceUpdateProfileBadEmail(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id}, nil
	}

	svc := NewUserService(users)
	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Email: "not-an-email"})
	if !models.IsCode(err, models.CodeValidation) {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}
