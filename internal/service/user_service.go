package service

import (
	"context"
	"strings"

	"redsocial/internal/models"
	"redsocial/internal/repository"
	"redsocial/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	UserID   uint
	Name     string
	LastName string
	Nick     string
	Email    string
	Password string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, page, limit int) (*repository.Page[models.PublicUser], error) {
	return s.userRepo.ListPublic(ctx, page, limit)
}

// UpdateProfile applies the non-empty fields of in to the user's record.
// A nick or email already carried by another account is rejected as a
// conflict before the write; the store's unique indexes back this up for
// the concurrent case.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Nick != "" && !strings.EqualFold(in.Nick, user.Nick) {
		if err := validation.ValidateNick(in.Nick); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		other, err := s.userRepo.GetByNick(ctx, in.Nick)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, models.NewConflictError("Nick already in use")
		}
		user.Nick = in.Nick
	}

	if in.Email != "" && !strings.EqualFold(in.Email, user.Email) {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		other, err := s.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, models.NewConflictError("Email already in use")
		}
		user.Email = strings.ToLower(in.Email)
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}

	if in.Password != "" {
		if err := validation.ValidatePassword(in.Password); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SetAvatar records the user's stored avatar file name.
func (s *UserService) SetAvatar(ctx context.Context, userID uint, fileName string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Image = fileName
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
