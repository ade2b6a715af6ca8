package repository

import (
	"context"

	"redsocial/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines persistence operations for follow edges.
type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	DeletePair(ctx context.Context, followingUserID, followedUserID uint) error
	Exists(ctx context.Context, followingUserID, followedUserID uint) (bool, error)
	FollowingIDs(ctx context.Context, userID uint) ([]uint, error)
	FollowerIDs(ctx context.Context, userID uint) ([]uint, error)
	Following(ctx context.Context, userID uint, page, limit int) (*Page[models.Follow], error)
	Followers(ctx context.Context, userID uint, page, limit int) (*Page[models.Follow], error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create persists the edge. A violation of the (following_user_id,
// followed_user_id) unique index is remapped to a conflict error; under two
// racing follow calls exactly one insert wins and the other lands here.
func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Already following this user")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// DeletePair removes the edge for the ordered pair. Absence is reported as
// not-found, not success.
func (r *followRepository) DeletePair(ctx context.Context, followingUserID, followedUserID uint) error {
	res := r.db.WithContext(ctx).
		Where("following_user_id = ? AND followed_user_id = ?", followingUserID, followedUserID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("You do not follow this user")
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followingUserID, followedUserID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_user_id = ? AND followed_user_id = ?", followingUserID, followedUserID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// FollowingIDs returns the ids of users the given user follows.
func (r *followRepository) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_user_id = ?", userID).
		Pluck("followed_user_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// FollowerIDs returns the ids of users following the given user.
func (r *followRepository) FollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("followed_user_id = ?", userID).
		Pluck("following_user_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// Following pages over the edges where the user is the actor, with the
// followed user preloaded for display.
func (r *followRepository) Following(ctx context.Context, userID uint, page, limit int) (*Page[models.Follow], error) {
	query := r.db.Model(&models.Follow{}).
		Where("following_user_id = ?", userID).
		Order("created_at DESC").
		Preload("FollowedUser")
	return paginate[models.Follow](ctx, query, page, limit)
}

// Followers pages over the edges where the user is the target, with the
// follower preloaded for display.
func (r *followRepository) Followers(ctx context.Context, userID uint, page, limit int) (*Page[models.Follow], error) {
	query := r.db.Model(&models.Follow{}).
		Where("followed_user_id = ?", userID).
		Order("created_at DESC").
		Preload("FollowingUser")
	return paginate[models.Follow](ctx, query, page, limit)
}
