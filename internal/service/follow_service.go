// Package service contains the business logic sitting between handlers and
// repositories.
package service

import (
	"context"

	"redsocial/internal/models"
	"redsocial/internal/repository"
)

// FollowService answers relationship queries against the follow store without
// callers knowing the storage query shape. Reads are point-in-time: no cache,
// no locking; the store's unique pair index is the only concurrency guard on
// writes.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// FolloweesOf returns both directions of the user's follow graph: the ids the
// user follows and the ids following the user. A user with no edges gets two
// empty sets, not an error.
func (s *FollowService) FolloweesOf(ctx context.Context, userID uint) (*models.RelationIDs, error) {
	if userID == 0 {
		return nil, models.NewValidationError("A user id is required")
	}

	following, err := s.followRepo.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.RelationIDs{
		Following: following,
		Followers: followers,
	}, nil
}

// FollowStatus reports whether each of the two users follows the other. A
// user's relationship to themselves is undefined: viewer == target yields
// {false, false} without error.
func (s *FollowService) FollowStatus(ctx context.Context, viewerID, targetID uint) (*models.FollowStatus, error) {
	if viewerID == 0 || targetID == 0 {
		return nil, models.NewValidationError("Both user ids are required")
	}
	if viewerID == targetID {
		return &models.FollowStatus{}, nil
	}

	viewerFollows, err := s.followRepo.Exists(ctx, viewerID, targetID)
	if err != nil {
		return nil, err
	}
	targetFollows, err := s.followRepo.Exists(ctx, targetID, viewerID)
	if err != nil {
		return nil, err
	}

	return &models.FollowStatus{
		ViewerFollowsTarget: viewerFollows,
		TargetFollowsViewer: targetFollows,
	}, nil
}

// Follow creates the edge actor -> target. Self-follows are invalid input, a
// missing target is not-found, and a duplicate pair is a conflict: the
// repository maps the store's constraint violation, so a lost race never
// surfaces as a server error. The returned edge carries the target's display
// fields.
func (s *FollowService) Follow(ctx context.Context, actorID, targetID uint) (*models.Follow, error) {
	if actorID == 0 || targetID == 0 {
		return nil, models.NewValidationError("A user id is required")
	}
	if actorID == targetID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	follow := &models.Follow{
		FollowingUserID: actorID,
		FollowedUserID:  targetID,
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}

	follow.FollowedUser = &models.User{
		ID:       target.ID,
		Name:     target.Name,
		LastName: target.LastName,
	}
	return follow, nil
}

// Unfollow removes the edge actor -> target. A missing edge is not-found;
// deletes are not idempotent here, absence is surfaced distinctly from
// success.
func (s *FollowService) Unfollow(ctx context.Context, actorID, targetID uint) error {
	if actorID == 0 || targetID == 0 {
		return models.NewValidationError("A user id is required")
	}
	return s.followRepo.DeletePair(ctx, actorID, targetID)
}
