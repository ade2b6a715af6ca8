package service

import (
	"context"

	"redsocial/internal/models"
	"redsocial/internal/repository"
)

type followRepoStub struct {
	createFn       func(context.Context, *models.Follow) error
	deletePairFn   func(context.Context, uint, uint) error
	existsFn       func(context.Context, uint, uint) (bool, error)
	followingIDsFn func(context.Context, uint) ([]uint, error)
	followerIDsFn  func(context.Context, uint) ([]uint, error)
	followingFn    func(context.Context, uint, int, int) (*repository.Page[models.Follow], error)
	followersFn    func(context.Context, uint, int, int) (*repository.Page[models.Follow], error)
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) DeletePair(ctx context.Context, followingUserID, followedUserID uint) error {
	return s.deletePairFn(ctx, followingUserID, followedUserID)
}
func (s *followRepoStub) Exists(ctx context.Context, followingUserID, followedUserID uint) (bool, error) {
	return s.existsFn(ctx, followingUserID, followedUserID)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, userID)
}
func (s *followRepoStub) FollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followerIDsFn(ctx, userID)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint, page, limit int) (*repository.Page[models.Follow], error) {
	return s.followingFn(ctx, userID, page, limit)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint, page, limit int) (*repository.Page[models.Follow], error) {
	return s.followersFn(ctx, userID, page, limit)
}

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	getByNickFn  func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	listPublicFn func(context.Context, int, int) (*repository.Page[models.PublicUser], error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByNick(ctx context.Context, nick string) (*models.User, error) {
	return s.getByNickFn(ctx, nick)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) ListPublic(ctx context.Context, page, limit int) (*repository.Page[models.PublicUser], error) {
	return s.listPublicFn(ctx, page, limit)
}

type publicationRepoStub struct {
	createFn     func(context.Context, *models.Publication) error
	getByIDFn    func(context.Context, uint) (*models.Publication, error)
	updateFn     func(context.Context, *models.Publication) error
	deleteFn     func(context.Context, uint) error
	listByUserFn func(context.Context, uint, int, int) (*repository.Page[models.Publication], error)
	feedFn       func(context.Context, []uint, int, int) (*repository.Page[models.Publication], error)
}

func (s *publicationRepoStub) Create(ctx context.Context, publication *models.Publication) error {
	return s.createFn(ctx, publication)
}
func (s *publicationRepoStub) GetByID(ctx context.Context, id uint) (*models.Publication, error) {
	return s.getByIDFn(ctx, id)
}
func (s *publicationRepoStub) Update(ctx context.Context, publication *models.Publication) error {
	return s.updateFn(ctx, publication)
}
func (s *publicationRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *publicationRepoStub) ListByUser(ctx context.Context, userID uint, page, limit int) (*repository.Page[models.Publication], error) {
	return s.listByUserFn(ctx, userID, page, limit)
}
func (s *publicationRepoStub) Feed(ctx context.Context, authorIDs []uint, page, limit int) (*repository.Page[models.Publication], error) {
	return s.feedFn(ctx, authorIDs, page, limit)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:       func(context.Context, *models.Follow) error { return nil },
		deletePairFn:   func(context.Context, uint, uint) error { return nil },
		existsFn:       func(context.Context, uint, uint) (bool, error) { return false, nil },
		followingIDsFn: func(context.Context, uint) ([]uint, error) { return []uint{}, nil },
		followerIDsFn:  func(context.Context, uint) ([]uint, error) { return []uint{}, nil },
		followingFn: func(context.Context, uint, int, int) (*repository.Page[models.Follow], error) {
			return &repository.Page[models.Follow]{Items: []models.Follow{}}, nil
		},
		followersFn: func(context.Context, uint, int, int) (*repository.Page[models.Follow], error) {
			return &repository.Page[models.Follow]{Items: []models.Follow{}}, nil
		},
	}
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		getByNickFn:  func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
		listPublicFn: func(context.Context, int, int) (*repository.Page[models.PublicUser], error) {
			return &repository.Page[models.PublicUser]{Items: []models.PublicUser{}}, nil
		},
	}
}

func noopPublicationRepo() *publicationRepoStub {
	return &publicationRepoStub{
		createFn:  func(context.Context, *models.Publication) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Publication, error) { return &models.Publication{ID: id}, nil },
		updateFn:  func(context.Context, *models.Publication) error { return nil },
		deleteFn:  func(context.Context, uint) error { return nil },
		listByUserFn: func(context.Context, uint, int, int) (*repository.Page[models.Publication], error) {
			return &repository.Page[models.Publication]{Items: []models.Publication{}}, nil
		},
		feedFn: func(context.Context, []uint, int, int) (*repository.Page[models.Publication], error) {
			return &repository.Page[models.Publication]{Items: []models.Publication{}}, nil
		},
	}
}
