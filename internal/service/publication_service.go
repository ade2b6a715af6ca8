package service

import (
	"context"
	"strings"

	"redsocial/internal/models"
	"redsocial/internal/repository"
)

const maxPublicationTextLen = 5000

type PublicationService struct {
	publicationRepo repository.PublicationRepository
	followRepo      repository.FollowRepository
}

func NewPublicationService(publicationRepo repository.PublicationRepository, followRepo repository.FollowRepository) *PublicationService {
	return &PublicationService{
		publicationRepo: publicationRepo,
		followRepo:      followRepo,
	}
}

func (s *PublicationService) Create(ctx context.Context, userID uint, text string) (*models.Publication, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Publication text is required")
	}
	if len(text) > maxPublicationTextLen {
		return nil, models.NewValidationError("Publication text too long (max 5000 characters)")
	}

	publication := &models.Publication{
		UserID: userID,
		Text:   text,
	}
	if err := s.publicationRepo.Create(ctx, publication); err != nil {
		return nil, err
	}
	return publication, nil
}

func (s *PublicationService) GetByID(ctx context.Context, id uint) (*models.Publication, error) {
	return s.publicationRepo.GetByID(ctx, id)
}

// Delete removes a publication. Only its author may delete it; anyone else
// gets not-found rather than a hint that the id exists.
func (s *PublicationService) Delete(ctx context.Context, actorID, publicationID uint) error {
	publication, err := s.publicationRepo.GetByID(ctx, publicationID)
	if err != nil {
		return err
	}
	if publication.UserID != actorID {
		return models.NewNotFoundError("Publication not found")
	}
	return s.publicationRepo.Delete(ctx, publicationID)
}

func (s *PublicationService) ListByUser(ctx context.Context, userID uint, page, limit int) (*repository.Page[models.Publication], error) {
	return s.publicationRepo.ListByUser(ctx, userID, page, limit)
}

// Feed returns the publications of everyone the user follows, newest first.
// A user following nobody gets an empty page, not an error.
func (s *PublicationService) Feed(ctx context.Context, userID uint, page, limit int) (*repository.Page[models.Publication], error) {
	authorIDs, err := s.followRepo.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.publicationRepo.Feed(ctx, authorIDs, page, limit)
}

// SetMedia records the stored media file name on a publication. Author-only,
// like Delete.
func (s *PublicationService) SetMedia(ctx context.Context, actorID, publicationID uint, fileName string) (*models.Publication, error) {
	publication, err := s.publicationRepo.GetByID(ctx, publicationID)
	if err != nil {
		return nil, err
	}
	if publication.UserID != actorID {
		return nil, models.NewNotFoundError("Publication not found")
	}

	publication.File = fileName
	if err := s.publicationRepo.Update(ctx, publication); err != nil {
		return nil, err
	}
	return publication, nil
}
