package repository

import (
	"context"
	"errors"

	"redsocial/internal/cache"
	"redsocial/internal/models"

	"gorm.io/gorm"
)

// PublicationRepository defines persistence operations for publications.
type PublicationRepository interface {
	Create(ctx context.Context, publication *models.Publication) error
	GetByID(ctx context.Context, id uint) (*models.Publication, error)
	Update(ctx context.Context, publication *models.Publication) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint, page, limit int) (*Page[models.Publication], error)
	Feed(ctx context.Context, authorIDs []uint, page, limit int) (*Page[models.Publication], error)
}

type publicationRepository struct {
	db *gorm.DB
}

// NewPublicationRepository returns a new PublicationRepository implementation.
func NewPublicationRepository(db *gorm.DB) PublicationRepository {
	return &publicationRepository{db: db}
}

func (r *publicationRepository) Create(ctx context.Context, publication *models.Publication) error {
	if err := r.db.WithContext(ctx).Create(publication).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *publicationRepository) GetByID(ctx context.Context, id uint) (*models.Publication, error) {
	var publication models.Publication
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&publication, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Publication not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &publication, nil
}

func (r *publicationRepository) Update(ctx context.Context, publication *models.Publication) error {
	if err := r.db.WithContext(ctx).Save(publication).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePublication(ctx, publication.ID)
	return nil
}

func (r *publicationRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Publication{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Publication not found")
	}
	cache.InvalidatePublication(ctx, id)
	return nil
}

// ListByUser pages over one author's publications, newest first.
func (r *publicationRepository) ListByUser(ctx context.Context, userID uint, page, limit int) (*Page[models.Publication], error) {
	query := r.db.Model(&models.Publication{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("User")
	return paginate[models.Publication](ctx, query, page, limit)
}

// Feed pages over publications authored by any of the given users, newest
// first. An empty author set yields an empty page.
func (r *publicationRepository) Feed(ctx context.Context, authorIDs []uint, page, limit int) (*Page[models.Publication], error) {
	if len(authorIDs) == 0 {
		return &Page[models.Publication]{
			Items: make([]models.Publication, 0),
			Page:  page,
			Limit: limit,
		}, nil
	}
	query := r.db.Model(&models.Publication{}).
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC").
		Preload("User")
	return paginate[models.Publication](ctx, query, page, limit)
}
