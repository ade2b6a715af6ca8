package service

import (
	"context"
	"testing"

	"redsocial/internal/models"
	"redsocial/internal/repository"
)

func TestPublicationServiceCreateEmptyText(t *testing.T) {
	svc := NewPublicationService(noopPublicationRepo(), noopFollowRepo())
	_, err := svc.Create(context.Background(), 1, "   ")
	if !models.IsCode(err, models.CodeValidation) {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestPublicationServiceCreateTrimsText(t *testing.T) {
	var created *models.Publication
	repo := noopPublicationRepo()
	repo.createFn = func(_ context.Context, p *models.Publication) error {
		created = p
		return nil
	}

	svc := NewPublicationService(repo, noopFollowRepo())
	_, err := svc.Create(context.Background(), 3, "  hello world \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.Text != "hello world" || created.UserID != 3 {
		t.Fatalf("unexpected publication: %#v", created)
	}
}

func TestPublicationServiceDeleteByNonAuthor(t *testing.T) {
	repo := noopPublicationRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Publication, error) {
		return &models.Publication{ID: id, UserID: 7}, nil
	}
	repo.deleteFn = func(context.Context, uint) error {
		t.Fatal("delete must not reach the store for a non-author")
		return nil
	}

	svc := NewPublicationService(repo, noopFollowRepo())
	err := svc.Delete(context.Background(), 8, 55)
	if !models.IsCode(err, models.CodeNotFound) {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestPublicationServiceDeleteByAuthor(t *testing.T) {
	deleted := false
	repo := noopPublicationRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Publication, error) {
		return &models.Publication{ID: id, UserID: 7}, nil
	}
	repo.deleteFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}

	svc := NewPublicationService(repo, noopFollowRepo())
	if err := svc.Delete(context.Background(), 7, 55); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to reach the store")
	}
}

func TestPublicationServiceFeedFollowingNobody(t *testing.T) {
	pubs := noopPublicationRepo()
	pubs.feedFn = func(_ context.Context, authorIDs []uint, _, _ int) (*repository.Page[models.Publication], error) {
		if len(authorIDs) != 0 {
			t.Fatalf("expected empty author set, got %v", authorIDs)
		}
		return &repository.Page[models.Publication]{Items: []models.Publication{}}, nil
	}

	svc := NewPublicationService(pubs, noopFollowRepo())
	page, err := svc.Feed(context.Background(), 1, 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 0 {
		t.Fatalf("expected empty feed, got %#v", page.Items)
	}
}

func TestPublicationServiceFeedUsesFollowedAuthors(t *testing.T) {
	follows := noopFollowRepo()
	follows.followingIDsFn = func(context.Context, uint) ([]uint, error) { return []uint{2, 3}, nil }

	var gotAuthors []uint
	pubs := noopPublicationRepo()
	pubs.feedFn = func(_ context.Context, authorIDs []uint, _, _ int) (*repository.Page[models.Publication], error) {
		gotAuthors = authorIDs
		return &repository.Page[models.Publication]{Items: []models.Publication{}}, nil
	}

	svc := NewPublicationService(pubs, follows)
	if _, err := svc.Feed(context.Background(), 1, 1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotAuthors) != 2 || gotAuthors[0] != 2 || gotAuthors[1] != 3 {
		t.Fatalf("expected authors [2 3], got %v", gotAuthors)
	}
}
