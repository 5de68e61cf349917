package services

import (
	"context"
	"errors"
	"fmt"

	"professionals-api/internal/models"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"
)

type bookmarkService struct {
	bookmarks storage.BookmarkRepository
	entities  storage.EntityRepository
	tx        storage.TxManager
}

func NewBookmarkService(bookmarks storage.BookmarkRepository, entities storage.EntityRepository, tx storage.TxManager) BookmarkService {
	return &bookmarkService{bookmarks: bookmarks, entities: entities, tx: tx}
}

func (s *bookmarkService) List(ctx context.Context, userID int64, q *dto.BookmarkListQuery) ([]models.BookmarkListing, error) {
	var kind *models.EntityKind
	if q != nil && q.Type != "" {
		k, err := models.ParseEntityKind(q.Type)
		if err != nil {
			return nil, fieldError("type", err.Error())
		}
		kind = &k
	}
	items, err := s.bookmarks.List(ctx, userID, kind)
	return items, MapRepoError(err, "listing bookmarks")
}

// target validates the request and checks that the bookmarked row is publicly visible.
func (s *bookmarkService) target(ctx context.Context, req *dto.BookmarkRequest) (models.EntityRef, error) {
	ref, err := models.NewEntityRef(req.BookmarkableType, req.BookmarkableID)
	if err != nil {
		return ref, fieldError("bookmarkable_type", err.Error())
	}
	ok, err := s.entities.Visible(ctx, ref.Kind, ref.ID)
	if err != nil {
		return ref, MapRepoError(err, "checking bookmark target")
	}
	if !ok {
		return ref, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return ref, nil
}

// Store is idempotent: an existing bookmark is returned with created false.
func (s *bookmarkService) Store(ctx context.Context, userID int64, req *dto.BookmarkRequest) (*models.Bookmark, bool, error) {
	ref, err := s.target(ctx, req)
	if err != nil {
		return nil, false, err
	}
	existing, err := s.bookmarks.Get(ctx, userID, ref)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, false, MapRepoError(err, "fetching bookmark")
	}
	created, err := s.bookmarks.Create(ctx, userID, ref)
	if errors.Is(err, storage.ErrConflict) {
		// lost a race with a concurrent insert
		existing, err := s.bookmarks.Get(ctx, userID, ref)
		return existing, false, MapRepoError(err, "fetching bookmark")
	}
	if err != nil {
		return nil, false, MapRepoError(err, "creating bookmark")
	}
	return created, true, nil
}

func (s *bookmarkService) Destroy(ctx context.Context, userID int64, req *dto.BookmarkRequest) error {
	ref, err := models.NewEntityRef(req.BookmarkableType, req.BookmarkableID)
	if err != nil {
		return fieldError("bookmarkable_type", err.Error())
	}
	return MapRepoError(s.bookmarks.Delete(ctx, userID, ref), "deleting bookmark")
}

// Toggle reports whether the target is bookmarked afterwards.
func (s *bookmarkService) Toggle(ctx context.Context, userID int64, req *dto.BookmarkRequest) (bool, error) {
	ref, err := s.target(ctx, req)
	if err != nil {
		return false, err
	}
	var bookmarked bool
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		err := s.bookmarks.Delete(ctx, userID, ref)
		if err == nil {
			return nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		if _, err := s.bookmarks.Create(ctx, userID, ref); err != nil {
			return err
		}
		bookmarked = true
		return nil
	})
	if err != nil {
		return false, MapRepoError(err, "toggling bookmark")
	}
	return bookmarked, nil
}
