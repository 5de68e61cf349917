package services_test

import (
	"context"
	"testing"

	"professionals-api/internal/mocks"
	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupBookmarkServiceTest() (context.Context, services.BookmarkService, *mocks.MockBookmarkRepository, *mocks.MockEntityRepository) {
	bookmarks := new(mocks.MockBookmarkRepository)
	entities := new(mocks.MockEntityRepository)
	return context.Background(), services.NewBookmarkService(bookmarks, entities, mocks.TxManager{}), bookmarks, entities
}

func TestBookmarkService_Store(t *testing.T) {
	offerRef := models.EntityRef{Kind: models.KindJobOffer, ID: 5}
	req := &dto.BookmarkRequest{BookmarkableType: "job_offer", BookmarkableID: 5}

	t.Run("Creates a new bookmark", func(t *testing.T) {
		ctx, svc, bookmarks, entities := setupBookmarkServiceTest()
		entities.On("Visible", ctx, models.KindJobOffer, int64(5)).Return(true, nil).Once()
		bookmarks.On("Get", ctx, int64(11), offerRef).Return(nil, storage.ErrNotFound).Once()
		bookmarks.On("Create", ctx, int64(11), offerRef).Return(&models.Bookmark{ID: 1, UserID: 11}, nil).Once()

		b, created, err := svc.Store(ctx, 11, req)

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(1), b.ID)
	})

	t.Run("Existing bookmark is returned", func(t *testing.T) {
		ctx, svc, bookmarks, entities := setupBookmarkServiceTest()
		entities.On("Visible", ctx, models.KindJobOffer, int64(5)).Return(true, nil).Once()
		bookmarks.On("Get", ctx, int64(11), offerRef).Return(&models.Bookmark{ID: 1, UserID: 11}, nil).Once()

		b, created, err := svc.Store(ctx, 11, req)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(1), b.ID)
		bookmarks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing, draft or expired offer", func(t *testing.T) {
		ctx, svc, bookmarks, entities := setupBookmarkServiceTest()
		entities.On("Visible", ctx, models.KindJobOffer, int64(5)).Return(false, nil).Once()

		_, _, err := svc.Store(ctx, 11, req)

		assert.ErrorIs(t, err, services.ErrNotFound)
		bookmarks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		entities.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unsupported type", func(t *testing.T) {
		ctx, svc, _, _ := setupBookmarkServiceTest()

		_, _, err := svc.Store(ctx, 11, &dto.BookmarkRequest{BookmarkableType: "review", BookmarkableID: 5})

		assertFieldError(t, err, "bookmarkable_type")
	})
}

func TestBookmarkService_Toggle(t *testing.T) {
	ref := models.EntityRef{Kind: models.KindCompany, ID: 3}
	req := &dto.BookmarkRequest{BookmarkableType: "company", BookmarkableID: 3}

	t.Run("Adds when absent", func(t *testing.T) {
		ctx, svc, bookmarks, entities := setupBookmarkServiceTest()
		entities.On("Visible", ctx, models.KindCompany, int64(3)).Return(true, nil).Once()
		bookmarks.On("Delete", ctx, int64(11), ref).Return(storage.ErrNotFound).Once()
		bookmarks.On("Create", ctx, int64(11), ref).Return(&models.Bookmark{ID: 2}, nil).Once()

		on, err := svc.Toggle(ctx, 11, req)

		require.NoError(t, err)
		assert.True(t, on)
	})

	t.Run("Removes when present", func(t *testing.T) {
		ctx, svc, bookmarks, entities := setupBookmarkServiceTest()
		entities.On("Visible", ctx, models.KindCompany, int64(3)).Return(true, nil).Once()
		bookmarks.On("Delete", ctx, int64(11), ref).Return(nil).Once()

		on, err := svc.Toggle(ctx, 11, req)

		require.NoError(t, err)
		assert.False(t, on)
		bookmarks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookmarkService_Toggle_HiddenOffer(t *testing.T) {
	ctx, svc, bookmarks, entities := setupBookmarkServiceTest()
	entities.On("Visible", ctx, models.KindJobOffer, int64(5)).Return(false, nil).Once()

	_, err := svc.Toggle(ctx, 11, &dto.BookmarkRequest{BookmarkableType: "job_offer", BookmarkableID: 5})

	assert.ErrorIs(t, err, services.ErrNotFound)
	bookmarks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	bookmarks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookmarkService_Destroy(t *testing.T) {
	ref := models.EntityRef{Kind: models.KindJobOffer, ID: 5}
	req := &dto.BookmarkRequest{BookmarkableType: "job_offer", BookmarkableID: 5}

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "Removes an existing bookmark"},
		{name: "Missing bookmark", repoErr: storage.ErrNotFound, wantErr: services.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, svc, bookmarks, entities := setupBookmarkServiceTest()
			bookmarks.On("Delete", ctx, int64(11), ref).Return(tt.repoErr).Once()

			err := svc.Destroy(ctx, 11, req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			// removing must work even once the offer is no longer public
			entities.AssertNotCalled(t, "Visible", mock.Anything, mock.Anything, mock.Anything)
			bookmarks.AssertExpectations(t)
		})
	}
}
