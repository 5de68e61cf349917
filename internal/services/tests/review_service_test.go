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

func setupReviewServiceTest() (context.Context, services.ReviewService, *mocks.MockReviewRepository, *mocks.MockNotifier) {
	reviews := new(mocks.MockReviewRepository)
	notifier := new(mocks.MockNotifier)
	return context.Background(), services.NewReviewService(reviews, mocks.TxManager{}, notifier), reviews, notifier
}

func TestReviewService_Create(t *testing.T) {
	t.Run("New reviews wait for moderation", func(t *testing.T) {
		ctx, svc, reviews, _ := setupReviewServiceTest()
		reviews.On("Create", ctx, mock.MatchedBy(func(r *models.Review) bool {
			return r.Status == models.ReviewPending && r.AuthorID == 11 && r.CompanyID == 3 && r.Title == "Great team"
		})).Return(&models.Review{ID: 1, Status: models.ReviewPending}, nil).Once()

		review, err := svc.Create(ctx, 11, 3, &dto.ReviewRequest{Rating: 5, Title: " Great team ", Body: "Learned a lot"})

		require.NoError(t, err)
		assert.Equal(t, models.ReviewPending, review.Status)
	})

	t.Run("One review per company", func(t *testing.T) {
		ctx, svc, reviews, _ := setupReviewServiceTest()
		reviews.On("Create", ctx, mock.Anything).Return(nil, storage.ErrConflict).Once()

		_, err := svc.Create(ctx, 11, 3, &dto.ReviewRequest{Rating: 4, Title: "Again", Body: "x"})

		assert.ErrorIs(t, err, services.ErrConflict)
	})
}

func TestReviewService_Update_ResetsModeration(t *testing.T) {
	ctx, svc, reviews, _ := setupReviewServiceTest()
	reviews.On("GetByID", ctx, int64(1)).Return(&models.Review{ID: 1, AuthorID: 11, Status: models.ReviewApproved}, nil).Once()
	reviews.On("Update", ctx, mock.MatchedBy(func(r *models.Review) bool {
		return r.Status == models.ReviewPending && r.Rating == 2
	})).Return(&models.Review{ID: 1, Status: models.ReviewPending, Rating: 2}, nil).Once()

	review, err := svc.Update(ctx, 11, 1, &dto.ReviewRequest{Rating: 2, Title: "Changed", Body: "y"})

	require.NoError(t, err)
	assert.Equal(t, models.ReviewPending, review.Status)
}

func TestReviewService_Delete_OtherAuthor(t *testing.T) {
	ctx, svc, reviews, _ := setupReviewServiceTest()
	reviews.On("GetByID", ctx, int64(1)).Return(&models.Review{ID: 1, AuthorID: 12}, nil).Once()

	err := svc.Delete(ctx, 11, 1)

	assert.ErrorIs(t, err, services.ErrForbidden)
	reviews.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestReviewService_ToggleVote(t *testing.T) {
	t.Run("Own review", func(t *testing.T) {
		ctx, svc, reviews, _ := setupReviewServiceTest()
		reviews.On("GetByID", ctx, int64(1)).Return(&models.Review{ID: 1, AuthorID: 11, Status: models.ReviewApproved}, nil).Once()

		_, err := svc.ToggleVote(ctx, 11, 1)

		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("Pending review is hidden", func(t *testing.T) {
		ctx, svc, reviews, _ := setupReviewServiceTest()
		reviews.On("GetByID", ctx, int64(1)).Return(&models.Review{ID: 1, AuthorID: 12, Status: models.ReviewPending}, nil).Once()

		_, err := svc.ToggleVote(ctx, 11, 1)

		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("First vote adds", func(t *testing.T) {
		ctx, svc, reviews, _ := setupReviewServiceTest()
		reviews.On("GetByID", ctx, int64(1)).Return(&models.Review{ID: 1, AuthorID: 12, Status: models.ReviewApproved}, nil).Once()
		reviews.On("RemoveVote", ctx, int64(1), int64(11)).Return(false, nil).Once()
		reviews.On("AddVote", ctx, int64(1), int64(11)).Return(nil).Once()
		reviews.On("SyncHelpfulCount", ctx, int64(1)).Return(int32(4), nil).Once()

		resp, err := svc.ToggleVote(ctx, 11, 1)

		require.NoError(t, err)
		assert.True(t, resp.Voted)
		assert.Equal(t, int32(4), resp.HelpfulCount)
	})

	t.Run("Second vote removes", func(t *testing.T) {
		ctx, svc, reviews, _ := setupReviewServiceTest()
		reviews.On("GetByID", ctx, int64(1)).Return(&models.Review{ID: 1, AuthorID: 12, Status: models.ReviewApproved}, nil).Once()
		reviews.On("RemoveVote", ctx, int64(1), int64(11)).Return(true, nil).Once()
		reviews.On("SyncHelpfulCount", ctx, int64(1)).Return(int32(3), nil).Once()

		resp, err := svc.ToggleVote(ctx, 11, 1)

		require.NoError(t, err)
		assert.False(t, resp.Voted)
		assert.Equal(t, int32(3), resp.HelpfulCount)
		reviews.AssertNotCalled(t, "AddVote", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReviewService_Approve_NotifiesAuthor(t *testing.T) {
	ctx, svc, reviews, notifier := setupReviewServiceTest()
	reviews.On("SetStatus", ctx, int64(1), models.ReviewApproved).
		Return(&models.Review{ID: 1, AuthorID: 11, CompanyID: 3, Title: "Great", Status: models.ReviewApproved}, nil).Once()
	notifier.On("Notify", ctx, int64(11), models.NotificationReviewApproved, mock.Anything, "Great", mock.Anything).Return().Once()

	review, err := svc.Approve(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, models.ReviewApproved, review.Status)
	notifier.AssertExpectations(t)
}
