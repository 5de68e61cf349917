package services_test

import (
	"context"
	"errors"
	"testing"

	"professionals-api/internal/mocks"
	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupNotificationServiceTest() (context.Context, services.NotificationService, *mocks.MockNotificationRepository) {
	repo := new(mocks.MockNotificationRepository)
	return context.Background(), services.NewNotificationService(repo), repo
}

func TestNotificationService_Notify(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "Stores the notification"},
		{name: "Storage failure is swallowed", repoErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, svc, repo := setupNotificationServiceTest()
			repo.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
				return n.UserID == 11 && n.Type == "application.status" && n.Title == "Accepted" && n.Data["application_id"] == int64(4)
			})).Return(&models.Notification{ID: 1}, tt.repoErr).Once()

			assert.NotPanics(t, func() {
				svc.Notify(ctx, 11, "application.status", "Accepted", "Your application was accepted", map[string]any{"application_id": int64(4)})
			})
			repo.AssertExpectations(t)
		})
	}
}

func TestNotificationService_List(t *testing.T) {
	ctx, svc, repo := setupNotificationServiceTest()
	repo.On("List", ctx, int64(11), true, defaultPage).Return([]models.Notification{{ID: 1}, {ID: 2}}, 17, nil).Once()

	res, err := svc.List(ctx, 11, true, defaultPage)

	require.NoError(t, err)
	assert.Len(t, res.Data, 2)
	assert.Equal(t, 17, res.Meta.Total)
	assert.Equal(t, 2, res.Meta.LastPage)
}

func TestNotificationService_OwnedByCaller(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "Own notification"},
		{name: "Someone else's or missing", repoErr: storage.ErrNotFound, wantErr: services.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run("MarkRead/"+tt.name, func(t *testing.T) {
			ctx, svc, repo := setupNotificationServiceTest()
			var found *models.Notification
			if tt.repoErr == nil {
				found = &models.Notification{ID: 5, UserID: 11}
			}
			repo.On("MarkRead", ctx, int64(11), int64(5)).Return(found, tt.repoErr).Once()

			n, err := svc.MarkRead(ctx, 11, 5)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), n.ID)
		})

		t.Run("Delete/"+tt.name, func(t *testing.T) {
			ctx, svc, repo := setupNotificationServiceTest()
			repo.On("Delete", ctx, int64(11), int64(5)).Return(tt.repoErr).Once()

			err := svc.Delete(ctx, 11, 5)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNotificationService_Counters(t *testing.T) {
	ctx, svc, repo := setupNotificationServiceTest()
	repo.On("CountUnread", ctx, int64(11)).Return(3, nil).Once()
	repo.On("MarkAllRead", ctx, int64(11)).Return(int64(3), nil).Once()

	unread, err := svc.UnreadCount(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, 3, unread)

	marked, err := svc.MarkAllRead(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(3), marked)
}
