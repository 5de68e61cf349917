package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"professionals-api/internal/mocks"
	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupUserAdminServiceTest() (context.Context, services.UserAdminService, *mocks.MockUserRepository, *mocks.MockSessionStore, *mocks.MockFileStore) {
	users := new(mocks.MockUserRepository)
	sessions := new(mocks.MockSessionStore)
	files := new(mocks.MockFileStore)
	return context.Background(), services.NewUserAdminService(users, sessions, files, time.Hour), users, sessions, files
}

func TestUserAdminService_Ban(t *testing.T) {
	t.Run("Cannot ban yourself", func(t *testing.T) {
		ctx, svc, users, _, _ := setupUserAdminServiceTest()

		_, err := svc.Ban(ctx, 1, 1)

		assert.ErrorIs(t, err, services.ErrConflict)
		users.AssertNotCalled(t, "SetBanned", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Sets the ban marker", func(t *testing.T) {
		ctx, svc, users, sessions, _ := setupUserAdminServiceTest()
		users.On("SetBanned", ctx, int64(11), true).Return(&models.User{ID: 11, BannedAt: ptr(fixedTime)}, nil).Once()
		sessions.On("Ban", ctx, int64(11)).Return(nil).Once()

		user, err := svc.Ban(ctx, 1, 11)

		require.NoError(t, err)
		assert.True(t, user.IsBanned())
		sessions.AssertExpectations(t)
	})

	t.Run("Marker failure does not fail the ban", func(t *testing.T) {
		ctx, svc, users, sessions, _ := setupUserAdminServiceTest()
		users.On("SetBanned", ctx, int64(11), true).Return(&models.User{ID: 11, BannedAt: ptr(fixedTime)}, nil).Once()
		sessions.On("Ban", ctx, int64(11)).Return(errors.New("redis down")).Once()

		_, err := svc.Ban(ctx, 1, 11)

		require.NoError(t, err)
	})

	t.Run("Unknown user", func(t *testing.T) {
		ctx, svc, users, _, _ := setupUserAdminServiceTest()
		users.On("SetBanned", ctx, int64(11), true).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.Ban(ctx, 1, 11)

		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestUserAdminService_Restore(t *testing.T) {
	ctx, svc, users, sessions, _ := setupUserAdminServiceTest()
	users.On("SetBanned", ctx, int64(11), false).Return(&models.User{ID: 11}, nil).Once()
	sessions.On("Unban", ctx, int64(11)).Return(nil).Once()

	user, err := svc.Restore(ctx, 11)

	require.NoError(t, err)
	assert.False(t, user.IsBanned())
	sessions.AssertExpectations(t)
}

func TestUserAdminService_Delete(t *testing.T) {
	t.Run("Cannot delete yourself", func(t *testing.T) {
		ctx, svc, _, _, _ := setupUserAdminServiceTest()

		assert.ErrorIs(t, svc.Delete(ctx, 1, 1), services.ErrConflict)
	})

	t.Run("Removes avatar and blocks tokens", func(t *testing.T) {
		ctx, svc, users, sessions, files := setupUserAdminServiceTest()
		avatar := "avatars/11.webp"
		users.On("GetByID", ctx, int64(11)).Return(&models.User{ID: 11, AvatarPath: &avatar}, nil).Once()
		users.On("Delete", ctx, int64(11)).Return(nil).Once()
		sessions.On("Ban", ctx, int64(11)).Return(nil).Once()
		files.On("Delete", ctx, avatar).Return(nil).Once()

		require.NoError(t, svc.Delete(ctx, 1, 11))
		users.AssertExpectations(t)
		sessions.AssertExpectations(t)
		files.AssertExpectations(t)
	})
}

func TestUserAdminService_Update(t *testing.T) {
	tests := []struct {
		name    string
		from    models.Role
		to      models.Role
		revokes bool
	}{
		{"Demoting an admin revokes its sessions", models.RoleAdmin, models.RoleStudent, true},
		{"Company to student revokes sessions", models.RoleCompany, models.RoleStudent, true},
		{"Same role keeps sessions", models.RoleStudent, models.RoleStudent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, svc, users, sessions, _ := setupUserAdminServiceTest()
			users.On("GetByID", ctx, int64(11)).Return(&models.User{ID: 11, Name: "Ana", Email: "ana@example.com", Role: tt.from}, nil).Once()
			users.On("Update", ctx, mock.MatchedBy(func(u *models.User) bool {
				return u.ID == 11 && u.Role == tt.to && u.Email == "ana@example.com"
			})).Return(&models.User{ID: 11, Role: tt.to}, nil).Once()
			if tt.revokes {
				sessions.On("RevokeUserSessions", ctx, int64(11), time.Hour).Return(nil).Once()
			}

			user, err := svc.Update(ctx, 11, &dto.AdminUserUpdateRequest{Name: " Ana ", Email: "Ana@Example.com", Role: tt.to})

			require.NoError(t, err)
			assert.Equal(t, tt.to, user.Role)
			sessions.AssertExpectations(t)
			if !tt.revokes {
				sessions.AssertNotCalled(t, "RevokeUserSessions", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}

	t.Run("Revocation failure does not undo the update", func(t *testing.T) {
		ctx, svc, users, sessions, _ := setupUserAdminServiceTest()
		users.On("GetByID", ctx, int64(11)).Return(&models.User{ID: 11, Role: models.RoleAdmin}, nil).Once()
		users.On("Update", ctx, mock.Anything).Return(&models.User{ID: 11, Role: models.RoleStudent}, nil).Once()
		sessions.On("RevokeUserSessions", ctx, int64(11), time.Hour).Return(errors.New("redis down")).Once()

		user, err := svc.Update(ctx, 11, &dto.AdminUserUpdateRequest{Name: "Ana", Email: "ana@example.com", Role: models.RoleStudent})

		require.NoError(t, err)
		assert.Equal(t, models.RoleStudent, user.Role)
	})
}
