package handlers_test

import (
	"net/http"
	"testing"

	"professionals-api/internal/api/handlers"
	"professionals-api/internal/mocks"
	"professionals-api/internal/models"
	"professionals-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type profileFixture struct {
	router *gin.Engine
	users  *mocks.MockUserRepository
	files  *mocks.MockFileStore
}

func setupProfileRouter() profileFixture {
	router, authn := newRouter()
	users := new(mocks.MockUserRepository)
	files := new(mocks.MockFileStore)
	svc := services.NewProfileService(users, new(mocks.MockStudentProfileRepository), new(mocks.MockReferenceRepository), files,
		services.UploadLimits{MaxBytes: 1 << 20, MaxCVPages: 2})
	h := handlers.NewProfileHandler(svc, nil, newBinder())

	me := router.Group("/api/me", authn.Required())
	me.DELETE("", h.DeleteMe)
	me.PUT("/password", h.ChangePassword)

	return profileFixture{router: router, users: users, files: files}
}

func accountWithPassword(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	h := string(hash)
	avatar := "avatars/ada.webp"
	return &models.User{ID: 11, Name: "Ada", Email: "ada@example.com", Role: models.RoleStudent, PasswordHash: &h, AvatarPath: &avatar}
}

func TestProfileHandler_ChangePassword(t *testing.T) {
	body := func(current string) map[string]string {
		return map[string]string{"current_password": current, "password": "newsecret1", "password_confirmation": "newsecret1"}
	}

	t.Run("Wrong current password", func(t *testing.T) {
		f := setupProfileRouter()
		f.users.On("GetByID", mock.Anything, int64(11)).Return(accountWithPassword(t, "secret123"), nil).Once()

		w := doJSON(f.router, http.MethodPut, "/api/me/password", tokenFor(t, 11, models.RoleStudent), body("wrong-pass"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		details, _ := decode(t, w)["details"].(map[string]any)
		assert.Contains(t, details, "current_password")
		f.users.AssertNotCalled(t, "SetPassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Correct current password", func(t *testing.T) {
		f := setupProfileRouter()
		f.users.On("GetByID", mock.Anything, int64(11)).Return(accountWithPassword(t, "secret123"), nil).Once()
		f.users.On("SetPassword", mock.Anything, int64(11), mock.AnythingOfType("string")).Return(nil).Once()

		w := doJSON(f.router, http.MethodPut, "/api/me/password", tokenFor(t, 11, models.RoleStudent), body("secret123"))

		assert.Equal(t, http.StatusNoContent, w.Code)
		f.users.AssertExpectations(t)
	})

	t.Run("Confirmation mismatch never reaches the service", func(t *testing.T) {
		f := setupProfileRouter()

		w := doJSON(f.router, http.MethodPut, "/api/me/password", tokenFor(t, 11, models.RoleStudent),
			map[string]string{"current_password": "secret123", "password": "newsecret1", "password_confirmation": "other"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		f.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestProfileHandler_DeleteMe(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     int
		deleted  bool
	}{
		{name: "Confirmed with the password", password: "secret123", want: http.StatusNoContent, deleted: true},
		{name: "Wrong password", password: "wrong-pass", want: http.StatusUnprocessableEntity},
		{name: "Missing password", password: "", want: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupProfileRouter()
			f.users.On("GetByID", mock.Anything, int64(11)).Return(accountWithPassword(t, "secret123"), nil).Once()
			if tt.deleted {
				f.users.On("Delete", mock.Anything, int64(11)).Return(nil).Once()
				f.files.On("Delete", mock.Anything, "avatars/ada.webp").Return(nil).Once()
			}

			w := doJSON(f.router, http.MethodDelete, "/api/me", tokenFor(t, 11, models.RoleStudent), map[string]string{"password": tt.password})

			assert.Equal(t, tt.want, w.Code)
			if tt.deleted {
				f.users.AssertExpectations(t)
				f.files.AssertExpectations(t)
			} else {
				f.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			}
		})
	}

	t.Run("Social-only account needs no password", func(t *testing.T) {
		f := setupProfileRouter()
		f.users.On("GetByID", mock.Anything, int64(11)).Return(&models.User{ID: 11, Role: models.RoleStudent}, nil).Once()
		f.users.On("Delete", mock.Anything, int64(11)).Return(nil).Once()

		w := doJSON(f.router, http.MethodDelete, "/api/me", tokenFor(t, 11, models.RoleStudent), nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		f.files.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
