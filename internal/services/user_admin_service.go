package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"
)

type userAdminService struct {
	users      storage.UserRepository
	sessions   SessionStore
	files      FileStore
	sessionTTL time.Duration
}

// NewUserAdminService creates the admin user service. sessionTTL is the
// lifetime of issued tokens.
func NewUserAdminService(users storage.UserRepository, sessions SessionStore, files FileStore, sessionTTL time.Duration) UserAdminService {
	return &userAdminService{users: users, sessions: sessions, files: files, sessionTTL: sessionTTL}
}

func (s *userAdminService) List(ctx context.Context, q *dto.UserListQuery, page pagination.PageRequest) (pagination.PageResult[models.User], error) {
	filter := storage.UserFilter{Query: strings.TrimSpace(q.Q), Banned: q.Banned}
	if q.Role != "" {
		role := models.Role(q.Role)
		filter.Role = &role
	}
	items, total, err := s.users.List(ctx, filter, page)
	if err != nil {
		return pagination.PageResult[models.User]{}, MapRepoError(err, "listing users")
	}
	return pagination.NewPageResult(items, total, page), nil
}

func (s *userAdminService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	return user, MapRepoError(err, fmt.Sprintf("fetching user %d", id))
}

func (s *userAdminService) Update(ctx context.Context, id int64, req *dto.AdminUserUpdateRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching user %d", id))
	}
	roleChanged := user.Role != req.Role
	user.Name = strings.TrimSpace(req.Name)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.Role = req.Role
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("updating user %d", id))
	}
	// Tokens carry the role, so the old ones must stop working.
	if roleChanged {
		if err := s.sessions.RevokeUserSessions(ctx, id, s.sessionTTL); err != nil {
			log.Printf("UserAdminService: Error revoking sessions of user %d after role change: %v", id, err)
		}
		log.Printf("UserAdminService: User %d role changed to %s", id, req.Role)
	}
	return updated, nil
}

// Ban flags the account and sets the Redis marker so live tokens stop working at once.
func (s *userAdminService) Ban(ctx context.Context, adminID, id int64) (*models.User, error) {
	if adminID == id {
		return nil, fmt.Errorf("%w: cannot ban yourself", ErrConflict)
	}
	user, err := s.users.SetBanned(ctx, id, true)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("banning user %d", id))
	}
	if err := s.sessions.Ban(ctx, id); err != nil {
		log.Printf("UserAdminService: Error setting ban marker for user %d: %v", id, err)
	}
	log.Printf("UserAdminService: User %d banned by admin %d", id, adminID)
	return user, nil
}

func (s *userAdminService) Restore(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.SetBanned(ctx, id, false)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("restoring user %d", id))
	}
	if err := s.sessions.Unban(ctx, id); err != nil {
		log.Printf("UserAdminService: Error clearing ban marker for user %d: %v", id, err)
	}
	return user, nil
}

func (s *userAdminService) Delete(ctx context.Context, adminID, id int64) error {
	if adminID == id {
		return fmt.Errorf("%w: cannot delete yourself", ErrConflict)
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return MapRepoError(err, fmt.Sprintf("fetching user %d", id))
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return MapRepoError(err, fmt.Sprintf("deleting user %d", id))
	}
	// Outstanding tokens of a deleted account must not authenticate.
	if err := s.sessions.Ban(ctx, id); err != nil {
		log.Printf("UserAdminService: Error setting ban marker for deleted user %d: %v", id, err)
	}
	removeFile(ctx, s.files, user.AvatarPath)
	return nil
}
