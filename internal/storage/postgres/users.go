package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, password_hash, role, phone, bio, avatar_path, provider, provider_id,
	email_verified_at, banned_at, created_at, updated_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	base
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{base{pool}}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

// Create saves a new user. A taken email returns storage.ErrDuplicateEmail.
func (r *UserRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role, provider, provider_id, email_verified_at)
		VALUES ($1, LOWER($2), $3, $4, $5, $6, $7)
		RETURNING ` + userColumns
	created, err := one[models.User](ctx, r.q(ctx), "create user", query,
		u.Name, u.Email, u.PasswordHash, u.Role, u.Provider, u.ProviderID, u.EmailVerifiedAt)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, storage.ErrDuplicateEmail
		}
		return nil, err
	}
	log.Printf("User created successfully with ID: %d", created.ID)
	return created, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return one[models.User](ctx, r.q(ctx), "get user", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail retrieves a user by email, case-insensitively.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return one[models.User](ctx, r.q(ctx), "get user by email",
		`SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
}

// GetByProvider retrieves a user linked to a social login identity.
func (r *UserRepo) GetByProvider(ctx context.Context, provider, providerID string) (*models.User, error) {
	return one[models.User](ctx, r.q(ctx), "get user by provider",
		`SELECT `+userColumns+` FROM users WHERE provider = $1 AND provider_id = $2`, provider, providerID)
}

// List retrieves users for the admin console.
func (r *UserRepo) List(ctx context.Context, f storage.UserFilter, page pagination.PageRequest) ([]models.User, int, error) {
	w := &where{}
	if f.Role != nil {
		w.add("role = ?", *f.Role)
	}
	if f.Query != "" {
		w.add("(name ILIKE ? OR email ILIKE ?)", likePattern(f.Query))
	}
	if f.Banned != nil {
		if *f.Banned {
			w.raw("banned_at IS NOT NULL")
		} else {
			w.raw("banned_at IS NULL")
		}
	}
	return listPage[models.User](ctx, r.q(ctx), userColumns, "FROM users", w, "created_at DESC, id DESC", page, "list users")
}

// Update saves the editable profile fields and the role.
func (r *UserRepo) Update(ctx context.Context, u *models.User) (*models.User, error) {
	query := `
		UPDATE users
		SET name = $2, email = LOWER($3), phone = $4, bio = $5, role = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	updated, err := one[models.User](ctx, r.q(ctx), "update user", query,
		u.ID, u.Name, u.Email, u.Phone, u.Bio, u.Role)
	if errors.Is(err, storage.ErrConflict) {
		return nil, storage.ErrDuplicateEmail
	}
	return updated, err
}

func (r *UserRepo) SetAvatar(ctx context.Context, id int64, path string) (*models.User, error) {
	return one[models.User](ctx, r.q(ctx), "set avatar",
		`UPDATE users SET avatar_path = $2, updated_at = NOW() WHERE id = $1 RETURNING `+userColumns, id, path)
}

func (r *UserRepo) SetPassword(ctx context.Context, id int64, hash string) error {
	tag, err := r.q(ctx).Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, hash)
	return requireRow(tag, err, "set password")
}

func (r *UserRepo) LinkProvider(ctx context.Context, id int64, provider, providerID string) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE users SET provider = $2, provider_id = $3, updated_at = NOW() WHERE id = $1`, id, provider, providerID)
	return requireRow(tag, err, "link provider")
}

// MarkEmailVerified sets email_verified_at once; later calls keep the first timestamp.
func (r *UserRepo) MarkEmailVerified(ctx context.Context, id int64) (*models.User, error) {
	return one[models.User](ctx, r.q(ctx), "verify email",
		`UPDATE users SET email_verified_at = COALESCE(email_verified_at, NOW()), updated_at = NOW()
		 WHERE id = $1 RETURNING `+userColumns, id)
}

// SetBanned flips banned_at. Banning an already banned user keeps the original timestamp.
func (r *UserRepo) SetBanned(ctx context.Context, id int64, banned bool) (*models.User, error) {
	query := `UPDATE users SET banned_at = NULL, updated_at = NOW() WHERE id = $1 RETURNING ` + userColumns
	if banned {
		query = `UPDATE users SET banned_at = COALESCE(banned_at, NOW()), updated_at = NOW() WHERE id = $1 RETURNING ` + userColumns
	}
	return one[models.User](ctx, r.q(ctx), "set banned", query, id)
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err := requireRow(tag, err, "delete user"); err != nil {
		return err
	}
	log.Printf("User deleted successfully with ID: %d", id)
	return nil
}

const profileColumns = `user_id, headline, school, degree, graduation_year, city_id, skill_ids, linkedin_url,
	about, cv_path, updated_at`

// StudentProfileRepo implements storage.StudentProfileRepository.
type StudentProfileRepo struct {
	base
}

func NewStudentProfileRepo(pool *pgxpool.Pool) *StudentProfileRepo {
	return &StudentProfileRepo{base{pool}}
}

var _ storage.StudentProfileRepository = (*StudentProfileRepo)(nil)

// Create inserts an empty profile; an existing one is left untouched.
func (r *StudentProfileRepo) Create(ctx context.Context, userID int64) error {
	_, err := r.q(ctx).Exec(ctx, `INSERT INTO student_profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return mapError(err, "create student profile")
	}
	return nil
}

func (r *StudentProfileRepo) Get(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	return one[models.StudentProfile](ctx, r.q(ctx), "get student profile",
		`SELECT `+profileColumns+` FROM student_profiles WHERE user_id = $1`, userID)
}

func (r *StudentProfileRepo) Upsert(ctx context.Context, p *models.StudentProfile) (*models.StudentProfile, error) {
	skills := p.SkillIDs
	if skills == nil {
		skills = []int64{}
	}
	query := `
		INSERT INTO student_profiles (user_id, headline, school, degree, graduation_year, city_id, skill_ids, linkedin_url, about)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			headline = EXCLUDED.headline,
			school = EXCLUDED.school,
			degree = EXCLUDED.degree,
			graduation_year = EXCLUDED.graduation_year,
			city_id = EXCLUDED.city_id,
			skill_ids = EXCLUDED.skill_ids,
			linkedin_url = EXCLUDED.linkedin_url,
			about = EXCLUDED.about,
			updated_at = NOW()
		RETURNING ` + profileColumns
	return one[models.StudentProfile](ctx, r.q(ctx), "upsert student profile", query,
		p.UserID, p.Headline, p.School, p.Degree, p.GraduationYear, p.CityID, skills, p.LinkedInURL, p.About)
}

func (r *StudentProfileRepo) SetCV(ctx context.Context, userID int64, path string) (*models.StudentProfile, error) {
	query := `
		INSERT INTO student_profiles (user_id, cv_path) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET cv_path = EXCLUDED.cv_path, updated_at = NOW()
		RETURNING ` + profileColumns
	p, err := one[models.StudentProfile](ctx, r.q(ctx), "set cv", query, userID, path)
	if err != nil {
		return nil, fmt.Errorf("failed to store cv path: %w", err)
	}
	return p, nil
}
