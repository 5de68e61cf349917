package postgres

import (
	"context"
	"fmt"

	"professionals-api/internal/models"
	"professionals-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

const bookmarkColumns = `id, user_id, bookmarkable_type, bookmarkable_id, created_at`

// BookmarkRepo implements storage.BookmarkRepository.
type BookmarkRepo struct {
	base
}

func NewBookmarkRepo(pool *pgxpool.Pool) *BookmarkRepo {
	return &BookmarkRepo{base{pool}}
}

var _ storage.BookmarkRepository = (*BookmarkRepo)(nil)

func (r *BookmarkRepo) Get(ctx context.Context, userID int64, ref models.EntityRef) (*models.Bookmark, error) {
	return one[models.Bookmark](ctx, r.q(ctx), "get bookmark",
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE user_id = $1 AND bookmarkable_type = $2 AND bookmarkable_id = $3`,
		userID, ref.Kind, ref.ID)
}

// Create inserts the join row; an existing one returns storage.ErrConflict.
func (r *BookmarkRepo) Create(ctx context.Context, userID int64, ref models.EntityRef) (*models.Bookmark, error) {
	return one[models.Bookmark](ctx, r.q(ctx), "create bookmark",
		`INSERT INTO bookmarks (user_id, bookmarkable_type, bookmarkable_id) VALUES ($1, $2, $3) RETURNING `+bookmarkColumns,
		userID, ref.Kind, ref.ID)
}

func (r *BookmarkRepo) Delete(ctx context.Context, userID int64, ref models.EntityRef) error {
	tag, err := r.q(ctx).Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND bookmarkable_type = $2 AND bookmarkable_id = $3`,
		userID, ref.Kind, ref.ID)
	return requireRow(tag, err, "delete bookmark")
}

// List joins each bookmark with its target's label and slug. Dangling rows and
// offers no longer public are skipped.
func (r *BookmarkRepo) List(ctx context.Context, userID int64, kind *models.EntityKind) ([]models.BookmarkListing, error) {
	w := &where{}
	w.add("b.user_id = ?", userID)
	if kind != nil {
		w.add("b.bookmarkable_type = ?", *kind)
	}
	query := fmt.Sprintf(`
		SELECT b.id, b.user_id, b.bookmarkable_type, b.bookmarkable_id, b.created_at,
			COALESCE(c.name, o.title) AS title, COALESCE(c.slug, o.slug) AS slug
		FROM bookmarks b
		LEFT JOIN companies c ON b.bookmarkable_type = '%s' AND c.id = b.bookmarkable_id
		LEFT JOIN job_offers o ON b.bookmarkable_type = '%s' AND o.id = b.bookmarkable_id AND `+publicOffer+`
		%s AND (c.id IS NOT NULL OR o.id IS NOT NULL)
		ORDER BY b.created_at DESC, b.id DESC`, models.KindCompany, models.KindJobOffer, w.String())
	return collect[models.BookmarkListing](ctx, r.q(ctx), "list bookmarks", query, w.args...)
}

func (r *BookmarkRepo) Count(ctx context.Context, userID int64) (int, error) {
	var n int
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM bookmarks WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, mapError(err, "count bookmarks")
	}
	return n, nil
}

// EntityRepo implements storage.EntityRepository.
type EntityRepo struct {
	base
}

func NewEntityRepo(pool *pgxpool.Pool) *EntityRepo {
	return &EntityRepo{base{pool}}
}

var _ storage.EntityRepository = (*EntityRepo)(nil)

var entityTables = map[models.EntityKind]string{
	models.KindCompany:  "companies",
	models.KindJobOffer: "job_offers",
	models.KindReview:   "reviews",
	models.KindUser:     "users",
}

func (r *EntityRepo) Exists(ctx context.Context, kind models.EntityKind, id int64) (bool, error) {
	table, ok := entityTables[kind]
	if !ok {
		return false, fmt.Errorf("unknown entity kind %q", kind)
	}
	return exists(ctx, r.q(ctx), "entity exists", `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id)
}

// Visible is Exists restricted to what a visitor may see: job offers must be
// published, active and not past their closing date.
func (r *EntityRepo) Visible(ctx context.Context, kind models.EntityKind, id int64) (bool, error) {
	if kind != models.KindJobOffer {
		return r.Exists(ctx, kind, id)
	}
	return exists(ctx, r.q(ctx), "entity visible",
		`SELECT EXISTS (SELECT 1 FROM job_offers o WHERE o.id = $1 AND `+publicOffer+`)`, id)
}
