package postgres

import (
	"context"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

const reviewColumns = `id, company_id, author_id, rating, title, body, status, helpful_count, created_at, updated_at`

const reviewListingColumns = `r.id, r.company_id, r.author_id, r.rating, r.title, r.body, r.status, r.helpful_count,
	r.created_at, r.updated_at, u.name AS author_name, c.name AS company_name`

const reviewListingFrom = `FROM reviews r JOIN users u ON u.id = r.author_id JOIN companies c ON c.id = r.company_id`

// ReviewRepo implements storage.ReviewRepository.
type ReviewRepo struct {
	base
}

func NewReviewRepo(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{base{pool}}
}

var _ storage.ReviewRepository = (*ReviewRepo)(nil)

// Create saves a pending review. A second review by the same author returns storage.ErrConflict.
func (r *ReviewRepo) Create(ctx context.Context, rv *models.Review) (*models.Review, error) {
	return one[models.Review](ctx, r.q(ctx), "create review",
		`INSERT INTO reviews (company_id, author_id, rating, title, body, status)
		 VALUES ($1, $2, $3, $4, $5, 'pending') RETURNING `+reviewColumns,
		rv.CompanyID, rv.AuthorID, rv.Rating, rv.Title, rv.Body)
}

func (r *ReviewRepo) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	return one[models.Review](ctx, r.q(ctx), "get review", `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
}

func (r *ReviewRepo) List(ctx context.Context, f storage.ReviewFilter, page pagination.PageRequest) ([]models.ReviewListing, int, error) {
	w := &where{}
	if f.CompanyID != nil {
		w.add("r.company_id = ?", *f.CompanyID)
	}
	if f.Status != nil {
		w.add("r.status = ?", *f.Status)
	}
	orderBy := "r.created_at DESC, r.id DESC"
	if f.CompanyID != nil {
		orderBy = "r.helpful_count DESC, r.created_at DESC, r.id DESC"
	}
	return listPage[models.ReviewListing](ctx, r.q(ctx), reviewListingColumns, reviewListingFrom, w, orderBy, page, "list reviews")
}

// Update saves the author's edit and sends the review back to moderation.
func (r *ReviewRepo) Update(ctx context.Context, rv *models.Review) (*models.Review, error) {
	return one[models.Review](ctx, r.q(ctx), "update review",
		`UPDATE reviews SET rating = $2, title = $3, body = $4, status = $5, updated_at = NOW()
		 WHERE id = $1 RETURNING `+reviewColumns,
		rv.ID, rv.Rating, rv.Title, rv.Body, rv.Status)
}

func (r *ReviewRepo) SetStatus(ctx context.Context, id int64, status models.ReviewStatus) (*models.Review, error) {
	return one[models.Review](ctx, r.q(ctx), "set review status",
		`UPDATE reviews SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING `+reviewColumns, id, status)
}

func (r *ReviewRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return requireRow(tag, err, "delete review")
}

func (r *ReviewRepo) AddVote(ctx context.Context, reviewID, userID int64) error {
	_, err := r.q(ctx).Exec(ctx, `INSERT INTO review_votes (review_id, user_id) VALUES ($1, $2)`, reviewID, userID)
	return mapError(err, "add review vote")
}

func (r *ReviewRepo) RemoveVote(ctx context.Context, reviewID, userID int64) (bool, error) {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM review_votes WHERE review_id = $1 AND user_id = $2`, reviewID, userID)
	if err != nil {
		return false, mapError(err, "remove review vote")
	}
	return tag.RowsAffected() > 0, nil
}

// SyncHelpfulCount recomputes helpful_count from the vote rows.
func (r *ReviewRepo) SyncHelpfulCount(ctx context.Context, reviewID int64) (int32, error) {
	var n int32
	err := r.q(ctx).QueryRow(ctx, `
		UPDATE reviews SET helpful_count = (SELECT COUNT(*) FROM review_votes WHERE review_id = $1)
		WHERE id = $1 RETURNING helpful_count`, reviewID).Scan(&n)
	if err != nil {
		return 0, mapError(err, "sync helpful count")
	}
	return n, nil
}
