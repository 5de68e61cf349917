package postgres

import (
	"context"
	"time"

	"professionals-api/internal/models"
	"professionals-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalyticsRepo implements storage.AnalyticsRepository.
type AnalyticsRepo struct {
	base
}

func NewAnalyticsRepo(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{base{pool}}
}

var _ storage.AnalyticsRepository = (*AnalyticsRepo)(nil)

func (r *AnalyticsRepo) RecordView(ctx context.Context, ref models.EntityRef, viewerID *int64, ip string) error {
	_, err := r.q(ctx).Exec(ctx,
		`INSERT INTO views (viewable_type, viewable_id, viewer_id, ip) VALUES ($1, $2, $3, $4)`,
		ref.Kind, ref.ID, viewerID, ip)
	return mapError(err, "record view")
}

func (r *AnalyticsRepo) CompanyStats(ctx context.Context, companyID int64) (*storage.CompanyStats, error) {
	var s storage.CompanyStats
	err := r.q(ctx).QueryRow(ctx, `
		SELECT
			COALESCE((SELECT AVG(rating) FROM reviews WHERE company_id = $1 AND status = 'approved'), 0)::float8,
			(SELECT COUNT(*) FROM reviews WHERE company_id = $1 AND status = 'approved'),
			(SELECT COUNT(*) FROM job_offers o WHERE o.company_id = $1 AND `+publicOffer+`),
			(SELECT COUNT(*) FROM views WHERE viewable_type = 'company' AND viewable_id = $1),
			(SELECT COUNT(*) FROM bookmarks WHERE bookmarkable_type = 'company' AND bookmarkable_id = $1)`,
		companyID).Scan(&s.RatingAverage, &s.ReviewsCount, &s.ActiveOffers, &s.TotalViews, &s.Followers)
	if err != nil {
		return nil, mapError(err, "company stats")
	}
	return &s, nil
}

// dailySeries zero-fills one row per day from since to today. join must
// reference the series day as d and count rows aliased x.
func (r *AnalyticsRepo) dailySeries(ctx context.Context, op, join string, since time.Time, args ...any) ([]models.DailyCount, error) {
	query := `
		SELECT d::date AS day, COUNT(x.id) AS count
		FROM generate_series($1::date, CURRENT_DATE, INTERVAL '1 day') d
		` + join + `
		GROUP BY d ORDER BY d`
	return collect[models.DailyCount](ctx, r.q(ctx), op, query, append([]any{since}, args...)...)
}

func (r *AnalyticsRepo) ProfileViewsPerDay(ctx context.Context, companyID int64, since time.Time) ([]models.DailyCount, error) {
	return r.dailySeries(ctx, "profile views per day", `
		LEFT JOIN views x ON x.created_at::date = d::date AND x.viewable_type = 'company' AND x.viewable_id = $2`,
		since, companyID)
}

func (r *AnalyticsRepo) OfferViewsPerDay(ctx context.Context, companyID int64, since time.Time) ([]models.DailyCount, error) {
	return r.dailySeries(ctx, "offer views per day", `
		LEFT JOIN views x ON x.created_at::date = d::date AND x.viewable_type = 'job_offer'
			AND x.viewable_id IN (SELECT id FROM job_offers WHERE company_id = $2)`,
		since, companyID)
}

func (r *AnalyticsRepo) ApplicationsPerDay(ctx context.Context, companyID int64, since time.Time) ([]models.DailyCount, error) {
	return r.dailySeries(ctx, "applications per day", `
		LEFT JOIN applications x ON x.created_at::date = d::date AND x.company_id = $2`,
		since, companyID)
}

// BookmarksPerDay counts bookmarks on the company and on its offers.
func (r *AnalyticsRepo) BookmarksPerDay(ctx context.Context, companyID int64, since time.Time) ([]models.DailyCount, error) {
	return r.dailySeries(ctx, "bookmarks per day", `
		LEFT JOIN bookmarks x ON x.created_at::date = d::date AND (
			(x.bookmarkable_type = 'company' AND x.bookmarkable_id = $2) OR
			(x.bookmarkable_type = 'job_offer' AND x.bookmarkable_id IN (SELECT id FROM job_offers WHERE company_id = $2)))`,
		since, companyID)
}

func (r *AnalyticsRepo) CountOffersByStatus(ctx context.Context, companyID int64) ([]models.LabelCount, error) {
	return collect[models.LabelCount](ctx, r.q(ctx), "count offers by status",
		`SELECT status AS label, COUNT(*) AS count FROM job_offers WHERE company_id = $1 GROUP BY status ORDER BY status`,
		companyID)
}

// UnreadConversations counts conversations holding messages the company has not read yet.
func (r *AnalyticsRepo) UnreadConversations(ctx context.Context, companyID int64) (int64, error) {
	var n int64
	err := r.q(ctx).QueryRow(ctx, `
		SELECT COUNT(DISTINCT cv.id)
		FROM conversations cv
		JOIN companies c ON c.id = cv.company_id
		JOIN messages m ON m.conversation_id = cv.id
		WHERE cv.company_id = $1 AND m.sender_id <> c.owner_id AND m.read_at IS NULL`, companyID).Scan(&n)
	if err != nil {
		return 0, mapError(err, "unread conversations")
	}
	return n, nil
}

func (r *AnalyticsRepo) PlatformCounts(ctx context.Context) (*storage.PlatformCounts, error) {
	var c storage.PlatformCounts
	err := r.q(ctx).QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users WHERE role = 'student'),
			(SELECT COUNT(*) FROM users WHERE role = 'company'),
			(SELECT COUNT(*) FROM users WHERE role = 'admin'),
			(SELECT COUNT(*) FROM users WHERE banned_at IS NOT NULL),
			(SELECT COUNT(*) FROM companies),
			(SELECT COUNT(*) FROM companies WHERE verified_at IS NOT NULL),
			(SELECT COUNT(*) FROM job_offers WHERE status = 'published'),
			(SELECT COUNT(*) FROM applications),
			(SELECT COUNT(*) FROM reviews WHERE status = 'pending'),
			(SELECT COUNT(*) FROM reports WHERE status = 'open')`).Scan(
		&c.Students, &c.CompanyAccounts, &c.Admins, &c.BannedUsers, &c.Companies, &c.VerifiedCompanies,
		&c.PublishedOffers, &c.Applications, &c.PendingReviews, &c.OpenReports)
	if err != nil {
		return nil, mapError(err, "platform counts")
	}
	return &c, nil
}

func (r *AnalyticsRepo) SignupsPerDay(ctx context.Context, since time.Time) ([]models.DailyCount, error) {
	return r.dailySeries(ctx, "signups per day", `LEFT JOIN users x ON x.created_at::date = d::date`, since)
}

func (r *AnalyticsRepo) PlatformApplicationsPerDay(ctx context.Context, since time.Time) ([]models.DailyCount, error) {
	return r.dailySeries(ctx, "platform applications per day", `LEFT JOIN applications x ON x.created_at::date = d::date`, since)
}

func (r *AnalyticsRepo) OffersPublishedPerDay(ctx context.Context, since time.Time) ([]models.DailyCount, error) {
	return r.dailySeries(ctx, "offers published per day", `LEFT JOIN job_offers x ON x.published_at::date = d::date`, since)
}
