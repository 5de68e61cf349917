package postgres

import (
	"context"
	"errors"
	"log"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

const offerColumns = `id, company_id, title, slug, description, type, status, is_active, sector_id, city_id,
	salary_min, salary_max, skill_ids, closes_at, published_at, created_at, updated_at`

const offerListingColumns = `o.id, o.company_id, o.title, o.slug, o.description, o.type, o.status, o.is_active,
	o.sector_id, o.city_id, o.salary_min, o.salary_max, o.skill_ids, o.closes_at, o.published_at, o.created_at,
	o.updated_at, c.name AS company_name, c.slug AS company_slug, c.logo_path AS company_logo_path`

const offerListingFrom = `FROM job_offers o JOIN companies c ON c.id = o.company_id`

// publicOffer matches offers a visitor may see.
const publicOffer = `o.status = 'published' AND o.is_active AND (o.closes_at IS NULL OR o.closes_at > NOW())`

// JobOfferRepo implements the storage.JobOfferRepository interface using PostgreSQL.
type JobOfferRepo struct {
	base
}

// NewJobOfferRepo creates a new JobOfferRepo.
func NewJobOfferRepo(pool *pgxpool.Pool) *JobOfferRepo {
	return &JobOfferRepo{base{pool}}
}

// Compile-time check to ensure JobOfferRepo implements JobOfferRepository
var _ storage.JobOfferRepository = (*JobOfferRepo)(nil)

// Create saves a new offer as a draft.
func (r *JobOfferRepo) Create(ctx context.Context, o *models.JobOffer) (*models.JobOffer, error) {
	skills := o.SkillIDs
	if skills == nil {
		skills = []int64{}
	}
	query := `
		INSERT INTO job_offers (company_id, title, slug, description, type, status, is_active, sector_id, city_id,
			salary_min, salary_max, skill_ids, closes_at)
		VALUES ($1, $2, $3, $4, $5, 'draft', TRUE, $6, $7, $8, $9, $10, $11)
		RETURNING ` + offerColumns
	created, err := one[models.JobOffer](ctx, r.q(ctx), "create job offer", query,
		o.CompanyID, o.Title, o.Slug, o.Description, o.Type, o.SectorID, o.CityID, o.SalaryMin, o.SalaryMax, skills, o.ClosesAt)
	if err != nil {
		return nil, err
	}
	log.Printf("Job offer created successfully with ID: %d", created.ID)
	return created, nil
}

func (r *JobOfferRepo) GetByID(ctx context.Context, id int64) (*models.JobOffer, error) {
	return one[models.JobOffer](ctx, r.q(ctx), "get job offer", `SELECT `+offerColumns+` FROM job_offers WHERE id = $1`, id)
}

func (r *JobOfferRepo) GetListing(ctx context.Context, id int64) (*models.JobOfferListing, error) {
	return one[models.JobOfferListing](ctx, r.q(ctx), "get job offer listing",
		`SELECT `+offerListingColumns+` `+offerListingFrom+` WHERE o.id = $1`, id)
}

func (r *JobOfferRepo) GetBySlug(ctx context.Context, slug string) (*models.JobOfferListing, error) {
	return one[models.JobOfferListing](ctx, r.q(ctx), "get job offer by slug",
		`SELECT `+offerListingColumns+` `+offerListingFrom+` WHERE o.slug = $1`, slug)
}

// List serves the public board, the company's own list and the admin console.
func (r *JobOfferRepo) List(ctx context.Context, f storage.OfferFilter, page pagination.PageRequest) ([]models.JobOfferListing, int, error) {
	w := &where{}
	if f.PublicOnly {
		w.raw(publicOffer)
	}
	if f.CompanyID != nil {
		w.add("o.company_id = ?", *f.CompanyID)
	}
	if f.Status != nil {
		w.add("o.status = ?", *f.Status)
	}
	if f.Type != nil {
		w.add("o.type = ?", *f.Type)
	}
	if f.SectorID != nil {
		w.add("o.sector_id = ?", *f.SectorID)
	}
	if f.CityID != nil {
		w.add("o.city_id = ?", *f.CityID)
	}
	if f.Query != "" {
		w.add("(o.title ILIKE ? OR o.description ILIKE ? OR c.name ILIKE ?)", likePattern(f.Query))
	}

	orderBy := "o.created_at DESC, o.id DESC"
	if f.PublicOnly {
		orderBy = "o.published_at DESC NULLS LAST, o.id DESC"
	}
	return listPage[models.JobOfferListing](ctx, r.q(ctx), offerListingColumns, offerListingFrom, w, orderBy, page, "list job offers")
}

// Similar returns visible offers sharing the sector or the type of offer, most relevant first.
func (r *JobOfferRepo) Similar(ctx context.Context, offer *models.JobOffer, limit int) ([]models.JobOfferListing, error) {
	query := `SELECT ` + offerListingColumns + ` ` + offerListingFrom + `
		WHERE ` + publicOffer + ` AND o.id <> $1 AND (o.sector_id = $2 OR o.type = $3)
		ORDER BY (o.sector_id IS NOT DISTINCT FROM $2) DESC, o.published_at DESC NULLS LAST
		LIMIT $4`
	return collect[models.JobOfferListing](ctx, r.q(ctx), "similar job offers", query, offer.ID, offer.SectorID, offer.Type, limit)
}

// Recommended ranks visible offers by skill overlap and city match.
func (r *JobOfferRepo) Recommended(ctx context.Context, cityID *int64, skillIDs []int64, limit int) ([]models.JobOfferListing, error) {
	if skillIDs == nil {
		skillIDs = []int64{}
	}
	query := `SELECT ` + offerListingColumns + ` ` + offerListingFrom + `
		WHERE ` + publicOffer + ` AND (o.city_id = $1 OR o.skill_ids && $2::bigint[])
		ORDER BY cardinality(ARRAY(SELECT unnest(o.skill_ids) INTERSECT SELECT unnest($2::bigint[]))) DESC,
			(o.city_id IS NOT DISTINCT FROM $1) DESC, o.published_at DESC NULLS LAST
		LIMIT $3`
	return collect[models.JobOfferListing](ctx, r.q(ctx), "recommended job offers", query, cityID, skillIDs, limit)
}

func (r *JobOfferRepo) Update(ctx context.Context, o *models.JobOffer) (*models.JobOffer, error) {
	skills := o.SkillIDs
	if skills == nil {
		skills = []int64{}
	}
	query := `
		UPDATE job_offers
		SET title = $2, description = $3, type = $4, sector_id = $5, city_id = $6, salary_min = $7, salary_max = $8,
			skill_ids = $9, closes_at = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + offerColumns
	return one[models.JobOffer](ctx, r.q(ctx), "update job offer", query,
		o.ID, o.Title, o.Description, o.Type, o.SectorID, o.CityID, o.SalaryMin, o.SalaryMax, skills, o.ClosesAt)
}

// TransitionStatus is a conditional update so two concurrent publishes cannot both win.
func (r *JobOfferRepo) TransitionStatus(ctx context.Context, id int64, from, to models.OfferStatus) (*models.JobOffer, error) {
	query := `
		UPDATE job_offers
		SET status = $3,
			published_at = CASE WHEN $3 = 'published' THEN COALESCE(published_at, NOW()) ELSE published_at END,
			updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + offerColumns
	offer, err := one[models.JobOffer](ctx, r.q(ctx), "transition job offer", query, id, from, to)
	if errors.Is(err, storage.ErrNotFound) {
		// The row exists (callers load it first); it simply moved on.
		return nil, storage.ErrConflict
	}
	return offer, err
}

func (r *JobOfferRepo) SetActive(ctx context.Context, id int64, active bool) (*models.JobOffer, error) {
	return one[models.JobOffer](ctx, r.q(ctx), "set job offer active",
		`UPDATE job_offers SET is_active = $2, updated_at = NOW() WHERE id = $1 RETURNING `+offerColumns, id, active)
}

func (r *JobOfferRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM job_offers WHERE id = $1`, id)
	if err := requireRow(tag, err, "delete job offer"); err != nil {
		return err
	}
	log.Printf("Job offer deleted successfully with ID: %d", id)
	return nil
}

func (r *JobOfferRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return exists(ctx, r.q(ctx), "job offer slug exists", `SELECT EXISTS (SELECT 1 FROM job_offers WHERE slug = $1)`, slug)
}
