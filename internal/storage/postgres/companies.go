package postgres

import (
	"context"
	"log"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

const companyColumns = `id, owner_id, name, slug, description, sector_id, city_id, size, website, email, phone,
	founded_year, logo_path, cover_path, verified_at, created_at, updated_at`

const companyListingColumns = `c.id, c.owner_id, c.name, c.slug, c.description, c.sector_id, c.city_id, c.size,
	c.website, c.email, c.phone, c.founded_year, c.logo_path, c.cover_path, c.verified_at, c.created_at, c.updated_at,
	s.name AS sector_name, ci.name AS city_name,
	COALESCE(rv.avg_rating, 0)::float8 AS rating_average, COALESCE(rv.review_count, 0) AS reviews_count`

const companyListingFrom = `FROM companies c
	LEFT JOIN sectors s ON s.id = c.sector_id
	LEFT JOIN cities ci ON ci.id = c.city_id
	LEFT JOIN countries co ON co.id = ci.country_id
	LEFT JOIN LATERAL (
		SELECT AVG(rating) AS avg_rating, COUNT(*) AS review_count
		FROM reviews WHERE company_id = c.id AND status = 'approved'
	) rv ON TRUE`

// CompanyRepo implements storage.CompanyRepository.
type CompanyRepo struct {
	base
}

func NewCompanyRepo(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{base{pool}}
}

var _ storage.CompanyRepository = (*CompanyRepo)(nil)

// Create saves a company. A second company for the same owner returns storage.ErrConflict.
func (r *CompanyRepo) Create(ctx context.Context, c *models.Company) (*models.Company, error) {
	query := `
		INSERT INTO companies (owner_id, name, slug, description, sector_id, city_id, size, website, email, phone, founded_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + companyColumns
	created, err := one[models.Company](ctx, r.q(ctx), "create company", query,
		c.OwnerID, c.Name, c.Slug, c.Description, c.SectorID, c.CityID, c.Size, c.Website, c.Email, c.Phone, c.FoundedYear)
	if err != nil {
		return nil, err
	}
	log.Printf("Company created successfully with ID: %d", created.ID)
	return created, nil
}

func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	return one[models.Company](ctx, r.q(ctx), "get company", `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

func (r *CompanyRepo) GetBySlug(ctx context.Context, slug string) (*models.Company, error) {
	return one[models.Company](ctx, r.q(ctx), "get company by slug",
		`SELECT `+companyColumns+` FROM companies WHERE slug = $1`, slug)
}

func (r *CompanyRepo) GetByOwner(ctx context.Context, ownerID int64) (*models.Company, error) {
	return one[models.Company](ctx, r.q(ctx), "get company by owner",
		`SELECT `+companyColumns+` FROM companies WHERE owner_id = $1`, ownerID)
}

// GetListing retrieves a company with its sector, city and approved-review rating.
func (r *CompanyRepo) GetListing(ctx context.Context, id int64) (*models.CompanyListing, error) {
	return one[models.CompanyListing](ctx, r.q(ctx), "get company listing",
		`SELECT `+companyListingColumns+` `+companyListingFrom+` WHERE c.id = $1`, id)
}

// List serves both the directory and the search endpoint.
func (r *CompanyRepo) List(ctx context.Context, f storage.CompanyFilter, page pagination.PageRequest) ([]models.CompanyListing, int, error) {
	w := &where{}
	if f.SectorID != nil {
		w.add("c.sector_id = ?", *f.SectorID)
	}
	if f.CityID != nil {
		w.add("c.city_id = ?", *f.CityID)
	}
	if f.Size != "" {
		w.add("c.size = ?", f.Size)
	}
	if f.Verified != nil {
		if *f.Verified {
			w.raw("c.verified_at IS NOT NULL")
		} else {
			w.raw("c.verified_at IS NULL")
		}
	}
	if f.Query != "" {
		pattern := likePattern(f.Query)
		switch f.SearchType {
		case storage.SearchByName:
			w.add("c.name ILIKE ?", pattern)
		case storage.SearchBySector:
			w.add("s.name ILIKE ?", pattern)
		case storage.SearchByLocation:
			w.add("(ci.name ILIKE ? OR co.name ILIKE ?)", pattern)
		default:
			w.add("(c.name ILIKE ? OR s.name ILIKE ? OR ci.name ILIKE ? OR co.name ILIKE ? OR c.description ILIKE ?)", pattern)
		}
	}
	return listPage[models.CompanyListing](ctx, r.q(ctx), companyListingColumns, companyListingFrom, w,
		"c.verified_at IS NULL, c.name", page, "list companies")
}

// Autocomplete returns names starting with prefix first, then names containing it.
func (r *CompanyRepo) Autocomplete(ctx context.Context, prefix string, limit int) ([]string, error) {
	query := `
		SELECT name FROM companies
		WHERE name ILIKE $1
		ORDER BY (name ILIKE $2) DESC, name
		LIMIT $3`
	rows, err := r.q(ctx).Query(ctx, query, likePattern(prefix), prefixPattern(prefix), limit)
	if err != nil {
		return nil, mapError(err, "autocomplete companies")
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, mapError(err, "scan company name")
		}
		names = append(names, name)
	}
	return names, mapError(rows.Err(), "autocomplete companies")
}

func (r *CompanyRepo) Update(ctx context.Context, c *models.Company) (*models.Company, error) {
	query := `
		UPDATE companies
		SET name = $2, slug = $3, description = $4, sector_id = $5, city_id = $6, size = $7, website = $8,
			email = $9, phone = $10, founded_year = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + companyColumns
	return one[models.Company](ctx, r.q(ctx), "update company", query,
		c.ID, c.Name, c.Slug, c.Description, c.SectorID, c.CityID, c.Size, c.Website, c.Email, c.Phone, c.FoundedYear)
}

func (r *CompanyRepo) SetLogo(ctx context.Context, id int64, path string) (*models.Company, error) {
	return one[models.Company](ctx, r.q(ctx), "set logo",
		`UPDATE companies SET logo_path = $2, updated_at = NOW() WHERE id = $1 RETURNING `+companyColumns, id, path)
}

func (r *CompanyRepo) SetCover(ctx context.Context, id int64, path string) (*models.Company, error) {
	return one[models.Company](ctx, r.q(ctx), "set cover",
		`UPDATE companies SET cover_path = $2, updated_at = NOW() WHERE id = $1 RETURNING `+companyColumns, id, path)
}

// SetVerified flips verified_at; repeating the same flip keeps the row as is.
func (r *CompanyRepo) SetVerified(ctx context.Context, id int64, verified bool) (*models.Company, error) {
	query := `UPDATE companies SET verified_at = NULL, updated_at = NOW() WHERE id = $1 RETURNING ` + companyColumns
	if verified {
		query = `UPDATE companies SET verified_at = COALESCE(verified_at, NOW()), updated_at = NOW() WHERE id = $1 RETURNING ` + companyColumns
	}
	return one[models.Company](ctx, r.q(ctx), "set verified", query, id)
}

func (r *CompanyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err := requireRow(tag, err, "delete company"); err != nil {
		return err
	}
	log.Printf("Company deleted successfully with ID: %d", id)
	return nil
}

func (r *CompanyRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return exists(ctx, r.q(ctx), "company slug exists", `SELECT EXISTS (SELECT 1 FROM companies WHERE slug = $1)`, slug)
}
