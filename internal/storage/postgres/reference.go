package postgres

import (
	"context"

	"professionals-api/internal/models"
	"professionals-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ReferenceRepo implements storage.ReferenceRepository.
type ReferenceRepo struct {
	base
}

func NewReferenceRepo(pool *pgxpool.Pool) *ReferenceRepo {
	return &ReferenceRepo{base{pool}}
}

var _ storage.ReferenceRepository = (*ReferenceRepo)(nil)

func (r *ReferenceRepo) ListCountries(ctx context.Context) ([]models.Country, error) {
	return collect[models.Country](ctx, r.q(ctx), "list countries", `SELECT id, name, code FROM countries ORDER BY name`)
}

func (r *ReferenceRepo) ListCities(ctx context.Context, countryID *int64) ([]models.City, error) {
	w := &where{}
	if countryID != nil {
		w.add("country_id = ?", *countryID)
	}
	return collect[models.City](ctx, r.q(ctx), "list cities",
		`SELECT id, country_id, name FROM cities`+w.String()+` ORDER BY name`, w.args...)
}

func (r *ReferenceRepo) GetCity(ctx context.Context, id int64) (*models.City, error) {
	return one[models.City](ctx, r.q(ctx), "get city", `SELECT id, country_id, name FROM cities WHERE id = $1`, id)
}

func (r *ReferenceRepo) ListSectors(ctx context.Context) ([]models.Sector, error) {
	return collect[models.Sector](ctx, r.q(ctx), "list sectors",
		`SELECT id, name, slug, description FROM sectors ORDER BY name`)
}

func (r *ReferenceRepo) GetSector(ctx context.Context, id int64) (*models.Sector, error) {
	return one[models.Sector](ctx, r.q(ctx), "get sector",
		`SELECT id, name, slug, description FROM sectors WHERE id = $1`, id)
}

// ListSkills returns skills whose name contains query, or all skills when query is empty.
func (r *ReferenceRepo) ListSkills(ctx context.Context, query string) ([]models.Skill, error) {
	w := &where{}
	if query != "" {
		w.add("name ILIKE ?", likePattern(query))
	}
	return collect[models.Skill](ctx, r.q(ctx), "list skills",
		`SELECT id, name, slug FROM skills`+w.String()+` ORDER BY name LIMIT 50`, w.args...)
}

// CountSkills returns how many of ids exist.
func (r *ReferenceRepo) CountSkills(ctx context.Context, ids []int64) (int, error) {
	var n int
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM skills WHERE id = ANY($1)`, ids).Scan(&n); err != nil {
		return 0, mapError(err, "count skills")
	}
	return n, nil
}

func (r *ReferenceRepo) CreateSector(ctx context.Context, s *models.Sector) (*models.Sector, error) {
	return one[models.Sector](ctx, r.q(ctx), "create sector",
		`INSERT INTO sectors (name, slug, description) VALUES ($1, $2, $3) RETURNING id, name, slug, description`,
		s.Name, s.Slug, s.Description)
}

func (r *ReferenceRepo) UpdateSector(ctx context.Context, s *models.Sector) (*models.Sector, error) {
	return one[models.Sector](ctx, r.q(ctx), "update sector",
		`UPDATE sectors SET name = $2, slug = $3, description = $4 WHERE id = $1 RETURNING id, name, slug, description`,
		s.ID, s.Name, s.Slug, s.Description)
}

// DeleteSector fails with storage.ErrInUse while companies or offers reference the sector.
func (r *ReferenceRepo) DeleteSector(ctx context.Context, id int64) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM sectors WHERE id = $1`, id)
	return requireRow(tag, err, "delete sector")
}

func (r *ReferenceRepo) SectorSlugExists(ctx context.Context, slug string) (bool, error) {
	return exists(ctx, r.q(ctx), "sector slug exists", `SELECT EXISTS (SELECT 1 FROM sectors WHERE slug = $1)`, slug)
}
