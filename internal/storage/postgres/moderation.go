package postgres

import (
	"context"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

const reportColumns = `id, reporter_id, reportable_type, reportable_id, reason, status, admin_note, created_at, updated_at`

// ReportRepo implements storage.ReportRepository.
type ReportRepo struct {
	base
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{base{pool}}
}

var _ storage.ReportRepository = (*ReportRepo)(nil)

func (r *ReportRepo) Create(ctx context.Context, rp *models.Report) (*models.Report, error) {
	return one[models.Report](ctx, r.q(ctx), "create report",
		`INSERT INTO reports (reporter_id, reportable_type, reportable_id, reason, status)
		 VALUES ($1, $2, $3, $4, 'open') RETURNING `+reportColumns,
		rp.ReporterID, rp.ReportableType, rp.ReportableID, rp.Reason)
}

func (r *ReportRepo) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	return one[models.Report](ctx, r.q(ctx), "get report", `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)
}

func (r *ReportRepo) List(ctx context.Context, status string, page pagination.PageRequest) ([]models.Report, int, error) {
	w := &where{}
	if status != "" {
		w.add("status = ?", status)
	}
	return listPage[models.Report](ctx, r.q(ctx), reportColumns, "FROM reports", w, "created_at DESC, id DESC", page, "list reports")
}

func (r *ReportRepo) UpdateStatus(ctx context.Context, id int64, status string, note *string) (*models.Report, error) {
	return one[models.Report](ctx, r.q(ctx), "update report status",
		`UPDATE reports SET status = $2, admin_note = COALESCE($3, admin_note), updated_at = NOW()
		 WHERE id = $1 RETURNING `+reportColumns, id, status, note)
}

const suggestionColumns = `id, label, company_id, city_id, position, active, created_at, updated_at`

// SuggestionRepo implements storage.SuggestionRepository.
type SuggestionRepo struct {
	base
}

func NewSuggestionRepo(pool *pgxpool.Pool) *SuggestionRepo {
	return &SuggestionRepo{base{pool}}
}

var _ storage.SuggestionRepository = (*SuggestionRepo)(nil)

// ListActive returns the city's suggestions followed by global ones.
func (r *SuggestionRepo) ListActive(ctx context.Context, cityID *int64, limit int) ([]models.Suggestion, error) {
	return collect[models.Suggestion](ctx, r.q(ctx), "list active suggestions", `
		SELECT `+suggestionColumns+` FROM suggestions
		WHERE active AND (city_id IS NULL OR city_id = $1)
		ORDER BY (city_id IS NULL), position, id
		LIMIT $2`, cityID, limit)
}

func (r *SuggestionRepo) List(ctx context.Context, page pagination.PageRequest) ([]models.Suggestion, int, error) {
	return listPage[models.Suggestion](ctx, r.q(ctx), suggestionColumns, "FROM suggestions", &where{}, "position, id", page, "list suggestions")
}

func (r *SuggestionRepo) Get(ctx context.Context, id int64) (*models.Suggestion, error) {
	return one[models.Suggestion](ctx, r.q(ctx), "get suggestion", `SELECT `+suggestionColumns+` FROM suggestions WHERE id = $1`, id)
}

func (r *SuggestionRepo) Create(ctx context.Context, s *models.Suggestion) (*models.Suggestion, error) {
	return one[models.Suggestion](ctx, r.q(ctx), "create suggestion",
		`INSERT INTO suggestions (label, company_id, city_id, position, active) VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+suggestionColumns,
		s.Label, s.CompanyID, s.CityID, s.Position, s.Active)
}

func (r *SuggestionRepo) Update(ctx context.Context, s *models.Suggestion) (*models.Suggestion, error) {
	return one[models.Suggestion](ctx, r.q(ctx), "update suggestion",
		`UPDATE suggestions SET label = $2, company_id = $3, city_id = $4, position = $5, active = $6, updated_at = NOW()
		 WHERE id = $1 RETURNING `+suggestionColumns,
		s.ID, s.Label, s.CompanyID, s.CityID, s.Position, s.Active)
}

func (r *SuggestionRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM suggestions WHERE id = $1`, id)
	return requireRow(tag, err, "delete suggestion")
}
