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

const applicationColumns = `id, student_id, company_id, job_offer_id, cover_letter, cv_path, status, status_note,
	hr_notes, created_at, updated_at`

const applicationListingColumns = `a.id, a.student_id, a.company_id, a.job_offer_id, a.cover_letter, a.cv_path,
	a.status, a.status_note, a.hr_notes, a.created_at, a.updated_at,
	o.title AS offer_title, c.name AS company_name, u.name AS student_name, u.email AS student_email`

const applicationListingFrom = `FROM applications a
	JOIN companies c ON c.id = a.company_id
	JOIN users u ON u.id = a.student_id
	LEFT JOIN job_offers o ON o.id = a.job_offer_id`

// ApplicationRepo implements storage.ApplicationRepository.
type ApplicationRepo struct {
	base
}

func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{base{pool}}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// Create saves a pending application. Applying twice to the same offer returns storage.ErrConflict.
func (r *ApplicationRepo) Create(ctx context.Context, a *models.Application) (*models.Application, error) {
	query := `
		INSERT INTO applications (student_id, company_id, job_offer_id, cover_letter, cv_path, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING ` + applicationColumns
	created, err := one[models.Application](ctx, r.q(ctx), "create application", query,
		a.StudentID, a.CompanyID, a.JobOfferID, a.CoverLetter, a.CVPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Application created successfully with ID: %d", created.ID)
	return created, nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id int64) (*models.ApplicationListing, error) {
	return one[models.ApplicationListing](ctx, r.q(ctx), "get application",
		`SELECT `+applicationListingColumns+` `+applicationListingFrom+` WHERE a.id = $1`, id)
}

func (r *ApplicationRepo) List(ctx context.Context, f storage.ApplicationFilter, page pagination.PageRequest) ([]models.ApplicationListing, int, error) {
	w := applicationWhere(f)
	return listPage[models.ApplicationListing](ctx, r.q(ctx), applicationListingColumns, applicationListingFrom, w,
		"a.created_at DESC, a.id DESC", page, "list applications")
}

func applicationWhere(f storage.ApplicationFilter) *where {
	w := &where{}
	if f.StudentID != nil {
		w.add("a.student_id = ?", *f.StudentID)
	}
	if f.CompanyID != nil {
		w.add("a.company_id = ?", *f.CompanyID)
	}
	if f.OfferID != nil {
		w.add("a.job_offer_id = ?", *f.OfferID)
	}
	if f.Status != nil {
		w.add("a.status = ?", *f.Status)
	}
	return w
}

// TransitionStatus only succeeds while the application is still in from.
func (r *ApplicationRepo) TransitionStatus(ctx context.Context, id int64, from, to models.ApplicationStatus, note *string) (*models.Application, error) {
	query := `
		UPDATE applications SET status = $3, status_note = $4, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + applicationColumns
	app, err := one[models.Application](ctx, r.q(ctx), "transition application", query, id, from, to, note)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, storage.ErrConflict
	}
	return app, err
}

func (r *ApplicationRepo) UpdateNotes(ctx context.Context, id int64, notes *string) (*models.Application, error) {
	return one[models.Application](ctx, r.q(ctx), "update application notes",
		`UPDATE applications SET hr_notes = $2, updated_at = NOW() WHERE id = $1 RETURNING `+applicationColumns, id, notes)
}

func (r *ApplicationRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	return requireRow(tag, err, "delete application")
}

func (r *ApplicationRepo) CountByStatus(ctx context.Context, f storage.ApplicationFilter) ([]models.LabelCount, error) {
	w := applicationWhere(f)
	return collect[models.LabelCount](ctx, r.q(ctx), "count applications by status",
		`SELECT a.status AS label, COUNT(*) AS count FROM applications a`+w.String()+` GROUP BY a.status ORDER BY a.status`,
		w.args...)
}

// CountByOffer groups a company's applications by offer title; spontaneous ones are labelled "spontaneous".
func (r *ApplicationRepo) CountByOffer(ctx context.Context, companyID int64) ([]models.LabelCount, error) {
	return collect[models.LabelCount](ctx, r.q(ctx), "count applications by offer", `
		SELECT COALESCE(o.title, 'spontaneous') AS label, COUNT(*) AS count
		FROM applications a LEFT JOIN job_offers o ON o.id = a.job_offer_id
		WHERE a.company_id = $1
		GROUP BY COALESCE(o.title, 'spontaneous')
		ORDER BY count DESC, label`, companyID)
}
