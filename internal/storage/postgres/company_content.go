package postgres

import (
	"context"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// --- Media ---

const mediaColumns = `id, company_id, kind, url, caption, position, created_at`

// CompanyMediaRepo implements storage.CompanyMediaRepository.
type CompanyMediaRepo struct {
	base
}

func NewCompanyMediaRepo(pool *pgxpool.Pool) *CompanyMediaRepo {
	return &CompanyMediaRepo{base{pool}}
}

var _ storage.CompanyMediaRepository = (*CompanyMediaRepo)(nil)

func (r *CompanyMediaRepo) List(ctx context.Context, companyID int64) ([]models.CompanyMedia, error) {
	return collect[models.CompanyMedia](ctx, r.q(ctx), "list media",
		`SELECT `+mediaColumns+` FROM company_media WHERE company_id = $1 ORDER BY position, id`, companyID)
}

func (r *CompanyMediaRepo) Get(ctx context.Context, companyID, id int64) (*models.CompanyMedia, error) {
	return one[models.CompanyMedia](ctx, r.q(ctx), "get media",
		`SELECT `+mediaColumns+` FROM company_media WHERE company_id = $1 AND id = $2`, companyID, id)
}

// Create appends the item after the current last position.
func (r *CompanyMediaRepo) Create(ctx context.Context, m *models.CompanyMedia) (*models.CompanyMedia, error) {
	query := `
		INSERT INTO company_media (company_id, kind, url, caption, position)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position) + 1, 0) FROM company_media WHERE company_id = $1))
		RETURNING ` + mediaColumns
	return one[models.CompanyMedia](ctx, r.q(ctx), "create media", query, m.CompanyID, m.Kind, m.URL, m.Caption)
}

func (r *CompanyMediaRepo) Update(ctx context.Context, m *models.CompanyMedia) (*models.CompanyMedia, error) {
	return one[models.CompanyMedia](ctx, r.q(ctx), "update media",
		`UPDATE company_media SET kind = $3, url = $4, caption = $5 WHERE company_id = $1 AND id = $2 RETURNING `+mediaColumns,
		m.CompanyID, m.ID, m.Kind, m.URL, m.Caption)
}

func (r *CompanyMediaRepo) Delete(ctx context.Context, companyID, id int64) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM company_media WHERE company_id = $1 AND id = $2`, companyID, id)
	return requireRow(tag, err, "delete media")
}

func (r *CompanyMediaRepo) SetPosition(ctx context.Context, companyID, id int64, position int32) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE company_media SET position = $3 WHERE company_id = $1 AND id = $2`, companyID, id, position)
	return requireRow(tag, err, "reorder media")
}

// --- Publications ---

const publicationColumns = `id, company_id, title, body, published_at, created_at, updated_at`

// PublicationRepo implements storage.PublicationRepository.
type PublicationRepo struct {
	base
}

func NewPublicationRepo(pool *pgxpool.Pool) *PublicationRepo {
	return &PublicationRepo{base{pool}}
}

var _ storage.PublicationRepository = (*PublicationRepo)(nil)

func (r *PublicationRepo) List(ctx context.Context, companyID int64, publishedOnly bool, page pagination.PageRequest) ([]models.Publication, int, error) {
	w := &where{}
	w.add("company_id = ?", companyID)
	if publishedOnly {
		w.raw("published_at IS NOT NULL")
	}
	return listPage[models.Publication](ctx, r.q(ctx), publicationColumns, "FROM company_publications", w,
		"COALESCE(published_at, created_at) DESC, id DESC", page, "list publications")
}

func (r *PublicationRepo) Get(ctx context.Context, companyID, id int64) (*models.Publication, error) {
	return one[models.Publication](ctx, r.q(ctx), "get publication",
		`SELECT `+publicationColumns+` FROM company_publications WHERE company_id = $1 AND id = $2`, companyID, id)
}

func (r *PublicationRepo) Create(ctx context.Context, p *models.Publication) (*models.Publication, error) {
	return one[models.Publication](ctx, r.q(ctx), "create publication",
		`INSERT INTO company_publications (company_id, title, body, published_at) VALUES ($1, $2, $3, $4) RETURNING `+publicationColumns,
		p.CompanyID, p.Title, p.Body, p.PublishedAt)
}

func (r *PublicationRepo) Update(ctx context.Context, p *models.Publication) (*models.Publication, error) {
	return one[models.Publication](ctx, r.q(ctx), "update publication",
		`UPDATE company_publications SET title = $3, body = $4, updated_at = NOW()
		 WHERE company_id = $1 AND id = $2 RETURNING `+publicationColumns,
		p.CompanyID, p.ID, p.Title, p.Body)
}

// SetPublished is idempotent: publishing twice keeps the first published_at.
func (r *PublicationRepo) SetPublished(ctx context.Context, companyID, id int64, published bool) (*models.Publication, error) {
	query := `UPDATE company_publications SET published_at = NULL, updated_at = NOW()
		WHERE company_id = $1 AND id = $2 RETURNING ` + publicationColumns
	if published {
		query = `UPDATE company_publications SET published_at = COALESCE(published_at, NOW()), updated_at = NOW()
		WHERE company_id = $1 AND id = $2 RETURNING ` + publicationColumns
	}
	return one[models.Publication](ctx, r.q(ctx), "set publication published", query, companyID, id)
}

func (r *PublicationRepo) Delete(ctx context.Context, companyID, id int64) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM company_publications WHERE company_id = $1 AND id = $2`, companyID, id)
	return requireRow(tag, err, "delete publication")
}

// --- Org chart ---

const orgColumns = `id, company_id, parent_id, name, title, position`

// OrgRepo implements storage.OrgRepository.
type OrgRepo struct {
	base
}

func NewOrgRepo(pool *pgxpool.Pool) *OrgRepo {
	return &OrgRepo{base{pool}}
}

var _ storage.OrgRepository = (*OrgRepo)(nil)

func (r *OrgRepo) List(ctx context.Context, companyID int64) ([]models.OrgNode, error) {
	return collect[models.OrgNode](ctx, r.q(ctx), "list org nodes",
		`SELECT `+orgColumns+` FROM org_nodes WHERE company_id = $1 ORDER BY position, id`, companyID)
}

func (r *OrgRepo) Get(ctx context.Context, companyID, id int64) (*models.OrgNode, error) {
	return one[models.OrgNode](ctx, r.q(ctx), "get org node",
		`SELECT `+orgColumns+` FROM org_nodes WHERE company_id = $1 AND id = $2`, companyID, id)
}

func (r *OrgRepo) Create(ctx context.Context, n *models.OrgNode) (*models.OrgNode, error) {
	query := `
		INSERT INTO org_nodes (company_id, parent_id, name, title, position)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position) + 1, 0) FROM org_nodes
			WHERE company_id = $1 AND parent_id IS NOT DISTINCT FROM $2))
		RETURNING ` + orgColumns
	return one[models.OrgNode](ctx, r.q(ctx), "create org node", query, n.CompanyID, n.ParentID, n.Name, n.Title)
}

func (r *OrgRepo) Update(ctx context.Context, n *models.OrgNode) (*models.OrgNode, error) {
	return one[models.OrgNode](ctx, r.q(ctx), "update org node",
		`UPDATE org_nodes SET parent_id = $3, name = $4, title = $5 WHERE company_id = $1 AND id = $2 RETURNING `+orgColumns,
		n.CompanyID, n.ID, n.ParentID, n.Name, n.Title)
}

// Reparent moves every child of fromParentID under toParentID.
func (r *OrgRepo) Reparent(ctx context.Context, companyID, fromParentID int64, toParentID *int64) error {
	_, err := r.q(ctx).Exec(ctx,
		`UPDATE org_nodes SET parent_id = $3 WHERE company_id = $1 AND parent_id = $2`, companyID, fromParentID, toParentID)
	return mapError(err, "reparent org nodes")
}

func (r *OrgRepo) Move(ctx context.Context, companyID, id int64, parentID *int64, position int32) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE org_nodes SET parent_id = $3, position = $4 WHERE company_id = $1 AND id = $2`, companyID, id, parentID, position)
	return requireRow(tag, err, "move org node")
}

func (r *OrgRepo) Delete(ctx context.Context, companyID, id int64) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM org_nodes WHERE company_id = $1 AND id = $2`, companyID, id)
	return requireRow(tag, err, "delete org node")
}

// --- HR contacts ---

const hrContactColumns = `id, company_id, name, email, phone, role_title, is_primary, created_at, updated_at`

// HRContactRepo implements storage.HRContactRepository.
type HRContactRepo struct {
	base
}

func NewHRContactRepo(pool *pgxpool.Pool) *HRContactRepo {
	return &HRContactRepo{base{pool}}
}

var _ storage.HRContactRepository = (*HRContactRepo)(nil)

func (r *HRContactRepo) List(ctx context.Context, companyID int64) ([]models.HRContact, error) {
	return collect[models.HRContact](ctx, r.q(ctx), "list hr contacts",
		`SELECT `+hrContactColumns+` FROM hr_contacts WHERE company_id = $1 ORDER BY is_primary DESC, name`, companyID)
}

func (r *HRContactRepo) Get(ctx context.Context, companyID, id int64) (*models.HRContact, error) {
	return one[models.HRContact](ctx, r.q(ctx), "get hr contact",
		`SELECT `+hrContactColumns+` FROM hr_contacts WHERE company_id = $1 AND id = $2`, companyID, id)
}

func (r *HRContactRepo) Create(ctx context.Context, c *models.HRContact) (*models.HRContact, error) {
	return one[models.HRContact](ctx, r.q(ctx), "create hr contact",
		`INSERT INTO hr_contacts (company_id, name, email, phone, role_title, is_primary)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+hrContactColumns,
		c.CompanyID, c.Name, c.Email, c.Phone, c.RoleTitle, c.IsPrimary)
}

func (r *HRContactRepo) Update(ctx context.Context, c *models.HRContact) (*models.HRContact, error) {
	return one[models.HRContact](ctx, r.q(ctx), "update hr contact",
		`UPDATE hr_contacts SET name = $3, email = $4, phone = $5, role_title = $6, updated_at = NOW()
		 WHERE company_id = $1 AND id = $2 RETURNING `+hrContactColumns,
		c.CompanyID, c.ID, c.Name, c.Email, c.Phone, c.RoleTitle)
}

func (r *HRContactRepo) Delete(ctx context.Context, companyID, id int64) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM hr_contacts WHERE company_id = $1 AND id = $2`, companyID, id)
	return requireRow(tag, err, "delete hr contact")
}

func (r *HRContactRepo) Count(ctx context.Context, companyID int64) (int, error) {
	var n int
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM hr_contacts WHERE company_id = $1`, companyID).Scan(&n); err != nil {
		return 0, mapError(err, "count hr contacts")
	}
	return n, nil
}

// SetPrimary clears the current primary before flagging id, so the partial unique index holds.
func (r *HRContactRepo) SetPrimary(ctx context.Context, companyID, id int64) error {
	if _, err := r.q(ctx).Exec(ctx,
		`UPDATE hr_contacts SET is_primary = FALSE, updated_at = NOW() WHERE company_id = $1 AND is_primary AND id <> $2`,
		companyID, id); err != nil {
		return mapError(err, "clear primary hr contact")
	}
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE hr_contacts SET is_primary = TRUE, updated_at = NOW() WHERE company_id = $1 AND id = $2`, companyID, id)
	return requireRow(tag, err, "set primary hr contact")
}

// PromoteOldest makes the oldest contact primary when the company has none.
func (r *HRContactRepo) PromoteOldest(ctx context.Context, companyID int64) error {
	_, err := r.q(ctx).Exec(ctx, `
		UPDATE hr_contacts SET is_primary = TRUE, updated_at = NOW()
		WHERE id = (SELECT id FROM hr_contacts WHERE company_id = $1 ORDER BY created_at, id LIMIT 1)
		  AND NOT EXISTS (SELECT 1 FROM hr_contacts WHERE company_id = $1 AND is_primary)`, companyID)
	return mapError(err, "promote hr contact")
}
