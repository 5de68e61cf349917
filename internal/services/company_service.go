package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"professionals-api/internal/media"
	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/slug"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"
)

type companyService struct {
	companies storage.CompanyRepository
	refs      storage.ReferenceRepository
	analytics storage.AnalyticsRepository
	files     FileStore
	limits    UploadLimits
}

func NewCompanyService(
	companies storage.CompanyRepository,
	refs storage.ReferenceRepository,
	analytics storage.AnalyticsRepository,
	files FileStore,
	limits UploadLimits,
) CompanyService {
	return &companyService{companies: companies, refs: refs, analytics: analytics, files: files, limits: limits}
}

func (s *companyService) List(ctx context.Context, q *dto.CompanyListQuery, page pagination.PageRequest) (pagination.PageResult[models.CompanyListing], error) {
	items, total, err := s.companies.List(ctx, storage.CompanyFilter{SectorID: q.SectorID, CityID: q.CityID, Size: q.Size}, page)
	if err != nil {
		return pagination.PageResult[models.CompanyListing]{}, MapRepoError(err, "listing companies")
	}
	return pagination.NewPageResult(items, total, page), nil
}

func (s *companyService) GetBySlug(ctx context.Context, companySlug string) (*models.CompanyListing, error) {
	company, err := s.companies.GetBySlug(ctx, companySlug)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching company %s", companySlug))
	}
	listing, err := s.companies.GetListing(ctx, company.ID)
	return listing, MapRepoError(err, "fetching company listing")
}

func (s *companyService) Stats(ctx context.Context, companyID int64) (*storage.CompanyStats, error) {
	stats, err := s.analytics.CompanyStats(ctx, companyID)
	return stats, MapRepoError(err, "computing company stats")
}

func (s *companyService) Mine(ctx context.Context, ownerID int64) (*models.Company, error) {
	company, err := s.companies.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: no company registered for this account", ErrNotFound)
		}
		return nil, MapRepoError(err, "fetching own company")
	}
	return company, nil
}

func (s *companyService) applyRequest(ctx context.Context, c *models.Company, req *dto.CompanyRequest) error {
	if err := checkReferences(ctx, s.refs, req.SectorID, req.CityID, nil); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(req.Name)
	c.Description = req.Description
	c.SectorID = req.SectorID
	c.CityID = req.CityID
	c.Size = req.Size
	c.Website = req.Website
	c.Email = req.Email
	c.Phone = req.Phone
	c.FoundedYear = req.FoundedYear
	return nil
}

// Create registers the caller's single company; a second one is a conflict.
func (s *companyService) Create(ctx context.Context, ownerID int64, req *dto.CompanyRequest) (*models.Company, error) {
	if _, err := s.companies.GetByOwner(ctx, ownerID); err == nil {
		return nil, fmt.Errorf("%w: account already owns a company", ErrConflict)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, MapRepoError(err, "checking existing company")
	}

	company := &models.Company{OwnerID: ownerID}
	if err := s.applyRequest(ctx, company, req); err != nil {
		return nil, err
	}
	companySlug, err := slug.Unique(slug.Make(company.Name), func(candidate string) (bool, error) {
		return s.companies.SlugExists(ctx, candidate)
	})
	if err != nil {
		return nil, MapRepoError(err, "generating company slug")
	}
	company.Slug = companySlug

	created, err := s.companies.Create(ctx, company)
	if err != nil {
		return nil, MapRepoError(err, "creating company")
	}
	log.Printf("CompanyService: company %d (%s) created by user %d", created.ID, created.Slug, ownerID)
	return created, nil
}

// Update keeps the slug so public links stay valid.
func (s *companyService) Update(ctx context.Context, ownerID int64, req *dto.CompanyRequest) (*models.Company, error) {
	company, err := s.Mine(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.applyRequest(ctx, company, req); err != nil {
		return nil, err
	}
	updated, err := s.companies.Update(ctx, company)
	return updated, MapRepoError(err, "updating company")
}

func (s *companyService) Delete(ctx context.Context, ownerID int64) error {
	company, err := s.Mine(ctx, ownerID)
	if err != nil {
		return err
	}
	return s.delete(ctx, company)
}

func (s *companyService) delete(ctx context.Context, company *models.Company) error {
	if err := s.companies.Delete(ctx, company.ID); err != nil {
		return MapRepoError(err, "deleting company")
	}
	removeFile(ctx, s.files, company.LogoPath)
	removeFile(ctx, s.files, company.CoverPath)
	log.Printf("CompanyService: company %d deleted", company.ID)
	return nil
}

func (s *companyService) UploadLogo(ctx context.Context, ownerID int64, data []byte) (*models.Company, error) {
	company, err := s.Mine(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	key, err := saveImage(ctx, s.files, s.limits, "logo", "logos", media.LogoSpec, data)
	if err != nil {
		return nil, err
	}
	updated, err := s.companies.SetLogo(ctx, company.ID, key)
	if err != nil {
		removeFile(ctx, s.files, &key)
		return nil, MapRepoError(err, "saving logo")
	}
	removeFile(ctx, s.files, company.LogoPath)
	return updated, nil
}

func (s *companyService) UploadCover(ctx context.Context, ownerID int64, data []byte) (*models.Company, error) {
	company, err := s.Mine(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	key, err := saveImage(ctx, s.files, s.limits, "cover", "covers", media.CoverSpec, data)
	if err != nil {
		return nil, err
	}
	updated, err := s.companies.SetCover(ctx, company.ID, key)
	if err != nil {
		removeFile(ctx, s.files, &key)
		return nil, MapRepoError(err, "saving cover")
	}
	removeFile(ctx, s.files, company.CoverPath)
	return updated, nil
}

// --- Admin ---

func (s *companyService) AdminList(ctx context.Context, q *dto.AdminCompanyListQuery, page pagination.PageRequest) (pagination.PageResult[models.CompanyListing], error) {
	items, total, err := s.companies.List(ctx, storage.CompanyFilter{
		Query:      strings.TrimSpace(q.Q),
		SearchType: storage.SearchByName,
		Verified:   q.Verified,
	}, page)
	if err != nil {
		return pagination.PageResult[models.CompanyListing]{}, MapRepoError(err, "listing companies")
	}
	return pagination.NewPageResult(items, total, page), nil
}

func (s *companyService) AdminGet(ctx context.Context, id int64) (*models.CompanyListing, error) {
	listing, err := s.companies.GetListing(ctx, id)
	return listing, MapRepoError(err, fmt.Sprintf("fetching company %d", id))
}

func (s *companyService) AdminUpdate(ctx context.Context, id int64, req *dto.CompanyRequest) (*models.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching company %d", id))
	}
	if err := s.applyRequest(ctx, company, req); err != nil {
		return nil, err
	}
	updated, err := s.companies.Update(ctx, company)
	return updated, MapRepoError(err, "updating company")
}

// SetVerified is idempotent.
func (s *companyService) SetVerified(ctx context.Context, id int64, verified bool) (*models.Company, error) {
	company, err := s.companies.SetVerified(ctx, id, verified)
	return company, MapRepoError(err, fmt.Sprintf("setting company %d verification", id))
}

func (s *companyService) AdminDelete(ctx context.Context, id int64) error {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return MapRepoError(err, fmt.Sprintf("fetching company %d", id))
	}
	return s.delete(ctx, company)
}
