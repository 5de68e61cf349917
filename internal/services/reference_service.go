package services

import (
	"context"
	"strings"

	"professionals-api/internal/models"
	"professionals-api/internal/slug"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"
)

type referenceService struct {
	repo storage.ReferenceRepository
}

func NewReferenceService(repo storage.ReferenceRepository) ReferenceService {
	return &referenceService{repo: repo}
}

func (s *referenceService) ListCountries(ctx context.Context) ([]models.Country, error) {
	countries, err := s.repo.ListCountries(ctx)
	return countries, MapRepoError(err, "listing countries")
}

func (s *referenceService) ListCities(ctx context.Context, countryID *int64) ([]models.City, error) {
	cities, err := s.repo.ListCities(ctx, countryID)
	return cities, MapRepoError(err, "listing cities")
}

func (s *referenceService) GetCity(ctx context.Context, id int64) (*models.City, error) {
	city, err := s.repo.GetCity(ctx, id)
	return city, MapRepoError(err, "fetching city")
}

func (s *referenceService) ListSectors(ctx context.Context) ([]models.Sector, error) {
	sectors, err := s.repo.ListSectors(ctx)
	return sectors, MapRepoError(err, "listing sectors")
}

func (s *referenceService) GetSector(ctx context.Context, id int64) (*models.Sector, error) {
	sector, err := s.repo.GetSector(ctx, id)
	return sector, MapRepoError(err, "fetching sector")
}

func (s *referenceService) ListSkills(ctx context.Context, query string) ([]models.Skill, error) {
	skills, err := s.repo.ListSkills(ctx, strings.TrimSpace(query))
	return skills, MapRepoError(err, "listing skills")
}

func (s *referenceService) sectorSlug(ctx context.Context, name string) (string, error) {
	return slug.Unique(slug.Make(name), func(candidate string) (bool, error) {
		return s.repo.SectorSlugExists(ctx, candidate)
	})
}

func (s *referenceService) CreateSector(ctx context.Context, req *dto.SectorRequest) (*models.Sector, error) {
	name := strings.TrimSpace(req.Name)
	sectorSlug, err := s.sectorSlug(ctx, name)
	if err != nil {
		return nil, MapRepoError(err, "generating sector slug")
	}
	sector, err := s.repo.CreateSector(ctx, &models.Sector{Name: name, Slug: sectorSlug, Description: req.Description})
	return sector, MapRepoError(err, "creating sector")
}

func (s *referenceService) UpdateSector(ctx context.Context, id int64, req *dto.SectorRequest) (*models.Sector, error) {
	sector, err := s.repo.GetSector(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "fetching sector")
	}
	name := strings.TrimSpace(req.Name)
	if name != sector.Name {
		if sector.Slug, err = s.sectorSlug(ctx, name); err != nil {
			return nil, MapRepoError(err, "generating sector slug")
		}
	}
	sector.Name = name
	sector.Description = req.Description
	updated, err := s.repo.UpdateSector(ctx, sector)
	return updated, MapRepoError(err, "updating sector")
}

// DeleteSector fails with ErrConflict while companies still use the sector.
func (s *referenceService) DeleteSector(ctx context.Context, id int64) error {
	return MapRepoError(s.repo.DeleteSector(ctx, id), "deleting sector")
}
