package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/slug"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"
)

const similarOffersLimit = 6

type offerService struct {
	offers storage.JobOfferRepository
	refs   storage.ReferenceRepository
}

func NewOfferService(offers storage.JobOfferRepository, refs storage.ReferenceRepository) OfferService {
	return &offerService{offers: offers, refs: refs}
}

func (s *offerService) page(ctx context.Context, filter storage.OfferFilter, page pagination.PageRequest) (pagination.PageResult[models.JobOfferListing], error) {
	items, total, err := s.offers.List(ctx, filter, page)
	if err != nil {
		return pagination.PageResult[models.JobOfferListing]{}, MapRepoError(err, "listing job offers")
	}
	return pagination.NewPageResult(items, total, page), nil
}

// --- Public ---

func (s *offerService) ListPublic(ctx context.Context, q *dto.OfferListQuery, page pagination.PageRequest) (pagination.PageResult[models.JobOfferListing], error) {
	filter := storage.OfferFilter{
		PublicOnly: true,
		SectorID:   q.SectorID,
		CityID:     q.CityID,
		Query:      strings.TrimSpace(q.Q),
	}
	if q.Type != "" {
		t := models.OfferType(q.Type)
		filter.Type = &t
	}
	return s.page(ctx, filter, page)
}

// GetPublic hides drafts, closed and deactivated offers behind ErrNotFound.
func (s *offerService) GetPublic(ctx context.Context, offerSlug string) (*models.JobOfferListing, error) {
	offer, err := s.offers.GetBySlug(ctx, offerSlug)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching offer %s", offerSlug))
	}
	if !offer.Visible() {
		return nil, fmt.Errorf("%w: offer %s", ErrNotFound, offerSlug)
	}
	return offer, nil
}

func (s *offerService) Similar(ctx context.Context, offerSlug string) ([]models.JobOfferListing, error) {
	offer, err := s.GetPublic(ctx, offerSlug)
	if err != nil {
		return nil, err
	}
	items, err := s.offers.Similar(ctx, &offer.JobOffer, similarOffersLimit)
	return items, MapRepoError(err, "listing similar offers")
}

func (s *offerService) ListForCompany(ctx context.Context, companyID int64, page pagination.PageRequest) (pagination.PageResult[models.JobOfferListing], error) {
	return s.page(ctx, storage.OfferFilter{PublicOnly: true, CompanyID: &companyID}, page)
}

// --- Company owned ---

func (s *offerService) List(ctx context.Context, companyID int64, q *dto.MyOfferListQuery, page pagination.PageRequest) (pagination.PageResult[models.JobOfferListing], error) {
	filter := storage.OfferFilter{CompanyID: &companyID}
	if q.Status != "" {
		st := models.OfferStatus(q.Status)
		filter.Status = &st
	}
	return s.page(ctx, filter, page)
}

func (s *offerService) applyRequest(ctx context.Context, o *models.JobOffer, req *dto.OfferRequest) error {
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMax < *req.SalaryMin {
		return fieldError("salary_max", "must be greater than or equal to salary_min")
	}
	skills := uniqueIDs(req.SkillIDs)
	if err := checkReferences(ctx, s.refs, req.SectorID, req.CityID, skills); err != nil {
		return err
	}
	o.Title = strings.TrimSpace(req.Title)
	o.Description = req.Description
	o.Type = req.Type
	o.SectorID = req.SectorID
	o.CityID = req.CityID
	o.SalaryMin = req.SalaryMin
	o.SalaryMax = req.SalaryMax
	o.ClosesAt = req.ClosesAt
	o.SkillIDs = skills
	return nil
}

func (s *offerService) uniqueSlug(ctx context.Context, title string) (string, error) {
	return slug.Unique(slug.Make(title), func(candidate string) (bool, error) {
		return s.offers.SlugExists(ctx, candidate)
	})
}

func (s *offerService) Create(ctx context.Context, companyID int64, req *dto.OfferRequest) (*models.JobOffer, error) {
	offer := &models.JobOffer{CompanyID: companyID}
	if err := s.applyRequest(ctx, offer, req); err != nil {
		return nil, err
	}
	var err error
	if offer.Slug, err = s.uniqueSlug(ctx, offer.Title); err != nil {
		return nil, MapRepoError(err, "generating offer slug")
	}
	created, err := s.offers.Create(ctx, offer)
	return created, MapRepoError(err, "creating offer")
}

// owned loads an offer of companyID; other companies' offers are reported missing.
func (s *offerService) owned(ctx context.Context, companyID, id int64) (*models.JobOffer, error) {
	offer, err := s.offers.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching offer %d", id))
	}
	if offer.CompanyID != companyID {
		return nil, fmt.Errorf("%w: offer %d", ErrNotFound, id)
	}
	return offer, nil
}

func (s *offerService) Get(ctx context.Context, companyID, id int64) (*models.JobOfferListing, error) {
	offer, err := s.offers.GetListing(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching offer %d", id))
	}
	if offer.CompanyID != companyID {
		return nil, fmt.Errorf("%w: offer %d", ErrNotFound, id)
	}
	return offer, nil
}

// Update refuses closed offers.
func (s *offerService) Update(ctx context.Context, companyID, id int64, req *dto.OfferRequest) (*models.JobOffer, error) {
	offer, err := s.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if offer.Status == models.OfferStatusClosed {
		return nil, fmt.Errorf("%w: closed offers cannot be edited", ErrInvalidState)
	}
	if err := s.applyRequest(ctx, offer, req); err != nil {
		return nil, err
	}
	updated, err := s.offers.Update(ctx, offer)
	return updated, MapRepoError(err, fmt.Sprintf("updating offer %d", id))
}

func (s *offerService) Delete(ctx context.Context, companyID, id int64) error {
	if _, err := s.owned(ctx, companyID, id); err != nil {
		return err
	}
	return MapRepoError(s.offers.Delete(ctx, id), fmt.Sprintf("deleting offer %d", id))
}

func (s *offerService) transition(ctx context.Context, companyID, id int64, to models.OfferStatus) (*models.JobOffer, error) {
	offer, err := s.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if !offer.Status.CanTransitionTo(to) {
		log.Printf("OfferService: rejected transition of offer %d from %s to %s", id, offer.Status, to)
		return nil, fmt.Errorf("%w: offer is %s", ErrInvalidTransition, offer.Status)
	}
	updated, err := s.offers.TransitionStatus(ctx, id, offer.Status, to)
	if errors.Is(err, storage.ErrConflict) {
		return nil, fmt.Errorf("%w: offer changed concurrently", ErrInvalidTransition)
	}
	return updated, MapRepoError(err, fmt.Sprintf("moving offer %d to %s", id, to))
}

func (s *offerService) Publish(ctx context.Context, companyID, id int64) (*models.JobOffer, error) {
	return s.transition(ctx, companyID, id, models.OfferStatusPublished)
}

func (s *offerService) Close(ctx context.Context, companyID, id int64) (*models.JobOffer, error) {
	return s.transition(ctx, companyID, id, models.OfferStatusClosed)
}

// Duplicate copies the offer into a new draft with its own slug.
func (s *offerService) Duplicate(ctx context.Context, companyID, id int64) (*models.JobOffer, error) {
	offer, err := s.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	clone := *offer
	clone.ID = 0
	clone.PublishedAt = nil
	if clone.Slug, err = s.uniqueSlug(ctx, clone.Title); err != nil {
		return nil, MapRepoError(err, "generating offer slug")
	}
	created, err := s.offers.Create(ctx, &clone)
	return created, MapRepoError(err, fmt.Sprintf("duplicating offer %d", id))
}

// --- Admin ---

func (s *offerService) AdminList(ctx context.Context, q *dto.AdminOfferListQuery, page pagination.PageRequest) (pagination.PageResult[models.JobOfferListing], error) {
	filter := storage.OfferFilter{CompanyID: q.CompanyID, Query: strings.TrimSpace(q.Q)}
	if q.Status != "" {
		st := models.OfferStatus(q.Status)
		filter.Status = &st
	}
	return s.page(ctx, filter, page)
}

func (s *offerService) AdminGet(ctx context.Context, id int64) (*models.JobOfferListing, error) {
	offer, err := s.offers.GetListing(ctx, id)
	return offer, MapRepoError(err, fmt.Sprintf("fetching offer %d", id))
}

func (s *offerService) AdminUpdate(ctx context.Context, id int64, req *dto.OfferRequest) (*models.JobOffer, error) {
	offer, err := s.offers.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching offer %d", id))
	}
	if err := s.applyRequest(ctx, offer, req); err != nil {
		return nil, err
	}
	updated, err := s.offers.Update(ctx, offer)
	return updated, MapRepoError(err, fmt.Sprintf("updating offer %d", id))
}

func (s *offerService) SetActive(ctx context.Context, id int64, active bool) (*models.JobOffer, error) {
	offer, err := s.offers.SetActive(ctx, id, active)
	return offer, MapRepoError(err, fmt.Sprintf("setting offer %d active", id))
}

func (s *offerService) AdminDelete(ctx context.Context, id int64) error {
	return MapRepoError(s.offers.Delete(ctx, id), fmt.Sprintf("deleting offer %d", id))
}
