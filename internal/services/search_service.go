package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"professionals-api/internal/cache"
	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"
)

const (
	autocompleteLimit    = 10
	autocompleteMinChars = 2
	autocompleteTTL      = 5 * time.Minute
	trendingLimit        = 10
	defaultSuggestions   = 10
)

type searchService struct {
	companies   storage.CompanyRepository
	suggestions storage.SuggestionRepository
	refs        storage.ReferenceRepository
	cache       SearchCache
}

func NewSearchService(
	companies storage.CompanyRepository,
	suggestions storage.SuggestionRepository,
	refs storage.ReferenceRepository,
	cache SearchCache,
) SearchService {
	return &searchService{companies: companies, suggestions: suggestions, refs: refs, cache: cache}
}

func (s *searchService) Search(ctx context.Context, q *dto.SearchQuery, page pagination.PageRequest) (pagination.PageResult[models.CompanyListing], error) {
	term := strings.TrimSpace(q.Q)
	searchType := q.Type
	if searchType == "" {
		searchType = storage.SearchMixed
	}
	items, total, err := s.companies.List(ctx, storage.CompanyFilter{
		SectorID:   q.SectorID,
		CityID:     q.CityID,
		Query:      term,
		SearchType: searchType,
	}, page)
	if err != nil {
		return pagination.PageResult[models.CompanyListing]{}, MapRepoError(err, "searching companies")
	}
	if term != "" {
		if err := s.cache.IncrementSearch(ctx, term); err != nil {
			log.Printf("SearchService: failed to record search term: %v", err)
		}
	}
	return pagination.NewPageResult(items, total, page), nil
}

// Autocomplete returns company names starting with q, then containing it.
func (s *searchService) Autocomplete(ctx context.Context, q string) ([]string, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < autocompleteMinChars {
		return []string{}, nil
	}
	key := "autocomplete:" + strings.ToLower(q)

	var names []string
	err := s.cache.GetJSON(ctx, key, &names)
	if err == nil {
		return names, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Printf("SearchService: autocomplete cache read failed: %v", err)
	}

	names, err = s.companies.Autocomplete(ctx, q, autocompleteLimit)
	if err != nil {
		return nil, MapRepoError(err, "autocompleting companies")
	}
	if names == nil {
		names = []string{}
	}
	if err := s.cache.SetJSON(ctx, key, names, autocompleteTTL); err != nil {
		log.Printf("SearchService: autocomplete cache write failed: %v", err)
	}
	return names, nil
}

func (s *searchService) Suggestions(ctx context.Context, q *dto.SuggestionQuery) ([]models.Suggestion, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultSuggestions
	}
	items, err := s.suggestions.ListActive(ctx, q.CityID, limit)
	return items, MapRepoError(err, "listing suggestions")
}

func (s *searchService) Trending(ctx context.Context) ([]models.TrendingTerm, error) {
	terms, err := s.cache.TopSearches(ctx, trendingLimit)
	if err != nil {
		log.Printf("SearchService: trending lookup failed: %v", err)
		return []models.TrendingTerm{}, nil
	}
	return terms, nil
}

func (s *searchService) ListSuggestions(ctx context.Context, page pagination.PageRequest) (pagination.PageResult[models.Suggestion], error) {
	items, total, err := s.suggestions.List(ctx, page)
	if err != nil {
		return pagination.PageResult[models.Suggestion]{}, MapRepoError(err, "listing suggestions")
	}
	return pagination.NewPageResult(items, total, page), nil
}

func (s *searchService) suggestionFromRequest(ctx context.Context, req *dto.SuggestionRequest) (*models.Suggestion, error) {
	if req.CompanyID != nil {
		if _, err := s.companies.GetByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fieldError("company_id", "unknown company")
			}
			return nil, MapRepoError(err, "checking company")
		}
	}
	if err := checkReferences(ctx, s.refs, nil, req.CityID, nil); err != nil {
		return nil, err
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &models.Suggestion{
		Label:     strings.TrimSpace(req.Label),
		CompanyID: req.CompanyID,
		CityID:    req.CityID,
		Position:  req.Position,
		Active:    active,
	}, nil
}

func (s *searchService) CreateSuggestion(ctx context.Context, req *dto.SuggestionRequest) (*models.Suggestion, error) {
	suggestion, err := s.suggestionFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	created, err := s.suggestions.Create(ctx, suggestion)
	return created, MapRepoError(err, "creating suggestion")
}

func (s *searchService) UpdateSuggestion(ctx context.Context, id int64, req *dto.SuggestionRequest) (*models.Suggestion, error) {
	if _, err := s.suggestions.Get(ctx, id); err != nil {
		return nil, MapRepoError(err, "fetching suggestion")
	}
	suggestion, err := s.suggestionFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	suggestion.ID = id
	updated, err := s.suggestions.Update(ctx, suggestion)
	return updated, MapRepoError(err, "updating suggestion")
}

func (s *searchService) DeleteSuggestion(ctx context.Context, id int64) error {
	return MapRepoError(s.suggestions.Delete(ctx, id), "deleting suggestion")
}
