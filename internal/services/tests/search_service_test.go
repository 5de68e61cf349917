package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"professionals-api/internal/cache"
	"professionals-api/internal/mocks"
	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searchDeps struct {
	companies *mocks.MockCompanyRepository
	cache     *mocks.MockSearchCache
}

func setupSearchServiceTest() (context.Context, services.SearchService, searchDeps) {
	d := searchDeps{companies: new(mocks.MockCompanyRepository), cache: new(mocks.MockSearchCache)}
	svc := services.NewSearchService(d.companies, new(mocks.MockSuggestionRepository), new(mocks.MockReferenceRepository), d.cache)
	return context.Background(), svc, d
}

func TestSearchService_Autocomplete(t *testing.T) {
	for name, q := range map[string]string{
		"Empty":            "",
		"Single character": "a",
		"Single rune":      "é",
		"Padded":           "  b ",
	} {
		t.Run("Short query/"+name, func(t *testing.T) {
			ctx, svc, d := setupSearchServiceTest()

			names, err := svc.Autocomplete(ctx, q)

			require.NoError(t, err)
			assert.NotNil(t, names)
			assert.Empty(t, names)
			d.cache.AssertNotCalled(t, "GetJSON", mock.Anything, mock.Anything, mock.Anything)
			d.companies.AssertNotCalled(t, "Autocomplete", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("Cached result", func(t *testing.T) {
		ctx, svc, d := setupSearchServiceTest()
		d.cache.On("GetJSON", ctx, "autocomplete:acme", mock.Anything).Run(func(args mock.Arguments) {
			*args.Get(2).(*[]string) = []string{"Acme", "Acme Labs"}
		}).Return(nil).Once()

		names, err := svc.Autocomplete(ctx, "ACME")

		require.NoError(t, err)
		assert.Equal(t, []string{"Acme", "Acme Labs"}, names)
		d.companies.AssertNotCalled(t, "Autocomplete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Miss queries and caches", func(t *testing.T) {
		ctx, svc, d := setupSearchServiceTest()
		d.cache.On("GetJSON", ctx, "autocomplete:ac", mock.Anything).Return(cache.ErrMiss).Once()
		d.companies.On("Autocomplete", ctx, "ac", 10).Return([]string{"Acme"}, nil).Once()
		d.cache.On("SetJSON", ctx, "autocomplete:ac", []string{"Acme"}, 5*time.Minute).Return(nil).Once()

		names, err := svc.Autocomplete(ctx, "ac")

		require.NoError(t, err)
		assert.Equal(t, []string{"Acme"}, names)
		d.cache.AssertExpectations(t)
	})

	t.Run("No match is an empty list", func(t *testing.T) {
		ctx, svc, d := setupSearchServiceTest()
		d.cache.On("GetJSON", ctx, "autocomplete:zz", mock.Anything).Return(errors.New("redis down")).Once()
		d.companies.On("Autocomplete", ctx, "zz", 10).Return(nil, nil).Once()
		d.cache.On("SetJSON", ctx, "autocomplete:zz", []string{}, 5*time.Minute).Return(errors.New("redis down")).Once()

		names, err := svc.Autocomplete(ctx, "zz")

		require.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	})
}

func TestSearchService_Trending(t *testing.T) {
	tests := []struct {
		name     string
		terms    []models.TrendingTerm
		cacheErr error
		want     []models.TrendingTerm
	}{
		{
			name:  "Top terms from the cache",
			terms: []models.TrendingTerm{{Term: "golang", Score: 9}, {Term: "design", Score: 4}},
			want:  []models.TrendingTerm{{Term: "golang", Score: 9}, {Term: "design", Score: 4}},
		},
		{name: "Cache failure is an empty list", cacheErr: errors.New("redis down"), want: []models.TrendingTerm{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, svc, d := setupSearchServiceTest()
			d.cache.On("TopSearches", ctx, 10).Return(tt.terms, tt.cacheErr).Once()

			terms, err := svc.Trending(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.want, terms)
		})
	}
}

func TestSearchService_Search_RecordsTerm(t *testing.T) {
	tests := []struct {
		name   string
		q      string
		record bool
	}{
		{name: "Term is counted", q: "  golang ", record: true},
		{name: "Blank term is not counted", q: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, svc, d := setupSearchServiceTest()
			d.companies.On("List", ctx, mock.MatchedBy(func(f storage.CompanyFilter) bool {
				return f.SearchType == storage.SearchMixed
			}), defaultPage).Return([]models.CompanyListing{}, 0, nil).Once()
			if tt.record {
				d.cache.On("IncrementSearch", ctx, "golang").Return(nil).Once()
			}

			_, err := svc.Search(ctx, &dto.SearchQuery{Q: tt.q}, defaultPage)

			require.NoError(t, err)
			if tt.record {
				d.cache.AssertExpectations(t)
			} else {
				d.cache.AssertNotCalled(t, "IncrementSearch", mock.Anything, mock.Anything)
			}
		})
	}
}
