package services_test

import (
	"context"
	"testing"

	"professionals-api/internal/mocks"
	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCompanyServiceTest() (context.Context, services.CompanyService, *mocks.MockCompanyRepository, *mocks.MockReferenceRepository) {
	companies := new(mocks.MockCompanyRepository)
	refs := new(mocks.MockReferenceRepository)
	svc := services.NewCompanyService(companies, refs, new(mocks.MockAnalyticsRepository), new(mocks.MockFileStore), services.UploadLimits{MaxBytes: 1 << 20})
	return context.Background(), svc, companies, refs
}

func TestCompanyService_Create(t *testing.T) {
	req := &dto.CompanyRequest{Name: " Café Labs "}

	t.Run("First company gets a unique slug", func(t *testing.T) {
		ctx, svc, companies, _ := setupCompanyServiceTest()
		companies.On("GetByOwner", ctx, int64(21)).Return(nil, storage.ErrNotFound).Once()
		companies.On("SlugExists", ctx, "cafe-labs").Return(true, nil).Once()
		companies.On("SlugExists", ctx, "cafe-labs-2").Return(false, nil).Once()
		companies.On("Create", ctx, mock.MatchedBy(func(c *models.Company) bool {
			return c.OwnerID == 21 && c.Name == "Café Labs" && c.Slug == "cafe-labs-2"
		})).Return(&models.Company{ID: 3, OwnerID: 21, Slug: "cafe-labs-2"}, nil).Once()

		company, err := svc.Create(ctx, 21, req)

		require.NoError(t, err)
		assert.Equal(t, "cafe-labs-2", company.Slug)
		companies.AssertExpectations(t)
	})

	tests := []struct {
		name      string
		existing  *models.Company
		ownerErr  error
		createErr error
	}{
		{name: "Account already owns a company", existing: &models.Company{ID: 3, OwnerID: 21}},
		{name: "Concurrent registration loses on the unique owner", ownerErr: storage.ErrNotFound, createErr: storage.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, svc, companies, _ := setupCompanyServiceTest()
			companies.On("GetByOwner", ctx, int64(21)).Return(tt.existing, tt.ownerErr).Once()
			if tt.createErr != nil {
				companies.On("SlugExists", ctx, "cafe-labs").Return(false, nil).Once()
				companies.On("Create", ctx, mock.Anything).Return(nil, tt.createErr).Once()
			}

			_, err := svc.Create(ctx, 21, req)

			assert.ErrorIs(t, err, services.ErrConflict)
			if tt.createErr == nil {
				companies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}

	t.Run("Unknown sector", func(t *testing.T) {
		ctx, svc, companies, refs := setupCompanyServiceTest()
		companies.On("GetByOwner", ctx, int64(21)).Return(nil, storage.ErrNotFound).Once()
		refs.On("GetSector", ctx, int64(8)).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.Create(ctx, 21, &dto.CompanyRequest{Name: "Acme", SectorID: ptr(int64(8))})

		assertFieldError(t, err, "sector_id")
		companies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
