package handlers_test

import (
	"net/http"
	"testing"

	"professionals-api/internal/api/handlers"
	"professionals-api/internal/api/middleware"
	"professionals-api/internal/mocks"
	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type offerFixture struct {
	router    *gin.Engine
	offers    *mocks.MockJobOfferRepository
	companies *mocks.MockCompanyRepository
}

func setupOfferRouter() offerFixture {
	router, authn := newRouter()
	offers := new(mocks.MockJobOfferRepository)
	companies := new(mocks.MockCompanyRepository)
	refs := new(mocks.MockReferenceRepository)

	companySvc := services.NewCompanyService(companies, refs, new(mocks.MockAnalyticsRepository), new(mocks.MockFileStore), services.UploadLimits{MaxBytes: 1 << 20})
	h := handlers.NewOfferHandler(services.NewOfferService(offers, refs), newBinder())

	api := router.Group("/api")
	api.GET("/offers/:slug", h.GetPublic)

	mine := api.Group("/my-company", authn.Required(), middleware.RequireRoles(models.RoleCompany), handlers.OwnCompany(companySvc))
	mine.POST("/offers", h.Create)
	mine.POST("/offers/:id/publish", h.Publish)

	return offerFixture{router: router, offers: offers, companies: companies}
}

func TestOfferHandler_GetPublic(t *testing.T) {
	t.Run("Published offer", func(t *testing.T) {
		f := setupOfferRouter()
		f.offers.On("GetBySlug", mock.Anything, "go-intern").Return(&models.JobOfferListing{
			JobOffer: models.JobOffer{ID: 1, Slug: "go-intern", Title: "Go Intern", Status: models.OfferStatusPublished, IsActive: true},
		}, nil).Once()

		w := doJSON(f.router, http.MethodGet, "/api/offers/go-intern", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "go-intern", decode(t, w)["slug"])
	})

	t.Run("Draft is hidden", func(t *testing.T) {
		f := setupOfferRouter()
		f.offers.On("GetBySlug", mock.Anything, "draft").Return(&models.JobOfferListing{
			JobOffer: models.JobOffer{ID: 2, Slug: "draft", Status: models.OfferStatusDraft, IsActive: true},
		}, nil).Once()

		w := doJSON(f.router, http.MethodGet, "/api/offers/draft", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOfferHandler_MyCompany(t *testing.T) {
	t.Run("Students are refused", func(t *testing.T) {
		f := setupOfferRouter()

		w := doJSON(f.router, http.MethodPost, "/api/my-company/offers/3/publish", tokenFor(t, 11, models.RoleStudent), nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		f.companies.AssertNotCalled(t, "GetByOwner", mock.Anything, mock.Anything)
	})

	t.Run("No company registered", func(t *testing.T) {
		f := setupOfferRouter()
		f.companies.On("GetByOwner", mock.Anything, int64(21)).Return(nil, storage.ErrNotFound).Once()

		w := doJSON(f.router, http.MethodPost, "/api/my-company/offers/3/publish", tokenFor(t, 21, models.RoleCompany), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Publishing a published offer conflicts", func(t *testing.T) {
		f := setupOfferRouter()
		f.companies.On("GetByOwner", mock.Anything, int64(21)).Return(&models.Company{ID: 7, OwnerID: 21}, nil).Once()
		f.offers.On("GetByID", mock.Anything, int64(3)).Return(&models.JobOffer{ID: 3, CompanyID: 7, Status: models.OfferStatusPublished}, nil).Once()

		w := doJSON(f.router, http.MethodPost, "/api/my-company/offers/3/publish", tokenFor(t, 21, models.RoleCompany), nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Draft is published", func(t *testing.T) {
		f := setupOfferRouter()
		f.companies.On("GetByOwner", mock.Anything, int64(21)).Return(&models.Company{ID: 7, OwnerID: 21}, nil).Once()
		f.offers.On("GetByID", mock.Anything, int64(3)).Return(&models.JobOffer{ID: 3, CompanyID: 7, Status: models.OfferStatusDraft}, nil).Once()
		f.offers.On("TransitionStatus", mock.Anything, int64(3), models.OfferStatusDraft, models.OfferStatusPublished).
			Return(&models.JobOffer{ID: 3, CompanyID: 7, Status: models.OfferStatusPublished}, nil).Once()

		w := doJSON(f.router, http.MethodPost, "/api/my-company/offers/3/publish", tokenFor(t, 21, models.RoleCompany), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "published", decode(t, w)["status"])
	})

	t.Run("Malformed body", func(t *testing.T) {
		f := setupOfferRouter()
		f.companies.On("GetByOwner", mock.Anything, int64(21)).Return(&models.Company{ID: 7, OwnerID: 21}, nil).Once()

		w := doJSON(f.router, http.MethodPost, "/api/my-company/offers", tokenFor(t, 21, models.RoleCompany), `{"title":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing fields fail validation", func(t *testing.T) {
		f := setupOfferRouter()
		f.companies.On("GetByOwner", mock.Anything, int64(21)).Return(&models.Company{ID: 7, OwnerID: 21}, nil).Once()

		w := doJSON(f.router, http.MethodPost, "/api/my-company/offers", tokenFor(t, 21, models.RoleCompany), map[string]any{"type": "freelance"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		f.offers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Salary range is reported per field", func(t *testing.T) {
		f := setupOfferRouter()
		f.companies.On("GetByOwner", mock.Anything, int64(21)).Return(&models.Company{ID: 7, OwnerID: 21}, nil).Once()

		w := doJSON(f.router, http.MethodPost, "/api/my-company/offers", tokenFor(t, 21, models.RoleCompany), map[string]any{
			"title":       "Analyst",
			"description": "Numbers",
			"type":        "job",
			"salary_min":  3000,
			"salary_max":  2000,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		details, _ := decode(t, w)["details"].(map[string]any)
		assert.Contains(t, details, "salary_max")
	})
}
