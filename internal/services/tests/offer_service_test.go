package services_test

import (
	"context"
	"testing"
	"time"

	"professionals-api/internal/mocks"
	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupOfferServiceTest() (context.Context, services.OfferService, *mocks.MockJobOfferRepository, *mocks.MockReferenceRepository) {
	offers := new(mocks.MockJobOfferRepository)
	refs := new(mocks.MockReferenceRepository)
	return context.Background(), services.NewOfferService(offers, refs), offers, refs
}

func TestOfferService_Create_GeneratesUniqueSlug(t *testing.T) {
	ctx, svc, offers, _ := setupOfferServiceTest()

	offers.On("SlugExists", ctx, "backend-intern").Return(true, nil).Once()
	offers.On("SlugExists", ctx, "backend-intern-2").Return(false, nil).Once()
	offers.On("Create", ctx, mock.MatchedBy(func(o *models.JobOffer) bool {
		return o.CompanyID == 7 && o.Slug == "backend-intern-2" && o.Title == "Backend Intern"
	})).Return(&models.JobOffer{ID: 1, CompanyID: 7, Slug: "backend-intern-2", Status: models.OfferStatusDraft}, nil).Once()

	offer, err := svc.Create(ctx, 7, &dto.OfferRequest{
		Title:       "  Backend Intern ",
		Description: "Go and Postgres",
		Type:        models.OfferTypeInternship,
	})

	require.NoError(t, err)
	assert.Equal(t, "backend-intern-2", offer.Slug)
	assert.Equal(t, models.OfferStatusDraft, offer.Status)
	offers.AssertExpectations(t)
}

func TestOfferService_Create_SalaryRange(t *testing.T) {
	ctx, svc, offers, _ := setupOfferServiceTest()

	_, err := svc.Create(ctx, 7, &dto.OfferRequest{
		Title:       "Analyst",
		Description: "Numbers",
		Type:        models.OfferTypeJob,
		SalaryMin:   ptr(int64(3000)),
		SalaryMax:   ptr(int64(2000)),
	})

	assertFieldError(t, err, "salary_max")
	offers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOfferService_Create_UnknownSkill(t *testing.T) {
	ctx, svc, _, refs := setupOfferServiceTest()

	refs.On("CountSkills", ctx, []int64{1, 2}).Return(1, nil).Once()

	_, err := svc.Create(ctx, 7, &dto.OfferRequest{
		Title:       "Analyst",
		Description: "Numbers",
		Type:        models.OfferTypeJob,
		SkillIDs:    []int64{2, 1, 2},
	})

	assertFieldError(t, err, "skill_ids")
	refs.AssertExpectations(t)
}

func TestOfferService_Publish(t *testing.T) {
	t.Run("Draft is published", func(t *testing.T) {
		ctx, svc, offers, _ := setupOfferServiceTest()
		offers.On("GetByID", ctx, int64(3)).Return(&models.JobOffer{ID: 3, CompanyID: 7, Status: models.OfferStatusDraft}, nil).Once()
		offers.On("TransitionStatus", ctx, int64(3), models.OfferStatusDraft, models.OfferStatusPublished).
			Return(&models.JobOffer{ID: 3, CompanyID: 7, Status: models.OfferStatusPublished}, nil).Once()

		offer, err := svc.Publish(ctx, 7, 3)

		require.NoError(t, err)
		assert.Equal(t, models.OfferStatusPublished, offer.Status)
		offers.AssertExpectations(t)
	})

	t.Run("Published offer cannot be published again", func(t *testing.T) {
		ctx, svc, offers, _ := setupOfferServiceTest()
		offers.On("GetByID", ctx, int64(3)).Return(&models.JobOffer{ID: 3, CompanyID: 7, Status: models.OfferStatusPublished}, nil).Once()

		_, err := svc.Publish(ctx, 7, 3)

		assert.ErrorIs(t, err, services.ErrInvalidTransition)
		offers.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Concurrent change", func(t *testing.T) {
		ctx, svc, offers, _ := setupOfferServiceTest()
		offers.On("GetByID", ctx, int64(3)).Return(&models.JobOffer{ID: 3, CompanyID: 7, Status: models.OfferStatusDraft}, nil).Once()
		offers.On("TransitionStatus", ctx, int64(3), models.OfferStatusDraft, models.OfferStatusPublished).
			Return(nil, storage.ErrConflict).Once()

		_, err := svc.Publish(ctx, 7, 3)

		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})

	t.Run("Other company's offer is not found", func(t *testing.T) {
		ctx, svc, offers, _ := setupOfferServiceTest()
		offers.On("GetByID", ctx, int64(3)).Return(&models.JobOffer{ID: 3, CompanyID: 99, Status: models.OfferStatusDraft}, nil).Once()

		_, err := svc.Publish(ctx, 7, 3)

		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestOfferService_Close_OnlyFromPublished(t *testing.T) {
	ctx, svc, offers, _ := setupOfferServiceTest()
	offers.On("GetByID", ctx, int64(4)).Return(&models.JobOffer{ID: 4, CompanyID: 7, Status: models.OfferStatusDraft}, nil).Once()

	_, err := svc.Close(ctx, 7, 4)

	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestOfferService_Update_ClosedOffer(t *testing.T) {
	ctx, svc, offers, _ := setupOfferServiceTest()
	offers.On("GetByID", ctx, int64(5)).Return(&models.JobOffer{ID: 5, CompanyID: 7, Status: models.OfferStatusClosed}, nil).Once()

	_, err := svc.Update(ctx, 7, 5, &dto.OfferRequest{Title: "New", Description: "x", Type: models.OfferTypeJob})

	assert.ErrorIs(t, err, services.ErrInvalidState)
	offers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOfferService_Duplicate(t *testing.T) {
	ctx, svc, offers, _ := setupOfferServiceTest()
	published := &models.JobOffer{
		ID:          8,
		CompanyID:   7,
		Title:       "Data Engineer",
		Slug:        "data-engineer",
		Status:      models.OfferStatusPublished,
		IsActive:    true,
		PublishedAt: ptr(fixedTime),
	}
	offers.On("GetByID", ctx, int64(8)).Return(published, nil).Once()
	offers.On("SlugExists", ctx, "data-engineer").Return(true, nil).Once()
	offers.On("SlugExists", ctx, "data-engineer-2").Return(false, nil).Once()
	offers.On("Create", ctx, mock.MatchedBy(func(o *models.JobOffer) bool {
		return o.ID == 0 && o.PublishedAt == nil && o.Slug == "data-engineer-2" && o.Title == "Data Engineer"
	})).Return(&models.JobOffer{ID: 9, CompanyID: 7, Slug: "data-engineer-2", Status: models.OfferStatusDraft}, nil).Once()

	copyOffer, err := svc.Duplicate(ctx, 7, 8)

	require.NoError(t, err)
	assert.Equal(t, int64(9), copyOffer.ID)
	assert.Equal(t, models.OfferStatusDraft, copyOffer.Status)
	// The source offer is untouched.
	assert.Equal(t, int64(8), published.ID)
	assert.NotNil(t, published.PublishedAt)
	offers.AssertExpectations(t)
}

func TestOfferService_GetPublic_HidesInvisibleOffers(t *testing.T) {
	ctx, svc, offers, _ := setupOfferServiceTest()
	offers.On("GetBySlug", ctx, "draft-offer").Return(&models.JobOfferListing{
		JobOffer: models.JobOffer{ID: 1, Status: models.OfferStatusDraft, IsActive: true},
	}, nil).Once()
	offers.On("GetBySlug", ctx, "deactivated").Return(&models.JobOfferListing{
		JobOffer: models.JobOffer{ID: 2, Status: models.OfferStatusPublished, IsActive: false},
	}, nil).Once()

	_, err := svc.GetPublic(ctx, "draft-offer")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.GetPublic(ctx, "deactivated")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestOfferService_ExpiredOffer(t *testing.T) {
	expired := func() *models.JobOfferListing {
		return &models.JobOfferListing{JobOffer: models.JobOffer{
			ID:       6,
			Slug:     "expired",
			Status:   models.OfferStatusPublished,
			IsActive: true,
			ClosesAt: ptr(time.Now().Add(-48 * time.Hour)),
		}}
	}

	t.Run("Is not readable by slug", func(t *testing.T) {
		ctx, svc, offers, _ := setupOfferServiceTest()
		offers.On("GetBySlug", ctx, "expired").Return(expired(), nil).Once()

		_, err := svc.GetPublic(ctx, "expired")

		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("Has no similar offers", func(t *testing.T) {
		ctx, svc, offers, _ := setupOfferServiceTest()
		offers.On("GetBySlug", ctx, "expired").Return(expired(), nil).Once()

		_, err := svc.Similar(ctx, "expired")

		assert.ErrorIs(t, err, services.ErrNotFound)
		offers.AssertNotCalled(t, "Similar", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Future closing date stays visible", func(t *testing.T) {
		ctx, svc, offers, _ := setupOfferServiceTest()
		open := expired()
		open.ClosesAt = ptr(time.Now().Add(48 * time.Hour))
		offers.On("GetBySlug", ctx, "expired").Return(open, nil).Once()

		offer, err := svc.GetPublic(ctx, "expired")

		require.NoError(t, err)
		assert.Equal(t, int64(6), offer.ID)
	})
}
