package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"professionals-api/internal/mocks"
	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type analyticsDeps struct {
	analytics *mocks.MockAnalyticsRepository
	entities  *mocks.MockEntityRepository
	views     *mocks.MockViewDeduper
	trending  *mocks.MockSearchCache
}

func setupAnalyticsServiceTest() (context.Context, services.AnalyticsService, analyticsDeps) {
	d := analyticsDeps{
		analytics: new(mocks.MockAnalyticsRepository),
		entities:  new(mocks.MockEntityRepository),
		views:     new(mocks.MockViewDeduper),
		trending:  new(mocks.MockSearchCache),
	}
	svc := services.NewAnalyticsService(services.AnalyticsRepos{
		Analytics: d.analytics,
		Entities:  d.entities,
	}, d.views, d.trending)
	return context.Background(), svc, d
}

func TestAnalyticsService_TrackView(t *testing.T) {
	offer := models.EntityRef{Kind: models.KindJobOffer, ID: 5}
	req := &dto.TrackViewRequest{ViewableType: "job_offer", ViewableID: 5}

	t.Run("First view of an anonymous visitor is recorded", func(t *testing.T) {
		ctx, svc, d := setupAnalyticsServiceTest()
		d.entities.On("Visible", ctx, models.KindJobOffer, int64(5)).Return(true, nil).Once()
		d.views.On("FirstView", ctx, "job_offer:5", "ip:10.0.0.1", time.Hour).Return(true, nil).Once()
		d.analytics.On("RecordView", ctx, offer, (*int64)(nil), "10.0.0.1").Return(nil).Once()

		counted, err := svc.TrackView(ctx, req, nil, "10.0.0.1")

		require.NoError(t, err)
		assert.True(t, counted)
		d.analytics.AssertExpectations(t)
	})

	t.Run("Repeat view within the window is ignored", func(t *testing.T) {
		ctx, svc, d := setupAnalyticsServiceTest()
		viewer := int64(11)
		d.entities.On("Visible", ctx, models.KindJobOffer, int64(5)).Return(true, nil).Once()
		d.views.On("FirstView", ctx, "job_offer:5", "user:11", time.Hour).Return(false, nil).Once()

		counted, err := svc.TrackView(ctx, req, &viewer, "10.0.0.1")

		require.NoError(t, err)
		assert.False(t, counted)
		d.analytics.AssertNotCalled(t, "RecordView", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Dedupe failure still counts", func(t *testing.T) {
		ctx, svc, d := setupAnalyticsServiceTest()
		d.entities.On("Visible", ctx, models.KindJobOffer, int64(5)).Return(true, nil).Once()
		d.views.On("FirstView", ctx, "job_offer:5", "ip:10.0.0.1", time.Hour).Return(false, errors.New("redis down")).Once()
		d.analytics.On("RecordView", ctx, offer, (*int64)(nil), "10.0.0.1").Return(nil).Once()

		counted, err := svc.TrackView(ctx, req, nil, "10.0.0.1")

		require.NoError(t, err)
		assert.True(t, counted)
	})

	t.Run("Missing or unpublished offer is not counted", func(t *testing.T) {
		ctx, svc, d := setupAnalyticsServiceTest()
		d.entities.On("Visible", ctx, models.KindJobOffer, int64(5)).Return(false, nil).Once()

		_, err := svc.TrackView(ctx, req, nil, "10.0.0.1")

		assert.ErrorIs(t, err, services.ErrNotFound)
		d.views.AssertNotCalled(t, "FirstView", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		d.analytics.AssertNotCalled(t, "RecordView", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAnalyticsService_CompanyAnalytics_SumsSeries(t *testing.T) {
	ctx, svc, d := setupAnalyticsServiceTest()
	day := func(n int64) models.DailyCount { return models.DailyCount{Day: fixedTime, Count: n} }
	d.analytics.On("ProfileViewsPerDay", mock.Anything, int64(3), mock.AnythingOfType("time.Time")).Return([]models.DailyCount{day(2), day(3)}, nil).Once()
	d.analytics.On("OfferViewsPerDay", mock.Anything, int64(3), mock.AnythingOfType("time.Time")).Return([]models.DailyCount{day(7)}, nil).Once()
	d.analytics.On("ApplicationsPerDay", mock.Anything, int64(3), mock.AnythingOfType("time.Time")).Return([]models.DailyCount{day(1)}, nil).Once()
	d.analytics.On("BookmarksPerDay", mock.Anything, int64(3), mock.AnythingOfType("time.Time")).Return([]models.DailyCount{}, nil).Once()

	resp, err := svc.CompanyAnalytics(ctx, 3, models.Period7Days)

	require.NoError(t, err)
	assert.Equal(t, models.Period7Days, resp.Period)
	assert.Equal(t, int64(5), resp.ProfileViews.Total)
	assert.Equal(t, int64(7), resp.OfferViews.Total)
	assert.Equal(t, int64(1), resp.Applications.Total)
	assert.Equal(t, int64(0), resp.Bookmarks.Total)
}
