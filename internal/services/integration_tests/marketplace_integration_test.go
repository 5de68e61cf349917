package integration_tests

import (
	"context"
	"testing"

	"professionals-api/internal/cache"
	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/services"
	"professionals-api/internal/storage/postgres"
	"professionals-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var firstPage = pagination.PageRequest{Page: 1, PageSize: 15}

func TestOfferService_Integration_Lifecycle(t *testing.T) {
	pool := getTestPool(t)
	cleanupTables(t, pool)
	ctx := context.Background()
	svc := services.NewOfferService(postgres.NewJobOfferRepo(pool), postgres.NewReferenceRepo(pool))
	company := createTestCompany(t, ctx, pool, "hr@acme.test", "Acme")

	req := &dto.OfferRequest{Title: "Go Intern", Description: "Build APIs", Type: models.OfferTypeInternship}
	first, err := svc.Create(ctx, company.ID, req)
	require.NoError(t, err)
	second, err := svc.Create(ctx, company.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "go-intern", first.Slug)
	assert.Equal(t, "go-intern-2", second.Slug)
	assert.Equal(t, models.OfferStatusDraft, first.Status)

	published, err := svc.Publish(ctx, company.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusPublished, published.Status)
	assert.NotNil(t, published.PublishedAt)

	_, err = svc.Publish(ctx, company.ID, first.ID)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	board, err := svc.ListPublic(ctx, &dto.OfferListQuery{}, firstPage)
	require.NoError(t, err)
	require.Len(t, board.Data, 1)
	assert.Equal(t, first.ID, board.Data[0].ID)

	_, err = svc.GetPublic(ctx, "go-intern-2")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.Close(ctx, company.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.GetPublic(ctx, "go-intern")
	assert.ErrorIs(t, err, services.ErrNotFound)

	other := createTestCompany(t, ctx, pool, "hr@globex.test", "Globex")
	_, err = svc.Get(ctx, other.ID, first.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestApplicationService_Integration_OneApplicationPerOffer(t *testing.T) {
	pool := getTestPool(t)
	cleanupTables(t, pool)
	ctx := context.Background()

	offers := postgres.NewJobOfferRepo(pool)
	companies := postgres.NewCompanyRepo(pool)
	notifications := services.NewNotificationService(postgres.NewNotificationRepo(pool))
	apps := services.NewApplicationService(postgres.NewApplicationRepo(pool), offers, companies,
		postgres.NewStudentProfileRepo(pool), notifications)
	offerSvc := services.NewOfferService(offers, postgres.NewReferenceRepo(pool))

	company := createTestCompany(t, ctx, pool, "hr@acme.test", "Acme")
	student := createTestUser(t, ctx, pool, "ada@student.test", models.RoleStudent)
	offer, err := offerSvc.Create(ctx, company.ID, &dto.OfferRequest{Title: "Analyst", Description: "x", Type: models.OfferTypeJob})
	require.NoError(t, err)

	req := &dto.ApplyRequest{StudentID: student.ID, JobOfferID: offer.ID, CompanyID: company.ID}
	_, err = apps.Apply(ctx, req)
	assert.ErrorIs(t, err, services.ErrInvalidState, "drafts do not accept applications")

	_, err = offerSvc.Publish(ctx, company.ID, offer.ID)
	require.NoError(t, err)

	app, err := apps.Apply(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, app.Status)

	_, err = apps.Apply(ctx, req)
	assert.ErrorIs(t, err, services.ErrConflict)

	unread, err := notifications.UnreadCount(ctx, company.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
}

func TestBookmarkService_Integration_Toggle(t *testing.T) {
	pool := getTestPool(t)
	cleanupTables(t, pool)
	ctx := context.Background()
	svc := services.NewBookmarkService(postgres.NewBookmarkRepo(pool), postgres.NewEntityRepo(pool), postgres.NewTxManager(pool))

	company := createTestCompany(t, ctx, pool, "hr@acme.test", "Acme")
	student := createTestUser(t, ctx, pool, "ada@student.test", models.RoleStudent)
	req := &dto.BookmarkRequest{BookmarkableType: "company", BookmarkableID: company.ID}

	on, err := svc.Toggle(ctx, student.ID, req)
	require.NoError(t, err)
	assert.True(t, on)

	_, created, err := svc.Store(ctx, student.ID, req)
	require.NoError(t, err)
	assert.False(t, created)

	on, err = svc.Toggle(ctx, student.ID, req)
	require.NoError(t, err)
	assert.False(t, on)

	list, err := svc.List(ctx, student.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAnalyticsService_Integration_ViewDedupe(t *testing.T) {
	pool := getTestPool(t)
	rdb := getTestRedis(t)
	cleanupTables(t, pool)
	ctx := context.Background()
	store := cache.New(rdb)
	svc := services.NewAnalyticsService(services.AnalyticsRepos{
		Analytics: postgres.NewAnalyticsRepo(pool),
		Entities:  postgres.NewEntityRepo(pool),
	}, store, store)

	company := createTestCompany(t, ctx, pool, "hr@acme.test", "Acme")
	req := &dto.TrackViewRequest{ViewableType: "company", ViewableID: company.ID}

	counted, err := svc.TrackView(ctx, req, nil, "10.1.1.1")
	require.NoError(t, err)
	assert.True(t, counted)

	counted, err = svc.TrackView(ctx, req, nil, "10.1.1.1")
	require.NoError(t, err)
	assert.False(t, counted)

	counted, err = svc.TrackView(ctx, req, nil, "10.1.1.2")
	require.NoError(t, err)
	assert.True(t, counted)
}

func TestBookmarkService_Integration_HiddenOffers(t *testing.T) {
	pool := getTestPool(t)
	cleanupTables(t, pool)
	ctx := context.Background()
	entities := postgres.NewEntityRepo(pool)
	svc := services.NewBookmarkService(postgres.NewBookmarkRepo(pool), entities, postgres.NewTxManager(pool))
	offerSvc := services.NewOfferService(postgres.NewJobOfferRepo(pool), postgres.NewReferenceRepo(pool))

	company := createTestCompany(t, ctx, pool, "hr@acme.test", "Acme")
	student := createTestUser(t, ctx, pool, "ada@student.test", models.RoleStudent)
	offer, err := offerSvc.Create(ctx, company.ID, &dto.OfferRequest{Title: "Secret Project", Description: "x", Type: models.OfferTypeJob})
	require.NoError(t, err)
	req := &dto.BookmarkRequest{BookmarkableType: "job_offer", BookmarkableID: offer.ID}

	_, _, err = svc.Store(ctx, student.ID, req)
	assert.ErrorIs(t, err, services.ErrNotFound, "drafts cannot be bookmarked")
	_, err = svc.Toggle(ctx, student.ID, req)
	assert.ErrorIs(t, err, services.ErrNotFound)

	exists, err := entities.Exists(ctx, models.KindJobOffer, offer.ID)
	require.NoError(t, err)
	assert.True(t, exists, "reports still see the draft")

	_, err = offerSvc.Publish(ctx, company.ID, offer.ID)
	require.NoError(t, err)
	_, created, err := svc.Store(ctx, student.ID, req)
	require.NoError(t, err)
	assert.True(t, created)

	list, err := svc.List(ctx, student.ID, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Secret Project", list[0].Title)

	_, err = offerSvc.Close(ctx, company.ID, offer.ID)
	require.NoError(t, err)
	list, err = svc.List(ctx, student.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, list, "closed offers drop out of the list")

	require.NoError(t, svc.Destroy(ctx, student.ID, req), "a bookmark on a closed offer can still be removed")
}

func TestCompanyContentService_Integration_SinglePrimaryContact(t *testing.T) {
	pool := getTestPool(t)
	cleanupTables(t, pool)
	ctx := context.Background()
	svc := services.NewCompanyContentService(postgres.NewCompanyMediaRepo(pool), postgres.NewPublicationRepo(pool),
		postgres.NewOrgRepo(pool), postgres.NewHRContactRepo(pool), postgres.NewTxManager(pool))
	company := createTestCompany(t, ctx, pool, "hr@acme.test", "Acme")

	primaries := func() []int64 {
		contacts, err := svc.ListHRContacts(ctx, company.ID)
		require.NoError(t, err)
		var ids []int64
		for _, c := range contacts {
			if c.IsPrimary {
				ids = append(ids, c.ID)
			}
		}
		return ids
	}

	first, err := svc.CreateHRContact(ctx, company.ID, &dto.HRContactRequest{Name: "Lina"})
	require.NoError(t, err)
	second, err := svc.CreateHRContact(ctx, company.ID, &dto.HRContactRequest{Name: "Omar"})
	require.NoError(t, err)
	assert.Equal(t, []int64{first.ID}, primaries())

	_, err = svc.SetPrimaryHRContact(ctx, company.ID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{second.ID}, primaries())

	require.NoError(t, svc.DeleteHRContact(ctx, company.ID, second.ID))
	assert.Equal(t, []int64{first.ID}, primaries())

	other := createTestCompany(t, ctx, pool, "hr@globex.test", "Globex")
	_, err = svc.SetPrimaryHRContact(ctx, other.ID, first.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, []int64{first.ID}, primaries())
}
