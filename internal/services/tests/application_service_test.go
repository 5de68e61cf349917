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

type applicationDeps struct {
	applications *mocks.MockApplicationRepository
	offers       *mocks.MockJobOfferRepository
	companies    *mocks.MockCompanyRepository
	profiles     *mocks.MockStudentProfileRepository
	notifier     *mocks.MockNotifier
}

func setupApplicationServiceTest() (context.Context, services.ApplicationService, applicationDeps) {
	d := applicationDeps{
		applications: new(mocks.MockApplicationRepository),
		offers:       new(mocks.MockJobOfferRepository),
		companies:    new(mocks.MockCompanyRepository),
		profiles:     new(mocks.MockStudentProfileRepository),
		notifier:     new(mocks.MockNotifier),
	}
	svc := services.NewApplicationService(d.applications, d.offers, d.companies, d.profiles, d.notifier)
	return context.Background(), svc, d
}

func publishedOffer(id, companyID int64) *models.JobOffer {
	return &models.JobOffer{ID: id, CompanyID: companyID, Status: models.OfferStatusPublished, IsActive: true}
}

func TestApplicationService_Apply(t *testing.T) {
	t.Run("Success uses profile CV and notifies the company owner", func(t *testing.T) {
		ctx, svc, d := setupApplicationServiceTest()
		cv := "cvs/11/resume.pdf"
		d.offers.On("GetByID", ctx, int64(5)).Return(publishedOffer(5, 3), nil).Once()
		d.profiles.On("Get", ctx, int64(11)).Return(&models.StudentProfile{UserID: 11, CVPath: &cv}, nil).Once()
		d.applications.On("Create", ctx, mock.MatchedBy(func(a *models.Application) bool {
			return a.StudentID == 11 && a.CompanyID == 3 && a.JobOfferID != nil && *a.JobOfferID == 5 &&
				a.CVPath != nil && *a.CVPath == cv
		})).Return(&models.Application{ID: 40, StudentID: 11, CompanyID: 3, Status: models.ApplicationPending}, nil).Once()
		d.companies.On("GetByID", ctx, int64(3)).Return(&models.Company{ID: 3, OwnerID: 21}, nil).Once()
		d.notifier.On("Notify", ctx, int64(21), models.NotificationApplicationReceived, mock.Anything, mock.Anything, mock.Anything).Return().Once()

		app, err := svc.Apply(ctx, &dto.ApplyRequest{StudentID: 11, JobOfferID: 5, CompanyID: 3})

		require.NoError(t, err)
		assert.Equal(t, int64(40), app.ID)
		assert.Equal(t, models.ApplicationPending, app.Status)
		d.applications.AssertExpectations(t)
		d.notifier.AssertExpectations(t)
	})

	t.Run("Offer of another company", func(t *testing.T) {
		ctx, svc, d := setupApplicationServiceTest()
		d.offers.On("GetByID", ctx, int64(5)).Return(publishedOffer(5, 9), nil).Once()

		_, err := svc.Apply(ctx, &dto.ApplyRequest{StudentID: 11, JobOfferID: 5, CompanyID: 3})

		assertFieldError(t, err, "company_id")
	})

	t.Run("Draft offer", func(t *testing.T) {
		ctx, svc, d := setupApplicationServiceTest()
		d.offers.On("GetByID", ctx, int64(5)).Return(&models.JobOffer{ID: 5, CompanyID: 3, Status: models.OfferStatusDraft, IsActive: true}, nil).Once()

		_, err := svc.Apply(ctx, &dto.ApplyRequest{StudentID: 11, JobOfferID: 5, CompanyID: 3})

		assert.ErrorIs(t, err, services.ErrInvalidState)
		d.applications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Expired offer", func(t *testing.T) {
		ctx, svc, d := setupApplicationServiceTest()
		expired := publishedOffer(5, 3)
		expired.ClosesAt = ptr(time.Now().Add(-48 * time.Hour))
		d.offers.On("GetByID", ctx, int64(5)).Return(expired, nil).Once()

		_, err := svc.Apply(ctx, &dto.ApplyRequest{StudentID: 11, JobOfferID: 5, CompanyID: 3})

		assert.ErrorIs(t, err, services.ErrInvalidState)
		d.applications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown offer", func(t *testing.T) {
		ctx, svc, d := setupApplicationServiceTest()
		d.offers.On("GetByID", ctx, int64(5)).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.Apply(ctx, &dto.ApplyRequest{StudentID: 11, JobOfferID: 5, CompanyID: 3})

		assertFieldError(t, err, "job_offer_id")
	})

	t.Run("Second application is a conflict", func(t *testing.T) {
		ctx, svc, d := setupApplicationServiceTest()
		cv := "cvs/11/letter.pdf"
		d.offers.On("GetByID", ctx, int64(5)).Return(publishedOffer(5, 3), nil).Once()
		d.applications.On("Create", ctx, mock.Anything).Return(nil, storage.ErrConflict).Once()

		_, err := svc.Apply(ctx, &dto.ApplyRequest{StudentID: 11, JobOfferID: 5, CompanyID: 3, CVPath: &cv})

		assert.ErrorIs(t, err, services.ErrConflict)
		d.profiles.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		d.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestApplicationService_Withdraw(t *testing.T) {
	t.Run("Accepted application cannot be withdrawn", func(t *testing.T) {
		ctx, svc, d := setupApplicationServiceTest()
		d.applications.On("GetByID", ctx, int64(40)).Return(&models.ApplicationListing{
			Application: models.Application{ID: 40, StudentID: 11, CompanyID: 3, Status: models.ApplicationAccepted},
		}, nil).Once()

		err := svc.Withdraw(ctx, 11, 40)

		assert.ErrorIs(t, err, services.ErrInvalidState)
		d.applications.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Another student's application is not found", func(t *testing.T) {
		ctx, svc, d := setupApplicationServiceTest()
		d.applications.On("GetByID", ctx, int64(40)).Return(&models.ApplicationListing{
			Application: models.Application{ID: 40, StudentID: 12, CompanyID: 3},
		}, nil).Once()

		err := svc.Withdraw(ctx, 11, 40)

		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("Pending application is deleted", func(t *testing.T) {
		ctx, svc, d := setupApplicationServiceTest()
		d.applications.On("GetByID", ctx, int64(40)).Return(&models.ApplicationListing{
			Application: models.Application{ID: 40, StudentID: 11, CompanyID: 3, Status: models.ApplicationPending},
			StudentName: "Ada",
		}, nil).Once()
		d.applications.On("Delete", ctx, int64(40)).Return(nil).Once()
		d.companies.On("GetByID", ctx, int64(3)).Return(&models.Company{ID: 3, OwnerID: 21}, nil).Once()
		d.notifier.On("Notify", ctx, int64(21), models.NotificationApplicationWithdrawn, mock.Anything, mock.Anything, mock.Anything).Return().Once()

		require.NoError(t, svc.Withdraw(ctx, 11, 40))
		d.applications.AssertExpectations(t)
		d.notifier.AssertExpectations(t)
	})
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	listing := func(status models.ApplicationStatus) *models.ApplicationListing {
		return &models.ApplicationListing{
			Application: models.Application{ID: 40, StudentID: 11, CompanyID: 3, Status: status},
			CompanyName: "Acme",
		}
	}

	t.Run("Pending to interview notifies the student", func(t *testing.T) {
		ctx, svc, d := setupApplicationServiceTest()
		d.applications.On("GetByID", ctx, int64(40)).Return(listing(models.ApplicationPending), nil).Once()
		d.applications.On("TransitionStatus", ctx, int64(40), models.ApplicationPending, models.ApplicationInterview, (*string)(nil)).
			Return(&models.Application{ID: 40, Status: models.ApplicationInterview}, nil).Once()
		d.notifier.On("Notify", ctx, int64(11), models.NotificationApplicationStatus, mock.Anything, mock.Anything, mock.Anything).Return().Once()

		app, err := svc.UpdateStatus(ctx, 3, 40, &dto.ApplicationStatusRequest{Status: models.ApplicationInterview})

		require.NoError(t, err)
		assert.Equal(t, models.ApplicationInterview, app.Status)
		d.notifier.AssertExpectations(t)
	})

	t.Run("Terminal status is final", func(t *testing.T) {
		ctx, svc, d := setupApplicationServiceTest()
		d.applications.On("GetByID", ctx, int64(40)).Return(listing(models.ApplicationRejected), nil).Once()

		_, err := svc.UpdateStatus(ctx, 3, 40, &dto.ApplicationStatusRequest{Status: models.ApplicationShortlisted})

		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})

	t.Run("Other company", func(t *testing.T) {
		ctx, svc, d := setupApplicationServiceTest()
		d.applications.On("GetByID", ctx, int64(40)).Return(listing(models.ApplicationPending), nil).Once()

		_, err := svc.UpdateStatus(ctx, 4, 40, &dto.ApplicationStatusRequest{Status: models.ApplicationAccepted})

		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestApplicationService_ListForStudent_HidesNotes(t *testing.T) {
	ctx, svc, d := setupApplicationServiceTest()
	notes := "strong candidate"
	d.applications.On("List", ctx, mock.MatchedBy(func(f storage.ApplicationFilter) bool {
		return f.StudentID != nil && *f.StudentID == 11
	}), mock.Anything).Return([]models.ApplicationListing{
		{Application: models.Application{ID: 1, StudentID: 11, HRNotes: &notes}},
	}, 1, nil).Once()

	res, err := svc.ListForStudent(ctx, 11, nil, defaultPage)

	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Nil(t, res.Data[0].HRNotes)
}
