package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"
)

type applicationService struct {
	applications storage.ApplicationRepository
	offers       storage.JobOfferRepository
	companies    storage.CompanyRepository
	profiles     storage.StudentProfileRepository
	notifier     Notifier
}

func NewApplicationService(
	applications storage.ApplicationRepository,
	offers storage.JobOfferRepository,
	companies storage.CompanyRepository,
	profiles storage.StudentProfileRepository,
	notifier Notifier,
) ApplicationService {
	return &applicationService{
		applications: applications,
		offers:       offers,
		companies:    companies,
		profiles:     profiles,
		notifier:     notifier,
	}
}

func listFilter(q *dto.ApplicationListQuery) storage.ApplicationFilter {
	var f storage.ApplicationFilter
	if q == nil {
		return f
	}
	if q.Status != "" {
		st := models.ApplicationStatus(q.Status)
		f.Status = &st
	}
	f.OfferID = q.OfferID
	return f
}

func (s *applicationService) page(ctx context.Context, f storage.ApplicationFilter, page pagination.PageRequest, hideNotes bool) (pagination.PageResult[models.ApplicationListing], error) {
	items, total, err := s.applications.List(ctx, f, page)
	if err != nil {
		return pagination.PageResult[models.ApplicationListing]{}, MapRepoError(err, "listing applications")
	}
	if hideNotes {
		for i := range items {
			items[i].HRNotes = nil
		}
	}
	return pagination.NewPageResult(items, total, page), nil
}

// --- Student side ---

func (s *applicationService) ListForStudent(ctx context.Context, studentID int64, q *dto.ApplicationListQuery, page pagination.PageRequest) (pagination.PageResult[models.ApplicationListing], error) {
	f := listFilter(q)
	f.StudentID = &studentID
	return s.page(ctx, f, page, true)
}

// defaultCV falls back to the CV stored on the student profile.
func (s *applicationService) defaultCV(ctx context.Context, studentID int64, cv *string) *string {
	if cv != nil && *cv != "" {
		return cv
	}
	profile, err := s.profiles.Get(ctx, studentID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("ApplicationService: Error loading profile of student %d: %v", studentID, err)
		}
		return nil
	}
	return profile.CVPath
}

func (s *applicationService) create(ctx context.Context, app *models.Application) (*models.Application, error) {
	app.CVPath = s.defaultCV(ctx, app.StudentID, app.CVPath)
	created, err := s.applications.Create(ctx, app)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: already applied", ErrConflict)
		}
		return nil, MapRepoError(err, "creating application")
	}
	s.notifyCompany(ctx, created.CompanyID, models.NotificationApplicationReceived,
		"New application", "A student applied to your company.", created.ID)
	return created, nil
}

// Apply requires a published, active offer owned by the requested company.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	offer, err := s.offers.GetByID(ctx, req.JobOfferID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fieldError("job_offer_id", "offer does not exist")
		}
		return nil, MapRepoError(err, "fetching offer")
	}
	if offer.CompanyID != req.CompanyID {
		return nil, fieldError("company_id", "offer does not belong to this company")
	}
	if !offer.Visible() {
		return nil, fmt.Errorf("%w: offer is not open for applications", ErrInvalidState)
	}
	offerID := offer.ID
	return s.create(ctx, &models.Application{
		StudentID:   req.StudentID,
		CompanyID:   offer.CompanyID,
		JobOfferID:  &offerID,
		CoverLetter: req.CoverLetter,
		CVPath:      req.CVPath,
	})
}

func (s *applicationService) ApplySpontaneous(ctx context.Context, req *dto.SpontaneousApplicationRequest) (*models.Application, error) {
	if _, err := s.companies.GetByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fieldError("company_id", "company does not exist")
		}
		return nil, MapRepoError(err, "fetching company")
	}
	return s.create(ctx, &models.Application{
		StudentID:   req.StudentID,
		CompanyID:   req.CompanyID,
		CoverLetter: req.CoverLetter,
		CVPath:      req.CVPath,
	})
}

func (s *applicationService) GetForStudent(ctx context.Context, studentID, id int64) (*models.ApplicationListing, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching application %d", id))
	}
	if app.StudentID != studentID {
		return nil, fmt.Errorf("%w: application %d", ErrNotFound, id)
	}
	app.HRNotes = nil
	return app, nil
}

// Withdraw deletes the application unless it was accepted.
func (s *applicationService) Withdraw(ctx context.Context, studentID, id int64) error {
	app, err := s.GetForStudent(ctx, studentID, id)
	if err != nil {
		return err
	}
	if app.Status == models.ApplicationAccepted {
		return fmt.Errorf("%w: accepted applications cannot be withdrawn", ErrInvalidState)
	}
	if err := s.applications.Delete(ctx, id); err != nil {
		return MapRepoError(err, fmt.Sprintf("withdrawing application %d", id))
	}
	s.notifyCompany(ctx, app.CompanyID, models.NotificationApplicationWithdrawn,
		"Application withdrawn", app.StudentName+" withdrew an application.", id)
	return nil
}

// --- Company side ---

func (s *applicationService) ListForCompany(ctx context.Context, companyID int64, q *dto.ApplicationListQuery, page pagination.PageRequest) (pagination.PageResult[models.ApplicationListing], error) {
	f := listFilter(q)
	f.CompanyID = &companyID
	return s.page(ctx, f, page, false)
}

func (s *applicationService) GetForCompany(ctx context.Context, companyID, id int64) (*models.ApplicationListing, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching application %d", id))
	}
	if app.CompanyID != companyID {
		return nil, fmt.Errorf("%w: application %d", ErrNotFound, id)
	}
	return app, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, companyID, id int64, req *dto.ApplicationStatusRequest) (*models.Application, error) {
	app, err := s.GetForCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if !app.Status.CanTransitionTo(req.Status) {
		log.Printf("ApplicationService: rejected transition of application %d from %s to %s", id, app.Status, req.Status)
		return nil, fmt.Errorf("%w: application is %s", ErrInvalidTransition, app.Status)
	}
	updated, err := s.applications.TransitionStatus(ctx, id, app.Status, req.Status, req.Note)
	if errors.Is(err, storage.ErrConflict) {
		return nil, fmt.Errorf("%w: application changed concurrently", ErrInvalidTransition)
	}
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("updating application %d status", id))
	}

	title := "Your application was updated"
	if app.OfferTitle != nil {
		title = fmt.Sprintf("Your application for %s was updated", *app.OfferTitle)
	}
	s.notifier.Notify(ctx, app.StudentID, models.NotificationApplicationStatus, title,
		fmt.Sprintf("%s moved your application to %s.", app.CompanyName, req.Status),
		map[string]any{"application_id": id, "status": req.Status})
	return updated, nil
}

func (s *applicationService) UpdateNotes(ctx context.Context, companyID, id int64, req *dto.ApplicationNotesRequest) (*models.Application, error) {
	if _, err := s.GetForCompany(ctx, companyID, id); err != nil {
		return nil, err
	}
	updated, err := s.applications.UpdateNotes(ctx, id, req.Notes)
	return updated, MapRepoError(err, fmt.Sprintf("updating application %d notes", id))
}

func (s *applicationService) Stats(ctx context.Context, companyID int64) (*dto.ApplicationStatsResponse, error) {
	byStatus, err := s.applications.CountByStatus(ctx, storage.ApplicationFilter{CompanyID: &companyID})
	if err != nil {
		return nil, MapRepoError(err, "counting applications by status")
	}
	byOffer, err := s.applications.CountByOffer(ctx, companyID)
	if err != nil {
		return nil, MapRepoError(err, "counting applications by offer")
	}
	return &dto.ApplicationStatsResponse{ByStatus: byStatus, ByOffer: byOffer}, nil
}

func (s *applicationService) notifyCompany(ctx context.Context, companyID int64, kind, title, body string, applicationID int64) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		log.Printf("ApplicationService: Error loading company %d for notification: %v", companyID, err)
		return
	}
	s.notifier.Notify(ctx, company.OwnerID, kind, title, body, map[string]any{"application_id": applicationID})
}
