// Package mocks holds testify mocks of the repository and service dependency
// interfaces, shared by the service and handler tests.
package mocks

import (
	"context"
	"time"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"

	"github.com/stretchr/testify/mock"
)

// TxManager runs fn directly on the caller's context.
type TxManager struct{}

func (TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ storage.TxManager = TxManager{}

// MockUserRepository is a testify mock of storage.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *MockUserRepository) GetByProvider(ctx context.Context, provider string, providerID string) (*models.User, error) {
	args := m.Called(ctx, provider, providerID)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, filter storage.UserFilter, page pagination.PageRequest) ([]models.User, int, error) {
	args := m.Called(ctx, filter, page)
	r0, _ := args.Get(0).([]models.User)
	r1, _ := args.Get(1).(int)
	return r0, r1, args.Error(2)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *MockUserRepository) SetAvatar(ctx context.Context, id int64, path string) (*models.User, error) {
	args := m.Called(ctx, id, path)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *MockUserRepository) SetPassword(ctx context.Context, id int64, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

func (m *MockUserRepository) LinkProvider(ctx context.Context, id int64, provider string, providerID string) error {
	args := m.Called(ctx, id, provider, providerID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkEmailVerified(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *MockUserRepository) SetBanned(ctx context.Context, id int64, banned bool) (*models.User, error) {
	args := m.Called(ctx, id, banned)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ storage.UserRepository = (*MockUserRepository)(nil)

// MockStudentProfileRepository is a testify mock of storage.StudentProfileRepository.
type MockStudentProfileRepository struct {
	mock.Mock
}

func (m *MockStudentProfileRepository) Create(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockStudentProfileRepository) Get(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	args := m.Called(ctx, userID)
	r0, _ := args.Get(0).(*models.StudentProfile)
	return r0, args.Error(1)
}

func (m *MockStudentProfileRepository) Upsert(ctx context.Context, profile *models.StudentProfile) (*models.StudentProfile, error) {
	args := m.Called(ctx, profile)
	r0, _ := args.Get(0).(*models.StudentProfile)
	return r0, args.Error(1)
}

func (m *MockStudentProfileRepository) SetCV(ctx context.Context, userID int64, path string) (*models.StudentProfile, error) {
	args := m.Called(ctx, userID, path)
	r0, _ := args.Get(0).(*models.StudentProfile)
	return r0, args.Error(1)
}

var _ storage.StudentProfileRepository = (*MockStudentProfileRepository)(nil)

// MockReferenceRepository is a testify mock of storage.ReferenceRepository.
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) ListCountries(ctx context.Context) ([]models.Country, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).([]models.Country)
	return r0, args.Error(1)
}

func (m *MockReferenceRepository) ListCities(ctx context.Context, countryID *int64) ([]models.City, error) {
	args := m.Called(ctx, countryID)
	r0, _ := args.Get(0).([]models.City)
	return r0, args.Error(1)
}

func (m *MockReferenceRepository) GetCity(ctx context.Context, id int64) (*models.City, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.City)
	return r0, args.Error(1)
}

func (m *MockReferenceRepository) ListSectors(ctx context.Context) ([]models.Sector, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).([]models.Sector)
	return r0, args.Error(1)
}

func (m *MockReferenceRepository) GetSector(ctx context.Context, id int64) (*models.Sector, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Sector)
	return r0, args.Error(1)
}

func (m *MockReferenceRepository) ListSkills(ctx context.Context, query string) ([]models.Skill, error) {
	args := m.Called(ctx, query)
	r0, _ := args.Get(0).([]models.Skill)
	return r0, args.Error(1)
}

func (m *MockReferenceRepository) CountSkills(ctx context.Context, ids []int64) (int, error) {
	args := m.Called(ctx, ids)
	r0, _ := args.Get(0).(int)
	return r0, args.Error(1)
}

func (m *MockReferenceRepository) CreateSector(ctx context.Context, sector *models.Sector) (*models.Sector, error) {
	args := m.Called(ctx, sector)
	r0, _ := args.Get(0).(*models.Sector)
	return r0, args.Error(1)
}

func (m *MockReferenceRepository) UpdateSector(ctx context.Context, sector *models.Sector) (*models.Sector, error) {
	args := m.Called(ctx, sector)
	r0, _ := args.Get(0).(*models.Sector)
	return r0, args.Error(1)
}

func (m *MockReferenceRepository) DeleteSector(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReferenceRepository) SectorSlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	r0, _ := args.Get(0).(bool)
	return r0, args.Error(1)
}

var _ storage.ReferenceRepository = (*MockReferenceRepository)(nil)

// MockCompanyRepository is a testify mock of storage.CompanyRepository.
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	args := m.Called(ctx, company)
	r0, _ := args.Get(0).(*models.Company)
	return r0, args.Error(1)
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Company)
	return r0, args.Error(1)
}

func (m *MockCompanyRepository) GetBySlug(ctx context.Context, slug string) (*models.Company, error) {
	args := m.Called(ctx, slug)
	r0, _ := args.Get(0).(*models.Company)
	return r0, args.Error(1)
}

func (m *MockCompanyRepository) GetByOwner(ctx context.Context, ownerID int64) (*models.Company, error) {
	args := m.Called(ctx, ownerID)
	r0, _ := args.Get(0).(*models.Company)
	return r0, args.Error(1)
}

func (m *MockCompanyRepository) GetListing(ctx context.Context, id int64) (*models.CompanyListing, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.CompanyListing)
	return r0, args.Error(1)
}

func (m *MockCompanyRepository) List(ctx context.Context, filter storage.CompanyFilter, page pagination.PageRequest) ([]models.CompanyListing, int, error) {
	args := m.Called(ctx, filter, page)
	r0, _ := args.Get(0).([]models.CompanyListing)
	r1, _ := args.Get(1).(int)
	return r0, r1, args.Error(2)
}

func (m *MockCompanyRepository) Autocomplete(ctx context.Context, prefix string, limit int) ([]string, error) {
	args := m.Called(ctx, prefix, limit)
	r0, _ := args.Get(0).([]string)
	return r0, args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *models.Company) (*models.Company, error) {
	args := m.Called(ctx, company)
	r0, _ := args.Get(0).(*models.Company)
	return r0, args.Error(1)
}

func (m *MockCompanyRepository) SetLogo(ctx context.Context, id int64, path string) (*models.Company, error) {
	args := m.Called(ctx, id, path)
	r0, _ := args.Get(0).(*models.Company)
	return r0, args.Error(1)
}

func (m *MockCompanyRepository) SetCover(ctx context.Context, id int64, path string) (*models.Company, error) {
	args := m.Called(ctx, id, path)
	r0, _ := args.Get(0).(*models.Company)
	return r0, args.Error(1)
}

func (m *MockCompanyRepository) SetVerified(ctx context.Context, id int64, verified bool) (*models.Company, error) {
	args := m.Called(ctx, id, verified)
	r0, _ := args.Get(0).(*models.Company)
	return r0, args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	r0, _ := args.Get(0).(bool)
	return r0, args.Error(1)
}

var _ storage.CompanyRepository = (*MockCompanyRepository)(nil)

// MockCompanyMediaRepository is a testify mock of storage.CompanyMediaRepository.
type MockCompanyMediaRepository struct {
	mock.Mock
}

func (m *MockCompanyMediaRepository) List(ctx context.Context, companyID int64) ([]models.CompanyMedia, error) {
	args := m.Called(ctx, companyID)
	r0, _ := args.Get(0).([]models.CompanyMedia)
	return r0, args.Error(1)
}

func (m *MockCompanyMediaRepository) Get(ctx context.Context, companyID int64, id int64) (*models.CompanyMedia, error) {
	args := m.Called(ctx, companyID, id)
	r0, _ := args.Get(0).(*models.CompanyMedia)
	return r0, args.Error(1)
}

func (m *MockCompanyMediaRepository) Create(ctx context.Context, media *models.CompanyMedia) (*models.CompanyMedia, error) {
	args := m.Called(ctx, media)
	r0, _ := args.Get(0).(*models.CompanyMedia)
	return r0, args.Error(1)
}

func (m *MockCompanyMediaRepository) Update(ctx context.Context, media *models.CompanyMedia) (*models.CompanyMedia, error) {
	args := m.Called(ctx, media)
	r0, _ := args.Get(0).(*models.CompanyMedia)
	return r0, args.Error(1)
}

func (m *MockCompanyMediaRepository) Delete(ctx context.Context, companyID int64, id int64) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockCompanyMediaRepository) SetPosition(ctx context.Context, companyID int64, id int64, position int32) error {
	args := m.Called(ctx, companyID, id, position)
	return args.Error(0)
}

var _ storage.CompanyMediaRepository = (*MockCompanyMediaRepository)(nil)

// MockPublicationRepository is a testify mock of storage.PublicationRepository.
type MockPublicationRepository struct {
	mock.Mock
}

func (m *MockPublicationRepository) List(ctx context.Context, companyID int64, publishedOnly bool, page pagination.PageRequest) ([]models.Publication, int, error) {
	args := m.Called(ctx, companyID, publishedOnly, page)
	r0, _ := args.Get(0).([]models.Publication)
	r1, _ := args.Get(1).(int)
	return r0, r1, args.Error(2)
}

func (m *MockPublicationRepository) Get(ctx context.Context, companyID int64, id int64) (*models.Publication, error) {
	args := m.Called(ctx, companyID, id)
	r0, _ := args.Get(0).(*models.Publication)
	return r0, args.Error(1)
}

func (m *MockPublicationRepository) Create(ctx context.Context, pub *models.Publication) (*models.Publication, error) {
	args := m.Called(ctx, pub)
	r0, _ := args.Get(0).(*models.Publication)
	return r0, args.Error(1)
}

func (m *MockPublicationRepository) Update(ctx context.Context, pub *models.Publication) (*models.Publication, error) {
	args := m.Called(ctx, pub)
	r0, _ := args.Get(0).(*models.Publication)
	return r0, args.Error(1)
}

func (m *MockPublicationRepository) SetPublished(ctx context.Context, companyID int64, id int64, published bool) (*models.Publication, error) {
	args := m.Called(ctx, companyID, id, published)
	r0, _ := args.Get(0).(*models.Publication)
	return r0, args.Error(1)
}

func (m *MockPublicationRepository) Delete(ctx context.Context, companyID int64, id int64) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

var _ storage.PublicationRepository = (*MockPublicationRepository)(nil)

// MockOrgRepository is a testify mock of storage.OrgRepository.
type MockOrgRepository struct {
	mock.Mock
}

func (m *MockOrgRepository) List(ctx context.Context, companyID int64) ([]models.OrgNode, error) {
	args := m.Called(ctx, companyID)
	r0, _ := args.Get(0).([]models.OrgNode)
	return r0, args.Error(1)
}

func (m *MockOrgRepository) Get(ctx context.Context, companyID int64, id int64) (*models.OrgNode, error) {
	args := m.Called(ctx, companyID, id)
	r0, _ := args.Get(0).(*models.OrgNode)
	return r0, args.Error(1)
}

func (m *MockOrgRepository) Create(ctx context.Context, node *models.OrgNode) (*models.OrgNode, error) {
	args := m.Called(ctx, node)
	r0, _ := args.Get(0).(*models.OrgNode)
	return r0, args.Error(1)
}

func (m *MockOrgRepository) Update(ctx context.Context, node *models.OrgNode) (*models.OrgNode, error) {
	args := m.Called(ctx, node)
	r0, _ := args.Get(0).(*models.OrgNode)
	return r0, args.Error(1)
}

func (m *MockOrgRepository) Reparent(ctx context.Context, companyID int64, fromParentID int64, toParentID *int64) error {
	args := m.Called(ctx, companyID, fromParentID, toParentID)
	return args.Error(0)
}

func (m *MockOrgRepository) Move(ctx context.Context, companyID int64, id int64, parentID *int64, position int32) error {
	args := m.Called(ctx, companyID, id, parentID, position)
	return args.Error(0)
}

func (m *MockOrgRepository) Delete(ctx context.Context, companyID int64, id int64) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

var _ storage.OrgRepository = (*MockOrgRepository)(nil)

// MockHRContactRepository is a testify mock of storage.HRContactRepository.
type MockHRContactRepository struct {
	mock.Mock
}

func (m *MockHRContactRepository) List(ctx context.Context, companyID int64) ([]models.HRContact, error) {
	args := m.Called(ctx, companyID)
	r0, _ := args.Get(0).([]models.HRContact)
	return r0, args.Error(1)
}

func (m *MockHRContactRepository) Get(ctx context.Context, companyID int64, id int64) (*models.HRContact, error) {
	args := m.Called(ctx, companyID, id)
	r0, _ := args.Get(0).(*models.HRContact)
	return r0, args.Error(1)
}

func (m *MockHRContactRepository) Create(ctx context.Context, contact *models.HRContact) (*models.HRContact, error) {
	args := m.Called(ctx, contact)
	r0, _ := args.Get(0).(*models.HRContact)
	return r0, args.Error(1)
}

func (m *MockHRContactRepository) Update(ctx context.Context, contact *models.HRContact) (*models.HRContact, error) {
	args := m.Called(ctx, contact)
	r0, _ := args.Get(0).(*models.HRContact)
	return r0, args.Error(1)
}

func (m *MockHRContactRepository) Delete(ctx context.Context, companyID int64, id int64) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockHRContactRepository) Count(ctx context.Context, companyID int64) (int, error) {
	args := m.Called(ctx, companyID)
	r0, _ := args.Get(0).(int)
	return r0, args.Error(1)
}

func (m *MockHRContactRepository) SetPrimary(ctx context.Context, companyID int64, id int64) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockHRContactRepository) PromoteOldest(ctx context.Context, companyID int64) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

var _ storage.HRContactRepository = (*MockHRContactRepository)(nil)

// MockJobOfferRepository is a testify mock of storage.JobOfferRepository.
type MockJobOfferRepository struct {
	mock.Mock
}

func (m *MockJobOfferRepository) Create(ctx context.Context, offer *models.JobOffer) (*models.JobOffer, error) {
	args := m.Called(ctx, offer)
	r0, _ := args.Get(0).(*models.JobOffer)
	return r0, args.Error(1)
}

func (m *MockJobOfferRepository) GetByID(ctx context.Context, id int64) (*models.JobOffer, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.JobOffer)
	return r0, args.Error(1)
}

func (m *MockJobOfferRepository) GetListing(ctx context.Context, id int64) (*models.JobOfferListing, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.JobOfferListing)
	return r0, args.Error(1)
}

func (m *MockJobOfferRepository) GetBySlug(ctx context.Context, slug string) (*models.JobOfferListing, error) {
	args := m.Called(ctx, slug)
	r0, _ := args.Get(0).(*models.JobOfferListing)
	return r0, args.Error(1)
}

func (m *MockJobOfferRepository) List(ctx context.Context, filter storage.OfferFilter, page pagination.PageRequest) ([]models.JobOfferListing, int, error) {
	args := m.Called(ctx, filter, page)
	r0, _ := args.Get(0).([]models.JobOfferListing)
	r1, _ := args.Get(1).(int)
	return r0, r1, args.Error(2)
}

func (m *MockJobOfferRepository) Similar(ctx context.Context, offer *models.JobOffer, limit int) ([]models.JobOfferListing, error) {
	args := m.Called(ctx, offer, limit)
	r0, _ := args.Get(0).([]models.JobOfferListing)
	return r0, args.Error(1)
}

func (m *MockJobOfferRepository) Recommended(ctx context.Context, cityID *int64, skillIDs []int64, limit int) ([]models.JobOfferListing, error) {
	args := m.Called(ctx, cityID, skillIDs, limit)
	r0, _ := args.Get(0).([]models.JobOfferListing)
	return r0, args.Error(1)
}

func (m *MockJobOfferRepository) Update(ctx context.Context, offer *models.JobOffer) (*models.JobOffer, error) {
	args := m.Called(ctx, offer)
	r0, _ := args.Get(0).(*models.JobOffer)
	return r0, args.Error(1)
}

func (m *MockJobOfferRepository) TransitionStatus(ctx context.Context, id int64, from models.OfferStatus, to models.OfferStatus) (*models.JobOffer, error) {
	args := m.Called(ctx, id, from, to)
	r0, _ := args.Get(0).(*models.JobOffer)
	return r0, args.Error(1)
}

func (m *MockJobOfferRepository) SetActive(ctx context.Context, id int64, active bool) (*models.JobOffer, error) {
	args := m.Called(ctx, id, active)
	r0, _ := args.Get(0).(*models.JobOffer)
	return r0, args.Error(1)
}

func (m *MockJobOfferRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobOfferRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	r0, _ := args.Get(0).(bool)
	return r0, args.Error(1)
}

var _ storage.JobOfferRepository = (*MockJobOfferRepository)(nil)

// MockApplicationRepository is a testify mock of storage.ApplicationRepository.
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	args := m.Called(ctx, app)
	r0, _ := args.Get(0).(*models.Application)
	return r0, args.Error(1)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id int64) (*models.ApplicationListing, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.ApplicationListing)
	return r0, args.Error(1)
}

func (m *MockApplicationRepository) List(ctx context.Context, filter storage.ApplicationFilter, page pagination.PageRequest) ([]models.ApplicationListing, int, error) {
	args := m.Called(ctx, filter, page)
	r0, _ := args.Get(0).([]models.ApplicationListing)
	r1, _ := args.Get(1).(int)
	return r0, r1, args.Error(2)
}

func (m *MockApplicationRepository) TransitionStatus(ctx context.Context, id int64, from models.ApplicationStatus, to models.ApplicationStatus, note *string) (*models.Application, error) {
	args := m.Called(ctx, id, from, to, note)
	r0, _ := args.Get(0).(*models.Application)
	return r0, args.Error(1)
}

func (m *MockApplicationRepository) UpdateNotes(ctx context.Context, id int64, notes *string) (*models.Application, error) {
	args := m.Called(ctx, id, notes)
	r0, _ := args.Get(0).(*models.Application)
	return r0, args.Error(1)
}

func (m *MockApplicationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockApplicationRepository) CountByStatus(ctx context.Context, filter storage.ApplicationFilter) ([]models.LabelCount, error) {
	args := m.Called(ctx, filter)
	r0, _ := args.Get(0).([]models.LabelCount)
	return r0, args.Error(1)
}

func (m *MockApplicationRepository) CountByOffer(ctx context.Context, companyID int64) ([]models.LabelCount, error) {
	args := m.Called(ctx, companyID)
	r0, _ := args.Get(0).([]models.LabelCount)
	return r0, args.Error(1)
}

var _ storage.ApplicationRepository = (*MockApplicationRepository)(nil)

// MockReviewRepository is a testify mock of storage.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	args := m.Called(ctx, review)
	r0, _ := args.Get(0).(*models.Review)
	return r0, args.Error(1)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Review)
	return r0, args.Error(1)
}

func (m *MockReviewRepository) List(ctx context.Context, filter storage.ReviewFilter, page pagination.PageRequest) ([]models.ReviewListing, int, error) {
	args := m.Called(ctx, filter, page)
	r0, _ := args.Get(0).([]models.ReviewListing)
	r1, _ := args.Get(1).(int)
	return r0, r1, args.Error(2)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *models.Review) (*models.Review, error) {
	args := m.Called(ctx, review)
	r0, _ := args.Get(0).(*models.Review)
	return r0, args.Error(1)
}

func (m *MockReviewRepository) SetStatus(ctx context.Context, id int64, status models.ReviewStatus) (*models.Review, error) {
	args := m.Called(ctx, id, status)
	r0, _ := args.Get(0).(*models.Review)
	return r0, args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) AddVote(ctx context.Context, reviewID int64, userID int64) error {
	args := m.Called(ctx, reviewID, userID)
	return args.Error(0)
}

func (m *MockReviewRepository) RemoveVote(ctx context.Context, reviewID int64, userID int64) (bool, error) {
	args := m.Called(ctx, reviewID, userID)
	r0, _ := args.Get(0).(bool)
	return r0, args.Error(1)
}

func (m *MockReviewRepository) SyncHelpfulCount(ctx context.Context, reviewID int64) (int32, error) {
	args := m.Called(ctx, reviewID)
	r0, _ := args.Get(0).(int32)
	return r0, args.Error(1)
}

var _ storage.ReviewRepository = (*MockReviewRepository)(nil)

// MockConversationRepository is a testify mock of storage.ConversationRepository.
type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) Create(ctx context.Context, conv *models.Conversation) (*models.Conversation, error) {
	args := m.Called(ctx, conv)
	r0, _ := args.Get(0).(*models.Conversation)
	return r0, args.Error(1)
}

func (m *MockConversationRepository) GetByID(ctx context.Context, id int64) (*models.ConversationListing, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.ConversationListing)
	return r0, args.Error(1)
}

func (m *MockConversationRepository) ListForUser(ctx context.Context, userID int64, page pagination.PageRequest) ([]models.ConversationListing, int, error) {
	args := m.Called(ctx, userID, page)
	r0, _ := args.Get(0).([]models.ConversationListing)
	r1, _ := args.Get(1).(int)
	return r0, r1, args.Error(2)
}

func (m *MockConversationRepository) SetStatus(ctx context.Context, id int64, status models.ConversationStatus) (*models.Conversation, error) {
	args := m.Called(ctx, id, status)
	r0, _ := args.Get(0).(*models.Conversation)
	return r0, args.Error(1)
}

func (m *MockConversationRepository) Touch(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

var _ storage.ConversationRepository = (*MockConversationRepository)(nil)

// MockMessageRepository is a testify mock of storage.MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {
	args := m.Called(ctx, msg)
	r0, _ := args.Get(0).(*models.Message)
	return r0, args.Error(1)
}

func (m *MockMessageRepository) List(ctx context.Context, conversationID int64, page pagination.PageRequest) ([]models.Message, int, error) {
	args := m.Called(ctx, conversationID, page)
	r0, _ := args.Get(0).([]models.Message)
	r1, _ := args.Get(1).(int)
	return r0, r1, args.Error(2)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, conversationID int64, readerID int64) (int64, error) {
	args := m.Called(ctx, conversationID, readerID)
	r0, _ := args.Get(0).(int64)
	return r0, args.Error(1)
}

var _ storage.MessageRepository = (*MockMessageRepository)(nil)

// MockNotificationRepository is a testify mock of storage.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	args := m.Called(ctx, n)
	r0, _ := args.Get(0).(*models.Notification)
	return r0, args.Error(1)
}

func (m *MockNotificationRepository) List(ctx context.Context, userID int64, unreadOnly bool, page pagination.PageRequest) ([]models.Notification, int, error) {
	args := m.Called(ctx, userID, unreadOnly, page)
	r0, _ := args.Get(0).([]models.Notification)
	r1, _ := args.Get(1).(int)
	return r0, r1, args.Error(2)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	r0, _ := args.Get(0).(int)
	return r0, args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, userID int64, id int64) (*models.Notification, error) {
	args := m.Called(ctx, userID, id)
	r0, _ := args.Get(0).(*models.Notification)
	return r0, args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	r0, _ := args.Get(0).(int64)
	return r0, args.Error(1)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, userID int64, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

var _ storage.NotificationRepository = (*MockNotificationRepository)(nil)

// MockBookmarkRepository is a testify mock of storage.BookmarkRepository.
type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) Get(ctx context.Context, userID int64, ref models.EntityRef) (*models.Bookmark, error) {
	args := m.Called(ctx, userID, ref)
	r0, _ := args.Get(0).(*models.Bookmark)
	return r0, args.Error(1)
}

func (m *MockBookmarkRepository) Create(ctx context.Context, userID int64, ref models.EntityRef) (*models.Bookmark, error) {
	args := m.Called(ctx, userID, ref)
	r0, _ := args.Get(0).(*models.Bookmark)
	return r0, args.Error(1)
}

func (m *MockBookmarkRepository) Delete(ctx context.Context, userID int64, ref models.EntityRef) error {
	args := m.Called(ctx, userID, ref)
	return args.Error(0)
}

func (m *MockBookmarkRepository) List(ctx context.Context, userID int64, kind *models.EntityKind) ([]models.BookmarkListing, error) {
	args := m.Called(ctx, userID, kind)
	r0, _ := args.Get(0).([]models.BookmarkListing)
	return r0, args.Error(1)
}

func (m *MockBookmarkRepository) Count(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	r0, _ := args.Get(0).(int)
	return r0, args.Error(1)
}

var _ storage.BookmarkRepository = (*MockBookmarkRepository)(nil)

// MockEntityRepository is a testify mock of storage.EntityRepository.
type MockEntityRepository struct {
	mock.Mock
}

func (m *MockEntityRepository) Exists(ctx context.Context, kind models.EntityKind, id int64) (bool, error) {
	args := m.Called(ctx, kind, id)
	r0, _ := args.Get(0).(bool)
	return r0, args.Error(1)
}

func (m *MockEntityRepository) Visible(ctx context.Context, kind models.EntityKind, id int64) (bool, error) {
	args := m.Called(ctx, kind, id)
	r0, _ := args.Get(0).(bool)
	return r0, args.Error(1)
}

var _ storage.EntityRepository = (*MockEntityRepository)(nil)

// MockReportRepository is a testify mock of storage.ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *models.Report) (*models.Report, error) {
	args := m.Called(ctx, report)
	r0, _ := args.Get(0).(*models.Report)
	return r0, args.Error(1)
}

func (m *MockReportRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Report)
	return r0, args.Error(1)
}

func (m *MockReportRepository) List(ctx context.Context, status string, page pagination.PageRequest) ([]models.Report, int, error) {
	args := m.Called(ctx, status, page)
	r0, _ := args.Get(0).([]models.Report)
	r1, _ := args.Get(1).(int)
	return r0, r1, args.Error(2)
}

func (m *MockReportRepository) UpdateStatus(ctx context.Context, id int64, status string, note *string) (*models.Report, error) {
	args := m.Called(ctx, id, status, note)
	r0, _ := args.Get(0).(*models.Report)
	return r0, args.Error(1)
}

var _ storage.ReportRepository = (*MockReportRepository)(nil)

// MockSuggestionRepository is a testify mock of storage.SuggestionRepository.
type MockSuggestionRepository struct {
	mock.Mock
}

func (m *MockSuggestionRepository) ListActive(ctx context.Context, cityID *int64, limit int) ([]models.Suggestion, error) {
	args := m.Called(ctx, cityID, limit)
	r0, _ := args.Get(0).([]models.Suggestion)
	return r0, args.Error(1)
}

func (m *MockSuggestionRepository) List(ctx context.Context, page pagination.PageRequest) ([]models.Suggestion, int, error) {
	args := m.Called(ctx, page)
	r0, _ := args.Get(0).([]models.Suggestion)
	r1, _ := args.Get(1).(int)
	return r0, r1, args.Error(2)
}

func (m *MockSuggestionRepository) Get(ctx context.Context, id int64) (*models.Suggestion, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Suggestion)
	return r0, args.Error(1)
}

func (m *MockSuggestionRepository) Create(ctx context.Context, s *models.Suggestion) (*models.Suggestion, error) {
	args := m.Called(ctx, s)
	r0, _ := args.Get(0).(*models.Suggestion)
	return r0, args.Error(1)
}

func (m *MockSuggestionRepository) Update(ctx context.Context, s *models.Suggestion) (*models.Suggestion, error) {
	args := m.Called(ctx, s)
	r0, _ := args.Get(0).(*models.Suggestion)
	return r0, args.Error(1)
}

func (m *MockSuggestionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ storage.SuggestionRepository = (*MockSuggestionRepository)(nil)

// MockAnalyticsRepository is a testify mock of storage.AnalyticsRepository.
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) RecordView(ctx context.Context, ref models.EntityRef, viewerID *int64, ip string) error {
	args := m.Called(ctx, ref, viewerID, ip)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) CompanyStats(ctx context.Context, companyID int64) (*storage.CompanyStats, error) {
	args := m.Called(ctx, companyID)
	r0, _ := args.Get(0).(*storage.CompanyStats)
	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) ProfileViewsPerDay(ctx context.Context, companyID int64, since time.Time) ([]models.DailyCount, error) {
	args := m.Called(ctx, companyID, since)
	r0, _ := args.Get(0).([]models.DailyCount)
	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) OfferViewsPerDay(ctx context.Context, companyID int64, since time.Time) ([]models.DailyCount, error) {
	args := m.Called(ctx, companyID, since)
	r0, _ := args.Get(0).([]models.DailyCount)
	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) ApplicationsPerDay(ctx context.Context, companyID int64, since time.Time) ([]models.DailyCount, error) {
	args := m.Called(ctx, companyID, since)
	r0, _ := args.Get(0).([]models.DailyCount)
	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) BookmarksPerDay(ctx context.Context, companyID int64, since time.Time) ([]models.DailyCount, error) {
	args := m.Called(ctx, companyID, since)
	r0, _ := args.Get(0).([]models.DailyCount)
	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) CountOffersByStatus(ctx context.Context, companyID int64) ([]models.LabelCount, error) {
	args := m.Called(ctx, companyID)
	r0, _ := args.Get(0).([]models.LabelCount)
	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) UnreadConversations(ctx context.Context, companyID int64) (int64, error) {
	args := m.Called(ctx, companyID)
	r0, _ := args.Get(0).(int64)
	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) PlatformCounts(ctx context.Context) (*storage.PlatformCounts, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).(*storage.PlatformCounts)
	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) SignupsPerDay(ctx context.Context, since time.Time) ([]models.DailyCount, error) {
	args := m.Called(ctx, since)
	r0, _ := args.Get(0).([]models.DailyCount)
	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) PlatformApplicationsPerDay(ctx context.Context, since time.Time) ([]models.DailyCount, error) {
	args := m.Called(ctx, since)
	r0, _ := args.Get(0).([]models.DailyCount)
	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) OffersPublishedPerDay(ctx context.Context, since time.Time) ([]models.DailyCount, error) {
	args := m.Called(ctx, since)
	r0, _ := args.Get(0).([]models.DailyCount)
	return r0, args.Error(1)
}

var _ storage.AnalyticsRepository = (*MockAnalyticsRepository)(nil)

