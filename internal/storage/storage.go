package storage

import (
	"context"
	"time"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
)

// TxManager runs fn inside a database transaction. Repositories called with the
// ctx passed to fn join that transaction.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// --- Filters ---

type UserFilter struct {
	Role   *models.Role
	Query  string
	Banned *bool
}

// Company search modes.
const (
	SearchByName     = "name"
	SearchBySector   = "sector"
	SearchByLocation = "location"
	SearchMixed      = "mixed"
)

type CompanyFilter struct {
	SectorID   *int64
	CityID     *int64
	Size       string
	Query      string
	SearchType string
	Verified   *bool
}

type OfferFilter struct {
	CompanyID  *int64
	Status     *models.OfferStatus
	Type       *models.OfferType
	SectorID   *int64
	CityID     *int64
	Query      string
	PublicOnly bool // published, active and not past closes_at
}

type ApplicationFilter struct {
	StudentID *int64
	CompanyID *int64
	OfferID   *int64
	Status    *models.ApplicationStatus
}

type ReviewFilter struct {
	CompanyID *int64
	Status    *models.ReviewStatus
}

// --- Repositories ---

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByProvider(ctx context.Context, provider, providerID string) (*models.User, error)
	List(ctx context.Context, filter UserFilter, page pagination.PageRequest) ([]models.User, int, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	SetAvatar(ctx context.Context, id int64, path string) (*models.User, error)
	SetPassword(ctx context.Context, id int64, hash string) error
	LinkProvider(ctx context.Context, id int64, provider, providerID string) error
	MarkEmailVerified(ctx context.Context, id int64) (*models.User, error)
	SetBanned(ctx context.Context, id int64, banned bool) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type StudentProfileRepository interface {
	Create(ctx context.Context, userID int64) error
	Get(ctx context.Context, userID int64) (*models.StudentProfile, error)
	Upsert(ctx context.Context, profile *models.StudentProfile) (*models.StudentProfile, error)
	SetCV(ctx context.Context, userID int64, path string) (*models.StudentProfile, error)
}

// ReferenceRepository serves countries, cities, sectors and skills.
type ReferenceRepository interface {
	ListCountries(ctx context.Context) ([]models.Country, error)
	ListCities(ctx context.Context, countryID *int64) ([]models.City, error)
	GetCity(ctx context.Context, id int64) (*models.City, error)
	ListSectors(ctx context.Context) ([]models.Sector, error)
	GetSector(ctx context.Context, id int64) (*models.Sector, error)
	ListSkills(ctx context.Context, query string) ([]models.Skill, error)
	CountSkills(ctx context.Context, ids []int64) (int, error)

	CreateSector(ctx context.Context, sector *models.Sector) (*models.Sector, error)
	UpdateSector(ctx context.Context, sector *models.Sector) (*models.Sector, error)
	DeleteSector(ctx context.Context, id int64) error
	SectorSlugExists(ctx context.Context, slug string) (bool, error)
}

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) (*models.Company, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	GetBySlug(ctx context.Context, slug string) (*models.Company, error)
	GetByOwner(ctx context.Context, ownerID int64) (*models.Company, error)
	GetListing(ctx context.Context, id int64) (*models.CompanyListing, error)
	List(ctx context.Context, filter CompanyFilter, page pagination.PageRequest) ([]models.CompanyListing, int, error)
	Autocomplete(ctx context.Context, prefix string, limit int) ([]string, error)
	Update(ctx context.Context, company *models.Company) (*models.Company, error)
	SetLogo(ctx context.Context, id int64, path string) (*models.Company, error)
	SetCover(ctx context.Context, id int64, path string) (*models.Company, error)
	SetVerified(ctx context.Context, id int64, verified bool) (*models.Company, error)
	Delete(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type CompanyMediaRepository interface {
	List(ctx context.Context, companyID int64) ([]models.CompanyMedia, error)
	Get(ctx context.Context, companyID, id int64) (*models.CompanyMedia, error)
	Create(ctx context.Context, media *models.CompanyMedia) (*models.CompanyMedia, error)
	Update(ctx context.Context, media *models.CompanyMedia) (*models.CompanyMedia, error)
	Delete(ctx context.Context, companyID, id int64) error
	SetPosition(ctx context.Context, companyID, id int64, position int32) error
}

type PublicationRepository interface {
	List(ctx context.Context, companyID int64, publishedOnly bool, page pagination.PageRequest) ([]models.Publication, int, error)
	Get(ctx context.Context, companyID, id int64) (*models.Publication, error)
	Create(ctx context.Context, pub *models.Publication) (*models.Publication, error)
	Update(ctx context.Context, pub *models.Publication) (*models.Publication, error)
	SetPublished(ctx context.Context, companyID, id int64, published bool) (*models.Publication, error)
	Delete(ctx context.Context, companyID, id int64) error
}

// OrgRepository stores organisation chart nodes as an adjacency list.
type OrgRepository interface {
	List(ctx context.Context, companyID int64) ([]models.OrgNode, error)
	Get(ctx context.Context, companyID, id int64) (*models.OrgNode, error)
	Create(ctx context.Context, node *models.OrgNode) (*models.OrgNode, error)
	Update(ctx context.Context, node *models.OrgNode) (*models.OrgNode, error)
	Reparent(ctx context.Context, companyID int64, fromParentID int64, toParentID *int64) error
	Move(ctx context.Context, companyID, id int64, parentID *int64, position int32) error
	Delete(ctx context.Context, companyID, id int64) error
}

type HRContactRepository interface {
	List(ctx context.Context, companyID int64) ([]models.HRContact, error)
	Get(ctx context.Context, companyID, id int64) (*models.HRContact, error)
	Create(ctx context.Context, contact *models.HRContact) (*models.HRContact, error)
	Update(ctx context.Context, contact *models.HRContact) (*models.HRContact, error)
	Delete(ctx context.Context, companyID, id int64) error
	Count(ctx context.Context, companyID int64) (int, error)
	// SetPrimary clears the flag on every other contact of the company.
	SetPrimary(ctx context.Context, companyID, id int64) error
	PromoteOldest(ctx context.Context, companyID int64) error
}

type JobOfferRepository interface {
	Create(ctx context.Context, offer *models.JobOffer) (*models.JobOffer, error)
	GetByID(ctx context.Context, id int64) (*models.JobOffer, error)
	GetListing(ctx context.Context, id int64) (*models.JobOfferListing, error)
	GetBySlug(ctx context.Context, slug string) (*models.JobOfferListing, error)
	List(ctx context.Context, filter OfferFilter, page pagination.PageRequest) ([]models.JobOfferListing, int, error)
	Similar(ctx context.Context, offer *models.JobOffer, limit int) ([]models.JobOfferListing, error)
	Recommended(ctx context.Context, cityID *int64, skillIDs []int64, limit int) ([]models.JobOfferListing, error)
	Update(ctx context.Context, offer *models.JobOffer) (*models.JobOffer, error)
	// TransitionStatus moves the offer only if it is still in from; otherwise ErrConflict.
	TransitionStatus(ctx context.Context, id int64, from, to models.OfferStatus) (*models.JobOffer, error)
	SetActive(ctx context.Context, id int64, active bool) (*models.JobOffer, error)
	Delete(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	GetByID(ctx context.Context, id int64) (*models.ApplicationListing, error)
	List(ctx context.Context, filter ApplicationFilter, page pagination.PageRequest) ([]models.ApplicationListing, int, error)
	// TransitionStatus moves the application only if it is still in from; otherwise ErrConflict.
	TransitionStatus(ctx context.Context, id int64, from, to models.ApplicationStatus, note *string) (*models.Application, error)
	UpdateNotes(ctx context.Context, id int64, notes *string) (*models.Application, error)
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, filter ApplicationFilter) ([]models.LabelCount, error)
	CountByOffer(ctx context.Context, companyID int64) ([]models.LabelCount, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	List(ctx context.Context, filter ReviewFilter, page pagination.PageRequest) ([]models.ReviewListing, int, error)
	Update(ctx context.Context, review *models.Review) (*models.Review, error)
	SetStatus(ctx context.Context, id int64, status models.ReviewStatus) (*models.Review, error)
	Delete(ctx context.Context, id int64) error
	AddVote(ctx context.Context, reviewID, userID int64) error
	// RemoveVote reports whether a vote existed.
	RemoveVote(ctx context.Context, reviewID, userID int64) (bool, error)
	SyncHelpfulCount(ctx context.Context, reviewID int64) (int32, error)
}

type ConversationRepository interface {
	Create(ctx context.Context, conv *models.Conversation) (*models.Conversation, error)
	GetByID(ctx context.Context, id int64) (*models.ConversationListing, error)
	ListForUser(ctx context.Context, userID int64, page pagination.PageRequest) ([]models.ConversationListing, int, error)
	SetStatus(ctx context.Context, id int64, status models.ConversationStatus) (*models.Conversation, error)
	Touch(ctx context.Context, id int64, at time.Time) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) (*models.Message, error)
	List(ctx context.Context, conversationID int64, page pagination.PageRequest) ([]models.Message, int, error)
	// MarkRead marks every message not sent by readerID as read.
	MarkRead(ctx context.Context, conversationID, readerID int64) (int64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
	List(ctx context.Context, userID int64, unreadOnly bool, page pagination.PageRequest) ([]models.Notification, int, error)
	CountUnread(ctx context.Context, userID int64) (int, error)
	MarkRead(ctx context.Context, userID, id int64) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, userID, id int64) error
}

type BookmarkRepository interface {
	Get(ctx context.Context, userID int64, ref models.EntityRef) (*models.Bookmark, error)
	Create(ctx context.Context, userID int64, ref models.EntityRef) (*models.Bookmark, error)
	Delete(ctx context.Context, userID int64, ref models.EntityRef) error
	List(ctx context.Context, userID int64, kind *models.EntityKind) ([]models.BookmarkListing, error)
	Count(ctx context.Context, userID int64) (int, error)
}

// EntityRepository resolves polymorphic references.
type EntityRepository interface {
	Exists(ctx context.Context, kind models.EntityKind, id int64) (bool, error)
	Visible(ctx context.Context, kind models.EntityKind, id int64) (bool, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) (*models.Report, error)
	GetByID(ctx context.Context, id int64) (*models.Report, error)
	List(ctx context.Context, status string, page pagination.PageRequest) ([]models.Report, int, error)
	UpdateStatus(ctx context.Context, id int64, status string, note *string) (*models.Report, error)
}

type SuggestionRepository interface {
	ListActive(ctx context.Context, cityID *int64, limit int) ([]models.Suggestion, error)
	List(ctx context.Context, page pagination.PageRequest) ([]models.Suggestion, int, error)
	Get(ctx context.Context, id int64) (*models.Suggestion, error)
	Create(ctx context.Context, s *models.Suggestion) (*models.Suggestion, error)
	Update(ctx context.Context, s *models.Suggestion) (*models.Suggestion, error)
	Delete(ctx context.Context, id int64) error
}

// CompanyStats summarises the public activity of a company.
type CompanyStats struct {
	RatingAverage float64 `json:"rating_average"`
	ReviewsCount  int64   `json:"reviews_count"`
	ActiveOffers  int64   `json:"active_offers"`
	TotalViews    int64   `json:"total_views"`
	Followers     int64   `json:"followers"`
}

// PlatformCounts are the admin dashboard totals.
type PlatformCounts struct {
	Students          int64 `json:"students"`
	CompanyAccounts   int64 `json:"company_accounts"`
	Admins            int64 `json:"admins"`
	BannedUsers       int64 `json:"banned_users"`
	Companies         int64 `json:"companies"`
	VerifiedCompanies int64 `json:"verified_companies"`
	PublishedOffers   int64 `json:"published_offers"`
	Applications      int64 `json:"applications"`
	PendingReviews    int64 `json:"pending_reviews"`
	OpenReports       int64 `json:"open_reports"`
}

// AnalyticsRepository records views and computes aggregates.
type AnalyticsRepository interface {
	RecordView(ctx context.Context, ref models.EntityRef, viewerID *int64, ip string) error
	CompanyStats(ctx context.Context, companyID int64) (*CompanyStats, error)
	ProfileViewsPerDay(ctx context.Context, companyID int64, since time.Time) ([]models.DailyCount, error)
	OfferViewsPerDay(ctx context.Context, companyID int64, since time.Time) ([]models.DailyCount, error)
	ApplicationsPerDay(ctx context.Context, companyID int64, since time.Time) ([]models.DailyCount, error)
	BookmarksPerDay(ctx context.Context, companyID int64, since time.Time) ([]models.DailyCount, error)
	CountOffersByStatus(ctx context.Context, companyID int64) ([]models.LabelCount, error)
	UnreadConversations(ctx context.Context, companyID int64) (int64, error)

	PlatformCounts(ctx context.Context) (*PlatformCounts, error)
	SignupsPerDay(ctx context.Context, since time.Time) ([]models.DailyCount, error)
	PlatformApplicationsPerDay(ctx context.Context, since time.Time) ([]models.DailyCount, error)
	OffersPublishedPerDay(ctx context.Context, since time.Time) ([]models.DailyCount, error)
}
