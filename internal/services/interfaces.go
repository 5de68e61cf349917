package services

import (
	"context"
	"time"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/social"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"
)

// --- Infrastructure dependencies ---

// SessionStore deny-lists tokens and keeps ban markers.
type SessionStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	RevokeUserSessions(ctx context.Context, userID int64, ttl time.Duration) error
	Ban(ctx context.Context, userID int64) error
	Unban(ctx context.Context, userID int64) error
}

// TokenStore keeps one-time password reset and OAuth state tokens.
type TokenStore interface {
	StoreResetToken(ctx context.Context, email, token string, ttl time.Duration) error
	ConsumeResetToken(ctx context.Context, email, token string) (bool, error)
	StoreOAuthState(ctx context.Context, state, provider string, ttl time.Duration) error
	ConsumeOAuthState(ctx context.Context, state string) (string, bool, error)
}

// SearchCache ranks search terms and caches autocomplete results.
type SearchCache interface {
	IncrementSearch(ctx context.Context, term string) error
	TopSearches(ctx context.Context, n int) ([]models.TrendingTerm, error)
	GetJSON(ctx context.Context, key string, dst any) error
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

// ViewDeduper reports whether a viewer is seen on a target for the first time in a window.
type ViewDeduper interface {
	FirstView(ctx context.Context, target, viewer string, ttl time.Duration) (bool, error)
}

// FileStore persists uploaded files.
type FileStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SocialProviders looks up a configured OAuth2 provider.
type SocialProviders interface {
	Get(name string) (social.Provider, bool)
}

// Notifier records in-app notifications for other services.
type Notifier interface {
	Notify(ctx context.Context, userID int64, kind, title, body string, data map[string]any)
}

// --- Services ---

// AuthService handles registration, login and account recovery.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	SocialRedirect(ctx context.Context, provider string) (string, error)
	SocialCallback(ctx context.Context, req *dto.SocialCallbackRequest) (*dto.AuthResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*models.User, error)
	ResendVerification(ctx context.Context, userID int64) error
}

// ProfileService manages the caller's own account.
type ProfileService interface {
	Get(ctx context.Context, userID int64) (*models.User, error)
	Update(ctx context.Context, req *dto.UpdateMeRequest) (*models.User, error)
	UploadAvatar(ctx context.Context, userID int64, data []byte) (*models.User, error)
	ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error
	Delete(ctx context.Context, req *dto.DeleteAccountRequest) error
	GetStudentProfile(ctx context.Context, userID int64) (*models.StudentProfile, error)
	UpdateStudentProfile(ctx context.Context, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error)
	UploadCV(ctx context.Context, userID int64, data []byte) (*models.StudentProfile, error)
}

type ReferenceService interface {
	ListCountries(ctx context.Context) ([]models.Country, error)
	ListCities(ctx context.Context, countryID *int64) ([]models.City, error)
	GetCity(ctx context.Context, id int64) (*models.City, error)
	ListSectors(ctx context.Context) ([]models.Sector, error)
	GetSector(ctx context.Context, id int64) (*models.Sector, error)
	ListSkills(ctx context.Context, query string) ([]models.Skill, error)
	CreateSector(ctx context.Context, req *dto.SectorRequest) (*models.Sector, error)
	UpdateSector(ctx context.Context, id int64, req *dto.SectorRequest) (*models.Sector, error)
	DeleteSector(ctx context.Context, id int64) error
}

type SearchService interface {
	Search(ctx context.Context, q *dto.SearchQuery, page pagination.PageRequest) (pagination.PageResult[models.CompanyListing], error)
	Autocomplete(ctx context.Context, q string) ([]string, error)
	Suggestions(ctx context.Context, q *dto.SuggestionQuery) ([]models.Suggestion, error)
	Trending(ctx context.Context) ([]models.TrendingTerm, error)

	ListSuggestions(ctx context.Context, page pagination.PageRequest) (pagination.PageResult[models.Suggestion], error)
	CreateSuggestion(ctx context.Context, req *dto.SuggestionRequest) (*models.Suggestion, error)
	UpdateSuggestion(ctx context.Context, id int64, req *dto.SuggestionRequest) (*models.Suggestion, error)
	DeleteSuggestion(ctx context.Context, id int64) error
}

// CompanyService manages company profiles. Owner-scoped methods take the
// caller's user id and fail with ErrNotFound when the caller has no company.
type CompanyService interface {
	List(ctx context.Context, q *dto.CompanyListQuery, page pagination.PageRequest) (pagination.PageResult[models.CompanyListing], error)
	GetBySlug(ctx context.Context, slug string) (*models.CompanyListing, error)
	Stats(ctx context.Context, companyID int64) (*storage.CompanyStats, error)

	Mine(ctx context.Context, ownerID int64) (*models.Company, error)
	Create(ctx context.Context, ownerID int64, req *dto.CompanyRequest) (*models.Company, error)
	Update(ctx context.Context, ownerID int64, req *dto.CompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, ownerID int64) error
	UploadLogo(ctx context.Context, ownerID int64, data []byte) (*models.Company, error)
	UploadCover(ctx context.Context, ownerID int64, data []byte) (*models.Company, error)

	AdminList(ctx context.Context, q *dto.AdminCompanyListQuery, page pagination.PageRequest) (pagination.PageResult[models.CompanyListing], error)
	AdminGet(ctx context.Context, id int64) (*models.CompanyListing, error)
	AdminUpdate(ctx context.Context, id int64, req *dto.CompanyRequest) (*models.Company, error)
	SetVerified(ctx context.Context, id int64, verified bool) (*models.Company, error)
	AdminDelete(ctx context.Context, id int64) error
}

// CompanyContentService manages media, publications, the org chart and HR
// contacts. Every method is scoped to companyID.
type CompanyContentService interface {
	ListMedia(ctx context.Context, companyID int64) ([]models.CompanyMedia, error)
	AddMedia(ctx context.Context, companyID int64, req *dto.MediaRequest) (*models.CompanyMedia, error)
	UpdateMedia(ctx context.Context, companyID, id int64, req *dto.MediaRequest) (*models.CompanyMedia, error)
	DeleteMedia(ctx context.Context, companyID, id int64) error
	ReorderMedia(ctx context.Context, companyID int64, ids []int64) ([]models.CompanyMedia, error)

	ListPublications(ctx context.Context, companyID int64, publishedOnly bool, page pagination.PageRequest) (pagination.PageResult[models.Publication], error)
	GetPublication(ctx context.Context, companyID, id int64, publishedOnly bool) (*models.Publication, error)
	CreatePublication(ctx context.Context, companyID int64, req *dto.PublicationRequest) (*models.Publication, error)
	UpdatePublication(ctx context.Context, companyID, id int64, req *dto.PublicationRequest) (*models.Publication, error)
	SetPublicationPublished(ctx context.Context, companyID, id int64, published bool) (*models.Publication, error)
	DeletePublication(ctx context.Context, companyID, id int64) error

	OrgTree(ctx context.Context, companyID int64) ([]*models.OrgNode, error)
	CreateOrgNode(ctx context.Context, companyID int64, req *dto.OrgNodeRequest) (*models.OrgNode, error)
	UpdateOrgNode(ctx context.Context, companyID, id int64, req *dto.OrgNodeRequest) (*models.OrgNode, error)
	DeleteOrgNode(ctx context.Context, companyID, id int64) error
	ReorderOrg(ctx context.Context, companyID int64, req *dto.ReorderOrgRequest) ([]*models.OrgNode, error)

	ListHRContacts(ctx context.Context, companyID int64) ([]models.HRContact, error)
	GetHRContact(ctx context.Context, companyID, id int64) (*models.HRContact, error)
	CreateHRContact(ctx context.Context, companyID int64, req *dto.HRContactRequest) (*models.HRContact, error)
	UpdateHRContact(ctx context.Context, companyID, id int64, req *dto.HRContactRequest) (*models.HRContact, error)
	DeleteHRContact(ctx context.Context, companyID, id int64) error
	SetPrimaryHRContact(ctx context.Context, companyID, id int64) ([]models.HRContact, error)
}

type OfferService interface {
	ListPublic(ctx context.Context, q *dto.OfferListQuery, page pagination.PageRequest) (pagination.PageResult[models.JobOfferListing], error)
	GetPublic(ctx context.Context, slug string) (*models.JobOfferListing, error)
	Similar(ctx context.Context, slug string) ([]models.JobOfferListing, error)
	ListForCompany(ctx context.Context, companyID int64, page pagination.PageRequest) (pagination.PageResult[models.JobOfferListing], error)

	List(ctx context.Context, companyID int64, q *dto.MyOfferListQuery, page pagination.PageRequest) (pagination.PageResult[models.JobOfferListing], error)
	Create(ctx context.Context, companyID int64, req *dto.OfferRequest) (*models.JobOffer, error)
	Get(ctx context.Context, companyID, id int64) (*models.JobOfferListing, error)
	Update(ctx context.Context, companyID, id int64, req *dto.OfferRequest) (*models.JobOffer, error)
	Delete(ctx context.Context, companyID, id int64) error
	Publish(ctx context.Context, companyID, id int64) (*models.JobOffer, error)
	Close(ctx context.Context, companyID, id int64) (*models.JobOffer, error)
	Duplicate(ctx context.Context, companyID, id int64) (*models.JobOffer, error)

	AdminList(ctx context.Context, q *dto.AdminOfferListQuery, page pagination.PageRequest) (pagination.PageResult[models.JobOfferListing], error)
	AdminGet(ctx context.Context, id int64) (*models.JobOfferListing, error)
	AdminUpdate(ctx context.Context, id int64, req *dto.OfferRequest) (*models.JobOffer, error)
	SetActive(ctx context.Context, id int64, active bool) (*models.JobOffer, error)
	AdminDelete(ctx context.Context, id int64) error
}

type ApplicationService interface {
	ListForStudent(ctx context.Context, studentID int64, q *dto.ApplicationListQuery, page pagination.PageRequest) (pagination.PageResult[models.ApplicationListing], error)
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	ApplySpontaneous(ctx context.Context, req *dto.SpontaneousApplicationRequest) (*models.Application, error)
	GetForStudent(ctx context.Context, studentID, id int64) (*models.ApplicationListing, error)
	Withdraw(ctx context.Context, studentID, id int64) error

	ListForCompany(ctx context.Context, companyID int64, q *dto.ApplicationListQuery, page pagination.PageRequest) (pagination.PageResult[models.ApplicationListing], error)
	GetForCompany(ctx context.Context, companyID, id int64) (*models.ApplicationListing, error)
	UpdateStatus(ctx context.Context, companyID, id int64, req *dto.ApplicationStatusRequest) (*models.Application, error)
	UpdateNotes(ctx context.Context, companyID, id int64, req *dto.ApplicationNotesRequest) (*models.Application, error)
	Stats(ctx context.Context, companyID int64) (*dto.ApplicationStatsResponse, error)
}

type ReviewService interface {
	ListForCompany(ctx context.Context, companyID int64, page pagination.PageRequest) (pagination.PageResult[models.ReviewListing], error)
	Create(ctx context.Context, authorID, companyID int64, req *dto.ReviewRequest) (*models.Review, error)
	Update(ctx context.Context, authorID, id int64, req *dto.ReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, authorID, id int64) error
	ToggleVote(ctx context.Context, userID, id int64) (*dto.VoteResponse, error)

	AdminList(ctx context.Context, q *dto.ReviewListQuery, page pagination.PageRequest) (pagination.PageResult[models.ReviewListing], error)
	Approve(ctx context.Context, id int64) (*models.Review, error)
	Reject(ctx context.Context, id int64) (*models.Review, error)
	AdminDelete(ctx context.Context, id int64) error
}

// Attachment is an optional file sent with a chat message.
type Attachment struct {
	Data []byte
}

type ChatService interface {
	List(ctx context.Context, userID int64, page pagination.PageRequest) (pagination.PageResult[models.ConversationListing], error)
	Start(ctx context.Context, userID int64, req *dto.StartConversationRequest) (*models.ConversationListing, error)
	Get(ctx context.Context, userID, id int64) (*models.ConversationListing, error)
	SetStatus(ctx context.Context, userID, id int64, status models.ConversationStatus) (*models.Conversation, error)
	Messages(ctx context.Context, userID, id int64, page pagination.PageRequest) (pagination.PageResult[models.Message], error)
	Send(ctx context.Context, userID, id int64, req *dto.SendMessageRequest, attachment *Attachment) (*models.Message, error)
	MarkRead(ctx context.Context, userID, id int64) (int64, error)
}

type NotificationService interface {
	Notifier
	List(ctx context.Context, userID int64, unreadOnly bool, page pagination.PageRequest) (pagination.PageResult[models.Notification], error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
	MarkRead(ctx context.Context, userID, id int64) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, userID, id int64) error
}

type BookmarkService interface {
	List(ctx context.Context, userID int64, q *dto.BookmarkListQuery) ([]models.BookmarkListing, error)
	// Store returns the bookmark and whether it was newly created.
	Store(ctx context.Context, userID int64, req *dto.BookmarkRequest) (*models.Bookmark, bool, error)
	Destroy(ctx context.Context, userID int64, req *dto.BookmarkRequest) error
	Toggle(ctx context.Context, userID int64, req *dto.BookmarkRequest) (bool, error)
}

type AnalyticsService interface {
	TrackView(ctx context.Context, req *dto.TrackViewRequest, viewerID *int64, ip string) (bool, error)
	CompanyAnalytics(ctx context.Context, companyID int64, period models.Period) (*dto.CompanyAnalyticsResponse, error)
	CompanyDashboard(ctx context.Context, companyID int64) (*dto.CompanyDashboardResponse, error)
	MeDashboard(ctx context.Context, userID int64, role models.Role) (*dto.MeDashboardResponse, error)
	AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error)
	AdminStats(ctx context.Context, period models.Period) (*dto.AdminStatsResponse, error)
}

// UserAdminService backs the admin user management screens.
type UserAdminService interface {
	List(ctx context.Context, q *dto.UserListQuery, page pagination.PageRequest) (pagination.PageResult[models.User], error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, req *dto.AdminUserUpdateRequest) (*models.User, error)
	Ban(ctx context.Context, adminID, id int64) (*models.User, error)
	Restore(ctx context.Context, id int64) (*models.User, error)
	Delete(ctx context.Context, adminID, id int64) error
}

type ReportService interface {
	Create(ctx context.Context, reporterID int64, req *dto.ReportRequest) (*models.Report, error)
	List(ctx context.Context, q *dto.ReportListQuery, page pagination.PageRequest) (pagination.PageResult[models.Report], error)
	Get(ctx context.Context, id int64) (*models.Report, error)
	UpdateStatus(ctx context.Context, id int64, req *dto.ReportStatusRequest) (*models.Report, error)
}
