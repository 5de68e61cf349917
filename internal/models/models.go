package models

import (
	"time"
)

// User represents an account of any role.
type User struct {
	ID              int64      `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	Email           string     `json:"email" db:"email"`
	PasswordHash    *string    `json:"-" db:"password_hash"` // nil for social-only accounts
	Role            Role       `json:"role" db:"role"`
	Phone           *string    `json:"phone" db:"phone"`
	Bio             *string    `json:"bio" db:"bio"`
	AvatarPath      *string    `json:"avatar_path" db:"avatar_path"`
	Provider        *string    `json:"-" db:"provider"`
	ProviderID      *string    `json:"-" db:"provider_id"`
	EmailVerifiedAt *time.Time `json:"email_verified_at" db:"email_verified_at"`
	BannedAt        *time.Time `json:"banned_at,omitempty" db:"banned_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// IsBanned reports whether an admin has banned the account.
func (u *User) IsBanned() bool { return u.BannedAt != nil }

// StudentProfile extends a student account.
type StudentProfile struct {
	UserID         int64     `json:"user_id" db:"user_id"`
	Headline       *string   `json:"headline" db:"headline"`
	School         *string   `json:"school" db:"school"`
	Degree         *string   `json:"degree" db:"degree"`
	GraduationYear *int32    `json:"graduation_year" db:"graduation_year"`
	CityID         *int64    `json:"city_id" db:"city_id"`
	SkillIDs       []int64   `json:"skill_ids" db:"skill_ids"`
	LinkedInURL    *string   `json:"linkedin_url" db:"linkedin_url"`
	About          *string   `json:"about" db:"about"`
	CVPath         *string   `json:"cv_path" db:"cv_path"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type Country struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Code string `json:"code" db:"code"`
}

type City struct {
	ID        int64  `json:"id" db:"id"`
	CountryID int64  `json:"country_id" db:"country_id"`
	Name      string `json:"name" db:"name"`
}

type Sector struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Slug        string  `json:"slug" db:"slug"`
	Description *string `json:"description" db:"description"`
}

type Skill struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Slug string `json:"slug" db:"slug"`
}

// Company is owned by exactly one company-role user.
type Company struct {
	ID          int64      `json:"id" db:"id"`
	OwnerID     int64      `json:"owner_id" db:"owner_id"`
	Name        string     `json:"name" db:"name"`
	Slug        string     `json:"slug" db:"slug"`
	Description *string    `json:"description" db:"description"`
	SectorID    *int64     `json:"sector_id" db:"sector_id"`
	CityID      *int64     `json:"city_id" db:"city_id"`
	Size        *string    `json:"size" db:"size"`
	Website     *string    `json:"website" db:"website"`
	Email       *string    `json:"email" db:"email"`
	Phone       *string    `json:"phone" db:"phone"`
	FoundedYear *int32     `json:"founded_year" db:"founded_year"`
	LogoPath    *string    `json:"logo_path" db:"logo_path"`
	CoverPath   *string    `json:"cover_path" db:"cover_path"`
	VerifiedAt  *time.Time `json:"verified_at" db:"verified_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// CompanyListing is a company row joined with its reference labels and rating.
type CompanyListing struct {
	Company
	SectorName    *string `json:"sector_name" db:"sector_name"`
	CityName      *string `json:"city_name" db:"city_name"`
	RatingAverage float64 `json:"rating_average" db:"rating_average"`
	ReviewsCount  int64   `json:"reviews_count" db:"reviews_count"`
}

type CompanyMedia struct {
	ID        int64     `json:"id" db:"id"`
	CompanyID int64     `json:"company_id" db:"company_id"`
	Kind      MediaKind `json:"kind" db:"kind"`
	URL       string    `json:"url" db:"url"`
	Caption   *string   `json:"caption" db:"caption"`
	Position  int32     `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Publication struct {
	ID          int64      `json:"id" db:"id"`
	CompanyID   int64      `json:"company_id" db:"company_id"`
	Title       string     `json:"title" db:"title"`
	Body        string     `json:"body" db:"body"`
	PublishedAt *time.Time `json:"published_at" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// OrgNode is one box of a company organisation chart.
type OrgNode struct {
	ID        int64      `json:"id" db:"id"`
	CompanyID int64      `json:"company_id" db:"company_id"`
	ParentID  *int64     `json:"parent_id" db:"parent_id"`
	Name      string     `json:"name" db:"name"`
	Title     *string    `json:"title" db:"title"`
	Position  int32      `json:"position" db:"position"`
	Children  []*OrgNode `json:"children" db:"-"`
}

type HRContact struct {
	ID        int64     `json:"id" db:"id"`
	CompanyID int64     `json:"company_id" db:"company_id"`
	Name      string    `json:"name" db:"name"`
	Email     *string   `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	RoleTitle *string   `json:"role_title" db:"role_title"`
	IsPrimary bool      `json:"is_primary" db:"is_primary"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// JobOffer is a job or internship posted by a company.
type JobOffer struct {
	ID          int64       `json:"id" db:"id"`
	CompanyID   int64       `json:"company_id" db:"company_id"`
	Title       string      `json:"title" db:"title"`
	Slug        string      `json:"slug" db:"slug"`
	Description string      `json:"description" db:"description"`
	Type        OfferType   `json:"type" db:"type"`
	Status      OfferStatus `json:"status" db:"status"`
	IsActive    bool        `json:"is_active" db:"is_active"`
	SectorID    *int64      `json:"sector_id" db:"sector_id"`
	CityID      *int64      `json:"city_id" db:"city_id"`
	SalaryMin   *int64      `json:"salary_min" db:"salary_min"`
	SalaryMax   *int64      `json:"salary_max" db:"salary_max"`
	SkillIDs    []int64     `json:"skill_ids" db:"skill_ids"`
	ClosesAt    *time.Time  `json:"closes_at" db:"closes_at"`
	PublishedAt *time.Time  `json:"published_at" db:"published_at"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// Visible reports whether the offer can be shown on public pages and still
// accepts applications.
func (o *JobOffer) Visible() bool {
	return o.VisibleAt(time.Now())
}

// VisibleAt is Visible evaluated at now. It mirrors the public offer filter
// used by the listing queries.
func (o *JobOffer) VisibleAt(now time.Time) bool {
	return o.Status == OfferStatusPublished && o.IsActive && (o.ClosesAt == nil || o.ClosesAt.After(now))
}

// JobOfferListing is an offer row joined with its company summary.
type JobOfferListing struct {
	JobOffer
	CompanyName     string  `json:"company_name" db:"company_name"`
	CompanySlug     string  `json:"company_slug" db:"company_slug"`
	CompanyLogoPath *string `json:"company_logo_path" db:"company_logo_path"`
}

type Application struct {
	ID          int64             `json:"id" db:"id"`
	StudentID   int64             `json:"student_id" db:"student_id"`
	CompanyID   int64             `json:"company_id" db:"company_id"`
	JobOfferID  *int64            `json:"job_offer_id" db:"job_offer_id"` // nil for spontaneous applications
	CoverLetter *string           `json:"cover_letter" db:"cover_letter"`
	CVPath      *string           `json:"cv_path" db:"cv_path"`
	Status      ApplicationStatus `json:"status" db:"status"`
	StatusNote  *string           `json:"status_note" db:"status_note"`
	HRNotes     *string           `json:"hr_notes,omitempty" db:"hr_notes"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// ApplicationListing is an application joined with the names shown in lists.
type ApplicationListing struct {
	Application
	OfferTitle   *string `json:"offer_title" db:"offer_title"`
	CompanyName  string  `json:"company_name" db:"company_name"`
	StudentName  string  `json:"student_name" db:"student_name"`
	StudentEmail string  `json:"student_email" db:"student_email"`
}

type Review struct {
	ID           int64        `json:"id" db:"id"`
	CompanyID    int64        `json:"company_id" db:"company_id"`
	AuthorID     int64        `json:"author_id" db:"author_id"`
	Rating       int32        `json:"rating" db:"rating"`
	Title        string       `json:"title" db:"title"`
	Body         string       `json:"body" db:"body"`
	Status       ReviewStatus `json:"status" db:"status"`
	HelpfulCount int32        `json:"helpful_count" db:"helpful_count"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

type ReviewListing struct {
	Review
	AuthorName  string `json:"author_name" db:"author_name"`
	CompanyName string `json:"company_name" db:"company_name"`
}

// Conversation is a thread between a user and a company.
type Conversation struct {
	ID            int64              `json:"id" db:"id"`
	StudentID     int64              `json:"student_id" db:"student_id"`
	CompanyID     int64              `json:"company_id" db:"company_id"`
	Subject       string             `json:"subject" db:"subject"`
	Status        ConversationStatus `json:"status" db:"status"`
	LastMessageAt *time.Time         `json:"last_message_at" db:"last_message_at"`
	CreatedAt     time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" db:"updated_at"`
}

type ConversationListing struct {
	Conversation
	CompanyName    string `json:"company_name" db:"company_name"`
	CompanyOwnerID int64  `json:"company_owner_id" db:"company_owner_id"`
	StudentName    string `json:"student_name" db:"student_name"`
	UnreadCount    int64  `json:"unread_count" db:"unread_count"`
}

type Message struct {
	ID             int64      `json:"id" db:"id"`
	ConversationID int64      `json:"conversation_id" db:"conversation_id"`
	SenderID       int64      `json:"sender_id" db:"sender_id"`
	Body           string     `json:"body" db:"body"`
	AttachmentPath *string    `json:"attachment_path" db:"attachment_path"`
	ReadAt         *time.Time `json:"read_at" db:"read_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

type Notification struct {
	ID        int64          `json:"id" db:"id"`
	UserID    int64          `json:"user_id" db:"user_id"`
	Type      string         `json:"type" db:"type"`
	Title     string         `json:"title" db:"title"`
	Body      string         `json:"body" db:"body"`
	Data      map[string]any `json:"data" db:"data"`
	ReadAt    *time.Time     `json:"read_at" db:"read_at"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

type Bookmark struct {
	ID               int64      `json:"id" db:"id"`
	UserID           int64      `json:"user_id" db:"user_id"`
	BookmarkableType EntityKind `json:"bookmarkable_type" db:"bookmarkable_type"`
	BookmarkableID   int64      `json:"bookmarkable_id" db:"bookmarkable_id"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}

// Ref returns the bookmarked target.
func (b *Bookmark) Ref() EntityRef {
	return EntityRef{Kind: b.BookmarkableType, ID: b.BookmarkableID}
}

// BookmarkListing carries the label and slug of the bookmarked target.
type BookmarkListing struct {
	Bookmark
	Title string `json:"title" db:"title"`
	Slug  string `json:"slug" db:"slug"`
}

type Report struct {
	ID             int64      `json:"id" db:"id"`
	ReporterID     int64      `json:"reporter_id" db:"reporter_id"`
	ReportableType EntityKind `json:"reportable_type" db:"reportable_type"`
	ReportableID   int64      `json:"reportable_id" db:"reportable_id"`
	Reason         string     `json:"reason" db:"reason"`
	Status         string     `json:"status" db:"status"`
	AdminNote      *string    `json:"admin_note" db:"admin_note"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// Suggestion is an admin-curated "searched near you" entry.
type Suggestion struct {
	ID        int64     `json:"id" db:"id"`
	Label     string    `json:"label" db:"label"`
	CompanyID *int64    `json:"company_id" db:"company_id"`
	CityID    *int64    `json:"city_id" db:"city_id"`
	Position  int32     `json:"position" db:"position"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DailyCount is one bucket of a per-day time series.
type DailyCount struct {
	Day   time.Time `json:"day" db:"day"`
	Count int64     `json:"count" db:"count"`
}

// LabelCount is a count grouped by a label (status, offer title, ...).
type LabelCount struct {
	Label string `json:"label" db:"label"`
	Count int64  `json:"count" db:"count"`
}

// TrendingTerm is a search term ranked by frequency.
type TrendingTerm struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}
