package models

import "fmt"

// --- Role Enum ---
type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// --- Offer Type Enum ---
type OfferType string

const (
	OfferTypeJob        OfferType = "job"
	OfferTypeInternship OfferType = "internship"
)

// --- Offer Status Enum ---
type OfferStatus string

const (
	OfferStatusDraft     OfferStatus = "draft"
	OfferStatusPublished OfferStatus = "published"
	OfferStatusClosed    OfferStatus = "closed"
)

// CanTransitionTo reports whether an offer may move from s to next.
// draft -> published -> closed; closed is terminal.
func (s OfferStatus) CanTransitionTo(next OfferStatus) bool {
	switch s {
	case OfferStatusDraft:
		return next == OfferStatusPublished
	case OfferStatusPublished:
		return next == OfferStatusClosed
	default:
		return false
	}
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationInterview   ApplicationStatus = "interview"
	ApplicationAccepted    ApplicationStatus = "accepted"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// AllApplicationStatuses lists statuses in pipeline order.
var AllApplicationStatuses = []ApplicationStatus{
	ApplicationPending, ApplicationShortlisted, ApplicationInterview, ApplicationAccepted, ApplicationRejected,
}

// Terminal reports whether no further status change is allowed.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationAccepted || s == ApplicationRejected
}

// CanTransitionTo reports whether a company may move an application from s to next.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s.Terminal() || next == ApplicationPending || next == s {
		return false
	}
	switch next {
	case ApplicationShortlisted, ApplicationInterview, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// --- Conversation Status Enum ---
type ConversationStatus string

const (
	ConversationOpen     ConversationStatus = "open"
	ConversationClosed   ConversationStatus = "closed"
	ConversationArchived ConversationStatus = "archived"
)

// CanTransitionTo reports whether a conversation may move from s to next.
func (s ConversationStatus) CanTransitionTo(next ConversationStatus) bool {
	switch s {
	case ConversationOpen:
		return next == ConversationClosed || next == ConversationArchived
	case ConversationClosed:
		return next == ConversationArchived
	default:
		return false
	}
}

// --- Review Status Enum ---
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// --- Media Kind Enum ---
type MediaKind string

const (
	MediaImage  MediaKind = "image"
	MediaVideo  MediaKind = "video"
	MediaTour3D MediaKind = "tour_3d"
)

// --- Notification Types ---
const (
	NotificationApplicationReceived  = "application.received"
	NotificationApplicationStatus    = "application.status_changed"
	NotificationApplicationWithdrawn = "application.withdrawn"
	NotificationMessageReceived      = "message.received"
	NotificationReviewApproved       = "review.approved"
	NotificationReviewRejected       = "review.rejected"
)

// --- Period Enum ---
type Period string

const (
	Period7Days  Period = "7days"
	Period30Days Period = "30days"
	PeriodYear   Period = "year"
)

// ParsePeriod accepts "" (defaults to 30days) or one of the known periods.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return Period30Days, nil
	case Period7Days, Period30Days, PeriodYear:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Days returns the number of days covered by the period.
func (p Period) Days() int {
	switch p {
	case Period7Days:
		return 7
	case PeriodYear:
		return 365
	default:
		return 30
	}
}

// CompanySizes are the accepted values of Company.Size.
var CompanySizes = []string{"1-10", "11-50", "51-200", "201-500", "500+"}
