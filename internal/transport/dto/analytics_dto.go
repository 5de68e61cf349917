package dto

import (
	"professionals-api/internal/models"
	"professionals-api/internal/storage"
)

type TrackViewRequest struct {
	ViewableType string `json:"viewable_type" validate:"required,oneof=company job_offer"`
	ViewableID   int64  `json:"viewable_id" validate:"required,gt=0"`
}

type TrackViewResponse struct {
	Counted bool `json:"counted"`
}

type PeriodQuery struct {
	Period string `form:"period" validate:"omitempty,oneof=7days 30days year"`
}

// Series is a per-day count with its total.
type Series struct {
	Total int64               `json:"total"`
	Days  []models.DailyCount `json:"days"`
}

// NewSeries sums days into Total.
func NewSeries(days []models.DailyCount) Series {
	s := Series{Days: days}
	if s.Days == nil {
		s.Days = []models.DailyCount{}
	}
	for _, d := range days {
		s.Total += d.Count
	}
	return s
}

type CompanyAnalyticsResponse struct {
	Period       models.Period `json:"period"`
	ProfileViews Series        `json:"profile_views"`
	OfferViews   Series        `json:"offer_views"`
	Applications Series        `json:"applications"`
	Bookmarks    Series        `json:"bookmarks"`
}

type CompanyDashboardResponse struct {
	Company             *models.Company     `json:"company"`
	OffersByStatus      []models.LabelCount `json:"offers_by_status"`
	ApplicationsByState []models.LabelCount `json:"applications_by_status"`
	ViewsLast30Days     int64               `json:"views_last_30_days"`
	RatingAverage       float64             `json:"rating_average"`
	ReviewsCount        int64               `json:"reviews_count"`
	UnreadConversations int64               `json:"unread_conversations"`
}

type StudentDashboardResponse struct {
	ApplicationsByStatus []models.LabelCount      `json:"applications_by_status"`
	Bookmarks            int                      `json:"bookmarks"`
	UnreadNotifications  int                      `json:"unread_notifications"`
	RecommendedOffers    []models.JobOfferListing `json:"recommended_offers"`
}

// MeDashboardResponse holds the block matching the caller's role.
type MeDashboardResponse struct {
	Role                models.Role               `json:"role"`
	UnreadNotifications int                       `json:"unread_notifications"`
	Student             *StudentDashboardResponse `json:"student,omitempty"`
	Company             *CompanyDashboardResponse `json:"company,omitempty"`
}

type AdminDashboardResponse struct {
	Counts         *storage.PlatformCounts `json:"counts"`
	TrendingSearch []models.TrendingTerm   `json:"trending_searches"`
}

type AdminStatsResponse struct {
	Period          models.Period `json:"period"`
	Signups         Series        `json:"signups"`
	Applications    Series        `json:"applications"`
	OffersPublished Series        `json:"offers_published"`
}
