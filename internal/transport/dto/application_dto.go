package dto

import "professionals-api/internal/models"

// ApplyRequest is a student application to a published offer.
type ApplyRequest struct {
	StudentID   int64   `json:"-"` // Set from auth context
	JobOfferID  int64   `json:"job_offer_id" validate:"required,gt=0"`
	CompanyID   int64   `json:"company_id" validate:"required,gt=0"`
	CoverLetter *string `json:"cover_letter" validate:"omitempty,max=10000"`
	CVPath      *string `json:"cv_path" validate:"omitempty,max=500"`
}

// SpontaneousApplicationRequest is an application sent to a company without an offer.
type SpontaneousApplicationRequest struct {
	StudentID   int64   `json:"-"`
	CompanyID   int64   `json:"company_id" validate:"required,gt=0"`
	CoverLetter *string `json:"cover_letter" validate:"omitempty,max=10000"`
	CVPath      *string `json:"cv_path" validate:"omitempty,max=500"`
}

type ApplicationListQuery struct {
	Status  string `form:"status" validate:"omitempty,oneof=pending shortlisted interview accepted rejected"`
	OfferID *int64 `form:"offer_id" validate:"omitempty,gt=0"`
}

type ApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=shortlisted interview accepted rejected"`
	Note   *string                  `json:"note" validate:"omitempty,max=2000"`
}

type ApplicationNotesRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=10000"`
}

type ApplicationStatsResponse struct {
	ByStatus []models.LabelCount `json:"by_status"`
	ByOffer  []models.LabelCount `json:"by_offer"`
}
