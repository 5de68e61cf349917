package dto

import "professionals-api/internal/models"

type UserListQuery struct {
	Role   string `form:"role" validate:"omitempty,oneof=student company admin"`
	Q      string `form:"q" validate:"omitempty,max=100"`
	Banned *bool  `form:"banned"`
}

type AdminUserUpdateRequest struct {
	Name  string      `json:"name" validate:"required,max=100"`
	Email string      `json:"email" validate:"required,email,max=255"`
	Role  models.Role `json:"role" validate:"required,oneof=student company admin"`
}

type SectorRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type SuggestionRequest struct {
	Label     string `json:"label" validate:"required,max=150"`
	CompanyID *int64 `json:"company_id" validate:"omitempty,gt=0"`
	CityID    *int64 `json:"city_id" validate:"omitempty,gt=0"`
	Position  int32  `json:"position" validate:"gte=0"`
	Active    *bool  `json:"active"`
}

type ReportRequest struct {
	ReportableType string `json:"reportable_type" validate:"required,oneof=company job_offer review user"`
	ReportableID   int64  `json:"reportable_id" validate:"required,gt=0"`
	Reason         string `json:"reason" validate:"required,max=2000"`
}

type ReportListQuery struct {
	Status string `form:"status" validate:"omitempty,max=50"`
}

type ReportStatusRequest struct {
	Status    string  `json:"status" validate:"required,max=50"`
	AdminNote *string `json:"admin_note" validate:"omitempty,max=2000"`
}
