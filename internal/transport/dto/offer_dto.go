package dto

import (
	"time"

	"professionals-api/internal/models"
)

// OfferRequest is used to create and update a job offer.
type OfferRequest struct {
	Title       string           `json:"title" validate:"required,max=200"`
	Description string           `json:"description" validate:"required,max=20000"`
	Type        models.OfferType `json:"type" validate:"required,oneof=job internship"`
	SectorID    *int64           `json:"sector_id" validate:"omitempty,gt=0"`
	CityID      *int64           `json:"city_id" validate:"omitempty,gt=0"`
	SalaryMin   *int64           `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax   *int64           `json:"salary_max" validate:"omitempty,gte=0"`
	ClosesAt    *time.Time       `json:"closes_at"`
	SkillIDs    []int64          `json:"skill_ids" validate:"omitempty,max=30,dive,gt=0"`
}

// OfferListQuery filters the public offer board.
type OfferListQuery struct {
	Type     string `form:"type" validate:"omitempty,oneof=job internship"`
	SectorID *int64 `form:"sector_id" validate:"omitempty,gt=0"`
	CityID   *int64 `form:"city_id" validate:"omitempty,gt=0"`
	Q        string `form:"q" validate:"omitempty,max=100"`
}

type MyOfferListQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=draft published closed"`
}

type AdminOfferListQuery struct {
	Status    string `form:"status" validate:"omitempty,oneof=draft published closed"`
	CompanyID *int64 `form:"company_id" validate:"omitempty,gt=0"`
	Q         string `form:"q" validate:"omitempty,max=100"`
}
