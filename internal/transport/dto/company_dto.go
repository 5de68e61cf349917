package dto

import "professionals-api/internal/models"

// CompanyRequest is used to create and update a company profile.
type CompanyRequest struct {
	Name        string  `json:"name" validate:"required,max=150"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	SectorID    *int64  `json:"sector_id" validate:"omitempty,gt=0"`
	CityID      *int64  `json:"city_id" validate:"omitempty,gt=0"`
	Size        *string `json:"size" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 500+"`
	Website     *string `json:"website" validate:"omitempty,url,max=255"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	FoundedYear *int32  `json:"founded_year" validate:"omitempty,gte=1800,lte=2100"`
}

// CompanyListQuery filters the public company directory.
type CompanyListQuery struct {
	SectorID *int64 `form:"sector_id" validate:"omitempty,gt=0"`
	CityID   *int64 `form:"city_id" validate:"omitempty,gt=0"`
	Size     string `form:"size" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 500+"`
}

type AdminCompanyListQuery struct {
	Q        string `form:"q" validate:"omitempty,max=100"`
	Verified *bool  `form:"verified"`
}

type MediaRequest struct {
	Kind    models.MediaKind `json:"kind" validate:"required,oneof=image video tour_3d"`
	URL     string           `json:"url" validate:"required,url,max=500"`
	Caption *string          `json:"caption" validate:"omitempty,max=255"`
}

// ReorderMediaRequest lists every media id of the company in the new order.
type ReorderMediaRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

type PublicationRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required,max=20000"`
}

type OrgNodeRequest struct {
	Name     string  `json:"name" validate:"required,max=150"`
	Title    *string `json:"title" validate:"omitempty,max=150"`
	ParentID *int64  `json:"parent_id" validate:"omitempty,gt=0"`
}

type OrgNodePosition struct {
	ID       int64  `json:"id" validate:"required,gt=0"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,gt=0"`
	Position int32  `json:"position" validate:"gte=0"`
}

type ReorderOrgRequest struct {
	Nodes []OrgNodePosition `json:"nodes" validate:"required,min=1,dive"`
}

type HRContactRequest struct {
	Name      string  `json:"name" validate:"required,max=150"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	RoleTitle *string `json:"role_title" validate:"omitempty,max=150"`
}
