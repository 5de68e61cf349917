package dto

// BookmarkRequest addresses a bookmarkable company or job offer.
type BookmarkRequest struct {
	BookmarkableType string `json:"bookmarkable_type" validate:"required,oneof=company job_offer"`
	BookmarkableID   int64  `json:"bookmarkable_id" validate:"required,gt=0"`
}

type BookmarkListQuery struct {
	Type string `form:"type" validate:"omitempty,oneof=company job_offer"`
}

type ToggleBookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
}
