package dto

type ReviewRequest struct {
	Rating int32  `json:"rating" validate:"required,min=1,max=5"`
	Title  string `json:"title" validate:"required,max=150"`
	Body   string `json:"body" validate:"required,max=5000"`
}

type ReviewListQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=pending approved rejected"`
}

// VoteResponse is the state after a helpful-vote toggle.
type VoteResponse struct {
	Voted        bool  `json:"voted"`
	HelpfulCount int32 `json:"helpful_count"`
}
