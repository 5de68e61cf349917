package dto

import (
	"time"

	"professionals-api/internal/models"

	"github.com/dustin/go-humanize"
)

type StartConversationRequest struct {
	CompanyID int64  `json:"company_id" validate:"required,gt=0"`
	Subject   string `json:"subject" validate:"required,max=200"`
}

type ConversationStatusRequest struct {
	Status models.ConversationStatus `json:"status" validate:"required,oneof=closed archived"`
}

// SendMessageRequest is bound from JSON or a multipart form with an optional attachment.
type SendMessageRequest struct {
	Body string `json:"body" form:"body" validate:"required,max=5000"`
}

// ChatMessageResponse adds a human readable age to a message.
type ChatMessageResponse struct {
	models.Message
	CreatedAgo string `json:"created_ago"`
}

func NewChatMessageResponse(m models.Message, now time.Time) ChatMessageResponse {
	return ChatMessageResponse{Message: m, CreatedAgo: humanize.RelTime(m.CreatedAt, now, "ago", "from now")}
}

type MarkedResponse struct {
	Updated int64 `json:"updated"`
}
