package dto

import (
	"time"

	"professionals-api/internal/models"

	"github.com/dustin/go-humanize"
)

type NotificationListQuery struct {
	Unread bool `form:"unread"`
}

type NotificationResponse struct {
	models.Notification
	CreatedAgo string `json:"created_ago"`
}

func NewNotificationResponse(n models.Notification, now time.Time) NotificationResponse {
	return NotificationResponse{Notification: n, CreatedAgo: humanize.RelTime(n.CreatedAt, now, "ago", "from now")}
}

type CountResponse struct {
	Count int `json:"count"`
}
