package handlers

import (
	"net/http"
	"time"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	Binder
	service services.NotificationService
	now     func() time.Time
}

func NewNotificationHandler(service services.NotificationService, binder Binder) *NotificationHandler {
	return &NotificationHandler{Binder: binder, service: service, now: time.Now}
}

// List godoc
// @Summary      List the caller's notifications
// @Tags         notifications
// @Produce      json
// @Param        unread query bool false "Only unread"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[dto.NotificationResponse]
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *NotificationHandler) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var q dto.NotificationListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	result, err := h.service.List(c.Request.Context(), uid, q.Unread, h.page(c))
	if err != nil {
		respondError(c, err, "list notifications")
		return
	}
	now := h.now()
	c.JSON(http.StatusOK, pagination.Map(result, func(n models.Notification) dto.NotificationResponse {
		return dto.NewNotificationResponse(n, now)
	}))
}

// UnreadCount godoc
// @Summary      Count unread notifications
// @Tags         notifications
// @Produce      json
// @Success      200 {object}  dto.CountResponse
// @Router       /notifications/unread-count [get]
// @Security     BearerAuth
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	n, err := h.service.UnreadCount(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, "count notifications")
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: n})
}

// MarkRead godoc
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Param        id path int true "Notification ID"
// @Success      200 {object}  dto.NotificationResponse
// @Router       /notifications/{id}/read [post]
// @Security     BearerAuth
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	n, err := h.service.MarkRead(c.Request.Context(), uid, id)
	if err != nil {
		respondError(c, err, "mark notification read")
		return
	}
	c.JSON(http.StatusOK, dto.NewNotificationResponse(*n, h.now()))
}

// MarkAllRead godoc
// @Summary      Mark every notification read
// @Tags         notifications
// @Produce      json
// @Success      200 {object}  dto.MarkedResponse
// @Router       /notifications/read-all [post]
// @Security     BearerAuth
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	n, err := h.service.MarkAllRead(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, "mark notifications read")
		return
	}
	c.JSON(http.StatusOK, dto.MarkedResponse{Updated: n})
}

// Delete godoc
// @Summary      Delete a notification
// @Tags         notifications
// @Param        id path int true "Notification ID"
// @Success      204 "Deleted"
// @Router       /notifications/{id} [delete]
// @Security     BearerAuth
func (h *NotificationHandler) Delete(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), uid, id); err != nil {
		respondError(c, err, "delete notification")
		return
	}
	c.Status(http.StatusNoContent)
}
