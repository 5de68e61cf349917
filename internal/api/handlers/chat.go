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

// ChatHandler serves conversations between students and companies.
type ChatHandler struct {
	Binder
	service services.ChatService
	now     func() time.Time
}

func NewChatHandler(service services.ChatService, binder Binder) *ChatHandler {
	return &ChatHandler{Binder: binder, service: service, now: time.Now}
}

func (h *ChatHandler) ids(c *gin.Context) (int64, int64, bool) {
	uid, ok := userID(c)
	if !ok {
		return 0, 0, false
	}
	id, ok := parseID(c, "id")
	return uid, id, ok
}

// List godoc
// @Summary      List the caller's conversations
// @Tags         chat
// @Produce      json
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.ConversationListing]
// @Router       /conversations [get]
// @Security     BearerAuth
func (h *ChatHandler) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	result, err := h.service.List(c.Request.Context(), uid, h.page(c))
	if err != nil {
		respondError(c, err, "list conversations")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Start godoc
// @Summary      Open a conversation with a company
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body body dto.StartConversationRequest true "Conversation"
// @Success      201 {object}  models.ConversationListing
// @Failure      422 {object}  map[string]any "Unknown or own company"
// @Router       /conversations [post]
// @Security     BearerAuth
func (h *ChatHandler) Start(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req dto.StartConversationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	conv, err := h.service.Start(c.Request.Context(), uid, &req)
	if err != nil {
		respondError(c, err, "start conversation")
		return
	}
	c.JSON(http.StatusCreated, conv)
}

// Get godoc
// @Summary      Get a conversation
// @Tags         chat
// @Produce      json
// @Param        id path int true "Conversation ID"
// @Success      200 {object}  models.ConversationListing
// @Failure      403 {object}  map[string]string "Not a participant"
// @Router       /conversations/{id} [get]
// @Security     BearerAuth
func (h *ChatHandler) Get(c *gin.Context) {
	uid, id, ok := h.ids(c)
	if !ok {
		return
	}
	conv, err := h.service.Get(c.Request.Context(), uid, id)
	if err != nil {
		respondError(c, err, "retrieve conversation")
		return
	}
	c.JSON(http.StatusOK, conv)
}

// SetStatus godoc
// @Summary      Close or archive a conversation
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        id path int true "Conversation ID"
// @Param        body body dto.ConversationStatusRequest true "Status"
// @Success      200 {object}  models.Conversation
// @Failure      409 {object}  map[string]string "Invalid transition"
// @Router       /conversations/{id}/status [put]
// @Security     BearerAuth
func (h *ChatHandler) SetStatus(c *gin.Context) {
	uid, id, ok := h.ids(c)
	if !ok {
		return
	}
	var req dto.ConversationStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}
	conv, err := h.service.SetStatus(c.Request.Context(), uid, id, req.Status)
	if err != nil {
		respondError(c, err, "update conversation")
		return
	}
	c.JSON(http.StatusOK, conv)
}

// Messages godoc
// @Summary      List messages, newest first
// @Tags         chat
// @Produce      json
// @Param        id path int true "Conversation ID"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[dto.ChatMessageResponse]
// @Router       /conversations/{id}/messages [get]
// @Security     BearerAuth
func (h *ChatHandler) Messages(c *gin.Context) {
	uid, id, ok := h.ids(c)
	if !ok {
		return
	}
	result, err := h.service.Messages(c.Request.Context(), uid, id, h.page(c))
	if err != nil {
		respondError(c, err, "list messages")
		return
	}
	now := h.now()
	c.JSON(http.StatusOK, pagination.Map(result, func(m models.Message) dto.ChatMessageResponse {
		return dto.NewChatMessageResponse(m, now)
	}))
}

// Send godoc
// @Summary      Send a message
// @Description  Accepts JSON or a multipart form with an optional attachment file.
// @Tags         chat
// @Accept       json,mpfd
// @Produce      json
// @Param        id path int true "Conversation ID"
// @Param        body formData string true "Message body"
// @Param        attachment formData file false "Attachment"
// @Success      201 {object}  dto.ChatMessageResponse
// @Failure      409 {object}  map[string]string "Conversation not open"
// @Router       /conversations/{id}/messages [post]
// @Security     BearerAuth
func (h *ChatHandler) Send(c *gin.Context) {
	uid, id, ok := h.ids(c)
	if !ok {
		return
	}
	var req dto.SendMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if !h.validate(c, &req) {
		return
	}

	var attachment *services.Attachment
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		data, present, ok := h.optionalUpload(c, "attachment")
		if !ok {
			return
		}
		if present {
			attachment = &services.Attachment{Data: data}
		}
	}

	msg, err := h.service.Send(c.Request.Context(), uid, id, &req, attachment)
	if err != nil {
		respondError(c, err, "send message")
		return
	}
	c.JSON(http.StatusCreated, dto.NewChatMessageResponse(*msg, h.now()))
}

// MarkRead godoc
// @Summary      Mark the other side's messages as read
// @Tags         chat
// @Produce      json
// @Param        id path int true "Conversation ID"
// @Success      200 {object}  dto.MarkedResponse
// @Router       /conversations/{id}/read [post]
// @Security     BearerAuth
func (h *ChatHandler) MarkRead(c *gin.Context) {
	uid, id, ok := h.ids(c)
	if !ok {
		return
	}
	n, err := h.service.MarkRead(c.Request.Context(), uid, id)
	if err != nil {
		respondError(c, err, "mark messages read")
		return
	}
	c.JSON(http.StatusOK, dto.MarkedResponse{Updated: n})
}
