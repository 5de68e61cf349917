package handlers

import (
	"net/http"

	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// BookmarkHandler serves a student's saved companies and offers.
type BookmarkHandler struct {
	Binder
	service services.BookmarkService
}

func NewBookmarkHandler(service services.BookmarkService, binder Binder) *BookmarkHandler {
	return &BookmarkHandler{Binder: binder, service: service}
}

// List godoc
// @Summary      List bookmarks
// @Tags         bookmarks
// @Produce      json
// @Param        type query string false "company or job_offer"
// @Success      200 {array}   models.BookmarkListing
// @Router       /bookmarks [get]
// @Security     BearerAuth
func (h *BookmarkHandler) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var q dto.BookmarkListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	items, err := h.service.List(c.Request.Context(), uid, &q)
	if err != nil {
		respondError(c, err, "list bookmarks")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Store godoc
// @Summary      Bookmark a company or offer
// @Description  An existing bookmark is returned with 200.
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        body body dto.BookmarkRequest true "Target"
// @Success      201 {object}  models.Bookmark
// @Success      200 {object}  models.Bookmark
// @Failure      404 {object}  map[string]string "Target not found"
// @Router       /bookmarks [post]
// @Security     BearerAuth
func (h *BookmarkHandler) Store(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req dto.BookmarkRequest
	if !h.bindJSON(c, &req) {
		return
	}
	bm, created, err := h.service.Store(c.Request.Context(), uid, &req)
	if err != nil {
		respondError(c, err, "create bookmark")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, bm)
}

// Destroy godoc
// @Summary      Remove a bookmark
// @Tags         bookmarks
// @Accept       json
// @Param        body body dto.BookmarkRequest true "Target"
// @Success      204 "Removed"
// @Failure      404 {object}  map[string]string "Not bookmarked"
// @Router       /bookmarks [delete]
// @Security     BearerAuth
func (h *BookmarkHandler) Destroy(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req dto.BookmarkRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.service.Destroy(c.Request.Context(), uid, &req); err != nil {
		respondError(c, err, "delete bookmark")
		return
	}
	c.Status(http.StatusNoContent)
}

// Toggle godoc
// @Summary      Toggle a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        body body dto.BookmarkRequest true "Target"
// @Success      200 {object}  dto.ToggleBookmarkResponse
// @Router       /bookmarks/toggle [post]
// @Security     BearerAuth
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req dto.BookmarkRequest
	if !h.bindJSON(c, &req) {
		return
	}
	bookmarked, err := h.service.Toggle(c.Request.Context(), uid, &req)
	if err != nil {
		respondError(c, err, "toggle bookmark")
		return
	}
	c.JSON(http.StatusOK, dto.ToggleBookmarkResponse{Bookmarked: bookmarked})
}
