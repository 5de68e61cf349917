package handlers

import (
	"net/http"

	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	Binder
	service services.ReviewService
}

func NewReviewHandler(service services.ReviewService, binder Binder) *ReviewHandler {
	return &ReviewHandler{Binder: binder, service: service}
}

// Create godoc
// @Summary      Review a company
// @Description  One review per student and company. New reviews wait for moderation.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        slug path string true "Company slug"
// @Param        body body dto.ReviewRequest true "Review"
// @Success      201 {object}  models.Review
// @Failure      409 {object}  map[string]string "Already reviewed"
// @Router       /companies/{slug}/reviews [post]
// @Security     BearerAuth
func (h *ReviewHandler) Create(c *gin.Context) {
	authorID, ok := userID(c)
	if !ok {
		return
	}
	company, ok := slugCompany(c)
	if !ok {
		return
	}
	var req dto.ReviewRequest
	if !h.bindJSON(c, &req) {
		return
	}
	review, err := h.service.Create(c.Request.Context(), authorID, company.ID, &req)
	if err != nil {
		respondError(c, err, "create review")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// Update godoc
// @Summary      Edit your review
// @Description  The review goes back to moderation.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id path int true "Review ID"
// @Param        body body dto.ReviewRequest true "Review"
// @Success      200 {object}  models.Review
// @Failure      403 {object}  map[string]string "Not the author"
// @Router       /reviews/{id} [put]
// @Security     BearerAuth
func (h *ReviewHandler) Update(c *gin.Context) {
	authorID, ok := userID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ReviewRequest
	if !h.bindJSON(c, &req) {
		return
	}
	review, err := h.service.Update(c.Request.Context(), authorID, id, &req)
	if err != nil {
		respondError(c, err, "update review")
		return
	}
	c.JSON(http.StatusOK, review)
}

// Delete godoc
// @Summary      Delete your review
// @Tags         reviews
// @Param        id path int true "Review ID"
// @Success      204 "Deleted"
// @Router       /reviews/{id} [delete]
// @Security     BearerAuth
func (h *ReviewHandler) Delete(c *gin.Context) {
	authorID, ok := userID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), authorID, id); err != nil {
		respondError(c, err, "delete review")
		return
	}
	c.Status(http.StatusNoContent)
}

// Vote godoc
// @Summary      Toggle a helpful vote
// @Tags         reviews
// @Produce      json
// @Param        id path int true "Review ID"
// @Success      200 {object}  dto.VoteResponse
// @Failure      403 {object}  map[string]string "Own review"
// @Failure      404 {object}  map[string]string "Not found"
// @Router       /reviews/{id}/vote [post]
// @Security     BearerAuth
func (h *ReviewHandler) Vote(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.service.ToggleVote(c.Request.Context(), uid, id)
	if err != nil {
		respondError(c, err, "vote on review")
		return
	}
	c.JSON(http.StatusOK, resp)
}
