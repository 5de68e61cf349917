package handlers

import (
	"context"
	"net/http"

	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// OfferHandler serves the public job board and the company's own offers.
type OfferHandler struct {
	Binder
	service services.OfferService
}

func NewOfferHandler(service services.OfferService, binder Binder) *OfferHandler {
	return &OfferHandler{Binder: binder, service: service}
}

// ListPublic godoc
// @Summary      List published job offers
// @Description  Only published offers that an admin has not deactivated are listed.
// @Tags         offers
// @Produce      json
// @Param        type query string false "job or internship"
// @Param        sector_id query int false "Sector filter"
// @Param        city_id query int false "City filter"
// @Param        q query string false "Title search"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.JobOfferListing]
// @Router       /offers [get]
func (h *OfferHandler) ListPublic(c *gin.Context) {
	var q dto.OfferListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	result, err := h.service.ListPublic(c.Request.Context(), &q, h.page(c))
	if err != nil {
		respondError(c, err, "list offers")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPublic godoc
// @Summary      Get a published offer
// @Tags         offers
// @Produce      json
// @Param        slug path string true "Offer slug"
// @Success      200 {object}  models.JobOfferListing
// @Failure      404 {object}  map[string]string "Not found"
// @Router       /offers/{slug} [get]
func (h *OfferHandler) GetPublic(c *gin.Context) {
	offer, err := h.service.GetPublic(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "retrieve offer")
		return
	}
	c.JSON(http.StatusOK, offer)
}

// Similar godoc
// @Summary      Offers similar to the given one
// @Tags         offers
// @Produce      json
// @Param        slug path string true "Offer slug"
// @Success      200 {array}   models.JobOfferListing
// @Router       /offers/{slug}/similar [get]
func (h *OfferHandler) Similar(c *gin.Context) {
	offers, err := h.service.Similar(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "list similar offers")
		return
	}
	c.JSON(http.StatusOK, offers)
}

// List godoc
// @Summary      List the company's offers
// @Tags         my-offers
// @Produce      json
// @Param        status query string false "draft, published or closed"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.JobOfferListing]
// @Router       /my-company/offers [get]
// @Security     BearerAuth
func (h *OfferHandler) List(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	var q dto.MyOfferListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	result, err := h.service.List(c.Request.Context(), companyID, &q, h.page(c))
	if err != nil {
		respondError(c, err, "list offers")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Create godoc
// @Summary      Create a draft offer
// @Tags         my-offers
// @Accept       json
// @Produce      json
// @Param        body body dto.OfferRequest true "Offer"
// @Success      201 {object}  models.JobOffer
// @Failure      422 {object}  map[string]any "Validation failed"
// @Router       /my-company/offers [post]
// @Security     BearerAuth
func (h *OfferHandler) Create(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	var req dto.OfferRequest
	if !h.bindJSON(c, &req) {
		return
	}
	offer, err := h.service.Create(c.Request.Context(), companyID, &req)
	if err != nil {
		respondError(c, err, "create offer")
		return
	}
	c.JSON(http.StatusCreated, offer)
}

// Get godoc
// @Summary      Get one of the company's offers
// @Tags         my-offers
// @Produce      json
// @Param        id path int true "Offer ID"
// @Success      200 {object}  models.JobOfferListing
// @Router       /my-company/offers/{id} [get]
// @Security     BearerAuth
func (h *OfferHandler) Get(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	offer, err := h.service.Get(c.Request.Context(), companyID, id)
	if err != nil {
		respondError(c, err, "retrieve offer")
		return
	}
	c.JSON(http.StatusOK, offer)
}

// Update godoc
// @Summary      Update an offer
// @Description  Closed offers can no longer be edited.
// @Tags         my-offers
// @Accept       json
// @Produce      json
// @Param        id path int true "Offer ID"
// @Param        body body dto.OfferRequest true "Offer"
// @Success      200 {object}  models.JobOffer
// @Failure      409 {object}  map[string]string "Offer is closed"
// @Router       /my-company/offers/{id} [put]
// @Security     BearerAuth
func (h *OfferHandler) Update(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	var req dto.OfferRequest
	if !h.bindJSON(c, &req) {
		return
	}
	offer, err := h.service.Update(c.Request.Context(), companyID, id, &req)
	if err != nil {
		respondError(c, err, "update offer")
		return
	}
	c.JSON(http.StatusOK, offer)
}

// Delete godoc
// @Summary      Delete an offer
// @Tags         my-offers
// @Param        id path int true "Offer ID"
// @Success      204 "Deleted"
// @Router       /my-company/offers/{id} [delete]
// @Security     BearerAuth
func (h *OfferHandler) Delete(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), companyID, id); err != nil {
		respondError(c, err, "delete offer")
		return
	}
	c.Status(http.StatusNoContent)
}

// Publish godoc
// @Summary      Publish a draft offer
// @Tags         my-offers
// @Param        id path int true "Offer ID"
// @Success      200 {object}  models.JobOffer
// @Failure      409 {object}  map[string]string "Offer is not a draft"
// @Router       /my-company/offers/{id}/publish [post]
// @Security     BearerAuth
func (h *OfferHandler) Publish(c *gin.Context) {
	h.action(c, h.service.Publish, "publish offer")
}

// Close godoc
// @Summary      Close a published offer
// @Tags         my-offers
// @Param        id path int true "Offer ID"
// @Success      200 {object}  models.JobOffer
// @Failure      409 {object}  map[string]string "Offer is not published"
// @Router       /my-company/offers/{id}/close [post]
// @Security     BearerAuth
func (h *OfferHandler) Close(c *gin.Context) {
	h.action(c, h.service.Close, "close offer")
}

// Duplicate godoc
// @Summary      Copy an offer into a new draft
// @Tags         my-offers
// @Param        id path int true "Offer ID"
// @Success      201 {object}  models.JobOffer
// @Router       /my-company/offers/{id}/duplicate [post]
// @Security     BearerAuth
func (h *OfferHandler) Duplicate(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	offer, err := h.service.Duplicate(c.Request.Context(), companyID, id)
	if err != nil {
		respondError(c, err, "duplicate offer")
		return
	}
	c.JSON(http.StatusCreated, offer)
}

type offerAction func(ctx context.Context, companyID, id int64) (*models.JobOffer, error)

func (h *OfferHandler) action(c *gin.Context, fn offerAction, what string) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	offer, err := fn(c.Request.Context(), companyID, id)
	if err != nil {
		respondError(c, err, what)
		return
	}
	c.JSON(http.StatusOK, offer)
}
