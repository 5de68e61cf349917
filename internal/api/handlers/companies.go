package handlers

import (
	"net/http"

	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// CompanyHandler serves the public company pages and the owner's profile.
type CompanyHandler struct {
	Binder
	companies services.CompanyService
	content   services.CompanyContentService
	offers    services.OfferService
	reviews   services.ReviewService
}

func NewCompanyHandler(
	companies services.CompanyService,
	content services.CompanyContentService,
	offers services.OfferService,
	reviews services.ReviewService,
	binder Binder,
) *CompanyHandler {
	return &CompanyHandler{Binder: binder, companies: companies, content: content, offers: offers, reviews: reviews}
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        sector_id query int false "Sector filter"
// @Param        city_id query int false "City filter"
// @Param        size query string false "Size bracket"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.CompanyListing]
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	var q dto.CompanyListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	result, err := h.companies.List(c.Request.Context(), &q, h.page(c))
	if err != nil {
		respondError(c, err, "list companies")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Show godoc
// @Summary      Get a company by slug
// @Tags         companies
// @Produce      json
// @Param        slug path string true "Company slug"
// @Success      200 {object}  models.CompanyListing
// @Failure      404 {object}  map[string]string "Not found"
// @Router       /companies/{slug} [get]
func (h *CompanyHandler) Show(c *gin.Context) {
	company, ok := slugCompany(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, company)
}

// Media godoc
// @Summary      Company media gallery
// @Tags         companies
// @Produce      json
// @Param        slug path string true "Company slug"
// @Success      200 {array}   models.CompanyMedia
// @Router       /companies/{slug}/media [get]
func (h *CompanyHandler) Media(c *gin.Context) {
	company, ok := slugCompany(c)
	if !ok {
		return
	}
	items, err := h.content.ListMedia(c.Request.Context(), company.ID)
	if err != nil {
		respondError(c, err, "list media")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Org godoc
// @Summary      Company organisation chart
// @Tags         companies
// @Produce      json
// @Param        slug path string true "Company slug"
// @Success      200 {array}   models.OrgNode
// @Router       /companies/{slug}/org [get]
func (h *CompanyHandler) Org(c *gin.Context) {
	company, ok := slugCompany(c)
	if !ok {
		return
	}
	tree, err := h.content.OrgTree(c.Request.Context(), company.ID)
	if err != nil {
		respondError(c, err, "load org chart")
		return
	}
	c.JSON(http.StatusOK, tree)
}

// Publications godoc
// @Summary      Published company posts
// @Tags         companies
// @Produce      json
// @Param        slug path string true "Company slug"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.Publication]
// @Router       /companies/{slug}/publications [get]
func (h *CompanyHandler) Publications(c *gin.Context) {
	company, ok := slugCompany(c)
	if !ok {
		return
	}
	result, err := h.content.ListPublications(c.Request.Context(), company.ID, true, h.page(c))
	if err != nil {
		respondError(c, err, "list publications")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Publication godoc
// @Summary      One published company post
// @Tags         companies
// @Produce      json
// @Param        slug path string true "Company slug"
// @Param        pub path int true "Publication ID"
// @Success      200 {object}  models.Publication
// @Router       /companies/{slug}/publications/{pub} [get]
func (h *CompanyHandler) Publication(c *gin.Context) {
	company, ok := slugCompany(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "pub")
	if !ok {
		return
	}
	pub, err := h.content.GetPublication(c.Request.Context(), company.ID, id, true)
	if err != nil {
		respondError(c, err, "retrieve publication")
		return
	}
	c.JSON(http.StatusOK, pub)
}

// HRContacts godoc
// @Summary      Company HR contacts
// @Tags         companies
// @Produce      json
// @Param        slug path string true "Company slug"
// @Success      200 {array}   models.HRContact
// @Router       /companies/{slug}/hr-contacts [get]
// @Security     BearerAuth
func (h *CompanyHandler) HRContacts(c *gin.Context) {
	company, ok := slugCompany(c)
	if !ok {
		return
	}
	contacts, err := h.content.ListHRContacts(c.Request.Context(), company.ID)
	if err != nil {
		respondError(c, err, "list HR contacts")
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// Offers godoc
// @Summary      Open offers of a company
// @Tags         companies
// @Produce      json
// @Param        slug path string true "Company slug"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.JobOfferListing]
// @Router       /companies/{slug}/offers [get]
func (h *CompanyHandler) Offers(c *gin.Context) {
	company, ok := slugCompany(c)
	if !ok {
		return
	}
	result, err := h.offers.ListForCompany(c.Request.Context(), company.ID, h.page(c))
	if err != nil {
		respondError(c, err, "list offers")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Reviews godoc
// @Summary      Approved reviews of a company
// @Tags         companies
// @Produce      json
// @Param        slug path string true "Company slug"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.ReviewListing]
// @Router       /companies/{slug}/reviews [get]
func (h *CompanyHandler) Reviews(c *gin.Context) {
	company, ok := slugCompany(c)
	if !ok {
		return
	}
	result, err := h.reviews.ListForCompany(c.Request.Context(), company.ID, h.page(c))
	if err != nil {
		respondError(c, err, "list reviews")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Stats godoc
// @Summary      Public company statistics
// @Tags         companies
// @Produce      json
// @Param        slug path string true "Company slug"
// @Success      200 {object}  storage.CompanyStats
// @Router       /companies/{slug}/stats [get]
func (h *CompanyHandler) Stats(c *gin.Context) {
	company, ok := slugCompany(c)
	if !ok {
		return
	}
	stats, err := h.companies.Stats(c.Request.Context(), company.ID)
	if err != nil {
		respondError(c, err, "compute company stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// --- Owner ---

// Mine godoc
// @Summary      Get the caller's company
// @Tags         my-company
// @Produce      json
// @Success      200 {object}  models.Company
// @Failure      404 {object}  map[string]string "No company registered"
// @Router       /my-company [get]
// @Security     BearerAuth
func (h *CompanyHandler) Mine(c *gin.Context) {
	owner, ok := userID(c)
	if !ok {
		return
	}
	company, err := h.companies.Mine(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err, "retrieve company")
		return
	}
	c.JSON(http.StatusOK, company)
}

// Create godoc
// @Summary      Register the caller's company
// @Tags         my-company
// @Accept       json
// @Produce      json
// @Param        body body dto.CompanyRequest true "Company"
// @Success      201 {object}  models.Company
// @Failure      409 {object}  map[string]string "Company already registered"
// @Router       /my-company [post]
// @Security     BearerAuth
func (h *CompanyHandler) Create(c *gin.Context) {
	owner, ok := userID(c)
	if !ok {
		return
	}
	var req dto.CompanyRequest
	if !h.bindJSON(c, &req) {
		return
	}
	company, err := h.companies.Create(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, err, "create company")
		return
	}
	c.JSON(http.StatusCreated, company)
}

// Update godoc
// @Summary      Update the caller's company
// @Tags         my-company
// @Accept       json
// @Produce      json
// @Param        body body dto.CompanyRequest true "Company"
// @Success      200 {object}  models.Company
// @Router       /my-company [put]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	owner, ok := userID(c)
	if !ok {
		return
	}
	var req dto.CompanyRequest
	if !h.bindJSON(c, &req) {
		return
	}
	company, err := h.companies.Update(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, err, "update company")
		return
	}
	c.JSON(http.StatusOK, company)
}

// Delete godoc
// @Summary      Delete the caller's company
// @Tags         my-company
// @Success      204 "Deleted"
// @Router       /my-company [delete]
// @Security     BearerAuth
func (h *CompanyHandler) Delete(c *gin.Context) {
	owner, ok := userID(c)
	if !ok {
		return
	}
	if err := h.companies.Delete(c.Request.Context(), owner); err != nil {
		respondError(c, err, "delete company")
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadLogo godoc
// @Summary      Upload the company logo
// @Tags         my-company
// @Accept       multipart/form-data
// @Produce      json
// @Param        logo formData file true "Image"
// @Success      200 {object}  models.Company
// @Router       /my-company/logo [post]
// @Security     BearerAuth
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	owner, ok := userID(c)
	if !ok {
		return
	}
	data, ok := h.upload(c, "logo")
	if !ok {
		return
	}
	company, err := h.companies.UploadLogo(c.Request.Context(), owner, data)
	if err != nil {
		respondError(c, err, "upload logo")
		return
	}
	c.JSON(http.StatusOK, company)
}

// UploadCover godoc
// @Summary      Upload the company cover image
// @Tags         my-company
// @Accept       multipart/form-data
// @Produce      json
// @Param        cover formData file true "Image"
// @Success      200 {object}  models.Company
// @Router       /my-company/cover [post]
// @Security     BearerAuth
func (h *CompanyHandler) UploadCover(c *gin.Context) {
	owner, ok := userID(c)
	if !ok {
		return
	}
	data, ok := h.upload(c, "cover")
	if !ok {
		return
	}
	company, err := h.companies.UploadCover(c.Request.Context(), owner, data)
	if err != nil {
		respondError(c, err, "upload cover")
		return
	}
	c.JSON(http.StatusOK, company)
}
