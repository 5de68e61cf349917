package handlers

import (
	"net/http"

	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the back office. Sectors and suggestions live on
// ReferenceHandler and SearchHandler.
type AdminHandler struct {
	Binder
	analytics services.AnalyticsService
	users     services.UserAdminService
	companies services.CompanyService
	offers    services.OfferService
	reviews   services.ReviewService
	reports   services.ReportService
}

// AdminServices groups the services the back office drives.
type AdminServices struct {
	Analytics services.AnalyticsService
	Users     services.UserAdminService
	Companies services.CompanyService
	Offers    services.OfferService
	Reviews   services.ReviewService
	Reports   services.ReportService
}

func NewAdminHandler(s AdminServices, binder Binder) *AdminHandler {
	return &AdminHandler{
		Binder:    binder,
		analytics: s.Analytics,
		users:     s.Users,
		companies: s.Companies,
		offers:    s.Offers,
		reviews:   s.Reviews,
		reports:   s.Reports,
	}
}

// Dashboard godoc
// @Summary      Platform counters and trending searches
// @Tags         admin
// @Produce      json
// @Success      200 {object}  dto.AdminDashboardResponse
// @Router       /admin/dashboard [get]
// @Security     BearerAuth
func (h *AdminHandler) Dashboard(c *gin.Context) {
	resp, err := h.analytics.AdminDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "load dashboard")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Stats godoc
// @Summary      Platform activity per day
// @Tags         admin
// @Produce      json
// @Param        period query string false "7days, 30days or year"
// @Success      200 {object}  dto.AdminStatsResponse
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *AdminHandler) Stats(c *gin.Context) {
	period, ok := h.period(c)
	if !ok {
		return
	}
	resp, err := h.analytics.AdminStats(c.Request.Context(), period)
	if err != nil {
		respondError(c, err, "compute stats")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --- Users ---

// ListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        role query string false "Role filter"
// @Param        q query string false "Name or email"
// @Param        banned query bool false "Banned filter"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.User]
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var q dto.UserListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	result, err := h.users.List(c.Request.Context(), &q, h.page(c))
	if err != nil {
		respondError(c, err, "list users")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUser godoc
// @Summary      Get a user
// @Tags         admin
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object}  models.User
// @Router       /admin/users/{id} [get]
// @Security     BearerAuth
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        body body dto.AdminUserUpdateRequest true "User"
// @Success      200 {object}  models.User
// @Router       /admin/users/{id} [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AdminUserUpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}
	user, err := h.users.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// BanUser godoc
// @Summary      Ban a user
// @Description  Live sessions stop working immediately.
// @Tags         admin
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object}  models.User
// @Failure      409 {object}  map[string]string "Cannot ban yourself"
// @Router       /admin/users/{id}/ban [post]
// @Security     BearerAuth
func (h *AdminHandler) BanUser(c *gin.Context) {
	adminID, ok := userID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.users.Ban(c.Request.Context(), adminID, id)
	if err != nil {
		respondError(c, err, "ban user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// RestoreUser godoc
// @Summary      Lift a ban
// @Tags         admin
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object}  models.User
// @Router       /admin/users/{id}/restore [post]
// @Security     BearerAuth
func (h *AdminHandler) RestoreUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.users.Restore(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "restore user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         admin
// @Param        id path int true "User ID"
// @Success      204 "Deleted"
// @Failure      409 {object}  map[string]string "Cannot delete yourself"
// @Router       /admin/users/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID, ok := userID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), adminID, id); err != nil {
		respondError(c, err, "delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Companies ---

// ListCompanies godoc
// @Summary      List companies
// @Tags         admin
// @Produce      json
// @Param        q query string false "Name search"
// @Param        verified query bool false "Verified filter"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.CompanyListing]
// @Router       /admin/companies [get]
// @Security     BearerAuth
func (h *AdminHandler) ListCompanies(c *gin.Context) {
	var q dto.AdminCompanyListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	result, err := h.companies.AdminList(c.Request.Context(), &q, h.page(c))
	if err != nil {
		respondError(c, err, "list companies")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCompany godoc
// @Summary      Get a company
// @Tags         admin
// @Produce      json
// @Param        id path int true "Company ID"
// @Success      200 {object}  models.CompanyListing
// @Router       /admin/companies/{id} [get]
// @Security     BearerAuth
func (h *AdminHandler) GetCompany(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	company, err := h.companies.AdminGet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve company")
		return
	}
	c.JSON(http.StatusOK, company)
}

// UpdateCompany godoc
// @Summary      Update a company
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Company ID"
// @Param        body body dto.CompanyRequest true "Company"
// @Success      200 {object}  models.Company
// @Router       /admin/companies/{id} [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateCompany(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CompanyRequest
	if !h.bindJSON(c, &req) {
		return
	}
	company, err := h.companies.AdminUpdate(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update company")
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *AdminHandler) setVerified(c *gin.Context, verified bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	company, err := h.companies.SetVerified(c.Request.Context(), id, verified)
	if err != nil {
		respondError(c, err, "update company verification")
		return
	}
	c.JSON(http.StatusOK, company)
}

// VerifyCompany godoc
// @Summary      Mark a company verified
// @Tags         admin
// @Param        id path int true "Company ID"
// @Success      200 {object}  models.Company
// @Router       /admin/companies/{id}/verify [post]
// @Security     BearerAuth
func (h *AdminHandler) VerifyCompany(c *gin.Context) { h.setVerified(c, true) }

// UnverifyCompany godoc
// @Summary      Clear a company's verified mark
// @Tags         admin
// @Param        id path int true "Company ID"
// @Success      200 {object}  models.Company
// @Router       /admin/companies/{id}/unverify [post]
// @Security     BearerAuth
func (h *AdminHandler) UnverifyCompany(c *gin.Context) { h.setVerified(c, false) }

// DeleteCompany godoc
// @Summary      Delete a company
// @Tags         admin
// @Param        id path int true "Company ID"
// @Success      204 "Deleted"
// @Router       /admin/companies/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteCompany(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.companies.AdminDelete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete company")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Offers ---

// ListOffers godoc
// @Summary      List every offer
// @Tags         admin
// @Produce      json
// @Param        status query string false "Status filter"
// @Param        company_id query int false "Company filter"
// @Param        q query string false "Title search"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.JobOfferListing]
// @Router       /admin/offers [get]
// @Security     BearerAuth
func (h *AdminHandler) ListOffers(c *gin.Context) {
	var q dto.AdminOfferListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	result, err := h.offers.AdminList(c.Request.Context(), &q, h.page(c))
	if err != nil {
		respondError(c, err, "list offers")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetOffer godoc
// @Summary      Get an offer
// @Tags         admin
// @Produce      json
// @Param        id path int true "Offer ID"
// @Success      200 {object}  models.JobOfferListing
// @Router       /admin/offers/{id} [get]
// @Security     BearerAuth
func (h *AdminHandler) GetOffer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	offer, err := h.offers.AdminGet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve offer")
		return
	}
	c.JSON(http.StatusOK, offer)
}

// UpdateOffer godoc
// @Summary      Update an offer
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Offer ID"
// @Param        body body dto.OfferRequest true "Offer"
// @Success      200 {object}  models.JobOffer
// @Router       /admin/offers/{id} [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateOffer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.OfferRequest
	if !h.bindJSON(c, &req) {
		return
	}
	offer, err := h.offers.AdminUpdate(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update offer")
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *AdminHandler) setActive(c *gin.Context, active bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	offer, err := h.offers.SetActive(c.Request.Context(), id, active)
	if err != nil {
		respondError(c, err, "update offer")
		return
	}
	c.JSON(http.StatusOK, offer)
}

// ActivateOffer godoc
// @Summary      Make an offer visible again
// @Tags         admin
// @Param        id path int true "Offer ID"
// @Success      200 {object}  models.JobOffer
// @Router       /admin/offers/{id}/activate [post]
// @Security     BearerAuth
func (h *AdminHandler) ActivateOffer(c *gin.Context) { h.setActive(c, true) }

// DeactivateOffer godoc
// @Summary      Hide an offer from the public board
// @Tags         admin
// @Param        id path int true "Offer ID"
// @Success      200 {object}  models.JobOffer
// @Router       /admin/offers/{id}/deactivate [post]
// @Security     BearerAuth
func (h *AdminHandler) DeactivateOffer(c *gin.Context) { h.setActive(c, false) }

// DeleteOffer godoc
// @Summary      Delete an offer
// @Tags         admin
// @Param        id path int true "Offer ID"
// @Success      204 "Deleted"
// @Router       /admin/offers/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteOffer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.offers.AdminDelete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete offer")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Reviews ---

// ListReviews godoc
// @Summary      Moderation queue
// @Tags         admin
// @Produce      json
// @Param        status query string false "pending, approved or rejected"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.ReviewListing]
// @Router       /admin/reviews [get]
// @Security     BearerAuth
func (h *AdminHandler) ListReviews(c *gin.Context) {
	var q dto.ReviewListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	result, err := h.reviews.AdminList(c.Request.Context(), &q, h.page(c))
	if err != nil {
		respondError(c, err, "list reviews")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) moderate(c *gin.Context, approve bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var (
		review *models.Review
		err    error
	)
	if approve {
		review, err = h.reviews.Approve(c.Request.Context(), id)
	} else {
		review, err = h.reviews.Reject(c.Request.Context(), id)
	}
	if err != nil {
		respondError(c, err, "moderate review")
		return
	}
	c.JSON(http.StatusOK, review)
}

// ApproveReview godoc
// @Summary      Approve a review
// @Description  The author is notified.
// @Tags         admin
// @Param        id path int true "Review ID"
// @Success      200 {object}  models.Review
// @Router       /admin/reviews/{id}/approve [post]
// @Security     BearerAuth
func (h *AdminHandler) ApproveReview(c *gin.Context) { h.moderate(c, true) }

// RejectReview godoc
// @Summary      Reject a review
// @Tags         admin
// @Param        id path int true "Review ID"
// @Success      200 {object}  models.Review
// @Router       /admin/reviews/{id}/reject [post]
// @Security     BearerAuth
func (h *AdminHandler) RejectReview(c *gin.Context) { h.moderate(c, false) }

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         admin
// @Param        id path int true "Review ID"
// @Success      204 "Deleted"
// @Router       /admin/reviews/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.reviews.AdminDelete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete review")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Reports ---

// ListReports godoc
// @Summary      List reports
// @Tags         admin
// @Produce      json
// @Param        status query string false "Status filter"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.Report]
// @Router       /admin/reports [get]
// @Security     BearerAuth
func (h *AdminHandler) ListReports(c *gin.Context) {
	var q dto.ReportListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	result, err := h.reports.List(c.Request.Context(), &q, h.page(c))
	if err != nil {
		respondError(c, err, "list reports")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetReport godoc
// @Summary      Get a report
// @Tags         admin
// @Produce      json
// @Param        id path int true "Report ID"
// @Success      200 {object}  models.Report
// @Router       /admin/reports/{id} [get]
// @Security     BearerAuth
func (h *AdminHandler) GetReport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	report, err := h.reports.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateReportStatus godoc
// @Summary      Resolve or reopen a report
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Report ID"
// @Param        body body dto.ReportStatusRequest true "Status"
// @Success      200 {object}  models.Report
// @Router       /admin/reports/{id}/status [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateReportStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ReportStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}
	report, err := h.reports.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update report")
		return
	}
	c.JSON(http.StatusOK, report)
}
