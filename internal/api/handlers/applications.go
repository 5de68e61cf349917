package handlers

import (
	"net/http"

	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler serves both sides of an application: the student who
// sends it and the company that reviews it.
type ApplicationHandler struct {
	Binder
	service services.ApplicationService
}

func NewApplicationHandler(service services.ApplicationService, binder Binder) *ApplicationHandler {
	return &ApplicationHandler{Binder: binder, service: service}
}

// ListMine godoc
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Param        status query string false "Status filter"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.ApplicationListing]
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	studentID, ok := userID(c)
	if !ok {
		return
	}
	var q dto.ApplicationListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	result, err := h.service.ListForStudent(c.Request.Context(), studentID, &q, h.page(c))
	if err != nil {
		respondError(c, err, "list applications")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Apply godoc
// @Summary      Apply to a published offer
// @Description  The CV defaults to the one on the student profile.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body body dto.ApplyRequest true "Application"
// @Success      201 {object}  models.Application
// @Failure      409 {object}  map[string]string "Already applied"
// @Failure      422 {object}  map[string]any "Validation failed"
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	studentID, ok := userID(c)
	if !ok {
		return
	}
	var req dto.ApplyRequest
	if !h.bindJSON(c, &req) {
		return
	}
	req.StudentID = studentID

	app, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create application")
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ApplySpontaneous godoc
// @Summary      Send a spontaneous application to a company
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body body dto.SpontaneousApplicationRequest true "Application"
// @Success      201 {object}  models.Application
// @Router       /applications/spontaneous [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ApplySpontaneous(c *gin.Context) {
	studentID, ok := userID(c)
	if !ok {
		return
	}
	var req dto.SpontaneousApplicationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	req.StudentID = studentID

	app, err := h.service.ApplySpontaneous(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create application")
		return
	}
	c.JSON(http.StatusCreated, app)
}

// GetMine godoc
// @Summary      Get one of the caller's applications
// @Tags         applications
// @Produce      json
// @Param        id path int true "Application ID"
// @Success      200 {object}  models.ApplicationListing
// @Failure      404 {object}  map[string]string "Not found"
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMine(c *gin.Context) {
	studentID, ok := userID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	app, err := h.service.GetForStudent(c.Request.Context(), studentID, id)
	if err != nil {
		respondError(c, err, "retrieve application")
		return
	}
	c.JSON(http.StatusOK, app)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Tags         applications
// @Param        id path int true "Application ID"
// @Success      204 "Withdrawn"
// @Failure      409 {object}  map[string]string "Application already accepted"
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	studentID, ok := userID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Withdraw(c.Request.Context(), studentID, id); err != nil {
		respondError(c, err, "withdraw application")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListForCompany godoc
// @Summary      List applications received by the company
// @Tags         company-applications
// @Produce      json
// @Param        status query string false "Status filter"
// @Param        offer_id query int false "Offer filter"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.ApplicationListing]
// @Router       /my-company/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForCompany(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	var q dto.ApplicationListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	result, err := h.service.ListForCompany(c.Request.Context(), companyID, &q, h.page(c))
	if err != nil {
		respondError(c, err, "list applications")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetForCompany godoc
// @Summary      Get a received application
// @Tags         company-applications
// @Produce      json
// @Param        id path int true "Application ID"
// @Success      200 {object}  models.ApplicationListing
// @Router       /my-company/applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetForCompany(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	app, err := h.service.GetForCompany(c.Request.Context(), companyID, id)
	if err != nil {
		respondError(c, err, "retrieve application")
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdateStatus godoc
// @Summary      Move an application through the hiring pipeline
// @Description  accepted and rejected are terminal. The student is notified.
// @Tags         company-applications
// @Accept       json
// @Produce      json
// @Param        id path int true "Application ID"
// @Param        body body dto.ApplicationStatusRequest true "New status"
// @Success      200 {object}  models.Application
// @Failure      409 {object}  map[string]string "Invalid transition"
// @Router       /my-company/applications/{id}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	var req dto.ApplicationStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}
	app, err := h.service.UpdateStatus(c.Request.Context(), companyID, id, &req)
	if err != nil {
		respondError(c, err, "update application status")
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdateNotes godoc
// @Summary      Set the private HR notes of an application
// @Tags         company-applications
// @Accept       json
// @Produce      json
// @Param        id path int true "Application ID"
// @Param        body body dto.ApplicationNotesRequest true "Notes"
// @Success      200 {object}  models.Application
// @Router       /my-company/applications/{id}/notes [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateNotes(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	var req dto.ApplicationNotesRequest
	if !h.bindJSON(c, &req) {
		return
	}
	app, err := h.service.UpdateNotes(c.Request.Context(), companyID, id, &req)
	if err != nil {
		respondError(c, err, "update application notes")
		return
	}
	c.JSON(http.StatusOK, app)
}

// Stats godoc
// @Summary      Application counts by status and by offer
// @Tags         company-applications
// @Produce      json
// @Success      200 {object}  dto.ApplicationStatsResponse
// @Router       /my-company/applications/stats [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Stats(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	stats, err := h.service.Stats(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "compute application stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
