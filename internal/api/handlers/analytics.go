package handlers

import (
	"net/http"

	"professionals-api/internal/api/middleware"
	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	Binder
	service services.AnalyticsService
}

func NewAnalyticsHandler(service services.AnalyticsService, binder Binder) *AnalyticsHandler {
	return &AnalyticsHandler{Binder: binder, service: service}
}

// TrackView godoc
// @Summary      Record a page view
// @Description  A viewer counts once per target per hour. Authentication is optional.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        body body dto.TrackViewRequest true "Target"
// @Success      202 {object}  dto.TrackViewResponse
// @Failure      404 {object}  map[string]string "Target not found"
// @Router       /track/view [post]
func (h *AnalyticsHandler) TrackView(c *gin.Context) {
	var req dto.TrackViewRequest
	if !h.bindJSON(c, &req) {
		return
	}
	var viewerID *int64
	if p, ok := middleware.GetPrincipal(c); ok {
		viewerID = &p.UserID
	}
	counted, err := h.service.TrackView(c.Request.Context(), &req, viewerID, c.ClientIP())
	if err != nil {
		respondError(c, err, "track view")
		return
	}
	c.JSON(http.StatusAccepted, dto.TrackViewResponse{Counted: counted})
}

// CompanyAnalytics godoc
// @Summary      Daily company metrics
// @Tags         my-company
// @Produce      json
// @Param        period query string false "7days, 30days or year"
// @Success      200 {object}  dto.CompanyAnalyticsResponse
// @Router       /my-company/analytics [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) CompanyAnalytics(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	period, ok := h.period(c)
	if !ok {
		return
	}
	resp, err := h.service.CompanyAnalytics(c.Request.Context(), companyID, period)
	if err != nil {
		respondError(c, err, "compute analytics")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CompanyDashboard godoc
// @Summary      Company dashboard counters
// @Tags         my-company
// @Produce      json
// @Success      200 {object}  dto.CompanyDashboardResponse
// @Router       /my-company/dashboard [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) CompanyDashboard(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	resp, err := h.service.CompanyDashboard(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "load dashboard")
		return
	}
	c.JSON(http.StatusOK, resp)
}
