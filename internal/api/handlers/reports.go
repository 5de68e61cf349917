package handlers

import (
	"net/http"

	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Binder
	service services.ReportService
}

func NewReportHandler(service services.ReportService, binder Binder) *ReportHandler {
	return &ReportHandler{Binder: binder, service: service}
}

// Create godoc
// @Summary      Report content to the moderators
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body body dto.ReportRequest true "Report"
// @Success      201 {object}  models.Report
// @Failure      404 {object}  map[string]string "Target not found"
// @Router       /reports [post]
// @Security     BearerAuth
func (h *ReportHandler) Create(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req dto.ReportRequest
	if !h.bindJSON(c, &req) {
		return
	}
	report, err := h.service.Create(c.Request.Context(), uid, &req)
	if err != nil {
		respondError(c, err, "create report")
		return
	}
	c.JSON(http.StatusCreated, report)
}
