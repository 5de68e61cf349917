package handlers

import (
	"net/http"

	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves countries, cities, sectors and skills.
type ReferenceHandler struct {
	Binder
	service services.ReferenceService
}

func NewReferenceHandler(service services.ReferenceService, binder Binder) *ReferenceHandler {
	return &ReferenceHandler{Binder: binder, service: service}
}

// ListCountries godoc
// @Summary      List countries
// @Tags         reference
// @Produce      json
// @Success      200 {array}   models.Country
// @Router       /ref/countries [get]
func (h *ReferenceHandler) ListCountries(c *gin.Context) {
	countries, err := h.service.ListCountries(c.Request.Context())
	if err != nil {
		respondError(c, err, "list countries")
		return
	}
	c.JSON(http.StatusOK, countries)
}

// ListCities godoc
// @Summary      List cities
// @Tags         reference
// @Produce      json
// @Param        country_id query int false "Country filter"
// @Success      200 {array}   models.City
// @Router       /ref/cities [get]
func (h *ReferenceHandler) ListCities(c *gin.Context) {
	var q dto.CityQuery
	if !h.bindQuery(c, &q) {
		return
	}
	cities, err := h.service.ListCities(c.Request.Context(), q.CountryID)
	if err != nil {
		respondError(c, err, "list cities")
		return
	}
	c.JSON(http.StatusOK, cities)
}

// GetCity godoc
// @Summary      Get a city
// @Tags         reference
// @Produce      json
// @Param        id path int true "City ID"
// @Success      200 {object}  models.City
// @Failure      404 {object}  map[string]string "Not found"
// @Router       /ref/cities/{id} [get]
func (h *ReferenceHandler) GetCity(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	city, err := h.service.GetCity(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve city")
		return
	}
	c.JSON(http.StatusOK, city)
}

// ListSectors godoc
// @Summary      List sectors
// @Tags         reference
// @Produce      json
// @Success      200 {array}   models.Sector
// @Router       /ref/sectors [get]
func (h *ReferenceHandler) ListSectors(c *gin.Context) {
	sectors, err := h.service.ListSectors(c.Request.Context())
	if err != nil {
		respondError(c, err, "list sectors")
		return
	}
	c.JSON(http.StatusOK, sectors)
}

// GetSector godoc
// @Summary      Get a sector
// @Tags         reference
// @Produce      json
// @Param        id path int true "Sector ID"
// @Success      200 {object}  models.Sector
// @Router       /ref/sectors/{id} [get]
func (h *ReferenceHandler) GetSector(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	sector, err := h.service.GetSector(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve sector")
		return
	}
	c.JSON(http.StatusOK, sector)
}

// ListSkills godoc
// @Summary      List skills
// @Tags         reference
// @Produce      json
// @Param        q query string false "Name filter"
// @Success      200 {array}   models.Skill
// @Router       /ref/skills [get]
func (h *ReferenceHandler) ListSkills(c *gin.Context) {
	var q dto.SkillQuery
	if !h.bindQuery(c, &q) {
		return
	}
	skills, err := h.service.ListSkills(c.Request.Context(), q.Q)
	if err != nil {
		respondError(c, err, "list skills")
		return
	}
	c.JSON(http.StatusOK, skills)
}

// CreateSector godoc
// @Summary      Create a sector
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body body dto.SectorRequest true "Sector"
// @Success      201 {object}  models.Sector
// @Router       /admin/sectors [post]
// @Security     BearerAuth
func (h *ReferenceHandler) CreateSector(c *gin.Context) {
	var req dto.SectorRequest
	if !h.bindJSON(c, &req) {
		return
	}
	sector, err := h.service.CreateSector(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create sector")
		return
	}
	c.JSON(http.StatusCreated, sector)
}

// UpdateSector godoc
// @Summary      Update a sector
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Sector ID"
// @Param        body body dto.SectorRequest true "Sector"
// @Success      200 {object}  models.Sector
// @Router       /admin/sectors/{id} [put]
// @Security     BearerAuth
func (h *ReferenceHandler) UpdateSector(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.SectorRequest
	if !h.bindJSON(c, &req) {
		return
	}
	sector, err := h.service.UpdateSector(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update sector")
		return
	}
	c.JSON(http.StatusOK, sector)
}

// DeleteSector godoc
// @Summary      Delete a sector
// @Tags         admin
// @Param        id path int true "Sector ID"
// @Success      204 "Deleted"
// @Failure      409 {object}  map[string]string "Sector in use"
// @Router       /admin/sectors/{id} [delete]
// @Security     BearerAuth
func (h *ReferenceHandler) DeleteSector(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteSector(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete sector")
		return
	}
	c.Status(http.StatusNoContent)
}
