package handlers

import (
	"net/http"

	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves company search, autocomplete and suggestions.
type SearchHandler struct {
	Binder
	service services.SearchService
}

func NewSearchHandler(service services.SearchService, binder Binder) *SearchHandler {
	return &SearchHandler{Binder: binder, service: service}
}

// Search godoc
// @Summary      Search companies
// @Tags         search
// @Produce      json
// @Param        q query string false "Search text"
// @Param        type query string false "name, sector, location or mixed"
// @Param        sector_id query int false "Sector filter"
// @Param        city_id query int false "City filter"
// @Param        page query int false "Page"
// @Success      200 {object}  pagination.PageResult[models.CompanyListing]
// @Router       /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var q dto.SearchQuery
	if !h.bindQuery(c, &q) {
		return
	}
	result, err := h.service.Search(c.Request.Context(), &q, h.page(c))
	if err != nil {
		respondError(c, err, "search companies")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Autocomplete godoc
// @Summary      Company name completions
// @Tags         search
// @Produce      json
// @Param        q query string true "Prefix"
// @Success      200 {array}   string
// @Router       /search/autocomplete [get]
func (h *SearchHandler) Autocomplete(c *gin.Context) {
	names, err := h.service.Autocomplete(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "autocomplete")
		return
	}
	c.JSON(http.StatusOK, names)
}

// Suggestions godoc
// @Summary      Curated suggestions near a city
// @Tags         search
// @Produce      json
// @Param        city_id query int false "City"
// @Param        limit query int false "Max results (1-50)"
// @Success      200 {array}   models.Suggestion
// @Router       /suggestions [get]
func (h *SearchHandler) Suggestions(c *gin.Context) {
	var q dto.SuggestionQuery
	if !h.bindQuery(c, &q) {
		return
	}
	items, err := h.service.Suggestions(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err, "list suggestions")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Trending godoc
// @Summary      Trending search terms
// @Tags         search
// @Produce      json
// @Success      200 {array}   models.TrendingTerm
// @Router       /suggestions/trending [get]
func (h *SearchHandler) Trending(c *gin.Context) {
	terms, err := h.service.Trending(c.Request.Context())
	if err != nil {
		respondError(c, err, "list trending searches")
		return
	}
	c.JSON(http.StatusOK, terms)
}

// AdminListSuggestions godoc
// @Summary      List all suggestions
// @Tags         admin
// @Produce      json
// @Success      200 {object}  pagination.PageResult[models.Suggestion]
// @Router       /admin/suggestions [get]
// @Security     BearerAuth
func (h *SearchHandler) AdminListSuggestions(c *gin.Context) {
	result, err := h.service.ListSuggestions(c.Request.Context(), h.page(c))
	if err != nil {
		respondError(c, err, "list suggestions")
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateSuggestion godoc
// @Summary      Create a suggestion
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body body dto.SuggestionRequest true "Suggestion"
// @Success      201 {object}  models.Suggestion
// @Router       /admin/suggestions [post]
// @Security     BearerAuth
func (h *SearchHandler) CreateSuggestion(c *gin.Context) {
	var req dto.SuggestionRequest
	if !h.bindJSON(c, &req) {
		return
	}
	item, err := h.service.CreateSuggestion(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create suggestion")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateSuggestion godoc
// @Summary      Update a suggestion
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Suggestion ID"
// @Param        body body dto.SuggestionRequest true "Suggestion"
// @Success      200 {object}  models.Suggestion
// @Router       /admin/suggestions/{id} [put]
// @Security     BearerAuth
func (h *SearchHandler) UpdateSuggestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.SuggestionRequest
	if !h.bindJSON(c, &req) {
		return
	}
	item, err := h.service.UpdateSuggestion(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update suggestion")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteSuggestion godoc
// @Summary      Delete a suggestion
// @Tags         admin
// @Param        id path int true "Suggestion ID"
// @Success      204 "Deleted"
// @Router       /admin/suggestions/{id} [delete]
// @Security     BearerAuth
func (h *SearchHandler) DeleteSuggestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteSuggestion(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete suggestion")
		return
	}
	c.Status(http.StatusNoContent)
}
