package routes

import (
	"professionals-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterReferenceRoutes registers the public lookup tables.
func RegisterReferenceRoutes(rg *gin.RouterGroup, h *handlers.ReferenceHandler) {
	ref := rg.Group("/ref")
	{
		ref.GET("/countries", h.ListCountries)
		ref.GET("/cities", h.ListCities)
		ref.GET("/cities/:id", h.GetCity)
		ref.GET("/sectors", h.ListSectors)
		ref.GET("/sectors/:id", h.GetSector)
		ref.GET("/skills", h.ListSkills)
	}
}

func RegisterSearchRoutes(rg *gin.RouterGroup, h *handlers.SearchHandler) {
	rg.GET("/search", h.Search)
	rg.GET("/search/autocomplete", h.Autocomplete)
	rg.GET("/suggestions", h.Suggestions)
	rg.GET("/suggestions/trending", h.Trending)
}

// RegisterCompanyRoutes registers the public company pages. bySlug resolves
// :slug once for every route under /companies/:slug; on protected routes it
// runs after the guards so anonymous callers get 401 for any slug.
func RegisterCompanyRoutes(
	rg *gin.RouterGroup,
	h *handlers.CompanyHandler,
	reviews *handlers.ReviewHandler,
	bySlug gin.HandlerFunc,
	guards Guards,
) {
	rg.GET("/companies", h.List)

	company := rg.Group("/companies/:slug", bySlug)
	{
		company.GET("", h.Show)
		company.GET("/media", h.Media)
		company.GET("/org", h.Org)
		company.GET("/publications", h.Publications)
		company.GET("/publications/:pub", h.Publication)
		company.GET("/offers", h.Offers)
		company.GET("/reviews", h.Reviews)
		company.GET("/stats", h.Stats)
	}

	member := rg.Group("/companies/:slug", guards.Auth)
	{
		member.GET("/hr-contacts", bySlug, h.HRContacts)
		member.POST("/reviews", guards.Student, bySlug, reviews.Create)
	}
}

func RegisterOfferRoutes(rg *gin.RouterGroup, h *handlers.OfferHandler) {
	offers := rg.Group("/offers")
	{
		offers.GET("", h.ListPublic)
		offers.GET("/:slug", h.GetPublic)
		offers.GET("/:slug/similar", h.Similar)
	}
}
