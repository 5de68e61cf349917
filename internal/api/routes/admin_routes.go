package routes

import (
	"professionals-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// AdminHandlers serve the /admin tree.
type AdminHandlers struct {
	Admin     *handlers.AdminHandler
	Reference *handlers.ReferenceHandler
	Search    *handlers.SearchHandler
}

// RegisterAdminRoutes registers the back office. Every route requires the admin role.
func RegisterAdminRoutes(rg *gin.RouterGroup, h AdminHandlers, guards Guards) {
	admin := rg.Group("/admin", guards.Auth, guards.Admin)
	admin.GET("/dashboard", h.Admin.Dashboard)
	admin.GET("/stats", h.Admin.Stats)

	users := admin.Group("/users")
	{
		users.GET("", h.Admin.ListUsers)
		users.GET("/:id", h.Admin.GetUser)
		users.PUT("/:id", h.Admin.UpdateUser)
		users.POST("/:id/ban", h.Admin.BanUser)
		users.POST("/:id/restore", h.Admin.RestoreUser)
		users.DELETE("/:id", h.Admin.DeleteUser)
	}

	companies := admin.Group("/companies")
	{
		companies.GET("", h.Admin.ListCompanies)
		companies.GET("/:id", h.Admin.GetCompany)
		companies.PUT("/:id", h.Admin.UpdateCompany)
		companies.POST("/:id/verify", h.Admin.VerifyCompany)
		companies.POST("/:id/unverify", h.Admin.UnverifyCompany)
		companies.DELETE("/:id", h.Admin.DeleteCompany)
	}

	offers := admin.Group("/offers")
	{
		offers.GET("", h.Admin.ListOffers)
		offers.GET("/:id", h.Admin.GetOffer)
		offers.PUT("/:id", h.Admin.UpdateOffer)
		offers.POST("/:id/activate", h.Admin.ActivateOffer)
		offers.POST("/:id/deactivate", h.Admin.DeactivateOffer)
		offers.DELETE("/:id", h.Admin.DeleteOffer)
	}

	reviews := admin.Group("/reviews")
	{
		reviews.GET("", h.Admin.ListReviews)
		reviews.POST("/:id/approve", h.Admin.ApproveReview)
		reviews.POST("/:id/reject", h.Admin.RejectReview)
		reviews.DELETE("/:id", h.Admin.DeleteReview)
	}

	reports := admin.Group("/reports")
	{
		reports.GET("", h.Admin.ListReports)
		reports.GET("/:id", h.Admin.GetReport)
		reports.PUT("/:id/status", h.Admin.UpdateReportStatus)
	}

	sectors := admin.Group("/sectors")
	{
		sectors.GET("", h.Reference.ListSectors)
		sectors.POST("", h.Reference.CreateSector)
		sectors.GET("/:id", h.Reference.GetSector)
		sectors.PUT("/:id", h.Reference.UpdateSector)
		sectors.DELETE("/:id", h.Reference.DeleteSector)
	}

	suggestions := admin.Group("/suggestions")
	{
		suggestions.GET("", h.Search.AdminListSuggestions)
		suggestions.POST("", h.Search.CreateSuggestion)
		suggestions.PUT("/:id", h.Search.UpdateSuggestion)
		suggestions.DELETE("/:id", h.Search.DeleteSuggestion)
	}
}
