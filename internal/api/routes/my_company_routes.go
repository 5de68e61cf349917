package routes

import (
	"professionals-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// MyCompanyHandlers serve the /my-company tree.
type MyCompanyHandlers struct {
	Companies    *handlers.CompanyHandler
	Content      *handlers.CompanyContentHandler
	Offers       *handlers.OfferHandler
	Applications *handlers.ApplicationHandler
	Analytics    *handlers.AnalyticsHandler
}

// RegisterMyCompanyRoutes registers the company owner's back office. Every
// sub-resource runs behind ownCompany, which answers 404 until the caller
// has created a company.
func RegisterMyCompanyRoutes(rg *gin.RouterGroup, h MyCompanyHandlers, ownCompany gin.HandlerFunc, guards Guards) {
	mine := rg.Group("/my-company", guards.Auth, guards.Company)
	{
		mine.GET("", h.Companies.Mine)
		mine.POST("", h.Companies.Create)
		mine.PUT("", h.Companies.Update)
		mine.DELETE("", h.Companies.Delete)
		mine.POST("/logo", h.Companies.UploadLogo)
		mine.POST("/cover", h.Companies.UploadCover)
	}

	owned := mine.Group("", ownCompany)
	owned.GET("/dashboard", h.Analytics.CompanyDashboard)
	owned.GET("/analytics", h.Analytics.CompanyAnalytics)

	media := owned.Group("/media")
	{
		media.GET("", h.Content.ListMedia)
		media.POST("", h.Content.AddMedia)
		media.POST("/reorder", h.Content.ReorderMedia)
		media.PUT("/:id", h.Content.UpdateMedia)
		media.DELETE("/:id", h.Content.DeleteMedia)
	}

	pubs := owned.Group("/publications")
	{
		pubs.GET("", h.Content.ListPublications)
		pubs.POST("", h.Content.CreatePublication)
		pubs.GET("/:id", h.Content.GetPublication)
		pubs.PUT("/:id", h.Content.UpdatePublication)
		pubs.DELETE("/:id", h.Content.DeletePublication)
		pubs.POST("/:id/publish", h.Content.PublishPublication)
		pubs.POST("/:id/unpublish", h.Content.UnpublishPublication)
	}

	org := owned.Group("/org")
	{
		org.GET("", h.Content.OrgTree)
		org.POST("", h.Content.CreateOrgNode)
		org.POST("/reorder", h.Content.ReorderOrg)
		org.PUT("/:id", h.Content.UpdateOrgNode)
		org.DELETE("/:id", h.Content.DeleteOrgNode)
	}

	contacts := owned.Group("/hr-contacts")
	{
		contacts.GET("", h.Content.ListHRContacts)
		contacts.POST("", h.Content.CreateHRContact)
		contacts.GET("/:id", h.Content.GetHRContact)
		contacts.PUT("/:id", h.Content.UpdateHRContact)
		contacts.DELETE("/:id", h.Content.DeleteHRContact)
		contacts.POST("/:id/primary", h.Content.SetPrimaryHRContact)
	}

	offers := owned.Group("/offers")
	{
		offers.GET("", h.Offers.List)
		offers.POST("", h.Offers.Create)
		offers.GET("/:id", h.Offers.Get)
		offers.PUT("/:id", h.Offers.Update)
		offers.DELETE("/:id", h.Offers.Delete)
		offers.POST("/:id/publish", h.Offers.Publish)
		offers.POST("/:id/close", h.Offers.Close)
		offers.POST("/:id/duplicate", h.Offers.Duplicate)
	}

	apps := owned.Group("/applications")
	{
		apps.GET("", h.Applications.ListForCompany)
		apps.GET("/stats", h.Applications.Stats)
		apps.GET("/:id", h.Applications.GetForCompany)
		apps.PUT("/:id/status", h.Applications.UpdateStatus)
		apps.PUT("/:id/notes", h.Applications.UpdateNotes)
	}
}
