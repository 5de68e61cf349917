package routes

import (
	"log"

	"professionals-api/internal/api/handlers"
	"professionals-api/internal/api/middleware"
	"professionals-api/internal/app"
	"professionals-api/internal/models"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Guards are the middleware route groups combine.
type Guards struct {
	Auth     gin.HandlerFunc // bearer token or session cookie required
	Optional gin.HandlerFunc // principal attached when present
	Student  gin.HandlerFunc
	Company  gin.HandlerFunc
	Admin    gin.HandlerFunc
}

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	h := app.Handlers

	authenticator := middleware.NewAuthenticator(app.Tokens, app.Cache, app.Config.JWT.CookieName)
	guards := Guards{
		Auth:     authenticator.Required(),
		Optional: authenticator.Optional(),
		Student:  middleware.RequireRoles(models.RoleStudent),
		Company:  middleware.RequireRoles(models.RoleCompany),
		Admin:    middleware.RequireRoles(models.RoleAdmin),
	}

	// --- Base API Group ---
	api := router.Group("/api")
	api.Use(middleware.Throttle(app.Cache, app.Config.Throttle.RequestsPerMinute))

	// --- Register Resource Routes ---
	RegisterAuthRoutes(api, h.Auth, guards)
	RegisterMeRoutes(api, h.Profile, guards)
	RegisterReferenceRoutes(api, h.Reference)
	RegisterSearchRoutes(api, h.Search)
	RegisterCompanyRoutes(api, h.Companies, h.Reviews, handlers.CompanyBySlug(app.Services.Companies), guards)
	RegisterOfferRoutes(api, h.Offers)
	RegisterMyCompanyRoutes(api, MyCompanyHandlers{
		Companies:    h.Companies,
		Content:      h.Content,
		Offers:       h.Offers,
		Applications: h.Applications,
		Analytics:    h.Analytics,
	}, handlers.OwnCompany(app.Services.Companies), guards)
	RegisterApplicationRoutes(api, h.Applications, guards)
	RegisterReviewRoutes(api, h.Reviews, guards)
	RegisterChatRoutes(api, h.Chat, guards)
	RegisterNotificationRoutes(api, h.Notifications, guards)
	RegisterBookmarkRoutes(api, h.Bookmarks, guards)
	RegisterTrackingRoutes(api, h.Analytics, guards)
	RegisterReportRoutes(api, h.Reports, guards)
	RegisterAdminRoutes(api, AdminHandlers{
		Admin:     h.Admin,
		Reference: h.Reference,
		Search:    h.Search,
	}, guards)

	// --- Health Check ---
	router.GET("/health", h.Health.HealthCheck)

	// --- Uploaded files ---
	router.Static("/storage", app.Files.BasePath())

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- Client application shell ---
	router.NoRoute(h.SPA.NoRoute)
}
