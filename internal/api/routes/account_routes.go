package routes

import (
	"professionals-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers the student side of applications.
func RegisterApplicationRoutes(rg *gin.RouterGroup, h *handlers.ApplicationHandler, guards Guards) {
	apps := rg.Group("/applications", guards.Auth, guards.Student)
	{
		apps.GET("", h.ListMine)
		apps.POST("", h.Apply)
		apps.POST("/spontaneous", h.ApplySpontaneous)
		apps.GET("/:id", h.GetMine)
		apps.DELETE("/:id", h.Withdraw)
	}
}

// RegisterReviewRoutes registers author and voter actions. Creation lives
// under /companies/:slug.
func RegisterReviewRoutes(rg *gin.RouterGroup, h *handlers.ReviewHandler, guards Guards) {
	reviews := rg.Group("/reviews", guards.Auth)
	{
		reviews.PUT("/:id", guards.Student, h.Update)
		reviews.DELETE("/:id", guards.Student, h.Delete)
		reviews.POST("/:id/vote", h.Vote)
	}
}

func RegisterChatRoutes(rg *gin.RouterGroup, h *handlers.ChatHandler, guards Guards) {
	conv := rg.Group("/conversations", guards.Auth)
	{
		conv.GET("", h.List)
		conv.POST("", h.Start)
		conv.GET("/:id", h.Get)
		conv.PUT("/:id/status", h.SetStatus)
		conv.GET("/:id/messages", h.Messages)
		conv.POST("/:id/messages", h.Send)
		conv.POST("/:id/read", h.MarkRead)
	}
}

func RegisterNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler, guards Guards) {
	n := rg.Group("/notifications", guards.Auth)
	{
		n.GET("", h.List)
		n.GET("/unread-count", h.UnreadCount)
		n.POST("/read-all", h.MarkAllRead)
		n.POST("/:id/read", h.MarkRead)
		n.DELETE("/:id", h.Delete)
	}
}

func RegisterBookmarkRoutes(rg *gin.RouterGroup, h *handlers.BookmarkHandler, guards Guards) {
	b := rg.Group("/bookmarks", guards.Auth, guards.Student)
	{
		b.GET("", h.List)
		b.POST("", h.Store)
		b.DELETE("", h.Destroy)
		b.POST("/toggle", h.Toggle)
	}
}

// RegisterTrackingRoutes registers the public view beacon.
func RegisterTrackingRoutes(rg *gin.RouterGroup, h *handlers.AnalyticsHandler, guards Guards) {
	rg.POST("/track/view", guards.Optional, h.TrackView)
}

func RegisterReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler, guards Guards) {
	rg.POST("/reports", guards.Auth, h.Create)
}
