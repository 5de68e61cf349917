package routes

import (
	"professionals-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and account recovery.
func RegisterAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, guards Guards) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/social/:provider", h.SocialRedirect)
		authGroup.GET("/social/:provider/callback", h.SocialCallback)
		authGroup.POST("/forgot-password", h.ForgotPassword)
		authGroup.POST("/reset-password", h.ResetPassword)
	}

	session := authGroup.Group("", guards.Auth)
	{
		session.POST("/logout", h.Logout)
		session.GET("/email/verify/:id/:hash", h.VerifyEmail)
		session.POST("/email/resend", h.ResendVerification)
	}
}

// RegisterMeRoutes registers the caller's own account. Student profile routes
// are limited to students.
func RegisterMeRoutes(rg *gin.RouterGroup, h *handlers.ProfileHandler, guards Guards) {
	me := rg.Group("/me", guards.Auth)
	{
		me.GET("", h.GetMe)
		me.PUT("", h.UpdateMe)
		me.DELETE("", h.DeleteMe)
		me.POST("/avatar", h.UploadAvatar)
		me.PUT("/password", h.ChangePassword)
		me.GET("/dashboard", h.Dashboard)
	}

	student := me.Group("/student", guards.Student)
	{
		student.GET("", h.GetStudentProfile)
		student.PUT("", h.UpdateStudentProfile)
		student.POST("/cv", h.UploadCV)
	}
}
