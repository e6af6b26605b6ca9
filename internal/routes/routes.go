package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wavely/wavely-backend/internal/handler"
	"github.com/wavely/wavely-backend/internal/middleware"
	"github.com/wavely/wavely-backend/pkg/jwt"
	"github.com/wavely/wavely-backend/pkg/session"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
	messageHandler *handler.MessageHandler,
	notificationHandler *handler.NotificationHandler,
	adminHandler *handler.AdminHandler,
	jwtManager *jwt.Manager,
	sessions *session.Store,
) {
	api := router.Group("/api")

	// Identity
	auth := api.Group("/auth")
	auth.POST("", authHandler.Post)
	auth.GET("", authHandler.GetProfile)
	auth.PUT("", authHandler.UpdateProfile)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/me", middleware.JWTAuth(jwtManager, sessions), authHandler.Me)
	auth.POST("/logout", middleware.JWTAuth(jwtManager, sessions), authHandler.Logout)

	// Feed and interactions
	posts := api.Group("/posts")
	posts.GET("", postHandler.Get)
	posts.POST("", postHandler.Post)

	// Direct messaging
	messages := api.Group("/messages")
	messages.GET("", messageHandler.Get)
	messages.POST("", messageHandler.Post)

	// Notification inbox
	notifications := api.Group("/notifications")
	notifications.GET("", notificationHandler.Get)
	notifications.POST("", notificationHandler.Post)

	// Moderation
	admin := api.Group("/admin")
	admin.GET("", adminHandler.Get)
	admin.PUT("", adminHandler.Put)
}
