package api

import (
	"net/http"

	archiveDelivery "growth-archive-backend/internal/archive/delivery"
	"growth-archive-backend/internal/auth/delivery"
	authUsecase "growth-archive-backend/internal/auth/usecase"
	notificationDelivery "growth-archive-backend/internal/notification/delivery"
	userDelivery "growth-archive-backend/internal/user/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, authHandler *delivery.AuthHandler, userHandler *userDelivery.UserHandler, archiveHandler *archiveDelivery.ArchiveHandler, notificationHandler *notificationDelivery.NotificationHandler) {
	requireAuth := delivery.AuthMiddleware(authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", requireAuth, authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.Me)
			auth.DELETE("/account", requireAuth, authHandler.DeleteAccount)
		}

		// Profile routes (protected)
		users := api.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("/profile", userHandler.GetProfile)
			users.PUT("/profile", userHandler.UpdateProfile)
		}

		// Archive routes (protected)
		archives := api.Group("/archives")
		archives.Use(requireAuth)
		{
			archives.GET("", archiveHandler.GetArchives)
			archives.POST("", archiveHandler.CreateArchive)
			if archiveHandler.UploadsEnabled() {
				archives.POST("/uploads", archiveHandler.PresignUpload)
			}
			archives.GET("/:id", archiveHandler.GetArchiveByID)
			archives.PUT("/:id", archiveHandler.UpdateArchive)
			archives.DELETE("/:id", archiveHandler.DeleteArchive)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(requireAuth)
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.PUT("/read-all", notificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
		}

		// FCM routes (protected)
		fcm := api.Group("/fcm")
		fcm.Use(requireAuth)
		{
			fcm.POST("/register", notificationHandler.RegisterDevice)
			fcm.DELETE("/:token", notificationHandler.UnregisterDevice)
		}
	}
}
