package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozgekaya/alumnihub/internal/app/controllers"
	"github.com/ozgekaya/alumnihub/internal/app/models"
	"github.com/ozgekaya/alumnihub/internal/app/models/dto"
	"github.com/ozgekaya/alumnihub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	directoryController *controllers.DirectoryController,
	announcementController *controllers.AnnouncementController,
	analyticsController *controllers.AnalyticsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "ok"}))
	})

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/session", authController.GetSession)

		profiles := authenticated.Group("/profiles")
		{
			profiles.GET("/me", profileController.GetMyProfile)
			profiles.PUT("/me", profileController.SaveMyProfile)
		}

		authenticated.GET("/directory", directoryController.Search)

		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", announcementController.List)
			announcements.GET("/:slug", announcementController.GetBySlug)
		}

		authenticated.GET("/tags", announcementController.ListTags)

		// Publishing and the dashboard are restricted to Admin and Staff
		privileged := authenticated.Group("")
		privileged.Use(authMiddleware.RoleRequired(models.UserTypeAdmin, models.UserTypeStaff))
		{
			privileged.POST("/announcements", announcementController.Create)
			privileged.POST("/tags", announcementController.CreateTag)
			privileged.GET("/analytics/dashboard", analyticsController.GetDashboard)
		}
	}
}
