package routes

import (
	"github.com/gin-gonic/gin"

	"vehicle-inspection-api/controllers"
	"vehicle-inspection-api/middleware"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Vehicle Inspection API is running",
				})
			})
		}

		// Protected routes (require a session)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/logout", controllers.Logout)
			protected.POST("/logout", controllers.Logout)
			protected.GET("/profile", controllers.GetProfile)

			// Inspection listing and submission
			protected.GET("/inspections", controllers.ListInspections)
			protected.POST("/upload", controllers.UploadInspection)

			inspection := protected.Group("/inspection/:id")
			{
				inspection.GET("", controllers.GetInspection)
				inspection.GET("/pdf", controllers.ViewPDF)

				// Combined role-scoped edit; each role's fields only
				inspection.GET("/edit", controllers.GetInspection)
				inspection.POST("/edit", controllers.EditInspection)

				// Single-field endpoints refuse the other role outright
				inspection.POST("/cost", middleware.RequireAdmin(), controllers.UpdateCost)
				inspection.POST("/accepted_cost", middleware.RequireReviewer(), controllers.UpdateAcceptedCost)
				inspection.POST("/delete_pdf", middleware.RequireAdmin(), controllers.DeletePDF)
			}
		}
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Endpoint not found"})
	})
}
