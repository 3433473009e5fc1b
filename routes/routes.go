package routes

import (
	"os"
	"time"

	"bathroom-report-api/controllers"
	"bathroom-report-api/middleware"
	"bathroom-report-api/models"
	"bathroom-report-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires services, controllers and middleware onto the router.
// The database handle is passed down explicitly; nothing here keeps global
// state.
func SetupRoutes(router *gin.Engine, db *gorm.DB) {
	reportService := services.NewReportService(db)
	categoryService := services.NewCategoryService(db)
	authService := services.NewAuthService(db)
	statsService := services.NewStatsService(db)
	notifier := services.NewNotificationService()

	reportController := controllers.NewReportController(reportService, categoryService, notifier)
	adminController := controllers.NewAdminController(authService, reportService, statsService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		env := os.Getenv("ENVIRONMENT")
		if env == "" {
			env = "development"
		}
		c.JSON(200, gin.H{
			"status":      "ok",
			"timestamp":   time.Now().Format(time.RFC3339),
			"environment": env,
		})
	})

	api := router.Group("/api")
	{
		// Public report routes
		reports := api.Group("/reports")
		{
			reports.POST("", middleware.RateLimitByRA(reportService.CountRecentByRA), reportController.CreateReport)
			reports.GET("/categories", reportController.GetCategories)
			reports.GET("/buildings", reportController.GetBuildings)
			reports.GET("/floors", reportController.GetFloors)
		}

		// Admin routes
		admin := api.Group("/admin")
		{
			admin.POST("/login", adminController.Login)

			protected := admin.Group("")
			protected.Use(middleware.AuthMiddleware(db))
			{
				protected.GET("/reports", adminController.GetReports)
				protected.GET("/reports/:id", adminController.GetReport)
				protected.PATCH("/reports/:id",
					middleware.RequireRole(models.RoleAdmin, models.RoleCleaning, models.RoleMaintenance),
					adminController.UpdateReportStatus)
				protected.GET("/statistics",
					middleware.RequireRole(models.RoleAdmin, models.RoleCleaning, models.RoleMaintenance),
					adminController.GetStatistics)
			}
		}
	}
}
