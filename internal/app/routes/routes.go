package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nkurunziza/erinda/internal/app/controllers"
	"github.com/nkurunziza/erinda/internal/app/models/dto"
	"github.com/nkurunziza/erinda/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	attendanceController *controllers.AttendanceController,
	reportController *controllers.ReportController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Liveness probe, plain text by contract
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "e-Rinda Community Guard API is running")
	})

	// --- Public auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.GET("/dashboard", dashboardController.Stats)

		attendance := authenticated.Group("/api/attendance")
		{
			attendance.POST("/checkin", attendanceController.CheckIn)
			attendance.POST("/checkout", attendanceController.CheckOut)
			attendance.GET("", attendanceController.List)
		}

		reports := authenticated.Group("/api/reports")
		{
			reports.POST("", reportController.Create)
			reports.GET("", reportController.List)

			// Status changes are restricted to the privileged role set
			reportsPrivileged := reports.Group("")
			reportsPrivileged.Use(authMiddleware.PrivilegedOnly())
			{
				reportsPrivileged.PATCH("/:id", reportController.UpdateStatus)
			}
		}
	}

	// Uniform 404 for unmatched routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Endpoint not found"))
	})
}
