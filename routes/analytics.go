package routes

import (
	"github.com/SajBajra/Global-Travel-Blog/handlers/analytics"
	"github.com/SajBajra/Global-Travel-Blog/middleware"

	"github.com/gin-gonic/gin"
)

func AnalyticsRoutes(r *gin.Engine) {
	// View tracking works for anonymous visitors; a token only improves
	// unique-visitor attribution.
	r.POST("/analytics/view", middleware.OptionalAuth(), analytics.TrackView)

	analyticsAdminRoutes := r.Group("/analytics")
	analyticsAdminRoutes.Use(middleware.AdminAuth())
	{
		analyticsAdminRoutes.GET("", analytics.GetDailyStats)
		analyticsAdminRoutes.GET("/summary", analytics.GetSummary)
	}
}
