package routes

import (
	"github.com/SajBajra/Global-Travel-Blog/handlers/blogs/report"
	"github.com/SajBajra/Global-Travel-Blog/middleware"

	"github.com/gin-gonic/gin"
)

func ReportsRoutes(r *gin.Engine) {
	reportsRoutes := r.Group("/reports")
	reportsRoutes.Use(middleware.AdminAuth())
	{
		reportsRoutes.GET("", report.GetAllReports)
		reportsRoutes.PATCH("/:id", report.UpdateReport)
	}
}
