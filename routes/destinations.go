package routes

import (
	"github.com/SajBajra/Global-Travel-Blog/handlers/destinations"
	"github.com/SajBajra/Global-Travel-Blog/middleware"

	"github.com/gin-gonic/gin"
)

func DestinationsRoutes(r *gin.Engine) {
	r.GET("/destinations", destinations.GetAllDestinations)
	r.GET("/destinations/:id", destinations.GetDestinationByID)

	destinationsAdminRoutes := r.Group("/destinations")
	destinationsAdminRoutes.Use(middleware.AdminAuth())
	{
		destinationsAdminRoutes.POST("", destinations.CreateDestination)
		destinationsAdminRoutes.PUT("/:id", destinations.UpdateDestination)
		destinationsAdminRoutes.DELETE("/:id", destinations.DeleteDestination)
	}
}
