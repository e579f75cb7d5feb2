package routes

import (
	"github.com/SajBajra/Global-Travel-Blog/handlers/users"
	"github.com/SajBajra/Global-Travel-Blog/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	r.GET("/users/:id", users.GetUserByID)

	usersAdminRoutes := r.Group("/users")
	usersAdminRoutes.Use(middleware.AdminAuth())
	{
		usersAdminRoutes.GET("", users.GetAllUsers)
		usersAdminRoutes.PATCH("/:id", users.UpdateUser)
		usersAdminRoutes.DELETE("/:id", users.DeleteUser)
	}
}
