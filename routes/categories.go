package routes

import (
	"github.com/SajBajra/Global-Travel-Blog/handlers/categories"
	"github.com/SajBajra/Global-Travel-Blog/middleware"

	"github.com/gin-gonic/gin"
)

func CategoriesRoutes(r *gin.Engine) {
	r.GET("/categories", categories.GetAllCategories)

	// Admin-only category management
	categoriesAdminRoutes := r.Group("/categories")
	categoriesAdminRoutes.Use(middleware.AdminAuth())
	{
		categoriesAdminRoutes.POST("", categories.CreateCategory)
		categoriesAdminRoutes.PUT("/:id", categories.UpdateCategory)
		categoriesAdminRoutes.DELETE("/:id", categories.DeleteCategory)
	}
}
