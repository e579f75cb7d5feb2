package routes

import (
	"github.com/SajBajra/Global-Travel-Blog/handlers/blogs"
	"github.com/SajBajra/Global-Travel-Blog/handlers/blogs/comments"
	"github.com/SajBajra/Global-Travel-Blog/handlers/blogs/likes"
	"github.com/SajBajra/Global-Travel-Blog/handlers/blogs/report"
	"github.com/SajBajra/Global-Travel-Blog/middleware"

	"github.com/gin-gonic/gin"
)

func BlogsRoutes(r *gin.Engine) {
	// Public routes
	r.GET("/blogs", blogs.GetAllBlogs)
	r.GET("/blogs/:id", blogs.GetBlogByID)
	r.GET("/blogs/:id/comments", comments.GetBlogComments)

	// Protected routes
	blogsRoutes := r.Group("/blogs")
	blogsRoutes.Use(middleware.JWTAuth())
	{
		blogsRoutes.POST("", blogs.CreateBlog)
		blogsRoutes.PUT("/:id", blogs.UpdateBlog)
		blogsRoutes.DELETE("/:id", blogs.DeleteBlog)

		blogsRoutes.POST("/:id/comments", comments.CreateComment)
		blogsRoutes.POST("/:id/like", likes.ToggleBlogLike)
		blogsRoutes.POST("/:id/report", report.ReportBlog)
	}

	// Moderation takedowns
	adminRoutes := r.Group("/blogs")
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.PATCH("/:id/status", blogs.UpdateBlogStatus)
	}
}
