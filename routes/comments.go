package routes

import (
	"github.com/SajBajra/Global-Travel-Blog/handlers/blogs/comments"
	"github.com/SajBajra/Global-Travel-Blog/handlers/blogs/likes"
	"github.com/SajBajra/Global-Travel-Blog/handlers/blogs/report"
	"github.com/SajBajra/Global-Travel-Blog/middleware"

	"github.com/gin-gonic/gin"
)

func CommentsRoutes(r *gin.Engine) {
	commentsRoutes := r.Group("/comments")
	commentsRoutes.Use(middleware.JWTAuth())
	{
		commentsRoutes.PUT("/:id", comments.UpdateComment)
		commentsRoutes.DELETE("/:id", comments.DeleteComment)
		commentsRoutes.POST("/:id/like", likes.ToggleCommentLike)
		commentsRoutes.POST("/:id/report", report.ReportComment)
	}
}
