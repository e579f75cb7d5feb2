package routes

import (
	"github.com/SajBajra/Global-Travel-Blog/handlers/auth"
	"github.com/SajBajra/Global-Travel-Blog/handlers/blogs/likes"
	"github.com/SajBajra/Global-Travel-Blog/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)

	meRoutes := r.Group("/me")
	meRoutes.Use(middleware.JWTAuth())
	{
		meRoutes.GET("", auth.Me)
		meRoutes.PATCH("", auth.UpdateMe)
		meRoutes.POST("/profile-picture", auth.UploadProfilePicture)
		meRoutes.GET("/likes", likes.GetMyLikes)
	}
}
