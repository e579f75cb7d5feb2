package main

import (
	"log"
	"os"

	"github.com/SajBajra/Global-Travel-Blog/db"
	_ "github.com/SajBajra/Global-Travel-Blog/docs"
	"github.com/SajBajra/Global-Travel-Blog/jobs"
	"github.com/SajBajra/Global-Travel-Blog/routes"
	"github.com/SajBajra/Global-Travel-Blog/utils"

	"github.com/gin-gonic/gin"
)

// @title Global Travel Blog API
// @version 1.0
// @description REST API for the Global Travel Blog: destinations, blogs, threaded comments, likes and moderation
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Image uploads will not work.")
	}

	utils.InitRedis()

	sweeper := jobs.StartIntegritySweep(db.DB)
	defer sweeper.Stop()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
