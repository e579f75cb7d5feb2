package db

import (
	"os"

	"github.com/SajBajra/Global-Travel-Blog/models"
	"github.com/SajBajra/Global-Travel-Blog/utils"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, using system environment")
	}

	var err error
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		// Local development fallback: pure-Go sqlite, no server needed.
		utils.LogInfo("DB_URL not set, falling back to local sqlite database")
		DB, err = gorm.Open(sqlite.Open("travelblog.db"), &gorm.Config{
			Logger: utils.GetGormLogger(),
		})
	} else {
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: utils.GetGormLogger(),
		})
	}
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("Could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Comment{},
		&models.Like{},
		&models.CommentLike{},
		&models.Category{},
		&models.Report{},
		&models.Destination{},
		&models.DailyStat{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("Could not migrate database")
	}

	utils.LogSuccess("Database connection successful")
}
