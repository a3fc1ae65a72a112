// @title           HeartTune HTTP Service API
// @version         1.0
// @description     Family wellness backend: accounts with family group codes, playlists with favorites, heartbeat samples

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"hearttune-http-service/internal/app/routes"
	"hearttune-http-service/internal/domain/models"
	"hearttune-http-service/internal/infrastructure/config"
	"hearttune-http-service/internal/infrastructure/database"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to initialise logging: %v\n", err)
		os.Exit(1)
	}

	// A missing .env is fine when the environment is provided elsewhere
	if err := godotenv.Load(); err != nil {
		config.Warning("could not load .env file: %v", err)
	} else {
		config.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := autoMigrate(pool.DB); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	r := routes.SetupRouter(pool.DB, cfg, redisClient)

	port := cfg.ServerPort
	if port == "" {
		port = "8080"
	}

	config.Info("server listening on: http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate migrates all models, adding new columns and tables only
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Playlist{},
		&models.Song{},
		&models.Heartbeat{},
	)
	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}
