package main

import (
	"log"
	"time"

	"artwork-app/config"
	"artwork-app/database"
	artworksapi "artwork-app/internal/api/artworks"
	authapi "artwork-app/internal/api/auth"
	likesapi "artwork-app/internal/api/likes"
	savedapi "artwork-app/internal/api/saved"
	usersapi "artwork-app/internal/api/users"
	routes "artwork-app/internal/app/http"
	"artwork-app/internal/metapi"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(config.DB_URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	metClient := metapi.NewClient(config.MET_API_BASE_URL, logger)

	artworkSvc := artworksapi.NewService(db, metClient, logger)
	authSvc := authapi.NewService(db, config.JWT_SECRET, logger)
	userSvc := usersapi.NewService(db, logger)
	likeSvc := likesapi.NewService(db, logger)
	savedSvc := savedapi.NewService(db, logger)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, &routes.Deps{
		Auth:      authapi.NewHandler(authSvc),
		Artworks:  artworksapi.NewHandler(artworkSvc),
		Likes:     likesapi.NewHandler(likeSvc),
		Saved:     savedapi.NewHandler(savedSvc),
		Users:     usersapi.NewHandler(userSvc),
		JWTSecret: config.JWT_SECRET,
	})

	r.Run(":" + config.PORT)
}
