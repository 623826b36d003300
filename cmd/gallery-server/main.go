package main

import (
	"log"

	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/auth"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/config"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/database"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/folders"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/images"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/manage"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/models"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/storage"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/tags"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/dustycrowbones/photo-gallery-project/api/swagger"
)

// @title Photo Gallery API
// @version 1.0
// @description A personal photo gallery: albums, uploads, tags, and tag search.

// @contact.name Gallery Support
// @contact.url https://github.com/dustycrowbones/photo-gallery-project

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token. Format: "Bearer {token}"

func main() {
	cfg := config.Load()

	// Connect to database
	if err := database.Connect(cfg.DBPath); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := models.AutoMigrate(database.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Media store for originals and thumbnails
	store, err := storage.NewStore(cfg.MediaDir)
	if err != nil {
		log.Fatalf("Failed to initialize media store: %v", err)
	}

	// Set up Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded originals and derived thumbnails
	r.Static("/media", store.BaseDir())

	// API routes
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"service": "gallery",
			})
		})

		// Auth routes (public)
		authHandler := auth.NewHandler(database.GetDB())
		authHandler.RegisterRoutes(api.Group("/auth"))

		// Folder routes (listing is public, rest owner-only)
		foldersHandler := folders.NewHandler(database.GetDB(), store)
		foldersHandler.RegisterRoutes(api)

		// Image routes (owner-only, including tag search)
		imagesHandler := images.NewHandler(database.GetDB(), store)
		imagesHandler.RegisterRoutes(api)

		// Tag routes (global resource)
		tagsHandler := tags.NewHandler(database.GetDB())
		tagsHandler.RegisterRoutes(api)

		// Library management view
		manageHandler := manage.NewHandler(database.GetDB())
		manageHandler.RegisterRoutes(api)
	}

	log.Printf("Starting gallery server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
