package main

import (
	"log"
	"time"

	"github.com/athh15/vef2-hop1/config"
	"github.com/athh15/vef2-hop1/controllers"
	"github.com/athh15/vef2-hop1/database"
	apierrors "github.com/athh15/vef2-hop1/errors"
	"github.com/athh15/vef2-hop1/logger"
	"github.com/athh15/vef2-hop1/middleware"
	"github.com/athh15/vef2-hop1/models"
	"github.com/athh15/vef2-hop1/repository"
	"github.com/athh15/vef2-hop1/routes"
	"github.com/athh15/vef2-hop1/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not registered in .env")
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(cfg); err != nil {
		logger.Log.Fatal("Could not connect to PostgreSQL", zap.Error(err))
	}
	if err := models.Migrate(database.DB); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}

	productRepo := repository.NewProductRepository(database.DB)
	categoryRepo := repository.NewCategoryRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)
	cartRepo := repository.NewCartRepository(database.DB)

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenLifetime)
	productService := services.NewProductService(productRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	authService := services.NewAuthService(userRepo, tokenService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(logger.RequestLogger())
	r.Use(apierrors.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.NoRoute(apierrors.NotFoundHandler())

	routes.Register(r, routes.Handlers{
		Products:   controllers.NewProductController(productService, cfg.BaseURL),
		Categories: controllers.NewCategoryController(categoryService),
		Cart:       controllers.NewCartController(cartService),
		Users:      controllers.NewUserController(authService),
		Auth:       middleware.RequireAuthentication(tokenService, userRepo),
		Admin:      middleware.RequireAdmin(),
	})

	logger.Log.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
