package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oraExperience/ora-electronics/internal/categories"
	"github.com/oraExperience/ora-electronics/internal/config"
	"github.com/oraExperience/ora-electronics/internal/db"
	"github.com/oraExperience/ora-electronics/internal/images"
	"github.com/oraExperience/ora-electronics/internal/logger"
	"github.com/oraExperience/ora-electronics/internal/middleware"
	"github.com/oraExperience/ora-electronics/internal/products"
	"github.com/oraExperience/ora-electronics/internal/stores"
	"github.com/oraExperience/ora-electronics/internal/verticals"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.AppEnv)

	pool, err := db.NewPostgres(cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	// Repos
	prodRepo := products.NewRepo(pool)
	catRepo := categories.NewRepo(pool)
	storeRepo := stores.NewRepo(pool)
	imageRepo := images.NewRepo(pool)
	vertRepo := verticals.NewRepo(pool)

	// Handlers
	prodHandler := products.NewHandler(prodRepo, log)
	catHandler := categories.NewHandler(catRepo, log)
	storeHandler := stores.NewHandler(storeRepo, log)
	imageHandler := images.NewHandler(imageRepo, log)
	vertHandler := verticals.NewHandler(vertRepo, log)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))

	// Everything under /api is uncacheable and rate limited.
	api := r.Group("/api")
	api.Use(middleware.NoCache())
	api.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	prods := api.Group("/products")
	{
		prods.GET("/popular-pills", prodHandler.PopularPills)
		prods.GET("/search", prodHandler.Search)
		prods.GET("/top", prodHandler.Top)
		prods.GET("/product-variants", prodHandler.Variants)
		prods.GET("/home-rails", prodHandler.HomeRails)
		prods.GET("/category/:categoryName", catHandler.ProductsByCategory)
		prods.GET("/similar/:keyName", prodHandler.Similar)
		// Catch-all product lookup stays after the specific routes.
		prods.GET("/:keyName", prodHandler.ByKeyName)
	}

	api.GET("/reviews/:keyName", prodHandler.Reviews)
	api.GET("/verticals", vertHandler.ListAll)
	api.GET("/stores/for-product/:keyName", storeHandler.ForProduct)
	api.GET("/images/gallery/:keyName", imageHandler.Gallery)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "ora-api",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
