package main

import (
	"context"
	"log"
	"net/http"

	"storefront-api/cart"
	"storefront-api/checkout"
	"storefront-api/config"
	"storefront-api/handlers"
	"storefront-api/logging"
	"storefront-api/middleware"
	"storefront-api/reviews"
	"storefront-api/routes"
	"storefront-api/search"
	"storefront-api/store"
	"storefront-api/tracking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	// Set Gin mode
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	// Initialize database
	if _, err := config.InitDB(cfg.DBPath); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if cfg.SeedData {
		if err := store.Seed(config.DB); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	data := store.New(config.DB)
	cartSvc := cart.NewService(cart.NewLedger(), data, logger.Named("cart"))
	cartSvc.Ledger().Subscribe(func(s cart.Snapshot) {
		logger.Debug("cart changed", zap.Uint64("version", s.Version), zap.Int("items", s.Totals.ItemCount))
	})
	if _, err := cartSvc.Load(context.Background()); err != nil {
		logger.Warn("could not load cart", zap.Error(err))
	}

	h := &handlers.Handler{
		Cart:     cartSvc,
		Checkout: checkout.NewService(checkout.NewValidator(), cartSvc, data, logger.Named("checkout")),
		Tracking: tracking.NewService(data, logger.Named("tracking")),
		Search:   search.NewComposer(),
		Reviews:  reviews.NewService(data, logger.Named("reviews")),
		Data:     data,
		Log:      logger,
	}

	r := gin.New()
	r.Use(middleware.CORS(), middleware.RequestID(), middleware.Logger(logger), gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Storefront Order Pipeline API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍵 Welcome to the Storefront Order Pipeline API",
			"docs":    "/api/state-machine",
			"health":  "/health",
		})
	})

	routes.SetupRoutes(r, h)

	logger.Info("server starting", zap.String("addr", "http://localhost:"+cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
