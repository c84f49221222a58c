package routes

import (
	"time"

	"github.com/dmoros/lavanderia-pos/internal/config"
	"github.com/dmoros/lavanderia-pos/internal/presentation/http/handler"
	"github.com/dmoros/lavanderia-pos/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Cart    *handler.CartHandler
	Receipt *handler.ReceiptHandler
	Print   *handler.PrintHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		carts := v1.Group("/carts")
		{
			carts.POST("", h.Cart.Create)
			carts.GET("/:id", h.Cart.Get)
			carts.POST("/:id/lines", h.Cart.AddLine)
			carts.DELETE("/:id/lines/:lineId", h.Cart.RemoveLine)
			carts.GET("/:id/totals", h.Cart.Totals)
			carts.POST("/:id/payment", h.Cart.Settle)
		}

		receipts := v1.Group("/receipts")
		{
			receipts.POST("/normalize", h.Receipt.Normalize)
			receipts.POST("/render/screen", h.Receipt.RenderScreen)
			receipts.POST("/render/printable", h.Receipt.RenderPrintable)
			receipts.POST("/print", h.Print.Print)
		}

		v1.GET("/printer/status", h.Print.Status)
		v1.POST("/reports/daily", h.Receipt.DailyReport)
	}

	return router
}
