package main

import (
	"log"
	"os"

	"github.com/dmoros/lavanderia-pos/internal/application/service"
	"github.com/dmoros/lavanderia-pos/internal/config"
	"github.com/dmoros/lavanderia-pos/internal/domain/entity"
	"github.com/dmoros/lavanderia-pos/internal/presentation/http/handler"
	"github.com/dmoros/lavanderia-pos/internal/presentation/http/routes"
	"github.com/dmoros/lavanderia-pos/pkg/printsurface"
	"github.com/dmoros/lavanderia-pos/pkg/render"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	company := entity.Company{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
		TaxID:   cfg.Company.TaxID,
	}

	// Initialize the print surface
	surface, err := printsurface.NewSurfaceFromConfig(cfg.Printer.Type, cfg.Printer.SpoolDir)
	if err != nil {
		log.Fatalf("Failed to initialize print surface: %v", err)
	}

	defaultProfile := render.Profile{
		WidthMm: cfg.Printer.WidthMm,
		Thermal: cfg.Printer.Thermal,
	}

	// Initialize services
	renderer := render.NewRenderer(cfg.Sales.Currency)
	pricingService := service.NewPricingService()
	cartService := service.NewCartService(pricingService, cfg.Sales.TaxRate)
	receiptService := service.NewReceiptService(company)
	exportService := service.NewExportService()
	printService := service.NewPrintService(renderer, surface, cfg.Printer.Type, cfg.Printer.FallbackDelay, defaultProfile)

	// Initialize handlers
	handlers := &routes.Handlers{
		Cart:    handler.NewCartHandler(cartService),
		Receipt: handler.NewReceiptHandler(receiptService, exportService, renderer, defaultProfile),
		Print:   handler.NewPrintHandler(printService, receiptService),
	}

	router := routes.Setup(handlers, cfg)

	log.Printf("Starting %s on port %s (env: %s)", cfg.App.Name, cfg.App.Port, cfg.App.Env)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Printf("Server failed: %v", err)
		os.Exit(1)
	}
}
