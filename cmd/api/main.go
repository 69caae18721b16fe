package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"steel-procurement/internal/api/handlers"
	"steel-procurement/internal/api/middleware"
	"steel-procurement/internal/config"
	"steel-procurement/internal/data"
	"steel-procurement/internal/forecast"
	"steel-procurement/internal/logger"
	"steel-procurement/internal/lp"
)

func main() {
	log := logger.New()
	defer log.Sync()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalw("failed to load config", "path", path, "error", err)
		}
		cfg = loaded
	}

	// The forecaster and supplier table are resolved once here and passed
	// into handlers; the engines only ever see already-resolved data.
	indexPath := forecast.DefaultIndexPath()
	forecaster, err := forecast.LoadCSV(indexPath)
	if err != nil {
		log.Fatalw("failed to load price index", "path", indexPath, "error", err)
	}
	log.Infow("price index loaded", "path", indexPath)

	suppliersPath := cfg.Sourcing.SuppliersFile
	if suppliersPath == "" {
		suppliersPath = data.DefaultSuppliersPath()
	}
	supplierCache := data.NewSupplierCache(suppliersPath)

	solver := &lp.SimplexSolver{}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	analyzeHandler := handlers.NewAnalyzeHandler(forecaster, cfg.Analysis)
	paretoHandler := handlers.NewParetoHandler(supplierCache, solver, cfg.Sourcing)
	forecastHandler := handlers.NewForecastHandler(forecaster)
	supplierHandler := handlers.NewSupplierHandler(supplierCache)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/analyze", analyzeHandler.RunAnalysis)
		api.POST("/pareto", paretoHandler.RunPareto)

		api.POST("/forecast", forecastHandler.GetForecast)
		api.GET("/scenarios", forecastHandler.GetScenarios)

		api.GET("/strategies", handlers.ListStrategies)
		api.GET("/suppliers", supplierHandler.ListSuppliers)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Infow("starting API server", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
