package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"shelter-cost/api"
	"shelter-cost/config"
	"shelter-cost/services"
	"shelter-cost/storage"
	"shelter-cost/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger().SetLevel(utils.ParseLevel(cfg.LogLevel))

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	src, closeSource, err := storage.OpenSource(cfg)
	if err != nil {
		logger.Error("Failed to open data source: %v", err)
		os.Exit(1)
	}
	defer closeSource()

	est, err := services.NewEstimator(src, cfg.Params, logger)
	if err != nil {
		logger.Error("Failed to load datasets: %v", err)
		os.Exit(1)
	}

	r := api.NewRouter(est, logger)
	logger.Info("=== Shelter Cost API listening on %s ===", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
