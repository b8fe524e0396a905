package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"shelter-cost/config"
	"shelter-cost/models"
	"shelter-cost/report"
	"shelter-cost/services"
	"shelter-cost/storage"
	"shelter-cost/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger().SetLevel(utils.ParseLevel(cfg.LogLevel))

	logger.Info("=== Shelter Cost Estimator starting ===")
	logger.Info("Config: source: %s | people/room: %d | employees/10 rooms: %d | inflation: %.2f | nightly rate: $%.2f",
		cfg.DataSource, cfg.Params.PeoplePerRoom, cfg.Params.NumEmployeesPer10Rooms,
		cfg.Params.MinWageInflationPercentage, cfg.Params.AvgHotelRate)

	src, closeSource, err := storage.OpenSource(cfg)
	if err != nil {
		logger.Error("Failed to open data source: %v", err)
		if cfg.DataSource == storage.SourcePostgres {
			logger.Error("Make sure Docker is running: docker compose up -d")
		}
		os.Exit(1)
	}
	defer closeSource()

	est, err := services.NewEstimator(src, cfg.Params, logger)
	if err != nil {
		var loadErr *models.DataLoadError
		if errors.As(err, &loadErr) {
			logger.Error("Could not load %s: %v", loadErr.Source, loadErr.Err)
		} else {
			logger.Error("Failed to build estimator: %v", err)
		}
		closeSource()
		os.Exit(1)
	}

	sinks := report.MultiSink{report.NewConsoleSink(os.Stdout, true), report.NewCSVSink(cfg.OutputDir)}
	docs, closeDocs, err := documentSink(cfg, logger)
	if err != nil {
		logger.Error("Failed to prepare output dir: %v", err)
		closeSource()
		os.Exit(1)
	}
	defer closeDocs()
	sinks = append(sinks, docs)

	reporter := report.NewReporter(est, sinks, logger, cfg.RenderConcurrency)
	if err := reporter.RenderAll(time.Now()); err != nil {
		logger.Error("Some artifacts failed to render: %v", err)
	}

	if cfg.LookupState != "" {
		msg, err := reporter.DailyCostForState(cfg.LookupState)
		if err != nil {
			logger.Warn("%v", err)
		} else {
			fmt.Printf("\n  %s\n", msg)
		}
	}

	fmt.Printf("\n  Done. %d states | artifacts → %s\n\n", len(est.States()), cfg.OutputDir)
}

// documentSink writes PNG captures when RENDER_IMAGES is set and a browser
// starts, and plain HTML documents otherwise. ImageSink writes the HTML too.
func documentSink(cfg *config.Config, logger *utils.Logger) (report.Sink, func(), error) {
	if cfg.RenderImages {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		images, err := report.NewImageSink(ctx, cfg.OutputDir, cfg.ChromeBin, logger)
		if err == nil {
			return images, func() {
				_ = images.Close()
				cancel()
			}, nil
		}
		cancel()
		logger.Warn("Image rendering disabled, writing HTML only: %v", err)
	}

	html, err := report.NewHTMLSink(cfg.OutputDir)
	if err != nil {
		return nil, func() {}, err
	}
	return html, func() {}, nil
}
