// Package main provides the calculator service binary: the pet growth
// evaluator and job-change cost engine behind a JSON HTTP API.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/kaichu/lineage-calc/internal/config"
	"github.com/kaichu/lineage-calc/internal/game/jobchange"
	"github.com/kaichu/lineage-calc/internal/game/pet"
	"github.com/kaichu/lineage-calc/internal/httpapi"
	"github.com/kaichu/lineage-calc/internal/observability"
	"github.com/kaichu/lineage-calc/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	registry := pet.DefaultRegistry()
	if cfg.Content.PetsDir != "" {
		registry, err = pet.LoadRegistry(cfg.Content.PetsDir)
		if err != nil {
			logger.Fatal("loading pet tables", zap.Error(err))
		}
	}
	logger.Info("pet tables loaded", zap.Int("species", registry.Len()))

	schedule := jobchange.DefaultSchedule()
	if cfg.Content.PricingFile != "" {
		schedule, err = jobchange.LoadSchedule(cfg.Content.PricingFile)
		if err != nil {
			logger.Fatal("loading pricing tables", zap.Error(err))
		}
	}
	engine := jobchange.NewEngine(schedule)

	router := httpapi.NewRouter(cfg.HTTP, registry, engine, logger)
	httpSvc := server.NewHTTPService(cfg.HTTP, router, logger)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("http", httpSvc)

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
}
