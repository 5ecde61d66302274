package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/haccp-app/config"
	"github.com/yeremiapane/haccp-app/database"
	"github.com/yeremiapane/haccp-app/router"
	"github.com/yeremiapane/haccp-app/services"
	"github.com/yeremiapane/haccp-app/utils"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}

	utils.InitLogger(cfg.Log.Level, cfg.Log.Format)

	// Set gin mode
	if cfg.Server.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize DB
	db, err := database.InitDB(cfg.Database)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	store := database.NewGormStore(db)
	defer func() {
		if err := store.Close(); err != nil {
			utils.ErrorLogger.Printf("Error closing database: %v", err)
		}
	}()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), time.Minute)
	if _, err := database.Prepare(seedCtx, db, cfg.Database.SeedMode); err != nil {
		cancelSeed()
		utils.ErrorLogger.Fatalf("Failed to prepare database: %v", err)
	}
	cancelSeed()

	deps, err := router.NewDependencies(store, cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to wire services: %v", err)
	}

	reporter := services.NewComplianceReporter(deps.Stats, cfg.Reporting.CronSchedule, deps.Location, utils.InfoLogger)
	if err := reporter.Start(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to start compliance reporter: %v", err)
	}
	defer reporter.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.SetupRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.InfoLogger.Printf("HACCP server listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Errorf("HTTP server crashed: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	utils.InfoLogger.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Printf("Graceful shutdown failed: %v", err)
	}
}
