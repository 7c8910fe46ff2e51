package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edupet/engine/internal/concurrency"
	"github.com/edupet/engine/internal/config"
	"github.com/edupet/engine/internal/database/sqlite"
	"github.com/edupet/engine/internal/event"
	"github.com/edupet/engine/internal/handler"
	"github.com/edupet/engine/internal/ledger"
	"github.com/edupet/engine/internal/minigame"
	"github.com/edupet/engine/internal/plant"
	"github.com/edupet/engine/internal/reset"
	"github.com/edupet/engine/internal/scheduler"
	"github.com/edupet/engine/internal/server"
	"github.com/edupet/engine/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	thresholds, err := config.LoadRewardThresholds(cfg.RewardsFile)
	if err != nil {
		slog.Error("Failed to load reward thresholds", "error", err, "file", cfg.RewardsFile)
		os.Exit(1)
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}
	defer store.Close()

	userRepo := store.UserStates()
	plantRepo := store.Plants()
	minigameRepo := store.Minigames()

	bus := event.NewMemoryBus()

	// One lock manager across all services: every user-document writer must
	// contend on the same user-state lock.
	locks := concurrency.NewLockManager()

	plantConfig := plant.DefaultConfig()
	plantConfig.Locks = locks
	plantService := plant.NewService(plantRepo, userRepo, plantConfig)
	ledgerService := ledger.NewService(userRepo, ledger.Config{Thresholds: thresholds, Locks: locks})
	resetService := reset.NewService(userRepo, plantRepo, bus, reset.Config{PlantConfig: plantConfig, Locks: locks})

	minigameConfig := minigame.DefaultConfig()
	minigameConfig.Locks = locks
	minigameService := minigame.NewService(minigameRepo, ledgerService, minigameConfig)

	// Background maintenance: the reset check and the sweeps both poll, and
	// both fire once immediately on start.
	pool := worker.NewPool(1, 8)
	pool.Start()
	defer pool.Stop()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.ResetInterval, worker.NewResetJob(resetService))
	sched.Schedule(cfg.ResetInterval, worker.NewMaintenanceJob(resetService))
	defer sched.Stop()

	srv := server.NewServer(cfg.Port, store, userRepo,
		plantService, ledgerService, resetService, minigameService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
