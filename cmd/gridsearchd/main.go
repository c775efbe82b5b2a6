// Command gridsearchd serves the grid search engine and maze generator over HTTP.
//
// Configuration is read from .env and the environment (see package config).
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridsearch/config"
	"github.com/katalvlaran/gridsearch/engine"
	"github.com/katalvlaran/gridsearch/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Addr:         cfg.Addr,
		Runner:       engine.NewRunner(engine.WithMaxCells(cfg.MaxCells)),
		Logger:       appLogger,
		DefaultSpeed: cfg.DefaultSpeed,
		MaxCells:     cfg.MaxCells,
	})
	appLogger.Info("gridsearchd starting",
		"addr", cfg.Addr,
		"ginMode", cfg.GinMode,
		"maxCells", cfg.MaxCells,
		"defaultSpeed", cfg.DefaultSpeed,
	)
	if err = srv.Run(ctx); err != nil {
		appLogger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	appLogger.Info("gridsearchd stopped")
}
