// Package main Research Portal API
//
// @title           Research Portal API
// @version         1.0
// @description     JSON API витрины исследовательских отчётов: тарифы, выбор плана, личный кабинет

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/magabrotheeeer/research-portal/docs"
	"github.com/magabrotheeeer/research-portal/internal/app/portal"
	"github.com/magabrotheeeer/research-portal/internal/config"
	"github.com/magabrotheeeer/research-portal/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting research-portal", slog.String("env", cfg.Env), slog.Bool("demo", cfg.Demo))
	logger.Debug("config loaded", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := portal.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("research-portal stopped gracefully")
}
