package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dwikikusuma/storefront/internal/devserver"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "devserver",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	srv := devserver.New(log)
	app := srv.App()

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	go func() {
		log.Info("dev server starting", slog.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			log.Error("dev server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("dev server shutdown error", slog.Any("err", err))
	}

	log.Info("bye")
}
