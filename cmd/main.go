package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"silencegate/pkg/bridge"
	"silencegate/pkg/config"
	"silencegate/pkg/log"
)

func main() {
	// a .env file is optional and only a convenience for local development
	_ = godotenv.Load()

	logger := log.NewLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logger.LogFatal("failed to load configuration", "err", err)
	}
	if len(cfg.MattermostTokens) == 0 {
		logger.LogWarn("no mattermost tokens configured. every slash command will be rejected")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	b := bridge.New(cfg, logger)
	go func() {
		if err := b.Run(); err != nil {
			logger.LogFatal("bridge API failed", "err", err)
		}
	}()

	<-sigs // Wait for signals (this hangs until a signal arrives)
	logger.LogInfo("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := b.Shutdown(ctx); err != nil {
		logger.LogError("failed to shut down gracefully", err)
	}
}
