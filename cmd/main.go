package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ribbonclub/ribbon_api/config"
	deps "github.com/ribbonclub/ribbon_api/internal/debs"
	api "github.com/ribbonclub/ribbon_api/internal/http/rest"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)
	defer deps.Log.Sync()

	if err := deps.DB.EnsureSchema(context.Background()); err != nil {
		log.Panicln("failed to ensure schema", "error", err)
	}

	a := &api.API{
		Config: cfg,
		Deps:   deps,
		DB:     deps.Pool(),
	}
	go func() {
		deps.Log.Info("server running", zap.Int("port", cfg.Port))
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	deps.Log.Info("shutdown requested, draining", zap.Duration("grace", allowConnectionsAfterShutdown))
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	if err := a.Shutdown(); err != nil {
		deps.Log.Error("server shutdown", zap.Error(err))
	}
	deps.DB.Close()
	deps.Log.Info("server stopped")
}
