package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"motioncraft/api/internal/app"
	"motioncraft/api/internal/config"
	"motioncraft/api/internal/httpserver"
)

func main() {
	cfg := config.Load()

	a, err := app.New(cfg, "analyzer", nil)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := httpserver.Serve(ctx, ":"+cfg.Port, a.Handler().Routes(), a.Log); err != nil {
		a.Log.Fatal().Err(err).Msg("http server failed")
	}
}
