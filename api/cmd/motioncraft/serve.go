package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"motioncraft/api/internal/app"
	"motioncraft/api/internal/config"
	"motioncraft/api/internal/httpserver"
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (/health, /analyze_text, /analyze_image, /metrics)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}
			a, err := app.New(cfg, "analyzer", cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return httpserver.Serve(ctx, ":"+cfg.Port, a.Handler().Routes(), a.Log)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default $PORT or 8000)")
	return cmd
}
