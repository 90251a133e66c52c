package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sagarc03/website/server"
	"github.com/sagarc03/website/settings"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server.

Static files from static_dir are served under static_route. Address, port,
log level, workers and secret key fall back to the server defaults for the
environment selected by APP_ENV when they are not configured.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	selector, _ := settings.OSEnv{}.LookupEnv(settings.EnvSelector)
	cfg := s.ServerConfig(server.ActiveEnvironment(selector), slog.Default())

	srv, err := server.New(cfg, server.Options{
		StaticDir:   s.StaticDir,
		StaticRoute: s.StaticRoute,
		Logger:      slog.Default(),
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
