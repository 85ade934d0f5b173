package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/company-scraper/internal/observability"
	"github.com/jonathan/company-scraper/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing POST /scrape, POST /scrape/diagnostics and GET /health.

Requires SCRAPER_API_SECRET and OPENCAGE_API_KEY. Configuration can also be loaded from a JSON file using --config; environment variables override file values and --port overrides both.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	log, err := observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	scraper, cleanup, err := buildPipeline(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		APISecret: cfg.APISecret,
		Scraper:   scraper,
		Log:       log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
