package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/company-scraper/internal/config"
	"github.com/jonathan/company-scraper/internal/observability"
	"github.com/jonathan/company-scraper/internal/pipeline"
	"github.com/jonathan/company-scraper/internal/types"
	"github.com/spf13/cobra"
)

var (
	scrapeConfigPath  string
	scrapeJSON        bool
	scrapeDiagnostics bool
	scrapeUseBrowser  bool
	scrapeVerbose     bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape one company homepage and print its profile",
	Long: `Runs the scrape pipeline once: fetch -> analyze -> extract -> assemble.

Requires OPENCAGE_API_KEY. Set GEMINI_API_KEY to tag entities with Gemini instead of the built-in rules.`,
	Args: cobra.ExactArgs(1),
	RunE: runScrapeCmd,
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapeConfigPath, "config", "", "Path to config.json file")
	scrapeCmd.Flags().BoolVar(&scrapeJSON, "json", false, "Print the result as JSON")
	scrapeCmd.Flags().BoolVarP(&scrapeDiagnostics, "diagnostics", "d", false, "Include industry scores and entities")
	scrapeCmd.Flags().BoolVar(&scrapeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	scrapeCmd.Flags().BoolVarP(&scrapeVerbose, "verbose", "v", false, "Print progress and debug logs")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrapeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(scrapeConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = scrapeUseBrowser
	}
	if scrapeVerbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := scrapeOptions{JSON: scrapeJSON, Diagnostics: scrapeDiagnostics, Verbose: scrapeVerbose}
	return scrapeURL(context.Background(), cfg, args[0], os.Stdout, opts)
}

type scrapeOptions struct {
	JSON        bool
	Diagnostics bool
	Verbose     bool
}

// scrapeURL runs the pipeline for url and writes the profile to out.
func scrapeURL(ctx context.Context, cfg *config.Config, url string, out io.Writer, opts scrapeOptions) error {
	log, err := observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	p, cleanup, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	if opts.Verbose {
		p.OnProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Stage, event.Message)
		}
	}

	result, err := p.Run(ctx, url)
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	if opts.JSON {
		var payload any = result.Profile
		if opts.Diagnostics {
			payload = types.ScrapeDiagnosticsResponse{Profile: result.Profile, Diagnostics: result.Diagnostics}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	printer := observability.NewPrinter(out)
	printer.PrintProfile(result.Profile)
	if opts.Diagnostics {
		printer.PrintDiagnostics(result.Diagnostics)
	}
	return nil
}
