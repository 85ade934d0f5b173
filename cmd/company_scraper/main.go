// Package main provides the entry point for the company scraper CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "company_scraper",
	Short: "Company homepage scraper",
	Long:  "Company scraper fetches a company homepage and extracts a structured profile: name, locations, industry, size, contact details and tagline.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
