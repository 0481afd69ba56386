package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/crylonblue/blitzrechnung/internal/logger"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	logLevel     string
	logFormat    string
)

var rootCmd = &cobra.Command{
	Use:   "blitzrechnung",
	Short: "Map invoice records into compliant e-invoice documents",
	Long: `Blitzrechnung is the invoice compliance and mapping layer for
German/EU e-invoicing (XRechnung/ZUGFeRD-class output).

It resolves invoice parties (the issuing company or frozen contact
snapshots), normalizes line items with VAT derivation, checks company
master data for legal completeness, and produces the canonical
renderable invoice consumed by PDF and XML renderers.

Examples:
  # Map a raw invoice record to its renderable form
  blitzrechnung render invoice.json

  # Check company master data for legal completeness
  blitzrechnung check company.json

  # Inspect generated invoice artifacts
  blitzrechnung info invoice.pdf invoice.xml

  # Start the HTTP API
  blitzrechnung serve`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (env: LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format, json or console (env: LOG_FORMAT)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env is optional
	_ = godotenv.Load()

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logFormat == "" {
		logFormat = os.Getenv("LOG_FORMAT")
	}

	cfg := logger.DefaultConfig()
	if logLevel != "" {
		cfg.Level = logLevel
	}
	if logFormat != "" {
		cfg.Format = logFormat
	}
	if err := logger.Setup(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log configuration: %v\n", err)
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
