package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BioBenchWorks/nanoqc-cli/internal/common"
	cfgpkg "github.com/BioBenchWorks/nanoqc-cli/internal/config"
)

var (
	// Global flags
	cfgFile   string
	logLevel  string
	logFormat string

	// Loaded configuration
	cfg *cfgpkg.Config
)

var rootCmd = &cobra.Command{
	Use:   "nanoqc",
	Short: "nanoqc: concentration, purity and dilution analysis for spectrophotometer readings",
	Long: `nanoqc analyzes NanoDrop-style absorbance readings (A260/A280/A230) for
DNA, RNA and protein samples: it derives concentration and purity
ratios, judges purity against sample-type thresholds, and computes the
dilution volumes needed to reach a protocol target. Samples can be
entered one at a time or processed in batch from a CSV/TSV/XLSX table.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(bootstrap)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.nanoqc/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console|json (overrides config)")
}

func bootstrap() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults so commands that
		// only need the default protocols keep working.
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Default()
	}
	cfg = c

	level := cfg.LogLevel
	if rootCmd.PersistentFlags().Changed("log-level") {
		level = logLevel
	}
	format := cfg.LogFormat
	if rootCmd.PersistentFlags().Changed("log-format") {
		format = logFormat
	}
	if err := common.SetupLogger(level, format); err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %v\n", err)
	}
}
