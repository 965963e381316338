// Package main implements the campaign_planner CLI for building search, shopping and
// performance max campaign plans from keyword planner exports.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "campaign_planner",
	Short: "Keyword campaign planner",
	Long: "campaign_planner turns keyword planner exports into ad group structures, budget forecasts, " +
		"keyword expansions and suggested shopping bids.",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print step summaries and debug logs")
}

// setupLogger builds the production logger, at debug level in verbose mode
func setupLogger(_ *cobra.Command, _ []string) error {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	logger = l
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
