package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/campaign-planner/internal/config"
	"github.com/jonathan/campaign-planner/internal/pipeline"
)

const defaultConfigPath = "config.yaml"

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the campaign plan from keyword exports",
	Long: "Reads the configured keyword planner exports, classifies and groups every keyword, " +
		"forecasts the channel budgets and writes the plan sheets and campaign_plan.json.",
	RunE: runBuild,
}

var (
	buildConfig string
	buildOutput string
)

func init() {
	buildCmd.Flags().StringVarP(&buildConfig, "config", "c", "", "Path to plan config YAML (default $CAMPAIGN_PLANNER_CONFIG or config.yaml)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output directory (overrides output.dir)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	path := buildConfig
	if path == "" {
		path = config.ConfigPathFromEnv(defaultConfigPath)
	}

	cfg, err := config.LoadPlanConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if buildOutput != "" {
		cfg.Output.Dir = buildOutput
	}

	plan, paths, err := pipeline.Run(cmd.Context(), cfg, pipeline.RunOptions{
		Logger:  logger,
		Verbose: verbose,
		Out:     cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "\nPlan %s: %d keywords in %d ad groups\n", plan.RunID, len(plan.Records), len(plan.Summary))
	for _, p := range paths {
		_, _ = fmt.Fprintf(out, "  wrote %s\n", p)
	}
	if len(plan.Search) == 0 && cfg.Budgets.SearchMonthlyINR > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: search budget set but no search groups were forecast\n")
	}
	return nil
}
