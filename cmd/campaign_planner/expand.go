package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/campaign-planner/internal/config"
	"github.com/jonathan/campaign-planner/internal/expansion"
	"github.com/jonathan/campaign-planner/internal/observability"
	"github.com/jonathan/campaign-planner/internal/rendering"
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Generate themed keyword lists and asset groups",
	Long: "Expands theme seeds with head terms, qualifiers and long-tail modifiers, filters blocked " +
		"terms, ranks candidates against a keyword planner export and writes keywords.csv and asset_groups.json.",
	RunE: runExpand,
}

var (
	expandConfig string
	expandOutput string
)

func init() {
	expandCmd.Flags().StringVarP(&expandConfig, "config", "c", "", "Path to expansion config YAML (required)")
	expandCmd.Flags().StringVarP(&expandOutput, "out", "o", "deliverables/2", "Output directory")

	if err := expandCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}

	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadExpansionConfig(expandConfig)
	if err != nil {
		return fmt.Errorf("failed to load expansion config: %w", err)
	}

	gen, err := expansion.NewGenerator(cfg, expansion.WithLogger(logger))
	if err != nil {
		return err
	}
	result, err := gen.Generate()
	if err != nil {
		return err
	}
	if verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintExpansion(result)
	}

	paths, err := rendering.WriteExpansion(expandOutput, result)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Generated %d keyword rows for %d themes\n", len(result.Keywords), len(result.AssetGroups))
	for _, p := range paths {
		_, _ = fmt.Fprintf(out, "  wrote %s\n", p)
	}
	return nil
}
