package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/campaign-planner/internal/bidding"
	"github.com/jonathan/campaign-planner/internal/config"
	"github.com/jonathan/campaign-planner/internal/observability"
	"github.com/jonathan/campaign-planner/internal/rendering"
)

var bidsCmd = &cobra.Command{
	Use:   "bids",
	Short: "Suggest shopping CPC bids per product group",
	Long:  "Derives a target CPC from the account's CPA or ROAS target, clamps it to each product group's observed bid range and writes bids.csv.",
	RunE:  runBids,
}

var (
	bidsConfig string
	bidsOutput string
)

func init() {
	bidsCmd.Flags().StringVarP(&bidsConfig, "config", "c", "", "Path to bids config YAML (required)")
	bidsCmd.Flags().StringVarP(&bidsOutput, "out", "o", "deliverables/3", "Output directory")

	if err := bidsCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}

	rootCmd.AddCommand(bidsCmd)
}

func runBids(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadBidConfig(bidsConfig)
	if err != nil {
		return fmt.Errorf("failed to load bids config: %w", err)
	}

	rows := bidding.Compute(cfg)
	if verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintBids(rows)
	}
	logger.Debug("bids computed", zap.Int("product_groups", len(rows)))

	path, err := rendering.WriteBids(bidsOutput, rows)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Suggested bids for %d product groups\n  wrote %s\n", len(rows), path)
	return nil
}
