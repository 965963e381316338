// Package pipeline provides the high-level orchestration for building a campaign plan.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/campaign-planner/internal/classify"
	"github.com/jonathan/campaign-planner/internal/config"
	"github.com/jonathan/campaign-planner/internal/forecast"
	"github.com/jonathan/campaign-planner/internal/ingestion"
	"github.com/jonathan/campaign-planner/internal/observability"
	"github.com/jonathan/campaign-planner/internal/planning"
	"github.com/jonathan/campaign-planner/internal/rendering"
	"github.com/jonathan/campaign-planner/internal/types"
)

// Step names reported through ProgressEvent
const (
	StepIngest   = "ingest"
	StepAssemble = "assemble"
	StepForecast = "forecast"
	StepWrite    = "write"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	// Rules overrides the built-in classification rules when set
	Rules      *classify.Rules
	Logger     *zap.Logger
	Verbose    bool
	Out        io.Writer
	OnProgress ProgressCallback
}

func (o *RunOptions) withDefaults() {
	if o.Rules == nil {
		o.Rules = classify.DefaultRules()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
}

// runState carries the per-run identity shared by every step
type runState struct {
	opts    RunOptions
	runID   string
	total   int
	printer *observability.Printer
}

// step prints the numbered step banner
//
//nolint:errcheck // progress output is best effort
func (r *runState) step(i int, format string, args ...any) {
	fmt.Fprintf(r.opts.Out, "Step %d/%d: %s\n", i, r.total, fmt.Sprintf(format, args...))
}

// emitProgress calls the progress callback if configured
func (r *runState) emitProgress(step, message string, content any) {
	if r.opts.OnProgress != nil {
		r.opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   r.runID,
			Content: content,
		})
	}
}

// BuildCampaignPlan reads every configured keyword export, assembles the keyword plan and
// forecasts the search, shopping and asset group budgets. Inputs are read one at a time
// in precedence order; an unreadable input contributes no rows.
func BuildCampaignPlan(ctx context.Context, cfg *config.PlanConfig, opts RunOptions) (*types.CampaignPlan, error) {
	opts.withDefaults()
	return newRun(opts, 3).build(ctx, cfg)
}

// Run builds the campaign plan and writes its sheets and JSON document to the configured
// output directory. It returns the plan and the written paths.
func Run(ctx context.Context, cfg *config.PlanConfig, opts RunOptions) (*types.CampaignPlan, []string, error) {
	opts.withDefaults()
	r := newRun(opts, 4)

	plan, err := r.build(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	r.step(4, "Writing plan to %s...", cfg.Output.Dir)
	paths, err := rendering.WritePlan(cfg.Output.Dir, plan)
	if err != nil {
		return plan, paths, fmt.Errorf("writing plan failed: %w", err)
	}
	r.opts.Logger.Info("plan written", zap.String("run_id", plan.RunID), zap.String("dir", cfg.Output.Dir), zap.Int("files", len(paths)))
	r.emitProgress(StepWrite, fmt.Sprintf("Wrote %d files to %s", len(paths), cfg.Output.Dir), paths)

	return plan, paths, nil
}

func newRun(opts RunOptions, total int) *runState {
	return &runState{
		opts:    opts,
		runID:   uuid.NewString(),
		total:   total,
		printer: observability.NewPrinter(opts.Out),
	}
}

func (r *runState) build(ctx context.Context, cfg *config.PlanConfig) (*types.CampaignPlan, error) {
	if cfg == nil {
		return nil, &planning.Error{Message: "configuration is nil"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := r.opts.Logger.With(zap.String("run_id", r.runID))

	files := cfg.Inputs.Files()
	r.step(1, "Reading %d keyword exports...", len(files))
	sources := make([][]types.KeywordRecord, 0, len(files))
	rows := 0
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records := ingestion.NormalizeFile(f.Path, f.Source, ingestion.WithLogger(log))
		rows += len(records)
		sources = append(sources, records)
	}
	r.emitProgress(StepIngest, fmt.Sprintf("Read %d keyword rows from %d inputs", rows, len(files)), nil)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.step(2, "Classifying and grouping keywords...")
	records, err := planning.Build(sources, cfg, r.opts.Rules, planning.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("assembling keywords failed: %w", err)
	}
	summary := planning.Summarize(records)
	if r.opts.Verbose {
		r.printer.PrintIntentMix(records, summary)
	}
	r.emitProgress(StepAssemble, fmt.Sprintf("Planned %d keywords in %d ad groups", len(records), len(summary)), summary)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.step(3, "Forecasting channel budgets...")
	settings := forecast.SettingsFromConfig(cfg.Budgets, r.opts.Rules)
	plan := &types.CampaignPlan{
		RunID:       r.runID,
		GeneratedAt: time.Now().UTC(),
		Records:     records,
		Summary:     summary,
		Search:      forecast.Search(records, cfg.Budgets.SearchMonthlyINR, settings),
		Shopping:    forecast.Shopping(records, cfg.Budgets.ShoppingMonthlyINR, settings),
		AssetGroups: forecast.AssetGroups(records, cfg.Budgets.PMaxMonthlyINR, settings),
		Negatives:   r.opts.Rules.Negatives(),
		Budgets: types.BudgetSnapshot{
			ShoppingMonthlyINR: cfg.Budgets.ShoppingMonthlyINR,
			SearchMonthlyINR:   cfg.Budgets.SearchMonthlyINR,
			PMaxMonthlyINR:     cfg.Budgets.PMaxMonthlyINR,
			AOVINR:             cfg.Budgets.AOVINR,
		},
	}
	if r.opts.Verbose {
		r.printer.PrintForecast(plan)
	}
	log.Info("plan forecast",
		zap.Int("search_groups", len(plan.Search)),
		zap.Int("shopping_groups", len(plan.Shopping)),
		zap.Int("asset_groups", len(plan.AssetGroups)))
	r.emitProgress(StepForecast, fmt.Sprintf("Forecast %d search, %d shopping and %d asset groups",
		len(plan.Search), len(plan.Shopping), len(plan.AssetGroups)), nil)

	return plan, nil
}
