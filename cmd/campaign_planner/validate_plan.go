package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/campaign-planner/internal/schemas"
	planschemas "github.com/jonathan/campaign-planner/schemas"
)

var validatePlanCmd = &cobra.Command{
	Use:   "validate-plan",
	Short: "Validate a campaign_plan.json document",
	Long:  "Validates a campaign plan JSON document against the embedded campaign plan schema.",
	RunE:  runValidatePlan,
}

var (
	validatePlanInput  string
	validatePlanSchema string
)

func init() {
	validatePlanCmd.Flags().StringVarP(&validatePlanInput, "in", "i", "", "Path to campaign_plan.json (required)")

	validatePlanCmd.Flags().StringVarP(&validatePlanSchema, "schema", "s", "", "Path to a schema file (default: embedded campaign plan schema)")

	if err := validatePlanCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validatePlanCmd)
}

func runValidatePlan(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(validatePlanInput); os.IsNotExist(err) {
		return fmt.Errorf("plan file not found: %s", validatePlanInput)
	}

	var err error
	if validatePlanSchema != "" {
		err = schemas.ValidateJSON(validatePlanSchema, validatePlanInput)
	} else {
		err = schemas.ValidateJSONFile(planschemas.CampaignPlan, validatePlanInput)
	}
	if err == nil {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", validatePlanInput)
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		for _, fe := range validationErr.Errors {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("validation found %d error(s)", len(validationErr.Errors))
	}
	return fmt.Errorf("failed to validate plan: %w", err)
}
