package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/3loulou/phone-purchase-referee/internal/catalog"
	"github.com/3loulou/phone-purchase-referee/internal/models"
	"github.com/3loulou/phone-purchase-referee/internal/referee"
)

var (
	evaluateCatalogPath     string
	evaluateConstraintsPath string
	evaluateOutputFormat    string
)

func newEvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a catalog against a constraint set",
		Long: `Run a constraint-first evaluation: partition the catalog into
qualifying and eliminated phones, rank the qualifiers by your priorities,
and report trade-offs and what-if sensitivity rules.

When no phone qualifies, relaxation suggestions are printed and the
command exits with code 1.`,
		Args: cobra.NoArgs,
		RunE: evaluateCommandE,
	}

	cmd.Flags().StringVarP(&evaluateCatalogPath, "catalog", "c", "", "Path to the catalog file (yaml, json, or csv)")
	cmd.Flags().StringVar(&evaluateConstraintsPath, "constraints", "", "Path to the constraints YAML file")
	cmd.Flags().StringVarP(&evaluateOutputFormat, "format", "f", "table", "Output format: table or json")
	_ = cmd.MarkFlagRequired("catalog")
	_ = cmd.MarkFlagRequired("constraints")

	return cmd
}

func evaluateCommandE(cmd *cobra.Command, _ []string) error {
	if evaluateOutputFormat != "table" && evaluateOutputFormat != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", evaluateOutputFormat)
	}

	cs, err := loadConstraints(evaluateConstraintsPath)
	if err != nil {
		return err
	}

	slog.Debug("evaluating catalog", "catalog", evaluateCatalogPath)

	engine := referee.New(referee.DefaultConfig())
	src := catalog.FileSource{Path: evaluateCatalogPath}
	result, err := engine.EvaluateFrom(cmd.Context(), src, *cs)
	if err != nil {
		var noQualifying *referee.NoQualifyingError
		if errors.As(err, &noQualifying) {
			printNoQualifying(cmd.OutOrStdout(), noQualifying)
		}
		return err
	}

	return printResult(cmd.OutOrStdout(), result, evaluateOutputFormat)
}

func loadConstraints(path string) (*models.ConstraintSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading constraints: %w", err)
	}
	var cs models.ConstraintSet
	if err := yaml.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("parsing constraints %s: %w", path, err)
	}
	return &cs, nil
}
