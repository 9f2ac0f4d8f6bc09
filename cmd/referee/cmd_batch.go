package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/3loulou/phone-purchase-referee/internal/catalog"
	"github.com/3loulou/phone-purchase-referee/internal/referee"
)

var (
	batchCatalogPath string
	batchWorkers     int
)

func newBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <constraints.yaml> [constraints.yaml...]",
		Short: "Evaluate several constraint profiles against one catalog",
		Long: `Run a constraint-first evaluation for each constraints file and print
a one-line verdict per profile. The engine is pure, so profiles are
evaluated concurrently; output order matches argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: batchCommandE,
	}

	cmd.Flags().StringVarP(&batchCatalogPath, "catalog", "c", "", "Path to the catalog file (yaml, json, or csv)")
	cmd.Flags().IntVar(&batchWorkers, "workers", 4, "Maximum concurrent evaluations")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

// batchVerdict is one profile's outcome, kept indexed so the printed
// order is deterministic regardless of completion order.
type batchVerdict struct {
	profile string
	line    string
	err     error
}

func batchCommandE(cmd *cobra.Command, args []string) error {
	snap, err := catalog.Load(batchCatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", batchCatalogPath, err)
	}

	engine := referee.New(referee.DefaultConfig())
	verdicts := make([]batchVerdict, len(args))

	var g errgroup.Group
	g.SetLimit(batchWorkers)
	for i, path := range args {
		g.Go(func() error {
			verdicts[i] = evaluateProfile(engine, snap, path)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, v := range verdicts {
		if v.err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "%-30s %v\n", v.profile, v.err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s\n", v.profile, v.line)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d profiles failed to evaluate", failed, len(args))
	}
	return nil
}

func evaluateProfile(engine *referee.Engine, snap *catalog.Snapshot, path string) batchVerdict {
	cs, err := loadConstraints(path)
	if err != nil {
		return batchVerdict{profile: path, err: err}
	}

	result, err := engine.Evaluate(snap, *cs)
	if err != nil {
		var noQualifying *referee.NoQualifyingError
		if errors.As(err, &noQualifying) {
			return batchVerdict{profile: path, line: "no qualifying phones"}
		}
		return batchVerdict{profile: path, err: err}
	}

	top := result.Qualified[0]
	return batchVerdict{
		profile: path,
		line: fmt.Sprintf("top pick: %s ($%.2f), %d qualified, %d eliminated",
			top.Item.Name, top.Item.PriceUSD, len(result.Qualified), len(result.Eliminated)),
	}
}
