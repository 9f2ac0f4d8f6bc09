package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3loulou/phone-purchase-referee/internal/catalog"
	"github.com/3loulou/phone-purchase-referee/internal/referee"
)

var (
	shortlistCatalogPath  string
	shortlistPriorities   string
	shortlistOutputFormat string
)

func newShortlistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shortlist <id> <id> [id...]",
		Short: "Compare a hand-picked shortlist of phones",
		Long: `Compare 2-5 phones by id, skipping all constraint checks.
Scores are normalized against the shortlist itself, so they can differ
from a full catalog evaluation.`,
		Args: cobra.RangeArgs(referee.MinShortlist, referee.MaxShortlist),
		RunE: shortlistCommandE,
	}

	cmd.Flags().StringVarP(&shortlistCatalogPath, "catalog", "c", "", "Path to the catalog file (yaml, json, or csv)")
	cmd.Flags().StringVarP(&shortlistPriorities, "priorities", "p", "", "Comma-separated priority dimensions, most important first")
	cmd.Flags().StringVarP(&shortlistOutputFormat, "format", "f", "table", "Output format: table or json")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

func shortlistCommandE(cmd *cobra.Command, args []string) error {
	if shortlistOutputFormat != "table" && shortlistOutputFormat != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", shortlistOutputFormat)
	}

	snap, err := catalog.Load(shortlistCatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", shortlistCatalogPath, err)
	}

	var priorities []string
	for _, p := range strings.Split(shortlistPriorities, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			priorities = append(priorities, trimmed)
		}
	}

	engine := referee.New(referee.DefaultConfig())
	result, err := engine.Shortlist(snap, args, priorities)
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), result, shortlistOutputFormat)
}
