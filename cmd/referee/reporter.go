package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/3loulou/phone-purchase-referee/internal/models"
	"github.com/3loulou/phone-purchase-referee/internal/referee"
)

const nameColumnWidth = 24

func printResult(w io.Writer, result *models.ComparisonResult, format string) error {
	if format == "json" {
		return printResultJSON(w, result)
	}
	printResultTable(w, result)
	return nil
}

func printResultJSON(w io.Writer, result *models.ComparisonResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal comparison result: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func printResultTable(w io.Writer, r *models.ComparisonResult) {
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintln(w, " COMPARISON")
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintln(w)

	// Ranked qualifiers
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintln(w, " RANKED")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintf(w, "  %-4s  %-*s  %-10s", "Rank", nameColumnWidth, "Phone", "Price")
	for _, dim := range r.Constraints.Priorities {
		fmt.Fprintf(w, "  %-11s", dim)
	}
	fmt.Fprintln(w)

	for _, s := range r.Qualified {
		fmt.Fprintf(w, "  %-4d  %-*s  $%-9.2f",
			s.Rank, nameColumnWidth, truncateName(s.Item.Name), s.Item.PriceUSD)
		for _, dim := range r.Constraints.Priorities {
			fmt.Fprintf(w, "  %-11.3f", s.Scores[dim])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
	for _, s := range r.Qualified {
		fmt.Fprintf(w, "  %s\n", s.Recommendation)
	}
	fmt.Fprintln(w)

	if len(r.Eliminated) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 72))
		fmt.Fprintln(w, " ELIMINATED")
		fmt.Fprintln(w, strings.Repeat("-", 72))
		for _, e := range r.Eliminated {
			fmt.Fprintf(w, "  %-*s  %-24s  %s\n",
				nameColumnWidth, truncateName(e.Item.Name), e.Reason, e.Detail)
		}
		fmt.Fprintln(w)
	}

	if len(r.TradeOffs) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 72))
		fmt.Fprintln(w, " TRADE-OFFS")
		fmt.Fprintln(w, strings.Repeat("-", 72))
		for _, t := range r.TradeOffs {
			fmt.Fprintf(w, "  %s\n", t.Explanation)
		}
		fmt.Fprintln(w)
	}

	if len(r.Sensitivity) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 72))
		fmt.Fprintln(w, " WHAT-IF")
		fmt.Fprintln(w, strings.Repeat("-", 72))
		for _, rule := range r.Sensitivity {
			fmt.Fprintf(w, "  [%s] %s -> %s\n", rule.Kind, rule.Before, rule.After)
			fmt.Fprintf(w, "    %s\n", rule.Impact)
			fmt.Fprintf(w, "    %s\n", rule.Conditional)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 72))
		fmt.Fprintln(w, " WARNINGS")
		fmt.Fprintln(w, strings.Repeat("-", 72))
		for _, warning := range r.Warnings {
			fmt.Fprintf(w, "  %s\n", warning.Message)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "  catalog %s (%s)  engine %s  %dms\n",
		r.Run.CatalogVersion, shortHash(r.Run.CatalogHash), r.Run.EngineVersion, r.Run.ElapsedMs)
}

func printNoQualifying(w io.Writer, e *referee.NoQualifyingError) {
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintln(w, " NO QUALIFYING PHONES")
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintln(w)
	for _, s := range e.Suggestions {
		fmt.Fprintf(w, "  - %s\n", s.Description)
	}
	fmt.Fprintln(w)
}

// truncateName keeps names within the column on wide-rune display names.
func truncateName(name string) string {
	return runewidth.Truncate(name, nameColumnWidth, "...")
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
