// Package constraint partitions a catalog into qualifying and eliminated
// phones against a constraint set.
package constraint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/3loulou/phone-purchase-referee/internal/dimension"
	"github.com/3loulou/phone-purchase-referee/internal/models"
)

// Outcome is the two-way partition produced by Evaluate. No phone appears
// in both lists.
type Outcome struct {
	Qualified  []models.Item
	Eliminated []models.EliminatedItem
}

// Evaluator applies constraint checks in a fixed precedence order:
// budget, required features, region, availability, data completeness.
// Evaluation stops at the first failing check, so every eliminated phone
// carries exactly one reason. The order is part of the contract; changing
// it changes which reason a multiply-failing phone reports.
type Evaluator struct {
	dims *dimension.Registry
}

// NewEvaluator creates an evaluator over the given dimension registry.
func NewEvaluator(dims *dimension.Registry) *Evaluator {
	return &Evaluator{dims: dims}
}

// Evaluate partitions items against the constraint set.
func (e *Evaluator) Evaluate(items []models.Item, cs models.ConstraintSet) Outcome {
	var out Outcome
	for _, item := range items {
		if rejected, ok := e.check(item, cs); ok {
			out.Eliminated = append(out.Eliminated, rejected)
		} else {
			out.Qualified = append(out.Qualified, item)
		}
	}
	return out
}

func (e *Evaluator) check(item models.Item, cs models.ConstraintSet) (models.EliminatedItem, bool) {
	if cs.Budget != nil && item.PriceUSD > *cs.Budget {
		return models.EliminatedItem{
			Item:   item,
			Reason: models.ReasonExceedsBudget,
			Detail: fmt.Sprintf("price $%.2f exceeds budget $%.2f by $%.2f",
				item.PriceUSD, *cs.Budget, item.PriceUSD-*cs.Budget),
		}, true
	}

	// Feature keys are walked in sorted order so the reported failure is
	// the same on every run.
	for _, key := range sortedKeys(cs.RequiredFeatures) {
		want := cs.RequiredFeatures[key]
		matched, err := e.dims.MatchesFeature(item, key, want)
		if err != nil || !matched {
			return models.EliminatedItem{
				Item:   item,
				Reason: models.ReasonMissingRequiredFeature,
				Detail: fmt.Sprintf("does not satisfy required feature %s",
					e.dims.FeatureRequirement(key, want)),
			}, true
		}
	}

	if cs.Region != "" && item.Region != cs.Region {
		return models.EliminatedItem{
			Item:   item,
			Reason: models.ReasonUnavailableInRegion,
			Detail: fmt.Sprintf("sold in region %s, not available in %s", item.Region, cs.Region),
		}, true
	}

	// Preorder phones pass through; only discontinued ones are dropped.
	if item.Availability == models.AvailabilityDiscontinued {
		return models.EliminatedItem{
			Item:   item,
			Reason: models.ReasonDiscontinued,
			Detail: fmt.Sprintf("%s has been discontinued", item.Name),
		}, true
	}

	if len(cs.Priorities) > 0 && e.missingAllPriorities(item, cs.Priorities) {
		return models.EliminatedItem{
			Item:   item,
			Reason: models.ReasonIncompleteData,
			Detail: fmt.Sprintf("no data for any priority dimension (%s)",
				strings.Join(cs.Priorities, ", ")),
		}, true
	}

	return models.EliminatedItem{}, false
}

// missingAllPriorities is true only when the item resolves none of the
// priority dimensions. Partial gaps keep the phone qualified; the scorer
// fills them with the neutral 0.5.
func (e *Evaluator) missingAllPriorities(item models.Item, priorities []string) bool {
	for _, p := range priorities {
		if _, ok := e.dims.Resolve(item, p); ok {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
