// Package sensitivity explores nearby alternative inputs: small budget
// increases and a swap of the top two priorities.
package sensitivity

import (
	"fmt"
	"strings"

	"github.com/3loulou/phone-purchase-referee/internal/constraint"
	"github.com/3loulou/phone-purchase-referee/internal/models"
	"github.com/3loulou/phone-purchase-referee/internal/scoring"
)

// Analyzer re-runs the constraint evaluator and ranker under perturbed
// inputs. It holds no state across calls.
type Analyzer struct {
	eval   *constraint.Evaluator
	ranker *scoring.Ranker
	steps  []float64
}

// NewAnalyzer creates an analyzer with the given budget trial steps
// (applied in order; the first step that admits a new phone wins).
func NewAnalyzer(eval *constraint.Evaluator, ranker *scoring.Ranker, steps []float64) *Analyzer {
	return &Analyzer{eval: eval, ranker: ranker, steps: steps}
}

// Analyze produces zero, one, or two rules. The budget and reorder checks
// are independent of each other.
func (a *Analyzer) Analyze(ranked []models.ScoredItem, cs models.ConstraintSet, fullCatalog []models.Item) []models.SensitivityRule {
	var rules []models.SensitivityRule
	if rule, ok := a.budgetRule(ranked, cs, fullCatalog); ok {
		rules = append(rules, rule)
	}
	if rule, ok := a.reorderRule(ranked, cs); ok {
		rules = append(rules, rule)
	}
	return rules
}

// budgetRule tries each trial budget against the full catalog and stops at
// the first one that admits a phone not already ranked.
func (a *Analyzer) budgetRule(ranked []models.ScoredItem, cs models.ConstraintSet, fullCatalog []models.Item) (models.SensitivityRule, bool) {
	if cs.Budget == nil {
		return models.SensitivityRule{}, false
	}

	known := make(map[string]bool, len(ranked))
	for _, s := range ranked {
		known[s.Item.ID] = true
	}

	for _, step := range a.steps {
		trialBudget := *cs.Budget + step
		trial := cs
		trial.Budget = &trialBudget

		out := a.eval.Evaluate(fullCatalog, trial)
		var newlyViable []string
		for _, item := range out.Qualified {
			if !known[item.ID] {
				newlyViable = append(newlyViable, item.Name)
			}
		}
		if len(newlyViable) == 0 {
			continue
		}

		return models.SensitivityRule{
			Kind:   models.AdjustBudgetIncrease,
			Before: fmt.Sprintf("$%.2f", *cs.Budget),
			After:  fmt.Sprintf("$%.2f", trialBudget),
			Impact: fmt.Sprintf("%d more phone(s) become viable: %s",
				len(newlyViable), strings.Join(newlyViable, ", ")),
			Conditional: fmt.Sprintf("IF the budget can stretch to $%.2f, %s also come(s) into play.",
				trialBudget, strings.Join(newlyViable, ", ")),
		}, true
	}
	return models.SensitivityRule{}, false
}

// reorderRule swaps the first two priorities and re-ranks the already
// qualified phones. Scores are unchanged because the population is the
// same; only the sort order can move.
func (a *Analyzer) reorderRule(ranked []models.ScoredItem, cs models.ConstraintSet) (models.SensitivityRule, bool) {
	if len(cs.Priorities) < 2 || len(ranked) == 0 {
		return models.SensitivityRule{}, false
	}

	swapped := make([]string, len(cs.Priorities))
	copy(swapped, cs.Priorities)
	swapped[0], swapped[1] = swapped[1], swapped[0]

	reranked := a.ranker.Rank(ranked, swapped)
	if reranked[0].Item.ID == ranked[0].Item.ID {
		return models.SensitivityRule{}, false
	}

	return models.SensitivityRule{
		Kind:   models.AdjustPriorityReorder,
		Before: strings.Join(cs.Priorities, " > "),
		After:  strings.Join(swapped, " > "),
		Impact: fmt.Sprintf("top recommendation changes from %s to %s",
			ranked[0].Item.Name, reranked[0].Item.Name),
		Conditional: fmt.Sprintf("IF %s matters more than %s, %s is the better choice.",
			swapped[0], swapped[1], reranked[0].Item.Name),
	}, true
}
