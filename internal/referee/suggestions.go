package referee

import (
	"fmt"
	"math"
	"sort"

	"github.com/3loulou/phone-purchase-referee/internal/models"
)

// noQualifyingError probes relaxations of the constraint set and ranks
// them by how many phones each would admit. At least two suggestions are
// always returned.
func (e *Engine) noQualifyingError(items []models.Item, cs models.ConstraintSet) *NoQualifyingError {
	var suggestions []Suggestion

	if s, ok := e.budgetSuggestion(items, cs); ok {
		suggestions = append(suggestions, s)
	}

	// Removing each required feature individually, best first.
	var featureSuggestions []Suggestion
	for key, want := range cs.RequiredFeatures {
		relaxed := cloneWithoutFeature(cs, key)
		admitted := len(e.eval.Evaluate(items, relaxed).Qualified)
		if admitted == 0 {
			continue
		}
		featureSuggestions = append(featureSuggestions, Suggestion{
			Description: fmt.Sprintf("Drop the required feature %s to admit %d phone(s)",
				e.dims.FeatureRequirement(key, want), admitted),
			Impact: admitted,
		})
	}
	sort.SliceStable(featureSuggestions, func(a, b int) bool {
		if featureSuggestions[a].Impact != featureSuggestions[b].Impact {
			return featureSuggestions[a].Impact > featureSuggestions[b].Impact
		}
		return featureSuggestions[a].Description < featureSuggestions[b].Description
	})
	suggestions = append(suggestions, featureSuggestions...)

	if cs.Region != "" {
		relaxed := cs
		relaxed.Region = ""
		if admitted := len(e.eval.Evaluate(items, relaxed).Qualified); admitted > 0 {
			suggestions = append(suggestions, Suggestion{
				Description: fmt.Sprintf("Remove the %s region filter to admit %d phone(s)", cs.Region, admitted),
				Impact:      admitted,
			})
		}
	}

	// Backstops so the caller always gets at least two options to act on.
	if len(suggestions) < 2 {
		if discontinued := countDiscontinued(items); discontinued > 0 {
			suggestions = append(suggestions, Suggestion{
				Description: fmt.Sprintf("Consider discontinued models (%d in catalog, often available refurbished)", discontinued),
				Impact:      discontinued,
			})
		}
	}
	for len(suggestions) < 2 {
		suggestions = append(suggestions, Suggestion{
			Description: "Broaden the constraint set or evaluate against a larger catalog snapshot",
			Impact:      0,
		})
	}

	return &NoQualifyingError{
		Message:     "no phones qualify under the current constraints",
		Suggestions: suggestions,
	}
}

// budgetSuggestion finds the smallest budget increase that admits at
// least one phone: relax the budget entirely, then take the cheapest
// otherwise-qualifying phone above the current budget.
func (e *Engine) budgetSuggestion(items []models.Item, cs models.ConstraintSet) (Suggestion, bool) {
	if cs.Budget == nil {
		return Suggestion{}, false
	}

	relaxed := cs
	relaxed.Budget = nil
	qualified := e.eval.Evaluate(items, relaxed).Qualified

	cheapest := math.Inf(1)
	for _, item := range qualified {
		if item.PriceUSD > *cs.Budget && item.PriceUSD < cheapest {
			cheapest = item.PriceUSD
		}
	}
	if math.IsInf(cheapest, 1) {
		return Suggestion{}, false
	}

	admitted := 0
	for _, item := range qualified {
		if item.PriceUSD <= cheapest {
			admitted++
		}
	}

	return Suggestion{
		Description: fmt.Sprintf("Increase the budget by $%.2f to $%.2f to admit %d phone(s)",
			cheapest-*cs.Budget, cheapest, admitted),
		Impact: admitted,
	}, true
}

func cloneWithoutFeature(cs models.ConstraintSet, key string) models.ConstraintSet {
	out := cs
	out.RequiredFeatures = make(map[string]any, len(cs.RequiredFeatures))
	for k, v := range cs.RequiredFeatures {
		if k != key {
			out.RequiredFeatures[k] = v
		}
	}
	return out
}

func countDiscontinued(items []models.Item) int {
	n := 0
	for _, item := range items {
		if item.Availability == models.AvailabilityDiscontinued {
			n++
		}
	}
	return n
}

// closestIDs returns up to max catalog ids nearest to the requested id by
// Levenshtein distance, closest first, ties broken alphabetically.
func closestIDs(id string, ids []string, max int) []string {
	type candidate struct {
		id   string
		dist int
	}
	candidates := make([]candidate, 0, len(ids))
	for _, other := range ids {
		candidates = append(candidates, candidate{id: other, dist: levenshtein(id, other)})
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].dist != candidates[b].dist {
			return candidates[a].dist < candidates[b].dist
		}
		return candidates[a].id < candidates[b].id
	})

	out := make([]string, 0, max)
	for _, c := range candidates {
		if len(out) == max {
			break
		}
		out = append(out, c.id)
	}
	return out
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
