// Package scoring normalizes phone attributes into [0,1] scores and ranks
// candidates by successive priority dimensions.
package scoring

import (
	"fmt"

	"github.com/3loulou/phone-purchase-referee/internal/dimension"
	"github.com/3loulou/phone-purchase-referee/internal/models"
)

// NeutralScore is assigned when a value is unresolvable or the population
// has no spread. Absent or non-discriminating data never eliminates a
// phone from ranking, it only dampens its influence.
const NeutralScore = 0.5

// Scorer computes min-max normalized scores relative to a stated
// population. Scores for the same phone can differ between a full
// evaluation and a shortlist run because the population differs.
type Scorer struct {
	dims *dimension.Registry
}

// NewScorer creates a scorer over the given dimension registry.
func NewScorer(dims *dimension.Registry) *Scorer {
	return &Scorer{dims: dims}
}

// Score returns the normalized score of item for one dimension against the
// population. Lower-is-better dimensions (price, weight) are inverted so
// that 1 is always best.
func (s *Scorer) Score(dim string, item models.Item, population []models.Item) float64 {
	value, ok := s.dims.Resolve(item, dim)
	if !ok {
		return NeutralScore
	}

	minVal, maxVal, any := s.extrema(dim, population)
	if !any || minVal == maxVal {
		return NeutralScore
	}

	normalized := (value - minVal) / (maxVal - minVal)
	if info, ok := s.dims.Lookup(dim); ok && info.Polarity == dimension.LowerBetter {
		return 1 - normalized
	}
	return normalized
}

// ScoreAll scores every item on every listed dimension and reports a
// warning for each item/dimension pair that fell back to the neutral
// score because the catalog has no value.
func (s *Scorer) ScoreAll(items []models.Item, dims []string) ([]models.ScoredItem, []models.DataWarning) {
	scored := make([]models.ScoredItem, 0, len(items))
	var warnings []models.DataWarning

	for _, item := range items {
		scores := make(map[string]float64, len(dims))
		for _, dim := range dims {
			scores[dim] = s.Score(dim, item, items)
			if _, ok := s.dims.Resolve(item, dim); !ok {
				warnings = append(warnings, models.DataWarning{
					ItemID:    item.ID,
					Dimension: dim,
					Message:   fmt.Sprintf("%s has no %s data; scored neutrally at %.1f", item.Name, dim, NeutralScore),
				})
			}
		}
		scored = append(scored, models.ScoredItem{Item: item, Scores: scores})
	}
	return scored, warnings
}

// extrema returns the min and max resolved values for a dimension across
// the population, skipping items with no value.
func (s *Scorer) extrema(dim string, population []models.Item) (minVal, maxVal float64, any bool) {
	for _, item := range population {
		v, ok := s.dims.Resolve(item, dim)
		if !ok {
			continue
		}
		if !any {
			minVal, maxVal, any = v, v, true
			continue
		}
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal, any
}
