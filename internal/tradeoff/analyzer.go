// Package tradeoff emits pairwise advantage statements between ranked
// phones on the top priority dimensions.
package tradeoff

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/3loulou/phone-purchase-referee/internal/dimension"
	"github.com/3loulou/phone-purchase-referee/internal/models"
)

// Trade-offs are capped to the first two priority dimensions to bound
// output size on large qualified sets.
const maxDimensions = 2

// Analyzer computes per-pair, per-dimension deltas in native units.
type Analyzer struct {
	dims    *dimension.Registry
	epsilon float64
}

// NewAnalyzer creates an analyzer sharing the ranker's tie epsilon.
func NewAnalyzer(dims *dimension.Registry, epsilon float64) *Analyzer {
	return &Analyzer{dims: dims, epsilon: epsilon}
}

// Analyze walks every unordered pair of ranked phones. A pair/dimension
// entry is skipped when either phone has no raw value for the dimension
// or when the normalized scores are within the tie epsilon. The
// advantaged phone is the one with the higher normalized score, which for
// lower-is-better dimensions is the one with the smaller raw value.
func (a *Analyzer) Analyze(ranked []models.ScoredItem, priorities []string) []models.TradeOffPair {
	dims := priorities
	if len(dims) > maxDimensions {
		dims = dims[:maxDimensions]
	}

	var pairs []models.TradeOffPair
	for i := 0; i < len(ranked); i++ {
		for j := i + 1; j < len(ranked); j++ {
			for _, dim := range dims {
				if pair, ok := a.compare(ranked[i], ranked[j], dim); ok {
					pairs = append(pairs, pair)
				}
			}
		}
	}
	return pairs
}

func (a *Analyzer) compare(x, y models.ScoredItem, dim string) (models.TradeOffPair, bool) {
	vx, okx := a.dims.Resolve(x.Item, dim)
	vy, oky := a.dims.Resolve(y.Item, dim)
	if !okx || !oky {
		return models.TradeOffPair{}, false
	}
	if math.Abs(x.Scores[dim]-y.Scores[dim]) < a.epsilon {
		return models.TradeOffPair{}, false
	}

	winner, loser := x, y
	wv, lv := vx, vy
	if y.Scores[dim] > x.Scores[dim] {
		winner, loser = y, x
		wv, lv = vy, vx
	}

	info, _ := a.dims.Lookup(dim)
	delta := math.Abs(vx - vy)

	return models.TradeOffPair{
		ItemA:        x.Item.ID,
		ItemB:        y.Item.ID,
		Dimension:    dim,
		AdvantagedID: winner.Item.ID,
		Delta:        delta,
		Unit:         info.Unit,
		Explanation:  explain(winner.Item.Name, loser.Item.Name, dim, info, delta, wv, lv),
	}, true
}

func explain(winner, loser, dim string, info dimension.Info, delta, wv, lv float64) string {
	if info.Kind == dimension.KindBoolean {
		return fmt.Sprintf("%s supports %s while %s does not.", winner, dim, loser)
	}
	comparative := "more"
	if info.Polarity == dimension.LowerBetter {
		comparative = "less"
	}
	return fmt.Sprintf("%s offers %s %s %s on %s than %s (%s vs %s).",
		winner, formatValue(delta), strings.TrimSpace(info.Unit), comparative, dim, loser,
		formatValue(wv), formatValue(lv))
}

// formatValue trims trailing zeros so deltas read naturally ("200" not
// "200.000000").
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
