package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/3loulou/phone-purchase-referee/internal/models"
)

// Ranker orders scored phones by successive priority dimensions. Score
// differences below Epsilon are ties and fall through to the next
// priority; when every priority ties, ascending item id breaks the tie so
// the order is reproducible regardless of input order.
type Ranker struct {
	epsilon float64
}

// NewRanker creates a ranker with the given tie epsilon.
func NewRanker(epsilon float64) *Ranker {
	return &Ranker{epsilon: epsilon}
}

// Rank returns a new slice sorted by the priority chain, with sequential
// 1-indexed ranks and a conditional recommendation per phone. Positions
// stay strictly increasing even for full ties; the id tiebreak makes them
// deterministic. An empty priority list means no dimension-based ordering
// beyond the id tiebreak.
func (r *Ranker) Rank(scored []models.ScoredItem, priorities []string) []models.ScoredItem {
	ranked := make([]models.ScoredItem, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(a, b int) bool {
		return r.less(ranked[a], ranked[b], priorities)
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].Recommendation = recommendation(ranked[i].Item.Name, priorities)
	}
	return ranked
}

func (r *Ranker) less(a, b models.ScoredItem, priorities []string) bool {
	for _, p := range priorities {
		sa, sb := a.Scores[p], b.Scores[p]
		if math.Abs(sa-sb) < r.epsilon {
			continue
		}
		return sa > sb
	}
	return a.Item.ID < b.Item.ID
}

func recommendation(name string, priorities []string) string {
	if len(priorities) == 0 {
		return fmt.Sprintf("%s is optimal IF all dimensions are weighted equally.", name)
	}
	return fmt.Sprintf("%s is optimal IF %s is highest priority.", name, priorities[0])
}
