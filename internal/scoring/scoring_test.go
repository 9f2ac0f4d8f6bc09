package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3loulou/phone-purchase-referee/internal/dimension"
	"github.com/3loulou/phone-purchase-referee/internal/models"
)

func ptr(v float64) *float64 { return &v }

func pricedPhone(id string, price float64) models.Item {
	return models.Item{
		ID:           id,
		Name:         id,
		PriceUSD:     price,
		Specs:        models.SpecSheet{Has5G: true},
		Availability: models.AvailabilityAvailable,
		Region:       "US",
	}
}

func newTestScorer() *Scorer {
	return NewScorer(dimension.NewRegistry())
}

func TestScore_PriceLowerIsBetter(t *testing.T) {
	s := newTestScorer()
	population := []models.Item{
		pricedPhone("a", 900),
		pricedPhone("b", 950),
		pricedPhone("c", 1000),
	}

	// Cheapest scores 1.0, most expensive 0.0, midpoint 0.5.
	if got := s.Score(dimension.Price, population[0], population); got != 1.0 {
		t.Errorf("expected 1.0 for cheapest, got %v", got)
	}
	if got := s.Score(dimension.Price, population[1], population); got != 0.5 {
		t.Errorf("expected 0.5 for midpoint, got %v", got)
	}
	if got := s.Score(dimension.Price, population[2], population); got != 0.0 {
		t.Errorf("expected 0.0 for most expensive, got %v", got)
	}
}

func TestScore_HigherIsBetter(t *testing.T) {
	s := newTestScorer()
	a := pricedPhone("a", 500)
	a.Specs.BatteryMAh = ptr(4000)
	b := pricedPhone("b", 500)
	b.Specs.BatteryMAh = ptr(5000)
	population := []models.Item{a, b}

	if got := s.Score(dimension.Battery, a, population); got != 0.0 {
		t.Errorf("expected 0.0 for smallest battery, got %v", got)
	}
	if got := s.Score(dimension.Battery, b, population); got != 1.0 {
		t.Errorf("expected 1.0 for largest battery, got %v", got)
	}
}

func TestScore_UnresolvableIsNeutral(t *testing.T) {
	s := newTestScorer()
	a := pricedPhone("a", 500)
	b := pricedPhone("b", 600)
	b.Specs.BatteryMAh = ptr(5000)

	if got := s.Score(dimension.Battery, a, []models.Item{a, b}); got != NeutralScore {
		t.Errorf("expected neutral score for missing data, got %v", got)
	}
}

func TestScore_NoSpreadIsNeutral(t *testing.T) {
	s := newTestScorer()
	population := []models.Item{pricedPhone("a", 500), pricedPhone("b", 500)}

	for _, item := range population {
		if got := s.Score(dimension.Price, item, population); got != NeutralScore {
			t.Errorf("expected neutral score with no spread, got %v", got)
		}
	}
}

func TestScore_RelativeToPopulation(t *testing.T) {
	s := newTestScorer()
	a := pricedPhone("a", 500)
	b := pricedPhone("b", 700)
	c := pricedPhone("c", 900)

	// Same phone, different population, different score.
	full := s.Score(dimension.Price, b, []models.Item{a, b, c})
	pair := s.Score(dimension.Price, b, []models.Item{b, c})
	if full == pair {
		t.Errorf("expected population-relative scores to differ, both %v", full)
	}
}

func TestScoreAll_BoundsAndWarnings(t *testing.T) {
	s := newTestScorer()
	a := pricedPhone("a", 500)
	a.Specs.BatteryMAh = ptr(4500)
	b := pricedPhone("b", 700) // no battery data
	items := []models.Item{a, b}

	scored, warnings := s.ScoreAll(items, []string{dimension.Battery, dimension.Price})

	require.Len(t, scored, 2)
	for _, si := range scored {
		require.Len(t, si.Scores, 2)
		for dim, score := range si.Scores {
			if score < 0 || score > 1 {
				t.Errorf("%s: %s score %v out of [0,1]", si.Item.ID, dim, score)
			}
		}
	}

	require.Len(t, warnings, 1)
	if warnings[0].ItemID != "b" || warnings[0].Dimension != dimension.Battery {
		t.Errorf("expected a battery warning for b, got %+v", warnings[0])
	}
	require.NotEmpty(t, warnings[0].Message)
}

func TestScoreAll_DoesNotMutateInput(t *testing.T) {
	s := newTestScorer()
	items := []models.Item{pricedPhone("a", 500), pricedPhone("b", 700)}
	before := items[0]

	s.ScoreAll(items, []string{dimension.Price})
	require.Equal(t, before, items[0])
}
