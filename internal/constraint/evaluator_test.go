package constraint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3loulou/phone-purchase-referee/internal/dimension"
	"github.com/3loulou/phone-purchase-referee/internal/models"
)

func ptr(v float64) *float64 { return &v }

func makePhone(id string, price float64) models.Item {
	return models.Item{
		ID:       id,
		Name:     strings.ToUpper(id[:1]) + id[1:],
		PriceUSD: price,
		Specs: models.SpecSheet{
			Has5G:      true,
			BatteryMAh: ptr(4500),
		},
		Availability: models.AvailabilityAvailable,
		Region:       "US",
	}
}

func newTestEvaluator() *Evaluator {
	return NewEvaluator(dimension.NewRegistry())
}

func TestEvaluate_BudgetElimination(t *testing.T) {
	e := newTestEvaluator()
	budget := 1000.0
	items := []models.Item{makePhone("alpha", 999), makePhone("bravo", 1199)}

	out := e.Evaluate(items, models.ConstraintSet{
		Budget:     &budget,
		Priorities: []string{dimension.Price},
	})

	require.Len(t, out.Qualified, 1)
	require.Len(t, out.Eliminated, 1)
	if out.Qualified[0].ID != "alpha" {
		t.Errorf("expected alpha to qualify, got %s", out.Qualified[0].ID)
	}

	rejected := out.Eliminated[0]
	if rejected.Reason != models.ReasonExceedsBudget {
		t.Errorf("expected EXCEEDS_BUDGET, got %s", rejected.Reason)
	}
	if !strings.Contains(rejected.Detail, "$199.00") {
		t.Errorf("detail should mention the overage amount, got %q", rejected.Detail)
	}
	if !strings.Contains(rejected.Detail, "$1000.00") {
		t.Errorf("detail should mention the budget, got %q", rejected.Detail)
	}
}

func TestEvaluate_PrecedenceOrderIsFixed(t *testing.T) {
	e := newTestEvaluator()
	budget := 500.0

	// This phone fails budget, features, region, and availability at once.
	phone := makePhone("omni-fail", 900)
	phone.Specs.Has5G = false
	phone.Region = "DE"
	phone.Availability = models.AvailabilityDiscontinued

	out := e.Evaluate([]models.Item{phone}, models.ConstraintSet{
		Budget:           &budget,
		RequiredFeatures: map[string]any{dimension.Has5G: true},
		Region:           "US",
		Priorities:       []string{dimension.Price},
	})

	require.Len(t, out.Eliminated, 1)
	// Budget is checked first, so that must be the one reported reason.
	if out.Eliminated[0].Reason != models.ReasonExceedsBudget {
		t.Errorf("expected the budget check to win precedence, got %s", out.Eliminated[0].Reason)
	}
}

func TestEvaluate_MissingFeature(t *testing.T) {
	e := newTestEvaluator()
	phone := makePhone("basic", 300)
	phone.Specs.Has5G = false

	out := e.Evaluate([]models.Item{phone}, models.ConstraintSet{
		RequiredFeatures: map[string]any{dimension.Has5G: true},
		Priorities:       []string{dimension.Price},
	})

	require.Len(t, out.Eliminated, 1)
	if out.Eliminated[0].Reason != models.ReasonMissingRequiredFeature {
		t.Errorf("expected MISSING_REQUIRED_FEATURE, got %s", out.Eliminated[0].Reason)
	}
	if !strings.Contains(out.Eliminated[0].Detail, "has_5g") {
		t.Errorf("detail should name the feature, got %q", out.Eliminated[0].Detail)
	}
}

func TestEvaluate_FeatureReportedDeterministically(t *testing.T) {
	e := newTestEvaluator()
	phone := makePhone("limited", 300)
	phone.Specs.Has5G = false
	phone.Specs.StorageGB = ptr(64)

	cs := models.ConstraintSet{
		RequiredFeatures: map[string]any{
			dimension.Storage: 512,
			dimension.Has5G:   true,
		},
		Priorities: []string{dimension.Price},
	}

	// Feature keys are walked in sorted order, so has_5g always loses first.
	for i := 0; i < 20; i++ {
		out := e.Evaluate([]models.Item{phone}, cs)
		require.Len(t, out.Eliminated, 1)
		require.Contains(t, out.Eliminated[0].Detail, "has_5g")
	}
}

func TestEvaluate_RegionFilter(t *testing.T) {
	e := newTestEvaluator()
	phone := makePhone("import-only", 400)
	phone.Region = "JP"

	out := e.Evaluate([]models.Item{phone}, models.ConstraintSet{
		Region:     "US",
		Priorities: []string{dimension.Price},
	})

	require.Len(t, out.Eliminated, 1)
	if out.Eliminated[0].Reason != models.ReasonUnavailableInRegion {
		t.Errorf("expected UNAVAILABLE_IN_REGION, got %s", out.Eliminated[0].Reason)
	}
}

func TestEvaluate_NoRegionFilterMeansNoCheck(t *testing.T) {
	e := newTestEvaluator()
	phone := makePhone("import-only", 400)
	phone.Region = "JP"

	out := e.Evaluate([]models.Item{phone}, models.ConstraintSet{
		Priorities: []string{dimension.Price},
	})
	require.Len(t, out.Qualified, 1)
}

func TestEvaluate_DiscontinuedEliminated_PreorderAllowed(t *testing.T) {
	e := newTestEvaluator()
	old := makePhone("old-flagship", 400)
	old.Availability = models.AvailabilityDiscontinued
	upcoming := makePhone("upcoming", 500)
	upcoming.Availability = models.AvailabilityPreorder

	out := e.Evaluate([]models.Item{old, upcoming}, models.ConstraintSet{
		Priorities: []string{dimension.Price},
	})

	require.Len(t, out.Qualified, 1)
	require.Len(t, out.Eliminated, 1)
	if out.Qualified[0].ID != "upcoming" {
		t.Errorf("preorder phones must pass through, got %s", out.Qualified[0].ID)
	}
	if out.Eliminated[0].Reason != models.ReasonDiscontinued {
		t.Errorf("expected DISCONTINUED, got %s", out.Eliminated[0].Reason)
	}
}

func TestEvaluate_IncompleteDataOnlyWhenAllMissing(t *testing.T) {
	e := newTestEvaluator()

	// No battery data but price always resolves: partial gaps qualify.
	partial := makePhone("partial", 400)
	partial.Specs.BatteryMAh = nil
	out := e.Evaluate([]models.Item{partial}, models.ConstraintSet{
		Priorities: []string{dimension.Battery, dimension.Price},
	})
	require.Len(t, out.Qualified, 1, "missing some but not all priority data must not eliminate")

	// Missing every priority dimension does eliminate.
	blank := makePhone("blank", 400)
	blank.Specs.BatteryMAh = nil
	out = e.Evaluate([]models.Item{blank}, models.ConstraintSet{
		Priorities: []string{dimension.Battery, dimension.Camera},
	})
	require.Len(t, out.Eliminated, 1)
	if out.Eliminated[0].Reason != models.ReasonIncompleteData {
		t.Errorf("expected INCOMPLETE_DATA, got %s", out.Eliminated[0].Reason)
	}
}

func TestEvaluate_PartitionIsDisjointAndComplete(t *testing.T) {
	e := newTestEvaluator()
	budget := 600.0
	items := []models.Item{
		makePhone("a", 500),
		makePhone("b", 700),
		makePhone("c", 550),
	}

	out := e.Evaluate(items, models.ConstraintSet{
		Budget:     &budget,
		Priorities: []string{dimension.Price},
	})

	require.Equal(t, len(items), len(out.Qualified)+len(out.Eliminated))
	seen := make(map[string]int)
	for _, item := range out.Qualified {
		seen[item.ID]++
	}
	for _, e := range out.Eliminated {
		seen[e.Item.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("item %s appears %d times across the partition", id, n)
		}
	}
}

func TestEvaluate_EveryEliminationHasReasonAndDetail(t *testing.T) {
	e := newTestEvaluator()
	budget := 100.0
	items := []models.Item{makePhone("a", 500), makePhone("b", 700)}

	out := e.Evaluate(items, models.ConstraintSet{
		Budget:     &budget,
		Priorities: []string{dimension.Price},
	})

	require.Len(t, out.Eliminated, 2)
	for _, rejected := range out.Eliminated {
		if rejected.Reason == "" {
			t.Errorf("%s has empty reason", rejected.Item.ID)
		}
		if rejected.Detail == "" {
			t.Errorf("%s has empty detail", rejected.Item.ID)
		}
	}
}
