package dimension

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3loulou/phone-purchase-referee/internal/models"
)

func ptr(v float64) *float64 { return &v }

func makePhone() models.Item {
	return models.Item{
		ID:       "pixel-9",
		Name:     "Pixel 9",
		PriceUSD: 799,
		Specs: models.SpecSheet{
			Has5G:       true,
			BatteryMAh:  ptr(4700),
			StorageGB:   ptr(256),
			WeightGrams: ptr(198),
		},
		Availability: models.AvailabilityAvailable,
		Region:       "US",
	}
}

func TestResolve_AllDimensions(t *testing.T) {
	reg := NewRegistry()
	phone := makePhone()

	cases := []struct {
		dim  string
		want float64
		ok   bool
	}{
		{Price, 799, true},
		{Has5G, 1, true},
		{Battery, 4700, true},
		{Storage, 256, true},
		{Weight, 198, true},
		{Camera, 0, false},
		{ScreenSize, 0, false},
		{Benchmark, 0, false},
	}

	for _, tc := range cases {
		got, ok := reg.Resolve(phone, tc.dim)
		if ok != tc.ok {
			t.Errorf("%s: expected ok=%v, got %v", tc.dim, tc.ok, ok)
		}
		if ok && got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.dim, tc.want, got)
		}
	}
}

func TestResolve_UnknownDimension(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Resolve(makePhone(), "charisma"); ok {
		t.Error("expected unknown dimension to be unresolvable")
	}
}

func TestResolve_BooleanFalse(t *testing.T) {
	reg := NewRegistry()
	phone := makePhone()
	phone.Specs.Has5G = false

	got, ok := reg.Resolve(phone, Has5G)
	require.True(t, ok)
	if got != 0 {
		t.Errorf("expected 0 for missing 5G, got %v", got)
	}
}

func TestNames_PriceFirst(t *testing.T) {
	reg := NewRegistry()
	names := reg.Names()
	require.Len(t, names, 8)
	if names[0] != Price {
		t.Errorf("expected price first in display order, got %s", names[0])
	}
}

func TestMatchesFeature_BooleanExact(t *testing.T) {
	reg := NewRegistry()
	phone := makePhone()

	ok, err := reg.MatchesFeature(phone, Has5G, true)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = reg.MatchesFeature(phone, Has5G, false)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMatchesFeature_BooleanTypeMismatch(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.MatchesFeature(makePhone(), Has5G, "yes")
	require.Error(t, err)
}

func TestMatchesFeature_HigherBetterIsAtLeast(t *testing.T) {
	reg := NewRegistry()
	phone := makePhone() // 256 GB

	ok, err := reg.MatchesFeature(phone, Storage, 256)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = reg.MatchesFeature(phone, Storage, 512)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMatchesFeature_LowerBetterIsAtMost(t *testing.T) {
	reg := NewRegistry()
	phone := makePhone() // 198 g

	ok, err := reg.MatchesFeature(phone, Weight, 200)
	require.NoError(t, err)
	require.True(t, ok, "a 198 g phone satisfies weight <= 200")

	ok, err = reg.MatchesFeature(phone, Weight, 180)
	require.NoError(t, err)
	require.False(t, ok, "a 198 g phone fails weight <= 180")
}

func TestMatchesFeature_MissingValueFails(t *testing.T) {
	reg := NewRegistry()
	ok, err := reg.MatchesFeature(makePhone(), Camera, 48)
	require.NoError(t, err)
	require.False(t, ok, "a phone with no camera data cannot satisfy a camera requirement")
}

func TestFeatureRequirement_Rendering(t *testing.T) {
	reg := NewRegistry()

	if got := reg.FeatureRequirement(Storage, 256); got != "storage >= 256 GB" {
		t.Errorf("unexpected rendering: %q", got)
	}
	if got := reg.FeatureRequirement(Weight, 200); got != "weight <= 200 g" {
		t.Errorf("unexpected rendering: %q", got)
	}
	if got := reg.FeatureRequirement(Has5G, true); got != "has_5g = true" {
		t.Errorf("unexpected rendering: %q", got)
	}
}
