// Package dimension defines the closed set of measurable phone attributes
// shared by scoring, trade-off analysis, and required-feature checks.
package dimension

import (
	"fmt"

	"github.com/3loulou/phone-purchase-referee/internal/models"
)

// Polarity states whether a higher or lower raw value is better.
type Polarity int

const (
	HigherBetter Polarity = iota
	LowerBetter
)

// Kind distinguishes numeric dimensions from the boolean 5G flag.
type Kind int

const (
	KindNumeric Kind = iota
	KindBoolean
)

// Recognized dimension names. The same name space is used everywhere a
// dimension can appear: priorities, trade-offs, and required features.
const (
	Price      = "price"
	Has5G      = "has_5g"
	Battery    = "battery"
	Camera     = "camera"
	ScreenSize = "screen_size"
	Storage    = "storage"
	Weight     = "weight"
	Benchmark  = "benchmark"
)

// Info is the per-dimension metadata table entry.
type Info struct {
	Name     string
	Unit     string
	Polarity Polarity
	Kind     Kind
	resolve  func(models.Item) (float64, bool)
}

// Registry is the closed enumeration of supported dimensions. It is
// immutable after construction and safe for concurrent use.
type Registry struct {
	byName map[string]Info
	order  []string
}

// NewRegistry builds the fixed dimension table.
func NewRegistry() *Registry {
	infos := []Info{
		{Name: Price, Unit: "USD", Polarity: LowerBetter, Kind: KindNumeric,
			resolve: func(it models.Item) (float64, bool) { return it.PriceUSD, true }},
		{Name: Battery, Unit: "mAh", Polarity: HigherBetter, Kind: KindNumeric,
			resolve: optional(func(s models.SpecSheet) *float64 { return s.BatteryMAh })},
		{Name: Camera, Unit: "MP", Polarity: HigherBetter, Kind: KindNumeric,
			resolve: optional(func(s models.SpecSheet) *float64 { return s.CameraMP })},
		{Name: ScreenSize, Unit: "in", Polarity: HigherBetter, Kind: KindNumeric,
			resolve: optional(func(s models.SpecSheet) *float64 { return s.ScreenInches })},
		{Name: Storage, Unit: "GB", Polarity: HigherBetter, Kind: KindNumeric,
			resolve: optional(func(s models.SpecSheet) *float64 { return s.StorageGB })},
		{Name: Weight, Unit: "g", Polarity: LowerBetter, Kind: KindNumeric,
			resolve: optional(func(s models.SpecSheet) *float64 { return s.WeightGrams })},
		{Name: Benchmark, Unit: "points", Polarity: HigherBetter, Kind: KindNumeric,
			resolve: optional(func(s models.SpecSheet) *float64 { return s.BenchmarkScore })},
		{Name: Has5G, Unit: "", Polarity: HigherBetter, Kind: KindBoolean,
			resolve: func(it models.Item) (float64, bool) {
				if it.Specs.Has5G {
					return 1, true
				}
				return 0, true
			}},
	}

	r := &Registry{byName: make(map[string]Info, len(infos))}
	for _, info := range infos {
		r.byName[info.Name] = info
		r.order = append(r.order, info.Name)
	}
	return r
}

func optional(field func(models.SpecSheet) *float64) func(models.Item) (float64, bool) {
	return func(it models.Item) (float64, bool) {
		v := field(it.Specs)
		if v == nil {
			return 0, false
		}
		return *v, true
	}
}

// Lookup returns the metadata for a dimension name.
func (r *Registry) Lookup(name string) (Info, bool) {
	info, ok := r.byName[name]
	return info, ok
}

// Names returns all recognized dimension names in display order
// (price first).
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Resolve returns the item's raw value for a dimension, or false when the
// item has no value for it. Booleans resolve to 0 or 1. Unknown names
// resolve to false; callers validate names up front.
func (r *Registry) Resolve(item models.Item, name string) (float64, bool) {
	info, ok := r.byName[name]
	if !ok {
		return 0, false
	}
	return info.resolve(item)
}

// MatchesFeature reports whether an item satisfies a required-feature
// value for the given dimension. Booleans compare exactly. Numeric
// requirements are thresholds whose direction follows the dimension's
// polarity: "at least" for higher-is-better dimensions, "at most" for
// lower-is-better ones (price, weight).
func (r *Registry) MatchesFeature(item models.Item, name string, want any) (bool, error) {
	info, ok := r.byName[name]
	if !ok {
		return false, fmt.Errorf("unknown feature %q", name)
	}

	switch info.Kind {
	case KindBoolean:
		wantBool, ok := want.(bool)
		if !ok {
			return false, fmt.Errorf("feature %q requires a boolean value, got %T", name, want)
		}
		got, _ := info.resolve(item)
		return (got == 1) == wantBool, nil
	default:
		threshold, err := toFloat(want)
		if err != nil {
			return false, fmt.Errorf("feature %q requires a numeric value: %w", name, err)
		}
		got, resolved := info.resolve(item)
		if !resolved {
			return false, nil
		}
		if info.Polarity == LowerBetter {
			return got <= threshold, nil
		}
		return got >= threshold, nil
	}
}

// FeatureRequirement renders a required-feature pair for detail strings,
// e.g. "storage >= 256 GB" or "has_5g = true".
func (r *Registry) FeatureRequirement(name string, want any) string {
	info, ok := r.byName[name]
	if !ok {
		return fmt.Sprintf("%s = %v", name, want)
	}
	if info.Kind == KindBoolean {
		return fmt.Sprintf("%s = %v", name, want)
	}
	op := ">="
	if info.Polarity == LowerBetter {
		op = "<="
	}
	if info.Unit != "" {
		return fmt.Sprintf("%s %s %v %s", name, op, want, info.Unit)
	}
	return fmt.Sprintf("%s %s %v", name, op, want)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("got %T", v)
	}
}
