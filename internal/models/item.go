package models

import (
	"fmt"
	"unicode"
)

// Availability describes whether a phone can currently be purchased.
type Availability string

const (
	AvailabilityAvailable    Availability = "available"
	AvailabilityDiscontinued Availability = "discontinued"
	AvailabilityPreorder     Availability = "preorder"
)

// ParseAvailability converts a catalog string to an Availability.
func ParseAvailability(s string) (Availability, error) {
	switch Availability(s) {
	case AvailabilityAvailable, AvailabilityDiscontinued, AvailabilityPreorder:
		return Availability(s), nil
	default:
		return "", fmt.Errorf("invalid availability %q: must be available, discontinued, or preorder", s)
	}
}

// SpecSheet holds the measurable attributes of a phone. Every field is
// optional except Has5G, which the catalog must always state.
type SpecSheet struct {
	Has5G          bool     `yaml:"has_5g" json:"has_5g"`
	BatteryMAh     *float64 `yaml:"battery_mah,omitempty" json:"battery_mah,omitempty"`
	CameraMP       *float64 `yaml:"camera_mp,omitempty" json:"camera_mp,omitempty"`
	ScreenInches   *float64 `yaml:"screen_inches,omitempty" json:"screen_inches,omitempty"`
	StorageGB      *float64 `yaml:"storage_gb,omitempty" json:"storage_gb,omitempty"`
	WeightGrams    *float64 `yaml:"weight_grams,omitempty" json:"weight_grams,omitempty"`
	BenchmarkScore *float64 `yaml:"benchmark_score,omitempty" json:"benchmark_score,omitempty"`
}

// Item is a single phone in a catalog snapshot. Items are treated as
// immutable for the duration of one evaluation call.
type Item struct {
	ID           string       `yaml:"id" json:"id"`
	Name         string       `yaml:"name" json:"name"`
	PriceUSD     float64      `yaml:"price" json:"price"`
	Specs        SpecSheet    `yaml:"specs" json:"specs"`
	Availability Availability `yaml:"availability" json:"availability"`
	Region       string       `yaml:"region,omitempty" json:"region,omitempty"`
}

// Validate checks the item's invariants: a lowercase/hyphen id token, a
// non-negative price, a known availability status, and a 2-letter region
// when one is present.
func (i *Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("phone has no id (name: %q)", i.Name)
	}
	for _, c := range i.ID {
		if !unicode.IsLower(c) && !unicode.IsDigit(c) && c != '-' {
			return fmt.Errorf("phone id %q must be lowercase letters, digits, and hyphens only", i.ID)
		}
	}
	if i.Name == "" {
		return fmt.Errorf("phone %s has no display name", i.ID)
	}
	if i.PriceUSD < 0 {
		return fmt.Errorf("phone %s has negative price %.2f", i.ID, i.PriceUSD)
	}
	if _, err := ParseAvailability(string(i.Availability)); err != nil {
		return fmt.Errorf("phone %s: %w", i.ID, err)
	}
	if i.Region != "" {
		if err := ValidateRegion(i.Region); err != nil {
			return fmt.Errorf("phone %s: %w", i.ID, err)
		}
	}
	return nil
}

// ValidateRegion checks for an ISO 3166-1 alpha-2 code.
func ValidateRegion(region string) error {
	if len(region) != 2 {
		return fmt.Errorf("invalid region code %q: must be a 2-letter ISO 3166-1 code", region)
	}
	for _, c := range region {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("invalid region code %q: must be two uppercase letters", region)
		}
	}
	return nil
}
