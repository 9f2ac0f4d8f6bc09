// Package wizard collects a constraint set through an interactive form.
package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/3loulou/phone-purchase-referee/internal/dimension"
	"github.com/3loulou/phone-purchase-referee/internal/models"
)

// RunConstraintWizard runs an interactive huh form and returns the
// collected constraint set.
func RunConstraintWizard() (*models.ConstraintSet, error) {
	dims := dimension.NewRegistry()

	var (
		budgetRaw     string
		prioritiesRaw string
		region        string
		need5G        bool
		minStorageRaw string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Budget (USD)").
				Description("Maximum price you are willing to pay; leave empty for no cap").
				Placeholder("1000").
				Value(&budgetRaw).
				Validate(func(s string) error {
					_, err := ParseBudget(s)
					return err
				}),
			huh.NewInput().
				Title("Priorities").
				Description("1-5 comma-separated dimensions, most important first").
				Placeholder("battery, price, camera").
				Value(&prioritiesRaw).
				Validate(func(s string) error {
					_, err := ParsePriorities(s, dims)
					return err
				}),
			huh.NewInput().
				Title("Region").
				Description("2-letter region code; leave empty for no region filter").
				Placeholder("US").
				Value(&region).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return models.ValidateRegion(strings.TrimSpace(s))
				}),
			huh.NewConfirm().
				Title("Require 5G support?").
				Value(&need5G),
			huh.NewInput().
				Title("Minimum storage (GB)").
				Description("Leave empty for no storage requirement").
				Placeholder("256").
				Value(&minStorageRaw).
				Validate(func(s string) error {
					_, err := parseOptionalNumber(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("running constraint wizard: %w", err)
	}

	return BuildConstraintSet(budgetRaw, prioritiesRaw, region, need5G, minStorageRaw, dims)
}

// BuildConstraintSet assembles a validated constraint set from raw form
// values. Split out of the form flow so it can be tested directly.
func BuildConstraintSet(budgetRaw, prioritiesRaw, region string, need5G bool, minStorageRaw string, dims *dimension.Registry) (*models.ConstraintSet, error) {
	budget, err := ParseBudget(budgetRaw)
	if err != nil {
		return nil, err
	}
	priorities, err := ParsePriorities(prioritiesRaw, dims)
	if err != nil {
		return nil, err
	}
	minStorage, err := parseOptionalNumber(minStorageRaw)
	if err != nil {
		return nil, err
	}

	cs := &models.ConstraintSet{
		Budget:     budget,
		Priorities: priorities,
		Region:     strings.TrimSpace(region),
	}
	features := make(map[string]any)
	if need5G {
		features[dimension.Has5G] = true
	}
	if minStorage != nil {
		features[dimension.Storage] = *minStorage
	}
	if len(features) > 0 {
		cs.RequiredFeatures = features
	}

	if err := cs.Validate(); err != nil {
		return nil, err
	}
	return cs, nil
}

// ParseBudget parses an optional positive dollar amount.
func ParseBudget(s string) (*float64, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if trimmed == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("budget must be a number, got %q", s)
	}
	if v <= 0 {
		return nil, fmt.Errorf("budget must be positive, got %v", v)
	}
	return &v, nil
}

// ParsePriorities parses a comma-separated, ordered priority list and
// checks every name against the dimension registry.
func ParsePriorities(s string, dims *dimension.Registry) ([]string, error) {
	var out []string
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if _, ok := dims.Lookup(name); !ok {
			return nil, fmt.Errorf("unknown dimension %q: supported dimensions are %v", name, dims.Names())
		}
		out = append(out, name)
	}
	if len(out) < models.MinPriorities {
		return nil, fmt.Errorf("at least one priority dimension is required")
	}
	if len(out) > models.MaxPriorities {
		return nil, fmt.Errorf("at most %d priority dimensions are allowed, got %d", models.MaxPriorities, len(out))
	}
	return out, nil
}

func parseOptionalNumber(s string) (*float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("expected a number, got %q", s)
	}
	if v <= 0 {
		return nil, fmt.Errorf("expected a positive number, got %v", v)
	}
	return &v, nil
}
