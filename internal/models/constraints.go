package models

import "fmt"

// Priority list bounds. The first entry is the most important dimension.
const (
	MinPriorities = 1
	MaxPriorities = 5
)

// ConstraintSet is the user's requirements for a constraint-first
// evaluation. Budget, required features, and region are optional; the
// priority list is not.
type ConstraintSet struct {
	Budget           *float64       `yaml:"budget,omitempty" json:"budget,omitempty"`
	RequiredFeatures map[string]any `yaml:"required_features,omitempty" json:"required_features,omitempty"`
	Priorities       []string       `yaml:"priorities" json:"priorities"`
	Region           string         `yaml:"region,omitempty" json:"region,omitempty"`
}

// Validate checks the shape of the constraint set: positive budget, 1-5
// priority entries, and a well-formed region code. Dimension and feature
// names are resolved by the engine, which owns the recognized-name table.
func (cs *ConstraintSet) Validate() error {
	if cs.Budget != nil && *cs.Budget <= 0 {
		return fmt.Errorf("budget must be positive, got %.2f", *cs.Budget)
	}
	if len(cs.Priorities) < MinPriorities {
		return fmt.Errorf("at least %d priority dimension is required", MinPriorities)
	}
	if len(cs.Priorities) > MaxPriorities {
		return fmt.Errorf("at most %d priority dimensions are allowed, got %d", MaxPriorities, len(cs.Priorities))
	}
	for _, p := range cs.Priorities {
		if p == "" {
			return fmt.Errorf("priority dimension names must be non-empty")
		}
	}
	if cs.Region != "" {
		if err := ValidateRegion(cs.Region); err != nil {
			return err
		}
	}
	return nil
}
