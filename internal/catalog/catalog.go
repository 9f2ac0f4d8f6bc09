// Package catalog loads and holds immutable phone catalog snapshots.
// The engine treats a snapshot as an externally-provided, already-curated
// sequence of records; this package only gives the CLI a way to obtain one
// and guards the integrity invariants the engine relies on.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/3loulou/phone-purchase-referee/internal/models"
)

// DefaultRegion is assumed for catalog entries that do not state one.
const DefaultRegion = "US"

// Snapshot is one immutable catalog version.
type Snapshot struct {
	Version string        `yaml:"version" json:"version"`
	Items   []models.Item `yaml:"phones" json:"phones"`
}

// New validates items, fills the default region, and rejects duplicate
// ids. A duplicate id would make every downstream ranking misleading, so
// it fails the whole snapshot rather than being skipped.
func New(version string, items []models.Item) (*Snapshot, error) {
	seen := make(map[string]bool, len(items))
	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.Region == "" {
			item.Region = DefaultRegion
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry: %w", err)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("duplicate phone id %q in catalog", item.ID)
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return &Snapshot{Version: version, Items: out}, nil
}

// Find returns the item with the given id.
func (s *Snapshot) Find(id string) (models.Item, bool) {
	for _, item := range s.Items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Item{}, false
}

// IDs returns all item ids in catalog order.
func (s *Snapshot) IDs() []string {
	ids := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// Hash returns a hex sha256 over the canonical JSON encoding of the
// items. Two snapshots with identical content hash identically, which is
// what the result metadata needs for reproducibility.
func (s *Snapshot) Hash() string {
	data, err := json.Marshal(s.Items)
	if err != nil {
		// models.Item contains only encodable fields; Marshal cannot fail.
		panic(fmt.Sprintf("catalog: hashing items: %v", err))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
