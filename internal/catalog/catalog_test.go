package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3loulou/phone-purchase-referee/internal/models"
)

func ptr(v float64) *float64 { return &v }

func entry(id string, price float64) models.Item {
	return models.Item{
		ID:       id,
		Name:     id,
		PriceUSD: price,
		Specs: models.SpecSheet{
			Has5G:      true,
			BatteryMAh: ptr(4500),
		},
		Availability: models.AvailabilityAvailable,
		Region:       "US",
	}
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New("v1", []models.Item{entry("twin", 500), entry("twin", 600)})
	require.Error(t, err)
	require.Contains(t, err.Error(), "twin")
}

func TestNew_FillsDefaultRegion(t *testing.T) {
	item := entry("pixel-9", 799)
	item.Region = ""

	snap, err := New("v1", []models.Item{item})
	require.NoError(t, err)
	if snap.Items[0].Region != DefaultRegion {
		t.Errorf("expected default region %s, got %q", DefaultRegion, snap.Items[0].Region)
	}
}

func TestNew_RejectsInvalidEntries(t *testing.T) {
	bad := entry("Bad ID", 500)
	_, err := New("v1", []models.Item{bad})
	require.Error(t, err)
}

func TestFind(t *testing.T) {
	snap, err := New("v1", []models.Item{entry("a", 500), entry("b", 600)})
	require.NoError(t, err)

	item, ok := snap.Find("b")
	require.True(t, ok)
	require.Equal(t, "b", item.ID)

	_, ok = snap.Find("z")
	require.False(t, ok)
}

func TestIDs_PreserveCatalogOrder(t *testing.T) {
	snap, err := New("v1", []models.Item{entry("zeta", 500), entry("alpha", 600)})
	require.NoError(t, err)
	require.Equal(t, []string{"zeta", "alpha"}, snap.IDs())
}

func TestHash_StableAndContentSensitive(t *testing.T) {
	first, err := New("v1", []models.Item{entry("a", 500)})
	require.NoError(t, err)
	second, err := New("v2", []models.Item{entry("a", 500)})
	require.NoError(t, err)

	// Hash covers items only, so the version label does not change it.
	require.Equal(t, first.Hash(), second.Hash())
	require.Equal(t, first.Hash(), first.Hash())

	changed, err := New("v1", []models.Item{entry("a", 501)})
	require.NoError(t, err)
	if changed.Hash() == first.Hash() {
		t.Error("a price change must change the catalog hash")
	}
}
