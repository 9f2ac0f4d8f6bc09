package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3loulou/phone-purchase-referee/internal/dimension"
)

func TestParseBudget(t *testing.T) {
	v, err := ParseBudget("1000")
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, 1000.0, *v)

	v, err = ParseBudget(" $750.50 ")
	require.NoError(t, err)
	require.Equal(t, 750.50, *v)

	v, err = ParseBudget("")
	require.NoError(t, err)
	require.Nil(t, v, "an empty budget means no cap")

	for _, bad := range []string{"abc", "0", "-100"} {
		if _, err := ParseBudget(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestParsePriorities(t *testing.T) {
	dims := dimension.NewRegistry()

	got, err := ParsePriorities("battery, price, camera", dims)
	require.NoError(t, err)
	require.Equal(t, []string{"battery", "price", "camera"}, got)

	got, err = ParsePriorities(" Price ,, BATTERY ", dims)
	require.NoError(t, err)
	require.Equal(t, []string{"price", "battery"}, got, "names are lowercased and blanks skipped")

	_, err = ParsePriorities("", dims)
	require.Error(t, err, "at least one priority is required")

	_, err = ParsePriorities("price, charisma", dims)
	require.Error(t, err)
	require.Contains(t, err.Error(), "charisma")

	_, err = ParsePriorities("price,battery,camera,storage,weight,benchmark", dims)
	require.Error(t, err, "six priorities exceed the cap")
}

func TestBuildConstraintSet(t *testing.T) {
	dims := dimension.NewRegistry()

	cs, err := BuildConstraintSet("900", "price, battery", " US ", true, "256", dims)
	require.NoError(t, err)

	require.NotNil(t, cs.Budget)
	require.Equal(t, 900.0, *cs.Budget)
	require.Equal(t, []string{"price", "battery"}, cs.Priorities)
	require.Equal(t, "US", cs.Region)
	require.Equal(t, true, cs.RequiredFeatures[dimension.Has5G])
	require.Equal(t, 256.0, cs.RequiredFeatures[dimension.Storage])
}

func TestBuildConstraintSet_OptionalFieldsOmitted(t *testing.T) {
	dims := dimension.NewRegistry()

	cs, err := BuildConstraintSet("", "price", "", false, "", dims)
	require.NoError(t, err)

	require.Nil(t, cs.Budget)
	require.Empty(t, cs.Region)
	require.Nil(t, cs.RequiredFeatures)
}

func TestBuildConstraintSet_PropagatesValidation(t *testing.T) {
	dims := dimension.NewRegistry()

	_, err := BuildConstraintSet("nope", "price", "", false, "", dims)
	require.Error(t, err)

	_, err = BuildConstraintSet("", "charisma", "", false, "", dims)
	require.Error(t, err)
}
