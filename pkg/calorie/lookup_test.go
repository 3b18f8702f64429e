package calorie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupNaturalFoodByPiece(t *testing.T) {
	// A whole apple averages 182 g at 52 kcal per 100 g.
	res := Lookup("Apple", 2, "pieces")
	require.NotNil(t, res)
	assert.Equal(t, 189, res.Calories)
	assert.InDelta(t, 94.64, res.CaloriesPerUnit, 0.01)
	assert.Equal(t, SourceEstimated, res.Source)
}

func TestLookupBarePieceCountDefaultsUnit(t *testing.T) {
	res := Lookup("banana", 1, "")
	require.NotNil(t, res)
	assert.Equal(t, 105, res.Calories)
	assert.Equal(t, SourceEstimated, res.Source)
}

func TestLookupProcessedFoodExactUnit(t *testing.T) {
	res := Lookup("milk", 1, "cup")
	require.NotNil(t, res)
	assert.Equal(t, 103, res.Calories)
	assert.Equal(t, 103.0, res.CaloriesPerUnit)
	assert.Equal(t, SourceExact, res.Source)

	res = Lookup("cheddar cheese", 2, "slices")
	require.NotNil(t, res)
	assert.Equal(t, 226, res.Calories)
	assert.Equal(t, SourceExact, res.Source)
}

func TestLookupProcessedFoodByWeight(t *testing.T) {
	res := Lookup("milk", 1, "liter")
	require.NotNil(t, res)
	assert.Equal(t, 420, res.Calories)
	assert.Equal(t, 42.0, res.CaloriesPerUnit)
	assert.Equal(t, SourceEstimated, res.Source)
}

func TestLookupUnitConversions(t *testing.T) {
	cases := []struct {
		name     string
		quantity float64
		unit     string
		want     int
	}{
		{"chicken", 200, "g", 330},
		{"chicken", 1, "kg", 1650},
		{"beef", 1, "lb", 1134},
		{"shrimp", 4, "oz", 112},
		{"grapefruit", 100, "grams", 42},
	}

	for _, tc := range cases {
		res := Lookup(tc.name, tc.quantity, tc.unit)
		require.NotNil(t, res, "%s %v %s", tc.name, tc.quantity, tc.unit)
		assert.Equal(t, tc.want, res.Calories, "%s %v %s", tc.name, tc.quantity, tc.unit)
	}
}

func TestLookupMoreSpecificNameWins(t *testing.T) {
	// "grapefruit" must not fall through to the "grape" record.
	grapefruit := Lookup("grapefruit", 100, "g")
	require.NotNil(t, grapefruit)
	assert.Equal(t, 42, grapefruit.Calories)

	grape := Lookup("grape", 100, "g")
	require.NotNil(t, grape)
	assert.Equal(t, 69, grape.Calories)
}

func TestLookupMisses(t *testing.T) {
	assert.Nil(t, Lookup("mystery stew", 1, "piece"))
	assert.Nil(t, Lookup("", 1, "piece"))
	assert.Nil(t, Lookup("apple", 0, "piece"))
	assert.Nil(t, Lookup("apple", -1, "piece"))

	// Natural food with an uninterpretable unit.
	assert.Nil(t, Lookup("salmon", 1, "fillet"))
}
