package calorie

type (
	// UnitCalories is a calorie count for one named unit of a processed food
	// (a slice, a can, a cup).
	UnitCalories struct {
		Unit     string
		Calories float64
	}

	// Record describes calorie density for one food. Natural foods carry a
	// per-100g density; processed foods may additionally carry unit-specific
	// entries that take precedence over the density.
	Record struct {
		Name            string
		CaloriesPer100g float64
		PerUnit         []UnitCalories
		IsNatural       bool
		IsProcessed     bool
	}
)

// processedRecords is checked before naturalRecords: names like "milk" are
// ambiguous between generic and packaged forms and the packaged reading wins.
var processedRecords = []Record{
	{Name: "milk", CaloriesPer100g: 42, PerUnit: []UnitCalories{{Unit: "cup", Calories: 103}, {Unit: "glass", Calories: 122}}, IsProcessed: true},
	{Name: "cheese", CaloriesPer100g: 402, PerUnit: []UnitCalories{{Unit: "slice", Calories: 113}}, IsProcessed: true},
	{Name: "yogurt", CaloriesPer100g: 59, PerUnit: []UnitCalories{{Unit: "cup", Calories: 149}}, IsProcessed: true},
	{Name: "butter", CaloriesPer100g: 717, PerUnit: []UnitCalories{{Unit: "tbsp", Calories: 102}}, IsProcessed: true},
	{Name: "bread", CaloriesPer100g: 265, PerUnit: []UnitCalories{{Unit: "slice", Calories: 79}}, IsProcessed: true},
	{Name: "pizza", CaloriesPer100g: 266, PerUnit: []UnitCalories{{Unit: "slice", Calories: 285}}, IsProcessed: true},
	{Name: "soda", CaloriesPer100g: 42, PerUnit: []UnitCalories{{Unit: "can", Calories: 139}, {Unit: "bottle", Calories: 208}}, IsProcessed: true},
	{Name: "juice", CaloriesPer100g: 45, PerUnit: []UnitCalories{{Unit: "cup", Calories: 112}}, IsProcessed: true},
	{Name: "cereal", CaloriesPer100g: 379, PerUnit: []UnitCalories{{Unit: "cup", Calories: 110}}, IsProcessed: true},
	{Name: "peanut butter", CaloriesPer100g: 588, PerUnit: []UnitCalories{{Unit: "tbsp", Calories: 94}}, IsProcessed: true},
	{Name: "chocolate", CaloriesPer100g: 546, PerUnit: []UnitCalories{{Unit: "bar", Calories: 230}}, IsProcessed: true},
	{Name: "chips", CaloriesPer100g: 536, PerUnit: []UnitCalories{{Unit: "bag", Calories: 152}}, IsProcessed: true},
	{Name: "cookie", CaloriesPer100g: 480, PerUnit: []UnitCalories{{Unit: "piece", Calories: 78}}, IsProcessed: true},
	{Name: "ice cream", CaloriesPer100g: 207, PerUnit: []UnitCalories{{Unit: "scoop", Calories: 137}}, IsProcessed: true},
	{Name: "ketchup", CaloriesPer100g: 112, PerUnit: []UnitCalories{{Unit: "tbsp", Calories: 17}}, IsProcessed: true},
	{Name: "mayonnaise", CaloriesPer100g: 680, PerUnit: []UnitCalories{{Unit: "tbsp", Calories: 94}}, IsProcessed: true},
	{Name: "pasta", CaloriesPer100g: 131, IsProcessed: true},
	{Name: "rice", CaloriesPer100g: 130, IsProcessed: true},
	{Name: "tofu", CaloriesPer100g: 76, IsProcessed: true},
}

// naturalRecords is per-100g only. More specific names come before their
// substrings (pineapple before apple, grapefruit before grape).
var naturalRecords = []Record{
	{Name: "pineapple", CaloriesPer100g: 50, IsNatural: true},
	{Name: "apple", CaloriesPer100g: 52, IsNatural: true},
	{Name: "banana", CaloriesPer100g: 89, IsNatural: true},
	{Name: "grapefruit", CaloriesPer100g: 42, IsNatural: true},
	{Name: "grape", CaloriesPer100g: 69, IsNatural: true},
	{Name: "orange", CaloriesPer100g: 47, IsNatural: true},
	{Name: "strawberry", CaloriesPer100g: 32, IsNatural: true},
	{Name: "blueberry", CaloriesPer100g: 57, IsNatural: true},
	{Name: "watermelon", CaloriesPer100g: 30, IsNatural: true},
	{Name: "mango", CaloriesPer100g: 60, IsNatural: true},
	{Name: "peach", CaloriesPer100g: 39, IsNatural: true},
	{Name: "pear", CaloriesPer100g: 57, IsNatural: true},
	{Name: "avocado", CaloriesPer100g: 160, IsNatural: true},
	{Name: "sweet potato", CaloriesPer100g: 86, IsNatural: true},
	{Name: "potato", CaloriesPer100g: 77, IsNatural: true},
	{Name: "tomato", CaloriesPer100g: 18, IsNatural: true},
	{Name: "carrot", CaloriesPer100g: 41, IsNatural: true},
	{Name: "broccoli", CaloriesPer100g: 34, IsNatural: true},
	{Name: "spinach", CaloriesPer100g: 23, IsNatural: true},
	{Name: "cucumber", CaloriesPer100g: 15, IsNatural: true},
	{Name: "onion", CaloriesPer100g: 40, IsNatural: true},
	{Name: "chicken", CaloriesPer100g: 165, IsNatural: true},
	{Name: "beef", CaloriesPer100g: 250, IsNatural: true},
	{Name: "pork", CaloriesPer100g: 242, IsNatural: true},
	{Name: "salmon", CaloriesPer100g: 208, IsNatural: true},
	{Name: "tuna", CaloriesPer100g: 132, IsNatural: true},
	{Name: "shrimp", CaloriesPer100g: 99, IsNatural: true},
	{Name: "egg", CaloriesPer100g: 155, IsNatural: true},
}

// pieceWeights is the average grams per whole piece used when a natural food
// is requested by bare piece count.
var pieceWeights = map[string]float64{
	"apple":  182,
	"banana": 118,
	"orange": 131,
	"peach":  150,
	"pear":   178,
	"potato": 213,
	"tomato": 123,
	"carrot": 61,
	"egg":    50,
}

const defaultPieceWeight = 100
