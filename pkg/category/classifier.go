// Package category assigns a pantry category to a free-text item name using
// an ordered keyword table. Matching is a plain substring test on the
// normalized name (not the bidirectional test the shelf-life table uses);
// the first match in table order and keyword order wins.
package category

import "strings"

const DefaultCategory = "other"

type Rule struct {
	Category string
	Keywords []string
	Priority int
}

// Rules is evaluated strictly in declaration order. Priority mirrors that
// order for callers that surface the table; it does not affect evaluation.
var Rules = []Rule{
	{
		Category: "fruits",
		Keywords: []string{
			"apple", "banana", "orange", "grape", "strawberry", "blueberry",
			"raspberry", "melon", "mango", "pineapple", "peach", "pear",
			"plum", "cherry", "kiwi", "lemon", "lime", "avocado", "berry",
		},
		Priority: 1,
	},
	{
		Category: "vegetables",
		Keywords: []string{
			"lettuce", "spinach", "kale", "carrot", "broccoli", "cauliflower",
			"potato", "tomato", "onion", "garlic", "cucumber", "zucchini",
			"squash", "cabbage", "celery", "mushroom", "corn", "bean",
			"pea", "asparagus", "radish", "beet",
		},
		Priority: 2,
	},
	{
		Category: "meat",
		Keywords: []string{
			"chicken", "beef", "pork", "turkey", "lamb", "steak", "bacon",
			"sausage", "ham", "mince", "meat",
		},
		Priority: 3,
	},
	{
		Category: "seafood",
		Keywords: []string{
			"fish", "salmon", "tuna", "shrimp", "prawn", "crab", "lobster",
			"cod", "seafood",
		},
		Priority: 4,
	},
	{
		Category: "dairy",
		Keywords: []string{
			"milk", "cheese", "yogurt", "yoghurt", "butter", "cream", "egg",
			"cheddar", "mozzarella",
		},
		Priority: 5,
	},
	{
		Category: "bakery",
		Keywords: []string{
			"bread", "bagel", "bun", "croissant", "muffin", "cake", "tortilla",
			"loaf", "roll",
		},
		Priority: 6,
	},
	{
		Category: "grains",
		Keywords: []string{
			"rice", "pasta", "noodle", "oat", "cereal", "flour", "quinoa",
			"grain", "wheat",
		},
		Priority: 7,
	},
	{
		Category: "beverages",
		Keywords: []string{
			"juice", "soda", "cola", "coffee", "tea", "water", "drink", "beer",
			"wine",
		},
		Priority: 8,
	},
	{
		Category: "snacks",
		Keywords: []string{
			"chips", "crackers", "cookie", "chocolate", "candy", "popcorn",
			"pretzel", "granola",
		},
		Priority: 9,
	},
	{
		Category: "condiments",
		Keywords: []string{
			"ketchup", "mustard", "mayo", "sauce", "dressing", "vinegar",
			"oil", "honey", "jam", "syrup",
		},
		Priority: 10,
	},
	{
		Category: "spices",
		Keywords: []string{
			"salt", "sugar", "spice", "cinnamon", "paprika", "cumin",
			"oregano", "basil", "herb",
		},
		Priority: 11,
	},
	{
		Category: "frozen",
		Keywords: []string{"frozen", "ice cream"},
		Priority: 12,
	},
	{
		Category: "canned",
		Keywords: []string{"canned", "tinned", "soup"},
		Priority: 13,
	},
}

// Categorize returns the category for an item name, or "other" when the name
// is empty or matches no rule. Results are deterministic for a given table.
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return DefaultCategory
	}

	for _, rule := range Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(name, kw) {
				return rule.Category
			}
		}
	}
	return DefaultCategory
}
