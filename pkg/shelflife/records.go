package shelflife

type (
	// Record maps a class of foods to its expected freshness window.
	// MinDays is the conservative end of the range and is the offset used
	// by the earliest-date policy. Invariants: MinDays <= MaxDays and
	// MinDays <= RefrigeratedDays.
	Record struct {
		Category         string
		Keywords         []string
		RefrigeratedDays int
		RoomTempDays     int
		MinDays          int
		MaxDays          int
		StorageNote      string
	}

	// PackagedRule adds a flat number of days for shelf-stable packaging
	// keywords when no fresh-food record matches.
	PackagedRule struct {
		Keywords    []string
		DaysToAdd   int
		Description string
	}
)

// Records is scanned in declaration order; the first match wins.
var Records = []Record{
	{
		Category:         "berries",
		Keywords:         []string{"strawberry", "blueberry", "raspberry", "blackberry", "berries"},
		RefrigeratedDays: 5, RoomTempDays: 1, MinDays: 3, MaxDays: 7,
		StorageNote: "Keep refrigerated and unwashed until use.",
	},
	{
		Category:         "grapes",
		Keywords:         []string{"grape"},
		RefrigeratedDays: 7, RoomTempDays: 3, MinDays: 5, MaxDays: 10,
		StorageNote: "Store in the crisper drawer.",
	},
	{
		Category:         "apples",
		Keywords:         []string{"apple"},
		RefrigeratedDays: 30, RoomTempDays: 7, MinDays: 21, MaxDays: 42,
		StorageNote: "Refrigeration greatly extends shelf life.",
	},
	{
		Category:         "bananas",
		Keywords:         []string{"banana"},
		RefrigeratedDays: 7, RoomTempDays: 5, MinDays: 3, MaxDays: 7,
		StorageNote: "Store at room temperature until ripe.",
	},
	{
		Category:         "citrus",
		Keywords:         []string{"orange", "lemon", "lime", "citrus"},
		RefrigeratedDays: 21, RoomTempDays: 7, MinDays: 14, MaxDays: 28,
		StorageNote: "Keeps longest in the refrigerator.",
	},
	{
		Category:         "stone fruit",
		Keywords:         []string{"peach", "plum", "nectarine", "apricot", "cherry"},
		RefrigeratedDays: 5, RoomTempDays: 3, MinDays: 3, MaxDays: 7,
		StorageNote: "Ripen at room temperature, then refrigerate.",
	},
	{
		Category:         "melons",
		Keywords:         []string{"melon", "watermelon", "cantaloupe", "honeydew"},
		RefrigeratedDays: 7, RoomTempDays: 5, MinDays: 5, MaxDays: 10,
		StorageNote: "Refrigerate after cutting.",
	},
	{
		Category:         "leafy greens",
		Keywords:         []string{"lettuce", "spinach", "kale", "arugula", "salad", "greens"},
		RefrigeratedDays: 5, RoomTempDays: 1, MinDays: 3, MaxDays: 7,
		StorageNote: "Keep refrigerated in a sealed bag.",
	},
	{
		Category:         "cruciferous vegetables",
		Keywords:         []string{"broccoli", "cauliflower", "cabbage", "brussels"},
		RefrigeratedDays: 5, RoomTempDays: 2, MinDays: 3, MaxDays: 7,
		StorageNote: "Refrigerate unwashed.",
	},
	{
		Category:         "root vegetables",
		Keywords:         []string{"carrot", "beet", "radish", "turnip", "parsnip"},
		RefrigeratedDays: 21, RoomTempDays: 7, MinDays: 14, MaxDays: 28,
		StorageNote: "Remove green tops before storing.",
	},
	{
		Category:         "potatoes",
		Keywords:         []string{"potato", "yam"},
		RefrigeratedDays: 30, RoomTempDays: 14, MinDays: 14, MaxDays: 35,
		StorageNote: "Store in a cool, dark, dry place.",
	},
	{
		Category:         "onions and garlic",
		Keywords:         []string{"onion", "garlic", "shallot"},
		RefrigeratedDays: 30, RoomTempDays: 21, MinDays: 21, MaxDays: 60,
		StorageNote: "Store in a cool, dry, ventilated spot.",
	},
	{
		Category:         "tomatoes",
		Keywords:         []string{"tomato"},
		RefrigeratedDays: 7, RoomTempDays: 5, MinDays: 5, MaxDays: 10,
		StorageNote: "Room temperature preserves flavor; refrigerate when fully ripe.",
	},
	{
		Category:         "peppers",
		Keywords:         []string{"pepper", "capsicum"},
		RefrigeratedDays: 10, RoomTempDays: 4, MinDays: 7, MaxDays: 14,
		StorageNote: "Keep whole and refrigerated.",
	},
	{
		Category:         "cucumbers and squash",
		Keywords:         []string{"cucumber", "zucchini", "squash"},
		RefrigeratedDays: 7, RoomTempDays: 3, MinDays: 5, MaxDays: 10,
		StorageNote: "Refrigerate in the crisper drawer.",
	},
	{
		Category:         "mushrooms",
		Keywords:         []string{"mushroom"},
		RefrigeratedDays: 7, RoomTempDays: 1, MinDays: 4, MaxDays: 10,
		StorageNote: "Store in a paper bag in the refrigerator.",
	},
	{
		Category:         "milk",
		Keywords:         []string{"milk"},
		RefrigeratedDays: 7, RoomTempDays: 1, MinDays: 5, MaxDays: 7,
		StorageNote: "Keep refrigerated at all times.",
	},
	{
		Category:         "yogurt",
		Keywords:         []string{"yogurt", "yoghurt"},
		RefrigeratedDays: 14, RoomTempDays: 1, MinDays: 7, MaxDays: 14,
		StorageNote: "Keep refrigerated and sealed.",
	},
	{
		Category:         "hard cheese",
		Keywords:         []string{"cheddar", "parmesan", "gouda"},
		RefrigeratedDays: 28, RoomTempDays: 2, MinDays: 21, MaxDays: 42,
		StorageNote: "Wrap tightly and refrigerate.",
	},
	{
		Category:         "soft cheese",
		Keywords:         []string{"mozzarella", "brie", "feta", "cream cheese", "cheese"},
		RefrigeratedDays: 7, RoomTempDays: 1, MinDays: 7, MaxDays: 14,
		StorageNote: "Refrigerate and use soon after opening.",
	},
	{
		Category:         "butter",
		Keywords:         []string{"butter", "margarine"},
		RefrigeratedDays: 30, RoomTempDays: 7, MinDays: 30, MaxDays: 60,
		StorageNote: "Refrigerate; freeze for longer storage.",
	},
	{
		Category:         "eggs",
		Keywords:         []string{"egg"},
		RefrigeratedDays: 28, RoomTempDays: 7, MinDays: 21, MaxDays: 35,
		StorageNote: "Keep refrigerated in the original carton.",
	},
	{
		Category:         "poultry",
		Keywords:         []string{"chicken", "turkey", "poultry"},
		RefrigeratedDays: 2, RoomTempDays: 0, MinDays: 1, MaxDays: 2,
		StorageNote: "Cook or freeze within two days of purchase.",
	},
	{
		Category:         "red meat",
		Keywords:         []string{"beef", "steak", "pork", "lamb", "mince"},
		RefrigeratedDays: 3, RoomTempDays: 0, MinDays: 1, MaxDays: 5,
		StorageNote: "Keep refrigerated; freeze if not cooking soon.",
	},
	{
		Category:         "seafood",
		Keywords:         []string{"fish", "salmon", "tuna", "shrimp", "prawn", "seafood"},
		RefrigeratedDays: 2, RoomTempDays: 0, MinDays: 1, MaxDays: 2,
		StorageNote: "Highly perishable; cook within two days.",
	},
	{
		Category:         "cured and deli meat",
		Keywords:         []string{"ham", "bacon", "sausage", "salami", "deli"},
		RefrigeratedDays: 7, RoomTempDays: 1, MinDays: 5, MaxDays: 7,
		StorageNote: "Keep refrigerated after opening.",
	},
	{
		Category:         "bread",
		Keywords:         []string{"bread", "bagel", "bun", "loaf"},
		RefrigeratedDays: 7, RoomTempDays: 5, MinDays: 3, MaxDays: 7,
		StorageNote: "Store at room temperature; freeze to extend.",
	},
	{
		Category:         "flatbread",
		Keywords:         []string{"tortilla", "wrap", "pita"},
		RefrigeratedDays: 14, RoomTempDays: 7, MinDays: 7, MaxDays: 14,
		StorageNote: "Refrigerate after opening.",
	},
	{
		Category:         "leftovers",
		Keywords:         []string{"leftover", "cooked meal"},
		RefrigeratedDays: 4, RoomTempDays: 0, MinDays: 3, MaxDays: 5,
		StorageNote: "Refrigerate within two hours of cooking.",
	},
	{
		Category:         "tofu and tempeh",
		Keywords:         []string{"tofu", "tempeh"},
		RefrigeratedDays: 5, RoomTempDays: 0, MinDays: 3, MaxDays: 7,
		StorageNote: "Keep refrigerated; change water daily once opened.",
	},
	{
		Category:         "fresh juice",
		Keywords:         []string{"juice"},
		RefrigeratedDays: 7, RoomTempDays: 1, MinDays: 7, MaxDays: 10,
		StorageNote: "Keep refrigerated and sealed.",
	},
	{
		Category:         "fresh herbs",
		Keywords:         []string{"basil", "cilantro", "parsley", "mint", "herb"},
		RefrigeratedDays: 7, RoomTempDays: 2, MinDays: 5, MaxDays: 10,
		StorageNote: "Store stems in water like a bouquet.",
	},
}

// PackagedRules is consulted only when no fresh-food record matches.
var PackagedRules = []PackagedRule{
	{Keywords: []string{"canned", "tinned", "can of"}, DaysToAdd: 365, Description: "Canned goods"},
	{Keywords: []string{"frozen"}, DaysToAdd: 180, Description: "Frozen foods"},
	{Keywords: []string{"dried", "dehydrated"}, DaysToAdd: 180, Description: "Dried foods"},
	{Keywords: []string{"jarred", "pickled"}, DaysToAdd: 270, Description: "Jarred and pickled goods"},
	{Keywords: []string{"pasta", "noodle", "rice", "grain"}, DaysToAdd: 365, Description: "Dry pasta and grains"},
	{Keywords: []string{"flour", "sugar", "salt"}, DaysToAdd: 365, Description: "Baking staples"},
	{Keywords: []string{"cereal", "oats", "granola"}, DaysToAdd: 120, Description: "Breakfast cereals"},
	{Keywords: []string{"chips", "crackers", "cookies", "biscuits"}, DaysToAdd: 90, Description: "Packaged snacks"},
	{Keywords: []string{"sauce", "ketchup", "mustard", "mayo", "condiment"}, DaysToAdd: 180, Description: "Condiments and sauces"},
	{Keywords: []string{"chocolate", "candy"}, DaysToAdd: 180, Description: "Confectionery"},
	{Keywords: []string{"soda", "cola", "soft drink"}, DaysToAdd: 180, Description: "Carbonated drinks"},
	{Keywords: []string{"coffee", "tea"}, DaysToAdd: 365, Description: "Coffee and tea"},
}
