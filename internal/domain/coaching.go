package domain

// Category is a weekly coaching recommendation class. The rule engine
// returns categories and a severity flag only; the i18n table maps
// (language, category) to text.
type Category string

const (
	CategoryReset        Category = "reset"
	CategoryKitchenFocus Category = "kitchen_focus"
	CategoryMoveMore     Category = "move_more"
	CategoryLevelUp      Category = "level_up"
)

// Categories lists every recommendation class, for table completeness checks.
var Categories = []Category{CategoryReset, CategoryKitchenFocus, CategoryMoveMore, CategoryLevelUp}

// Recommendation is the selected weekly coaching class. Severe only selects
// an alert-vs-success indicator in the UI; it never affects the category.
type Recommendation struct {
	Category Category `json:"category"`
	Severe   bool     `json:"severe"`
}

// Classify selects the weekly recommendation from adherence percentages.
// The rules form an ordered decision list: the ranges overlap and the first
// match wins, so the order below is load-bearing.
func Classify(dietPercent, workoutPercent int) Recommendation {
	var cat Category
	switch {
	case dietPercent < 50 && workoutPercent < 50:
		cat = CategoryReset
	case dietPercent < 60:
		cat = CategoryKitchenFocus
	case workoutPercent < 60:
		cat = CategoryMoveMore
	default:
		cat = CategoryLevelUp
	}

	return Recommendation{
		Category: cat,
		Severe:   dietPercent < 50 || workoutPercent < 50,
	}
}
