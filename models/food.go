package models

// Allowed values for the entry forms. The Dutch units and day types are stored
// verbatim, matching the club's paper diary.
var (
	MealTypes      = []string{"Breakfast", "Lunch", "Dinner", "Snack"}
	AmountUnits    = []string{"gr", "ml", "tas", "snede", "el", "kl", "stuk"}
	FoodDayTypes   = []string{"Match", "Training", "Rest"}
	WeightDayTypes = []string{"Wedstrijd", "Training"}
)

// ValidChoice reports whether v is one of the allowed values.
func ValidChoice(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// FoodItem is one food element of a meal, held in the session's pending list
// until the meal is submitted.
type FoodItem struct {
	Time        string  `bson:"time" json:"time"` // zero-padded HH:MM
	FoodProduct string  `bson:"food_product" json:"food_product"`
	AmountValue float64 `bson:"amount_value" json:"amount_value"`
	AmountUnit  string  `bson:"amount_unit" json:"amount_unit"`
}
