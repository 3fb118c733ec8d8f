package models

// MealEntry is one diary record: a meal with its food elements. Persisted once
// into the meal_diary_entries collection, immutable thereafter.
type MealEntry struct {
	PlayerID     string     `bson:"player_id" json:"player_id"`
	MealDate     int        `bson:"meal_date" json:"meal_date"` // YYYYMMDD
	DayType      string     `bson:"day_type" json:"day_type"`
	MealType     string     `bson:"meal_type" json:"meal_type"`
	MealElements []FoodItem `bson:"meal_elements" json:"meal_elements"`
}
