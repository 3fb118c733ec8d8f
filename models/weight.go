package models

// WeightEntry is one before/after weight measurement, persisted as a single
// flat record into the weight_registration collection.
type WeightEntry struct {
	PlayerID         string  `bson:"player_id" json:"player_id"`
	RegistrationDate int     `bson:"registration_date" json:"registration_date"` // YYYYMMDD
	DayType          string  `bson:"day_type" json:"day_type"`
	WeightBefore     float64 `bson:"weight_before" json:"weight_before"`
	WeightAfter      float64 `bson:"weight_after" json:"weight_after"`
}
