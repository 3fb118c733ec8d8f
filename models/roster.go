package models

// RosterEntry mirrors the roster collection, which is owned by the club's
// admin tooling and read-only here. Other fields in the documents are ignored.
type RosterEntry struct {
	PlayerID string `bson:"player_id" json:"player_id"`
}
