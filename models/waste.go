package models

import "time"

// Reasons a food item was discarded.
const (
	ReasonExpired = "expired"
	ReasonExcess  = "excess"
	ReasonOther   = "other"
)

// WasteItem is one discarded-food record on the session waste log.
// The log is kept newest-first; there is no update-in-place.
type WasteItem struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Amount float64   `json:"amount"`
	Unit   string    `json:"unit"`
	Date   time.Time `json:"date"`
	Reason string    `json:"reason"`
}
