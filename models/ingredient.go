package models

// Measurement units accepted for ingredients and waste items.
const (
	UnitGram       = "g"
	UnitMilliliter = "ml"
	UnitCup        = "cups"
	UnitTablespoon = "tbsp"
	UnitTeaspoon   = "tsp"
)

// Ingredient is a session-scoped entry on the calculator list.
// It is never persisted; IDs are unique only within the session.
type Ingredient struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"` // always >= 1 after any mutation
	Unit   string  `json:"unit"`
}
