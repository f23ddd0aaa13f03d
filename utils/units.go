package utils

import "github.com/DEVKING-Kunal/wastewise-nutrition/models"

// Approximate gram equivalents per unit. These are display-grade
// constants, not unit-system-exact conversions.
var gramsPerUnit = map[string]float64{
	models.UnitGram:       1,
	models.UnitMilliliter: 1,
	models.UnitCup:        240,
	models.UnitTablespoon: 15,
	models.UnitTeaspoon:   5,
}

// NormalizeMass converts an amount in the given unit to grams.
// Unknown units convert 1:1; that is intentional, not an error.
func NormalizeMass(amount float64, unit string) float64 {
	factor, ok := gramsPerUnit[unit]
	if !ok {
		return amount
	}
	return amount * factor
}
