package utils

import (
	"testing"

	"github.com/DEVKING-Kunal/wastewise-nutrition/models"
)

func TestNormalizeMass(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		unit   string
		want   float64
	}{
		{"grams are identity", 100, models.UnitGram, 100},
		{"milliliters convert 1:1", 250, models.UnitMilliliter, 250},
		{"one cup", 1, models.UnitCup, 240},
		{"tablespoons", 2, models.UnitTablespoon, 30},
		{"teaspoons", 3, models.UnitTeaspoon, 15},
		{"unknown unit falls back to identity", 42, "oz", 42},
		{"empty unit falls back to identity", 7, "", 7},
		{"zero amount", 0, models.UnitCup, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeMass(tt.amount, tt.unit)
			if got != tt.want {
				t.Errorf("NormalizeMass(%v, %q) = %v, want %v", tt.amount, tt.unit, got, tt.want)
			}
		})
	}
}

func TestNormalizeMassMonotonic(t *testing.T) {
	for _, unit := range []string{models.UnitGram, models.UnitMilliliter, models.UnitCup, models.UnitTablespoon, models.UnitTeaspoon} {
		prev := NormalizeMass(1, unit)
		for _, amount := range []float64{2, 10, 100, 1000} {
			cur := NormalizeMass(amount, unit)
			if cur <= prev {
				t.Errorf("NormalizeMass not increasing for unit %q: %v then %v", unit, prev, cur)
			}
			prev = cur
		}
	}
}
