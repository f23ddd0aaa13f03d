package services

import (
	"math"

	"github.com/DEVKING-Kunal/wastewise-nutrition/models"
	"github.com/DEVKING-Kunal/wastewise-nutrition/utils"
)

// Nutrient fractions of total normalized mass. Placeholder linear model,
// not sourced from a food database.
const (
	caloriesPerGram = 1.5
	proteinPerGram  = 0.05
	carbsPerGram    = 0.15
	fatPerGram      = 0.03
	fiberPerGram    = 0.02
	sugarPerGram    = 0.04
)

// EstimateNutrition derives nutrition totals from the ingredient list.
// It is a pure function of its input; an empty list yields all zeros.
func EstimateNutrition(ingredients []models.Ingredient) models.NutritionData {
	var totalMass float64
	for _, ing := range ingredients {
		totalMass += utils.NormalizeMass(ing.Amount, ing.Unit)
	}

	return models.NutritionData{
		Calories: int(math.Round(totalMass * caloriesPerGram)),
		Protein:  int(math.Round(totalMass * proteinPerGram)),
		Carbs:    int(math.Round(totalMass * carbsPerGram)),
		Fat:      int(math.Round(totalMass * fatPerGram)),
		Fiber:    int(math.Round(totalMass * fiberPerGram)),
		Sugar:    int(math.Round(totalMass * sugarPerGram)),
	}
}
