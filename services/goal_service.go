package services

import (
	"fmt"
	"math"
	"strconv"

	"github.com/DEVKING-Kunal/wastewise-nutrition/models"
)

// GoalNutrients is the closed set of editable goal fields, in display order.
var GoalNutrients = []string{"calories", "protein", "carbs", "fat", "fiber", "sugar"}

// Display ceilings for the progress bars. Distinct from the user goals;
// they only keep the bars visually bounded. Calories has no ceiling in the
// UI, so its bar is computed against the goal itself.
var barScales = map[string]float64{
	"protein": 50,
	"carbs":   300,
	"fat":     70,
	"fiber":   30,
	"sugar":   25,
}

// goalField maps a nutrient name to its goal field. Fixed enumerated set,
// no reflective key access.
func goalField(g *models.NutritionGoals, nutrient string) *float64 {
	switch nutrient {
	case "calories":
		return &g.Calories
	case "protein":
		return &g.Protein
	case "carbs":
		return &g.Carbs
	case "fat":
		return &g.Fat
	case "fiber":
		return &g.Fiber
	case "sugar":
		return &g.Sugar
	default:
		return nil
	}
}

// UpdateGoal applies a single-field goal edit. The raw value must parse as
// a number > 0; otherwise the prior value is retained and an error returned.
func UpdateGoal(goals *models.NutritionGoals, nutrient, raw string) error {
	field := goalField(goals, nutrient)
	if field == nil {
		return fmt.Errorf("unknown nutrient %q", nutrient)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("goal value must be a number greater than zero")
	}

	*field = v
	return nil
}

// NutrientProgress compares the derived intake against one goal.
type NutrientProgress struct {
	Current    float64 `json:"current"`
	Goal       float64 `json:"goal"`
	Percent    float64 `json:"percent"`     // current/goal ratio, 0 when goal is unset
	BarPercent int     `json:"bar_percent"` // bounded 0..100 for the progress bar
}

// BuildProgress derives per-nutrient progress from the current nutrition
// aggregate. Total over its inputs: zero goals and scales yield 0 rather
// than NaN or Inf.
func BuildProgress(current models.NutritionData, goals models.NutritionGoals) map[string]NutrientProgress {
	entry := func(nutrient string, cur float64) NutrientProgress {
		goal := *goalField(&goals, nutrient)
		scale, ok := barScales[nutrient]
		if !ok {
			scale = goal
		}
		return NutrientProgress{
			Current:    cur,
			Goal:       goal,
			Percent:    ratio(cur, goal),
			BarPercent: barPercent(cur, scale),
		}
	}

	return map[string]NutrientProgress{
		"calories": entry("calories", float64(current.Calories)),
		"protein":  entry("protein", float64(current.Protein)),
		"carbs":    entry("carbs", float64(current.Carbs)),
		"fat":      entry("fat", float64(current.Fat)),
		"fiber":    entry("fiber", float64(current.Fiber)),
		"sugar":    entry("sugar", float64(current.Sugar)),
	}
}

func ratio(current, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return current / goal
}

func barPercent(current, scale float64) int {
	if scale <= 0 {
		return 0
	}
	p := int(math.Round(current / scale * 100))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
