package models

// NutritionData is derived from the current ingredient list. It has no
// lifecycle of its own and is recomputed on every list mutation.
type NutritionData struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
	Sugar    int `json:"sugar"`
}

// NutritionGoals holds each user's daily nutrient-intake targets.
type NutritionGoals struct {
	Calories float64 `json:"calories"` // kcal
	Protein  float64 `json:"protein"`  // g
	Carbs    float64 `json:"carbs"`    // g
	Fat      float64 `json:"fat"`      // g
	Fiber    float64 `json:"fiber"`    // g
	Sugar    float64 `json:"sugar"`    // g
}

// DefaultNutritionGoals are the targets a fresh session starts with.
func DefaultNutritionGoals() NutritionGoals {
	return NutritionGoals{
		Calories: 2000,
		Protein:  50,
		Carbs:    275,
		Fat:      65,
		Fiber:    28,
		Sugar:    25,
	}
}
