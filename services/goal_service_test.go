package services

import (
	"testing"

	"github.com/DEVKING-Kunal/wastewise-nutrition/models"
)

func TestUpdateGoal(t *testing.T) {
	tests := []struct {
		name     string
		nutrient string
		raw      string
		wantErr  bool
		want     float64 // expected stored value afterwards
	}{
		{"valid integer", "calories", "2200", false, 2200},
		{"valid decimal", "protein", "55.5", false, 55.5},
		{"negative rejected", "calories", "-5", true, 2000},
		{"zero rejected", "fat", "0", true, 65},
		{"non-numeric rejected", "carbs", "abc", true, 275},
		{"empty rejected", "sugar", "", true, 25},
		{"unknown nutrient", "sodium", "10", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goals := models.DefaultNutritionGoals()
			err := UpdateGoal(&goals, tt.nutrient, tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateGoal(%q, %q) error = %v, wantErr %v", tt.nutrient, tt.raw, err, tt.wantErr)
			}
			if field := goalField(&goals, tt.nutrient); field != nil && *field != tt.want {
				t.Errorf("goal %q = %v, want %v", tt.nutrient, *field, tt.want)
			}
		})
	}
}

func TestUpdateGoalRetainsPriorOnInvalid(t *testing.T) {
	goals := models.DefaultNutritionGoals()
	if err := UpdateGoal(&goals, "protein", "80"); err != nil {
		t.Fatalf("valid update failed: %v", err)
	}
	if err := UpdateGoal(&goals, "protein", "abc"); err == nil {
		t.Fatal("expected error for non-numeric input")
	}
	if goals.Protein != 80 {
		t.Errorf("protein goal = %v, want prior value 80", goals.Protein)
	}
}

func TestBuildProgress(t *testing.T) {
	current := models.NutritionData{Calories: 1000, Protein: 25, Carbs: 150, Fat: 35, Fiber: 15, Sugar: 30}
	goals := models.DefaultNutritionGoals()

	progress := BuildProgress(current, goals)

	if got := progress["calories"].Percent; got != 0.5 {
		t.Errorf("calories percent = %v, want 0.5", got)
	}
	if got := progress["protein"].BarPercent; got != 50 {
		t.Errorf("protein bar = %v, want 50 (25 of scale 50)", got)
	}
	if got := progress["carbs"].BarPercent; got != 50 {
		t.Errorf("carbs bar = %v, want 50 (150 of scale 300)", got)
	}
	// 30g sugar over a 25g scale must clamp to 100.
	if got := progress["sugar"].BarPercent; got != 100 {
		t.Errorf("sugar bar = %v, want 100", got)
	}
	if got := progress["sugar"].Percent; got != 30.0/25.0 {
		t.Errorf("sugar percent = %v, want %v", got, 30.0/25.0)
	}
}

func TestBuildProgressGuardsZeroGoal(t *testing.T) {
	current := models.NutritionData{Calories: 500}
	goals := models.NutritionGoals{} // all zero

	progress := BuildProgress(current, goals)
	for nutrient, p := range progress {
		if p.Percent != 0 {
			t.Errorf("%s percent = %v with zero goal, want 0", nutrient, p.Percent)
		}
	}
	// Calories uses the goal as its bar scale, so a zero goal means 0%.
	if got := progress["calories"].BarPercent; got != 0 {
		t.Errorf("calories bar = %v with zero goal, want 0", got)
	}
}
