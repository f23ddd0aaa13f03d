package services

import (
	"testing"
	"time"

	"github.com/DEVKING-Kunal/wastewise-nutrition/models"
)

func TestTrackerAddIngredient(t *testing.T) {
	tr := NewTracker()

	ing, err := tr.AddIngredient("Rice", 100, models.UnitGram)
	if err != nil {
		t.Fatalf("AddIngredient: %v", err)
	}
	if ing.ID == "" {
		t.Error("expected an id to be assigned")
	}

	// Nutrition recomputes synchronously with the mutation.
	if got := tr.Nutrition().Calories; got != 150 {
		t.Errorf("calories after add = %d, want 150", got)
	}
}

func TestTrackerAddIngredientValidation(t *testing.T) {
	tr := NewTracker()

	if _, err := tr.AddIngredient("", 100, models.UnitGram); err != ErrEmptyName {
		t.Errorf("empty name error = %v, want ErrEmptyName", err)
	}
	if _, err := tr.AddIngredient("   ", 100, models.UnitGram); err != ErrEmptyName {
		t.Errorf("blank name error = %v, want ErrEmptyName", err)
	}
	if len(tr.Ingredients("")) != 0 {
		t.Error("rejected add must leave the list unchanged")
	}

	// Missing amount and unit fall back to defaults.
	ing, err := tr.AddIngredient("Oats", 0, "")
	if err != nil {
		t.Fatalf("AddIngredient: %v", err)
	}
	if ing.Amount != 100 || ing.Unit != models.UnitGram {
		t.Errorf("defaults = %v %s, want 100 g", ing.Amount, ing.Unit)
	}

	// Fractional amounts below the floor are clamped on add, not stored.
	tiny, err := tr.AddIngredient("Saffron", 0.5, models.UnitGram)
	if err != nil {
		t.Fatalf("AddIngredient: %v", err)
	}
	if tiny.Amount != 1 {
		t.Errorf("sub-minimum amount stored as %v, want 1", tiny.Amount)
	}
}

func TestTrackerAdjustClampsToMinimum(t *testing.T) {
	tr := NewTracker()
	ing, _ := tr.AddIngredient("Rice", 20, models.UnitGram)

	tests := []struct {
		delta float64
		want  float64
	}{
		{-10, 10},
		{-1000, 1},
		{-5, 1},
		{9, 10},
	}

	for _, tt := range tests {
		tr.AdjustIngredientAmount(ing.ID, tt.delta)
		got := tr.Ingredients("")[0].Amount
		if got != tt.want {
			t.Errorf("after delta %v: amount = %v, want %v", tt.delta, got, tt.want)
		}
	}

	// Unknown id is a no-op.
	tr.AdjustIngredientAmount("nope", 100)
	if got := tr.Ingredients("")[0].Amount; got != 10 {
		t.Errorf("unknown-id adjust changed amount to %v", got)
	}
}

func TestTrackerRemoveIngredientRecomputes(t *testing.T) {
	tr := NewTracker()
	a, _ := tr.AddIngredient("Rice", 100, models.UnitGram)
	tr.AddIngredient("Flour", 1, models.UnitCup)

	tr.RemoveIngredient(a.ID)
	if got := len(tr.Ingredients("")); got != 1 {
		t.Fatalf("list length = %d, want 1", got)
	}
	if got := tr.Nutrition().Calories; got != 360 { // 240g * 1.5
		t.Errorf("calories after remove = %d, want 360", got)
	}

	tr.RemoveIngredient(a.ID) // already gone, no-op
	if got := len(tr.Ingredients("")); got != 1 {
		t.Errorf("repeat remove changed list length to %d", got)
	}
}

func TestTrackerIngredientSearch(t *testing.T) {
	tr := NewTracker()
	tr.AddIngredient("Spinach", 150, models.UnitGram)
	tr.AddIngredient("Milk", 250, models.UnitMilliliter)

	got := tr.Ingredients("spin")
	if len(got) != 1 || got[0].Name != "Spinach" {
		t.Errorf("search result = %+v, want just Spinach", got)
	}
	if len(tr.Ingredients("")) != 2 {
		t.Error("empty query must return the full list")
	}
}

func TestTrackerWasteLogOrdering(t *testing.T) {
	tr := NewTracker()
	first, _ := tr.AddWasteItem("Spinach", 150, models.UnitGram, models.ReasonExpired, time.Now())
	second, _ := tr.AddWasteItem("Milk", 250, models.UnitMilliliter, models.ReasonExpired, time.Now())

	items := tr.WasteItems()
	if len(items) != 2 {
		t.Fatalf("log length = %d, want 2", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Error("waste log must be newest-first")
	}
}

func TestTrackerWasteDefaultsAndValidation(t *testing.T) {
	tr := NewTracker()

	if _, err := tr.AddWasteItem("", 100, models.UnitGram, models.ReasonExpired, time.Time{}); err != ErrEmptyName {
		t.Errorf("empty name error = %v, want ErrEmptyName", err)
	}

	item, err := tr.AddWasteItem("Bread", 0, "", "", time.Time{})
	if err != nil {
		t.Fatalf("AddWasteItem: %v", err)
	}
	if item.Amount != 100 || item.Unit != models.UnitGram || item.Reason != models.ReasonOther {
		t.Errorf("defaults = %+v, want amount 100, unit g, reason other", item)
	}
	if item.Date.IsZero() {
		t.Error("zero date must default to now")
	}
}

func TestTrackerRemoveWasteItem(t *testing.T) {
	tr := NewTracker()
	item, _ := tr.AddWasteItem("Milk", 250, models.UnitMilliliter, models.ReasonExpired, time.Now())

	tr.RemoveWasteItem("unknown")
	if len(tr.WasteItems()) != 1 {
		t.Error("unknown-id remove must be a no-op")
	}

	tr.RemoveWasteItem(item.ID)
	if len(tr.WasteItems()) != 0 {
		t.Error("remove by id failed")
	}
	if got := tr.WasteSummary().LiquidTotal; got != 0 {
		t.Errorf("liquid total after remove = %v, want 0", got)
	}
}

func TestTrackerWasteTotalsTrackMutations(t *testing.T) {
	tr := NewTracker()
	tr.AddWasteItem("Spinach", 150, models.UnitGram, models.ReasonExpired, time.Now())
	milk, _ := tr.AddWasteItem("Milk", 250, models.UnitMilliliter, models.ReasonExpired, time.Now())

	sum := tr.WasteSummary()
	if sum.SolidTotal != 150 || sum.LiquidTotal != 250 {
		t.Errorf("totals = %v/%v, want 150/250", sum.SolidTotal, sum.LiquidTotal)
	}

	// Removing the milk affects exactly the liquid total.
	tr.RemoveWasteItem(milk.ID)
	sum = tr.WasteSummary()
	if sum.SolidTotal != 150 || sum.LiquidTotal != 0 {
		t.Errorf("totals after remove = %v/%v, want 150/0", sum.SolidTotal, sum.LiquidTotal)
	}
}

func TestTrackerGoals(t *testing.T) {
	tr := NewTracker()

	if got := tr.Goals(); got != models.DefaultNutritionGoals() {
		t.Errorf("fresh tracker goals = %+v, want defaults", got)
	}

	if err := tr.SetGoal("calories", "1800"); err != nil {
		t.Fatalf("SetGoal: %v", err)
	}
	if got := tr.Goals().Calories; got != 1800 {
		t.Errorf("calories goal = %v, want 1800", got)
	}

	if err := tr.SetGoal("calories", "abc"); err == nil {
		t.Fatal("expected error for non-numeric goal")
	}
	if got := tr.Goals().Calories; got != 1800 {
		t.Errorf("invalid edit changed goal to %v", got)
	}
}

func TestTrackerIDsUnique(t *testing.T) {
	tr := NewTracker()
	seen := map[string]bool{}

	for i := 0; i < 10; i++ {
		ing, _ := tr.AddIngredient("X", 1, models.UnitGram)
		item, _ := tr.AddWasteItem("Y", 1, models.UnitGram, models.ReasonOther, time.Now())
		for _, id := range []string{ing.ID, item.ID} {
			if seen[id] {
				t.Fatalf("duplicate id %q", id)
			}
			seen[id] = true
		}
	}
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	a := store.ForUser(1)
	if a == nil {
		t.Fatal("expected a tracker")
	}
	if store.ForUser(1) != a {
		t.Error("same user must get the same tracker")
	}
	if store.ForUser(2) == a {
		t.Error("different users must not share trackers")
	}

	a.AddIngredient("Rice", 100, models.UnitGram)
	store.Drop(1)
	if got := store.ForUser(1); got == a || len(got.Ingredients("")) != 0 {
		t.Error("Drop must discard session state")
	}
}
