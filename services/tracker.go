package services

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/DEVKING-Kunal/wastewise-nutrition/models"
)

// ErrEmptyName rejects add operations without a display name.
var ErrEmptyName = errors.New("name is required")

const (
	defaultAmount = 100
	minAmount     = 1
)

// Tracker holds one user's session state: the ingredient list, the waste
// log, and the nutrition goals. Nothing in here is persisted; it lives and
// dies with the session. The nutrition aggregate is recomputed synchronously
// on every ingredient mutation, so reads never see stale derived state.
type Tracker struct {
	mu          sync.Mutex
	nextID      int64
	ingredients []models.Ingredient
	wasteItems  []models.WasteItem // newest first
	goals       models.NutritionGoals
	nutrition   models.NutritionData
}

func NewTracker() *Tracker {
	return &Tracker{goals: models.DefaultNutritionGoals()}
}

// newID is unique within the session only. Callers hold t.mu.
func (t *Tracker) newID() string {
	t.nextID++
	return strconv.FormatInt(t.nextID, 10)
}

// ---------- Ingredients ----------

// AddIngredient appends a new ingredient. An empty name is rejected; a
// non-positive amount falls back to the default, a missing unit to grams.
func (t *Tracker) AddIngredient(name string, amount float64, unit string) (models.Ingredient, error) {
	if strings.TrimSpace(name) == "" {
		return models.Ingredient{}, ErrEmptyName
	}
	if amount <= 0 {
		amount = defaultAmount
	} else if amount < minAmount {
		// Stored amounts never drop below the minimum, on add or adjust.
		amount = minAmount
	}
	if unit == "" {
		unit = models.UnitGram
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	ing := models.Ingredient{ID: t.newID(), Name: name, Amount: amount, Unit: unit}
	t.ingredients = append(t.ingredients, ing)
	t.nutrition = EstimateNutrition(t.ingredients)
	return ing, nil
}

// AdjustIngredientAmount applies a delta to one ingredient's amount,
// clamped to the minimum. Unknown ids are a no-op.
func (t *Tracker) AdjustIngredientAmount(id string, delta float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.ingredients {
		if t.ingredients[i].ID != id {
			continue
		}
		next := t.ingredients[i].Amount + delta
		if next < minAmount {
			next = minAmount
		}
		t.ingredients[i].Amount = next
		t.nutrition = EstimateNutrition(t.ingredients)
		return
	}
}

// RemoveIngredient deletes by id; unknown ids are a no-op.
func (t *Tracker) RemoveIngredient(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.ingredients {
		if t.ingredients[i].ID == id {
			t.ingredients = append(t.ingredients[:i], t.ingredients[i+1:]...)
			t.nutrition = EstimateNutrition(t.ingredients)
			return
		}
	}
}

// Ingredients returns the list in insertion order, optionally filtered by a
// case-insensitive name substring.
func (t *Tracker) Ingredients(query string) []models.Ingredient {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.Ingredient, 0, len(t.ingredients))
	q := strings.ToLower(query)
	for _, ing := range t.ingredients {
		if q != "" && !strings.Contains(strings.ToLower(ing.Name), q) {
			continue
		}
		out = append(out, ing)
	}
	return out
}

func (t *Tracker) Nutrition() models.NutritionData {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nutrition
}

// ---------- Waste log ----------

// AddWasteItem prepends a discarded-item record. An empty name is rejected;
// missing fields fall back to defaults (amount 100, grams, reason other,
// date now).
func (t *Tracker) AddWasteItem(name string, amount float64, unit, reason string, date time.Time) (models.WasteItem, error) {
	if strings.TrimSpace(name) == "" {
		return models.WasteItem{}, ErrEmptyName
	}
	if amount <= 0 {
		amount = defaultAmount
	}
	if unit == "" {
		unit = models.UnitGram
	}
	if reason == "" {
		reason = models.ReasonOther
	}
	if date.IsZero() {
		date = time.Now()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	item := models.WasteItem{ID: t.newID(), Name: name, Amount: amount, Unit: unit, Date: date, Reason: reason}
	t.wasteItems = append([]models.WasteItem{item}, t.wasteItems...)
	return item, nil
}

// RemoveWasteItem deletes by id; unknown ids are a no-op.
func (t *Tracker) RemoveWasteItem(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.wasteItems {
		if t.wasteItems[i].ID == id {
			t.wasteItems = append(t.wasteItems[:i], t.wasteItems[i+1:]...)
			return
		}
	}
}

// WasteItems returns the log newest-first.
func (t *Tracker) WasteItems() []models.WasteItem {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.WasteItem, len(t.wasteItems))
	copy(out, t.wasteItems)
	return out
}

func (t *Tracker) WasteSummary() WasteSummary {
	t.mu.Lock()
	items := make([]models.WasteItem, len(t.wasteItems))
	copy(items, t.wasteItems)
	t.mu.Unlock()

	return SummarizeWaste(items)
}

// ---------- Goals ----------

func (t *Tracker) Goals() models.NutritionGoals {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.goals
}

// SetGoal applies a single-field goal edit from raw user input. Invalid
// input leaves the prior value in place.
func (t *Tracker) SetGoal(nutrient, raw string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return UpdateGoal(&t.goals, nutrient, raw)
}

func (t *Tracker) Progress() map[string]NutrientProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return BuildProgress(t.nutrition, t.goals)
}
