package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DEVKING-Kunal/wastewise-nutrition/models"
	"github.com/DEVKING-Kunal/wastewise-nutrition/services"

	"github.com/gin-gonic/gin"
)

func newIngredientRouter(t *testing.T) (*gin.Engine, *services.Tracker) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := services.NewSessionStore()
	ic := NewIngredientController(sessions, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", uint(1)) })
	r.PATCH("/calculator/ingredients/:id/amount", ic.AdjustAmount)

	return r, sessions.ForUser(1)
}

func TestAdjustAmountAcceptsZeroDelta(t *testing.T) {
	r, tracker := newIngredientRouter(t)
	ing, err := tracker.AddIngredient("Rice", 100, models.UnitGram)
	if err != nil {
		t.Fatalf("AddIngredient: %v", err)
	}

	req := httptest.NewRequest(http.MethodPatch,
		"/calculator/ingredients/"+ing.ID+"/amount",
		bytes.NewBufferString(`{"delta": 0}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("explicit zero delta returned %d, want 200: %s", w.Code, w.Body.String())
	}
	if got := tracker.Ingredients("")[0].Amount; got != 100 {
		t.Errorf("amount after zero delta = %v, want 100", got)
	}
}

func TestAdjustAmountRequiresDelta(t *testing.T) {
	r, tracker := newIngredientRouter(t)
	ing, err := tracker.AddIngredient("Rice", 100, models.UnitGram)
	if err != nil {
		t.Fatalf("AddIngredient: %v", err)
	}

	req := httptest.NewRequest(http.MethodPatch,
		"/calculator/ingredients/"+ing.ID+"/amount",
		bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("missing delta returned %d, want 400", w.Code)
	}
	if got := tracker.Ingredients("")[0].Amount; got != 100 {
		t.Errorf("rejected request changed amount to %v", got)
	}
}
