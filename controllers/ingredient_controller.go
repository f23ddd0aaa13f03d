package controllers

import (
	"net/http"

	"github.com/DEVKING-Kunal/wastewise-nutrition/services"

	"github.com/gin-gonic/gin"
)

// IngredientController serves the calculator list. Every mutation response
// carries the fresh list and the recomputed nutrition aggregate.
type IngredientController struct {
	Sessions *services.SessionStore
	RT       *services.RealtimeHub
}

func NewIngredientController(s *services.SessionStore, rt *services.RealtimeHub) *IngredientController {
	return &IngredientController{Sessions: s, RT: rt}
}

type AddIngredientInput struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// GET /calculator/ingredients?q=spin
func (ic *IngredientController) List(c *gin.Context) {
	tracker := ic.Sessions.ForUser(c.GetUint("userID"))
	c.JSON(http.StatusOK, gin.H{
		"ingredients": tracker.Ingredients(c.Query("q")),
		"nutrition":   tracker.Nutrition(),
	})
}

// POST /calculator/ingredients
func (ic *IngredientController) Add(c *gin.Context) {
	var input AddIngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	tracker := ic.Sessions.ForUser(uid)

	ing, err := tracker.AddIngredient(input.Name, input.Amount, input.Unit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ic.broadcast(uid, tracker)
	c.JSON(http.StatusCreated, gin.H{
		"ingredient":  ing,
		"ingredients": tracker.Ingredients(""),
		"nutrition":   tracker.Nutrition(),
	})
}

type AdjustAmountInput struct {
	// Pointer so an explicit zero delta binds as a valid no-op.
	Delta *float64 `json:"delta" binding:"required"`
}

// PATCH /calculator/ingredients/:id/amount
func (ic *IngredientController) AdjustAmount(c *gin.Context) {
	var input AdjustAmountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	tracker := ic.Sessions.ForUser(uid)
	tracker.AdjustIngredientAmount(c.Param("id"), *input.Delta)

	ic.broadcast(uid, tracker)
	c.JSON(http.StatusOK, gin.H{
		"ingredients": tracker.Ingredients(""),
		"nutrition":   tracker.Nutrition(),
	})
}

// DELETE /calculator/ingredients/:id
func (ic *IngredientController) Remove(c *gin.Context) {
	uid := c.GetUint("userID")
	tracker := ic.Sessions.ForUser(uid)
	tracker.RemoveIngredient(c.Param("id"))

	ic.broadcast(uid, tracker)
	c.JSON(http.StatusOK, gin.H{
		"ingredients": tracker.Ingredients(""),
		"nutrition":   tracker.Nutrition(),
	})
}

func (ic *IngredientController) broadcast(uid uint, tracker *services.Tracker) {
	if ic.RT == nil {
		return
	}
	ic.RT.BroadcastUpdate(uid, gin.H{
		"kind":          "derived.updated",
		"nutrition":     tracker.Nutrition(),
		"waste_summary": tracker.WasteSummary(),
	})
}
