package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/DEVKING-Kunal/wastewise-nutrition/models"
	"github.com/DEVKING-Kunal/wastewise-nutrition/services"

	"github.com/gin-gonic/gin"
)

// WasteController serves the waste log. Responses carry the newest-first
// list plus the derived summary (totals, daily series, recent items).
type WasteController struct {
	Sessions *services.SessionStore
	RT       *services.RealtimeHub
}

func NewWasteController(s *services.SessionStore, rt *services.RealtimeHub) *WasteController {
	return &WasteController{Sessions: s, RT: rt}
}

type AddWasteInput struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Reason string  `json:"reason"`
	Date   string  `json:"date"` // YYYY-MM-DD, defaults to today
}

// GET /waste/items
func (wc *WasteController) List(c *gin.Context) {
	tracker := wc.Sessions.ForUser(c.GetUint("userID"))
	c.JSON(http.StatusOK, gin.H{
		"items":   tracker.WasteItems(),
		"summary": tracker.WasteSummary(),
	})
}

// POST /waste/items
func (wc *WasteController) Add(c *gin.Context) {
	var input AddWasteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var date time.Time
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	uid := c.GetUint("userID")
	tracker := wc.Sessions.ForUser(uid)

	item, err := tracker.AddWasteItem(input.Name, input.Amount, input.Unit, input.Reason, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if item.Reason == models.ReasonExpired {
		services.EmitWasteAlert(uid, "waste",
			fmt.Sprintf("%s was discarded as expired (%g%s)", item.Name, item.Amount, item.Unit))
	}

	wc.broadcast(uid, tracker)
	c.JSON(http.StatusCreated, gin.H{
		"item":    item,
		"items":   tracker.WasteItems(),
		"summary": tracker.WasteSummary(),
	})
}

// DELETE /waste/items/:id
func (wc *WasteController) Remove(c *gin.Context) {
	uid := c.GetUint("userID")
	tracker := wc.Sessions.ForUser(uid)
	tracker.RemoveWasteItem(c.Param("id"))

	wc.broadcast(uid, tracker)
	c.JSON(http.StatusOK, gin.H{
		"items":   tracker.WasteItems(),
		"summary": tracker.WasteSummary(),
	})
}

func (wc *WasteController) broadcast(uid uint, tracker *services.Tracker) {
	if wc.RT == nil {
		return
	}
	wc.RT.BroadcastUpdate(uid, gin.H{
		"kind":          "derived.updated",
		"nutrition":     tracker.Nutrition(),
		"waste_summary": tracker.WasteSummary(),
	})
}
