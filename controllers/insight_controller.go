package controllers

import (
	"net/http"
	"time"

	"github.com/DEVKING-Kunal/wastewise-nutrition/services"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	Sessions *services.SessionStore
	Insights *services.InsightService
}

func NewInsightController(s *services.SessionStore, ins *services.InsightService) *InsightController {
	return &InsightController{Sessions: s, Insights: ins}
}

type InsightInput struct {
	Season string `json:"season"` // optional, derived from the date if empty
}

// POST /insights
func (ic *InsightController) Get(c *gin.Context) {
	uid := c.GetUint("userID")

	var input InsightInput
	_ = c.ShouldBindJSON(&input)
	season := input.Season
	if season == "" {
		season = seasonOf(time.Now())
	}

	user, err := services.FindUserByID(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if !ic.Insights.Begin(uid) {
		c.JSON(http.StatusConflict, gin.H{"error": "an insight request is already in progress"})
		return
	}
	defer ic.Insights.End(uid)

	tracker := ic.Sessions.ForUser(uid)
	ctx := services.BuildUserContext(user, season, tracker.Nutrition(), tracker.Goals())

	insights, err := ic.Insights.GetInsights(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// Northern-hemisphere naming; clients can override via the request body.
func seasonOf(t time.Time) string {
	switch t.Month() {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "autumn"
	}
}
