package controllers

import (
	"net/http"

	"github.com/DEVKING-Kunal/wastewise-nutrition/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Sessions *services.SessionStore
}

func NewGoalController(s *services.SessionStore) *GoalController {
	return &GoalController{Sessions: s}
}

// GET /goals
func (gc *GoalController) Get(c *gin.Context) {
	tracker := gc.Sessions.ForUser(c.GetUint("userID"))
	c.JSON(http.StatusOK, gin.H{
		"goals":    tracker.Goals(),
		"progress": tracker.Progress(),
	})
}

type UpdateGoalInput struct {
	// Raw user input; applied only if it parses as a number > 0.
	Value string `json:"value" binding:"required"`
}

// PUT /goals/:nutrient
func (gc *GoalController) Update(c *gin.Context) {
	var input UpdateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tracker := gc.Sessions.ForUser(c.GetUint("userID"))
	if err := tracker.SetGoal(c.Param("nutrient"), input.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"goals":    tracker.Goals(),
		"progress": tracker.Progress(),
	})
}
