package routes

import (
	"github.com/DEVKING-Kunal/wastewise-nutrition/config"
	"github.com/DEVKING-Kunal/wastewise-nutrition/controllers"
	"github.com/DEVKING-Kunal/wastewise-nutrition/middlewares"
	"github.com/DEVKING-Kunal/wastewise-nutrition/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	sessions := services.NewSessionStore()
	hub := services.NewRealtimeHub()
	insights := services.NewInsightService()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		push = nil // push is optional; alerts still reach the websocket feed
	}
	services.InitAlertDeps(config.DB, hub, push)

	sessionCtl := controllers.NewSessionController(sessions)
	ingredientCtl := controllers.NewIngredientController(sessions, hub)
	wasteCtl := controllers.NewWasteController(sessions, hub)
	goalCtl := controllers.NewGoalController(sessions)
	insightCtl := controllers.NewInsightController(sessions, insights)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Everything below requires a session token.
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/auth/logout", sessionCtl.Logout)

		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)
		api.POST("/user/notifications/toggle", controllers.ToggleNotifications)
		if push != nil {
			deviceCtl := controllers.NewDeviceController(push)
			api.POST("/user/devices", deviceCtl.Register)
		}

		api.GET("/calculator/ingredients", ingredientCtl.List)
		api.POST("/calculator/ingredients", ingredientCtl.Add)
		api.PATCH("/calculator/ingredients/:id/amount", ingredientCtl.AdjustAmount)
		api.DELETE("/calculator/ingredients/:id", ingredientCtl.Remove)

		api.GET("/waste/items", wasteCtl.List)
		api.POST("/waste/items", wasteCtl.Add)
		api.DELETE("/waste/items/:id", wasteCtl.Remove)

		api.GET("/goals", goalCtl.Get)
		api.PUT("/goals/:nutrient", goalCtl.Update)

		api.POST("/insights", insightCtl.Get)

		api.GET("/ws/updates", realtimeCtl.UpdatesWS)
	}

	return r
}
