package services

import (
	"fmt"
	"time"

	"github.com/DEVKING-Kunal/wastewise-nutrition/models"
	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitWasteAlert records and fans out a waste notification, e.g. when an
// expired item lands on the log. Safe to call before initialization.
func EmitWasteAlert(userID uint, kind, message string) {
	if _alert.db == nil {
		return // not initialized
	}
	a := &models.Alert{UserID: userID, Kind: kind, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastUpdate(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "Food Waste Alert", message, map[string]string{
			"kind": kind, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}
