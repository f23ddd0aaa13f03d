package models

import "time"

// Alert is a persisted notification, e.g. an expired waste item.
type Alert struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Kind      string `gorm:"size:20"` // "waste" | "info"
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}
