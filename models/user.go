package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	// Free-text profile fields that feed the insight context.
	Location           string
	DietaryPreferences string // comma-separated
	HealthGoals        string // comma-separated
	ProfilePicture     string

	Disabled      bool
	ResetToken    string
	ResetTokenExp time.Time
}
