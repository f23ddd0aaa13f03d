package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DEVKING-Kunal/wastewise-nutrition/config"
	"github.com/DEVKING-Kunal/wastewise-nutrition/models"
	"github.com/DEVKING-Kunal/wastewise-nutrition/utils"
)

type ProfileInput struct {
	FullName           string   `json:"full_name"`
	Location           string   `json:"location"`
	DietaryPreferences []string `json:"dietary_preferences"`
	HealthGoals        []string `json:"health_goals"`
	ProfilePicture     string   `json:"profile_picture"` // base64 data URI
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":                  user.ID,
		"email":               user.Email,
		"full_name":           user.FullName,
		"location":            user.Location,
		"dietary_preferences": splitList(user.DietaryPreferences),
		"health_goals":        splitList(user.HealthGoals),
		"profile_picture":     user.ProfilePicture,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Location != "" {
		user.Location = input.Location
	}
	if input.DietaryPreferences != nil {
		user.DietaryPreferences = strings.Join(input.DietaryPreferences, ",")
	}
	if input.HealthGoals != nil {
		user.HealthGoals = strings.Join(input.HealthGoals, ",")
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadAvatar(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(user).Error
}

// BuildUserContext assembles the insight prompt context from the profile
// and the session's current derived state.
func BuildUserContext(user *models.User, season string, current models.NutritionData, goals models.NutritionGoals) UserContext {
	return UserContext{
		Location:           user.Location,
		Season:             season,
		DietaryPreferences: splitList(user.DietaryPreferences),
		HealthGoals:        splitList(user.HealthGoals),
		CurrentNutrients:   current,
		NutritionGoals:     goals,
	}
}

func FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}
	return &user, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
