package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/DEVKING-Kunal/wastewise-nutrition/models"
)

// UserContext bundles everything the insight model is prompted with.
type UserContext struct {
	Location           string                `json:"location"`
	Season             string                `json:"season"`
	DietaryPreferences []string              `json:"dietary_preferences"`
	HealthGoals        []string              `json:"health_goals"`
	CurrentNutrients   models.NutritionData  `json:"current_nutrients"`
	NutritionGoals     models.NutritionGoals `json:"nutrition_goals"`
}

const insightPlaceholder = "Personalized insights are not configured yet. " +
	"Set INSIGHTS_TOKEN to enable location- and season-aware suggestions."

// InsightService calls an external text-generation API for personalized
// nutrition advice. Without a token it degrades to a fixed placeholder.
// At most one request per user may be in flight at a time.
type InsightService struct {
	client *http.Client
	token  string
	model  string

	mu       sync.Mutex
	inflight map[uint]struct{}
}

func NewInsightService() *InsightService {
	return &InsightService{
		client:   &http.Client{Timeout: 15 * time.Second},
		token:    os.Getenv("INSIGHTS_TOKEN"),
		model:    "google/flan-t5-small",
		inflight: make(map[uint]struct{}),
	}
}

// Begin marks a request in flight for the user. It returns false if one is
// already pending; there is no cancellation path, callers must wait.
func (s *InsightService) Begin(userID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[userID]; busy {
		return false
	}
	s.inflight[userID] = struct{}{}
	return true
}

func (s *InsightService) End(userID uint) {
	s.mu.Lock()
	delete(s.inflight, userID)
	s.mu.Unlock()
}

// GetInsights renders the user context into a prompt and returns the
// generated advice as a single string.
func (s *InsightService) GetInsights(uc UserContext) (string, error) {
	if s.token == "" {
		return insightPlaceholder, nil
	}

	var sb bytes.Buffer
	sb.WriteString("Generate personalized nutrition advice for this context:\n")
	sb.WriteString(fmt.Sprintf("- Location: %s (season: %s)\n", uc.Location, uc.Season))
	sb.WriteString(fmt.Sprintf("- Dietary preferences: %s\n", strings.Join(uc.DietaryPreferences, ", ")))
	sb.WriteString(fmt.Sprintf("- Health goals: %s\n", strings.Join(uc.HealthGoals, ", ")))
	sb.WriteString(fmt.Sprintf(
		"- Current intake: %d kcal, %dg protein, %dg carbs, %dg fat, %dg fiber, %dg sugar\n",
		uc.CurrentNutrients.Calories, uc.CurrentNutrients.Protein, uc.CurrentNutrients.Carbs,
		uc.CurrentNutrients.Fat, uc.CurrentNutrients.Fiber, uc.CurrentNutrients.Sugar,
	))
	sb.WriteString(fmt.Sprintf(
		"- Goals: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat, %.0fg fiber, %.0fg sugar\n",
		uc.NutritionGoals.Calories, uc.NutritionGoals.Protein, uc.NutritionGoals.Carbs,
		uc.NutritionGoals.Fat, uc.NutritionGoals.Fiber, uc.NutritionGoals.Sugar,
	))
	sb.WriteString("\nCompare intake to goals, suggest 3-5 in-season local foods, and 2-3 meal ideas.")

	body := map[string]any{
		"inputs": sb.String(),
		"parameters": map[string]any{
			"max_new_tokens": 256,
			"temperature":    0.2,
		},
	}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequest(
		"POST",
		fmt.Sprintf("https://api-inference.huggingface.co/models/%s", s.model),
		bytes.NewReader(b),
	)
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-wait-for-model", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("insight request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read insight response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("insight api error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("insight api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode insight response error: %v", err)
	}
	if len(out) == 0 || strings.TrimSpace(out[0].GeneratedText) == "" {
		return "", fmt.Errorf("empty insight response")
	}
	return strings.TrimSpace(out[0].GeneratedText), nil
}
