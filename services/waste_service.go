package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/DEVKING-Kunal/wastewise-nutrition/models"
)

const recentWasteLimit = 5

// WastePoint is one day on the waste trend chart.
type WastePoint struct {
	Date   string  `json:"date"` // "Jan 2"
	Amount float64 `json:"amount"`
}

// RecentWasteItem decorates a waste item for the recent-items list.
type RecentWasteItem struct {
	models.WasteItem
	Icon        string `json:"icon"`
	ReasonLabel string `json:"reason_label"`
}

// WasteSummary is the derived aggregate over the waste log.
type WasteSummary struct {
	SolidTotal    float64           `json:"solid_total"`  // grams
	LiquidTotal   float64           `json:"liquid_total"` // milliliters
	SolidDisplay  string            `json:"solid_display"`
	LiquidDisplay string            `json:"liquid_display"`
	Daily         []WastePoint      `json:"daily"`
	Recent        []RecentWasteItem `json:"recent"`
}

// SummarizeWaste recomputes totals, the daily trend series, and the
// recent-items view from the waste log. The log is newest-first, so the
// recent view is simply its head.
func SummarizeWaste(items []models.WasteItem) WasteSummary {
	var solid, liquid float64
	for _, it := range items {
		// Totals by physical form only count base units; cups/tbsp/tsp
		// are excluded here but still feed the daily series below.
		switch it.Unit {
		case models.UnitGram:
			solid += it.Amount
		case models.UnitMilliliter:
			liquid += it.Amount
		}
	}

	// Bucket by calendar-day components only, so dates carrying different
	// locations still merge into one point per day.
	byDay := map[time.Time]float64{}
	for _, it := range items {
		y, m, d := it.Date.Date()
		byDay[time.Date(y, m, d, 0, 0, 0, 0, time.UTC)] += it.Amount
	}
	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	daily := make([]WastePoint, 0, len(days))
	for _, d := range days {
		daily = append(daily, WastePoint{Date: d.Format("Jan 2"), Amount: byDay[d]})
	}

	recent := make([]RecentWasteItem, 0, recentWasteLimit)
	for _, it := range items {
		if len(recent) == recentWasteLimit {
			break
		}
		recent = append(recent, RecentWasteItem{
			WasteItem:   it,
			Icon:        ReasonIcon(it.Reason),
			ReasonLabel: ReasonLabel(it.Reason),
		})
	}

	return WasteSummary{
		SolidTotal:    solid,
		LiquidTotal:   liquid,
		SolidDisplay:  FormatWasteTotal(solid, "g", "kg"),
		LiquidDisplay: FormatWasteTotal(liquid, "ml", "L"),
		Daily:         daily,
		Recent:        recent,
	}
}

// FormatWasteTotal renders a total in base units below 1000 and in the
// large unit with one decimal at or above it, e.g. "350g", "1.2kg".
func FormatWasteTotal(v float64, baseUnit, largeUnit string) string {
	if v < 1000 {
		return fmt.Sprintf("%g%s", v, baseUnit)
	}
	return fmt.Sprintf("%.1f%s", v/1000, largeUnit)
}

// ReasonIcon maps a waste reason to its display icon key.
func ReasonIcon(reason string) string {
	switch reason {
	case models.ReasonExpired:
		return "clock"
	case models.ReasonExcess:
		return "trending-down"
	default:
		return "alert-triangle"
	}
}

func ReasonLabel(reason string) string {
	switch reason {
	case models.ReasonExpired:
		return "Expired"
	case models.ReasonExcess:
		return "Excess"
	default:
		return "Other"
	}
}
