// Package report renders an AnalyticsReport for terminal or machine
// consumption.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Fasterbrick/CLI-Analyser/internal/analytics"
	"github.com/Fasterbrick/CLI-Analyser/internal/model"
)

// ZoneLabel derives the display label for a price zone from its bounds.
func ZoneLabel(z model.ZoneStat) string {
	return fmt.Sprintf("%.2f-%.2f", z.Low, z.High)
}

// FormatText renders the report as sectioned plain text.
func FormatText(r *model.AnalyticsReport) string {
	var b strings.Builder

	b.WriteString("=== OHLCV Analysis Report ===\n\n")

	b.WriteString(fmt.Sprintf("Best buy price (lowest low):   %.2f\n", r.BestBuyPrice))
	b.WriteString(fmt.Sprintf("Best sell price (highest high): %.2f\n\n", r.BestSellPrice))

	if r.Momentum != nil && r.Prediction != nil {
		b.WriteString(fmt.Sprintf("Momentum: %+.2f (%s)\n", *r.Momentum, *r.Prediction))
	} else {
		b.WriteString("Momentum: insufficient data\n")
	}
	if r.Volatility != nil && r.VolatilityAssessment != nil {
		b.WriteString(fmt.Sprintf("Volatility: %.4f (%s)\n", *r.Volatility, *r.VolatilityAssessment))
	}
	b.WriteString("\n")

	b.WriteString("Trending days (strength):\n")
	// Display Monday first; the map itself keys Sunday first.
	for i := 1; i <= 7; i++ {
		label := analytics.WeekdayLabels[i%7]
		b.WriteString(fmt.Sprintf("  %s: %d\n", label, r.TrendingDays[label]))
	}
	b.WriteString("\n")

	b.WriteString("Trending hours (strength) / volume:\n")
	for h := 0; h < 24; h++ {
		if r.TrendingHours[h] == 0 && r.HighestVolumeHours[h] == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("  %02d:00  strength=%d  volume=%d\n",
			h, r.TrendingHours[h], r.HighestVolumeHours[h]))
	}
	b.WriteString("\n")

	if len(r.PriceZones) > 0 {
		b.WriteString("Price zones:\n")
		for _, z := range r.PriceZones {
			b.WriteString(fmt.Sprintf("  %s  count=%d  importance=%.2f\n",
				ZoneLabel(z), z.Count, z.Importance))
		}
		b.WriteString("\n")
	}

	if len(r.IntradayPatterns) > 0 {
		b.WriteString("Intraday stats:\n")
		hours := make([]int, 0, len(r.IntradayPatterns))
		for h := range r.IntradayPatterns {
			hours = append(hours, h)
		}
		sort.Ints(hours)
		for _, h := range hours {
			s := r.IntradayPatterns[h]
			b.WriteString(fmt.Sprintf("  %02d:00  direction=%-4s volatility=%.4f  volume=%d\n",
				h, s.Direction, s.Volatility, s.Volume))
		}
		b.WriteString("\n")
	}

	b.WriteString("Recommendations:\n")
	for _, rec := range r.Recommendations {
		b.WriteString(fmt.Sprintf("  - %s\n", rec))
	}
	for _, rec := range r.EnhancedRecommendations {
		b.WriteString(fmt.Sprintf("  - %s\n", rec))
	}

	return b.String()
}

// FormatJSON renders the report as indented JSON. Absent optional fields
// are omitted entirely.
func FormatJSON(r *model.AnalyticsReport) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	return string(data), nil
}
