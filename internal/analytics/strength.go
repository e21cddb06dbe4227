package analytics

import (
	"math"
	"time"

	"github.com/Fasterbrick/CLI-Analyser/internal/model"
)

// WeekdayLabels are the seven keys of the trending-days map, in calendar
// order starting from Sunday to match time.Weekday.
var WeekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// strength is the per-record trend signal: abs(close - open) truncated to
// an integer.
func strength(r model.Record) int64 {
	return int64(math.Abs(r.Close - r.Open))
}

func weekdayLabel(t time.Time) string {
	return WeekdayLabels[int(t.Weekday())]
}

// TrendingDays accumulates strength per weekday, in the timestamp's own
// offset. All seven keys are always present.
func TrendingDays(records []model.Record) map[string]int64 {
	out := make(map[string]int64, len(WeekdayLabels))
	for _, label := range WeekdayLabels {
		out[label] = 0
	}
	for _, r := range records {
		out[weekdayLabel(r.Time)] += strength(r)
	}
	return out
}

// TrendingHours accumulates strength per hour of day. All 24 keys are
// always present.
func TrendingHours(records []model.Record) map[int]int64 {
	out := make(map[int]int64, 24)
	for h := 0; h < 24; h++ {
		out[h] = 0
	}
	for _, r := range records {
		out[r.Time.Hour()] += strength(r)
	}
	return out
}

// VolumeByHour sums traded volume per hour of day. All 24 keys are always
// present.
func VolumeByHour(records []model.Record) map[int]int64 {
	out := make(map[int]int64, 24)
	for h := 0; h < 24; h++ {
		out[h] = 0
	}
	for _, r := range records {
		out[r.Time.Hour()] += r.Volume
	}
	return out
}
