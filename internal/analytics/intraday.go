package analytics

import "github.com/Fasterbrick/CLI-Analyser/internal/model"

// IntradayStats aggregates records by hour of day: total volume, mean
// intra-record range and net direction. Direction compares the first
// record's open against the last record's close within the hour group,
// following the overall chronological order. Hours with no records are
// omitted.
func IntradayStats(records []model.Record) map[int]model.IntradayStat {
	type hourGroup struct {
		firstOpen float64
		lastClose float64
		rangeSum  float64
		volume    int64
		count     int
	}

	groups := make(map[int]*hourGroup)
	for _, r := range records {
		h := r.Time.Hour()
		g, ok := groups[h]
		if !ok {
			g = &hourGroup{firstOpen: r.Open}
			groups[h] = g
		}
		g.lastClose = r.Close
		g.rangeSum += r.High - r.Low
		g.volume += r.Volume
		g.count++
	}

	out := make(map[int]model.IntradayStat, len(groups))
	for h, g := range groups {
		direction := "flat"
		switch {
		case g.lastClose > g.firstOpen:
			direction = "up"
		case g.lastClose < g.firstOpen:
			direction = "down"
		}
		out[h] = model.IntradayStat{
			Volatility: g.rangeSum / float64(g.count),
			Direction:  direction,
			Volume:     g.volume,
		}
	}
	return out
}
