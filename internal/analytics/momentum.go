package analytics

import "github.com/Fasterbrick/CLI-Analyser/internal/model"

// Momentum returns the most recent window-over-window close change: the
// last close minus the close `window` records earlier. The result is the
// latest such difference, not an average. Both return values are nil when
// the sequence has window or fewer records.
func Momentum(records []model.Record, window int) (*float64, *string) {
	if window <= 0 {
		window = DefaultMomentumWindow
	}
	n := len(records)
	if n <= window {
		return nil, nil
	}

	m := records[n-1].Close - records[n-1-window].Close

	var prediction string
	switch {
	case m > 0:
		prediction = "upward"
	case m < 0:
		prediction = "downward"
	default:
		prediction = "neutral"
	}
	return &m, &prediction
}
