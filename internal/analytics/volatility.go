package analytics

import "github.com/Fasterbrick/CLI-Analyser/internal/model"

// Volatility returns the mean intra-record range (high - low) and its
// qualitative tier. The tier thresholds scale with the dataset's highest
// close: above 5% of it is "high", above 2% "moderate", otherwise "low".
// Both return values are nil for an empty sequence.
func Volatility(records []model.Record) (*float64, *string) {
	if len(records) == 0 {
		return nil, nil
	}

	var sum float64
	for _, r := range records {
		sum += r.High - r.Low
	}
	avg := sum / float64(len(records))

	assessment := assessVolatility(avg, maxClose(records))
	return &avg, &assessment
}

func assessVolatility(avg, maxClose float64) string {
	base := thresholdBase(maxClose)
	switch {
	case avg > 0.05*base:
		return "high"
	case avg > 0.02*base:
		return "moderate"
	default:
		return "low"
	}
}

func maxClose(records []model.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	max := records[0].Close
	for _, r := range records[1:] {
		if r.Close > max {
			max = r.Close
		}
	}
	return max
}

// thresholdBase guards against zero or negative max closes, which would
// collapse the volatility thresholds.
func thresholdBase(maxClose float64) float64 {
	if maxClose <= 0 {
		return 1.0
	}
	return maxClose
}

// ModerateVolatilityThreshold is the moderate-tier cutoff for the given
// sequence, reused by the enhanced recommendations.
func ModerateVolatilityThreshold(records []model.Record) float64 {
	return 0.02 * thresholdBase(maxClose(records))
}
