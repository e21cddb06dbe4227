package analytics

import (
	"fmt"

	"github.com/Fasterbrick/CLI-Analyser/internal/model"
)

// Recommend classifies the whole-period move from the first record's open to
// the last record's close into a single guidance string, using strict 1%
// bands. It needs at least two records and returns nil otherwise.
func Recommend(records []model.Record) []string {
	if len(records) < 2 {
		return nil
	}

	first := records[0].Open
	last := records[len(records)-1].Close
	var changePct float64
	if first != 0 {
		changePct = (last - first) / first * 100
	}

	switch {
	case changePct > 1:
		return []string{"Price trending upward - consider buying opportunities"}
	case changePct < -1:
		return []string{"Price trending downward - consider selling or waiting"}
	default:
		return []string{"Price relatively flat - hold current position"}
	}
}

// RecommendEnhanced combines the momentum sign with the moderate-volatility
// threshold into one guidance string, then names the hour with the heaviest
// trading. Momentum and volatility are the already-computed engine results;
// nil inputs yield an insufficient-data entry instead of a classification.
// The returned list is never empty.
func RecommendEnhanced(records []model.Record, momentum, volatility *float64, volumeByHour map[int]int64) []string {
	var recs []string

	if momentum == nil || volatility == nil {
		recs = append(recs, "Insufficient data for enhanced recommendations")
	} else {
		threshold := ModerateVolatilityThreshold(records)
		switch {
		case *momentum > 0 && *volatility > threshold:
			recs = append(recs, "Positive momentum with elevated volatility - trade with tight stops")
		case *momentum > 0:
			recs = append(recs, "Positive momentum in a calm market - favourable for entries")
		case *volatility > threshold:
			recs = append(recs, "Negative momentum with elevated volatility - stay defensive")
		default:
			recs = append(recs, "Negative momentum in a calm market - wait for a reversal signal")
		}
	}

	peakHour, peakVolume := peakVolumeHour(volumeByHour)
	if peakVolume > 0 {
		recs = append(recs, fmt.Sprintf("Highest trading activity around %02d:00 - best liquidity window", peakHour))
	} else {
		recs = append(recs, "Volume data unavailable")
	}

	if len(recs) == 0 {
		recs = append(recs, "No recommendations available")
	}
	return recs
}

// peakVolumeHour returns the hour with the highest total volume, preferring
// the smallest hour on ties so the result is deterministic.
func peakVolumeHour(volumeByHour map[int]int64) (int, int64) {
	bestHour := -1
	var bestVolume int64
	for h := 0; h < 24; h++ {
		v, ok := volumeByHour[h]
		if !ok {
			continue
		}
		if bestHour == -1 || v > bestVolume {
			bestHour, bestVolume = h, v
		}
	}
	return bestHour, bestVolume
}
