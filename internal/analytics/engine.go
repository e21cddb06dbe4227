// Package analytics computes descriptive statistics over a time-sorted
// OHLCV record sequence. Every function is a pure read-only pass over its
// input; nothing here performs I/O or keeps state across calls.
package analytics

import "github.com/Fasterbrick/CLI-Analyser/internal/model"

const (
	// DefaultMomentumWindow is the sliding-window size for momentum.
	DefaultMomentumWindow = 10
	// DefaultZoneCount is the number of price-zone histogram buckets.
	DefaultZoneCount = 10
)

// Options tunes the engine. Zero values fall back to the defaults.
type Options struct {
	MomentumWindow int
	ZoneCount      int
}

func (o Options) normalized() Options {
	if o.MomentumWindow <= 0 {
		o.MomentumWindow = DefaultMomentumWindow
	}
	if o.ZoneCount <= 0 {
		o.ZoneCount = DefaultZoneCount
	}
	return o
}

// Analyze runs the full battery over a sorted record sequence and assembles
// the composite report. The sub-analyses are independent of each other; only
// the enhanced recommendations consume already-computed results.
func Analyze(records []model.Record, opts Options) *model.AnalyticsReport {
	opts = opts.normalized()

	report := &model.AnalyticsReport{}
	report.BestBuyPrice, report.BestSellPrice = PriceExtremes(records)
	report.TrendingDays = TrendingDays(records)
	report.TrendingHours = TrendingHours(records)
	report.HighestVolumeHours = VolumeByHour(records)
	report.PriceZones = PriceZones(records, opts.ZoneCount)
	report.Momentum, report.Prediction = Momentum(records, opts.MomentumWindow)
	report.Volatility, report.VolatilityAssessment = Volatility(records)
	report.IntradayPatterns = IntradayStats(records)
	report.Patterns = DetectPatterns(records)
	report.Recommendations = Recommend(records)
	report.EnhancedRecommendations = RecommendEnhanced(
		records, report.Momentum, report.Volatility, report.HighestVolumeHours)
	return report
}
