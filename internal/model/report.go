package model

// ZoneStat is one populated bucket of the close-price histogram. Zones are
// identified by their integer bucket index; a display label is derived from
// the bounds at render time only.
type ZoneStat struct {
	Index      int     `json:"index"`
	Low        float64 `json:"low"`
	High       float64 `json:"high"`
	Count      int     `json:"count"`
	Importance float64 `json:"importance"`
}

// IntradayStat aggregates all records sharing one hour of day.
type IntradayStat struct {
	Volatility float64 `json:"volatility"`
	Direction  string  `json:"direction"` // "up", "down" or "flat"
	Volume     int64   `json:"volume"`
}

// PatternMatch is one detected chart pattern. Detection is a placeholder:
// the engine always reports a single zero-confidence entry.
type PatternMatch struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// AnalyticsReport is the composite result of one analysis run. Optional
// fields are pointers so that absence stays distinguishable from zero.
type AnalyticsReport struct {
	BestBuyPrice  float64 `json:"best_buy_price"`
	BestSellPrice float64 `json:"best_sell_price"`

	// TrendingDays always carries all 7 weekday keys; TrendingHours and
	// HighestVolumeHours always carry all 24 hour keys.
	TrendingDays       map[string]int64 `json:"trending_days"`
	TrendingHours      map[int]int64    `json:"trending_hours"`
	HighestVolumeHours map[int]int64    `json:"highest_volume_hours"`

	// PriceZones keeps populated zones only; nil when the price range is
	// degenerate.
	PriceZones []ZoneStat `json:"price_zones,omitempty"`

	Momentum   *float64 `json:"momentum,omitempty"`
	Prediction *string  `json:"prediction,omitempty"`

	Volatility           *float64 `json:"volatility,omitempty"`
	VolatilityAssessment *string  `json:"volatility_assessment,omitempty"`

	// IntradayPatterns holds hours with at least one record only.
	IntradayPatterns map[int]IntradayStat `json:"intraday_patterns"`

	Patterns []PatternMatch `json:"patterns"`

	Recommendations         []string `json:"recommendations"`
	EnhancedRecommendations []string `json:"enhanced_recommendations"`
}
