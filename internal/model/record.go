package model

import "time"

// Record represents a single timestamped OHLCV sample.
// It is created once by the parser and never mutated afterwards.
//
// The parser guarantees that all four prices are finite decimals and the
// volume is a non-negative integer. Economic consistency (high >= low and
// so on) is deliberately not checked: syntactically valid but inconsistent
// candles pass through unchanged.
type Record struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}
