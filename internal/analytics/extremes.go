package analytics

import "github.com/Fasterbrick/CLI-Analyser/internal/model"

// PriceExtremes returns the lowest low (best buy price) and the highest high
// (best sell price) of the sequence. Both are zero for an empty sequence;
// empty datasets are rejected upstream by the builder.
func PriceExtremes(records []model.Record) (bestBuy, bestSell float64) {
	if len(records) == 0 {
		return 0, 0
	}
	bestBuy = records[0].Low
	bestSell = records[0].High
	for _, r := range records[1:] {
		if r.Low < bestBuy {
			bestBuy = r.Low
		}
		if r.High > bestSell {
			bestSell = r.High
		}
	}
	return bestBuy, bestSell
}
