package analytics

import "github.com/Fasterbrick/CLI-Analyser/internal/model"

// PriceZones buckets every close price into an equal-width partition of the
// observed [min low, max high] range and reports the populated buckets only,
// ordered by bucket index. The raw fractional index is clamped into the
// valid range before truncation, so a close exactly at the range top lands
// in the last zone. The histogram is nil when the range collapses to a
// single point or the sequence is empty.
func PriceZones(records []model.Record, zoneCount int) []model.ZoneStat {
	if zoneCount <= 0 {
		zoneCount = DefaultZoneCount
	}
	if len(records) == 0 {
		return nil
	}

	minLow, maxHigh := PriceExtremes(records)
	if maxHigh == minLow {
		return nil
	}
	width := (maxHigh - minLow) / float64(zoneCount)

	counts := make([]int, zoneCount)
	for _, r := range records {
		idx := (r.Close - minLow) / width
		if idx < 0 {
			idx = 0
		}
		if idx > float64(zoneCount-1) {
			idx = float64(zoneCount - 1)
		}
		counts[int(idx)]++
	}

	total := float64(len(records))
	var zones []model.ZoneStat
	for i, c := range counts {
		if c == 0 {
			continue
		}
		zones = append(zones, model.ZoneStat{
			Index:      i,
			Low:        minLow + float64(i)*width,
			High:       minLow + float64(i+1)*width,
			Count:      c,
			Importance: float64(c) / total,
		})
	}
	return zones
}
