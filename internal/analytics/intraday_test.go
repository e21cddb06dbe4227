package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fasterbrick/CLI-Analyser/internal/model"
)

func TestIntradayStats_GroupsByHour(t *testing.T) {
	records := []model.Record{
		// 09:00 group: first open 100, last close 104 -> up.
		bar(monday(9), 100, 106, 98, 101, 500),
		bar(monday(9).Add(30*time.Minute), 101, 105, 99, 104, 700),
		// 14:00 group: first open 104, last close 100 -> down.
		bar(monday(14), 104, 105, 99, 100, 300),
	}

	stats := IntradayStats(records)
	require.Len(t, stats, 2)

	nine := stats[9]
	assert.Equal(t, "up", nine.Direction)
	assert.Equal(t, int64(1200), nine.Volume)
	// Mean of (106-98) and (105-99).
	assert.InDelta(t, 7.0, nine.Volatility, 1e-9)

	fourteen := stats[14]
	assert.Equal(t, "down", fourteen.Direction)
	assert.Equal(t, int64(300), fourteen.Volume)
	assert.InDelta(t, 6.0, fourteen.Volatility, 1e-9)

	_, ok := stats[10]
	assert.False(t, ok, "hours with no records are omitted")
}

func TestIntradayStats_FlatDirection(t *testing.T) {
	records := []model.Record{
		bar(monday(9), 100, 101, 99, 102, 10),
		bar(monday(9).Add(time.Minute), 102, 103, 98, 100, 10),
	}
	stats := IntradayStats(records)
	require.Len(t, stats, 1)
	assert.Equal(t, "flat", stats[9].Direction)
}

func TestIntradayStats_SameHourAcrossDays(t *testing.T) {
	// Same hour on different days falls into one group, in chronological
	// order: first open is Monday's, last close is Tuesday's.
	records := []model.Record{
		bar(monday(9), 100, 101, 99, 101, 10),
		bar(monday(9).AddDate(0, 0, 1), 101, 102, 100, 99, 10),
	}
	stats := IntradayStats(records)
	require.Len(t, stats, 1)
	assert.Equal(t, "down", stats[9].Direction)
	assert.Equal(t, int64(20), stats[9].Volume)
}

func TestIntradayStats_Empty(t *testing.T) {
	assert.Empty(t, IntradayStats(nil))
}
