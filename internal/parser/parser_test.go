package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_Valid(t *testing.T) {
	rec, err := ParseLine("2025-01-06 09:00:00+00:00,100,105,95,102,1000", 2)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, 100.0, rec.Open)
	assert.Equal(t, 105.0, rec.High)
	assert.Equal(t, 95.0, rec.Low)
	assert.Equal(t, 102.0, rec.Close)
	assert.Equal(t, int64(1000), rec.Volume)
	assert.Equal(t, time.Monday, rec.Time.Weekday())
	assert.Equal(t, 9, rec.Time.Hour())
}

func TestParseLine_OptionalSpacesAndSigns(t *testing.T) {
	rec, err := ParseLine("2025-03-14 15:30:00+02:00, -1.25, 2.50, -3.75, +0.5, 42", 3)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, -1.25, rec.Open)
	assert.Equal(t, 2.5, rec.High)
	assert.Equal(t, -3.75, rec.Low)
	assert.Equal(t, 0.5, rec.Close)
	assert.Equal(t, int64(42), rec.Volume)
	// Hour is local to the record's own offset.
	assert.Equal(t, 15, rec.Time.Hour())
}

func TestParseLine_SkippedLines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		line int
	}{
		{"blank", "", 5},
		{"whitespace only", "   ", 5},
		{"header by position", "2025-01-06 09:00:00+00:00,100,105,95,102,1000", 1},
		{"no separator", "timestamp open high low close volume", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseLine(tt.raw, tt.line)
			assert.Nil(t, rec)
			assert.NoError(t, err)
		})
	}
}

func TestParseLine_GrammarMismatch(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"wrong shape", "not,a,valid,row"},
		{"missing offset", "2025-01-06 09:00:00,100,105,95,102,1000"},
		{"missing field", "2025-01-06 09:00:00+00:00,100,105,95,102"},
		{"negative volume", "2025-01-06 09:00:00+00:00,100,105,95,102,-10"},
		{"fractional volume", "2025-01-06 09:00:00+00:00,100,105,95,102,10.5"},
		{"non-numeric price", "2025-01-06 09:00:00+00:00,abc,105,95,102,1000"},
		{"trailing garbage", "2025-01-06 09:00:00+00:00,100,105,95,102,1000,extra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseLine(tt.raw, 2)
			assert.Nil(t, rec)

			var gErr *LineGrammarError
			require.ErrorAs(t, err, &gErr)
			assert.Equal(t, 2, gErr.Line)
			assert.Equal(t, tt.raw, gErr.Raw)
		})
	}
}

func TestParseLine_TimestampConversionFailure(t *testing.T) {
	// Digit-shaped but not a real calendar date.
	rec, err := ParseLine("2025-13-45 09:00:00+00:00,100,105,95,102,1000", 2)
	assert.Nil(t, rec)

	var cErr *FieldConversionError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "timestamp", cErr.Field)
	assert.Error(t, errors.Unwrap(cErr))
}
