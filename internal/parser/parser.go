// Package parser converts raw delimited lines into OHLCV records.
//
// The expected line format is
//
//	YYYY-MM-DD HH:MM:SS±HH:MM,<open>,<high>,<low>,<close>,<volume>
//
// with an optional single space after each comma. Price fields allow an
// optional leading sign and decimal point; volume is a non-negative integer.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Fasterbrick/CLI-Analyser/internal/model"
)

// TimeLayout is the record timestamp format. The UTC offset is mandatory so
// every record carries its own zone.
const TimeLayout = "2006-01-02 15:04:05-07:00"

const priceExpr = `[+-]?\d+(?:\.\d+)?`

var lineRe = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2})` +
		`, ?(` + priceExpr + `)` +
		`, ?(` + priceExpr + `)` +
		`, ?(` + priceExpr + `)` +
		`, ?(` + priceExpr + `)` +
		`, ?(\d+)$`)

var priceFields = []string{"open", "high", "low", "close"}

// ParseLine converts one raw line into a Record.
//
// It returns (nil, nil) for lines that are skipped by convention: blank
// lines, the first line of a source (assumed to be a header) and lines
// without a comma. Every other line either parses into exactly one Record
// or yields one of the typed failures in this package.
func ParseLine(raw string, lineNumber int) (*model.Record, error) {
	line := strings.TrimSpace(raw)
	if line == "" || lineNumber == 1 || !strings.Contains(line, ",") {
		return nil, nil
	}

	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return nil, &LineGrammarError{Line: lineNumber, Raw: raw}
	}
	if len(m) != 7 {
		return nil, &FieldExtractionError{Line: lineNumber, Raw: raw}
	}

	ts, err := time.Parse(TimeLayout, m[1])
	if err != nil {
		return nil, &FieldConversionError{Line: lineNumber, Field: "timestamp", Value: m[1], Err: err}
	}

	var prices [4]float64
	for i, field := range priceFields {
		v, err := strconv.ParseFloat(m[i+2], 64)
		if err != nil {
			return nil, &FieldConversionError{Line: lineNumber, Field: field, Value: m[i+2], Err: err}
		}
		prices[i] = v
	}

	volume, err := strconv.ParseInt(m[6], 10, 64)
	if err != nil {
		return nil, &FieldConversionError{Line: lineNumber, Field: "volume", Value: m[6], Err: err}
	}

	return &model.Record{
		Time:   ts,
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		Volume: volume,
	}, nil
}
