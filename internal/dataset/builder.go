// Package dataset accumulates records across text sources into one
// time-sorted sequence.
package dataset

import (
	"sort"
	"strings"

	"github.com/Fasterbrick/CLI-Analyser/internal/diag"
	"github.com/Fasterbrick/CLI-Analyser/internal/model"
	"github.com/Fasterbrick/CLI-Analyser/internal/parser"
	"github.com/Fasterbrick/CLI-Analyser/internal/source"
)

// Result is the outcome of one Build call.
type Result struct {
	Records        []model.Record
	ParseFailures  []error
	SourceFailures []*SourceReadError
}

// Builder runs the parser over every line of every source.
type Builder struct {
	reader source.Reader
	sink   diag.Sink
}

// NewBuilder creates a Builder reading through the given reader and
// reporting dropped lines and sources to the given sink.
func NewBuilder(reader source.Reader, sink diag.Sink) *Builder {
	return &Builder{reader: reader, sink: sink}
}

// Build parses every source, drops unreadable sources and unparseable lines
// with one diagnostic each, and returns the surviving records sorted
// ascending by timestamp. The sort is stable, so records with equal
// timestamps keep their input order. Build fails only when no source
// yielded a single valid record.
func (b *Builder) Build(sources []string) (*Result, error) {
	res := &Result{}

	for _, id := range sources {
		data, err := b.reader.Read(id)
		if err != nil {
			fail := &SourceReadError{Source: id, Err: err}
			res.SourceFailures = append(res.SourceFailures, fail)
			b.emit(diag.SeverityError, id, 0, fail.Error())
			continue
		}
		b.buildSource(id, string(data), res)
	}

	if len(res.Records) == 0 {
		return nil, &EmptyDatasetError{Sources: len(sources)}
	}

	sort.SliceStable(res.Records, func(i, j int) bool {
		return res.Records[i].Time.Before(res.Records[j].Time)
	})
	return res, nil
}

func (b *Builder) buildSource(id, content string, res *Result) {
	for i, line := range strings.Split(content, "\n") {
		rec, err := parser.ParseLine(line, i+1)
		if err != nil {
			res.ParseFailures = append(res.ParseFailures, err)
			b.emit(diag.SeverityWarning, id, i+1, err.Error())
			continue
		}
		if rec != nil {
			res.Records = append(res.Records, *rec)
		}
	}
}

func (b *Builder) emit(sev diag.Severity, src string, line int, msg string) {
	if b.sink == nil {
		return
	}
	b.sink.Emit(diag.Diagnostic{Severity: sev, Source: src, Line: line, Message: msg})
}
