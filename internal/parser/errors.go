package parser

import "fmt"

// LineGrammarError reports a line that contains a separator but does not
// match the record grammar.
type LineGrammarError struct {
	Line int
	Raw  string
}

func (e *LineGrammarError) Error() string {
	return fmt.Sprintf("line %d: does not match record grammar: %q", e.Line, e.Raw)
}

// FieldExtractionError reports a line that matched the grammar but whose
// capture groups could not be resolved.
type FieldExtractionError struct {
	Line int
	Raw  string
}

func (e *FieldExtractionError) Error() string {
	return fmt.Sprintf("line %d: field extraction failed: %q", e.Line, e.Raw)
}

// FieldConversionError reports a captured field that could not be converted
// to its numeric or time type.
type FieldConversionError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *FieldConversionError) Error() string {
	return fmt.Sprintf("line %d: cannot convert %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *FieldConversionError) Unwrap() error { return e.Err }
