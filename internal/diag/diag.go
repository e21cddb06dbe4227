package diag

// Severity classifies a diagnostic event.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic is one parse or source event. Line is 0 when the event is not
// tied to a particular line.
type Diagnostic struct {
	Severity Severity
	Source   string
	Line     int
	Message  string
}

// Sink receives diagnostics from the parser and builder. Implementations
// must not fail: diagnostics are advisory and never abort processing.
type Sink interface {
	Emit(d Diagnostic)
}
