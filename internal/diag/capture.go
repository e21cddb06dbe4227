package diag

// CaptureSink records every diagnostic it receives, for tests.
type CaptureSink struct {
	Events []Diagnostic
}

func NewCaptureSink() *CaptureSink { return &CaptureSink{} }

func (s *CaptureSink) Emit(d Diagnostic) {
	s.Events = append(s.Events, d)
}

// BySeverity returns the captured events matching the given severity.
func (s *CaptureSink) BySeverity(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range s.Events {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}
