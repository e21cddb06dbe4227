package dataset

import "fmt"

// SourceReadError reports a source that could not be read at all.
type SourceReadError struct {
	Source string
	Err    error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }

// EmptyDatasetError signals that no source yielded a single valid record.
// It is the only fatal outcome of a Build call.
type EmptyDatasetError struct {
	Sources int
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("no valid records in %d source(s)", e.Sources)
}
