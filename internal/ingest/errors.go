package ingest

import "fmt"

// MissingFieldError reports a required column that was absent or blank on
// an ingested row. The first one aborts the whole load; partially ingested
// pools are not a supported recovery path.
type MissingFieldError struct {
	Line  int
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("line %d: missing required field '%s'", e.Line, e.Field)
}
