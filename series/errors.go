package series

import (
	"errors"
	"fmt"
)

// ErrNoSheets is returned for workbooks without a single sheet.
var ErrNoSheets = errors.New("series: workbook has no sheets")

// ParseError reports a line that is neither a sample nor a step directive.
type ParseError struct {
	// Source is the file name, or "" for an anonymous reader.
	Source string
	// Line is the 1-based line (or row) number.
	Line int
	// Text is the offending line.
	Text string
	// Err is the underlying conversion error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("series: %s:%d: invalid line %q: %v", e.Source, e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("series: line %d: invalid line %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
