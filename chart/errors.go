package chart

import (
	"errors"
	"fmt"
)

// ErrNegativeSize is returned for a canvas with a negative dimension.
var ErrNegativeSize = errors.New("chart: negative canvas size")

// ExclusiveOptionsError reports two options that cannot be combined.
type ExclusiveOptionsError struct {
	First  string
	Second string
}

// Error implements the error interface.
func (e *ExclusiveOptionsError) Error() string {
	return fmt.Sprintf("chart: %s and %s are mutually exclusive", e.First, e.Second)
}
