package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Returned when either end of a trip is empty after trimming.
var ErrMissingInput = errors.New("start and destination are both required")

// Reported when neither side of a trip matches any known location.
// Examples carries a few valid city names so callers can surface
// concrete guidance instead of a bare failure.
type UnknownLocationError struct {
	Start    string
	End      string
	Examples []string
}

func (e *UnknownLocationError) Error() string {
	msg := fmt.Sprintf("no known locations matched %q and %q", e.Start, e.End)
	if len(e.Examples) > 0 {
		msg += fmt.Sprintf(" (try cities like %s)", strings.Join(e.Examples, ", "))
	}
	return msg
}

// Reported when a vehicle parameter falls outside its accepted range.
type ParameterRangeError struct {
	Parameter string
	Value     float64
	Min       float64
	Max       float64
}

func (e *ParameterRangeError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g (got %g)", e.Parameter, e.Min, e.Max, e.Value)
}
