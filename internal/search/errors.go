package search

import (
	"errors"

	"github.com/flarebyte/t9search/internal/match"
)

// ArgError reports invalid search arguments. It is raised before any record
// is read.
type ArgError struct {
	Err error
}

func (e *ArgError) Error() string { return e.Err.Error() }
func (e *ArgError) Unwrap() error { return e.Err }

// IsArgError reports whether err is an argument error.
func IsArgError(err error) bool {
	var ae *ArgError
	return errors.As(err, &ae)
}

// ParseQuery validates a filter and mistake budget together.
func ParseQuery(filter string, budget int) (match.Filter, error) {
	f, err := match.ParseFilter(filter)
	if err != nil {
		return match.Filter{}, &ArgError{Err: err}
	}
	if err := match.ValidateBudget(f, budget); err != nil {
		return match.Filter{}, &ArgError{Err: err}
	}
	return f, nil
}
