package match

import (
	"errors"
	"fmt"
)

const (
	// Wildcard is the filter that matches every record.
	Wildcard = "*"
	// MaxFilterLen is bounded by the width of DiscardMask.
	MaxFilterLen = 63
)

var (
	// ErrFilterFormat is returned for filters containing non-digit characters.
	ErrFilterFormat = errors.New("filter must contain only digits 0-9 or be *")
	// ErrFilterTooLong is returned for filters longer than MaxFilterLen.
	ErrFilterTooLong = fmt.Errorf("filter is too long (maximum %d characters)", MaxFilterLen)
	// ErrBudget is returned when a mistake budget is negative or not below the filter length.
	ErrBudget = errors.New("mistake budget must be non-negative and less than the filter length")
)

// Filter is a parsed keypad query.
type Filter struct {
	text string
}

// ParseFilter validates s. The empty string is treated as the wildcard.
func ParseFilter(s string) (Filter, error) {
	if s == "" || s == Wildcard {
		return Filter{text: Wildcard}, nil
	}
	if len(s) > MaxFilterLen {
		return Filter{}, ErrFilterTooLong
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Filter{}, ErrFilterFormat
		}
	}
	return Filter{text: s}, nil
}

// MustFilter is like ParseFilter but panics on invalid input.
func MustFilter(s string) Filter {
	f, err := ParseFilter(s)
	if err != nil {
		panic(err)
	}
	return f
}

// IsWildcard reports whether f matches everything.
func (f Filter) IsWildcard() bool { return f.text == "" || f.text == Wildcard }

// Len returns the number of filter characters.
func (f Filter) Len() int {
	if f.text == "" {
		return len(Wildcard)
	}
	return len(f.text)
}

func (f Filter) String() string {
	if f.text == "" {
		return Wildcard
	}
	return f.text
}

// ValidateBudget checks that budget is usable with f.
func ValidateBudget(f Filter, budget int) error {
	if budget < 0 || budget >= f.Len() {
		return fmt.Errorf("%w: got %d for filter %q", ErrBudget, budget, f.String())
	}
	return nil
}
