// Package directory reads name and number records from line-oriented text,
// YAML documents and directory trees of such files.
package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one directory entry.
type Record struct {
	Name   string `json:"name" yaml:"name"`
	Number string `json:"number" yaml:"number"`
}

// ErrMissingNumber is matched by errors for a name without a number.
var ErrMissingNumber = errors.New("contact is missing number")

// MissingNumberError reports a name that was not followed by a number.
type MissingNumberError struct {
	Locator string
	Name    string
}

func (e *MissingNumberError) Error() string {
	if e.Locator != "" {
		return fmt.Sprintf("%s: %v: name: %s", e.Locator, ErrMissingNumber, e.Name)
	}
	return fmt.Sprintf("%v: name: %s", ErrMissingNumber, e.Name)
}

func (e *MissingNumberError) Is(target error) bool { return target == ErrMissingNumber }

// Source yields records one at a time. Next returns io.EOF after the last
// record.
type Source interface {
	Next(ctx context.Context) (Record, error)
}

// SliceSource yields records from memory.
type SliceSource struct {
	Records []Record
	pos     int
}

func (s *SliceSource) Next(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	if s.pos >= len(s.Records) {
		return Record{}, io.EOF
	}
	r := s.Records[s.pos]
	s.pos++
	return r, nil
}
