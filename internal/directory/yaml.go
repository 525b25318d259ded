package directory

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLSource reads a YAML sequence of {name, number} mappings.
type YAMLSource struct {
	r       io.Reader
	locator string
	loaded  bool
	records []Record
	pos     int
}

// NewYAMLSource returns a source decoding r on first use.
func NewYAMLSource(r io.Reader, locator string) *YAMLSource {
	return &YAMLSource{r: r, locator: locator}
}

func (s *YAMLSource) Next(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	if !s.loaded {
		if err := s.load(); err != nil {
			return Record{}, err
		}
	}
	if s.pos >= len(s.records) {
		return Record{}, io.EOF
	}
	r := s.records[s.pos]
	s.pos++
	if r.Name == "" {
		s.pos = len(s.records)
		return Record{}, io.EOF
	}
	if r.Number == "" {
		s.pos = len(s.records)
		return Record{}, &MissingNumberError{Locator: s.locator, Name: r.Name}
	}
	return r, nil
}

func (s *YAMLSource) load() error {
	s.loaded = true
	dec := yaml.NewDecoder(s.r)
	var recs []Record
	if err := dec.Decode(&recs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		if s.locator != "" {
			return fmt.Errorf("%s: invalid YAML: %w", s.locator, err)
		}
		return fmt.Errorf("invalid YAML: %w", err)
	}
	s.records = recs
	return nil
}
