// Package report renders search results as text, JSON or YAML.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/flarebyte/t9search/internal/directory"
	"github.com/flarebyte/t9search/internal/match"
	"github.com/flarebyte/t9search/internal/search"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "text"
	}
}

// ParseFormat parses an output format name. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("invalid output format: %q (expected text, json or yaml)", s)
	}
}

// NotFound is printed when nothing matched.
const NotFound = "Not found"

// WriteEntry writes one record as "name, number".
func WriteEntry(w io.Writer, r directory.Record) error {
	_, err := fmt.Fprintf(w, "%s, %s\n", r.Name, r.Number)
	return err
}

// WriteSummary writes what follows the streamed exact matches: the similar
// entries with their evidence, or NotFound.
func WriteSummary(w io.Writer, rep search.Report) error {
	if rep.Exact > 0 {
		return nil
	}
	sim := rep.Similar()
	if len(sim) == 0 {
		_, err := fmt.Fprintln(w, NotFound)
		return err
	}
	if _, err := fmt.Fprintln(w, "Found similar:"); err != nil {
		return err
	}
	for _, c := range sim {
		if err := WriteEntry(w, c.Record); err != nil {
			return err
		}
		if err := writeEvidence(w, c.Outcome); err != nil {
			return err
		}
	}
	return nil
}

func writeEvidence(w io.Writer, o match.Outcome) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "    - mistakes: %d\n", o.Mistakes)
	switch o.Evidence {
	case match.EvidenceMask:
		fmt.Fprintf(&buf, "      skip mask: 0b%s\n", o.MaskBinary())
		fmt.Fprintf(&buf, "      matching filter: %s\n", o.KeptFilter())
	case match.EvidenceDistance:
		fmt.Fprintf(&buf, "      edit distance: %d\n", o.Distance)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Entry is a record in a document.
type Entry struct {
	Name   string `json:"name" yaml:"name"`
	Number string `json:"number" yaml:"number"`
}

// Similar is a reported candidate in a document.
type Similar struct {
	Entry `yaml:",inline"`

	Field          string `json:"field" yaml:"field"`
	Mistakes       int    `json:"mistakes" yaml:"mistakes"`
	Evidence       string `json:"evidence" yaml:"evidence"`
	SkipMask       string `json:"skipMask,omitempty" yaml:"skipMask,omitempty"`
	MatchingFilter string `json:"matchingFilter,omitempty" yaml:"matchingFilter,omitempty"`
	EditDistance   *int   `json:"editDistance,omitempty" yaml:"editDistance,omitempty"`
}

// Document is the structured form of a report. Field order is stable.
type Document struct {
	Filter     string    `json:"filter" yaml:"filter"`
	Discipline string    `json:"discipline" yaml:"discipline"`
	Exact      []Entry   `json:"exact" yaml:"exact"`
	Similar    []Similar `json:"similar" yaml:"similar"`
	Total      int       `json:"total" yaml:"total"`
	Found      bool      `json:"found" yaml:"found"`
}

// NewDocument builds a document from rep and the exact matches emitted
// during the scan.
func NewDocument(rep search.Report, exact []directory.Record) Document {
	doc := Document{
		Filter:     rep.Filter.String(),
		Discipline: rep.Discipline,
		Exact:      make([]Entry, 0, len(exact)),
		Similar:    []Similar{},
		Total:      rep.Total(),
		Found:      !rep.NotFound(),
	}
	for _, r := range exact {
		doc.Exact = append(doc.Exact, Entry{Name: r.Name, Number: r.Number})
	}
	for _, c := range rep.Similar() {
		s := Similar{
			Entry:    Entry{Name: c.Record.Name, Number: c.Record.Number},
			Field:    c.Outcome.Field.String(),
			Mistakes: c.Outcome.Mistakes,
			Evidence: c.Outcome.Evidence.String(),
		}
		switch c.Outcome.Evidence {
		case match.EvidenceMask:
			s.SkipMask = "0b" + c.Outcome.MaskBinary()
			s.MatchingFilter = c.Outcome.KeptFilter()
		case match.EvidenceDistance:
			d := c.Outcome.Distance
			s.EditDistance = &d
		}
		doc.Similar = append(doc.Similar, s)
	}
	return doc
}

// WriteDocument encodes doc in format. Text documents are written with
// WriteEntry and WriteSummary.
func WriteDocument(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatJSON:
		return encodeJSONPretty(w, doc)
	case FormatYAML:
		return encodeYAML(w, doc)
	default:
		return fmt.Errorf("document output requires json or yaml, got %s", format)
	}
}

func encodeJSONPretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
