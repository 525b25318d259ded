package directory

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is an input file format.
type Format int

const (
	FormatLines Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "lines"
}

// ParseFormat parses a format name. The empty string selects lines.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "lines":
		return FormatLines, nil
	case "yaml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("invalid input format: %q (expected lines or yaml)", s)
	}
}

// FormatForPath infers the format from a file extension, falling back to def.
func FormatForPath(path string, def Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt":
		return FormatLines
	}
	return def
}

// NewSource wraps r with the reader for format.
func NewSource(r io.Reader, format Format, locator string) Source {
	if format == FormatYAML {
		return NewYAMLSource(r, locator)
	}
	return NewLineSource(r, locator)
}

// FileSource reads records from a file opened on first use.
type FileSource struct {
	Path   string
	Format Format
	f      *os.File
	src    Source
}

func (s *FileSource) Next(ctx context.Context) (Record, error) {
	if s.src == nil {
		f, err := os.Open(s.Path)
		if err != nil {
			return Record{}, fmt.Errorf("failed to open input: %w", err)
		}
		s.f = f
		s.src = NewSource(f, s.Format, filepath.ToSlash(s.Path))
	}
	return s.src.Next(ctx)
}

// Close releases the underlying file.
func (s *FileSource) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

// MultiSource drains each source in turn.
type MultiSource struct {
	Sources []Source
	pos     int
}

func (m *MultiSource) Next(ctx context.Context) (Record, error) {
	for m.pos < len(m.Sources) {
		r, err := m.Sources[m.pos].Next(ctx)
		if err == io.EOF {
			closeSource(m.Sources[m.pos])
			m.pos++
			continue
		}
		return r, err
	}
	return Record{}, io.EOF
}

// Close releases every source that holds resources.
func (m *MultiSource) Close() error {
	var first error
	for _, s := range m.Sources {
		if err := closeSource(s); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func closeSource(s Source) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Open returns a source for path. "-" and "" read stdin.
func Open(path string, format Format) Source {
	if path == "" || path == "-" {
		return NewSource(os.Stdin, format, "")
	}
	return &FileSource{Path: path, Format: FormatForPath(path, format)}
}

// OpenDir returns a source reading every directory file under root.
func OpenDir(root string, noGitignore bool) (*MultiSource, error) {
	files, err := Discover(root, noGitignore)
	if err != nil {
		return nil, err
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	m := &MultiSource{}
	for _, rel := range files {
		m.Sources = append(m.Sources, &FileSource{
			Path:   filepath.Join(absRoot, filepath.FromSlash(rel)),
			Format: FormatForPath(rel, FormatLines),
		})
	}
	return m, nil
}
