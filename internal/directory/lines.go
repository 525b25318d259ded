package directory

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// MaxLineLen is the number of characters kept from each input line. The rest
// of a longer line is discarded.
const MaxLineLen = 100

// LineSource reads records as name and number line pairs. A blank name line
// or the end of input terminates the stream.
type LineSource struct {
	r       *bufio.Reader
	locator string
	done    bool
}

// NewLineSource returns a line source reading r. Locator prefixes errors and
// may be empty.
func NewLineSource(r io.Reader, locator string) *LineSource {
	return &LineSource{r: bufio.NewReader(r), locator: locator}
}

func (s *LineSource) Next(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	if s.done {
		return Record{}, io.EOF
	}
	name, ok, err := s.readLine()
	if err != nil {
		return Record{}, err
	}
	if !ok || name == "" {
		s.done = true
		return Record{}, io.EOF
	}
	number, ok, err := s.readLine()
	if err != nil {
		return Record{}, err
	}
	if !ok || number == "" {
		s.done = true
		return Record{}, &MissingNumberError{Locator: s.locator, Name: name}
	}
	return Record{Name: name, Number: number}, nil
}

// readLine returns the next line without its terminator. ok is false at the
// end of input.
func (s *LineSource) readLine() (string, bool, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	if line == "" && err == io.EOF {
		return "", false, nil
	}
	line = strings.TrimRight(line, "\r\n")
	if len(line) > MaxLineLen {
		line = line[:MaxLineLen]
	}
	return line, true, nil
}
