package directory

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func drain(t *testing.T, s Source) ([]Record, error) {
	t.Helper()
	var out []Record
	for {
		r, err := s.Next(context.Background())
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
}

func TestLineSourcePairs(t *testing.T) {
	in := "Petr Dvorak\n603123456\nJana Novotna\r\n+420 777\n"
	recs, err := drain(t, NewLineSource(strings.NewReader(in), ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records", len(recs))
	}
	if recs[1] != (Record{Name: "Jana Novotna", Number: "+420 777"}) {
		t.Fatalf("unexpected record: %+v", recs[1])
	}
}

func TestLineSourceBlankLineTerminates(t *testing.T) {
	in := "Ann\n22\n\nBob\n911\n"
	recs, err := drain(t, NewLineSource(strings.NewReader(in), ""))
	if err != nil || len(recs) != 1 {
		t.Fatalf("got %v, %v", recs, err)
	}
}

func TestLineSourceMissingNumber(t *testing.T) {
	in := "Ann\n22\nBob"
	recs, err := drain(t, NewLineSource(strings.NewReader(in), "book.t9.txt"))
	if !errors.Is(err, ErrMissingNumber) {
		t.Fatalf("expected missing number, got %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("records before the error must be kept, got %d", len(recs))
	}
	if err.Error() != "book.t9.txt: contact is missing number: name: Bob" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestLineSourceEmptyInput(t *testing.T) {
	recs, err := drain(t, NewLineSource(strings.NewReader(""), ""))
	if err != nil || len(recs) != 0 {
		t.Fatalf("got %v, %v", recs, err)
	}
}

func TestLineSourceTruncatesLongLines(t *testing.T) {
	long := strings.Repeat("a", MaxLineLen+50)
	recs, err := drain(t, NewLineSource(strings.NewReader(long+"\n123\n"), ""))
	if err != nil || len(recs) != 1 {
		t.Fatalf("got %v, %v", recs, err)
	}
	if len(recs[0].Name) != MaxLineLen || recs[0].Number != "123" {
		t.Fatalf("unexpected record: %d %q", len(recs[0].Name), recs[0].Number)
	}
}

func TestLineSourceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewLineSource(strings.NewReader("a\n1\n"), "").Next(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}
