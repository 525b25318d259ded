package t9

import (
	"strings"
	"testing"
)

func TestEncodeLetters(t *testing.T) {
	e := NewEncoder(PunctuationLiteral)
	cases := map[string]string{
		"abc":         "222",
		"Ann":         "266",
		"Petr Dvorak": "7387 386725",
		"WXYZ":        "9999",
		"+420 123":    "0420 123",
		"":            "",
	}
	for in, want := range cases {
		if got := e.Encode(in); got != want {
			t.Fatalf("Encode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncodeDropPolicy(t *testing.T) {
	e := NewEncoder(PunctuationDrop)
	if got := e.Encode("Petr Dvorak"); got != "7387386725" {
		t.Fatalf("unexpected encoding: %q", got)
	}
	if got := e.Encode("+420 603-123"); got != "0420603123" {
		t.Fatalf("unexpected encoding: %q", got)
	}
}

func TestEncodeCapsLength(t *testing.T) {
	e := NewEncoder(PunctuationLiteral)
	got := e.Encode(strings.Repeat("a", MaxFieldLen+20))
	if len(got) != MaxFieldLen {
		t.Fatalf("expected %d digits, got %d", MaxFieldLen, len(got))
	}
}

func TestParsePunctuation(t *testing.T) {
	p, err := ParsePunctuation("")
	if err != nil || p != PunctuationLiteral {
		t.Fatalf("default: got %v, %v", p, err)
	}
	p, err = ParsePunctuation("drop")
	if err != nil || p != PunctuationDrop {
		t.Fatalf("drop: got %v, %v", p, err)
	}
	if _, err := ParsePunctuation("keep"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestDigit(t *testing.T) {
	if d, ok := Digit('S'); !ok || d != '7' {
		t.Fatalf("Digit('S') = %q, %v", d, ok)
	}
	if _, ok := Digit('-'); ok {
		t.Fatalf("'-' should not belong to a group")
	}
}
