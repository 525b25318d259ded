package match

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestBitapExact(t *testing.T) {
	d, ok, err := Bitap("9112", "12", 0)
	if err != nil || !ok || d != 0 {
		t.Fatalf("got %d, %v, %v", d, ok, err)
	}
	if _, ok, _ := Bitap("911", "23", 0); ok {
		t.Fatalf("unexpected match")
	}
}

func TestBitapEdits(t *testing.T) {
	cases := []struct {
		text, pattern string
		k             int
		want          int
		ok            bool
	}{
		{"1523", "123", 1, 1, true},  // insertion
		{"9124", "123", 1, 1, true},  // deletion
		{"1423", "1523", 1, 1, true}, // substitution
		{"911", "23", 1, 0, false},
		{"7777", "123", 2, 0, false},
		{"9129", "123", 2, 2, true}, // leftmost window "1" wins
	}
	for _, c := range cases {
		d, ok, err := Bitap(c.text, c.pattern, c.k)
		if err != nil {
			t.Fatalf("%q/%q: %v", c.text, c.pattern, err)
		}
		if ok != c.ok || (ok && d != c.want) {
			t.Fatalf("Bitap(%q, %q, %d) = %d, %v; want %d, %v", c.text, c.pattern, c.k, d, ok, c.want, c.ok)
		}
	}
}

func TestBitapPatternTooLong(t *testing.T) {
	_, _, err := Bitap("123", strings.Repeat("1", MaxBitapPattern+1), 1)
	if !errors.Is(err, ErrPatternTooLong) {
		t.Fatalf("expected ErrPatternTooLong, got %v", err)
	}
}

func TestBitapZeroBudgetIsSubstring(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	digits := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte('0' + rng.Intn(4))
		}
		return string(b)
	}
	for i := 0; i < 2000; i++ {
		text := digits(rng.Intn(12))
		pattern := digits(1 + rng.Intn(4))
		_, ok, err := Bitap(text, pattern, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok != strings.Contains(text, pattern) {
			t.Fatalf("Bitap(%q, %q, 0) = %v, substring = %v", text, pattern, ok, !ok)
		}
	}
}

func TestBitapAgreesWithWindowDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	digits := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte('0' + rng.Intn(3))
		}
		return string(b)
	}
	for i := 0; i < 500; i++ {
		text := digits(rng.Intn(10))
		pattern := digits(2 + rng.Intn(4))
		k := rng.Intn(len(pattern))
		_, ok, err := Bitap(text, pattern, k)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := false
		for s := 0; s <= len(text) && !want; s++ {
			for e := s; e <= len(text); e++ {
				if e > 0 && Distance(pattern, text[s:e]) <= k {
					want = true
					break
				}
			}
		}
		if ok != want {
			t.Fatalf("Bitap(%q, %q, %d) = %v, want %v", text, pattern, k, ok, want)
		}
	}
}
