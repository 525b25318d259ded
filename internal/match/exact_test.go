package match

import "testing"

func TestContains(t *testing.T) {
	if !Contains(MustFilter(Wildcard), "") {
		t.Fatalf("wildcard must match empty field")
	}
	if !Contains(MustFilter("2"), "2") {
		t.Fatalf("expected match")
	}
	if Contains(MustFilter("23"), "2x3") {
		t.Fatalf("contiguous match must not skip characters")
	}
}

func TestSeparated(t *testing.T) {
	cases := []struct {
		filter string
		field  string
		mask   DiscardMask
		want   bool
	}{
		{"123", "1x2y3", 0, true},
		{"123", "321", 0, false},
		{"23", "911", 0, false},
		{"23", "2", MaskOf(2, 1), true},
		{"23", "3", MaskOf(2, 0), true},
		{"112", "12", 0, false},
		{"112", "1012", 0, true},
		{"*", "", 0, true},
	}
	for _, c := range cases {
		if got := Separated(MustFilter(c.filter), c.field, c.mask); got != c.want {
			t.Fatalf("Separated(%q, %q, %b) = %v, want %v", c.filter, c.field, c.mask, got, c.want)
		}
	}
}

func TestSeparatedMonotonicInMask(t *testing.T) {
	f := MustFilter("7386")
	field := "7358"
	base := MaskOf(4, 3)
	if !Separated(f, field, base) {
		t.Fatalf("expected base mask to match")
	}
	for _, extra := range []int{0, 1, 2} {
		if !Separated(f, field, base|MaskOf(4, extra)) {
			t.Fatalf("adding discard %d broke the match", extra)
		}
	}
}
