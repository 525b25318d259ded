package match

import "testing"

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"123", "", 3},
		{"", "45", 2},
		{"kitten", "sitting", 3},
		{"123", "123", 0},
		{"123", "1234", 1},
		{"123", "213", 2},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); got != c.want {
			t.Fatalf("Distance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDistanceMetric(t *testing.T) {
	words := []string{"", "2", "23", "266", "7387", "911", "0420123", "2662"}
	for _, a := range words {
		for _, b := range words {
			ab := Distance(a, b)
			if ab != Distance(b, a) {
				t.Fatalf("asymmetric: %q %q", a, b)
			}
			if (ab == 0) != (a == b) {
				t.Fatalf("zero iff equal violated: %q %q", a, b)
			}
			for _, c := range words {
				if Distance(a, c) > ab+Distance(b, c) {
					t.Fatalf("triangle inequality violated: %q %q %q", a, b, c)
				}
			}
		}
	}
}
