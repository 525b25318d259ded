package match

import (
	"iter"
	"math/bits"
	"strings"
)

// DiscardMask marks filter positions excused from matching. For a filter of
// length n, position i corresponds to bit n-1-i, so the binary rendering reads
// in filter order.
type DiscardMask uint64

// MaskOf returns the mask discarding the given positions of an n-length filter.
func MaskOf(n int, positions ...int) DiscardMask {
	var m DiscardMask
	for _, p := range positions {
		m |= 1 << uint(n-1-p)
	}
	return m
}

// Discards reports whether position i of an n-length filter is discarded.
func (m DiscardMask) Discards(n, i int) bool {
	return m&(1<<uint(n-1-i)) != 0
}

// Count returns the number of discarded positions.
func (m DiscardMask) Count() int { return bits.OnesCount64(uint64(m)) }

// Binary renders the low n bits, most significant first.
func (m DiscardMask) Binary(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		if m.Discards(n, i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Keep returns filter with the discarded characters removed.
func (m DiscardMask) Keep(filter string) string {
	n := len(filter)
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		if !m.Discards(n, i) {
			b.WriteByte(filter[i])
		}
	}
	return b.String()
}

// Combinations yields every mask over n positions with exactly k bits set, in
// ascending numeric order.
func Combinations(n, k int) iter.Seq[DiscardMask] {
	return func(yield func(DiscardMask) bool) {
		if k < 0 || n < 0 || k > n || n > MaxFilterLen {
			return
		}
		if k == 0 {
			yield(0)
			return
		}
		limit := DiscardMask(1) << uint(n)
		for v := DiscardMask(1)<<uint(k) - 1; v < limit; v = nextCombination(v) {
			if !yield(v) {
				return
			}
		}
	}
}

// nextCombination returns the smallest mask greater than v with the same
// number of set bits. v must be non-zero.
func nextCombination(v DiscardMask) DiscardMask {
	t := v | (v - 1)
	low := (^t & -^t) - 1
	return (t + 1) | (low >> uint(bits.TrailingZeros64(uint64(v))+1))
}
