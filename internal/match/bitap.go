package match

import (
	"errors"
	"fmt"
)

// MaxBitapPattern is the longest pattern the bitap automaton accepts.
const MaxBitapPattern = 31

// ErrPatternTooLong is returned by Bitap for patterns over MaxBitapPattern.
var ErrPatternTooLong = fmt.Errorf("pattern is too long for approximate search (maximum %d characters)", MaxBitapPattern)

var errNegativeBudget = errors.New("negative mistake budget")

// Bitap searches text for the leftmost window within k edits of pattern.
// Substitutions, insertions and deletions cost one each. It returns the
// smallest number of edits accepted at the first matching position.
//
// Row d of the automaton has bit i clear when pattern[:i] ends at the current
// text position with at most d edits.
func Bitap(text, pattern string, k int) (int, bool, error) {
	m := len(pattern)
	if m == 0 {
		return 0, true, nil
	}
	if m > MaxBitapPattern {
		return 0, false, ErrPatternTooLong
	}
	if k < 0 {
		return 0, false, errNegativeBudget
	}
	if k > m {
		k = m
	}

	var pm [256]uint64
	for i := range pm {
		pm[i] = ^uint64(0)
	}
	for i := 0; i < m; i++ {
		pm[pattern[i]] &^= 1 << uint(i)
	}

	var r [MaxBitapPattern + 1]uint64
	for d := 0; d <= k; d++ {
		r[d] = ^uint64(0) << uint(d+1)
	}
	accept := uint64(1) << uint(m)

	for i := 0; i < len(text); i++ {
		mask := pm[text[i]]
		prev := r[0]
		r[0] = (r[0] | mask) << 1
		for d := 1; d <= k; d++ {
			old := r[d]
			// match, substitution, insertion, deletion
			r[d] = ((old | mask) << 1) & (prev << 1) & prev & (r[d-1] << 1)
			prev = old
		}
		if r[k]&accept == 0 {
			for d := 0; d <= k; d++ {
				if r[d]&accept == 0 {
					return d, true, nil
				}
			}
		}
	}
	return 0, false, nil
}
