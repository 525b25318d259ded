package match

import "strings"

// Contains reports whether f occurs as a contiguous run in field.
func Contains(f Filter, field string) bool {
	if f.IsWildcard() {
		return true
	}
	return strings.Contains(field, f.text)
}

// Separated reports whether the filter digits not discarded by mask occur in
// field at strictly increasing positions. The scan never backtracks.
func Separated(f Filter, field string, mask DiscardMask) bool {
	if f.IsWildcard() {
		return true
	}
	n := len(f.text)
	pos := -1
	for i := 0; i < n; i++ {
		if mask.Discards(n, i) {
			continue
		}
		for pos++; pos < len(field); pos++ {
			if field[pos] == f.text[i] {
				break
			}
		}
		if pos >= len(field) {
			return false
		}
	}
	return true
}
