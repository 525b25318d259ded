// Package match implements exact and approximate matching of keypad filters
// against encoded fields.
//
// Two disciplines are available and are selected once per search:
//
//   - Contiguous: the filter must occur as an unbroken run. Fuzzy matching
//     uses either the bitap automaton (approximate substring) or the
//     whole-field edit distance.
//   - Subsequence: filter digits must occur in order with arbitrary gaps.
//     Fuzzy matching discards filter positions, enumerating discard masks
//     with an increasing number of set bits and accepting the first fit.
package match
