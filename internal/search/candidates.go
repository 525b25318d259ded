package search

import (
	"github.com/flarebyte/t9search/internal/directory"
	"github.com/flarebyte/t9search/internal/match"
)

// DefaultCapacity is the number of approximate hits kept for the report.
const DefaultCapacity = 50

// Candidate is an approximate hit waiting to be reported.
type Candidate struct {
	Record  directory.Record
	Outcome match.Outcome
}

// CandidateBuffer keeps candidates in arrival order up to a fixed capacity.
type CandidateBuffer struct {
	items    []Candidate
	capacity int
}

// NewCandidateBuffer returns an empty buffer. A non-positive capacity selects
// DefaultCapacity.
func NewCandidateBuffer(capacity int) *CandidateBuffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &CandidateBuffer{capacity: capacity}
}

// Push appends c and reports whether it was kept.
func (b *CandidateBuffer) Push(c Candidate) bool {
	if b.Full() {
		return false
	}
	b.items = append(b.items, c)
	return true
}

func (b *CandidateBuffer) Full() bool    { return len(b.items) >= b.capacity }
func (b *CandidateBuffer) Len() int      { return len(b.items) }
func (b *CandidateBuffer) Capacity() int { return b.capacity }

// Items returns a copy of the buffered candidates.
func (b *CandidateBuffer) Items() []Candidate {
	return append([]Candidate(nil), b.items...)
}
