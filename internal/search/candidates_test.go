package search

import "testing"

func TestCandidateBufferBounded(t *testing.T) {
	b := NewCandidateBuffer(2)
	for i := 0; i < 5; i++ {
		b.Push(Candidate{})
	}
	if b.Len() != 2 || !b.Full() {
		t.Fatalf("len=%d full=%v", b.Len(), b.Full())
	}
	if NewCandidateBuffer(0).Capacity() != DefaultCapacity {
		t.Fatalf("zero capacity must select the default")
	}
}
