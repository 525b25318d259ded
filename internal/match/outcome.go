package match

// Kind classifies a match outcome.
type Kind int

const (
	NoMatch Kind = iota
	ExactMatch
	FuzzyMatch
)

func (k Kind) String() string {
	switch k {
	case ExactMatch:
		return "exact"
	case FuzzyMatch:
		return "fuzzy"
	default:
		return "none"
	}
}

// Evidence tells which field of Outcome explains a fuzzy match.
type Evidence int

const (
	EvidenceNone Evidence = iota
	// EvidenceMask means Outcome.Mask holds the accepted discard mask.
	EvidenceMask
	// EvidenceDistance means Outcome.Distance holds the edit distance.
	EvidenceDistance
)

func (e Evidence) String() string {
	switch e {
	case EvidenceMask:
		return "discard-mask"
	case EvidenceDistance:
		return "edit-distance"
	default:
		return "none"
	}
}

// Field identifies the record field that produced a match.
type Field int

const (
	FieldNone Field = iota
	FieldName
	FieldNumber
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldNumber:
		return "number"
	default:
		return ""
	}
}

// Fields holds the encoded name and number of a record.
type Fields struct {
	Name   string
	Number string
}

// Outcome is the result of testing one record against a filter.
type Outcome struct {
	Kind     Kind
	Mistakes int
	Evidence Evidence
	Mask     DiscardMask
	Distance int
	Filter   Filter
	Field    Field
}

// Matched reports whether the outcome is an exact or fuzzy match.
func (o Outcome) Matched() bool { return o.Kind != NoMatch }

// MaskBinary renders the discard mask one bit per filter position.
func (o Outcome) MaskBinary() string {
	if o.Evidence != EvidenceMask {
		return ""
	}
	return o.Mask.Binary(o.Filter.Len())
}

// KeptFilter returns the filter with discarded characters omitted.
func (o Outcome) KeptFilter() string {
	if o.Evidence != EvidenceMask {
		return o.Filter.String()
	}
	return o.Mask.Keep(o.Filter.String())
}

func exact(f Filter, field Field) Outcome {
	return Outcome{Kind: ExactMatch, Filter: f, Field: field}
}

func none(f Filter) Outcome {
	return Outcome{Kind: NoMatch, Filter: f}
}
