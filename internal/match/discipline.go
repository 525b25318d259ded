package match

import "fmt"

// Discipline pairs an exact matcher with the fuzzy matcher used when no record
// matches exactly.
type Discipline interface {
	Name() string
	Exact(f Filter, fields Fields) Outcome
	Fuzzy(f Filter, fields Fields, budget int) (Outcome, error)
}

// FuzzyStrategy selects the approximate matcher of the contiguous discipline.
type FuzzyStrategy int

const (
	FuzzyBitap FuzzyStrategy = iota
	FuzzyEditDistance
)

func (s FuzzyStrategy) String() string {
	switch s {
	case FuzzyBitap:
		return "bitap"
	case FuzzyEditDistance:
		return "edit-distance"
	default:
		return fmt.Sprintf("fuzzy(%d)", int(s))
	}
}

// ParseFuzzyStrategy parses a strategy name. The empty string selects bitap.
func ParseFuzzyStrategy(s string) (FuzzyStrategy, error) {
	switch s {
	case "", "bitap":
		return FuzzyBitap, nil
	case "edit-distance", "levenshtein":
		return FuzzyEditDistance, nil
	default:
		return 0, fmt.Errorf("invalid fuzzy strategy: %q (expected bitap or edit-distance)", s)
	}
}

// New returns the subsequence discipline when separated is set, otherwise the
// contiguous discipline using strategy.
func New(separated bool, strategy FuzzyStrategy) Discipline {
	if separated {
		return Subsequence{}
	}
	return Contiguous{Strategy: strategy}
}

// Contiguous requires the filter to occur as an unbroken run.
type Contiguous struct {
	Strategy FuzzyStrategy
}

func (c Contiguous) Name() string { return "contiguous/" + c.Strategy.String() }

func (Contiguous) Exact(f Filter, fields Fields) Outcome {
	switch {
	case Contains(f, fields.Name):
		return exact(f, FieldName)
	case Contains(f, fields.Number):
		return exact(f, FieldNumber)
	}
	return none(f)
}

func (c Contiguous) Fuzzy(f Filter, fields Fields, budget int) (Outcome, error) {
	if f.IsWildcard() {
		return exact(f, FieldName), nil
	}
	if budget <= 0 {
		return none(f), nil
	}
	if c.Strategy == FuzzyEditDistance {
		return editDistanceOutcome(f, fields, budget), nil
	}
	for _, cand := range []struct {
		text  string
		field Field
	}{{fields.Name, FieldName}, {fields.Number, FieldNumber}} {
		d, ok, err := Bitap(cand.text, f.text, budget)
		if err != nil {
			return Outcome{}, err
		}
		if ok {
			return Outcome{
				Kind:     FuzzyMatch,
				Mistakes: d,
				Evidence: EvidenceDistance,
				Distance: d,
				Filter:   f,
				Field:    cand.field,
			}, nil
		}
	}
	return none(f), nil
}

func editDistanceOutcome(f Filter, fields Fields, budget int) Outcome {
	dn := Distance(f.text, fields.Name)
	dm := Distance(f.text, fields.Number)
	d, field := dn, FieldName
	if dm < dn {
		d, field = dm, FieldNumber
	}
	if d > budget {
		return none(f)
	}
	return Outcome{
		Kind:     FuzzyMatch,
		Mistakes: d,
		Evidence: EvidenceDistance,
		Distance: d,
		Filter:   f,
		Field:    field,
	}
}

// Subsequence requires filter digits in order, with arbitrary gaps.
type Subsequence struct{}

func (Subsequence) Name() string { return "subsequence" }

func (Subsequence) Exact(f Filter, fields Fields) Outcome {
	switch {
	case Separated(f, fields.Name, 0):
		return exact(f, FieldName)
	case Separated(f, fields.Number, 0):
		return exact(f, FieldNumber)
	}
	return none(f)
}

// Fuzzy tries every discard mask with 1..budget bits, fewest bits first, and
// accepts the first one under which either field matches.
func (Subsequence) Fuzzy(f Filter, fields Fields, budget int) (Outcome, error) {
	if f.IsWildcard() {
		return exact(f, FieldName), nil
	}
	n := f.Len()
	for m := 1; m <= budget && m < n; m++ {
		for mask := range Combinations(n, m) {
			field := FieldNone
			switch {
			case Separated(f, fields.Name, mask):
				field = FieldName
			case Separated(f, fields.Number, mask):
				field = FieldNumber
			}
			if field != FieldNone {
				return Outcome{
					Kind:     FuzzyMatch,
					Mistakes: m,
					Evidence: EvidenceMask,
					Mask:     mask,
					Filter:   f,
					Field:    field,
				}, nil
			}
		}
	}
	return none(f), nil
}
