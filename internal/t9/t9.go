// Package t9 converts text into keypad digit sequences.
//
// Letters are mapped case-insensitively to the digit of the keypad group that
// contains them. Digits map to themselves and '+' maps to '0'. Any other
// character is handled according to the configured Punctuation policy.
package t9

import "fmt"

// MaxFieldLen caps the number of input characters processed per field.
const MaxFieldLen = 100

// Punctuation selects how characters outside every keypad group are encoded.
type Punctuation int

const (
	// PunctuationLiteral copies the character unchanged at its position.
	PunctuationLiteral Punctuation = iota
	// PunctuationDrop removes the character from the output.
	PunctuationDrop
)

func (p Punctuation) String() string {
	switch p {
	case PunctuationLiteral:
		return "literal"
	case PunctuationDrop:
		return "drop"
	default:
		return fmt.Sprintf("punctuation(%d)", int(p))
	}
}

// ParsePunctuation parses a policy name. The empty string selects the default.
func ParsePunctuation(s string) (Punctuation, error) {
	switch s {
	case "", "literal":
		return PunctuationLiteral, nil
	case "drop":
		return PunctuationDrop, nil
	default:
		return 0, fmt.Errorf("invalid punctuation policy: %q (expected literal or drop)", s)
	}
}

var groups = [10]string{
	"0+",
	"1", "2abc", "3def",
	"4ghi", "5jkl", "6mno",
	"7pqrs", "8tuv", "9wxyz",
}

// keypad maps each byte to its digit, or 0 when it belongs to no group.
var keypad = buildKeypad()

func buildKeypad() [256]byte {
	var m [256]byte
	for _, g := range groups {
		d := g[0]
		for i := 0; i < len(g); i++ {
			c := g[i]
			m[c] = d
			if c >= 'a' && c <= 'z' {
				m[c-'a'+'A'] = d
			}
		}
	}
	return m
}

// Digit returns the keypad digit for c and whether c belongs to a group.
func Digit(c byte) (byte, bool) {
	d := keypad[c]
	return d, d != 0
}

// Encoder turns names and numbers into digit sequences.
type Encoder struct {
	Punctuation Punctuation
}

// NewEncoder returns an encoder using policy p.
func NewEncoder(p Punctuation) Encoder {
	return Encoder{Punctuation: p}
}

// Encode returns the digit projection of field.
func (e Encoder) Encode(field string) string {
	n := len(field)
	if n > MaxFieldLen {
		n = MaxFieldLen
	}
	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		c := field[i]
		if d, ok := Digit(c); ok {
			out = append(out, d)
			continue
		}
		if e.Punctuation == PunctuationLiteral {
			out = append(out, c)
		}
	}
	return string(out)
}
