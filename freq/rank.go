package freq

import (
	"cmp"
	"fmt"
	"slices"
)

// TieBreak decides the order of symbols with equal counts.
type TieBreak int

const (
	// FirstOccurrence keeps equally frequent symbols in the order they first
	// appear in the text.
	FirstOccurrence TieBreak = iota
	// CodePoint orders equally frequent symbols by ascending code point.
	CodePoint
)

func (tb TieBreak) String() string {
	switch tb {
	case FirstOccurrence:
		return "first-occurrence"
	case CodePoint:
		return "code-point"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(tb))
	}
}

// ParseTieBreak parses the names returned by TieBreak.String.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "", "first-occurrence":
		return FirstOccurrence, nil
	case "code-point":
		return CodePoint, nil
	}
	return 0, fmt.Errorf("unknown tie-break %q (want first-occurrence or code-point)", s)
}

// Rank returns the entries of c ordered by count, most frequent first.
// The sort is stable; ties are resolved by tb.
func Rank(c *Counts, tb TieBreak) []Entry {
	ranked := c.Entries()
	if tb == CodePoint {
		slices.SortFunc(ranked, func(a, b Entry) int {
			return cmp.Compare(a.Symbol, b.Symbol)
		})
	}
	slices.SortStableFunc(ranked, func(a, b Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return ranked
}
