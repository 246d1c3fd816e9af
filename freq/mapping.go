package freq

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// EnglishOrder lists the Latin letters from most to least frequent in
// English text.
const EnglishOrder = "etaoinsrhdlucmfypbvkgwxzjq"

// English is the default reference alphabet.
var English = MustParseAlphabet(EnglishOrder)

// Alphabet is an ordered list of distinct reference letters, most frequent
// first. The zero value is empty.
type Alphabet struct {
	letters []rune
}

var errEmptyAlphabet = errors.New("alphabet is empty")

// ParseAlphabet builds an Alphabet from s. Every rune must be a letter and
// appear only once.
func ParseAlphabet(s string) (Alphabet, error) {
	if s == "" {
		return Alphabet{}, errEmptyAlphabet
	}
	seen := make(map[rune]bool, len(s))
	letters := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return Alphabet{}, fmt.Errorf("alphabet %q: %q is not a letter", s, r)
		}
		if seen[r] {
			return Alphabet{}, fmt.Errorf("alphabet %q: duplicate letter %q", s, r)
		}
		seen[r] = true
		letters = append(letters, r)
	}
	return Alphabet{letters: letters}, nil
}

// MustParseAlphabet is like ParseAlphabet but panics on error.
func MustParseAlphabet(s string) Alphabet {
	a, err := ParseAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of letters.
func (a Alphabet) Len() int {
	return len(a.letters)
}

// At returns the letter at rank i.
func (a Alphabet) At(i int) rune {
	return a.letters[i]
}

// Letters returns a copy of the letters in rank order.
func (a Alphabet) Letters() []rune {
	return append([]rune(nil), a.letters...)
}

func (a Alphabet) String() string {
	return string(a.letters)
}

// Pair assigns a reference letter to an input symbol.
type Pair struct {
	Symbol rune
	Letter rune
}

// Mapping is a symbol to letter substitution built from a ranking.
type Mapping struct {
	pairs  []Pair
	lookup map[rune]rune
}

// Map pairs ranked[i] with alpha.At(i) for every i below
// min(len(ranked), alpha.Len()). Symbols past that point stay unmapped.
func Map(ranked []Entry, alpha Alphabet) Mapping {
	n := min(len(ranked), alpha.Len())
	m := Mapping{
		pairs:  make([]Pair, n),
		lookup: make(map[rune]rune, n),
	}
	for i := 0; i < n; i++ {
		m.pairs[i] = Pair{Symbol: ranked[i].Symbol, Letter: alpha.At(i)}
		m.lookup[ranked[i].Symbol] = alpha.At(i)
	}
	return m
}

// Len returns the number of mapped symbols.
func (m Mapping) Len() int {
	return len(m.pairs)
}

// Pairs returns the mapping in rank order.
func (m Mapping) Pairs() []Pair {
	return append([]Pair(nil), m.pairs...)
}

// Lookup returns the letter assigned to r.
func (m Mapping) Lookup(r rune) (rune, bool) {
	l, ok := m.lookup[r]
	return l, ok
}

// Apply substitutes every mapped symbol in text. Unmapped runes are copied
// unchanged.
func (m Mapping) Apply(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if l, ok := m.lookup[r]; ok {
			r = l
		}
		b.WriteRune(r)
	}
	return b.String()
}
