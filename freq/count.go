// Package freq counts symbol frequencies in text and maps the most frequent
// symbols onto a reference alphabet ordered by natural-language frequency.
//
// A symbol is any rune that is a letter or white space. Case is preserved:
// 'A' and 'a' are different symbols.
package freq

import (
	"unicode"

	"github.com/mhr3/voynich/ascii"
)

// Entry is a symbol together with its number of occurrences.
type Entry struct {
	Symbol rune
	Count  int
}

// Counts holds per-symbol occurrence counts. Symbols are remembered in the
// order they first appeared in the counted text.
type Counts struct {
	index map[rune]int
	order []Entry
	total int
}

// IsSymbol reports whether r is counted: a letter or white space.
func IsSymbol(r rune) bool {
	if r < 0x80 {
		return ascii.IsSymbol(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsSpace(r)
}

// Count tallies every symbol in text. The leading ASCII run is counted
// byte-wise; decoding starts at the first non-ASCII byte.
func Count(text string) *Counts {
	c := &Counts{index: make(map[rune]int)}
	i := ascii.IndexNonASCII(text)
	if i < 0 {
		c.countASCII(text)
		return c
	}
	c.countASCII(text[:i])
	for _, r := range text[i:] {
		if IsSymbol(r) {
			c.add(r, 1)
		}
	}
	return c
}

func (c *Counts) countASCII(text string) {
	var counts [256]int
	ascii.CountSymbols(text, &counts)

	distinct := 0
	for _, n := range counts {
		if n > 0 {
			distinct++
		}
	}

	// second scan only to recover first-occurrence order; stops once every
	// distinct symbol has been seen
	s := text
	for distinct > 0 {
		i := ascii.IndexSymbol(s)
		b := s[i]
		s = s[i+1:]
		if counts[b] == 0 {
			continue
		}
		c.add(rune(b), counts[b])
		counts[b] = 0
		distinct--
	}
}

func (c *Counts) add(r rune, n int) {
	c.total += n
	if i, ok := c.index[r]; ok {
		c.order[i].Count += n
		return
	}
	c.index[r] = len(c.order)
	c.order = append(c.order, Entry{Symbol: r, Count: n})
}

// Get returns the number of occurrences of r.
func (c *Counts) Get(r rune) int {
	if i, ok := c.index[r]; ok {
		return c.order[i].Count
	}
	return 0
}

// Len returns the number of distinct symbols.
func (c *Counts) Len() int {
	return len(c.order)
}

// Total returns the number of counted symbols.
func (c *Counts) Total() int {
	return c.total
}

// Entries returns a copy of the counts in first-occurrence order.
func (c *Counts) Entries() []Entry {
	out := make([]Entry, len(c.order))
	copy(out, c.order)
	return out
}

// Map returns the counts as a plain map.
func (c *Counts) Map() map[rune]int {
	m := make(map[rune]int, len(c.order))
	for _, e := range c.order {
		m[e.Symbol] = e.Count
	}
	return m
}
