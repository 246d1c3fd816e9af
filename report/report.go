// Package report prints the human-readable result of a frequency analysis.
package report

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/mhr3/voynich/freq"
)

// Section headers.
const (
	ContentHeader   = "Voynich Manuscript Content:"
	FrequencyHeader = "Frequency Analysis:"
	MappingHeader   = "Voynich Symbol to Latin Letter Mapping Based on Frequency:"
	DecipherHeader  = "Substituted Text:"
)

// Options control optional parts of the report.
type Options struct {
	// Escape prints white space and other non-graphic symbols as Go escapes
	// (\n, \t, \x20, \u00a0) instead of the raw character.
	Escape bool
	// Decipher appends the text with every mapped symbol substituted.
	// Mapped white space is substituted too.
	Decipher bool
}

// Write prints the raw text, the ranked frequency table and the symbol
// mapping to w.
func Write(w io.Writer, text string, a freq.Analysis, opts Options) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(ContentHeader)
	bw.WriteByte('\n')
	bw.WriteString(text)
	bw.WriteByte('\n')

	bw.WriteByte('\n')
	bw.WriteString(FrequencyHeader)
	bw.WriteByte('\n')
	for _, e := range a.Ranked {
		bw.WriteString(symbol(e.Symbol, opts.Escape))
		bw.WriteString(": ")
		bw.WriteString(strconv.Itoa(e.Count))
		bw.WriteByte('\n')
	}

	bw.WriteByte('\n')
	bw.WriteString(MappingHeader)
	bw.WriteByte('\n')
	for _, p := range a.Mapping.Pairs() {
		bw.WriteString("Symbol '")
		bw.WriteString(symbol(p.Symbol, opts.Escape))
		bw.WriteString("' maps to Latin letter '")
		bw.WriteRune(p.Letter)
		bw.WriteString("'\n")
	}

	if opts.Decipher {
		bw.WriteByte('\n')
		bw.WriteString(DecipherHeader)
		bw.WriteByte('\n')
		sub := a.Mapping.Apply(text)
		bw.WriteString(sub)
		if !strings.HasSuffix(sub, "\n") {
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

func symbol(r rune, escape bool) string {
	if !escape || (unicode.IsGraphic(r) && !unicode.IsSpace(r)) {
		return string(r)
	}
	if r == ' ' {
		return `\x20`
	}
	q := strconv.QuoteRune(r)
	return q[1 : len(q)-1]
}
