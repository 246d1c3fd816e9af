package freq

// Options control Analyze. The zero value uses the English alphabet and
// first-occurrence tie-breaking.
type Options struct {
	Alphabet Alphabet
	TieBreak TieBreak
}

// Analysis is the result of counting, ranking and mapping one text.
type Analysis struct {
	Counts  *Counts
	Ranked  []Entry
	Mapping Mapping
}

// Analyze runs the full count, rank and map pipeline over text.
func Analyze(text string, opts Options) Analysis {
	alpha := opts.Alphabet
	if alpha.Len() == 0 {
		alpha = English
	}
	counts := Count(text)
	ranked := Rank(counts, opts.TieBreak)
	return Analysis{
		Counts:  counts,
		Ranked:  ranked,
		Mapping: Map(ranked, alpha),
	}
}
