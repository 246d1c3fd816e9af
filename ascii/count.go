package ascii

// CountSymbols adds the number of occurrences of every symbol byte in s
// (letters and white space) to counts. Other bytes are skipped.
// Only meaningful for ASCII input; bytes >= 0x80 are never counted.
func CountSymbols(s string, counts *[256]int) {
	for ; len(s) >= 4; s = s[4:] {
		_ = s[3]
		b0, b1, b2, b3 := s[0], s[1], s[2], s[3]
		if byteClass[b0]&classSymbol != 0 {
			counts[b0]++
		}
		if byteClass[b1]&classSymbol != 0 {
			counts[b1]++
		}
		if byteClass[b2]&classSymbol != 0 {
			counts[b2]++
		}
		if byteClass[b3]&classSymbol != 0 {
			counts[b3]++
		}
	}
	for i := 0; i < len(s); i++ {
		if b := s[i]; byteClass[b]&classSymbol != 0 {
			counts[b]++
		}
	}
}

// IndexSymbol returns the index of the first symbol byte in s, or -1.
func IndexSymbol(s string) int {
	for i := 0; i < len(s); i++ {
		if byteClass[s[i]]&classSymbol != 0 {
			return i
		}
	}
	return -1
}
