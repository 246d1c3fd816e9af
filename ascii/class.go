package ascii

// Byte classes used by symbol counting. A byte may belong to more than one
// class only in theory; the table below never sets both bits.
const (
	classNone   uint8 = 0
	classLetter uint8 = 1 << 0
	classSpace  uint8 = 1 << 1

	classSymbol = classLetter | classSpace
)

// byteClass classifies every ASCII byte the way unicode.IsLetter and
// unicode.IsSpace do. Bytes 0x80-0xFF are never classified: they are not
// characters on their own in UTF-8 text and callers must decode them.
var byteClass = [256]uint8{
	// 0x00-0x08: control characters
	0, 0, 0, 0, 0, 0, 0, 0, 0,
	classSpace, // '\t'
	classSpace, // '\n'
	classSpace, // '\v'
	classSpace, // '\f'
	classSpace, // '\r'
	// 0x0E-0x1F: more control characters
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	classSpace, // ' '
	// 0x21-0x40: punctuation and digits
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0x41-0x5A: uppercase A-Z
	classLetter, classLetter, classLetter, classLetter, classLetter, classLetter, classLetter,
	classLetter, classLetter, classLetter, classLetter, classLetter, classLetter, classLetter,
	classLetter, classLetter, classLetter, classLetter, classLetter, classLetter, classLetter,
	classLetter, classLetter, classLetter, classLetter, classLetter,
	// 0x5B-0x60: brackets and punctuation
	0, 0, 0, 0, 0, 0,
	// 0x61-0x7A: lowercase a-z
	classLetter, classLetter, classLetter, classLetter, classLetter, classLetter, classLetter,
	classLetter, classLetter, classLetter, classLetter, classLetter, classLetter, classLetter,
	classLetter, classLetter, classLetter, classLetter, classLetter, classLetter, classLetter,
	classLetter, classLetter, classLetter, classLetter, classLetter,
	// 0x7B-0x7F: braces and DEL
	0, 0, 0, 0, 0,
	// 0x80-0xFF: left zero
}

// class returns the class bits of b.
func class(b byte) uint8 {
	return byteClass[b]
}

// isLetter reports whether b is an ASCII letter.
func isLetter(b byte) bool {
	return byteClass[b]&classLetter != 0
}

// isSpace reports whether b is ASCII white space.
func isSpace(b byte) bool {
	return byteClass[b]&classSpace != 0
}

// IsSymbol reports whether b is counted as a symbol: a letter or white space.
func IsSymbol(b byte) bool {
	return byteClass[b]&classSymbol != 0
}
