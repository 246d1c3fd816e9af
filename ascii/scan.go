package ascii

import "math/bits"

const highBits = 0x8080808080808080

// IndexNonASCII returns the index of the first byte >= 0x80 in s, or -1 if
// s is pure ASCII.
func IndexNonASCII(s string) int {
	pos := 0
	for ; len(s) >= 8; pos, s = pos+8, s[8:] {
		_ = s[7]
		w := uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
			uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
		if w&highBits != 0 {
			return pos + bits.TrailingZeros64(w&highBits)/8
		}
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return pos + i
		}
	}
	return -1
}
