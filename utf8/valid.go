// Package utf8 validates UTF-8 text, taking a fast path for pure ASCII input.
package utf8

import (
	stdlib "unicode/utf8"

	segAscii "github.com/segmentio/asm/ascii"
)

// ValidString reports whether s is entirely valid UTF-8.
func ValidString(s string) bool {
	if segAscii.ValidString(s) {
		return true
	}
	return stdlib.ValidString(s)
}

// IndexInvalid returns the byte offset of the first invalid UTF-8 sequence
// in s, or -1 if s is valid.
func IndexInvalid(s string) int {
	for i := 0; i < len(s); {
		if s[i] < stdlib.RuneSelf {
			i++
			continue
		}
		r, size := stdlib.DecodeRuneInString(s[i:])
		if r == stdlib.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
