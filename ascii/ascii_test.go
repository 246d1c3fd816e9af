package ascii

import (
	"fmt"
	"math/rand"
	"testing"
	"unicode"

	segAscii "github.com/segmentio/asm/ascii"
)

func makeASCII(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rand.Uint32() & 0x7f)
	}
	return data
}

type ValidTest struct {
	in  string
	exp bool
}

var validTests = []ValidTest{
	{"", true},
	{"a", true},
	{"abc", true},
	{"Ж", false},
	{"ЖЖ", false},
	{"брэд-ЛГТМ", false},
	{"☺☻☹", false},
	{"aa\xe2", false},
	{string([]byte{66, 250}), false},
	{string([]byte{66, 250, 67}), false},
	{"a\uFFFDb", false},
	{"\xc0\x80", false},
	{"hellowo\xff", false},
	{"hellowor", true},
	{"qokeedy qokedy\nchedy", true},
}

func TestIndexNonASCII(t *testing.T) {
	for _, vt := range validTests {
		got := IndexNonASCII(vt.in)
		if (got == -1) != vt.exp {
			t.Errorf("IndexNonASCII(%q) = %d; want ascii=%v", vt.in, got, vt.exp)
		}
		if segAscii.ValidString(vt.in) != vt.exp {
			t.Errorf("segment ValidString(%q) disagrees, want %v", vt.in, vt.exp)
		}
		if got := IndexNonASCII("0123456789ab" + vt.in); (got == -1) != vt.exp {
			t.Errorf("IndexNonASCII(prefixed %q) = %d; want ascii=%v", vt.in, got, vt.exp)
		}
	}

	for i := 1; i < 1600; i++ {
		data := makeASCII(i)
		if res := IndexNonASCII(string(data)); res != -1 {
			t.Errorf("IndexNonASCII([%d]) = %d; want -1", len(data), res)
		}

		idx := rand.Intn(i)
		data[idx] |= 0x80
		if res := IndexNonASCII(string(data)); res != idx {
			t.Errorf("IndexNonASCII([%d]) = %d; want %d", len(data), res, idx)
		}
		if segAscii.ValidString(string(data)) {
			t.Errorf("segment ValidString([%d]) = true; want false", len(data))
		}

		// a second high byte further on must not change the answer
		if idx+1 < i {
			data[i-1] |= 0x80
			if res := IndexNonASCII(string(data)); res != idx {
				t.Errorf("IndexNonASCII([%d], two high bytes) = %d; want %d", len(data), res, idx)
			}
		}
	}
}

func TestClassMatchesUnicode(t *testing.T) {
	for b := 0; b < 256; b++ {
		r := rune(b)
		wantLetter := b < 0x80 && unicode.IsLetter(r)
		wantSpace := b < 0x80 && unicode.IsSpace(r)

		if got := isLetter(byte(b)); got != wantLetter {
			t.Errorf("isLetter(%#02x) = %v; want %v", b, got, wantLetter)
		}
		if got := isSpace(byte(b)); got != wantSpace {
			t.Errorf("isSpace(%#02x) = %v; want %v", b, got, wantSpace)
		}
		if got := IsSymbol(byte(b)); got != (wantLetter || wantSpace) {
			t.Errorf("IsSymbol(%#02x) = %v; want %v", b, got, wantLetter || wantSpace)
		}
	}

	if class('x') != classLetter {
		t.Errorf("class('x') = %d; want %d", class('x'), classLetter)
	}
	if class('\n') != classSpace {
		t.Errorf("class('\\n') = %d; want %d", class('\n'), classSpace)
	}
	if class('7') != classNone {
		t.Errorf("class('7') = %d; want %d", class('7'), classNone)
	}
}

func countSymbolsRef(s string) [256]int {
	var counts [256]int
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		if s[i] < 0x80 && (unicode.IsLetter(r) || unicode.IsSpace(r)) {
			counts[s[i]]++
		}
	}
	return counts
}

func TestCountSymbols(t *testing.T) {
	tests := []struct {
		in   string
		want map[byte]int
	}{
		{"", map[byte]int{}},
		{"aabbbcc", map[byte]int{'a': 2, 'b': 3, 'c': 2}},
		{"a1 a2", map[byte]int{'a': 2, ' ': 1}},
		{"aabb\ncc\n", map[byte]int{'a': 2, 'b': 2, 'c': 2, '\n': 2}},
		{"A.a,\t!", map[byte]int{'A': 1, 'a': 1, '\t': 1}},
	}

	for _, tt := range tests {
		var counts [256]int
		CountSymbols(tt.in, &counts)
		for b := 0; b < 256; b++ {
			if counts[b] != tt.want[byte(b)] {
				t.Errorf("CountSymbols(%q)[%q] = %d; want %d", tt.in, rune(b), counts[b], tt.want[byte(b)])
			}
		}
	}

	for n := 0; n < 300; n++ {
		data := string(makeASCII(n))
		var counts [256]int
		CountSymbols(data, &counts)
		if counts != countSymbolsRef(data) {
			t.Fatalf("CountSymbols mismatch for %q", data)
		}
	}
}

func TestIndexSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", -1},
		{"123.,;", -1},
		{"12 3", 2},
		{"x", 0},
		{"!!\n", 2},
	}
	for _, tt := range tests {
		if got := IndexSymbol(tt.in); got != tt.want {
			t.Errorf("IndexSymbol(%q) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func BenchmarkIndexNonASCII(b *testing.B) {
	for _, n := range []int{1, 7, 15, 44, 100, 1000} {
		asciiStr := string(makeASCII(n))

		b.Run(fmt.Sprintf("go-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(asciiStr)))
			for i := 0; i < b.N; i++ {
				IndexNonASCII(asciiStr)
			}
		})

		b.Run(fmt.Sprintf("segment-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(asciiStr)))
			for i := 0; i < b.N; i++ {
				segAscii.ValidString(asciiStr)
			}
		})
	}
}

func BenchmarkCountSymbols(b *testing.B) {
	for _, n := range []int{16, 1000, 100000} {
		s := string(makeASCII(n))
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(s)))
			var counts [256]int
			for i := 0; i < b.N; i++ {
				CountSymbols(s, &counts)
			}
		})
	}
}
