package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/voynich/freq"
)

func TestWrite(t *testing.T) {
	text := "aabb\ncc\n"
	a := freq.Analyze(text, freq.Options{})

	var out strings.Builder
	require.NoError(t, Write(&out, text, a, Options{}))

	want := "Voynich Manuscript Content:\n" +
		"aabb\ncc\n" + "\n" +
		"\nFrequency Analysis:\n" +
		"a: 2\n" +
		"b: 2\n" +
		"\n: 2\n" +
		"c: 2\n" +
		"\nVoynich Symbol to Latin Letter Mapping Based on Frequency:\n" +
		"Symbol 'a' maps to Latin letter 'e'\n" +
		"Symbol 'b' maps to Latin letter 't'\n" +
		"Symbol '\n' maps to Latin letter 'a'\n" +
		"Symbol 'c' maps to Latin letter 'o'\n"
	assert.Equal(t, want, out.String())
}

func TestWriteEscape(t *testing.T) {
	text := "a\u00a0a\tb \n"
	a := freq.Analyze(text, freq.Options{})

	var out strings.Builder
	require.NoError(t, Write(&out, text, a, Options{Escape: true}))

	got := out.String()
	assert.Contains(t, got, "\na: 2\n")
	assert.Contains(t, got, "\n\\x20: 1\n")
	assert.Contains(t, got, "\n\\t: 1\n")
	assert.Contains(t, got, "\n\\u00a0: 1\n")
	assert.Contains(t, got, "\n\\n: 1\n")
	assert.Contains(t, got, "Symbol '\\x20' maps to Latin letter 'i'\n")
	// raw content is never escaped
	assert.Contains(t, got, ContentHeader+"\n"+text+"\n")
}

func TestWriteEmpty(t *testing.T) {
	a := freq.Analyze("", freq.Options{})

	var out strings.Builder
	require.NoError(t, Write(&out, "", a, Options{}))
	assert.Equal(t, ContentHeader+"\n\n\n"+FrequencyHeader+"\n\n"+MappingHeader+"\n", out.String())
}

func TestWriteDecipher(t *testing.T) {
	text := "xxy, z\n"
	a := freq.Analyze(text, freq.Options{Alphabet: freq.MustParseAlphabet("abc")})

	var out strings.Builder
	require.NoError(t, Write(&out, text, a, Options{Decipher: true}))
	assert.True(t, strings.HasSuffix(out.String(), "\n"+DecipherHeader+"\naab,cz\n"), out.String())

	out.Reset()
	require.NoError(t, Write(&out, text, a, Options{}))
	assert.NotContains(t, out.String(), DecipherHeader)
}

func TestWriteMappingLimit(t *testing.T) {
	var sb strings.Builder
	for i, r := range "ABCDEFGHIJKLMNOPQRSTUVWXYZabcd" {
		sb.WriteString(strings.Repeat(string(r), 40-i))
	}
	text := sb.String()
	a := freq.Analyze(text, freq.Options{})

	var out strings.Builder
	require.NoError(t, Write(&out, text, a, Options{}))
	assert.Equal(t, 26, strings.Count(out.String(), "maps to Latin letter"))
	assert.Equal(t, 30, a.Counts.Len())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	a := freq.Analyze("abc", freq.Options{})
	err := Write(failWriter{}, "abc", a, Options{})
	assert.ErrorContains(t, err, "disk full")
}
