// Package input loads the text to analyze and reads the operator's answer
// to the path prompt.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/mhr3/voynich/utf8"
)

const readChunk = 64 * 1024

var (
	// ErrRead matches every *ReadError.
	ErrRead = errors.New("read failure")
	// ErrInvalidText is wrapped when the file is not valid UTF-8.
	ErrInvalidText = errors.New("invalid UTF-8 text")
	// ErrNoInput is returned by Prompt when the input ends before a line.
	ErrNoInput = errors.New("no input")
)

// ReadError reports that the file at Path could not be loaded.
// Any failure while opening, reading or decoding the file is a ReadError.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrRead) true for every ReadError.
func (e *ReadError) Is(target error) bool {
	return target == ErrRead
}

// Reader loads text files line by line.
type Reader struct {
	logger *zap.Logger
}

// NewReader returns a Reader that logs to logger. A nil logger disables
// logging.
func NewReader(logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{logger: logger}
}

// ReadText returns the full content of the file at path. Every line,
// including the last one, is terminated by a single '\n' regardless of the
// terminator used in the file ("\n", "\r\n" or "\r"). The read is all or
// nothing: on error no partial content is returned.
func (r *Reader) ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	text, lines, err := readLines(f)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if !utf8.ValidString(text) {
		i := utf8.IndexInvalid(text)
		return "", &ReadError{Path: path, Err: fmt.Errorf("%w at byte %d", ErrInvalidText, i)}
	}

	r.logger.Debug("loaded text",
		zap.String("path", path),
		zap.Int("bytes", len(text)),
		zap.Int("lines", lines),
	)
	return text, nil
}

// ReadText loads path with a Reader that does not log.
func ReadText(path string) (string, error) {
	return NewReader(nil).ReadText(path)
}

// readLines copies rd into a string, rewriting "\r\n" and a lone '\r' to
// '\n' and terminating an unterminated last line. Lines have no length limit.
func readLines(rd io.Reader) (string, int, error) {
	var b strings.Builder
	buf := make([]byte, readChunk)
	lines := 0
	open := false    // bytes written since the last terminator
	afterCR := false // previous chunk ended in '\r'
	for {
		n, err := rd.Read(buf)
		chunk := buf[:n]
		for len(chunk) > 0 {
			if afterCR {
				afterCR = false
				if chunk[0] == '\n' {
					chunk = chunk[1:]
					continue
				}
			}
			i := bytes.IndexAny(chunk, "\r\n")
			if i < 0 {
				b.Write(chunk)
				open = true
				break
			}
			b.Write(chunk[:i])
			b.WriteByte('\n')
			lines++
			open = false
			afterCR = chunk[i] == '\r'
			chunk = chunk[i+1:]
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", 0, err
		}
	}
	if open {
		b.WriteByte('\n')
		lines++
	}
	return b.String(), lines, nil
}

// Prompt writes message to w and reads a single line from r. The line
// terminator is stripped.
func Prompt(r io.Reader, w io.Writer, message string) (string, error) {
	if _, err := io.WriteString(w, message); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	if err != nil && line == "" {
		return "", ErrNoInput
	}
	return strings.TrimRight(line, "\r\n"), nil
}
