package console

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// lineReader reads one trimmed line of patron input at a time.
type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// next returns io.EOF once input is exhausted.
func (r *lineReader) next() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

// parseNumber accepts a plain integer; anything else reports false.
func parseNumber(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
