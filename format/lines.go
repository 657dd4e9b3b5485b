// SPDX-License-Identifier: MIT

package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// line is one significant (non-blank, non-comment) input line.
type line struct {
	no     int
	values []int
}

// readLines splits r into significant lines of integers.
func readLines(r io.Reader) ([]line, error) {
	var out []line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	no := 0
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		vals := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrSyntax, no, f)
			}
			vals[i] = v
		}
		out = append(out, line{no: no, values: vals})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("format: read: %w", err)
	}

	return out, nil
}

// tokens walks the integers of a line list in order, remembering the line of
// each value for error messages.
type tokens struct {
	lines []line
	li    int // current line
	vi    int // next value in current line
	last  int // line number of the last value returned
}

// next returns the next integer, or ErrSyntax at end of input.
func (t *tokens) next() (int, error) {
	for t.li < len(t.lines) && t.vi >= len(t.lines[t.li].values) {
		t.li++
		t.vi = 0
	}
	if t.li >= len(t.lines) {
		return 0, fmt.Errorf("%w: line %d: unexpected end of input", ErrSyntax, t.last)
	}
	l := t.lines[t.li]
	v := l.values[t.vi]
	t.vi++
	t.last = l.no

	return v, nil
}

// done reports an error if values remain.
func (t *tokens) done() error {
	for ; t.li < len(t.lines); t.li, t.vi = t.li+1, 0 {
		if t.vi < len(t.lines[t.li].values) {
			return fmt.Errorf("%w: line %d: trailing data", ErrSyntax, t.lines[t.li].no)
		}
	}

	return nil
}
