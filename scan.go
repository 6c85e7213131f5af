// seehuhn.de/go/cube - read and write CUBE colour lookup tables
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cube

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineLength is the longest line the scanner accepts.
const maxLineLength = 1 << 20

// lineScanner returns the logical lines of a CUBE file.
// Comment lines and blank lines are skipped.
type lineScanner struct {
	s *bufio.Scanner

	lineNo int // physical line number of the line most recently returned

	last      string
	lastNo    int
	haveSaved bool
}

func newLineScanner(r io.Reader) *lineScanner {
	// Strip a UTF-8 byte order mark, and convert UTF-16 input to UTF-8
	// if it starts with a byte order mark.
	r = transform.NewReader(r, unicode.BOMOverride(transform.Nop))

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &lineScanner{s: s}
}

// next returns the next logical line.
// At the end of input, io.EOF is returned.
func (ls *lineScanner) next() (string, error) {
	if ls.haveSaved {
		ls.haveSaved = false
		ls.lineNo = ls.lastNo
		return ls.last, nil
	}

	for ls.s.Scan() {
		ls.lineNo++
		line := ls.s.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		ls.last = line
		ls.lastNo = ls.lineNo
		return line, nil
	}
	if err := ls.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// unread arranges for the next call to next to return the most recently
// returned line again.  Only one line can be pushed back.
func (ls *lineScanner) unread() {
	ls.haveSaved = true
}

// keywordData checks whether line starts with the given keyword.
// If so, the remainder of the line, with surrounding white space
// removed, is returned.
func keywordData(line, keyword string) (string, bool) {
	data, ok := strings.CutPrefix(line, keyword)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(data), true
}

// parseRGB parses three white-space separated floating point numbers.
func parseRGB(s string) (r, g, b float64, err error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: expected 3 values, found %d",
			ErrMalformedValue, len(fields))
	}

	var rgb [3]float64
	for i, f := range fields {
		rgb[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q is not a number",
				ErrMalformedValue, f)
		}
	}
	return rgb[0], rgb[1], rgb[2], nil
}

// parseInt parses a single decimal integer.
func parseInt(s string) (int, error) {
	x, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedValue, s)
	}
	return x, nil
}

// formatFloat formats x using '.' as the decimal separator and without an
// exponent.  If precision is positive, at most precision digits are written
// after the decimal point and trailing zeros are removed.  Otherwise the
// shortest representation which parses back to x is used.
func formatFloat(x float64, precision int) string {
	if precision <= 0 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	out := strconv.FormatFloat(x, 'f', precision, 64)
	if strings.Contains(out, ".") {
		out = strings.TrimRight(out, "0")
		out = strings.TrimSuffix(out, ".")
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

func formatRGB(r, g, b float64, precision int) string {
	return formatFloat(r, precision) + " " +
		formatFloat(g, precision) + " " +
		formatFloat(b, precision)
}
