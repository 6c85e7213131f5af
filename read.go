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
	"fmt"
	"io"
	"os"
	"strings"
)

// Reader reads the samples of a CUBE file one at a time.
// A Reader is not safe for concurrent use.
type Reader struct {
	header Header
	grid   grid

	lines  *lineScanner
	closer io.Closer
}

// Open opens the named file and reads the CUBE header.
// The file is closed again if the header cannot be read.
// Otherwise, the caller must call [Reader.Close] when done.
func Open(name string) (*Reader, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(fd)
	if err != nil {
		fd.Close()
		return nil, err
	}
	r.closer = fd
	return r, nil
}

// NewReader reads the CUBE header from r.  The returned Reader can then be
// used to read the samples.
//
// If the header is invalid, the error is a [*HeaderError].
// The caller remains responsible for closing r.
func NewReader(r io.Reader) (*Reader, error) {
	res := &Reader{
		header: NewHeader(),
		lines:  newLineScanner(r),
	}
	err := res.readHeader()
	if err != nil {
		return nil, err
	}
	res.grid = grid{
		Dimensions: res.header.Dimensions,
		Size:       res.header.Size,
	}
	return res, nil
}

// Header returns the information from the file header.
func (r *Reader) Header() Header {
	return r.header
}

// Position returns the grid coordinates of the next sample to be read.
func (r *Reader) Position() (x, y, z int) {
	return r.grid.X, r.grid.Y, r.grid.Z
}

// Done reports whether all samples have been read.
func (r *Reader) Done() bool {
	return r.grid.Done()
}

// ReadColor reads the next sample from the file.
func (r *Reader) ReadColor() (red, green, blue float64, err error) {
	if r.grid.Done() {
		return 0, 0, 0, ErrAlreadyComplete
	}

	line, err := r.lines.next()
	if err == io.EOF {
		return 0, 0, 0, &LineError{Line: r.lines.lineNo + 1, Err: ErrUnexpectedEOF}
	} else if err != nil {
		return 0, 0, 0, err
	}

	red, green, blue, err = parseRGB(line)
	if err != nil {
		return 0, 0, 0, &LineError{Line: r.lines.lineNo, Err: err}
	}

	r.grid.advance()
	return red, green, blue, nil
}

// Close releases the file opened by [Open].
// For readers created by [NewReader], Close does nothing.
// Calling Close more than once is allowed.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

func (r *Reader) readHeader() error {
	for {
		more, err := r.readHeaderLine()
		if err != nil {
			return &HeaderError{Line: r.lines.lineNo, Err: err}
		}
		if !more {
			break
		}
	}

	if err := r.header.check(); err != nil {
		return &HeaderError{Err: err}
	}
	return nil
}

// readHeaderLine processes one line of the header.
// If the line is not a header line, it is pushed back and false is returned.
func (r *Reader) readHeaderLine() (bool, error) {
	line, err := r.lines.next()
	if err == io.EOF {
		return false, nil
	} else if err != nil {
		return false, err
	}

	h := &r.header

	if title, ok := keywordData(line, "TITLE"); ok {
		if len(title) >= 2 && strings.HasPrefix(title, `"`) && strings.HasSuffix(title, `"`) {
			title = title[1 : len(title)-1]
		}
		h.Title = title
		return true, nil
	}

	if data, ok := keywordData(line, "LUT_1D_SIZE"); ok {
		size, err := parseInt(data)
		if err != nil {
			return false, fmt.Errorf("LUT_1D_SIZE: %w", err)
		}
		h.Dimensions = Dim1D
		h.Size = size
		return true, nil
	}

	if data, ok := keywordData(line, "LUT_3D_SIZE"); ok {
		size, err := parseInt(data)
		if err != nil {
			return false, fmt.Errorf("LUT_3D_SIZE: %w", err)
		}
		h.Dimensions = Dim3D
		h.Size = size
		return true, nil
	}

	data, ok := keywordData(line, "LUT_1D_INPUT_RANGE")
	if !ok {
		data, ok = keywordData(line, "LUT_3D_INPUT_RANGE")
	}
	if ok {
		lo, hi, err := parseInputRange(data)
		if err != nil {
			return false, err
		}
		h.SetUniformRange(float64(lo), float64(hi))
		return true, nil
	}

	if data, ok := keywordData(line, "DOMAIN_MIN"); ok {
		red, green, blue, err := parseRGB(data)
		if err != nil {
			return false, fmt.Errorf("DOMAIN_MIN: %w", err)
		}
		h.DomainMin = [3]float64{red, green, blue}
		return true, nil
	}

	if data, ok := keywordData(line, "DOMAIN_MAX"); ok {
		red, green, blue, err := parseRGB(data)
		if err != nil {
			return false, fmt.Errorf("DOMAIN_MAX: %w", err)
		}
		h.DomainMax = [3]float64{red, green, blue}
		return true, nil
	}

	// This is the first line of the body.
	r.lines.unread()
	return false, nil
}

func parseInputRange(data string) (lo, hi int, err error) {
	fields := strings.Fields(data)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("input range: %w: expected 2 values, found %d",
			ErrMalformedValue, len(fields))
	}
	lo, err = parseInt(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("input range: %w", err)
	}
	hi, err = parseInt(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("input range: %w", err)
	}
	return lo, hi, nil
}
