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
	"os"
	"strconv"
	"strings"
)

// Writer writes a CUBE file.
//
// The header fields must be filled in before [Writer.WriteHeader] is called.
// Afterwards, changes to the header fields have no effect.
// A Writer is not safe for concurrent use.
type Writer struct {
	Header

	// Precision, if positive, limits the number of digits written after the
	// decimal point.  By default, the shortest representation which reads
	// back as the same float64 value is used.
	Precision int

	out    *bufio.Writer
	closer io.Closer

	grid          grid
	headerWritten bool
	closed        bool
}

// Create creates the named file and returns a Writer for it.
// The caller must call [Writer.Close] to flush the output and to close the
// file.
func Create(name string) (*Writer, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	w := NewWriter(fd)
	w.closer = fd
	return w, nil
}

// NewWriter returns a Writer which writes to w.
// Output is buffered; call [Writer.Flush] or [Writer.Close] at the end.
// Closing the Writer does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Header: NewHeader(),
		out:    bufio.NewWriter(w),
	}
}

// WriteHeader writes the header lines.  This must be called exactly once,
// before the first call to [Writer.WriteColor].
func (w *Writer) WriteHeader() error {
	if w.closed {
		return os.ErrClosed
	}
	if w.headerWritten {
		return ErrAlreadyWritten
	}
	if strings.ContainsAny(w.Title, "\r\n") {
		return fmt.Errorf("%w: line break in title", ErrMalformedValue)
	}

	if err := w.Header.check(); err != nil {
		return err
	}
	sizeKeyword := "LUT_3D_SIZE"
	if w.Dimensions == Dim1D {
		sizeKeyword = "LUT_1D_SIZE"
	}

	if w.Title != "" {
		w.out.WriteString("TITLE \"" + w.Title + "\"\n")
	}
	w.out.WriteString(sizeKeyword + " " + strconv.Itoa(w.Size) + "\n")
	w.out.WriteString("DOMAIN_MIN " + w.formatRGB(w.DomainMin) + "\n")
	_, err := w.out.WriteString("DOMAIN_MAX " + w.formatRGB(w.DomainMax) + "\n")
	if err != nil {
		return err
	}

	w.grid = grid{Dimensions: w.Dimensions, Size: w.Size}
	w.headerWritten = true
	return nil
}

// WriteColor writes the next sample.
func (w *Writer) WriteColor(red, green, blue float64) error {
	if w.closed {
		return os.ErrClosed
	}
	if !w.headerWritten {
		return ErrHeaderNotWritten
	}
	if w.grid.Done() {
		return ErrAlreadyComplete
	}

	_, err := w.out.WriteString(formatRGB(red, green, blue, w.Precision) + "\n")
	if err != nil {
		return err
	}
	w.grid.advance()
	return nil
}

// NeedsMoreValues reports whether more samples are required to complete the
// table.  Before the header is written, the answer is based on the current
// header fields.
func (w *Writer) NeedsMoreValues() bool {
	if !w.headerWritten {
		g := grid{Dimensions: w.Dimensions, Size: w.Size}
		return !g.Done()
	}
	return !w.grid.Done()
}

// Position returns the grid coordinates of the next sample to be written.
func (w *Writer) Position() (x, y, z int) {
	return w.grid.X, w.grid.Y, w.grid.Z
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.out.Flush()
}

// Close flushes the output.  If the Writer was created by [Create], the file
// is closed as well.  Calling Close more than once is allowed.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.out.Flush()
	if w.closer != nil {
		err2 := w.closer.Close()
		if err == nil {
			err = err2
		}
		w.closer = nil
	}
	return err
}

func (w *Writer) formatRGB(v [3]float64) string {
	return formatRGB(v[0], v[1], v[2], w.Precision)
}
