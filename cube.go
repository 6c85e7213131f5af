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

// Package cube reads and writes colour lookup tables in the CUBE text format.
//
// A CUBE file starts with a header of keyword lines (TITLE, LUT_1D_SIZE,
// LUT_3D_SIZE, DOMAIN_MIN, DOMAIN_MAX, and the older LUT_1D_INPUT_RANGE and
// LUT_3D_INPUT_RANGE), followed by one RGB sample per line.  Samples are
// stored in raster order: the red index varies fastest, then green, then
// blue.  Lines starting with '#' and blank lines are ignored everywhere.
//
// # Reading
//
// Use [Open] or [NewReader] to parse the header, then call
// [Reader.ReadColor] until [Reader.Done] reports true:
//
//	r, err := cube.Open("film.cube")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	for !r.Done() {
//	    red, green, blue, err := r.ReadColor()
//	    ...
//	}
//
// # Writing
//
// Use [Create] or [NewWriter], fill in the header fields, then call
// [Writer.WriteHeader] followed by [Writer.WriteColor] until
// [Writer.NeedsMoreValues] returns false:
//
//	w, err := cube.Create("out.cube")
//	if err != nil {
//	    // handle error
//	}
//	defer w.Close()
//	w.Dimensions = cube.Dim3D
//	w.Size = 17
//	err = w.WriteHeader()
//	...
//
// [Decode] and [Table.Encode] read and write a complete table in one call.
package cube

import (
	"fmt"
	"math"
)

// Supported values for [Header.Dimensions].
const (
	Dim1D = 1 // one transfer curve, applied to each channel
	Dim3D = 3 // a full RGB cube
)

// Header contains the metadata of a CUBE file.
type Header struct {
	// Title is the value of the TITLE keyword, without the surrounding
	// quotes.  An empty title is not written.
	Title string

	// Dimensions is either [Dim1D] or [Dim3D].
	Dimensions int

	// Size is the number of samples along each axis.
	Size int

	// DomainMin and DomainMax give the input range of the table,
	// for the red, green and blue channel.
	DomainMin [3]float64
	DomainMax [3]float64

	// InputMin and InputMax hold the value of the legacy
	// LUT_1D_INPUT_RANGE and LUT_3D_INPUT_RANGE keywords.
	InputMin [3]float64
	InputMax [3]float64
}

// NewHeader returns a header with the default input range [0, 1] for all
// channels.
func NewHeader() Header {
	h := Header{}
	h.SetUniformRange(0, 1)
	return h
}

// SetUniformRange sets the input range of all three channels to [lo, hi].
// Both the domain and the legacy input range are updated.
func (h *Header) SetUniformRange(lo, hi float64) {
	for i := 0; i < 3; i++ {
		h.DomainMin[i] = lo
		h.DomainMax[i] = hi
		h.InputMin[i] = lo
		h.InputMax[i] = hi
	}
}

// NumSamples returns the number of RGB samples in the body of the file.
// The result is 0 if the dimensions are not supported, and -1 if the
// number of samples does not fit into an int.
func (h *Header) NumSamples() int {
	switch h.Dimensions {
	case Dim1D:
		return h.Size
	case Dim3D:
		if h.Size > 0 && h.Size > math.MaxInt/h.Size/h.Size {
			return -1
		}
		return h.Size * h.Size * h.Size
	default:
		return 0
	}
}

// check verifies the structural invariants of the header.
func (h *Header) check() error {
	if h.Dimensions != Dim1D && h.Dimensions != Dim3D {
		return fmt.Errorf("%w: %d", ErrInvalidDimensions, h.Dimensions)
	}
	if h.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, h.Size)
	}
	return nil
}

func (h *Header) String() string {
	title := h.Title
	if title == "" {
		title = "(untitled)"
	}
	return fmt.Sprintf("%dD LUT, size %d, %s", h.Dimensions, h.Size, title)
}
