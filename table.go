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
)

// Table is a complete colour lookup table held in memory.
type Table struct {
	Header

	// Values contains the samples in raster order.
	// For a valid table, the length equals Header.NumSamples().
	Values [][3]float64
}

// Decode reads a complete CUBE file.
func Decode(r io.Reader) (*Table, error) {
	cr, err := NewReader(r)
	if err != nil {
		return nil, err
	}

	t := &Table{
		Header: cr.Header(),
		Values: make([][3]float64, 0, preallocSize(cr.header.NumSamples())),
	}
	for !cr.Done() {
		red, green, blue, err := cr.ReadColor()
		if err != nil {
			return nil, err
		}
		t.Values = append(t.Values, [3]float64{red, green, blue})
	}
	return t, nil
}

// Encode writes the table in CUBE format.
func (t *Table) Encode(w io.Writer) error {
	if n := t.NumSamples(); len(t.Values) != n {
		return fmt.Errorf("%w: have %d, need %d", ErrSampleCount, len(t.Values), n)
	}

	cw := NewWriter(w)
	cw.Header = t.Header
	err := cw.WriteHeader()
	if err != nil {
		return err
	}
	for _, v := range t.Values {
		err = cw.WriteColor(v[0], v[1], v[2])
		if err != nil {
			return err
		}
	}
	if cw.NeedsMoreValues() {
		return fmt.Errorf("%w: have %d", ErrSampleCount, len(t.Values))
	}
	return cw.Close()
}

// Index returns the position of the sample with grid coordinates (x, y, z)
// in t.Values.  For one-dimensional tables, y and z must be zero.
func (t *Table) Index(x, y, z int) int {
	return (z*t.Size+y)*t.Size + x
}

// preallocSize limits the capacity preallocated for large tables.
func preallocSize(n int) int {
	const maxPrealloc = 1 << 16
	return max(0, min(n, maxPrealloc))
}
