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
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteExample(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.Title = "My LUT"
	w.Dimensions = Dim3D
	w.Size = 2

	err := w.WriteHeader()
	if err != nil {
		t.Fatal(err)
	}
	for z := 0; z < 2; z++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				if !w.NeedsMoreValues() {
					t.Fatalf("NeedsMoreValues false at (%d,%d,%d)", x, y, z)
				}
				err := w.WriteColor(float64(x), float64(y), float64(z))
				if err != nil {
					t.Fatal(err)
				}
			}
		}
	}
	if w.NeedsMoreValues() {
		t.Error("NeedsMoreValues true after last sample")
	}
	err = w.WriteColor(0, 0, 0)
	if !errors.Is(err, ErrAlreadyComplete) {
		t.Errorf("got %v, want %v", err, ErrAlreadyComplete)
	}
	err = w.Close()
	if err != nil {
		t.Fatal(err)
	}

	want := "TITLE \"My LUT\"\n" + example3D
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("output differs (-want +got):\n%s", d)
	}
}

func TestWriteHeaderLines(t *testing.T) {
	cases := []struct {
		name  string
		setup func(w *Writer)
		want  string
	}{
		{
			name: "no title",
			setup: func(w *Writer) {
				w.Dimensions = Dim1D
				w.Size = 1024
			},
			want: "LUT_1D_SIZE 1024\nDOMAIN_MIN 0 0 0\nDOMAIN_MAX 1 1 1\n",
		},
		{
			name: "blank title",
			setup: func(w *Writer) {
				w.Title = "  "
				w.Dimensions = Dim1D
				w.Size = 2
			},
			want: "TITLE \"  \"\nLUT_1D_SIZE 2\nDOMAIN_MIN 0 0 0\nDOMAIN_MAX 1 1 1\n",
		},
		{
			name: "domain",
			setup: func(w *Writer) {
				w.Dimensions = Dim3D
				w.Size = 33
				w.DomainMin = [3]float64{-0.125, 0, 0.5}
				w.DomainMax = [3]float64{1.5, 100, 1e6}
			},
			want: "LUT_3D_SIZE 33\nDOMAIN_MIN -0.125 0 0.5\nDOMAIN_MAX 1.5 100 1000000\n",
		},
		{
			name: "uniform range",
			setup: func(w *Writer) {
				w.Dimensions = Dim3D
				w.Size = 2
				w.SetUniformRange(0, 4)
			},
			want: "LUT_3D_SIZE 2\nDOMAIN_MIN 0 0 0\nDOMAIN_MAX 4 4 4\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := NewWriter(buf)
			c.setup(w)
			err := w.WriteHeader()
			if err != nil {
				t.Fatal(err)
			}
			err = w.Flush()
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, buf.String()); d != "" {
				t.Errorf("output differs (-want +got):\n%s", d)
			}
		})
	}
}

func TestWriterErrors(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.Dimensions = Dim1D
	w.Size = 2

	err := w.WriteColor(0, 0, 0)
	if !errors.Is(err, ErrHeaderNotWritten) {
		t.Errorf("got %v, want %v", err, ErrHeaderNotWritten)
	}
	err = w.WriteHeader()
	if err != nil {
		t.Fatal(err)
	}
	err = w.WriteHeader()
	if !errors.Is(err, ErrAlreadyWritten) {
		t.Errorf("got %v, want %v", err, ErrAlreadyWritten)
	}

	cases := []struct {
		title string
		dims  int
		size  int
		want  error
	}{
		{"", 0, 2, ErrInvalidDimensions},
		{"", 2, 2, ErrInvalidDimensions},
		{"", 3, 0, ErrInvalidSize},
		{"", 1, -1, ErrInvalidSize},
		{"two\nlines", 3, 2, ErrMalformedValue},
	}
	for i, c := range cases {
		buf := &bytes.Buffer{}
		w := NewWriter(buf)
		w.Title = c.title
		w.Dimensions = c.dims
		w.Size = c.size
		err := w.WriteHeader()
		if !errors.Is(err, c.want) {
			t.Errorf("%d: got %v, want %v", i, err, c.want)
		}
		w.Flush()
		if buf.Len() != 0 {
			t.Errorf("%d: unexpected output %q", i, buf.String())
		}
	}
}

func TestWriteAfterClose(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.Dimensions = Dim1D
	w.Size = 2
	err := w.WriteHeader()
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close()
	if err != nil {
		t.Fatal(err)
	}
	want := buf.String()

	err = w.WriteColor(1, 1, 1)
	if !errors.Is(err, os.ErrClosed) {
		t.Errorf("WriteColor: got %v, want %v", err, os.ErrClosed)
	}
	if x, _, _ := w.Position(); x != 0 {
		t.Errorf("position advanced to %d", x)
	}

	w2 := NewWriter(&bytes.Buffer{})
	w2.Dimensions = Dim1D
	w2.Size = 2
	w2.Close()
	err = w2.WriteHeader()
	if !errors.Is(err, os.ErrClosed) {
		t.Errorf("WriteHeader: got %v, want %v", err, os.ErrClosed)
	}

	if got := buf.String(); got != want {
		t.Errorf("output changed after Close: %q", got)
	}
}

func TestNeedsMoreValues(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	if w.NeedsMoreValues() {
		t.Error("writer without dimensions needs more values")
	}
	w.Dimensions = Dim1D
	w.Size = 3
	if !w.NeedsMoreValues() {
		t.Error("writer without samples needs no more values")
	}
	err := w.WriteHeader()
	if err != nil {
		t.Fatal(err)
	}

	// Changes after the header has been written are ignored.
	w.Size = 1

	n := 0
	for w.NeedsMoreValues() {
		err := w.WriteColor(0, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		n++
	}
	if n != 3 {
		t.Errorf("wrote %d samples, want 3", n)
	}
}

func TestPrecision(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.Dimensions = Dim1D
	w.Size = 3
	w.Precision = 3
	w.DomainMax = [3]float64{1.0004, 2, 3.25}

	err := w.WriteHeader()
	if err != nil {
		t.Fatal(err)
	}
	samples := [][3]float64{
		{0.123456, 1, -0.0001},
		{2.5, 0.9999, 1e-7},
		{-1.5, 1.0 / 3, 10},
	}
	for _, s := range samples {
		err := w.WriteColor(s[0], s[1], s[2])
		if err != nil {
			t.Fatal(err)
		}
	}
	err = w.Close()
	if err != nil {
		t.Fatal(err)
	}

	want := "LUT_1D_SIZE 3\nDOMAIN_MIN 0 0 0\nDOMAIN_MAX 1 2 3.25\n" +
		"0.123 1 0\n2.5 1 0\n-1.5 0.333 10\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("output differs (-want +got):\n%s", d)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, dims := range []int{Dim1D, Dim3D} {
		for _, size := range []int{1, 2, 5} {
			in := NewHeader()
			in.Title = "round trip"
			in.Dimensions = dims
			in.Size = size
			in.DomainMin = [3]float64{-0.1, 0, 0.05}
			in.DomainMax = [3]float64{1, 1.25, 7}

			var values [][3]float64
			for i, n := 0, in.NumSamples(); i < n; i++ {
				x := float64(i)
				values = append(values, [3]float64{
					math.Sin(x), math.Cos(x) / 3, x * 1e-5,
				})
			}

			buf := &bytes.Buffer{}
			w := NewWriter(buf)
			w.Header = in
			err := w.WriteHeader()
			if err != nil {
				t.Fatal(err)
			}
			for _, v := range values {
				err := w.WriteColor(v[0], v[1], v[2])
				if err != nil {
					t.Fatal(err)
				}
			}
			if w.NeedsMoreValues() {
				t.Fatalf("%dD/%d: writer needs more values", dims, size)
			}
			err = w.Close()
			if err != nil {
				t.Fatal(err)
			}

			r, err := NewReader(buf)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(in, r.Header()); d != "" {
				t.Errorf("%dD/%d: header differs (-want +got):\n%s", dims, size, d)
			}
			var got [][3]float64
			for !r.Done() {
				red, green, blue, err := r.ReadColor()
				if err != nil {
					t.Fatal(err)
				}
				got = append(got, [3]float64{red, green, blue})
			}
			if d := cmp.Diff(values, got); d != "" {
				t.Errorf("%dD/%d: samples differ (-want +got):\n%s", dims, size, d)
			}
		}
	}
}

func TestCreate(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.cube")

	w, err := Create(name)
	if err != nil {
		t.Fatal(err)
	}
	w.Dimensions = Dim1D
	w.Size = 2
	err = w.WriteHeader()
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []float64{0, 1} {
		err := w.WriteColor(v, v, v)
		if err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	want := "LUT_1D_SIZE 2\nDOMAIN_MIN 0 0 0\nDOMAIN_MAX 1 1 1\n0 0 0\n1 1 1\n"
	if got := string(data); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("missing final newline")
	}
}
