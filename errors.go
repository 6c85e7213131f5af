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
	"errors"
	"strconv"
)

// Errors returned by the reader and the writer.  Use [errors.Is] to test
// for these, since they are usually wrapped in a [HeaderError] or a
// [LineError].
var (
	ErrInvalidDimensions = errors.New("unsupported number of dimensions")
	ErrInvalidSize       = errors.New("invalid LUT size")
	ErrUnexpectedEOF     = errors.New("unexpected end of file")
	ErrMalformedValue    = errors.New("malformed value")
	ErrAlreadyComplete   = errors.New("all values have been processed")
	ErrAlreadyWritten    = errors.New("header is already written")
	ErrHeaderNotWritten  = errors.New("header must be written first")
	ErrSampleCount       = errors.New("wrong number of samples")
)

// HeaderError indicates that the header of a CUBE file could not be parsed.
// Err gives the reason, Line the line number (starting at 1) where the
// problem was detected.  Line is 0 for problems which only become apparent
// at the end of the header, for example a missing size keyword.
type HeaderError struct {
	Line int
	Err  error
}

func (err *HeaderError) Error() string {
	msg := "cube: invalid header"
	if err.Line > 0 {
		msg += " (line " + strconv.Itoa(err.Line) + ")"
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *HeaderError) Unwrap() error {
	return err.Err
}

// LineError indicates a problem with the sample data on a given line.
type LineError struct {
	Line int
	Err  error
}

func (err *LineError) Error() string {
	return "cube: line " + strconv.Itoa(err.Line) + ": " + err.Err.Error()
}

func (err *LineError) Unwrap() error {
	return err.Err
}
