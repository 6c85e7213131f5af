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

// grid keeps track of the current position in the sample grid.
// Positions are visited in raster order: X varies fastest, then Y, then Z.
// For one-dimensional tables only X is used.
type grid struct {
	Dimensions int
	Size       int

	X, Y, Z int
}

// Done reports whether all grid positions have been visited.
// A grid with unsupported dimensions is always done.
func (g *grid) Done() bool {
	switch g.Dimensions {
	case Dim1D:
		return g.X >= g.Size
	case Dim3D:
		return g.Z >= g.Size
	default:
		return true
	}
}

// advance moves to the next grid position.
func (g *grid) advance() {
	g.X++
	if g.Dimensions != Dim3D || g.X < g.Size {
		return
	}
	g.X = 0
	g.Y++
	if g.Y == g.Size {
		g.Y = 0
		g.Z++
	}
}
