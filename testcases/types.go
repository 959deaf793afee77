// seehuhn.de/go/scanburn - polygon/grid scanline intersection core
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

// Package testcases holds the fixed polygon/grid scenarios from the core's
// testable-property catalogue, shared between the unit tests and the dense
// cross-validation tests.
package testcases

import "seehuhn.de/go/scanburn"

// Polygon aliases the core's reference Geometry implementation so fixture
// tables below can name it without qualification.
type Polygon = scanburn.Polygon

// Case is a single named polygon-against-grid scenario.
type Case struct {
	Name                   string
	Xmin, Ymin, Xmax, Ymax float64
	Ncols, Nrows           int
	Polygons               []*Polygon
}

// pt builds a Coord from x, y.
func pt(x, y float64) scanburn.Coord {
	return scanburn.Coord{X: x, Y: y}
}

// ring closes coords into a SimpleRing, appending the first point again if
// the caller did not already close it, and derives orientation from the
// signed area.
func ring(coords ...scanburn.Coord) scanburn.SimpleRing {
	if len(coords) == 0 {
		return scanburn.NewSimpleRingAuto(nil)
	}
	first, last := coords[0], coords[len(coords)-1]
	if first.X != last.X || first.Y != last.Y {
		coords = append(append([]scanburn.Coord{}, coords...), first)
	}
	return scanburn.NewSimpleRingAuto(coords)
}

// polygon builds a Polygon with the given exterior ring and holes.
func polygon(exterior scanburn.SimpleRing, holes ...scanburn.SimpleRing) *scanburn.Polygon {
	return &scanburn.Polygon{Exterior: exterior, Holes: holes}
}
