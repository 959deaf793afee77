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

package testcases

// Cases holds the concrete scenarios from the core's testable-property
// catalogue: a unit square aligned to the grid, a pair of complementary
// diagonal triangles, a donut filled by a matching plug, a polygon that
// extends past the grid boundary, a sub-cell sliver, a small square wholly
// inside one cell, and two rectangles sharing a mid-cell vertical edge.
var Cases = []Case{
	{
		Name: "unit_square_on_integer_grid",
		Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10,
		Ncols: 20, Nrows: 20,
		Polygons: []*Polygon{
			polygon(ring(pt(1, 1), pt(9, 1), pt(9, 9), pt(1, 9))),
		},
	},
	{
		Name: "diagonal_triangle_lower",
		Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10,
		Ncols: 20, Nrows: 20,
		Polygons: []*Polygon{
			polygon(ring(pt(0, 0), pt(10, 0), pt(10, 10))),
		},
	},
	{
		Name: "diagonal_triangle_upper",
		Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10,
		Ncols: 20, Nrows: 20,
		Polygons: []*Polygon{
			polygon(ring(pt(0, 0), pt(10, 10), pt(0, 10))),
		},
	},
	{
		Name: "donut_filled_by_plug",
		Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10,
		Ncols: 20, Nrows: 20,
		Polygons: []*Polygon{
			polygon(
				ring(pt(1, 1), pt(9, 1), pt(9, 9), pt(1, 9)),
				ring(pt(3, 3), pt(7, 3), pt(7, 7), pt(3, 7)),
			),
			polygon(ring(pt(3, 3), pt(7, 3), pt(7, 7), pt(3, 7))),
		},
	},
	{
		Name: "polygon_extends_beyond_grid",
		Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10,
		Ncols: 10, Nrows: 10,
		Polygons: []*Polygon{
			polygon(ring(pt(-1, -1), pt(11, -1), pt(11, 11), pt(-1, 11))),
		},
	},
	{
		Name: "sub_cell_sliver",
		Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10,
		Ncols: 10, Nrows: 10,
		Polygons: []*Polygon{
			polygon(ring(pt(2, 4.95), pt(8, 4.95), pt(8, 5.05), pt(2, 5.05))),
		},
	},
	{
		Name: "small_square_wholly_inside_one_cell",
		Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10,
		Ncols: 10, Nrows: 10,
		Polygons: []*Polygon{
			polygon(ring(pt(3.3, 3.3), pt(3.7, 3.3), pt(3.7, 3.7), pt(3.3, 3.7))),
		},
	},
	{
		Name: "adjacent_rectangles_shared_vertical_edge",
		Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10,
		Ncols: 12, Nrows: 12,
		Polygons: []*Polygon{
			polygon(ring(pt(0, 0), pt(5, 0), pt(5, 10), pt(0, 10))),
			polygon(ring(pt(5, 0), pt(10, 0), pt(10, 10), pt(5, 10))),
		},
	},
}
