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

// Package scanburn computes the exact intersection of planar polygons with
// a regular rectangular grid.
//
// For every grid cell touched by a polygon it reports the fraction of the
// cell's area covered: fully-covered interior cells are run-length encoded
// ([Run]), partially-covered boundary cells are reported individually
// ([Edge]). Memory use scales with a polygon's perimeter in grid cells, not
// with the grid's area, so the same core handles intersection against
// tile-sized grids where a dense coverage raster would not fit in memory.
//
// The algorithm is a scanline sweep: a ring walker traces each ring through
// the cells it touches, an analytical coverage kernel computes the exact
// covered fraction of each touched cell from its recorded traversals, a
// winding ledger tracks how ring crossings change the inside/outside count
// along each row, and a row sweep emitter turns the per-row ledger into
// runs and edges.
package scanburn
