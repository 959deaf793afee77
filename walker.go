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

package scanburn

import "math"

// cellKey identifies a sub-grid cell by its (row, col) pair, including the
// one-cell padding border (row/col == -1 or Nrows/Ncols).
type cellKey struct{ row, col int }

// cellRecords is the per-polygon scratch state the ring walker writes into:
// every traversal recorded for every touched cell, keyed by sub-grid
// position. It is owned by a single driver invocation and discarded once
// the sweep for that polygon has run.
type cellRecords map[cellKey]*CellRecord

func (c cellRecords) record(sub *SubGrid, row, col int, tr Traversal) {
	k := cellKey{row, col}
	rec, ok := c[k]
	if !ok {
		rec = &CellRecord{Box: sub.CellBox(row, col)}
		c[k] = rec
	}
	rec.Traversals = append(rec.Traversals, tr)
}

// walkRing traces ring through the cells of sub, recording one Traversal
// per visit into cells. ringCoords is the ring's raw coordinate sequence
// (first == last); ccw reports whether it is already wound
// counterclockwise. Whether the ring is an exterior or a hole does not
// matter to the walker; the caller applies that sign when interpreting the
// recorded traversals (coverage sign, winding sign).
//
// The walker always proceeds CCW; a clockwise ring is reversed first.
//
// walkRing reports ErrNumericOverflow if any ring coordinate resolves to a
// cell index outside the range the walker can safely address (§7); the
// caller must abort the whole scan and ask for a smaller grid or a
// pre-clipped geometry, not merely skip this polygon.
func walkRing(sub *SubGrid, ringCoords []Coord, ccw bool, cells cellRecords) error {
	if len(ringCoords) < 2 {
		return nil
	}

	queue := make([]Coord, len(ringCoords))
	copy(queue, ringCoords)
	if !ccw {
		reverseCoords(queue)
	}

	for _, p := range queue {
		if _, _, ok := locate(sub, p); !ok {
			return ErrNumericOverflow
		}
	}

	row, col, ok := locate(sub, queue[0])
	if !ok {
		return ErrNumericOverflow
	}
	box := sub.CellBox(row, col)
	_, entrySide := classify(box, queue[0])

	tr := Traversal{Coords: []Coord{queue[0]}, EntrySide: entrySide}
	idx := 1

	for idx < len(queue) {
		p := queue[idx]
		box = sub.CellBox(row, col)
		inside, _ := classify(box, p)
		if inside {
			tr.Coords = append(tr.Coords, p)
			idx++
			continue
		}

		// OUTSIDE: cross using the previous *original* coordinate (not the
		// last stored traversal point) to avoid cancellation on tiny
		// geometry that has already accumulated several interior points.
		prevOriginal := queue[idx-1]
		crossing := segmentBoxCrossing(box, prevOriginal, p)
		tr.Coords = append(tr.Coords, crossing.Point)
		tr.ExitSide = crossing.Side

		if tr.EntrySide == SideNone {
			// The ring began strictly inside this cell and has not closed
			// yet: re-queue these coordinates at the tail so that, once
			// the ring returns here to close, the walker continues
			// accumulating from where this fragment left off instead of
			// reporting two unmatched half-traversals.
			queue = append(queue, tr.Coords...)
		} else {
			cells.record(sub, row, col, tr)
		}

		switch crossing.Side {
		case SideTop:
			row--
		case SideBottom:
			row++
		case SideLeft:
			col--
		case SideRight:
			col++
		}
		box = sub.CellBox(row, col)
		_, nextEntry := classify(box, crossing.Point)
		tr = Traversal{Coords: []Coord{crossing.Point}, EntrySide: nextEntry}
		// idx is not advanced: the crossing point is the entry point for
		// the next cell's traversal.
	}

	// End of (possibly extended) coordinate queue reached mid-traversal.
	if tr.ExitSide == SideNone && len(tr.Coords) > 0 {
		last := tr.Coords[len(tr.Coords)-1]
		box = sub.CellBox(row, col)
		if _, side := classify(box, last); side != SideNone {
			tr.ExitSide = side
		}
	}
	cells.record(sub, row, col, tr)
	return nil
}

// maxCellIndex bounds the row/col a ring coordinate may resolve to. It is
// far larger than any grid this core is meant to run against; it exists so
// that a coordinate many orders of magnitude outside the grid's extent
// (garbage input, or a unit mismatch) is rejected instead of silently
// truncated by the float64-to-int conversion.
const maxCellIndex = 1 << 30

// locate returns the sub-grid row/col containing p, WITHOUT clamping to
// the sub-grid's real range: a point outside the sub-grid resolves to
// whichever padding row/col its linear position implies, however far out.
// Grid.GetRow/GetColumn clamp (they serve the bounded grid), so locate
// recomputes the same floor-division directly. ok is false if that
// position is NaN or exceeds maxCellIndex in either axis.
func locate(sub *SubGrid, p Coord) (row, col int, ok bool) {
	rf := math.Floor((sub.Extent.URy - p.Y) / sub.Dy)
	cf := math.Floor((p.X - sub.Extent.LLx) / sub.Dx)
	if math.IsNaN(rf) || math.IsNaN(cf) || math.Abs(rf) > maxCellIndex || math.Abs(cf) > maxCellIndex {
		return 0, 0, false
	}
	return int(rf), int(cf), true
}

func reverseCoords(c []Coord) {
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
}
