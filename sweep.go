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

import "sort"

// coverageTolerance (τ in the spec) separates a true fractional edge from a
// saturated (fully covered) or empty (winding-only) boundary cell.
const coverageTolerance = 1e-6

// rowSweep implements the §4.5 emitter for one full-grid row of one
// polygon: it sorts and merges records by column, then walks left to
// right accumulating winding, emitting interior Runs between boundary
// cells and Edge/Run records at the boundary cells themselves. row and the
// columns inside records are already full-grid (0-based); outputs are
// converted to the 1-based row/column convention here.
func rowSweep(row, polyID int, records []BoundaryCellRecord) (runs []Run, edges []Edge) {
	if len(records) == 0 {
		return nil, nil
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Col < records[j].Col })
	merged := mergeByColumn(records)

	winding := 0
	prevCol := -2 // sentinel: no cell seen yet
	for _, rec := range merged {
		if winding != 0 && prevCol > -2 && rec.Col > prevCol+1 {
			runs = append(runs, Run{
				PolyID:   polyID,
				Row:      row + 1,
				ColStart: prevCol + 2,
				ColEnd:   rec.Col,
			})
		}

		w := rec.Coverage
		switch {
		case w > coverageTolerance && w < 1-coverageTolerance:
			edges = append(edges, Edge{PolyID: polyID, Row: row + 1, Col: rec.Col + 1, Weight: w})
		case w >= 1-coverageTolerance:
			runs = append(runs, Run{PolyID: polyID, Row: row + 1, ColStart: rec.Col + 1, ColEnd: rec.Col + 1})
		}

		winding += rec.Winding
		prevCol = rec.Col
	}
	return runs, edges
}

func mergeByColumn(records []BoundaryCellRecord) []BoundaryCellRecord {
	merged := make([]BoundaryCellRecord, 0, len(records))
	for _, r := range records {
		if n := len(merged); n > 0 && merged[n-1].Col == r.Col {
			merged[n-1].Coverage += r.Coverage
			merged[n-1].Winding += r.Winding
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
