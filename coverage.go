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

import (
	"math"
	"sort"
)

// cellCoverage computes the covered area fraction for one cell, given every
// traversal one ring walk recorded there (several when the ring visits the
// cell more than once, e.g. at self-intersections). The driver walks each
// ring into its own records and sums the signed per-ring results, so
// traversals of an exterior ring and a hole never meet in one call.
func cellCoverage(rec *CellRecord) float64 {
	valid := make([]Traversal, 0, len(rec.Traversals))
	for _, t := range rec.Traversals {
		if validTraversal(t) {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return 0
	}
	if len(valid) == 1 && isClosedRing(valid[0]) {
		area := math.Abs(shoelaceArea(valid[0].Coords))
		return clamp01(area / boxArea(rec.Box))
	}
	return chainChase(valid, rec.Box)
}

// validTraversal implements the two validity conditions of §4.3: either it
// has both entry and exit sides and spans more than one distinct
// coordinate, or it is a strictly-interior closed ring.
func validTraversal(t Traversal) bool {
	if t.EntrySide != SideNone && t.ExitSide != SideNone {
		return !allCoordsEqual(t.Coords)
	}
	if t.EntrySide == SideNone && t.ExitSide == SideNone {
		return isClosedRing(t)
	}
	return false
}

func isClosedRing(t Traversal) bool {
	n := len(t.Coords)
	if n < 3 {
		return false
	}
	return coordsEqual(t.Coords[0], t.Coords[n-1])
}

func coordsEqual(a, b Coord) bool {
	return math.Abs(a.X-b.X) <= boundaryTolerance && math.Abs(a.Y-b.Y) <= boundaryTolerance
}

func allCoordsEqual(coords []Coord) bool {
	for i := 1; i < len(coords); i++ {
		if !coordsEqual(coords[0], coords[i]) {
			return false
		}
	}
	return true
}

// chainEnd is the per-traversal bookkeeping chainChase needs: the chain's
// own coordinates together with its entry/exit perimeter distance.
type chainEnd struct {
	coords              []Coord
	entryDist, exitDist float64
	used                bool
}

// chainChase implements §4.3.1/§4.3.2 as one algorithm: starting from the
// chain with smallest entry distance, it repeatedly appends a chain's
// coordinates, then walks the cell boundary backward (decreasing perimeter
// distance, the direction that keeps the covered area on the chain's left)
// to the nearest reachable entry point, inserting any corners strictly in
// between. At every step the starting chain's own entry is itself a
// candidate "nearest entry": if it is closer than any other unused chain,
// the polygon closes there, and any chains left over start a fresh polygon
// on the next outer iteration. Their areas accumulate independently, so two
// traversals that don't belong to the same loop never get stitched into
// one shape. With exactly one chain this degenerates to the
// single-traversal analytical formula.
func chainChase(chains []Traversal, box Box) float64 {
	ends := make([]*chainEnd, len(chains))
	for i, t := range chains {
		ends[i] = &chainEnd{
			coords:    t.Coords,
			entryDist: perimeterDistance(box, t.Coords[0]),
			exitDist:  perimeterDistance(box, t.Coords[len(t.Coords)-1]),
		}
	}

	P := perimeter(box)
	var totalArea float64

	for {
		start := -1
		for i, c := range ends {
			if c.used {
				continue
			}
			if start == -1 || c.entryDist < ends[start].entryDist {
				start = i
			}
		}
		if start == -1 {
			break
		}
		startEntryDist := ends[start].entryDist

		var poly []Coord
		cur := start
		for {
			c := ends[cur]
			c.used = true
			poly = append(poly, c.coords...)

			next := -1
			bestGap := floorMod(c.exitDist-startEntryDist, P)
			for i, o := range ends {
				if o.used {
					continue
				}
				gap := floorMod(c.exitDist-o.entryDist, P)
				if gap < bestGap {
					next, bestGap = i, gap
				}
			}
			if next == -1 {
				poly = appendBoundaryCorners(poly, box, c.exitDist, startEntryDist)
				break
			}
			poly = appendBoundaryCorners(poly, box, c.exitDist, ends[next].entryDist)
			cur = next
		}
		totalArea += math.Abs(shoelaceArea(poly))
	}

	return clamp01(totalArea / boxArea(box))
}

// appendBoundaryCorners appends to poly every corner of box lying strictly
// on the arc walked backward from fromDist (decreasing perimeter
// distance, wrapping past zero) down to toDist, ordered by how soon they're
// reached. If the two distances coincide (within tolerance) it appends
// nothing, matching the "entry equals exit" case of §4.3.1.
func appendBoundaryCorners(poly []Coord, box Box, fromDist, toDist float64) []Coord {
	P := perimeter(box)
	span := floorMod(fromDist-toDist, P)
	if span < entryExitEqualTolerance {
		return poly
	}

	type corner struct {
		rel   float64
		point Coord
	}
	var between []corner
	for _, c := range boxCorners(box) {
		rel := floorMod(fromDist-c.Dist, P)
		if rel > cornerArcTolerance && rel < span-cornerArcTolerance {
			between = append(between, corner{rel, c.Point})
		}
	}
	sort.Slice(between, func(i, j int) bool { return between[i].rel < between[j].rel })
	for _, c := range between {
		poly = append(poly, c.point)
	}
	return poly
}
