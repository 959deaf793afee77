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

// Numeric tolerances. cornerArcTolerance is one of the two fixed tolerances
// named by the specification (the other is coverageTolerance in sweep.go);
// the others are ordinary floating-point slack needed to make the boundary
// classification and tie-break rules deterministic.
const (
	// boundaryTolerance separates "on the cell boundary" from "strictly
	// interior or exterior" when classifying a point against a cell box.
	boundaryTolerance = 1e-9

	// cornerArcTolerance separates "corner strictly inside the arc" from
	// "corner at an arc endpoint" in the coverage kernel (spec constant).
	cornerArcTolerance = 1e-12

	// crossingTieTolerance is the width of a tie band used when two
	// candidate box-crossing sides have almost equal parameter t (a
	// segment leaving exactly through a corner).
	crossingTieTolerance = 1e-9

	// entryExitEqualTolerance treats an entry and exit perimeter distance
	// as equal (traversal enters and exits at the same point) when they
	// differ by less than this absolute distance along the perimeter.
	entryExitEqualTolerance = 1e-9
)

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// floorMod returns a mod m in [0, m), for m > 0.
func floorMod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r < 0 {
		r += m
	}
	return r
}

// boxContains reports whether p lies inside b or on its boundary, within
// boundaryTolerance.
func boxContains(b Box, p Coord) bool {
	return p.X >= b.LLx-boundaryTolerance && p.X <= b.URx+boundaryTolerance &&
		p.Y >= b.LLy-boundaryTolerance && p.Y <= b.URy+boundaryTolerance
}

// pointSide classifies a point known to satisfy boxContains(b, p): it
// returns the side of b that p lies on, or SideNone if it is strictly
// interior. Ties at a corner resolve to TOP/BOTTOM before LEFT/RIGHT, per
// the same priority used for segment-box crossings.
func pointSide(b Box, p Coord) Side {
	onTop := math.Abs(p.Y-b.URy) <= boundaryTolerance
	onBottom := math.Abs(p.Y-b.LLy) <= boundaryTolerance
	onLeft := math.Abs(p.X-b.LLx) <= boundaryTolerance
	onRight := math.Abs(p.X-b.URx) <= boundaryTolerance
	switch {
	case onTop:
		return SideTop
	case onBottom:
		return SideBottom
	case onLeft:
		return SideLeft
	case onRight:
		return SideRight
	default:
		return SideNone
	}
}

// classify reports whether p is inside, on the boundary of, or outside b.
func classify(b Box, p Coord) (inside bool, side Side) {
	if !boxContains(b, p) {
		return false, SideNone
	}
	return true, pointSide(b, p)
}

// sidePriority orders TOP/BOTTOM before LEFT/RIGHT for the deterministic
// corner tie-break the ring walker needs (spec §4.2).
func sidePriority(s Side) int {
	switch s {
	case SideTop:
		return 0
	case SideBottom:
		return 1
	case SideLeft:
		return 2
	case SideRight:
		return 3
	default:
		return 4
	}
}

// segmentBoxCrossing computes where the segment a->bPt leaves box b. a must
// be inside or on the boundary of b; bPt must be outside it. It chooses the
// side whose crossing parameter t in (0,1] is smallest, breaking ties by
// sidePriority. If a already sits exactly on a wall and bPt continues
// straight out along that wall's outward normal, every side's crossing
// parameter is <= 0 and none qualify: the exit point is then a itself.
func segmentBoxCrossing(b Box, a, bPt Coord) Crossing {
	dx := bPt.X - a.X
	dy := bPt.Y - a.Y

	type candidate struct {
		t    float64
		side Side
	}
	var candidates []candidate

	add := func(t float64, side Side, coord float64, lo, hi float64) {
		if t <= 0 || t > 1 {
			return
		}
		if coord < lo-boundaryTolerance || coord > hi+boundaryTolerance {
			return
		}
		candidates = append(candidates, candidate{t, side})
	}

	if dx != 0 {
		tLeft := (b.LLx - a.X) / dx
		add(tLeft, SideLeft, a.Y+tLeft*dy, b.LLy, b.URy)
		tRight := (b.URx - a.X) / dx
		add(tRight, SideRight, a.Y+tRight*dy, b.LLy, b.URy)
	}
	if dy != 0 {
		tTop := (b.URy - a.Y) / dy
		add(tTop, SideTop, a.X+tTop*dx, b.LLx, b.URx)
		tBottom := (b.LLy - a.Y) / dy
		add(tBottom, SideBottom, a.X+tBottom*dx, b.LLx, b.URx)
	}

	if len(candidates) == 0 {
		// a sitting exactly on a wall, with bPt straight out along that
		// wall's own outward normal, is the case above: a is already the
		// exit point, on the side it occupies.
		if side := pointSide(b, a); side != SideNone {
			return Crossing{Point: a, Side: side}
		}
		// Otherwise a genuinely degenerate (zero-length) segment from a
		// strictly interior point: fall back to the side bPt is nearest to.
		return Crossing{Point: bPt, Side: nearestSide(b, bPt)}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		switch {
		case c.t < best.t-crossingTieTolerance:
			best = c
		case c.t <= best.t+crossingTieTolerance && sidePriority(c.side) < sidePriority(best.side):
			best = c
		}
	}

	return Crossing{
		Point: Coord{X: a.X + best.t*dx, Y: a.Y + best.t*dy},
		Side:  best.side,
	}
}

func nearestSide(b Box, p Coord) Side {
	dTop := math.Abs(p.Y - b.URy)
	dBottom := math.Abs(p.Y - b.LLy)
	dLeft := math.Abs(p.X - b.LLx)
	dRight := math.Abs(p.X - b.URx)
	side, dist := SideTop, dTop
	if dBottom < dist {
		side, dist = SideBottom, dBottom
	}
	if dLeft < dist {
		side, dist = SideLeft, dLeft
	}
	if dRight < dist {
		side, dist = SideRight, dRight
	}
	return side
}

// perimeter is the perimeter length of box b, 2(w+h).
func perimeter(b Box) float64 {
	return 2 * (boxWidth(b) + boxHeight(b))
}

// perimeterDistance is the arc length of p (assumed to lie on b's
// boundary) from the bottom-left corner, measured clockwise (up the left
// side first): BL=0, TL=h, TR=h+w, BR=2h+w. The result lies in [0, 2(w+h)).
func perimeterDistance(b Box, p Coord) float64 {
	h := boxHeight(b)
	w := boxWidth(b)
	switch pointSide(b, p) {
	case SideLeft:
		return p.Y - b.LLy
	case SideTop:
		return h + (p.X - b.LLx)
	case SideRight:
		return h + w + (b.URy - p.Y)
	case SideBottom:
		// The bottom-left corner classifies as SideBottom; wrap it to 0.
		return floorMod(2*h+w+(b.URx-p.X), perimeter(b))
	default:
		return 0
	}
}

// boxCorners returns the four corners of b tagged with their perimeter
// distance, in clockwise order starting at bottom-left.
func boxCorners(b Box) [4]struct {
	Dist  float64
	Point Coord
} {
	h := boxHeight(b)
	w := boxWidth(b)
	return [4]struct {
		Dist  float64
		Point Coord
	}{
		{0, Coord{X: b.LLx, Y: b.LLy}},
		{h, Coord{X: b.LLx, Y: b.URy}},
		{h + w, Coord{X: b.URx, Y: b.URy}},
		{2*h + w, Coord{X: b.URx, Y: b.LLy}},
	}
}

// shoelaceArea returns the signed area of the (not necessarily explicitly
// closed) polygon pts, via the shoelace formula.
func shoelaceArea(pts []Coord) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}
