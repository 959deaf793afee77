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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/scanburn/testcases"
)

// totalArea reconstructs the area a Result actually covers, in the same
// units as the polygon's own coordinates, given the grid's per-cell area.
func totalArea(res Result, cellArea float64) float64 {
	var area float64
	for _, r := range res.Runs {
		area += float64(r.ColEnd-r.ColStart+1) * cellArea
	}
	for _, e := range res.Edges {
		area += e.Weight * cellArea
	}
	return area
}

func polygonTrueArea(p *Polygon) float64 {
	area := absF(shoelaceArea(p.Exterior.Coords()))
	for _, h := range p.Holes {
		area -= absF(shoelaceArea(h.Coords()))
	}
	return area
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func caseByName(t *testing.T, name string) testcases.Case {
	t.Helper()
	for _, c := range testcases.Cases {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no test case named %q", name)
	return testcases.Case{}
}

func runCase(t *testing.T, c testcases.Case) Result {
	t.Helper()
	geoms := make([]Geometry, len(c.Polygons))
	for i, p := range c.Polygons {
		geoms[i] = p
	}
	res, err := ScanBurn(geoms, newExtent(c.Xmin, c.Ymin, c.Xmax, c.Ymax), c.Ncols, c.Nrows, Options{})
	require.NoError(t, err)
	return res
}

func cellArea(c testcases.Case) float64 {
	return ((c.Xmax - c.Xmin) / float64(c.Ncols)) * ((c.Ymax - c.Ymin) / float64(c.Nrows))
}

func TestScanBurnUnitSquareAreaMatchesPolygon(t *testing.T) {
	c := caseByName(t, "unit_square_on_integer_grid")
	res := runCase(t, c)
	assert.InDelta(t, polygonTrueArea(c.Polygons[0]), totalArea(res, cellArea(c)), 1e-6)
	assert.Empty(t, res.Skipped)
}

func TestScanBurnComplementaryTrianglesFillGrid(t *testing.T) {
	lower := runCase(t, caseByName(t, "diagonal_triangle_lower"))
	upper := runCase(t, caseByName(t, "diagonal_triangle_upper"))
	c := caseByName(t, "diagonal_triangle_lower")

	total := totalArea(lower, cellArea(c)) + totalArea(upper, cellArea(c))
	assert.InDelta(t, (c.Xmax-c.Xmin)*(c.Ymax-c.Ymin), total, 1e-6)
}

func TestScanBurnDonutPlusPlugFillsOuterSquare(t *testing.T) {
	c := caseByName(t, "donut_filled_by_plug")
	res := runCase(t, c)

	want := polygonTrueArea(c.Polygons[0]) + polygonTrueArea(c.Polygons[1])
	assert.InDelta(t, want, totalArea(res, cellArea(c)), 1e-6)

	outerOnly := absF(shoelaceArea(c.Polygons[0].Exterior.Coords()))
	assert.InDelta(t, outerOnly, totalArea(res, cellArea(c)), 1e-6)
}

func TestScanBurnPolygonExtendingBeyondGridSaturatesEntireGrid(t *testing.T) {
	c := caseByName(t, "polygon_extends_beyond_grid")
	res := runCase(t, c)

	assert.Empty(t, res.Edges, "a polygon that fully overruns the grid should saturate every cell")
	assert.InDelta(t, (c.Xmax-c.Xmin)*(c.Ymax-c.Ymin), totalArea(res, cellArea(c)), 1e-6)
}

func TestScanBurnSubCellSliverOnlyProducesEdges(t *testing.T) {
	c := caseByName(t, "sub_cell_sliver")
	res := runCase(t, c)

	assert.Empty(t, res.Runs, "a sliver thinner than one cell row should never saturate a cell")
	assert.NotEmpty(t, res.Edges)
	assert.InDelta(t, polygonTrueArea(c.Polygons[0]), totalArea(res, cellArea(c)), 1e-6)
}

// A ring wholly inside one cell has no entry/exit side at all, so its
// winding delta is always 0 — it must still reach the output through the
// coverage map, not only through windingByRow.
func TestScanBurnClosedRingInsideOneCellStillEmits(t *testing.T) {
	c := caseByName(t, "small_square_wholly_inside_one_cell")
	res := runCase(t, c)

	assert.Empty(t, res.Runs, "a sub-cell square never saturates a whole cell")
	require.NotEmpty(t, res.Edges, "coverage without any winding crossing must still be emitted")
	assert.InDelta(t, polygonTrueArea(c.Polygons[0]), totalArea(res, cellArea(c)), 1e-9)
}

func TestScanBurnAdjacentRectanglesShareGridExactly(t *testing.T) {
	c := caseByName(t, "adjacent_rectangles_shared_vertical_edge")
	geoms := make([]Geometry, len(c.Polygons))
	for i, p := range c.Polygons {
		geoms[i] = p
	}
	res, err := ScanBurn(geoms, newExtent(c.Xmin, c.Ymin, c.Xmax, c.Ymax), c.Ncols, c.Nrows, Options{})
	require.NoError(t, err)

	assert.InDelta(t, (c.Xmax-c.Xmin)*(c.Ymax-c.Ymin), totalArea(res, cellArea(c)), 1e-6)
	for _, r := range res.Runs {
		assert.Contains(t, []int{1, 2}, r.PolyID)
	}
}

// invalidGeometry reports an unrecognised GeometryType so decompose hits
// its default error branch.
type invalidGeometry struct{}

func (invalidGeometry) Type() GeometryType               { return GeometryType(99) }
func (invalidGeometry) NumGeometries() int               { return 0 }
func (invalidGeometry) NthGeometry(i int) Geometry       { return nil }
func (invalidGeometry) ExteriorRing() Ring               { return nil }
func (invalidGeometry) NumInteriorRings() int            { return 0 }
func (invalidGeometry) InteriorRing(i int) Ring          { return nil }
func (invalidGeometry) ComponentBoundingBoxes() []Extent { return nil }
func (invalidGeometry) IsEmpty() bool                    { return false }

func TestScanBurnSkipsUndecomposableGeometry(t *testing.T) {
	res, err := ScanBurn([]Geometry{invalidGeometry{}}, newExtent(0, 0, 10, 10), 10, 10, Options{})
	require.NoError(t, err)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 1, res.Skipped[0].PolyID)
	assert.ErrorIs(t, res.Skipped[0].Err, ErrInvalidGeometry)
	assert.Empty(t, res.Runs)
	assert.Empty(t, res.Edges)
}

func TestScanBurnRejectsMalformedGrid(t *testing.T) {
	_, err := ScanBurn(nil, newExtent(10, 0, 0, 10), 5, 5, Options{})
	assert.ErrorIs(t, err, ErrInvalidExtent)

	_, err = ScanBurn(nil, newExtent(0, 0, 10, 10), 0, 5, Options{})
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestScanBurnAbortsOnNumericOverflow(t *testing.T) {
	huge := 1e300
	// The ring encloses the whole grid, so its bounds overlap the grid and
	// it reaches the walker, whose corner cells lie far out of range.
	poly := &Polygon{Exterior: NewSimpleRingAuto([]Coord{
		{X: -huge, Y: -huge}, {X: huge, Y: -huge}, {X: huge, Y: huge}, {X: -huge, Y: huge}, {X: -huge, Y: -huge},
	})}
	res, err := ScanBurn([]Geometry{poly}, newExtent(0, 0, 10, 10), 10, 10, Options{})
	require.ErrorIs(t, err, ErrNumericOverflow)
	assert.Empty(t, res.Runs)
	assert.Empty(t, res.Edges)
}

// panickyRing panics when asked for its coordinates, simulating an
// external geometry provider that fails mid-access rather than returning
// a structural error up front.
type panickyRing struct{}

func (panickyRing) Coords() []Coord { panic("provider exploded") }
func (panickyRing) IsCCW() bool     { return true }

type panickyPolygon struct{}

func (panickyPolygon) Type() GeometryType               { return TypePolygon }
func (panickyPolygon) NumGeometries() int               { return 0 }
func (panickyPolygon) NthGeometry(i int) Geometry       { return nil }
func (panickyPolygon) ExteriorRing() Ring               { return panickyRing{} }
func (panickyPolygon) NumInteriorRings() int            { return 0 }
func (panickyPolygon) InteriorRing(i int) Ring          { return nil }
func (panickyPolygon) ComponentBoundingBoxes() []Extent { return nil }
func (panickyPolygon) IsEmpty() bool                    { return false }

func TestScanBurnRecoversFromGeometryProviderPanic(t *testing.T) {
	res, err := ScanBurn([]Geometry{panickyPolygon{}}, newExtent(0, 0, 10, 10), 10, 10, Options{})
	require.NoError(t, err)
	require.Len(t, res.Skipped, 1)
	assert.ErrorIs(t, res.Skipped[0].Err, ErrInvalidGeometry)
	assert.ErrorIs(t, res.Skipped[0].Err, ErrCoordinateAccess)
}

// Running with multiple workers must produce the same total covered area
// as sequential execution; row iteration order may differ (map-driven),
// but the underlying geometry doesn't change with worker count.
func TestScanBurnConcurrentWorkersMatchSequential(t *testing.T) {
	c := caseByName(t, "donut_filled_by_plug")
	geoms := make([]Geometry, len(c.Polygons))
	for i, p := range c.Polygons {
		geoms[i] = p
	}
	extent := newExtent(c.Xmin, c.Ymin, c.Xmax, c.Ymax)

	sequential, err := ScanBurn(geoms, extent, c.Ncols, c.Nrows, Options{Workers: 1})
	require.NoError(t, err)
	concurrent, err := ScanBurn(geoms, extent, c.Ncols, c.Nrows, Options{Workers: 4})
	require.NoError(t, err)

	area := cellArea(c)
	assert.InDelta(t, totalArea(sequential, area), totalArea(concurrent, area), 1e-9)
	assert.Len(t, concurrent.Runs, len(sequential.Runs))
	assert.Len(t, concurrent.Edges, len(sequential.Edges))
}
