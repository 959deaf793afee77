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
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Options configures ScanBurn. The zero value is valid: sequential
// execution, no logging.
type Options struct {
	// Logger receives per-polygon skip warnings and the error that aborts
	// a scan on numeric overflow. Defaults to zap.NewNop().
	Logger *zap.Logger

	// Workers bounds how many polygons are swept concurrently. Each
	// polygon's sweep is independent (§5); Workers <= 1 runs sequentially.
	Workers int
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}

// Result is the output of ScanBurn: the run-length-encoded interior cells
// and individually weighted boundary cells across every polygon that did
// not fail, plus a report of any that did.
type Result struct {
	Runs    []Run
	Edges   []Edge
	Skipped []SkipReport
}

// ScanBurn computes the exact intersection of polygons with a grid of
// extent and ncols x nrows cells, per §6.2. Each entry in polygons takes
// its 1-based position as its PolyID; a MultiPolygon or GeometryCollection
// entry contributes all of its polygon descendants under that same PolyID.
//
// ScanBurn fails outright for a malformed grid (ErrInvalidExtent,
// ErrInvalidDimension) or if any ring coordinate of a polygon whose bounds
// overlap the grid resolves to a cell index outside the walker's
// addressable range (ErrNumericOverflow); a polygon whose bounds miss the
// grid contributes nothing and is never walked. For an overflow the caller
// must reduce the grid size or pre-clip the offending geometry. A polygon
// that cannot be decomposed, or whose geometry provider panics while
// serving coordinates, is instead reported in Result.Skipped and does not
// block the rest.
func ScanBurn(polygons []Geometry, extent Extent, ncols, nrows int, opts Options) (Result, error) {
	grid, err := NewGrid(extent, ncols, nrows)
	if err != nil {
		return Result{}, err
	}
	log := opts.logger()

	type job struct {
		id int
		g  Geometry
	}
	jobs := make(chan job)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var result Result

	var fatalOnce sync.Once
	var fatalErr error

	worker := func() {
		defer wg.Done()
		for j := range jobs {
			runs, edges, skip, err := processTopLevel(grid, j.g, j.id, log)
			if err != nil {
				fatalOnce.Do(func() { fatalErr = err })
				continue
			}
			mu.Lock()
			result.Runs = append(result.Runs, runs...)
			result.Edges = append(result.Edges, edges...)
			if skip != nil {
				result.Skipped = append(result.Skipped, *skip)
			}
			mu.Unlock()
		}
	}

	n := opts.workers()
	wg.Add(n)
	for i := 0; i < n; i++ {
		go worker()
	}
	for i, g := range polygons {
		jobs <- job{id: i + 1, g: g}
	}
	close(jobs)
	wg.Wait()

	// NumericOverflow is fatal to the whole scan (§7): unlike InvalidGeometry
	// it is not a property of one polygon's data but of the grid/geometry
	// scale mismatch, which affects every polygon equally.
	if fatalErr != nil {
		log.Error("aborting scan: numeric overflow", zap.Error(fatalErr))
		return Result{}, fatalErr
	}

	return result, nil
}

// processTopLevel decomposes one top-level input geometry into its
// polygon components and sweeps each against grid, accumulating into one
// PolyID per §4.6.
//
// A non-nil err is fatal to the whole scan (ErrNumericOverflow only); a
// non-nil skip reports this one polygon as unusable without affecting the
// rest, covering both structural decomposition failures and a geometry
// provider panicking while serving coordinates (CoordinateAccessError,
// §7), which is recovered here and folded into ErrInvalidGeometry.
func processTopLevel(grid *Grid, g Geometry, polyID int, log *zap.Logger) (runs []Run, edges []Edge, skip *SkipReport, err error) {
	if g == nil || g.IsEmpty() {
		return nil, nil, nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			wrapped := fmt.Errorf("%w: %w: geometry provider panicked: %v", ErrInvalidGeometry, ErrCoordinateAccess, r)
			log.Warn("skipping polygon: coordinate access failed",
				zap.Int("poly_id", polyID), zap.Error(wrapped))
			runs, edges, skip, err = nil, nil, &SkipReport{PolyID: polyID, Err: wrapped}, nil
		}
	}()

	comps, derr := decompose(g)
	if derr != nil {
		log.Warn("skipping polygon: invalid geometry",
			zap.Int("poly_id", polyID), zap.Error(derr))
		return nil, nil, &SkipReport{PolyID: polyID, Err: derr}, nil
	}

	for _, comp := range comps {
		r, e, werr := sweepComponent(grid, comp, polyID)
		if werr != nil {
			return nil, nil, nil, werr
		}
		runs = append(runs, r...)
		edges = append(edges, e...)
	}
	return runs, edges, nil, nil
}

// polygonComponent is one exterior ring plus its holes, ready to sweep.
// bbox, when the provider supplied exactly one box for it via
// ComponentBoundingBoxes, is used in place of recomputing the bound from
// ring coordinates.
type polygonComponent struct {
	exterior Ring
	holes    []Ring
	bbox     *Extent
}

// decompose recursively flattens g into its polygon components, per
// §6.1's type taxonomy. Non-polygon leaves (TypeOther) are dropped: the
// core does not support non-closed geometries, but a collection mixing
// polygons with lines or points should still yield its polygon members.
func decompose(g Geometry) ([]*polygonComponent, error) {
	if g == nil || g.IsEmpty() {
		return nil, nil
	}
	switch g.Type() {
	case TypePolygon:
		holes := make([]Ring, g.NumInteriorRings())
		for i := range holes {
			holes[i] = g.InteriorRing(i)
		}
		comp := &polygonComponent{exterior: g.ExteriorRing(), holes: holes}
		// A bare polygon is itself one component: the provider's §6.1
		// ComponentBoundingBoxes is expected to report exactly one box for
		// it. Use that box directly rather than re-deriving it from ring
		// coordinates; fall back to the ring-coordinate path in
		// componentBounds if the provider reports anything else.
		if boxes := g.ComponentBoundingBoxes(); len(boxes) == 1 {
			comp.bbox = &boxes[0]
		}
		return []*polygonComponent{comp}, nil

	case TypeMultiPolygon, TypeCollection:
		var out []*polygonComponent
		for i := 0; i < g.NumGeometries(); i++ {
			child := g.NthGeometry(i)
			if child == nil {
				return nil, fmt.Errorf("%w: nil child geometry at index %d", ErrInvalidGeometry, i)
			}
			sub, err := decompose(child)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil

	case TypeOther:
		return nil, nil

	default:
		return nil, fmt.Errorf("%w: unrecognised geometry type", ErrInvalidGeometry)
	}
}

// sweepComponent runs the full per-component pipeline (§4.6): sub-grid
// construction, ring walking of the exterior and each hole into a shared
// ledger, then the row sweep over every touched full-grid row.
func sweepComponent(grid *Grid, comp *polygonComponent, polyID int) (runs []Run, edges []Edge, err error) {
	region, ok := componentBounds(grid, comp)
	if !ok {
		return nil, nil, nil
	}
	sub, ok := ShrinkToFit(grid, region)
	if !ok {
		return nil, nil, nil
	}

	coverage := make(map[cellKey]float64)
	windingByRow := make(map[int]map[int]int)

	accumulate := func(ring Ring, sign int) error {
		if ring == nil {
			return nil
		}
		cells := cellRecords{}
		if err := walkRing(sub, ring.Coords(), ring.IsCCW(), cells); err != nil {
			return err
		}
		for key, rec := range cells {
			frow, fcol := sub.FullRow(key.row), sub.FullCol(key.col)
			if grid.InRange(frow, fcol) {
				coverage[cellKey{frow, fcol}] += float64(sign) * cellCoverage(rec)
			}
			for _, tr := range rec.Traversals {
				delta := windingDelta(rec.Box, tr)
				if delta == 0 {
					continue
				}
				addWinding(windingByRow, grid, frow, fcol, sign*delta)
			}
		}
		return nil
	}

	if err := accumulate(comp.exterior, 1); err != nil {
		return nil, nil, err
	}
	for _, h := range comp.holes {
		if err := accumulate(h, -1); err != nil {
			return nil, nil, err
		}
	}

	// A cell can carry fractional coverage without ever registering a
	// winding delta (every traversal stays on one side of the cell's
	// mid-y, or the covering ring never leaves the cell at all). Seed
	// such cells into the row set at winding 0 so rowSweep still sees
	// them; windingByRow alone only tracks cells a traversal actually
	// crossed mid-y in.
	for key := range coverage {
		cols, ok := windingByRow[key.row]
		if !ok {
			cols = make(map[int]int)
			windingByRow[key.row] = cols
		}
		if _, ok := cols[key.col]; !ok {
			cols[key.col] = 0
		}
	}

	for row, cols := range windingByRow {
		if row < 0 || row >= grid.Nrows {
			continue
		}
		records := make([]BoundaryCellRecord, 0, len(cols))
		for col, delta := range cols {
			var cov float64
			if col >= 0 && col < grid.Ncols {
				cov = coverage[cellKey{row, col}]
			}
			records = append(records, BoundaryCellRecord{Col: col, Coverage: cov, Winding: delta})
		}
		r, e := rowSweep(row, polyID, records)
		runs = append(runs, r...)
		edges = append(edges, e...)
	}
	return runs, edges, nil
}

// windingDelta implements §4.4's sign convention: +1 for an upward crossing
// of the cell's mid-y line, -1 downward, 0 for a traversal that never
// reaches mid-y (or a closed ring, which has no entry/exit side).
func windingDelta(box Box, tr Traversal) int {
	if tr.EntrySide == SideNone || tr.ExitSide == SideNone || len(tr.Coords) == 0 {
		return 0
	}
	yMid := (box.LLy + box.URy) / 2
	entryY := tr.Coords[0].Y
	exitY := tr.Coords[len(tr.Coords)-1].Y
	switch {
	case entryY < yMid && exitY > yMid:
		return 1
	case entryY > yMid && exitY < yMid:
		return -1
	default:
		return 0
	}
}

// addWinding accumulates a winding delta at (row, col) in full-grid
// coordinates, collapsing any column outside the real grid to one of the
// two padding sentinels (-1, Ncols) per §4.4.
func addWinding(byRow map[int]map[int]int, grid *Grid, row, col, delta int) {
	if col < 0 {
		col = -1
	} else if col >= grid.Ncols {
		col = grid.Ncols
	}
	cols, ok := byRow[row]
	if !ok {
		cols = make(map[int]int)
		byRow[row] = cols
	}
	cols[col] += delta
}

// componentBounds is the union of each ring's bounding box intersected
// with grid's extent (§4.6); ok is false if that union is empty. When the
// provider supplied a bbox for this component via ComponentBoundingBoxes
// (§6.1), that replaces recomputing the exterior's bound from its ring
// coordinates.
func componentBounds(grid *Grid, comp *polygonComponent) (Extent, bool) {
	var box Extent
	found := false

	clip := func(ring Ring) {
		if ring == nil {
			return
		}
		coords := ring.Coords()
		if len(coords) == 0 {
			return
		}
		b := ringBounds(coords)
		b = intersectExtent(b, grid.Extent)
		if b.URx <= b.LLx || b.URy <= b.LLy {
			return
		}
		if !found {
			box, found = b, true
			return
		}
		box = unionExtent(box, b)
	}

	if comp.bbox != nil {
		b := intersectExtent(*comp.bbox, grid.Extent)
		if b.URx > b.LLx && b.URy > b.LLy {
			box, found = b, true
		}
	} else {
		clip(comp.exterior)
	}
	for _, h := range comp.holes {
		clip(h)
	}
	return box, found
}

func intersectExtent(a, b Extent) Extent {
	return newExtent(
		maxF(a.LLx, b.LLx), maxF(a.LLy, b.LLy),
		minF(a.URx, b.URx), minF(a.URy, b.URy),
	)
}

func unionExtent(a, b Extent) Extent {
	return newExtent(
		minF(a.LLx, b.LLx), minF(a.LLy, b.LLy),
		maxF(a.URx, b.URx), maxF(a.URy, b.URy),
	)
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
