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

import "errors"

// Sentinel errors for scanburn operations, following the package-prefixed
// sentinel convention used throughout the pack (see e.g. lvlath/gridgraph).
var (
	// ErrInvalidExtent indicates a grid extent with xmax<=xmin or ymax<=ymin.
	ErrInvalidExtent = errors.New("scanburn: extent must have xmax > xmin and ymax > ymin")
	// ErrInvalidDimension indicates a non-positive row or column count.
	ErrInvalidDimension = errors.New("scanburn: grid dimensions must be positive")
	// ErrInvalidGeometry indicates a polygon could not be decomposed into
	// rings (type mismatch, or the geometry provider reported an error).
	ErrInvalidGeometry = errors.New("scanburn: invalid or unreadable geometry")
	// ErrNumericOverflow indicates a computed cell index exceeded the
	// range the ring walker can address; the caller must use a smaller grid.
	ErrNumericOverflow = errors.New("scanburn: cell index overflow")
	// ErrCoordinateAccess indicates the geometry provider failed while
	// extracting ring coordinates. Always reported wrapped in ErrInvalidGeometry.
	ErrCoordinateAccess = errors.New("scanburn: coordinate access failed")
)

// SkipReport records a single polygon that was skipped instead of aborting
// the whole scan, per the recovery-boundary-per-polygon policy.
type SkipReport struct {
	PolyID int
	Err    error
}
