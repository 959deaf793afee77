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

// GeometryType classifies a value returned by a Geometry provider.
type GeometryType int

const (
	TypeOther GeometryType = iota
	TypePolygon
	TypeMultiPolygon
	TypeCollection
)

// Ring is the minimal shape the core needs from a ring: its coordinate
// sequence (first equals last) and orientation.
type Ring interface {
	Coords() []Coord
	IsCCW() bool
}

// Geometry is the external collaborator interface the core consumes (§6.1).
// A typical caller wraps a planar geometry library behind this; scanburn
// never parses wire formats or validates geometry itself.
type Geometry interface {
	Type() GeometryType

	// NumGeometries/NthGeometry decompose a MultiPolygon or
	// GeometryCollection into its children. For a bare Polygon both are
	// meaningless and are never called.
	NumGeometries() int
	NthGeometry(i int) Geometry

	// ExteriorRing/InteriorRing* are only called when Type() == TypePolygon.
	ExteriorRing() Ring
	NumInteriorRings() int
	InteriorRing(i int) Ring

	ComponentBoundingBoxes() []Extent
	IsEmpty() bool
}

// Polygon is a minimal, dependency-free Geometry implementation: one
// exterior ring plus zero or more holes. It exists for tests and as a
// reference for callers wiring a real geometry library behind the
// Geometry interface.
type Polygon struct {
	Exterior SimpleRing
	Holes    []SimpleRing
}

// SimpleRing is a Ring backed by a plain coordinate slice.
type SimpleRing struct {
	coords []Coord
	ccw    bool
}

// NewSimpleRing wraps coords (first must equal last) with a precomputed
// orientation. If ccw is left at its zero value by mistake the caller
// should instead use NewSimpleRingAuto, which derives it from the
// shoelace sign.
func NewSimpleRing(coords []Coord, ccw bool) SimpleRing {
	return SimpleRing{coords: coords, ccw: ccw}
}

// NewSimpleRingAuto wraps coords and derives CCW orientation from the
// signed shoelace area.
func NewSimpleRingAuto(coords []Coord) SimpleRing {
	return SimpleRing{coords: coords, ccw: shoelaceArea(coords) > 0}
}

func (r SimpleRing) Coords() []Coord { return r.coords }
func (r SimpleRing) IsCCW() bool     { return r.ccw }

func (p *Polygon) Type() GeometryType          { return TypePolygon }
func (p *Polygon) NumGeometries() int          { return 0 }
func (p *Polygon) NthGeometry(i int) Geometry  { return nil }
func (p *Polygon) ExteriorRing() Ring          { return p.Exterior }
func (p *Polygon) NumInteriorRings() int       { return len(p.Holes) }
func (p *Polygon) InteriorRing(i int) Ring     { return p.Holes[i] }
func (p *Polygon) IsEmpty() bool               { return len(p.Exterior.coords) == 0 }

func (p *Polygon) ComponentBoundingBoxes() []Extent {
	if p.IsEmpty() {
		return nil
	}
	return []Extent{ringBounds(p.Exterior.coords)}
}

// MultiPolygon is a reference Geometry implementation grouping independent
// Polygon components, each swept separately by the driver (§4.6).
type MultiPolygon struct {
	Polygons []*Polygon
}

func (m *MultiPolygon) Type() GeometryType         { return TypeMultiPolygon }
func (m *MultiPolygon) NumGeometries() int         { return len(m.Polygons) }
func (m *MultiPolygon) NthGeometry(i int) Geometry { return m.Polygons[i] }
func (m *MultiPolygon) ExteriorRing() Ring         { return nil }
func (m *MultiPolygon) NumInteriorRings() int      { return 0 }
func (m *MultiPolygon) InteriorRing(i int) Ring    { return nil }
func (m *MultiPolygon) IsEmpty() bool              { return len(m.Polygons) == 0 }

func (m *MultiPolygon) ComponentBoundingBoxes() []Extent {
	boxes := make([]Extent, 0, len(m.Polygons))
	for _, p := range m.Polygons {
		boxes = append(boxes, p.ComponentBoundingBoxes()...)
	}
	return boxes
}

// Collection is a reference Geometry implementation for a heterogeneous
// GeometryCollection; the driver recurses into it exactly like a
// MultiPolygon, skipping non-polygon children.
type Collection struct {
	Children []Geometry
}

func (c *Collection) Type() GeometryType         { return TypeCollection }
func (c *Collection) NumGeometries() int         { return len(c.Children) }
func (c *Collection) NthGeometry(i int) Geometry { return c.Children[i] }
func (c *Collection) ExteriorRing() Ring         { return nil }
func (c *Collection) NumInteriorRings() int      { return 0 }
func (c *Collection) InteriorRing(i int) Ring    { return nil }
func (c *Collection) IsEmpty() bool              { return len(c.Children) == 0 }

func (c *Collection) ComponentBoundingBoxes() []Extent {
	var boxes []Extent
	for _, child := range c.Children {
		boxes = append(boxes, child.ComponentBoundingBoxes()...)
	}
	return boxes
}

func ringBounds(coords []Coord) Extent {
	b := newExtent(coords[0].X, coords[0].Y, coords[0].X, coords[0].Y)
	for _, c := range coords[1:] {
		if c.X < b.LLx {
			b.LLx = c.X
		}
		if c.X > b.URx {
			b.URx = c.X
		}
		if c.Y < b.LLy {
			b.LLy = c.Y
		}
		if c.Y > b.URy {
			b.URy = c.Y
		}
	}
	return b
}
