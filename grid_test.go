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
)

func TestNewGridValidation(t *testing.T) {
	_, err := NewGrid(newExtent(10, 0, 0, 10), 5, 5)
	assert.ErrorIs(t, err, ErrInvalidExtent)

	_, err = NewGrid(newExtent(0, 0, 10, 10), 0, 5)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	g, err := NewGrid(newExtent(0, 0, 10, 10), 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.Dx)
	assert.Equal(t, 1.0, g.Dy)
}

func TestGridCellBoxRowZeroAtTop(t *testing.T) {
	g, err := NewGrid(newExtent(0, 0, 10, 10), 10, 10)
	require.NoError(t, err)

	top := g.CellBox(0, 0)
	assert.InDelta(t, 9.0, top.LLy, 1e-9)
	assert.InDelta(t, 10.0, top.URy, 1e-9)

	bottom := g.CellBox(9, 0)
	assert.InDelta(t, 0.0, bottom.LLy, 1e-9)
	assert.InDelta(t, 1.0, bottom.URy, 1e-9)
}

func TestGridCellBoxPadding(t *testing.T) {
	g, err := NewGrid(newExtent(0, 0, 10, 10), 10, 10)
	require.NoError(t, err)

	left := g.CellBox(0, -1)
	assert.InDelta(t, -1.0, left.LLx, 1e-9)
	assert.InDelta(t, 0.0, left.URx, 1e-9)

	below := g.CellBox(10, 0)
	assert.InDelta(t, -1.0, below.LLy, 1e-9)
	assert.InDelta(t, 0.0, below.URy, 1e-9)
}

func TestShrinkToFitClipsAndSnaps(t *testing.T) {
	g, err := NewGrid(newExtent(0, 0, 10, 10), 10, 10)
	require.NoError(t, err)

	sub, ok := ShrinkToFit(g, newExtent(2.3, 2.3, 4.7, 4.7))
	require.True(t, ok)
	assert.Equal(t, 2, sub.ColOff)
	assert.Equal(t, 5, sub.RowOff) // y in [2.3,4.7] -> rows 5..7 from the top
	assert.Equal(t, 3, sub.Ncols)
	assert.Equal(t, 3, sub.Nrows)
}

func TestShrinkToFitNeverExceedsParent(t *testing.T) {
	g, err := NewGrid(newExtent(0, 0, 10, 10), 10, 10)
	require.NoError(t, err)

	sub, ok := ShrinkToFit(g, newExtent(-5, -5, 15, 15))
	require.True(t, ok)
	assert.Equal(t, 0, sub.RowOff)
	assert.Equal(t, 0, sub.ColOff)
	assert.Equal(t, 10, sub.Nrows)
	assert.Equal(t, 10, sub.Ncols)
}

func TestShrinkToFitDisjointReturnsNotOK(t *testing.T) {
	g, err := NewGrid(newExtent(0, 0, 10, 10), 10, 10)
	require.NoError(t, err)

	_, ok := ShrinkToFit(g, newExtent(20, 20, 30, 30))
	assert.False(t, ok)
}
