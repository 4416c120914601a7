package gridmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCellGrid_RejectsBadDimensions(t *testing.T) {
	assert.Panics(t, func() { NewCellGrid(0, 4) })
	assert.Panics(t, func() { NewCellGrid(4, -1) })
}

func TestCellGrid_SetAndOn(t *testing.T) {
	g := NewCellGrid(3, 3)
	assert.False(t, g.On(1, 1))

	g.Set(1, 1, true)
	assert.True(t, g.On(1, 1))

	g.Set(1, 1, false)
	assert.False(t, g.On(1, 1))
}

func TestCellGrid_OutOfBoundsReadsOff(t *testing.T) {
	g := NewCellGrid(2, 2)
	g.Set(0, 0, true)

	assert.False(t, g.On(-1, 0))
	assert.False(t, g.On(0, -1))
	assert.False(t, g.On(2, 0))
	assert.False(t, g.On(0, 2))
}

func TestCellGrid_OutOfBoundsWritePanics(t *testing.T) {
	g := NewCellGrid(2, 2)
	assert.Panics(t, func() { g.Set(2, 0, true) })
	assert.Panics(t, func() { g.Set(0, -1, true) })
}

func TestCellGrid_VersionBumpsOnlyOnChange(t *testing.T) {
	g := NewCellGrid(2, 2)
	v0 := g.Version()

	g.Set(0, 0, true)
	v1 := g.Version()
	require.NotEqual(t, v0, v1)

	g.Set(0, 0, true)
	assert.Equal(t, v1, g.Version(), "writing the same value should not bump the version")

	g.Set(0, 0, false)
	assert.NotEqual(t, v1, g.Version())
}

func TestCellGrid_MaskAtBitLayout(t *testing.T) {
	// Cross centered on (1,1): every neighbor plus the center itself.
	g := NewCellGrid(3, 3)
	g.Set(1, 1, true)
	g.Set(1, 2, true) // top
	g.Set(0, 1, true) // left
	g.Set(1, 0, true) // bottom
	g.Set(2, 1, true) // right

	mask := g.MaskAt(1, 1)
	assert.Equal(t, NeighborTop|NeighborLeft|NeighborBottom|NeighborRight|CellOn, mask)

	// The bottom cell sees only the center as its top neighbor.
	assert.Equal(t, NeighborTop|CellOn, g.MaskAt(1, 0))
	assert.Equal(t, NeighborRight|CellOn, g.MaskAt(0, 1))
}

func TestCellGrid_MaskAtEdgeCellsSeeBorderAsOff(t *testing.T) {
	g := NewCellGrid(2, 2)
	g.Set(0, 0, true)
	g.Set(1, 0, true)

	assert.Equal(t, NeighborRight|CellOn, g.MaskAt(0, 0))
	assert.Equal(t, NeighborLeft|CellOn, g.MaskAt(1, 0))
}
