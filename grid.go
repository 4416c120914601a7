package gridmesh

// CellGrid is the host-side occupancy state a cell mesh is built from. It is
// plain storage: whatever drives the cells (a simulation, an editor, a file)
// lives outside this package. Reads outside the bounds are off, so border
// cells see their missing neighbors as inactive.
type CellGrid struct {
	width   int
	height  int
	cells   []bool
	version uint
}

func NewCellGrid(width, height int) *CellGrid {
	if width <= 0 || height <= 0 {
		panic("cell grid dimensions must be positive")
	}
	return &CellGrid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

func (g *CellGrid) Width() int  { return g.width }
func (g *CellGrid) Height() int { return g.height }

// Version increases on every mutating Set, so render state can detect stale
// meshes without diffing the cells.
func (g *CellGrid) Version() uint { return g.version }

// On reports whether the cell at (x, y) is active. Out-of-bounds is off.
func (g *CellGrid) On(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y*g.width+x]
}

// Set switches the cell at (x, y). Out-of-bounds writes panic: unlike reads,
// they are always a caller bug.
func (g *CellGrid) Set(x, y int, on bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic("cell grid write out of bounds")
	}
	idx := y*g.width + x
	if g.cells[idx] == on {
		return
	}
	g.cells[idx] = on
	g.version++
}

// MaskAt builds the neighbor bitmask for the cell at (x, y). The top
// neighbor is the cell at y+1: grid y grows upward, like the cell-local
// coordinate the shader sees.
func (g *CellGrid) MaskAt(x, y int) NeighborMask {
	return MakeNeighborMask(
		g.On(x, y+1),
		g.On(x-1, y),
		g.On(x, y-1),
		g.On(x+1, y),
		g.On(x, y),
	)
}
