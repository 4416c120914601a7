package gridmesh

// NeighborMask packs the adjacency state of one cell into the low five bits
// of a 32-bit vertex attribute. The bit layout is shared with cell_mesh.wgsl:
// bit 0 top, bit 1 left, bit 2 bottom, bit 3 right, bit 4 the cell itself.
// Anything above bit 4 is ignored by both sides.
type NeighborMask uint32

const (
	NeighborTop NeighborMask = 1 << iota
	NeighborLeft
	NeighborBottom
	NeighborRight
	CellOn
)

// MakeNeighborMask builds a mask from explicit flags.
func MakeNeighborMask(top, left, bottom, right, self bool) NeighborMask {
	var m NeighborMask
	if top {
		m |= NeighborTop
	}
	if left {
		m |= NeighborLeft
	}
	if bottom {
		m |= NeighborBottom
	}
	if right {
		m |= NeighborRight
	}
	if self {
		m |= CellOn
	}
	return m
}

func (m NeighborMask) Top() bool    { return m&NeighborTop != 0 }
func (m NeighborMask) Left() bool   { return m&NeighborLeft != 0 }
func (m NeighborMask) Bottom() bool { return m&NeighborBottom != 0 }
func (m NeighborMask) Right() bool  { return m&NeighborRight != 0 }
func (m NeighborMask) Self() bool   { return m&CellOn != 0 }

// ActiveSides counts how many of the four direction bits are set.
func (m NeighborMask) ActiveSides() int {
	n := 0
	for _, bit := range [4]NeighborMask{NeighborTop, NeighborLeft, NeighborBottom, NeighborRight} {
		if m&bit != 0 {
			n++
		}
	}
	return n
}
