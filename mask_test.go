package gridmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighborMask_Accessors(t *testing.T) {
	m := MakeNeighborMask(true, false, true, false, true)

	assert.True(t, m.Top())
	assert.False(t, m.Left())
	assert.True(t, m.Bottom())
	assert.False(t, m.Right())
	assert.True(t, m.Self())
	assert.Equal(t, NeighborMask(0b10101), m)
}

func TestNeighborMask_ActiveSides(t *testing.T) {
	assert.Equal(t, 0, MakeNeighborMask(false, false, false, false, true).ActiveSides())
	assert.Equal(t, 2, MakeNeighborMask(true, false, true, false, true).ActiveSides())
	assert.Equal(t, 4, MakeNeighborMask(true, true, true, true, false).ActiveSides())
}

func TestNeighborMask_HighBitsIgnored(t *testing.T) {
	base := MakeNeighborMask(true, true, false, false, true)
	noisy := base | 0xFFFFFFE0

	assert.Equal(t, base.Top(), noisy.Top())
	assert.Equal(t, base.Left(), noisy.Left())
	assert.Equal(t, base.Bottom(), noisy.Bottom())
	assert.Equal(t, base.Right(), noisy.Right())
	assert.Equal(t, base.Self(), noisy.Self())
	assert.Equal(t, base.ActiveSides(), noisy.ActiveSides())
}
