package gridmesh

// CPU mirror of the fragment stage in cell_mesh.wgsl. The GPU path is not
// unit-testable without a render harness, so every shape decision lives here
// too, as a pure function of the neighbor mask and the cell-local coordinate.

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// PixelOn reports whether the pixel at cell-local coordinate (x, y) belongs
// to the rendered shape for the given neighbor mask. Local coordinates span
// the unit square, with y growing toward the top neighbor. The function is
// total: any mask and any coordinate produce a defined answer.
func PixelOn(mask NeighborMask, x, y float32) bool {
	if !mask.Self() {
		return false
	}
	total := mask.ActiveSides()

	// The unit square split along its two diagonals.
	inBottomRightHalf := y < x
	inTopRightHalf := (1 - y) < x
	inTopLeftHalf := !inBottomRightHalf
	inBottomLeftHalf := !inTopRightHalf

	// Junctions and straight runs fill the whole cell.
	if total >= 3 || (mask.Top() && mask.Bottom()) || (mask.Left() && mask.Right()) {
		return true
	}
	// Isolated cells render as a small diamond around the center.
	if total == 0 && abs32(x-0.5)+abs32(y-0.5) < 0.25 {
		return true
	}
	// One wedge per connected side.
	if mask.Top() && inTopLeftHalf && inTopRightHalf {
		return true
	}
	if mask.Left() && inTopLeftHalf && inBottomLeftHalf {
		return true
	}
	if mask.Bottom() && inBottomLeftHalf && inBottomRightHalf {
		return true
	}
	if mask.Right() && inTopRightHalf && inBottomRightHalf {
		return true
	}
	return false
}

// ShadeFragment runs the full fragment stage: the shape decision plus the
// alpha cut. RGB passes through untouched; alpha is forced to zero outside
// the shape.
func ShadeFragment(mask NeighborMask, x, y float32, color PackedColor) (r, g, b, a float32) {
	r, g, b, a = color.Unpack()
	if !PixelOn(mask, x, y) {
		a = 0
	}
	return r, g, b, a
}
