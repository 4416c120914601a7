package gridmesh

// BuildGridMesh emits one quad per grid cell: four vertices (counter
// clockwise from the bottom-left corner) and six indices. Every cell gets a
// quad, including inactive ones; the fragment stage turns inactive cells
// fully transparent, which keeps the mesh layout stable while cells flip.
func BuildGridMesh(grid *CellGrid, tileSize float32, color PackedColor) ([]CellVertex, []uint32) {
	w, h := grid.Width(), grid.Height()
	vertices := make([]CellVertex, 0, w*h*4)
	indices := make([]uint32, 0, w*h*6)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0 := float32(x) * tileSize
			y0 := float32(y) * tileSize
			x1 := float32(x+1) * tileSize
			y1 := float32(y+1) * tileSize
			mask := uint32(grid.MaskAt(x, y))

			base := uint32(len(vertices))
			vertices = append(vertices,
				CellVertex{position: [3]float32{x0, y0, 0}, color: uint32(color), localPos: [2]float32{0, 0}, neighbors: mask},
				CellVertex{position: [3]float32{x1, y0, 0}, color: uint32(color), localPos: [2]float32{1, 0}, neighbors: mask},
				CellVertex{position: [3]float32{x1, y1, 0}, color: uint32(color), localPos: [2]float32{1, 1}, neighbors: mask},
				CellVertex{position: [3]float32{x0, y1, 0}, color: uint32(color), localPos: [2]float32{0, 1}, neighbors: mask},
			)
			indices = append(indices, base, base+1, base+2, base+2, base+3, base)
		}
	}
	return vertices, indices
}
