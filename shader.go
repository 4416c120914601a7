package gridmesh

import (
	_ "embed"
)

//go:embed shaders/cell_mesh.wgsl
var cellMeshWGSL string

// CellMeshShaderSource returns the WGSL source of the cell mesh shader.
// Exposed so hosts with their own pipeline setup can compile it themselves.
func CellMeshShaderSource() string {
	return cellMeshWGSL
}
