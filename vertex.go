package gridmesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CellVertex is the vertex layout consumed by the cell mesh pipeline. The
// tags drive the wgpu vertex buffer layout, see vertexBufferLayout.
type CellVertex struct {
	position  [3]float32 `gridmesh:"layout" location:"0" format:"float3"`
	color     uint32     `gridmesh:"layout" location:"1" format:"uint"`
	localPos  [2]float32 `gridmesh:"layout" location:"2" format:"float2"`
	neighbors uint32     `gridmesh:"layout" location:"3" format:"uint"`
}

// VertexOutput is what the CPU vertex stage hands to the rasterizer: the
// clip-space position plus the attributes forwarded to the fragment stage.
type VertexOutput struct {
	ClipPosition mgl32.Vec4
	Color        [4]float32
	LocalPos     [2]float32
	Neighbors    NeighborMask
}

// TransformVertex runs the vertex stage on the CPU: model matrix lookup by
// instance index, projection to clip space, color unpack, and attribute
// pass-through. An instance index outside the model table is a host bug and
// panics like any out-of-range slice access.
func TransformVertex(v CellVertex, instance uint32, models []mgl32.Mat4, viewProj mgl32.Mat4) VertexOutput {
	model := models[instance]
	pos := mgl32.Vec4{v.position[0], v.position[1], v.position[2], 1}
	r, g, b, a := PackedColor(v.color).Unpack()
	return VertexOutput{
		ClipPosition: viewProj.Mul4(model).Mul4x1(pos),
		Color:        [4]float32{r, g, b, a},
		LocalPos:     v.localPos,
		Neighbors:    NeighborMask(v.neighbors),
	}
}
