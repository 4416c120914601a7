package gridmesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TransformComponent places an entity on the grid plane. Rotation is radians
// around the Z axis; the plane has no other meaningful rotation.
type TransformComponent struct {
	Position mgl32.Vec3
	Rotation float32
	Scale    mgl32.Vec3
}

// ModelMatrix builds the per-instance model matrix: translate, rotate around
// Z, then scale.
func (t *TransformComponent) ModelMatrix() mgl32.Mat4 {
	scale := t.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(mgl32.HomogRotate3DZ(t.Rotation)).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// Camera2DComponent defines an orthographic view over the grid plane in
// world units. Near/far default to -1..1 when left zero.
type Camera2DComponent struct {
	Left   float32
	Right  float32
	Bottom float32
	Top    float32
	Near   float32
	Far    float32
}

// CameraForGrid frames a whole grid of the given tile size.
func CameraForGrid(grid *CellGrid, tileSize float32) Camera2DComponent {
	return Camera2DComponent{
		Left:   0,
		Right:  float32(grid.Width()) * tileSize,
		Bottom: 0,
		Top:    float32(grid.Height()) * tileSize,
	}
}

// ViewProjection builds the camera matrix the vertex stage multiplies model
// space positions with.
func (c *Camera2DComponent) ViewProjection() mgl32.Mat4 {
	near, far := c.Near, c.Far
	if near == 0 && far == 0 {
		near, far = -1, 1
	}
	return mgl32.Ortho(c.Left, c.Right, c.Bottom, c.Top, near, far)
}
