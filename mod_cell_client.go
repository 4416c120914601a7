package gridmesh

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// CellMeshComponent attaches a renderable cell grid to an entity. Pair it
// with a TransformComponent; the transform becomes the per-instance model
// matrix the vertex stage looks up by instance index.
type CellMeshComponent struct {
	Grid     *CellGrid
	TileSize float32
	Color    PackedColor
}

// CellMeshRenderModule draws every CellMeshComponent through the cell mesh
// shader. Requires ClientModule, AssetServerModule and LoggingModule.
type CellMeshRenderModule struct {
	ClearColor wgpu.Color
}

type cameraUniform struct {
	ViewProj mgl32.Mat4
}

// GPU-side state of one grid entity.
type cellMeshInstance struct {
	mesh         Mesh
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   uint32
	gridVersion  uint
}

type cellRenderState struct {
	pipeline *wgpu.RenderPipeline

	cameraUniform cameraUniform
	cameraBuffer  *wgpu.Buffer

	// One model matrix per grid entity, indexed by instance id. Uploaded as
	// the storage buffer the vertex stage indexes with instance_index.
	modelMatrices  []mgl32.Mat4
	modelsBuffer   *wgpu.Buffer
	modelsCapacity int

	cameraBindGroup *wgpu.BindGroup
	modelsBindGroup *wgpu.BindGroup

	instanceIds   map[EntityId]int
	instanceOrder []EntityId
	instances     map[EntityId]*cellMeshInstance

	clearColor wgpu.Color
}

func (mod CellMeshRenderModule) Install(app *App, cmd *Commands) {
	clear := mod.ClearColor
	if clear == (wgpu.Color{}) {
		clear = wgpu.Color{R: 0.5, G: 0.8, B: 0.99, A: 1.0}
	}

	app.UseSystem(System(setupCellPipeline).InStage(PreRender))
	app.UseSystem(System(syncCellMeshes).InStage(PreRender))
	app.UseSystem(System(updateCellCamera).InStage(PreRender))
	app.UseSystem(System(cellRendering).InStage(Render))

	cmd.AddResources(&cellRenderState{
		cameraUniform: cameraUniform{ViewProj: mgl32.Ident4()},
		instanceIds:   map[EntityId]int{},
		instances:     map[EntityId]*cellMeshInstance{},
		clearColor:    clear,
	})
}

func setupCellPipeline(server *AssetServer, gpuState *GpuState, rState *cellRenderState, logger *DefaultLogger) {
	if rState.pipeline != nil {
		return
	}
	material := server.LoadMaterialSource("cell_mesh", CellMeshShaderSource(), CellVertex{})
	asset := server.materials[material.assetId]
	rState.pipeline = createRenderPipeline(asset.shaderName, asset.shaderListing, asset.vertexType, gpuState)
	logger.Infof("cell mesh pipeline created (format %v)", gpuState.surfaceConfig.Format)
}

// syncCellMeshes registers new grid entities, rebuilds meshes whose grid
// changed and refreshes every model matrix.
func syncCellMeshes(cmd *Commands, server *AssetServer, gpuState *GpuState, rState *cellRenderState, logger *DefaultLogger) {
	MakeQuery2[TransformComponent, CellMeshComponent](cmd).Map(
		func(eid EntityId, transform *TransformComponent, cellMesh *CellMeshComponent) bool {
			id, known := rState.instanceIds[eid]
			if !known {
				id = len(rState.instanceOrder)
				rState.instanceIds[eid] = id
				rState.instanceOrder = append(rState.instanceOrder, eid)
				rState.modelMatrices = append(rState.modelMatrices, mgl32.Ident4())

				vertices, indices := BuildGridMesh(cellMesh.Grid, cellMesh.TileSize, cellMesh.Color)
				vertexBuf, indexBuf := createVertexIndexBuffers(vertices, indices, gpuState.device)
				rState.instances[eid] = &cellMeshInstance{
					mesh:         server.LoadMesh(vertices, indices),
					vertexBuffer: vertexBuf,
					indexBuffer:  indexBuf,
					indexCount:   uint32(len(indices)),
					gridVersion:  cellMesh.Grid.Version(),
				}
				logger.Debugf("cell mesh instance %d: %dx%d grid, %d indices",
					id, cellMesh.Grid.Width(), cellMesh.Grid.Height(), len(indices))
			}

			inst := rState.instances[eid]
			if inst.gridVersion != cellMesh.Grid.Version() {
				vertices, indices := BuildGridMesh(cellMesh.Grid, cellMesh.TileSize, cellMesh.Color)
				server.ReplaceMesh(inst.mesh, vertices, indices)
				inst.vertexBuffer.Release()
				inst.indexBuffer.Release()
				inst.vertexBuffer, inst.indexBuffer = createVertexIndexBuffers(vertices, indices, gpuState.device)
				inst.indexCount = uint32(len(indices))
				inst.gridVersion = cellMesh.Grid.Version()
			}

			rState.modelMatrices[id] = transform.ModelMatrix()
			return true
		})
}

func updateCellCamera(cmd *Commands, rState *cellRenderState) {
	MakeQuery1[Camera2DComponent](cmd).Map(
		func(eid EntityId, camera *Camera2DComponent) bool {
			rState.cameraUniform.ViewProj = camera.ViewProjection()
			// First camera wins.
			return false
		})
}

func (rState *cellRenderState) ensureBindGroups(gpuState *GpuState) {
	if rState.cameraBuffer == nil {
		rState.cameraBuffer = createBuffer("camera", rState.cameraUniform, gpuState,
			wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)

		layout := rState.pipeline.GetBindGroupLayout(0)
		defer layout.Release()
		bindGroup, err := gpuState.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Layout: layout,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, Buffer: rState.cameraBuffer, Size: wgpu.WholeSize},
			},
		})
		if err != nil {
			panic(err)
		}
		rState.cameraBindGroup = bindGroup
	}

	// The models buffer grows with the number of grid entities; recreate it
	// (and its bind group) whenever the count outgrows the allocation.
	if rState.modelsBuffer == nil || rState.modelsCapacity < len(rState.modelMatrices) {
		if rState.modelsBuffer != nil {
			rState.modelsBuffer.Release()
		}
		if rState.modelsBindGroup != nil {
			rState.modelsBindGroup.Release()
		}
		rState.modelsBuffer = createBuffer("models", rState.modelMatrices, gpuState,
			wgpu.BufferUsageStorage|wgpu.BufferUsageCopyDst)
		rState.modelsCapacity = len(rState.modelMatrices)

		layout := rState.pipeline.GetBindGroupLayout(1)
		defer layout.Release()
		bindGroup, err := gpuState.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Layout: layout,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, Buffer: rState.modelsBuffer, Size: wgpu.WholeSize},
			},
		})
		if err != nil {
			panic(err)
		}
		rState.modelsBindGroup = bindGroup
	}
}

// cellRendering records and submits one frame.
func cellRendering(rState *cellRenderState, gpuState *GpuState) {
	if rState.pipeline == nil || len(rState.instanceOrder) == 0 {
		return
	}
	rState.ensureBindGroups(gpuState)

	gpuState.queue.WriteBuffer(rState.cameraBuffer, 0, toBufferBytes(rState.cameraUniform))
	gpuState.queue.WriteBuffer(rState.modelsBuffer, 0, toBufferBytes(rState.modelMatrices))

	nextTexture, err := gpuState.surface.GetCurrentTexture()
	if err != nil {
		panic(err)
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()

	encoder, err := gpuState.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: rState.clearColor,
			},
		},
	})
	defer renderPass.Release()

	renderPass.SetPipeline(rState.pipeline)
	renderPass.SetBindGroup(0, rState.cameraBindGroup, nil)
	renderPass.SetBindGroup(1, rState.modelsBindGroup, nil)

	for _, eid := range rState.instanceOrder {
		inst := rState.instances[eid]
		instanceId := rState.instanceIds[eid]
		renderPass.SetVertexBuffer(0, inst.vertexBuffer, 0, wgpu.WholeSize)
		renderPass.SetIndexBuffer(inst.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		renderPass.DrawIndexed(inst.indexCount, 1, 0, 0, uint32(instanceId))
	}

	err = renderPass.End()
	if err != nil {
		panic(err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	gpuState.queue.Submit(cmdBuffer)
	gpuState.surface.Present()
}
