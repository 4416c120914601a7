package gridmesh

import (
	"os"

	"github.com/google/uuid"
)

type AssetId string

// AssetServer owns mesh and material assets. Handles (Mesh, Material) are
// cheap ids; the renderer resolves them when building GPU state.
type AssetServer struct {
	meshes    map[AssetId]MeshAsset
	materials map[AssetId]MaterialAsset
}

type AssetServerModule struct{}

type Mesh struct {
	assetId AssetId
}

type Material struct {
	assetId AssetId
}

type MeshAsset struct {
	version  uint
	vertices []CellVertex
	indices  []uint32
}

type MaterialAsset struct {
	shaderName    string
	shaderListing string
	vertexType    any
}

func (server *AssetServer) LoadMesh(vertices []CellVertex, indices []uint32) Mesh {
	id := makeAssetId()
	server.meshes[id] = MeshAsset{
		version:  0,
		vertices: vertices,
		indices:  indices,
	}
	return Mesh{assetId: id}
}

// ReplaceMesh swaps the vertex data behind an existing handle and bumps the
// asset version so GPU buffers get rebuilt.
func (server *AssetServer) ReplaceMesh(mesh Mesh, vertices []CellVertex, indices []uint32) {
	asset, ok := server.meshes[mesh.assetId]
	if !ok {
		panic("unknown mesh asset: " + mesh.assetId)
	}
	server.meshes[mesh.assetId] = MeshAsset{
		version:  asset.version + 1,
		vertices: vertices,
		indices:  indices,
	}
}

// LoadMaterialSource registers a material from in-memory WGSL, typically the
// embedded cell mesh shader.
func (server *AssetServer) LoadMaterialSource(name string, wgsl string, vertexType any) Material {
	id := makeAssetId()
	server.materials[id] = MaterialAsset{
		shaderName:    name,
		shaderListing: wgsl,
		vertexType:    vertexType,
	}
	return Material{assetId: id}
}

// LoadMaterial registers a material from a WGSL file on disk.
func (server *AssetServer) LoadMaterial(filename string, vertexType any) Material {
	shaderData, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}
	return server.LoadMaterialSource(filename, string(shaderData), vertexType)
}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&AssetServer{
		meshes:    make(map[AssetId]MeshAsset),
		materials: make(map[AssetId]MaterialAsset),
	})
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
