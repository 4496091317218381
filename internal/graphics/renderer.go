package graphics

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sort"

	"voxview/internal/atlas"
	"voxview/internal/chunks"
	"voxview/internal/profiling"
	"voxview/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrSurfaceUnavailable reports that the drawable currently has no area,
// e.g. while the window is minimized. Frames may be retried until it clears.
var ErrSurfaceUnavailable = errors.New("drawable has zero area")

// maxTileTableEntries matches the tileTable array length declared in the
// block vertex shader.
const maxTileTableEntries = 64

var blockVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec2 aTexCoord;
layout(location = 2) in vec3 instancePos;
layout(location = 3) in uint faceID;
layout(location = 4) in uint blockID;

uniform mat4 viewProj;
uniform int atlasGrid;
uniform int tileTable[64];
uniform int tileTableLen;

out vec2 TexCoord;

// Rotations taking the +Z unit quad onto each face, indexed by face id:
// front(+Z), back(-Z), left(-X), right(+X), top(+Y), bottom(-Y).
const mat3 faceRotation[6] = mat3[6](
	mat3(1, 0, 0, 0, 1, 0, 0, 0, 1),
	mat3(-1, 0, 0, 0, 1, 0, 0, 0, -1),
	mat3(0, 0, 1, 0, 1, 0, -1, 0, 0),
	mat3(0, 0, -1, 0, 1, 0, 1, 0, 0),
	mat3(1, 0, 0, 0, 0, -1, 0, 1, 0),
	mat3(1, 0, 0, 0, 0, 1, 0, -1, 0)
);

const vec3 faceNormal[6] = vec3[6](
	vec3(0, 0, 1),
	vec3(0, 0, -1),
	vec3(-1, 0, 0),
	vec3(1, 0, 0),
	vec3(0, 1, 0),
	vec3(0, -1, 0)
);

void main() {
	int f = int(faceID);
	vec3 offset = faceRotation[f] * aPos + 0.5 * faceNormal[f];
	vec3 worldPos = instancePos + vec3(0.5) + offset;
	gl_Position = viewProj * vec4(worldPos, 1.0);

	int entry = int(blockID) * 6 + f;
	int tile = 0;
	if (entry >= 0 && entry < tileTableLen) {
		tile = tileTable[entry];
	}
	vec2 corner = aTexCoord;
	// Side tiles are authored top-down; flip V so they stand upright.
	if (f < 4) {
		corner.y = 1.0 - corner.y;
	}
	float tileSize = 1.0 / float(atlasGrid);
	vec2 origin = vec2(float(tile % atlasGrid), float(tile / atlasGrid)) * tileSize;
	TexCoord = origin + corner * tileSize;
}
`

var blockFragmentShader = `#version 410 core
in vec2 TexCoord;

uniform sampler2D atlasTex;

out vec4 FragColor;

void main() {
	FragColor = texture(atlasTex, TexCoord);
}
`

// Renderer draws the loaded chunk set with one instanced draw per chunk.
type Renderer struct {
	shader  *Shader
	texture *Texture
	device  *Device

	// Frustum culling margin in blocks (inflates AABBs before testing)
	frustumMargin float32

	// Scratch slices reused across frames
	entries []*chunks.Entry
	visible []drawCandidate

	drawn  int
	culled int
}

type drawCandidate struct {
	entry  *chunks.Entry
	distSq float32
}

// NewRenderer initializes OpenGL state, compiles the block shader and loads
// the atlas texture from atlasPath. A missing atlas file falls back to a
// generated placeholder; any other load failure is returned.
func NewRenderer(layout atlas.Layout, atlasPath string) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Enable back-face culling (face quads are emitted CCW)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(0.1, 0.2, 0.3, 1.0)

	table := layout.TileTable()
	if len(table) > maxTileTableEntries {
		return nil, fmt.Errorf("atlas layout needs %d tile entries, shader table holds %d",
			len(table), maxTileTableEntries)
	}

	shader, err := NewShader(blockVertexShader, blockFragmentShader)
	if err != nil {
		return nil, err
	}

	texture, err := loadOrFallbackAtlas(layout, atlasPath)
	if err != nil {
		shader.Delete()
		return nil, err
	}

	r := &Renderer{
		shader:        shader,
		texture:       texture,
		device:        NewDevice(),
		frustumMargin: 1.0, // one block margin
	}

	// Uniforms that never change over the renderer's lifetime.
	shader.Use()
	shader.SetInt("atlasTex", 0)
	shader.SetInt("atlasGrid", int32(layout.GridSize()))
	shader.SetInt("tileTableLen", int32(len(table)))
	shader.SetIntArray("tileTable", table)

	return r, nil
}

func loadOrFallbackAtlas(layout atlas.Layout, path string) (*Texture, error) {
	if path == "" {
		return NewFallbackAtlasTexture(layout), nil
	}
	tex, err := LoadAtlasTexture(layout, path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("atlas %s not found, using generated placeholder", path)
		return NewFallbackAtlasTexture(layout), nil
	}
	if err != nil {
		return nil, err
	}
	return tex, nil
}

// Device exposes the buffer factory that chunk uploads go through.
func (r *Renderer) Device() *Device {
	return r.device
}

// DrawStats reports how many chunks the last Render drew and how many it
// culled before issuing draw calls.
func (r *Renderer) DrawStats() (drawn, culled int) {
	return r.drawn, r.culled
}

// Render draws every visible chunk near the camera. width and height are
// the framebuffer dimensions in pixels.
func (r *Renderer) Render(cam *Camera, mgr *chunks.Manager, width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrSurfaceUnavailable
	}
	defer profiling.Track("graphics.render")()

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	viewProj := cam.ViewProjection()
	planes := extractFrustumPlanes(viewProj)
	eye := cam.Position()

	r.entries = mgr.AppendEntries(r.entries[:0])
	r.visible = r.visible[:0]
	r.culled = 0
	for _, e := range r.entries {
		if e.Buffer.Count == 0 {
			continue
		}
		coord := e.Chunk.Coord
		min, max := r.computeChunkAABB(coord)
		if !aabbInFrustum(min, max, planes) {
			r.culled++
			continue
		}
		if mgr.FullySurrounded(coord) {
			r.culled++
			continue
		}
		center := min.Add(max).Mul(0.5)
		d := center.Sub(eye)
		r.visible = append(r.visible, drawCandidate{entry: e, distSq: d.Dot(d)})
	}
	r.drawn = len(r.visible)

	// Draw near chunks first so depth testing rejects occluded fragments.
	sort.Slice(r.visible, func(i, j int) bool {
		return r.visible[i].distSq < r.visible[j].distSq
	})

	r.shader.Use()
	r.shader.SetMatrix4("viewProj", &viewProj[0])
	r.texture.Bind(0)
	for _, c := range r.visible {
		gl.BindVertexArray(c.entry.Buffer.VAO)
		gl.DrawArraysInstanced(gl.TRIANGLES, 0, QuadVertexCount, c.entry.Buffer.Count)
	}
	gl.BindVertexArray(0)
	return nil
}

func (r *Renderer) computeChunkAABB(coord world.ChunkCoord) (mgl32.Vec3, mgl32.Vec3) {
	ox, oy, oz := coord.Origin()
	min := mgl32.Vec3{float32(ox), float32(oy), float32(oz)}
	max := mgl32.Vec3{
		min.X() + float32(world.ChunkSizeX),
		min.Y() + float32(world.ChunkSizeY),
		min.Z() + float32(world.ChunkSizeZ),
	}
	// Inflate by frustumMargin (in blocks)
	m := r.frustumMargin
	min = mgl32.Vec3{min.X() - m, min.Y() - m, min.Z() - m}
	max = mgl32.Vec3{max.X() + m, max.Y() + m, max.Z() + m}
	return min, max
}

// Close releases the GL objects owned by the renderer. Chunk buffers belong
// to their manager and must be released before this is called.
func (r *Renderer) Close() {
	r.shader.Delete()
	r.texture.Delete()
	r.device.Delete()
}
