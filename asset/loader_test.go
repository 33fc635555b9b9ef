package asset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hschendel/stl"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGLB(t *testing.T, dir string) string {
	t.Helper()
	doc := gltf.NewDocument()
	positions := [][3]float32{{0, 0, 0}, {2, 0, 0}, {0, 4, 0}, {2, 4, -1}}
	indices := []uint32{0, 1, 2, 1, 3, 2}

	pos := modeler.WritePosition(doc, positions)
	idx := modeler.WriteIndices(doc, indices)
	prim := &gltf.Primitive{
		Attributes: map[string]uint32{gltf.POSITION: uint32(pos)},
		Indices:    gltf.Index(uint32(idx)),
	}
	doc.Meshes = []*gltf.Mesh{{Name: "Panel", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))

	p := filepath.Join(dir, "panel.glb")
	require.NoError(t, gltf.SaveBinary(doc, p))
	return p
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]Format{
		"chair.glb":                         FormatGLB,
		"scenes/Room.GLTF":                  FormatGLTF,
		"https://cdn.example.com/a.stl?v=3": FormatSTL,
		"file:///tmp/teapot.obj":            FormatOBJ,
		"legacy.fbx":                        FormatFBX,
	}
	for ref, want := range cases {
		got, err := DetectFormat(ref)
		require.NoError(t, err, ref)
		assert.Equal(t, want, got, ref)
	}

	_, err := DetectFormat("notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, err = DetectFormat("")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestInspectGLB(t *testing.T) {
	dir := t.TempDir()
	writeGLB(t, dir)

	info, err := NewLoader(dir).Inspect("panel.glb")
	require.NoError(t, err)
	assert.Equal(t, FormatGLB, info.Format)
	assert.Equal(t, "Panel", info.Name)
	assert.Equal(t, 1, info.Meshes)
	assert.Equal(t, 2, info.Triangles)
	assert.Equal(t, 4, info.Vertices)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, info.Bounds.Min)
	assert.Equal(t, mgl32.Vec3{2, 4, 0}, info.Bounds.Max)
}

func TestLoadRecentresModel(t *testing.T) {
	p := writeGLB(t, t.TempDir())

	obj, info, err := NewLoader("").Load(p)
	require.NoError(t, err)
	assert.Equal(t, "Panel", obj.Name)
	assert.Equal(t, p, obj.Source)
	assert.Equal(t, info.Bounds.Size(), obj.Bounds.Size())
	assert.True(t, obj.Bounds.Center().ApproxEqual(mgl32.Vec3{}))
	assert.False(t, obj.Tinted)
}

func TestInspectSTL(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bracket.stl")
	solid := &stl.Solid{
		Name: "bracket",
		Triangles: []stl.Triangle{
			{Normal: stl.Vec3{0, 0, 1}, Vertices: [3]stl.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 3, 0}}},
			{Normal: stl.Vec3{0, 0, 1}, Vertices: [3]stl.Vec3{{1, 0, 0}, {1, 3, 2}, {0, 3, 0}}},
		},
	}
	require.NoError(t, solid.WriteFile(p))

	info, err := NewLoader("").Inspect(p)
	require.NoError(t, err)
	assert.Equal(t, FormatSTL, info.Format)
	assert.Equal(t, 2, info.Triangles)
	assert.Equal(t, 6, info.Vertices)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, info.Bounds.Min)
	assert.Equal(t, mgl32.Vec3{1, 3, 2}, info.Bounds.Max)
}

const quadOBJ = `# quad
o Quad
v -1 0 -1
v 1 0 -1
v 1 0.5 1
v -1 0 1
vn 0 1 0
f 1//1 2//1 3//1 4//1
`

func TestInspectOBJ(t *testing.T) {
	p := filepath.Join(t.TempDir(), "quad.obj")
	require.NoError(t, os.WriteFile(p, []byte(quadOBJ), 0o644))

	info, err := NewLoader("").Inspect(p)
	require.NoError(t, err)
	assert.Equal(t, "Quad", info.Name)
	assert.Equal(t, 4, info.Vertices)
	assert.Equal(t, 2, info.Triangles)
	assert.Equal(t, mgl32.Vec3{-1, 0, -1}, info.Bounds.Min)
	assert.Equal(t, mgl32.Vec3{1, 0.5, 1}, info.Bounds.Max)
}

func TestInspectOBJWithoutVertices(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.obj")
	require.NoError(t, os.WriteFile(p, []byte("# nothing\n"), 0o644))

	_, err := NewLoader("").Inspect(p)
	assert.ErrorIs(t, err, ErrEmptyModel)
}

func TestInspectRejects(t *testing.T) {
	l := NewLoader(t.TempDir())

	_, err := l.Inspect("model.fbx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = l.Inspect("https://example.com/model.glb")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = l.Inspect("missing.stl")
	assert.Error(t, err)
}
