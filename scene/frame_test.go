package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/studio/editor"
)

func itemFor(f Frame, id uuid.UUID) (DrawItem, bool) {
	for _, it := range f.Items {
		if it.ID == id {
			return it, true
		}
	}
	return DrawItem{}, false
}

func TestBuildFrameDefaults(t *testing.T) {
	sc, cube := sceneWithCube()
	s := editor.NewSession(editor.Options{Scene: sc})

	f := BuildFrame(sc, NewCamera(), s.Snapshot(), 800, 600)
	assert.Equal(t, float32(0.5), f.Ambient)
	assert.Equal(t, float32(1), f.Directional.Intensity)
	assert.Equal(t, mgl32.Vec3{10, 10, 5}, f.Directional.Position)
	assert.True(t, f.Grid.Visible)
	assert.Equal(t, "#aaaaaa", f.Grid.CellColor.Hex())
	assert.Equal(t, "#555555", f.Grid.SectionColor.Hex())
	assert.False(t, f.Gizmo.Visible)

	item, ok := itemFor(f, cube.ID)
	require.True(t, ok)
	assert.Equal(t, editor.DefaultSelectedColor, item.Color)
	assert.False(t, item.Selected)
	assert.False(t, item.Wireframe)
}

func TestBuildFrameNightAndLight(t *testing.T) {
	sc, _ := sceneWithCube()
	s := editor.NewSession(editor.Options{Scene: sc})
	s.SetDisplay(editor.WithEnvironment(editor.EnvNight))
	s.SetDisplay(editor.WithLightIntensity(2))
	s.ToggleGrid()

	f := BuildFrame(sc, NewCamera(), s.Snapshot(), 800, 600)
	assert.Equal(t, "#444444", f.Grid.CellColor.Hex())
	assert.Equal(t, "#666666", f.Grid.SectionColor.Hex())
	assert.False(t, f.Grid.Visible)
	assert.Equal(t, float32(1), f.Ambient)
	assert.Equal(t, float32(2), f.Directional.Intensity)
	for _, it := range f.Items {
		assert.NotEqual(t, "Grid", it.Name)
	}
}

func TestBuildFrameGizmoFollowsToolAndSelection(t *testing.T) {
	sc, cube := sceneWithCube()
	s := editor.NewSession(editor.Options{Scene: sc})
	target := cube.Target()
	s.OnPick(&target)

	f := BuildFrame(sc, NewCamera(), s.Snapshot(), 800, 600)
	require.True(t, f.Gizmo.Visible)
	assert.Equal(t, editor.ModeTranslate, f.Gizmo.Mode)
	assert.Equal(t, cube.ID, f.Gizmo.Target)
	assert.Len(t, f.Gizmo.Lines(), 3)

	s.SetTool(editor.ToolRotate)
	f = BuildFrame(sc, NewCamera(), s.Snapshot(), 800, 600)
	assert.Equal(t, editor.ModeRotate, f.Gizmo.Mode)
	assert.Len(t, f.Gizmo.Lines(), 3*ringSegments)

	s.SetTool(editor.ToolScale)
	f = BuildFrame(sc, NewCamera(), s.Snapshot(), 800, 600)
	assert.Len(t, f.Gizmo.Lines(), 6)

	s.SetTool(editor.ToolPaint)
	f = BuildFrame(sc, NewCamera(), s.Snapshot(), 800, 600)
	assert.False(t, f.Gizmo.Visible)
	assert.Empty(t, f.Gizmo.Lines())

	s.SetTool(editor.ToolMove)
	s.ClearSelection()
	f = BuildFrame(sc, NewCamera(), s.Snapshot(), 800, 600)
	assert.False(t, f.Gizmo.Visible)
}

func TestBuildFrameEdgeToolWireframesSelection(t *testing.T) {
	sc, cube := sceneWithCube()
	other := sc.Add(NewPrimitive(editor.PrimitiveSphere))
	s := editor.NewSession(editor.Options{Scene: sc})
	target := cube.Target()
	s.OnPick(&target)
	s.SetTool(editor.ToolEdge)

	f := BuildFrame(sc, NewCamera(), s.Snapshot(), 800, 600)
	sel, _ := itemFor(f, cube.ID)
	rest, _ := itemFor(f, other.ID)
	assert.True(t, sel.Selected)
	assert.True(t, sel.Wireframe)
	assert.False(t, rest.Wireframe)
}
