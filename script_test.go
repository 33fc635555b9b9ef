package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/studio/editor"
)

func TestExecSidebarCommands(t *testing.T) {
	ta := newTestApp(t, "")
	s := ta.ed.Session

	require.NoError(t, ta.Exec("tool scale"))
	assert.Equal(t, editor.ToolScale, s.Tool())
	require.NoError(t, ta.Exec("tab material"))
	assert.Equal(t, editor.TabMaterial, s.Tab())
	require.NoError(t, ta.Exec("light 1.5"))
	assert.Equal(t, float32(1.5), s.Display().LightIntensity)
	require.NoError(t, ta.Exec("env night"))
	assert.Equal(t, editor.EnvNight, s.Display().Environment)
	require.NoError(t, ta.Exec("wireframe"))
	assert.True(t, s.Display().ShowWireframe)

	require.NoError(t, ta.Exec("undo"))
	assert.False(t, s.Display().ShowWireframe)
	require.NoError(t, ta.Exec("redo"))
	assert.True(t, s.Display().ShowWireframe)
}

func TestExecIgnoresBlankAndComments(t *testing.T) {
	ta := newTestApp(t, "")
	assert.NoError(t, ta.Exec(""))
	assert.NoError(t, ta.Exec("   "))
	assert.NoError(t, ta.Exec("# select the cube"))
}

func TestExecRejectsUnknown(t *testing.T) {
	ta := newTestApp(t, "")
	assert.ErrorIs(t, ta.Exec("fly away"), ErrUnknownCommand)
	assert.ErrorIs(t, ta.Exec("add pyramid"), ErrUnknownCommand)
	assert.ErrorIs(t, ta.Exec("modifier melt"), ErrUnknownCommand)
	assert.Error(t, ta.Exec("move 1 2"))
	assert.Error(t, ta.Exec("light bright"))
}

func TestExecInputLinesRunNextFrame(t *testing.T) {
	ta := newTestApp(t, "")

	require.NoError(t, ta.Exec("click 400 300"))
	require.NoError(t, ta.Exec("key g"))
	_, ok := ta.ed.Session.Selection()
	assert.False(t, ok, "queued until the frame runs")

	ta.Step()
	_, ok = ta.ed.Session.Selection()
	assert.True(t, ok)
	assert.Equal(t, editor.ToolMove, ta.ed.Session.Tool())

	require.NoError(t, ta.Exec("focus text"))
	require.NoError(t, ta.Exec("key delete"))
	ta.Step()
	assert.Len(t, ta.ed.Scene.Meshes(), 1)

	require.NoError(t, ta.Exec("focus none"))
	require.NoError(t, ta.Exec("key delete"))
	ta.Step()
	assert.Empty(t, ta.ed.Scene.Meshes())

	require.NoError(t, ta.Exec("key ctrl+z"))
	ta.Step()
	assert.Len(t, ta.ed.Scene.Meshes(), 1)
}

func TestExecAddAndDuplicate(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.Exec("add sphere"))
	require.Len(t, ta.ed.Scene.Meshes(), 2)

	require.NoError(t, ta.Exec("duplicate"))
	assert.Len(t, ta.ed.Scene.Meshes(), 2, "nothing selected")
	latest, _ := ta.toasts.Latest()
	assert.Equal(t, "Nothing Selected", latest.Title)

	require.NoError(t, ta.Exec("click 400 300"))
	ta.Step()
	require.NoError(t, ta.Exec("duplicate"))
	assert.Len(t, ta.ed.Scene.Meshes(), 3)

	require.NoError(t, ta.Exec("undo"))
	require.NoError(t, ta.Exec("undo"))
	assert.Len(t, ta.ed.Scene.Meshes(), 1)
}

func TestExecExport(t *testing.T) {
	ta := newTestApp(t, "")

	require.NoError(t, ta.Exec("export stl high 2"))
	latest, _ := ta.toasts.Latest()
	assert.Equal(t, "Export Successful", latest.Title)

	err := ta.Exec("export stl high 5")
	assert.ErrorIs(t, err, editor.ErrExportScale)
	latest, _ = ta.toasts.Latest()
	assert.Equal(t, editor.SeverityDestructive, latest.Severity)
}

func TestExecNavigation(t *testing.T) {
	ta := newTestApp(t, "")

	require.NoError(t, ta.Exec("export-view"))
	ta.Step()
	assert.Equal(t, ViewExport, ta.State())

	require.NoError(t, ta.Exec("back"))
	require.NoError(t, ta.Exec("back"))
	ta.Step()
	assert.Equal(t, ViewEditor, ta.State(), "two backs in one frame apply once")

	require.NoError(t, ta.Exec("back"))
	ta.Step()
	assert.Equal(t, ViewGallery, ta.State())
	assert.ErrorIs(t, ta.Exec("grid"), ErrNoSession)

	require.NoError(t, ta.Exec("open"))
	ta.Step()
	assert.Equal(t, ViewEditor, ta.State())
	require.NoError(t, ta.Exec("grid"))

	require.NoError(t, ta.Exec("quit"))
	assert.False(t, ta.Step())
	assert.True(t, ta.Finished())
}
