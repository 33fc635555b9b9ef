package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	studio "github.com/gekko3d/studio"
	"github.com/gekko3d/studio/editor"
)

func TestKeyNamesCoverToolShortcuts(t *testing.T) {
	for _, info := range editor.Tools() {
		r, ok := info.Kind.Shortcut()
		if !ok {
			continue
		}
		key := glfw.KeyA + glfw.Key(r-'a')
		name, found := keyName(key)
		assert.True(t, found, info.Name)
		got, ok := editor.ToolForKey(name)
		assert.True(t, ok, "key %q", name)
		assert.Equal(t, info.Kind, got)
	}
}

func TestKeyNamesSpecialKeys(t *testing.T) {
	name, ok := keyName(glfw.KeyDelete)
	assert.True(t, ok)
	assert.Equal(t, studio.KeyDelete, name)

	name, ok = keyName(glfw.Key7)
	assert.True(t, ok)
	assert.Equal(t, "7", name)

	_, ok = keyName(glfw.KeyLeftShift)
	assert.False(t, ok)
}

func TestModifiers(t *testing.T) {
	m := modifiers(glfw.ModControl | glfw.ModShift)
	assert.Equal(t, studio.Modifiers{Ctrl: true, Shift: true}, m)

	m = modifiers(glfw.ModSuper)
	assert.True(t, m.Meta)
	assert.False(t, m.Ctrl)
}
