package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/studio/editor"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "studio.yaml")
	doc := `
debug: true
display:
  environment: night
  selected_color: "#ef4444"
  light_intensity: 1.5
export:
  format: stl
  quality: high
`
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, editor.EnvNight, cfg.Display.Environment)
	assert.Equal(t, "#ef4444", cfg.Display.SelectedColor.Hex())
	assert.Equal(t, float32(1.5), cfg.Display.LightIntensity)
	assert.True(t, cfg.Display.ShowGrid, "unset keys keep defaults")
	assert.Equal(t, editor.FormatSTL, cfg.Export.Format)
	assert.Equal(t, editor.QualityHigh, cfg.Export.Quality)
	assert.Equal(t, float32(1), cfg.Export.Scale)
	assert.Equal(t, Default().Window, cfg.Window)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"environment": "display:\n  environment: mars\n",
		"color":       "display:\n  selected_color: notacolor\n",
		"light":       "display:\n  light_intensity: 3\n",
		"format":      "export:\n  format: dwg\n",
		"scale":       "export:\n  scale: 5\n",
		"history":     "history_limit: -1\n",
		"syntax":      "display: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(p, []byte(doc), 0o644))
			_, err := Load(p)
			assert.Error(t, err)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "studio.yaml")
	cfg := Default()
	cfg.Display.ShowWireframe = true
	cfg.Display.Environment = editor.EnvDawn
	cfg.Export.Scale = 0.5
	cfg.HistoryLimit = 10

	require.NoError(t, cfg.Save(p))
	got, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSessionOptions(t *testing.T) {
	cfg := Default()
	cfg.Display.ShowGrid = false
	cfg.HistoryLimit = 3

	s := editor.NewSession(cfg.SessionOptions())
	assert.False(t, s.Display().ShowGrid)
	assert.Equal(t, cfg.Export, s.ExportDefaults())
}

func TestLoadRejectsUnquotedColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  selected_color: #4f46e5\n"), 0o644))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2: selected_color has no value")
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(path, []byte("display:\n  selected_color: \"#4f46e5\"\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, editor.MustParseColor("#4f46e5"), cfg.Display.SelectedColor)
}

func TestLoadEmptyFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
