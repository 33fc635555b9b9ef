package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/gekko3d/studio/editor"
)

const (
	ambientFactor     = 0.5
	directionalFactor = 1.0
)

var directionalLightPos = mgl32.Vec3{10, 10, 5}

// DrawItem is one object as the viewport should draw it this frame.
type DrawItem struct {
	ID        uuid.UUID
	Name      string
	Model     mgl32.Mat4
	Bounds    Bounds
	Color     editor.Color
	Tinted    bool
	Wireframe bool
	Selected  bool
	Helper    bool
}

type GridStyle struct {
	Visible      bool
	CellColor    editor.Color
	SectionColor editor.Color
}

type Light struct {
	Position  mgl32.Vec3
	Intensity float32
}

// Frame is the read-only view handed to the renderer. It is built from a
// session snapshot and never feeds back into the session.
type Frame struct {
	View        mgl32.Mat4
	Projection  mgl32.Mat4
	Items       []DrawItem
	Grid        GridStyle
	Ambient     float32
	Directional Light
	Environment editor.Environment
	Gizmo       Gizmo
}

func gridStyle(d editor.DisplayState) GridStyle {
	g := GridStyle{
		Visible:      d.ShowGrid,
		CellColor:    editor.MustParseColor("#aaaaaa"),
		SectionColor: editor.MustParseColor("#555555"),
	}
	if d.Environment == editor.EnvNight {
		g.CellColor = editor.MustParseColor("#444444")
		g.SectionColor = editor.MustParseColor("#666666")
	}
	return g
}

// BuildFrame assembles the per-frame view of sc under snap.
func BuildFrame(sc *Scene, cam Camera, snap editor.Snapshot, width, height int) Frame {
	d := snap.Display
	f := Frame{
		View:        cam.ViewMatrix(),
		Projection:  cam.Projection(width, height),
		Grid:        gridStyle(d),
		Ambient:     ambientFactor * d.LightIntensity,
		Directional: Light{Position: directionalLightPos, Intensity: directionalFactor * d.LightIntensity},
		Environment: d.Environment,
		Gizmo:       bindGizmo(sc, snap),
	}

	var selected uuid.UUID
	if snap.Selection != nil {
		selected = snap.Selection.ID
	}
	selWire := snap.SelectionWireframe()

	for _, o := range sc.Objects {
		helper := !o.Category.Selectable()
		if o.Category == editor.CategoryGridHelper && !d.ShowGrid {
			continue
		}
		item := DrawItem{
			ID:       o.ID,
			Name:     o.Name,
			Model:    ObjectToWorld(o.Transform),
			Bounds:   o.Bounds,
			Tinted:   o.Tinted,
			Selected: !helper && o.ID == selected,
			Helper:   helper,
		}
		if o.Tinted {
			item.Color = d.SelectedColor
		}
		if !helper {
			item.Wireframe = d.ShowWireframe || (item.Selected && selWire)
		}
		f.Items = append(f.Items, item)
	}
	return f
}
