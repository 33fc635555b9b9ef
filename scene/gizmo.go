package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/gekko3d/studio/editor"
)

const gizmoSize = 0.75

var (
	axisColorX = editor.MustParseColor("#ff3653")
	axisColorY = editor.MustParseColor("#0adb50")
	axisColorZ = editor.MustParseColor("#2c8fdf")
)

// GizmoLine is one wireframe segment of the transform gizmo.
type GizmoLine struct {
	Start mgl32.Vec3
	End   mgl32.Vec3
	Color editor.Color
}

// Gizmo is the transform manipulator as bound for the current frame. It is
// rebuilt from the session snapshot every frame, so a tool switch or a
// cleared selection detaches it immediately.
type Gizmo struct {
	Visible bool
	Mode    editor.TransformMode
	Target  uuid.UUID
	Origin  mgl32.Vec3
}

func bindGizmo(sc *Scene, snap editor.Snapshot) Gizmo {
	mode, target, visible := snap.Gizmo()
	if !visible {
		return Gizmo{Mode: mode}
	}
	obj, ok := sc.Find(target)
	if !ok {
		return Gizmo{Mode: mode}
	}
	return Gizmo{
		Visible: true,
		Mode:    mode,
		Target:  target,
		Origin:  obj.Transform.Position,
	}
}

// Lines returns the axis handles to draw. Rotate mode draws a ring per axis.
func (g Gizmo) Lines() []GizmoLine {
	if !g.Visible {
		return nil
	}
	axes := [3]struct {
		dir   mgl32.Vec3
		color editor.Color
	}{
		{mgl32.Vec3{1, 0, 0}, axisColorX},
		{mgl32.Vec3{0, 1, 0}, axisColorY},
		{mgl32.Vec3{0, 0, 1}, axisColorZ},
	}

	var lines []GizmoLine
	for _, a := range axes {
		switch g.Mode {
		case editor.ModeRotate:
			lines = append(lines, ring(g.Origin, a.dir, gizmoSize, a.color)...)
		case editor.ModeScale:
			end := g.Origin.Add(a.dir.Mul(gizmoSize))
			lines = append(lines, GizmoLine{Start: g.Origin, End: end, Color: a.color})
			// Scale handles end in a short crossbar.
			bar := perpendicular(a.dir).Mul(gizmoSize * 0.1)
			lines = append(lines, GizmoLine{Start: end.Sub(bar), End: end.Add(bar), Color: a.color})
		default:
			lines = append(lines, GizmoLine{Start: g.Origin, End: g.Origin.Add(a.dir.Mul(gizmoSize)), Color: a.color})
		}
	}
	return lines
}

func perpendicular(axis mgl32.Vec3) mgl32.Vec3 {
	if axis.Y() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return mgl32.Vec3{1, 0, 0}
}

const ringSegments = 24

func ring(center, axis mgl32.Vec3, radius float32, color editor.Color) []GizmoLine {
	u := perpendicular(axis)
	lines := make([]GizmoLine, 0, ringSegments)
	point := func(i int) mgl32.Vec3 {
		angle := 2 * math.Pi * float32(i) / ringSegments
		q := mgl32.QuatRotate(angle, axis)
		return center.Add(q.Rotate(u).Mul(radius))
	}
	for i := 0; i < ringSegments; i++ {
		lines = append(lines, GizmoLine{Start: point(i), End: point(i + 1), Color: color})
	}
	return lines
}
