package editor

import "github.com/go-gl/mathgl/mgl32"

// TransformMode is the manipulator shown by the transform gizmo.
type TransformMode int

const (
	ModeTranslate TransformMode = iota
	ModeRotate
	ModeScale
)

func (m TransformMode) String() string {
	switch m {
	case ModeTranslate:
		return "translate"
	case ModeRotate:
		return "rotate"
	case ModeScale:
		return "scale"
	}
	return "none"
}

// ModeFor maps a tool to its gizmo mode. ok is false for tools without a
// transform gizmo; the gizmo is hidden while such a tool is active.
func ModeFor(tool ToolKind) (mode TransformMode, ok bool) {
	switch tool {
	case ToolMove:
		return ModeTranslate, true
	case ToolRotate:
		return ModeRotate, true
	case ToolScale:
		return ModeScale, true
	}
	return 0, false
}

// Transform is what the sidebar shows for the selected object. Rotation is
// Euler angles in degrees.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}
