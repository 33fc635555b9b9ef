package editor

import "fmt"

type Primitive int

const (
	PrimitiveCube Primitive = iota
	PrimitiveSphere
	PrimitiveCylinder
)

func (p Primitive) String() string {
	switch p {
	case PrimitiveCube:
		return "cube"
	case PrimitiveSphere:
		return "sphere"
	case PrimitiveCylinder:
		return "cylinder"
	}
	return fmt.Sprintf("primitive(%d)", int(p))
}

// SceneGraph is the part of the render collaborator the session mutates.
// The session only ever passes back handles it was given.
type SceneGraph interface {
	SetTransform(id Handle, t Transform) bool
	// Remove detaches the object and returns a func that puts it back.
	Remove(id Handle) (restore func(), ok bool)
	Duplicate(id Handle) (PickTarget, bool)
	AddPrimitive(p Primitive) PickTarget
}

// Saver persists the project when the user asks to save.
type Saver interface {
	Save(snap Snapshot) error
}

type SaverFunc func(snap Snapshot) error

func (f SaverFunc) Save(snap Snapshot) error { return f(snap) }

// Modifier names the modifier and boolean buttons of the modifiers tab.
// They only acknowledge the request; no geometry is changed.
type Modifier int

const (
	ModifierSubdivisionOn Modifier = iota
	ModifierSubdivisionOff
	ModifierUnion
	ModifierDifference
	ModifierIntersection
	ModifierBend
	ModifierTwist
	ModifierTaper
)

func (m Modifier) notification() Notification {
	switch m {
	case ModifierSubdivisionOn:
		return Notification{Title: "Subdivision Applied", Description: "Subdivision modifier has been applied."}
	case ModifierSubdivisionOff:
		return Notification{Title: "Subdivision Removed", Description: "Subdivision modifier has been removed."}
	case ModifierUnion:
		return Notification{Title: "Union Operation", Description: "Union boolean operation applied to selected objects."}
	case ModifierDifference:
		return Notification{Title: "Difference Operation", Description: "Difference boolean operation applied to selected objects."}
	case ModifierIntersection:
		return Notification{Title: "Intersection Operation", Description: "Intersection boolean operation applied to selected objects."}
	case ModifierBend:
		return Notification{Title: "Bend Modifier", Description: "Bend modifier applied to selected object."}
	case ModifierTwist:
		return Notification{Title: "Twist Modifier", Description: "Twist modifier applied to selected object."}
	case ModifierTaper:
		return Notification{Title: "Taper Modifier", Description: "Taper modifier applied to selected object."}
	}
	return Notification{Title: "Modifier", Description: fmt.Sprintf("Unknown modifier %d.", int(m))}
}
