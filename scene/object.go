package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/gekko3d/studio/editor"
)

// Bounds is an axis-aligned box in object space.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func (b Bounds) Empty() bool {
	return b.Max.X() <= b.Min.X() && b.Max.Y() <= b.Min.Y() && b.Max.Z() <= b.Min.Z()
}

func (b Bounds) Center() mgl32.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }
func (b Bounds) Size() mgl32.Vec3   { return b.Max.Sub(b.Min) }

// Object is a node of the viewport scene. Helpers (grid, axes) are scene
// furniture and can never be selected.
type Object struct {
	ID        uuid.UUID
	Name      string
	Type      string
	Category  editor.ObjectCategory
	Transform editor.Transform
	Bounds    Bounds

	// Tinted objects are drawn in the session's selected color; loaded
	// models keep their own materials.
	Tinted bool
	Source string
}

func (o *Object) Target() editor.PickTarget {
	return editor.PickTarget{
		ID:        o.ID,
		Name:      o.Name,
		Type:      o.Type,
		Category:  o.Category,
		Transform: o.Transform,
	}
}

func (o *Object) clone() *Object {
	c := *o
	c.ID = uuid.New()
	return &c
}

func unitBounds() Bounds {
	return Bounds{Min: mgl32.Vec3{-0.5, -0.5, -0.5}, Max: mgl32.Vec3{0.5, 0.5, 0.5}}
}

// NewUnitCube is the object shown when no model was supplied.
func NewUnitCube() *Object {
	return &Object{
		ID:        uuid.New(),
		Name:      "Cube",
		Type:      "Mesh",
		Category:  editor.CategoryMesh,
		Transform: editor.IdentityTransform(),
		Bounds:    unitBounds(),
		Tinted:    true,
	}
}

func NewPrimitive(p editor.Primitive) *Object {
	o := NewUnitCube()
	switch p {
	case editor.PrimitiveSphere:
		o.Name = "Sphere"
	case editor.PrimitiveCylinder:
		o.Name = "Cylinder"
		o.Bounds = Bounds{Min: mgl32.Vec3{-0.5, -1, -0.5}, Max: mgl32.Vec3{0.5, 1, 0.5}}
	}
	return o
}

// NewModel wraps loaded geometry bounds. The model is recentred on the origin.
func NewModel(name, source string, b Bounds) *Object {
	c := b.Center()
	return &Object{
		ID:        uuid.New(),
		Name:      name,
		Type:      "Mesh",
		Category:  editor.CategoryMesh,
		Transform: editor.IdentityTransform(),
		Bounds:    Bounds{Min: b.Min.Sub(c), Max: b.Max.Sub(c)},
		Source:    source,
	}
}

const gridExtent = 50

func newGridHelper() *Object {
	return &Object{
		ID:        uuid.New(),
		Name:      "Grid",
		Type:      "GridHelper",
		Category:  editor.CategoryGridHelper,
		Transform: editor.IdentityTransform(),
		Bounds: Bounds{
			Min: mgl32.Vec3{-gridExtent, -0.001, -gridExtent},
			Max: mgl32.Vec3{gridExtent, 0.001, gridExtent},
		},
	}
}

func newAxesHelper() *Object {
	return &Object{
		ID:        uuid.New(),
		Name:      "Axes",
		Type:      "AxesHelper",
		Category:  editor.CategoryAxesHelper,
		Transform: editor.IdentityTransform(),
	}
}
