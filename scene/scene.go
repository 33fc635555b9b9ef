package scene

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/gekko3d/studio/editor"
)

// Scene owns every object in the viewport. The editor only holds handles to
// them.
type Scene struct {
	Objects []*Object
}

// New returns a scene holding the grid and axes helpers.
func New() *Scene {
	return &Scene{Objects: []*Object{newGridHelper(), newAxesHelper()}}
}

func (s *Scene) Add(o *Object) *Object {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	s.Objects = append(s.Objects, o)
	return o
}

func (s *Scene) Find(id uuid.UUID) (*Object, bool) {
	for _, o := range s.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// Meshes returns the selectable objects in insertion order.
func (s *Scene) Meshes() []*Object {
	var out []*Object
	for _, o := range s.Objects {
		if o.Category.Selectable() {
			out = append(out, o)
		}
	}
	return out
}

func (s *Scene) SetTransform(id editor.Handle, t editor.Transform) bool {
	o, ok := s.Find(id)
	if !ok {
		return false
	}
	o.Transform = t
	return true
}

// Remove detaches an object. The returned func reinserts it at its old index.
func (s *Scene) Remove(id editor.Handle) (restore func(), ok bool) {
	idx := slices.IndexFunc(s.Objects, func(o *Object) bool { return o.ID == id })
	if idx < 0 || !s.Objects[idx].Category.Selectable() {
		return nil, false
	}
	removed := s.Objects[idx]
	s.Objects = slices.Delete(s.Objects, idx, idx+1)

	return func() {
		if _, exists := s.Find(removed.ID); exists {
			return
		}
		at := min(idx, len(s.Objects))
		s.Objects = slices.Insert(s.Objects, at, removed)
	}, true
}

func (s *Scene) Duplicate(id editor.Handle) (editor.PickTarget, bool) {
	o, ok := s.Find(id)
	if !ok || !o.Category.Selectable() {
		return editor.PickTarget{}, false
	}
	c := o.clone()
	c.Transform.Position = c.Transform.Position.Add(mgl32.Vec3{1, 0, 0})
	s.Add(c)
	return c.Target(), true
}

func (s *Scene) AddPrimitive(p editor.Primitive) editor.PickTarget {
	return s.Add(NewPrimitive(p)).Target()
}
