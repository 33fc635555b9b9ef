package editor

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type recorder struct {
	got []Notification
}

func (r *recorder) Notify(n Notification) { r.got = append(r.got, n) }

func (r *recorder) last() Notification {
	if len(r.got) == 0 {
		return Notification{}
	}
	return r.got[len(r.got)-1]
}

func (r *recorder) titles() []string {
	var out []string
	for _, n := range r.got {
		out = append(out, n.Title)
	}
	return out
}

type fakeScene struct {
	objects map[Handle]PickTarget
	sets    int
}

func newFakeScene() *fakeScene {
	return &fakeScene{objects: map[Handle]PickTarget{}}
}

func (f *fakeScene) add(name string) PickTarget {
	t := PickTarget{ID: uuid.New(), Name: name, Type: "Mesh", Category: CategoryMesh, Transform: IdentityTransform()}
	f.objects[t.ID] = t
	return t
}

func (f *fakeScene) SetTransform(id Handle, t Transform) bool {
	o, ok := f.objects[id]
	if !ok {
		return false
	}
	o.Transform = t
	f.objects[id] = o
	f.sets++
	return true
}

func (f *fakeScene) Remove(id Handle) (func(), bool) {
	o, ok := f.objects[id]
	if !ok {
		return nil, false
	}
	delete(f.objects, id)
	return func() { f.objects[id] = o }, true
}

func (f *fakeScene) Duplicate(id Handle) (PickTarget, bool) {
	o, ok := f.objects[id]
	if !ok {
		return PickTarget{}, false
	}
	o.ID = uuid.New()
	o.Transform.Position = o.Transform.Position.Add(mgl32.Vec3{1, 0, 0})
	f.objects[o.ID] = o
	return o, true
}

func (f *fakeScene) AddPrimitive(p Primitive) PickTarget {
	return f.add(p.String())
}
