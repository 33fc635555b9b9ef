package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/studio/editor"
)

type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

type Hit struct {
	Object *Object
	T      float32
	Point  mgl32.Vec3
}

// Pick returns the object under ray, or nil. Selectable objects always win
// over helpers, so the grid never hides a model sitting below it. A hidden
// grid is not tested at all.
func (s *Scene) Pick(ray Ray, showGrid bool) *Hit {
	var mesh, helper *Hit
	for _, obj := range s.Objects {
		if obj.Category == editor.CategoryGridHelper && !showGrid {
			continue
		}
		hit := hitObject(obj, ray)
		if hit == nil {
			continue
		}
		if obj.Category.Selectable() {
			if mesh == nil || hit.T < mesh.T {
				mesh = hit
			}
		} else if helper == nil || hit.T < helper.T {
			helper = hit
		}
	}
	if mesh != nil {
		return mesh
	}
	return helper
}

func hitObject(obj *Object, ray Ray) *Hit {
	if obj.Bounds.Empty() {
		return nil
	}
	w2o, ok := WorldToObject(obj.Transform)
	if !ok {
		return nil
	}
	o2w := ObjectToWorld(obj.Transform)

	// Object space test against the local box.
	ro := w2o.Mul4x1(ray.Origin.Vec4(1.0)).Vec3()
	rd := w2o.Mul4x1(ray.Direction.Vec4(0.0)).Vec3()
	local := Ray{Origin: ro, Direction: rd}

	tMin, tMax := intersectAABB(local, obj.Bounds.Min, obj.Bounds.Max)
	if tMin > tMax || tMax < 0 {
		return nil
	}

	pHitWs := o2w.Mul4x1(ro.Add(rd.Mul(tMin)).Vec4(1.0)).Vec3()
	return &Hit{Object: obj, T: pHitWs.Sub(ray.Origin).Len(), Point: pHitWs}
}

// PickTarget runs Pick and converts the hit into what the session consumes.
// A miss yields nil.
func (s *Scene) PickTarget(ray Ray, showGrid bool) *editor.PickTarget {
	hit := s.Pick(ray, showGrid)
	if hit == nil {
		return nil
	}
	t := hit.Object.Target()
	return &t
}

func intersectAABB(ray Ray, minB, maxB mgl32.Vec3) (float32, float32) {
	invDir := mgl32.Vec3{1.0 / (ray.Direction.X() + 1e-8), 1.0 / (ray.Direction.Y() + 1e-8), 1.0 / (ray.Direction.Z() + 1e-8)}
	t1 := minB.Sub(ray.Origin)
	t1 = mgl32.Vec3{t1.X() * invDir.X(), t1.Y() * invDir.Y(), t1.Z() * invDir.Z()}
	t2 := maxB.Sub(ray.Origin)
	t2 = mgl32.Vec3{t2.X() * invDir.X(), t2.Y() * invDir.Y(), t2.Z() * invDir.Z()}

	near := mgl32.Vec3{min(t1.X(), t2.X()), min(t1.Y(), t2.Y()), min(t1.Z(), t2.Z())}
	far := mgl32.Vec3{max(t1.X(), t2.X()), max(t1.Y(), t2.Y()), max(t1.Z(), t2.Z())}

	realMin := max(0, near.X(), near.Y(), near.Z())
	realMax := min(far.X(), far.Y(), far.Z())

	return realMin, realMax
}
