package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/gekko3d/studio/editor"
)

func TestObjectToWorldRoundTrip(t *testing.T) {
	tr := editor.Transform{
		Position: mgl32.Vec3{1, 2, 3},
		Rotation: mgl32.Vec3{0, 90, 0},
		Scale:    mgl32.Vec3{2, 2, 2},
	}
	o2w := ObjectToWorld(tr)
	w2o, ok := WorldToObject(tr)
	assert.True(t, ok)

	p := mgl32.Vec3{0.5, -0.25, 1}
	world := o2w.Mul4x1(p.Vec4(1)).Vec3()
	back := w2o.Mul4x1(world.Vec4(1)).Vec3()
	assert.True(t, back.ApproxEqualThreshold(p, 1e-4), "got %v want %v", back, p)
}

func TestObjectToWorldScalesThenTranslates(t *testing.T) {
	tr := editor.IdentityTransform()
	tr.Position = mgl32.Vec3{1, 0, 0}
	tr.Scale = mgl32.Vec3{2, 2, 2}

	got := ObjectToWorld(tr).Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assert.True(t, got.ApproxEqual(mgl32.Vec3{3, 0, 0}), "got %v", got)
}

func TestWorldToObjectZeroScale(t *testing.T) {
	tr := editor.IdentityTransform()
	tr.Scale = mgl32.Vec3{1, 0, 1}
	_, ok := WorldToObject(tr)
	assert.False(t, ok)
}
