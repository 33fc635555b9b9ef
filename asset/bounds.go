package asset

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/studio/scene"
)

type boundsBuilder struct {
	min, max mgl32.Vec3
	n        int
}

func newBoundsBuilder() *boundsBuilder {
	inf := float32(math.Inf(1))
	return &boundsBuilder{
		min: mgl32.Vec3{inf, inf, inf},
		max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

func (b *boundsBuilder) add(v [3]float32) {
	for i := 0; i < 3; i++ {
		b.min[i] = min(b.min[i], v[i])
		b.max[i] = max(b.max[i], v[i])
	}
	b.n++
}

func (b *boundsBuilder) bounds() (scene.Bounds, bool) {
	if b.n == 0 {
		return scene.Bounds{}, false
	}
	return scene.Bounds{Min: b.min, Max: b.max}, true
}
