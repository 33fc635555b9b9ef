package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a Y-up perspective camera orbiting a target.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	FovY     float32 // degrees
	Near     float32
	Far      float32
}

func NewCamera() Camera {
	return Camera{
		Position: mgl32.Vec3{5, 5, 5},
		Target:   mgl32.Vec3{0, 0, 0},
		FovY:     50,
		Near:     0.1,
		Far:      1000,
	}
}

var worldUp = mgl32.Vec3{0, 1, 0}

func (c Camera) Forward() mgl32.Vec3 { return c.Target.Sub(c.Position).Normalize() }
func (c Camera) Right() mgl32.Vec3   { return c.Forward().Cross(worldUp).Normalize() }

func (c Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, worldUp)
}

func (c Camera) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(width) / float32(max(height, 1))
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// ScreenRay builds the world-space ray through a pixel.
func (c Camera) ScreenRay(mouseX, mouseY float64, width, height int) Ray {
	if width <= 0 || height <= 0 {
		return Ray{Origin: c.Position, Direction: c.Forward()}
	}
	// Normalized Device Coordinates
	nx := (2.0*float32(mouseX))/float32(width) - 1.0
	ny := 1.0 - (2.0*float32(mouseY))/float32(height) // Flip Y for NDC

	forward := c.Forward()
	right := c.Right()
	up := right.Cross(forward)

	aspect := float32(width) / float32(height)
	tanHalfFov := float32(math.Tan(float64(mgl32.DegToRad(c.FovY) / 2.0)))

	dir := forward.Add(right.Mul(nx * aspect * tanHalfFov)).Add(up.Mul(ny * tanHalfFov))
	return Ray{Origin: c.Position, Direction: dir.Normalize()}
}
