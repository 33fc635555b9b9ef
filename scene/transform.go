package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/studio/editor"
)

// Rotation converts the sidebar's Euler degrees into a quaternion.
func Rotation(t editor.Transform) mgl32.Quat {
	r := t.Rotation
	return mgl32.AnglesToQuat(mgl32.DegToRad(r.X()), mgl32.DegToRad(r.Y()), mgl32.DegToRad(r.Z()), mgl32.XYZ)
}

func ObjectToWorld(t editor.Transform) mgl32.Mat4 {
	// M = T * R * S
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := Rotation(t).Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

// WorldToObject inverts ObjectToWorld. ok is false for a degenerate scale.
func WorldToObject(t editor.Transform) (m mgl32.Mat4, ok bool) {
	s := t.Scale
	if s.X() == 0 || s.Y() == 0 || s.Z() == 0 {
		return mgl32.Ident4(), false
	}
	// inv(M) = inv(S) * inv(R) * inv(T)
	invScale := mgl32.Scale3D(1.0/s.X(), 1.0/s.Y(), 1.0/s.Z())
	invRotate := Rotation(t).Conjugate().Mat4()
	invTranslate := mgl32.Translate3D(-t.Position.X(), -t.Position.Y(), -t.Position.Z())

	return invScale.Mul4(invRotate).Mul4(invTranslate), true
}
