package geometry

import (
	"math"

	"github.com/lumenray/raygo/pkg/core"
)

// triangle is an internal ray-intersection primitive used to fan-triangulate
// polygons and to scan mesh faces. It does not carry a Material of its own;
// callers attach the material and decide which normal to report (a
// polygon reports its precomputed plane normal, a mesh recomputes the
// normal per-face).
type triangle struct {
	a, b, c core.Vec3
}

// grazingThreshold rejects rays nearly parallel to the triangle's plane,
// where the intersection time becomes numerically unstable.
const grazingThreshold = 1e-2

// intersect computes the ray/triangle intersection time and point, using
// the plane equation followed by a barycentric inside test. ok is false on
// a miss (grazing ray, behind the ray origin, or outside the triangle).
func (t triangle) intersect(ray core.Ray, normal core.Vec3) (time float64, point core.Vec3, ok bool) {
	div := normal.Dot(ray.Direction)
	if math.Abs(div) < grazingThreshold {
		return 0, core.Vec3{}, false
	}

	time = (normal.Dot(t.a) - normal.Dot(ray.Origin)) / div
	if time < 0 {
		return 0, core.Vec3{}, false
	}

	point = ray.At(time)
	if !t.containsPoint(point) {
		return 0, core.Vec3{}, false
	}

	return time, point, true
}

// containsPoint reports whether point (known to lie in the triangle's
// plane) lies inside the triangle, via barycentric coordinates.
func (t triangle) containsPoint(point core.Vec3) bool {
	v0 := t.b.Subtract(t.a)
	v1 := t.c.Subtract(t.a)
	v2 := point.Subtract(t.a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return false // degenerate (zero-area) triangle
	}

	beta := (d11*d20 - d01*d21) / denom
	gamma := (d00*d21 - d01*d20) / denom
	alpha := 1 - beta - gamma

	return alpha >= 0 && beta >= 0 && gamma >= 0
}

// planeNormal returns the (non-unit-tested) normal of the plane through
// a, b, c using a right-handed winding.
func (t triangle) planeNormal() core.Vec3 {
	return t.b.Subtract(t.a).Cross(t.c.Subtract(t.a)).Normalize()
}
