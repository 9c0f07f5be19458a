package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lumenray/raygo/pkg/core"
	"github.com/lumenray/raygo/pkg/material"
)

// Ellipsoid is a sphere of radius 1 centered at the origin, scaled and
// rotated into world space by a 3x3 model matrix. Intersection is done by
// transforming the ray into the ellipsoid's unit-sphere local space with
// the matrix inverse, rather than solving the general quadric directly.
type Ellipsoid struct {
	Pos      core.Vec3
	Material material.Material

	model    mgl64.Mat3
	inverse  mgl64.Mat3
	normalIT mgl64.Mat3 // inverse-transpose, used to carry normals back out
}

// NewEllipsoid builds an ellipsoid from its center and the three
// (not necessarily orthogonal) semi-axis vectors of its local frame.
func NewEllipsoid(pos, axisX, axisY, axisZ core.Vec3, mat material.Material) *Ellipsoid {
	model := mgl64.Mat3{
		axisX.X, axisX.Y, axisX.Z,
		axisY.X, axisY.Y, axisY.Z,
		axisZ.X, axisZ.Y, axisZ.Z,
	}

	inverse := model.Inv()

	return &Ellipsoid{
		Pos:      pos,
		Material: mat,
		model:    model,
		inverse:  inverse,
		normalIT: inverse.Transpose(),
	}
}

func transform(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	r := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.Vec3{X: r[0], Y: r[1], Z: r[2]}
}

// Intersect transforms the ray into the ellipsoid's local unit-sphere
// frame, solves the ordinary sphere quadratic there, then carries the hit
// point and normal back into world space (normals via the inverse
// transpose, to stay correct under non-uniform scale).
func (e *Ellipsoid) Intersect(ray core.Ray) Contact {
	localOrigin := transform(e.inverse, ray.Origin.Subtract(e.Pos))
	localDirection := transform(e.inverse, ray.Direction)

	localRay := core.NewRay(localOrigin, localDirection)

	unit := Sphere{Pos: core.Vec3{}, Radius: 1, Material: e.Material}
	hit := unit.Intersect(localRay)
	if !hit.Hit() {
		return Miss()
	}

	worldPoint := transform(e.model, hit.Point).Add(e.Pos)
	worldNormal := transform(e.normalIT, hit.Normal).Normalize()

	// Recompute t along the original ray from the world-space hit point.
	// The transform is linear in the ray parameter, so this equals the
	// local-space t.
	t := worldPoint.Subtract(ray.Origin).Dot(ray.Direction) / ray.Direction.Dot(ray.Direction)

	return Contact{Time: t, Point: worldPoint, Normal: worldNormal, Material: e.Material}
}
