package geometry

import (
	"math"

	"github.com/lumenray/raygo/pkg/core"
	"github.com/lumenray/raygo/pkg/material"
)

// Sphere is a sphere primitive.
type Sphere struct {
	Pos      core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere.
func NewSphere(pos core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Pos: pos, Radius: radius, Material: mat}
}

// Intersect solves |ray.Origin + t*ray.Direction - Pos|^2 = r^2 as a
// quadratic. The nearer root is used unless it lies behind the ray origin,
// in which case the ray originates inside the sphere and the far root is
// used instead.
func (s *Sphere) Intersect(ray core.Ray) Contact {
	v := ray.Origin.Subtract(s.Pos)

	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * ray.Direction.Dot(v)
	c := v.Dot(v) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return Miss()
	}

	sqrtDisc := math.Sqrt(disc)
	t1 := (-b + sqrtDisc) / (2 * a)
	t2 := (-b - sqrtDisc) / (2 * a)

	var t float64
	switch {
	case t1 < 0:
		return Miss() // sphere is entirely behind the ray
	case t2 < 0:
		t = t1 // ray origin is inside the sphere
	default:
		t = t2
	}

	point := ray.At(t)
	normal := point.Subtract(s.Pos).Multiply(1.0 / s.Radius)

	return Contact{Time: t, Point: point, Normal: normal, Material: s.Material}
}
