// Package geometry implements the ray/primitive intersection layer: the
// tagged union of primitive shapes from the data model (sphere, box,
// polygon, ellipsoid, mesh) and the axis-aligned bounding box used to
// accelerate mesh intersection.
package geometry

import (
	"github.com/lumenray/raygo/pkg/core"
	"github.com/lumenray/raygo/pkg/material"
)

// NoHit is the sentinel Time value of a Contact that did not hit anything.
const NoHit = -1.0

// Contact is the outcome of a ray/primitive query. When Time >= 0, Point is
// the world-space hit location and Normal is the unit outward surface
// normal there.
type Contact struct {
	Time     float64
	Point    core.Vec3
	Normal   core.Vec3
	Material material.Material
}

// Miss returns a Contact representing "no hit in front of the ray origin."
func Miss() Contact {
	return Contact{Time: NoHit}
}

// Hit reports whether this contact represents an actual intersection.
func (c Contact) Hit() bool {
	return c.Time != NoHit
}

// Primitive is implemented by every shape that can be intersected by a ray.
// This is the idiomatic-Go analogue of a tagged union over
// {Sphere, Box, Polygon, Ellipsoid, Mesh}: a single interface dispatched by
// ordinary method calls instead of a hand-rolled type switch.
type Primitive interface {
	Intersect(ray core.Ray) Contact
}
