package geometry

import (
	"math"

	"github.com/lumenray/raygo/pkg/core"
)

// AABB is an axis-aligned bounding box, used to accelerate mesh
// intersection. It is the only acceleration structure this renderer uses;
// there is no scene-wide BVH.
type AABB struct {
	Min core.Vec3
	Max core.Vec3
}

// NewAABBFromPoints returns an AABB that bounds all the given points.
func NewAABBFromPoints(points []core.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)

		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects this AABB using the slab method, for any
// hit time in [0, +Inf).
func (b AABB) Hit(ray core.Ray) bool {
	tMin := 0.0
	tMax := math.MaxFloat64

	axisMin := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	axisMax := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	direction := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(direction[axis]) < 1e-12 {
			if origin[axis] < axisMin[axis] || origin[axis] > axisMax[axis] {
				return false
			}
			continue
		}

		invDir := 1.0 / direction[axis]
		t1 := (axisMin[axis] - origin[axis]) * invDir
		t2 := (axisMax[axis] - origin[axis]) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}
