package geometry

import (
	"math"

	"github.com/lumenray/raygo/pkg/core"
	"github.com/lumenray/raygo/pkg/material"
)

// plane is an internal bounded-by-nothing plane used by Box's slab sweep.
type plane struct {
	Point  core.Vec3
	Normal core.Vec3
}

// intersect returns the parametric time at which ray crosses the plane, or
// false if the ray runs parallel to it.
func (p plane) intersect(ray core.Ray) (time float64, ok bool) {
	div := ray.Direction.Dot(p.Normal)
	if div == 0 {
		return 0, false
	}
	return -ray.Origin.Subtract(p.Point).Dot(p.Normal) / div, true
}

// Box is an axis-oriented rectangular box spanned by three edge vectors
// from a corner, matching the scene file's corner/length/width/height
// record rather than a center/half-extent box.
type Box struct {
	Corner   core.Vec3
	Length   core.Vec3
	Width    core.Vec3
	Height   core.Vec3
	Material material.Material

	planes [6]plane
}

// box face indices into Box.planes.
const (
	boxFront = iota
	boxBack
	boxLeft
	boxRight
	boxBottom
	boxTop
)

// NewBox creates a box and precomputes its six oriented planes.
func NewBox(corner, length, width, height core.Vec3, mat material.Material) *Box {
	b := &Box{Corner: corner, Length: length, Width: width, Height: height, Material: mat}
	b.generatePlanes()
	return b
}

func (b *Box) generatePlanes() {
	b.planes[boxFront] = plane{b.Corner, b.Length.Cross(b.Height).Normalize()}
	b.planes[boxBack] = plane{b.Corner.Add(b.Width), b.Height.Cross(b.Length).Normalize()}
	b.planes[boxLeft] = plane{b.Corner, b.Height.Cross(b.Width).Normalize()}
	b.planes[boxRight] = plane{b.Corner.Add(b.Length), b.Width.Cross(b.Height).Normalize()}
	b.planes[boxBottom] = plane{b.Corner, b.Width.Cross(b.Length).Normalize()}
	b.planes[boxTop] = plane{b.Corner.Add(b.Height), b.Length.Cross(b.Width).Normalize()}
}

// Intersect sweeps the ray against the box's six oriented planes. If the
// ray origin never advances tMin past zero, the origin is inside the box
// and the exit hit is returned; otherwise the entry hit is returned.
func (b *Box) Intersect(ray core.Ray) Contact {
	const min = 0.0
	tMin := min
	tMax := math.MaxFloat64

	var pointMin, normalMin, pointMax, normalMax core.Vec3

	for _, pl := range b.planes {
		dotNormal := ray.Direction.Dot(pl.Normal)

		switch {
		case dotNormal < 0:
			if t, ok := pl.intersect(ray); ok && t > tMin {
				tMin = t
				pointMin = ray.At(t)
				normalMin = pl.Normal
			}
		case dotNormal > 0:
			if t, ok := pl.intersect(ray); ok && t < tMax {
				tMax = t
				pointMax = ray.At(t)
				normalMax = pl.Normal
			}
		default:
			if ray.Origin.Subtract(pl.Point).Dot(pl.Normal) > 0 {
				return Miss()
			}
		}
	}

	if tMax < tMin {
		return Miss()
	}

	if tMin == min {
		return Contact{Time: tMax, Point: pointMax, Normal: normalMax, Material: b.Material}
	}
	return Contact{Time: tMin, Point: pointMin, Normal: normalMin, Material: b.Material}
}
