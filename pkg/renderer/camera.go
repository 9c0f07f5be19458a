// Package renderer implements the camera model, the per-pixel sampler
// (stratified and adaptive supersampling with depth-of-field jitter), and
// the parallel row-stride render driver.
package renderer

import (
	"math"
	"math/rand"

	"github.com/lumenray/raygo/pkg/core"
)

// LensTriangle is one triangle of a polygonal aperture shape, carrying a
// precomputed area weight normalized across the whole lens so the weights
// sum to 1.
type LensTriangle struct {
	A, B, C core.Vec2
	Weight  float64
}

// Camera is a projection rectangle plus a thin-lens aperture model with
// spherical aberration. U and V are half-width/half-height vectors of the
// rectangle, not unit axes.
type Camera struct {
	Center core.Vec3
	U      core.Vec3
	V      core.Vec3
	R      float64

	Aperture        float64
	FocalDistance   float64
	RefractionIndex float64
	R1, R2          float64

	Lens []LensTriangle

	// Pos and W are derived at construction time from Center/U/V/R.
	Pos core.Vec3
	W   core.Vec3
}

// NewCamera builds a camera from the projection rectangle and thin-lens
// parameters. The forward axis and lens position are derived using the
// cross(u, v) convention (see the design notes on the camera/loader
// sign discrepancy).
func NewCamera(center, u, v core.Vec3, r, aperture, focalDistance, refractionIndex, r1, r2 float64, lens []LensTriangle) Camera {
	w := u.Cross(v).Normalize()
	return Camera{
		Center:          center,
		U:               u,
		V:               v,
		R:               r,
		Aperture:        aperture,
		FocalDistance:   focalDistance,
		RefractionIndex: refractionIndex,
		R1:              r1,
		R2:              r2,
		Lens:            lens,
		Pos:             center.Add(w.Multiply(r)),
		W:               w,
	}
}

// PixelPlanePoint returns the point on the projection rectangle for
// normalized coordinates jNorm (horizontal) and iNorm (vertical), both
// typically in [-1, 1].
func (c Camera) PixelPlanePoint(jNorm, iNorm float64) core.Vec3 {
	return c.U.Multiply(jNorm).Subtract(c.V.Multiply(iNorm)).Add(c.Center)
}

// FocalPoint returns the aberration-adjusted focal distance at radial lens
// coordinate rho. When RefractionIndex is 0, aberration is disabled and
// the configured focal distance is returned unchanged.
func (c Camera) FocalPoint(rho float64) float64 {
	n := c.RefractionIndex
	if n == 0 {
		return c.FocalDistance
	}

	f := 1.0 / ((n - 1) * (1/c.R1 - 1/c.R2))
	di := f - c.FocalDistance
	q := (c.R2 + c.R1) / (c.R2 - c.R1)
	p := (di - c.FocalDistance) / f

	k := 1.0 / (4 * f * n * (n - 1)) * (
		((n+2)/(n-1))*q*q +
			4*(n+1)*q*p +
			(3*n+2)*(n-1)*p*p +
			n*n*n/(n-1))

	return f - 0.5*k*rho*rho - di
}

// SampleLensOffset draws a 2D point on the aperture, in the camera's U/V
// basis. When the camera carries explicit lens-shape triangles, a
// triangle is picked by its normalized area weight and sampled uniformly
// inside it; otherwise a uniform disk sample of radius Aperture is used.
func (c Camera) SampleLensOffset(rng *rand.Rand) core.Vec2 {
	if len(c.Lens) == 0 {
		return core.RandomOnDisk(c.Aperture, rng)
	}

	alpha := rng.Float64()
	running := 0.0
	chosen := c.Lens[len(c.Lens)-1]
	for _, tri := range c.Lens {
		running += tri.Weight
		if alpha <= running {
			chosen = tri
			break
		}
	}

	return core.RandomInTriangle2D(chosen.A, chosen.B, chosen.C, rng)
}

// DOFRay builds a depth-of-field-jittered primary ray toward pixelPos,
// whose radial optical-axis coordinate is rho.
func (c Camera) DOFRay(pixelPos core.Vec3, rho float64, rng *rand.Rand) core.Ray {
	offset := c.SampleLensOffset(rng)

	lensPt := c.Pos.Add(c.U.Multiply(offset.X)).Add(c.V.Multiply(offset.Y))
	lensPt = lensPt.Subtract(c.W.Multiply(lensPt.Subtract(c.Pos).Dot(c.W)))

	focusPt := c.Pos.Add(pixelPos.Subtract(c.Pos).Normalize().Multiply(c.FocalPoint(rho)))

	return core.NewRay(lensPt, focusPt.Subtract(lensPt))
}

// PinholeRay builds the undeflected primary ray from the lens position
// through pixelPos.
func (c Camera) PinholeRay(pixelPos core.Vec3) core.Ray {
	return core.NewRay(c.Pos, pixelPos.Subtract(c.Pos))
}

// NormalizeLensWeights scales tris' weights so they sum to 1, using each
// triangle's unsigned 2D area as its raw weight.
func NormalizeLensWeights(tris []LensTriangle) []LensTriangle {
	total := 0.0
	areas := make([]float64, len(tris))
	for i, t := range tris {
		area := math.Abs((t.B.X-t.A.X)*(t.C.Y-t.A.Y)-(t.C.X-t.A.X)*(t.B.Y-t.A.Y)) / 2
		areas[i] = area
		total += area
	}

	out := make([]LensTriangle, len(tris))
	for i, t := range tris {
		w := 0.0
		if total > 0 {
			w = areas[i] / total
		}
		out[i] = LensTriangle{A: t.A, B: t.B, C: t.C, Weight: w}
	}
	return out
}
