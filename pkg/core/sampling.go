package core

import (
	"math"
	"math/rand"
)

// RandomInUnitBall returns a uniformly distributed point inside the unit
// ball (radius 1, centered at the origin). A random direction is drawn by
// normalizing a vector of three independent normal variates (which is
// uniform over the sphere of directions), and the radius is scaled by the
// cube root of a uniform sample so that the result is volume-uniform rather
// than biased toward the center.
func RandomInUnitBall(rng *rand.Rand) Vec3 {
	dir := Vec3{
		X: rng.NormFloat64(),
		Y: rng.NormFloat64(),
		Z: rng.NormFloat64(),
	}.Normalize()

	radius := math.Cbrt(rng.Float64())
	return dir.Multiply(radius)
}

// RandomInBall returns a uniformly distributed point inside the sphere of
// the given radius centered at pos. Used for soft-shadow light sampling and
// for gloss-jitter reflection sampling.
func RandomInBall(pos Vec3, radius float64, rng *rand.Rand) Vec3 {
	return pos.Add(RandomInUnitBall(rng).Multiply(radius))
}

// RandomOnDisk returns a uniformly distributed point inside a disk of the
// given radius centered at the origin, in 2D.
func RandomOnDisk(radius float64, rng *rand.Rand) Vec2 {
	r := radius * math.Sqrt(rng.Float64())
	phi := 2 * math.Pi * rng.Float64()
	return Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)}
}

// RandomInTriangle2D returns a uniformly distributed point inside the 2D
// triangle (a, b, c) using the standard square-root barycentric method.
func RandomInTriangle2D(a, b, c Vec2, rng *rand.Rand) Vec2 {
	r1 := math.Sqrt(rng.Float64())
	r2 := rng.Float64()

	return a.Multiply(1 - r1).
		Add(b.Multiply(r1 * (1 - r2))).
		Add(c.Multiply(r1 * r2))
}

// NewWorkerRandom creates an independent random generator for a render
// worker. Each worker must own a private stream rather than share the
// package-level generator, which is not safe for concurrent use.
func NewWorkerRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
