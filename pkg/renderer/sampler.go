package renderer

import (
	"math"
	"math/rand"

	"github.com/lumenray/raygo/pkg/core"
)

// Tracer evaluates the color seen along a single ray. pkg/shader's Shader
// satisfies this interface; the sampler is defined against the interface
// rather than the concrete type to avoid an import cycle (shader depends
// on scene, which depends on this package for Camera).
type Tracer interface {
	Trace(ray core.Ray, rng *rand.Rand) core.Vec3
}

// adaptiveTolerance is the Euclidean RGB distance beyond which a corner's
// sample disagrees enough with the cell mean to warrant subdivision.
const adaptiveTolerance = 0.05

// Sampler evaluates one final pixel color by combining stratified or
// adaptive supersampling with depth-of-field jitter.
type Sampler struct {
	Camera               Camera
	Tracer               Tracer
	Width, Height        int
	AntialiasingSamples  int
	AdaptiveAntialiasing bool
	DOFSamples           int
}

// Pixel evaluates the color of image pixel (col, row), row 0 at the
// bottom, and returns it clamped to [0,1]^3.
func (s *Sampler) Pixel(col, row int, rng *rand.Rand) core.Vec3 {
	jNorm := (float64(col) - float64(s.Width)/2 + 0.5) / (float64(s.Width) / 2)
	iNorm := (float64(row) - float64(s.Height)/2 + 0.5) / (float64(s.Height) / 2)

	var color core.Vec3
	if s.AdaptiveAntialiasing {
		color = s.adaptivePixel(jNorm, iNorm, rng)
	} else {
		color = s.stratifiedPixel(jNorm, iNorm, rng)
	}

	return color.Clamp(0, 1)
}

func (s *Sampler) stratifiedPixel(jNorm, iNorm float64, rng *rand.Rand) core.Vec3 {
	grid := int(math.Sqrt(float64(s.AntialiasingSamples)))
	if grid < 1 {
		grid = 1
	}

	dofSamples := s.DOFSamples
	if dofSamples < 1 {
		dofSamples = 1
	}

	cellW := 2.0 / float64(s.Width) / float64(grid)
	cellH := 2.0 / float64(s.Height) / float64(grid)

	var sum core.Vec3

	for gy := 0; gy < grid; gy++ {
		for gx := 0; gx < grid; gx++ {
			subJ := jNorm - 1.0/float64(s.Width) + (float64(gx)+0.5)*cellW
			subI := iNorm - 1.0/float64(s.Height) + (float64(gy)+0.5)*cellH

			sum = sum.Add(s.samplePoint(subJ, subI, dofSamples, rng))
		}
	}

	// samplePoint already averages its dofSamples rays, so dividing by
	// AntialiasingSamples divides the raw ray total by
	// AntialiasingSamples * dofSamples.
	count := s.AntialiasingSamples
	if count < 1 {
		count = 1
	}
	return sum.Multiply(1.0 / float64(count))
}

// samplePoint evaluates one sub-pixel location, averaging dofSamples
// primary rays: the first is a pinhole ray, any remaining are
// depth-of-field jittered.
func (s *Sampler) samplePoint(jNorm, iNorm float64, dofSamples int, rng *rand.Rand) core.Vec3 {
	pixelPos := s.Camera.PixelPlanePoint(jNorm, iNorm)
	rho := math.Sqrt(jNorm*jNorm+iNorm*iNorm) * s.Camera.Aperture

	var sum core.Vec3
	for m := 0; m < dofSamples; m++ {
		var ray core.Ray
		if m == 0 {
			ray = s.Camera.PinholeRay(pixelPos)
		} else {
			ray = s.Camera.DOFRay(pixelPos, rho, rng)
		}
		sum = sum.Add(s.Tracer.Trace(ray, rng))
	}

	return sum.Multiply(1.0 / float64(dofSamples))
}

// adaptivePixel evaluates the quad-tree-like refinement described for
// adaptive antialiasing, starting from quarter-pixel corner offsets. Every
// corner is a plain pinhole sample: depth-of-field jitter is a stratified-
// antialiasing concern only, and plays no part in the adaptive refinement
// criterion.
func (s *Sampler) adaptivePixel(jNorm, iNorm float64, rng *rand.Rand) core.Vec3 {
	halfW := 1.0 / float64(s.Width)
	halfH := 1.0 / float64(s.Height)

	return s.adaptiveCell(jNorm, iNorm, halfW/2, halfH/2, 0, rng)
}

// adaptiveCell evaluates the four corners of a cell centered at
// (jNorm, iNorm) with half-extents (dj, di), recursing into whichever
// corners disagree with the cell mean by more than adaptiveTolerance,
// down to a maximum recursion depth of AntialiasingSamples.
func (s *Sampler) adaptiveCell(jNorm, iNorm, dj, di float64, depth int, rng *rand.Rand) core.Vec3 {
	corners := [4][2]float64{
		{jNorm - dj, iNorm - di},
		{jNorm + dj, iNorm - di},
		{jNorm - dj, iNorm + di},
		{jNorm + dj, iNorm + di},
	}

	var colors [4]core.Vec3
	var mean core.Vec3
	for i, c := range corners {
		colors[i] = s.samplePoint(c[0], c[1], 1, rng)
		mean = mean.Add(colors[i])
	}
	mean = mean.Multiply(0.25)

	if depth >= s.AntialiasingSamples {
		return mean
	}

	var refined [4]core.Vec3
	anyRefined := false
	for i, c := range corners {
		if colors[i].Subtract(mean).Length() > adaptiveTolerance {
			refined[i] = s.adaptiveCell(c[0], c[1], dj/2, di/2, depth+1, rng)
			anyRefined = true
		} else {
			refined[i] = colors[i]
		}
	}

	if !anyRefined {
		return mean
	}

	var result core.Vec3
	for _, c := range refined {
		result = result.Add(c)
	}
	return result.Multiply(0.25)
}
