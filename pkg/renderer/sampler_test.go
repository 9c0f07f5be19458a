package renderer

import (
	"math/rand"
	"testing"

	"github.com/lumenray/raygo/pkg/core"
)

// constantTracer returns a fixed color for every ray, letting sampler
// tests isolate averaging/refinement behavior from actual shading.
type constantTracer struct {
	color core.Vec3
}

func (c constantTracer) Trace(ray core.Ray, rng *rand.Rand) core.Vec3 {
	return c.color
}

// splitTracer returns one color for rays whose direction X is below
// threshold and another otherwise, simulating a hard silhouette.
type splitTracer struct {
	threshold   float64
	left, right core.Vec3
}

func (s splitTracer) Trace(ray core.Ray, rng *rand.Rand) core.Vec3 {
	if ray.Direction.X < s.threshold {
		return s.left
	}
	return s.right
}

func testCamera() Camera {
	return NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 1, 0, 5, 0, 0, 0, nil)
}

func TestSamplerStratifiedConstantColor(t *testing.T) {
	s := &Sampler{
		Camera:              testCamera(),
		Tracer:              constantTracer{color: core.NewVec3(0.5, 0.25, 0.75)},
		Width:               10,
		Height:              10,
		AntialiasingSamples: 4,
		DOFSamples:          1,
	}

	rng := rand.New(rand.NewSource(1))
	got := s.Pixel(5, 5, rng)
	want := core.NewVec3(0.5, 0.25, 0.75)
	if got.Subtract(want).Length() > 1e-9 {
		t.Errorf("Pixel = %v, want %v", got, want)
	}
}

func TestSamplerClampsToUnitRange(t *testing.T) {
	s := &Sampler{
		Camera:              testCamera(),
		Tracer:              constantTracer{color: core.NewVec3(2, -1, 0.5)},
		Width:               4,
		Height:              4,
		AntialiasingSamples: 1,
		DOFSamples:          1,
	}

	rng := rand.New(rand.NewSource(2))
	got := s.Pixel(2, 2, rng)
	want := core.NewVec3(1, 0, 0.5)
	if got != want {
		t.Errorf("Pixel = %v, want clamped %v", got, want)
	}
}

func TestSamplerAdaptiveRefinesOnSilhouette(t *testing.T) {
	s := &Sampler{
		Camera:               testCamera(),
		Tracer:               splitTracer{threshold: 0.05, left: core.NewVec3(0, 0, 0), right: core.NewVec3(1, 1, 1)},
		Width:                20,
		Height:               20,
		AntialiasingSamples:  4,
		AdaptiveAntialiasing: true,
		DOFSamples:           1,
	}

	rng := rand.New(rand.NewSource(3))

	// The center column straddles the silhouette (x ~ 0): the result
	// should be an interior gray, not a pure black or white extreme.
	mid := s.Pixel(10, 10, rng)
	if mid.X <= 0 || mid.X >= 1 {
		t.Errorf("expected a refined interior value near the silhouette, got %v", mid)
	}

	// Far from the silhouette, the result should be uniform.
	flat := s.Pixel(19, 10, rng)
	if flat.Subtract(core.NewVec3(1, 1, 1)).Length() > 1e-6 {
		t.Errorf("expected uniform flat region far from silhouette, got %v", flat)
	}
}
