// Package scene aggregates the primitives, lights, ambient term, medium
// and camera that make up a renderable scene, and provides the single
// closest-hit query the shader drives the pipeline with.
package scene

import (
	"github.com/lumenray/raygo/pkg/core"
	"github.com/lumenray/raygo/pkg/geometry"
	"github.com/lumenray/raygo/pkg/lights"
	"github.com/lumenray/raygo/pkg/renderer"
)

// Scene is the immutable-after-construction aggregate rendered by the
// pipeline. It exclusively owns its primitives slice; workers borrow it
// read-only for the duration of rendering.
type Scene struct {
	Primitives []geometry.Primitive
	Lights     []lights.Point
	Ambient    lights.Ambient
	Air        lights.Air
	Camera     renderer.Camera
}

// New builds a Scene from its constituent parts.
func New(primitives []geometry.Primitive, pointLights []lights.Point, ambient lights.Ambient, air lights.Air, camera renderer.Camera) *Scene {
	return &Scene{
		Primitives: primitives,
		Lights:     pointLights,
		Ambient:    ambient,
		Air:        air,
		Camera:     camera,
	}
}

// Raycast linearly scans every primitive and returns the closest hit in
// front of the ray origin, or a miss Contact if none is found. There is no
// scene-wide acceleration structure beyond each mesh's own bounding box.
func (s *Scene) Raycast(ray core.Ray) geometry.Contact {
	best := geometry.Miss()

	for _, p := range s.Primitives {
		c := p.Intersect(ray)
		if !c.Hit() {
			continue
		}
		if !best.Hit() || c.Time < best.Time {
			best = c
		}
	}

	return best
}

// Occluded reports whether any primitive is hit by ray at a parametric
// distance strictly less than maxTime. Used by shadow sampling, where only
// the existence of a closer occluder matters, not which one.
func (s *Scene) Occluded(ray core.Ray, maxTime float64) bool {
	for _, p := range s.Primitives {
		c := p.Intersect(ray)
		if c.Hit() && c.Time < maxTime {
			return true
		}
	}
	return false
}
