// Package lights holds the light and medium records used by the scene and
// the shader: point lights with a soft-shadow sampling radius, a single
// unshadowed ambient term, and the homogeneous medium ("air") that fills
// the space between surfaces.
package lights

import "github.com/lumenray/raygo/pkg/core"

// Point is a point light with a sampling sphere used for soft shadows.
type Point struct {
	Pos    core.Vec3
	Color  core.Vec3
	Radius float64
}

// Ambient is the scene's unshadowed constant term, multiplied by a
// surface's diffuse color regardless of occlusion. It is part of local
// shading, so it is scaled by the surface's absorbed (1-k) fraction.
type Ambient struct {
	Color core.Vec3
}

// Air describes the homogeneous medium enclosing the scene: its electric
// permittivity and magnetic permeability determine its refractive index,
// and its per-channel attenuation is applied as attenuation^distance
// between surface contacts.
type Air struct {
	ElectricPermittivity float64
	MagneticPermeability float64
	Attenuation          core.Vec3
}

// DefaultAir returns vacuum-like air: n=1, no attenuation.
func DefaultAir() Air {
	return Air{
		ElectricPermittivity: 1.0,
		MagneticPermeability: 1.0,
		Attenuation:          core.NewVec3(1.0, 1.0, 1.0),
	}
}
