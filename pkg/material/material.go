// Package material holds the surface and medium parameter records consumed
// by the shader. Unlike a polymorphic BRDF hierarchy, every surface in this
// renderer is described by the same record; its electromagnetic parameters
// (permittivity, permeability) drive the Fresnel split performed by
// pkg/shader, rather than a per-material Scatter implementation.
package material

import (
	"math"

	"github.com/lumenray/raygo/pkg/core"
)

// Material describes the optical properties of a surface.
type Material struct {
	DiffuseColor         core.Vec3 // base color in [0,1], also reused as the specular tint
	SpecularReflection   float64   // gloss fraction k in [0,1]; (1-k) is absorbed as diffuse
	SpecularExponent     float64   // Phong exponent for the specular highlight
	Attenuation          core.Vec3 // reserved for a future per-surface medium stack; unused by the core shader
	ElectricPermittivity float64   // epsilon
	MagneticPermeability float64   // mu
	Roughness            float64   // radius of the reflection-direction jitter ball; 0 is mirror-sharp
}

// RefractiveIndex returns n = sqrt(epsilon * mu) for this material.
func (m Material) RefractiveIndex() float64 {
	product := m.ElectricPermittivity * m.MagneticPermeability
	if product < 0 {
		return 0
	}
	return math.Sqrt(product)
}
