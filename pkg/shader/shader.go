// Package shader implements the recursive pixel-color evaluator: the
// Fresnel split between reflection and transmission, local Phong shading
// with soft shadows, and the participating-medium attenuation applied
// between surface contacts.
package shader

import (
	"math"
	"math/rand"

	"github.com/lumenray/raygo/pkg/config"
	"github.com/lumenray/raygo/pkg/core"
	"github.com/lumenray/raygo/pkg/lights"
	"github.com/lumenray/raygo/pkg/material"
	"github.com/lumenray/raygo/pkg/scene"
)

// medium is the (epsilon, mu) pair of whatever volume the current ray
// segment travels through; it determines the refractive index used by
// the Fresnel split at the next surface hit.
type medium struct {
	Epsilon float64
	Mu      float64
}

func (m medium) refractiveIndex() float64 {
	product := m.Epsilon * m.Mu
	if product < 0 {
		return 0
	}
	return math.Sqrt(product)
}

// Shader evaluates pixel colors against a scene, using the configuration's
// recursion depth, epsilon bias, and sample counts.
type Shader struct {
	Scene *scene.Scene
	Cfg   config.Configuration
}

// New creates a Shader bound to a scene and configuration.
func New(s *scene.Scene, cfg config.Configuration) *Shader {
	return &Shader{Scene: s, Cfg: cfg}
}

// Trace is the entry point for a primary ray: it starts recursion at
// depth 0 in the scene's ambient medium.
func (s *Shader) Trace(ray core.Ray, rng *rand.Rand) core.Vec3 {
	air := s.Scene.Air
	return s.shade(ray, 0, medium{air.ElectricPermittivity, air.MagneticPermeability}, rng)
}

func (s *Shader) shade(ray core.Ray, depth int, current medium, rng *rand.Rand) core.Vec3 {
	if depth >= s.Cfg.Depth {
		return core.Vec3{}
	}

	contact := s.Scene.Raycast(ray)
	if !contact.Hit() {
		return core.Vec3{}
	}

	incident := ray.Direction.Normalize()
	normal := contact.Normal.Normalize()
	rawNormal := normal
	cosIncident := -incident.Dot(normal)

	next := medium{s.Scene.Air.ElectricPermittivity, s.Scene.Air.MagneticPermeability}
	entering := cosIncident > 0
	if entering {
		next = medium{contact.Material.ElectricPermittivity, contact.Material.MagneticPermeability}
	} else {
		// Exiting a surface reverts straight to the scene's ambient air
		// rather than to whatever medium enclosed the object being left.
		// TODO: a correct fix threads an explicit medium stack through
		// the recursion instead of reverting to scene air here.
		normal = normal.Negate()
		cosIncident = -cosIncident
	}

	pointOut := contact.Point.Add(normal.Multiply(s.Cfg.Epsilon))
	pointIn := contact.Point.Subtract(normal.Multiply(s.Cfg.Epsilon))

	reflectance := fresnelReflectance(current, next, cosIncident)

	k := contact.Material.SpecularReflection
	reflectedFraction := reflectance * k
	transmittedFraction := (1 - reflectance) * k
	absorbedFraction := 1 - k

	var color core.Vec3

	if absorbedFraction > 0 {
		// Local Phong shading always uses the surface's raw, unflipped
		// normal, even on an exiting ray; only the Fresnel split and the
		// reflect/refract directions use the flipped normal above.
		local := s.localShade(pointOut, rawNormal, incident, contact.Material, rng)
		color = color.Add(local.Multiply(absorbedFraction))
	}

	if transmittedFraction > 0 {
		eta := current.refractiveIndex() / next.refractiveIndex()
		refracted := core.Refract(incident, normal, eta)
		transRay := core.NewRay(pointIn, refracted)
		transColor := s.shade(transRay, depth+1, next, rng)
		color = color.Add(transColor.Multiply(transmittedFraction))
	}

	if reflectedFraction > 0 {
		reflDir := core.Reflect(incident, normal)
		color = color.Add(s.sampleReflection(pointOut, reflDir, contact.Material.Roughness, depth, current, rng).Multiply(reflectedFraction))
	}

	traversed := contact.Point.Subtract(ray.Origin).Length()
	color = color.MultiplyElements(s.Scene.Air.Attenuation.Pow(traversed))

	return color
}

func (s *Shader) sampleReflection(origin, dir core.Vec3, roughness float64, depth int, current medium, rng *rand.Rand) core.Vec3 {
	samples := s.Cfg.ReflectionSamples
	if samples < 1 {
		samples = 1
	}
	if roughness == 0 {
		samples = 1
	}

	var sum core.Vec3
	for m := 0; m < samples; m++ {
		d := dir
		if m > 0 {
			target := core.RandomInBall(origin.Add(dir), roughness, rng)
			d = target.Subtract(origin)
		}
		ray := core.NewRay(origin, d)
		sum = sum.Add(s.shade(ray, depth+1, current, rng))
	}

	return sum.Multiply(1.0 / float64(samples))
}

// fresnelReflectance computes the unpolarized Fresnel reflectance as the
// mean of the squared s- and p-polarization amplitude coefficients. A
// negative under-root radicand signals total internal reflection, for
// which reflectance is defined as 1.
func fresnelReflectance(current, next medium, cosIncident float64) float64 {
	ni := current.refractiveIndex()
	nt := next.refractiveIndex()
	if nt == 0 {
		return 1
	}
	eta := ni / nt

	sin2Incident := 1 - cosIncident*cosIncident
	radicand := 1 - eta*eta*sin2Incident
	if radicand < 0 {
		return 1
	}
	cosTrans := math.Sqrt(radicand)

	muRatio := current.Mu / next.Mu

	rs := (eta*cosIncident - muRatio*cosTrans) / (eta*cosIncident + muRatio*cosTrans)
	rp := (muRatio*cosIncident - eta*cosTrans) / (muRatio*cosIncident + eta*cosTrans)

	return 0.5 * (rs*rs + rp*rp)
}

// localShade evaluates Phong local illumination at a surface point:
// unshadowed ambient, soft-shadowed diffuse, and soft-shadowed specular
// using the diffuse color as the specular tint.
func (s *Shader) localShade(point, normal, incident core.Vec3, mat material.Material, rng *rand.Rand) core.Vec3 {
	ambient := s.Scene.Ambient.Color.MultiplyElements(mat.DiffuseColor)
	color := ambient

	reflectDir := core.Reflect(incident, normal)

	for _, light := range s.Scene.Lights {
		shadowFactor := s.shadowFactor(point, light, rng)
		if shadowFactor == 0 {
			continue
		}

		toLight := light.Pos.Subtract(point).Normalize()

		diffuseTerm := math.Max(toLight.Dot(normal), 0)
		if diffuseTerm > 0 {
			diffuse := light.Color.MultiplyElements(mat.DiffuseColor).Multiply(diffuseTerm * shadowFactor)
			color = color.Add(diffuse)
		}

		specTerm := math.Max(reflectDir.Dot(toLight), 0)
		if specTerm > 0 && mat.SpecularExponent > 0 {
			specular := mat.DiffuseColor.Multiply(mat.SpecularReflection * math.Pow(specTerm, mat.SpecularExponent) * shadowFactor)
			color = color.Add(specular)
		}
	}

	return color
}

// shadowFactor casts ShadowSamples rays from point toward the light's
// sampling sphere (the first sample targets the light center exactly) and
// returns 1 minus the fraction that hit a primitive closer than the
// light's center.
func (s *Shader) shadowFactor(point core.Vec3, light lights.Point, rng *rand.Rand) float64 {
	samples := s.Cfg.ShadowSamples
	if samples < 1 {
		return 1
	}

	centerDist := light.Pos.Subtract(point).Length()

	occlusions := 0
	for i := 0; i < samples; i++ {
		target := light.Pos
		if i > 0 {
			target = core.RandomInBall(light.Pos, light.Radius, rng)
		}

		// A unit direction makes the hit time a distance, comparable to
		// centerDist.
		ray := core.NewRay(point, target.Subtract(point).Normalize())

		if s.Scene.Occluded(ray, centerDist) {
			occlusions++
		}
	}

	return 1 - float64(occlusions)/float64(samples)
}
