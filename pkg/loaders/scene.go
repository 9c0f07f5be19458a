// Package loaders parses the text scene-file format and the OBJ mesh
// subset it references, producing a fully-built scene.Scene.
package loaders

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lumenray/raygo/pkg/core"
	"github.com/lumenray/raygo/pkg/geometry"
	"github.com/lumenray/raygo/pkg/lights"
	"github.com/lumenray/raygo/pkg/material"
	"github.com/lumenray/raygo/pkg/renderer"
	"github.com/lumenray/raygo/pkg/scene"
)

// LoadScene reads a scene text file and builds the scene.Scene it
// describes. Mesh records reference an OBJ file by a path relative to the
// scene file's own directory.
func LoadScene(path string) (*scene.Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open scene %q: %w", path, err)
	}

	p := &sceneParser{
		tok:     newTokenizer(string(raw)),
		baseDir: filepath.Dir(path),
		air:     lights.DefaultAir(),
		ambient: lights.Ambient{},
	}

	if err := p.parse(); err != nil {
		return nil, fmt.Errorf("loaders: parsing scene %q: %w", path, err)
	}

	return scene.New(p.primitives, p.lights, p.ambient, p.air, p.camera), nil
}

type sceneParser struct {
	tok     *tokenizer
	baseDir string

	primitives []geometry.Primitive
	lights     []lights.Point
	ambient    lights.Ambient
	air        lights.Air
	camera     renderer.Camera
}

func (p *sceneParser) parse() error {
	for !p.tok.done() {
		tag, err := p.tok.next()
		if err != nil {
			return err
		}

		var recordErr error
		switch tag {
		case "SPHERE":
			recordErr = p.readSphere()
		case "BOX":
			recordErr = p.readBox()
		case "POLYGON":
			recordErr = p.readPolygon()
		case "ELLIPSOID":
			recordErr = p.readEllipsoid()
		case "MESH":
			recordErr = p.readMesh()
		case "LIGHT":
			recordErr = p.readLight()
		case "AMBIENT":
			recordErr = p.readAmbient()
		case "AIR":
			recordErr = p.readAir()
		case "CAMERA":
			recordErr = p.readCamera()
		default:
			recordErr = fmt.Errorf("unrecognized record tag %q", tag)
		}

		if recordErr != nil {
			return fmt.Errorf("%s record: %w", tag, recordErr)
		}
	}

	return nil
}

func (p *sceneParser) readVec3() (core.Vec3, error) {
	x, y, z, err := p.tok.nextVec3()
	return core.NewVec3(x, y, z), err
}

func (p *sceneParser) readVec2() (core.Vec2, error) {
	x, y, err := p.tok.nextVec2()
	return core.NewVec2(x, y), err
}

func (p *sceneParser) readMaterial() (material.Material, error) {
	var m material.Material
	var err error

	if m.DiffuseColor, err = p.readVec3(); err != nil {
		return m, err
	}
	if m.SpecularReflection, err = p.tok.nextFloat(); err != nil {
		return m, err
	}
	if m.SpecularExponent, err = p.tok.nextFloat(); err != nil {
		return m, err
	}
	if m.Attenuation, err = p.readVec3(); err != nil {
		return m, err
	}
	if m.ElectricPermittivity, err = p.tok.nextFloat(); err != nil {
		return m, err
	}
	if m.MagneticPermeability, err = p.tok.nextFloat(); err != nil {
		return m, err
	}
	if m.Roughness, err = p.tok.nextFloat(); err != nil {
		return m, err
	}

	return m, nil
}

func (p *sceneParser) readSphere() error {
	pos, err := p.readVec3()
	if err != nil {
		return err
	}
	radius, err := p.tok.nextFloat()
	if err != nil {
		return err
	}
	mat, err := p.readMaterial()
	if err != nil {
		return err
	}

	p.primitives = append(p.primitives, geometry.NewSphere(pos, radius, mat))
	return nil
}

func (p *sceneParser) readBox() error {
	corner, err := p.readVec3()
	if err != nil {
		return err
	}
	length, err := p.readVec3()
	if err != nil {
		return err
	}
	width, err := p.readVec3()
	if err != nil {
		return err
	}
	height, err := p.readVec3()
	if err != nil {
		return err
	}
	mat, err := p.readMaterial()
	if err != nil {
		return err
	}

	p.primitives = append(p.primitives, geometry.NewBox(corner, length, width, height, mat))
	return nil
}

func (p *sceneParser) readPolygon() error {
	n, err := p.tok.nextInt()
	if err != nil {
		return err
	}

	vertices := make([]core.Vec3, 0, n)
	for i := 0; i < n; i++ {
		v, err := p.readVec3()
		if err != nil {
			return err
		}
		vertices = append(vertices, v)
	}

	mat, err := p.readMaterial()
	if err != nil {
		return err
	}

	p.primitives = append(p.primitives, geometry.NewPolygon(vertices, mat))
	return nil
}

func (p *sceneParser) readEllipsoid() error {
	pos, err := p.readVec3()
	if err != nil {
		return err
	}
	u, err := p.readVec3()
	if err != nil {
		return err
	}
	v, err := p.readVec3()
	if err != nil {
		return err
	}
	w, err := p.readVec3()
	if err != nil {
		return err
	}
	mat, err := p.readMaterial()
	if err != nil {
		return err
	}

	p.primitives = append(p.primitives, geometry.NewEllipsoid(pos, u, v, w, mat))
	return nil
}

func (p *sceneParser) readMesh() error {
	relPath, err := p.tok.next()
	if err != nil {
		return err
	}

	raw, err := LoadOBJ(filepath.Join(p.baseDir, relPath))
	if err != nil {
		return err
	}

	pos, err := p.readVec3()
	if err != nil {
		return err
	}
	rotDeg, err := p.readVec3()
	if err != nil {
		return err
	}
	scale, err := p.tok.nextFloat()
	if err != nil {
		return err
	}

	transform := meshTransform(pos, rotDeg, scale)

	vertices := make([]core.Vec3, len(raw.Vertices))
	for i, v := range raw.Vertices {
		vertices[i] = transformPoint(transform, v)
	}

	mat, err := p.readMaterial()
	if err != nil {
		return err
	}

	p.primitives = append(p.primitives, geometry.NewMesh(vertices, raw.Faces, mat))
	return nil
}

// meshTransform composes translate * rotateX * rotateY * rotateZ * scale,
// matching the order the reference loader builds the mesh's model matrix.
func meshTransform(pos, rotDeg core.Vec3, scale float64) mgl64.Mat4 {
	translate := mgl64.Translate3D(pos.X, pos.Y, pos.Z)
	rotX := mgl64.HomogRotate3DX(mgl64.DegToRad(rotDeg.X))
	rotY := mgl64.HomogRotate3DY(mgl64.DegToRad(rotDeg.Y))
	rotZ := mgl64.HomogRotate3DZ(mgl64.DegToRad(rotDeg.Z))
	scl := mgl64.Scale3D(scale, scale, scale)

	return translate.Mul4(rotX).Mul4(rotY).Mul4(rotZ).Mul4(scl)
}

func transformPoint(m mgl64.Mat4, v core.Vec3) core.Vec3 {
	r := m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	return core.NewVec3(r[0], r[1], r[2])
}

func (p *sceneParser) readLight() error {
	pos, err := p.readVec3()
	if err != nil {
		return err
	}
	color, err := p.readVec3()
	if err != nil {
		return err
	}
	radius, err := p.tok.nextFloat()
	if err != nil {
		return err
	}

	p.lights = append(p.lights, lights.Point{Pos: pos, Color: color, Radius: radius})
	return nil
}

func (p *sceneParser) readAmbient() error {
	color, err := p.readVec3()
	if err != nil {
		return err
	}
	p.ambient = lights.Ambient{Color: color}
	return nil
}

func (p *sceneParser) readAir() error {
	epsilon, err := p.tok.nextFloat()
	if err != nil {
		return err
	}
	mu, err := p.tok.nextFloat()
	if err != nil {
		return err
	}
	attenuation, err := p.readVec3()
	if err != nil {
		return err
	}

	p.air = lights.Air{ElectricPermittivity: epsilon, MagneticPermeability: mu, Attenuation: attenuation}
	return nil
}

func (p *sceneParser) readCamera() error {
	center, err := p.readVec3()
	if err != nil {
		return err
	}
	u, err := p.readVec3()
	if err != nil {
		return err
	}
	v, err := p.readVec3()
	if err != nil {
		return err
	}
	r, err := p.tok.nextFloat()
	if err != nil {
		return err
	}
	aperture, err := p.tok.nextFloat()
	if err != nil {
		return err
	}
	focalDistance, err := p.tok.nextFloat()
	if err != nil {
		return err
	}
	n, err := p.tok.nextFloat()
	if err != nil {
		return err
	}
	r1, err := p.tok.nextFloat()
	if err != nil {
		return err
	}
	r2, err := p.tok.nextFloat()
	if err != nil {
		return err
	}

	var lensTriangles []renderer.LensTriangle
	if p.tok.peek() == "LENSE" {
		if _, err := p.tok.next(); err != nil {
			return err
		}
		count, err := p.tok.nextInt()
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			a, err := p.readVec2()
			if err != nil {
				return err
			}
			b, err := p.readVec2()
			if err != nil {
				return err
			}
			c, err := p.readVec2()
			if err != nil {
				return err
			}
			lensTriangles = append(lensTriangles, renderer.LensTriangle{
				A: a.Multiply(aperture), B: b.Multiply(aperture), C: c.Multiply(aperture),
			})
		}
		lensTriangles = renderer.NormalizeLensWeights(lensTriangles)
	}

	p.camera = renderer.NewCamera(center, u, v, r, aperture, focalDistance, n, r1, r2, lensTriangles)
	return nil
}
