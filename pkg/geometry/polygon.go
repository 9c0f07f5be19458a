package geometry

import (
	"github.com/lumenray/raygo/pkg/core"
	"github.com/lumenray/raygo/pkg/material"
)

// Polygon is a planar convex polygon defined by an ordered list of
// coplanar vertices, fan-triangulated around the first vertex for
// intersection testing. A concave polygon is covered only where that fan
// matches its outline. It reports a single flat normal for the whole
// face regardless of which fan triangle the ray actually crosses.
type Polygon struct {
	Vertices []core.Vec3
	Material material.Material

	normal core.Vec3
	fan    []triangle
}

// NewPolygon fan-triangulates vertices around vertices[0] and precomputes
// the shared plane normal.
func NewPolygon(vertices []core.Vec3, mat material.Material) *Polygon {
	p := &Polygon{Vertices: vertices, Material: mat}

	if len(vertices) >= 3 {
		p.normal = triangle{vertices[0], vertices[1], vertices[2]}.planeNormal()
	}

	for i := 1; i+1 < len(vertices); i++ {
		p.fan = append(p.fan, triangle{vertices[0], vertices[i], vertices[i+1]})
	}

	return p
}

// Intersect tests the ray against every fan triangle and keeps the
// nearest hit; all hits share the polygon's single flat normal.
func (p *Polygon) Intersect(ray core.Ray) Contact {
	best := Miss()

	for _, tri := range p.fan {
		t, point, ok := tri.intersect(ray, p.normal)
		if !ok {
			continue
		}
		if !best.Hit() || t < best.Time {
			best = Contact{Time: t, Point: point, Normal: p.normal, Material: p.Material}
		}
	}

	return best
}
