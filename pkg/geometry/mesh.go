package geometry

import (
	"github.com/lumenray/raygo/pkg/core"
	"github.com/lumenray/raygo/pkg/material"
)

// MeshFace is one triangular face of a Mesh, indexing into Mesh.Vertices.
type MeshFace struct {
	A, B, C int
}

// Mesh is a collection of triangular faces sharing one vertex pool and one
// material, bounded by an axis-aligned box so rays that miss the box
// entirely skip the linear per-face scan.
type Mesh struct {
	Vertices []core.Vec3
	Faces    []MeshFace
	Material material.Material

	bounds AABB
	faces  []triangle
}

// NewMesh builds a mesh from a shared vertex pool and a face index list,
// and recomputes its bounding box.
func NewMesh(vertices []core.Vec3, faces []MeshFace, mat material.Material) *Mesh {
	m := &Mesh{Vertices: vertices, Faces: faces, Material: mat}

	m.faces = make([]triangle, len(faces))
	for i, f := range faces {
		m.faces[i] = triangle{vertices[f.A], vertices[f.B], vertices[f.C]}
	}

	m.bounds = NewAABBFromPoints(vertices)

	return m
}

// Intersect rejects the ray early against the mesh's bounding box, then
// scans every face linearly and keeps the nearest hit. There is no
// per-mesh spatial index beyond the single bounding box.
func (m *Mesh) Intersect(ray core.Ray) Contact {
	if !m.bounds.Hit(ray) {
		return Miss()
	}

	best := Miss()

	for _, tri := range m.faces {
		normal := tri.planeNormal()
		t, point, ok := tri.intersect(ray, normal)
		if !ok {
			continue
		}
		if !best.Hit() || t < best.Time {
			best = Contact{Time: t, Point: point, Normal: normal, Material: m.Material}
		}
	}

	return best
}
