package geometry

import (
	"testing"

	"github.com/lumenray/raygo/pkg/core"
	"github.com/lumenray/raygo/pkg/material"
)

func TestPolygonIntersectSquare(t *testing.T) {
	square := NewPolygon([]core.Vec3{
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(-1, 1, 0),
	}, material.Material{})

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	c := square.Intersect(ray)
	if !c.Hit() {
		t.Fatal("expected a hit through the center of the square")
	}

	want := core.NewVec3(0, 0, 0)
	if c.Point.Subtract(want).Length() > 1e-9 {
		t.Errorf("hit point = %v, want %v", c.Point, want)
	}
}

func TestPolygonIntersectMissesOutsideBounds(t *testing.T) {
	square := NewPolygon([]core.Vec3{
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(-1, 1, 0),
	}, material.Material{})

	ray := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, 0, -1))
	if c := square.Intersect(ray); c.Hit() {
		t.Errorf("expected miss outside the polygon's bounds, got %v", c)
	}
}

func TestPolygonIntersectTriangleInterior(t *testing.T) {
	tri := NewPolygon([]core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	}, material.Material{})

	ray := core.NewRay(core.NewVec3(0.2, 0.2, 5), core.NewVec3(0, 0, -1))
	if c := tri.Intersect(ray); !c.Hit() {
		t.Error("expected hit inside the triangle")
	}

	outside := core.NewRay(core.NewVec3(0.9, 0.9, 5), core.NewVec3(0, 0, -1))
	if c := tri.Intersect(outside); c.Hit() {
		t.Errorf("expected miss outside the triangle's hypotenuse, got %v", c)
	}
}
