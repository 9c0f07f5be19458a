package geometry

import (
	"testing"

	"github.com/lumenray/raygo/pkg/core"
	"github.com/lumenray/raygo/pkg/material"
)

func unitBox() *Box {
	return NewBox(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		material.Material{},
	)
}

func TestBoxIntersectEntryFromOutside(t *testing.T) {
	b := unitBox()
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1))

	c := b.Intersect(ray)
	if !c.Hit() {
		t.Fatal("expected a hit")
	}

	want := core.NewVec3(0.5, 0.5, 1)
	if c.Point.Subtract(want).Length() > 1e-9 {
		t.Errorf("entry point = %v, want %v", c.Point, want)
	}
}

func TestBoxIntersectExitFromInside(t *testing.T) {
	b := unitBox()
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0, 0, -1))

	c := b.Intersect(ray)
	if !c.Hit() {
		t.Fatal("expected an exit hit from inside the box")
	}

	want := core.NewVec3(0.5, 0.5, 0)
	if c.Point.Subtract(want).Length() > 1e-9 {
		t.Errorf("exit point = %v, want %v", c.Point, want)
	}
}

func TestBoxIntersectMissesOutside(t *testing.T) {
	b := unitBox()
	ray := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, 0, -1))

	if c := b.Intersect(ray); c.Hit() {
		t.Errorf("expected miss, got %v", c)
	}
}

func TestBoxIntersectParallelOutsideMisses(t *testing.T) {
	b := unitBox()
	// Travels along Z, parallel to the X and Y faces, offset outside the box in X.
	ray := core.NewRay(core.NewVec3(5, 0.5, -5), core.NewVec3(0, 0, 1))

	if c := b.Intersect(ray); c.Hit() {
		t.Errorf("expected miss for ray parallel to faces but outside box, got %v", c)
	}
}
