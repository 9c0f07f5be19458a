package geometry

import (
	"testing"

	"github.com/lumenray/raygo/pkg/core"
)

func TestAABBFromPointsAndHit(t *testing.T) {
	box := NewAABBFromPoints([]core.Vec3{
		core.NewVec3(-1, -2, -3),
		core.NewVec3(1, 2, 3),
		core.NewVec3(0, 0, 0),
	})

	want := AABB{Min: core.NewVec3(-1, -2, -3), Max: core.NewVec3(1, 2, 3)}
	if box != want {
		t.Fatalf("bounds = %v, want %v", box, want)
	}

	hit := core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1))
	if !box.Hit(hit) {
		t.Error("expected ray through the box center to hit")
	}

	miss := core.NewRay(core.NewVec3(10, 10, 10), core.NewVec3(0, 0, -1))
	if box.Hit(miss) {
		t.Error("expected ray outside the box's X/Y range to miss")
	}
}

func TestAABBParallelRayInsideRange(t *testing.T) {
	box := NewAABBFromPoints([]core.Vec3{core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1)})

	// Direction has zero Y and Z components; origin's Y and Z are within
	// [min,max] on both axes, so they are trivially satisfied rather than
	// causing a division by a near-zero direction.
	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))
	if !box.Hit(ray) {
		t.Error("expected hit for ray along X with origin Y and Z inside range")
	}
}

func TestAABBEmptyPoints(t *testing.T) {
	box := NewAABBFromPoints(nil)
	if box != (AABB{}) {
		t.Errorf("expected zero-value AABB for no points, got %v", box)
	}
}
