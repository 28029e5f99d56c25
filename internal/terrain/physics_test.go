package terrain

import (
	"math"
	"testing"
)

func flatField(width int, height float64) HeightField {
	f := make(HeightField, width)
	for i := range f {
		f[i] = height
	}
	return f
}

func newTestPhysics(field HeightField) *Physics {
	p := NewPhysics(Config{Width: len(field), Height: 600})
	p.Reset(field)
	return p
}

func TestCheckCollision_SurfaceBoundaryInclusive(t *testing.T) {
	p := newTestPhysics(flatField(800, 400))
	for _, x := range []float64{0, 1, 250, 400, 799} {
		res := p.CheckCollision(x, 400, 1)
		if !res.Hit {
			t.Fatalf("x=%f: point exactly on the surface should collide", x)
		}
		if res.Point.Y != 400 {
			t.Fatalf("x=%f: point.Y=%f, want 400", x, res.Point.Y)
		}
	}
}

func TestCheckCollision_AboveSurfaceMisses(t *testing.T) {
	p := newTestPhysics(flatField(800, 400))
	if res := p.CheckCollision(400, 399.9, 1); res.Hit {
		t.Fatal("point just above the surface should not collide")
	}
	if res := p.CheckCollision(400, -10, 1); res.Hit {
		t.Fatal("point above the sky line should not collide")
	}
}

func TestCheckCollision_OutOfRangeX(t *testing.T) {
	p := newTestPhysics(flatField(800, 400))
	for _, x := range []float64{-5, -0.001, 800, 1000} {
		if res := p.CheckCollision(x, 450, 1); res.Hit {
			t.Fatalf("x=%f is outside the field and should not collide", x)
		}
	}
}

func TestCheckCollision_FloorBelowVisibleBand(t *testing.T) {
	p := newTestPhysics(flatField(800, 400))
	res := p.CheckCollision(400, 600, 1)
	if !res.Hit {
		t.Fatal("y at the bottom edge should always collide")
	}
	if res.Point.X != 400 || res.Point.Y != 600 {
		t.Fatalf("floor hit point = (%f,%f), want (400,600)", res.Point.X, res.Point.Y)
	}
	if res.Normal.X != 0 || res.Normal.Y != -1 {
		t.Fatalf("floor normal = (%f,%f), want (0,-1)", res.Normal.X, res.Normal.Y)
	}
}

func TestCheckCollision_RadiusFirstHitWins(t *testing.T) {
	// Flat surface at 400; probing (10, 398) with radius 3 brings both
	// columns 8 and 9 within range. The scan runs left to right, so the
	// first qualifying column (8, distance ~2.83) must win even though 9
	// (distance ~2.24) is closer.
	p := newTestPhysics(flatField(800, 400))
	res := p.CheckCollision(10, 398, 3)
	if !res.Hit {
		t.Fatal("expected a radius collision")
	}
	if res.Point.X != 8 {
		t.Fatalf("hit column = %f, want 8 (leftmost qualifying column)", res.Point.X)
	}
	if res.Point.Y != 400 {
		t.Fatalf("hit point.Y = %f, want surface height 400", res.Point.Y)
	}
}

func TestCheckCollision_RadiusNoQualifyingColumn(t *testing.T) {
	p := newTestPhysics(flatField(800, 400))
	if res := p.CheckCollision(10, 300, 5); res.Hit {
		t.Fatal("no column surface lies within radius 5 of (10,300)")
	}
}

func TestCheckCollision_NormalOnSlope(t *testing.T) {
	field := flatField(800, 400)
	field[399] = 390
	field[401] = 410
	p := newTestPhysics(field)

	res := p.CheckCollision(400, 400, 1)
	if !res.Hit {
		t.Fatal("expected a surface hit at the slope column")
	}
	length := math.Hypot(res.Normal.X, res.Normal.Y)
	if math.Abs(length-1) > 1e-9 {
		t.Fatalf("normal length = %f, want 1", length)
	}
	// Tangent (2, 20) rotated: normal x must oppose the rising slope.
	if res.Normal.X >= 0 {
		t.Fatalf("normal.X = %f, want negative for a surface dropping to the right", res.Normal.X)
	}
}

func TestCheckCollision_NormalDefaultAtBoundary(t *testing.T) {
	p := newTestPhysics(flatField(800, 400))
	res := p.CheckCollision(0, 400, 1)
	if !res.Hit {
		t.Fatal("expected a hit at column 0")
	}
	if res.Normal.X != 0 || res.Normal.Y != -1 {
		t.Fatalf("boundary normal = (%f,%f), want the (0,-1) default", res.Normal.X, res.Normal.Y)
	}
}

func TestCheckCollision_NeutralBeforeReset(t *testing.T) {
	p := NewPhysics(Config{Width: 800, Height: 600})
	if res := p.CheckCollision(400, 600, 1); res.Hit {
		t.Fatal("uninitialized engine must return a neutral result")
	}
}

func TestApplyExplosion_NilBeforeReset(t *testing.T) {
	p := NewPhysics(Config{Width: 800, Height: 600})
	if out := p.ApplyExplosion(DestructionRegion{X: 100, Y: 400, Radius: 30}); out != nil {
		t.Fatal("explosion on an uninitialized engine must return nil")
	}
}

func TestApplyExplosion_CarveProperties(t *testing.T) {
	before := flatField(800, 400)
	p := newTestPhysics(before)
	after := p.ApplyExplosion(DestructionRegion{X: 100, Y: 400, Radius: 30})
	if after == nil {
		t.Fatal("explosion returned nil on an initialized engine")
	}

	// Centre column takes the full impact.
	if math.Abs(after[100]-370) > 1e-9 {
		t.Fatalf("centre column = %f, want 370 (400 - radius)", after[100])
	}
	for i := range after {
		dx := float64(i) - 100
		if math.Abs(dx) <= 30 {
			if after[i] > before[i] {
				t.Fatalf("column %d moved the wrong way: %f -> %f", i, before[i], after[i])
			}
		} else if after[i] != before[i] {
			t.Fatalf("column %d outside the blast changed: %f -> %f", i, before[i], after[i])
		}
	}
}

func TestApplyExplosion_SnapshotSemantics(t *testing.T) {
	before := flatField(800, 400)
	p := newTestPhysics(before)
	after := p.ApplyExplosion(DestructionRegion{X: 100, Y: 400, Radius: 30})

	// The original buffer is never mutated.
	for i, h := range before {
		if h != 400 {
			t.Fatalf("pre-explosion snapshot mutated at column %d: %f", i, h)
		}
	}
	// The engine now answers against the new snapshot.
	if res := p.CheckCollision(100, after[100], 1); !res.Hit {
		t.Fatal("engine did not adopt the post-explosion snapshot")
	}
}

func TestApplyExplosion_GuardSkipsLowGround(t *testing.T) {
	field := flatField(800, 400)
	field[100] = 500 // already well below the blast's influence
	p := newTestPhysics(field)
	after := p.ApplyExplosion(DestructionRegion{X: 100, Y: 400, Radius: 10})
	if after[100] != 500 {
		t.Fatalf("column below the blast floor changed: %f, want 500", after[100])
	}
	if after[99] >= 400 {
		t.Fatalf("neighbouring column %f should have been carved below 400", after[99])
	}
}

func TestApplyExplosion_RepeatedBlastsOnlyDeepen(t *testing.T) {
	p := newTestPhysics(flatField(800, 400))
	prev := p.ApplyExplosion(DestructionRegion{X: 200, Y: 400, Radius: 40})
	for i := 0; i < 5; i++ {
		next := p.ApplyExplosion(DestructionRegion{X: 200, Y: 400, Radius: 40})
		for x := range next {
			if next[x] > prev[x] {
				t.Fatalf("blast %d raised column %d: %f -> %f", i, x, prev[x], next[x])
			}
		}
		prev = next
	}
}
