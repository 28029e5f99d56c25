package terrain

import "math"

// defaultNormal points straight up (the y axis grows downward).
var defaultNormal = Vec{X: 0, Y: -1}

// Physics answers collision queries against a height-field snapshot and
// carves explosions into it. Reset must be called after every structural
// change; queries against a stale snapshot see the old surface.
type Physics struct {
	cfg   Config
	field HeightField
}

// NewPhysics returns an engine bound to cfg's dimensions with no field
// installed. All queries are neutral until Reset.
func NewPhysics(cfg Config) *Physics {
	return &Physics{cfg: cfg}
}

// Reset installs the snapshot used by all queries until the next Reset.
func (p *Physics) Reset(field HeightField) {
	p.field = field
}

// CheckCollision tests the point (x, y) against the surface. A radius of 1
// or less is a plain point test at the rounded column; a larger radius
// scans neighbouring columns left to right and reports the first surface
// point within radius (first hit wins, no closest-point search).
func (p *Physics) CheckCollision(x, y, radius float64) CollisionResult {
	if len(p.field) == 0 {
		return CollisionResult{}
	}
	if x < 0 || x >= float64(len(p.field)) {
		return CollisionResult{}
	}
	if y >= float64(p.cfg.Height) {
		// Below the visible band: solid floor everywhere.
		return CollisionResult{
			Hit:    true,
			Point:  Position{X: x, Y: float64(p.cfg.Height)},
			Normal: defaultNormal,
		}
	}
	if y < 0 {
		return CollisionResult{}
	}

	index := int(math.Round(x))
	if radius <= 1 {
		if index < len(p.field) && y >= p.field[index] {
			return CollisionResult{
				Hit:    true,
				Point:  Position{X: float64(index), Y: p.field[index]},
				Normal: p.surfaceNormal(index),
			}
		}
		return CollisionResult{}
	}

	ir := int(radius)
	for offset := -ir; offset <= ir; offset++ {
		cx := index + offset
		if cx < 0 || cx >= len(p.field) {
			continue
		}
		if math.Hypot(x-float64(cx), y-p.field[cx]) < radius {
			return CollisionResult{
				Hit:    true,
				Point:  Position{X: float64(cx), Y: p.field[cx]},
				Normal: p.surfaceNormal(cx),
			}
		}
	}
	return CollisionResult{}
}

// surfaceNormal estimates the normal at a column by rotating the tangent
// between its two neighbours. Boundary columns and degenerate tangents
// report straight up instead of dividing by zero.
func (p *Physics) surfaceNormal(index int) Vec {
	if index <= 0 || index >= len(p.field)-1 {
		return defaultNormal
	}
	tx := 2.0
	ty := p.field[index+1] - p.field[index-1]
	nx, ny := -ty, tx
	length := math.Hypot(nx, ny)
	if length == 0 {
		return defaultNormal
	}
	return Vec{X: nx / length, Y: ny / length}
}

// ApplyExplosion carves the region into the surface and returns the
// resulting snapshot, which also becomes the engine's current state.
// Returns nil when no field is installed. The previous snapshot is never
// mutated; borrowers holding it keep a consistent (stale) view.
//
// Per column, impact is the vertical half-chord of the explosion circle.
// A column is touched only when its surface sits above the circle's lower
// bound, and the min clamp guarantees the stored value never increases.
func (p *Physics) ApplyExplosion(region DestructionRegion) HeightField {
	if len(p.field) == 0 {
		return nil
	}
	next := p.field.Clone()
	lo := int(math.Max(0, math.Floor(region.X-region.Radius)))
	hi := int(math.Min(float64(len(next)-1), math.Ceil(region.X+region.Radius)))
	for i := lo; i <= hi; i++ {
		dx := float64(i) - region.X
		impact := math.Sqrt(math.Max(0, region.Radius*region.Radius-dx*dx))
		if impact <= 0 {
			continue
		}
		if next[i] < region.Y+impact {
			next[i] = math.Min(next[i], region.Y-impact)
		}
	}
	p.field = next
	return next
}
