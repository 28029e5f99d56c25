package terrain

import (
	"math"
	"math/rand"
)

// Query tunables. Spawn candidates keep spawnMargin columns clear of each
// map edge so placed objects never hang over the boundary.
const (
	spawnMargin            = 50
	spawnAttemptsPer       = 5
	DefaultMinSpawnGap     = 100.0
	DefaultSearchRadius    = 50.0
	DefaultTrajectorySteps = 10
)

// Query provides higher-level geometric lookups over a height-field
// snapshot. Like Physics, it must be Reset after every structural change.
type Query struct {
	field HeightField
	rng   *rand.Rand
}

// NewQuery returns a query helper with no field installed. The seed drives
// spawn-position sampling.
func NewQuery(seed int64) *Query {
	return &Query{
		rng: rand.New(rand.NewSource(seed)), // #nosec G404 -- spawn placement, not crypto
	}
}

// Reset installs the snapshot used by subsequent lookups.
func (q *Query) Reset(field HeightField) {
	q.field = field
}

// SpawnPositions samples up to count surface positions at least minDistance
// apart. The attempt budget is count*5; when it runs out, fewer than count
// positions come back.
func (q *Query) SpawnPositions(count int, minDistance float64) []Position {
	if count <= 0 || len(q.field) <= 2*spawnMargin {
		return nil
	}
	positions := make([]Position, 0, count)
	for attempt := 0; attempt < count*spawnAttemptsPer && len(positions) < count; attempt++ {
		x := spawnMargin + q.rng.Intn(len(q.field)-2*spawnMargin)
		cand := Position{X: float64(x), Y: q.field[x]}
		ok := true
		for _, p := range positions {
			if math.Hypot(cand.X-p.X, cand.Y-p.Y) < minDistance {
				ok = false
				break
			}
		}
		if ok {
			positions = append(positions, cand)
		}
	}
	return positions
}

// HeightAt returns the surface height at x, or -1 when x falls outside the
// field (or no field is installed).
func (q *Query) HeightAt(x float64) float64 {
	if len(q.field) == 0 || x < 0 || x >= float64(len(q.field)) {
		return -1
	}
	index := int(math.Round(clamp(x, 0, float64(len(q.field)-1))))
	if index > len(q.field)-1 {
		index = len(q.field) - 1
	}
	return q.field[index]
}

// NearestSurfacePoint scans every column within maxDistance of x and
// returns the surface point closest to (x, y), or nil when none is
// strictly closer than maxDistance.
func (q *Query) NearestSurfacePoint(x, y, maxDistance float64) *Position {
	if len(q.field) == 0 {
		return nil
	}
	lo := int(math.Max(0, x-maxDistance))
	hi := int(math.Min(float64(len(q.field)-1), x+maxDistance))
	best := maxDistance
	var found *Position
	for i := lo; i <= hi; i++ {
		d := math.Hypot(float64(i)-x, q.field[i]-y)
		if d < best {
			best = d
			found = &Position{X: float64(i), Y: q.field[i]}
		}
	}
	return found
}

// TrajectoryHit samples steps+1 points along the segment and returns the
// first sample at or below the surface, snapped to the surface height.
// Coarse by design: features thinner than the sample spacing can be
// tunnelled through, so callers with fast projectiles should raise steps.
func (q *Query) TrajectoryHit(startX, startY, endX, endY float64, steps int) *Position {
	if steps <= 0 {
		steps = DefaultTrajectorySteps
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := startX + (endX-startX)*t
		y := startY + (endY-startY)*t
		h := q.HeightAt(x)
		if h != -1 && y >= h {
			return &Position{X: x, Y: h}
		}
	}
	return nil
}
