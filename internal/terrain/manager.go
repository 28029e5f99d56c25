package terrain

import "math/rand"

// Renderer is the visual collaborator notified after structural changes.
// Render receives the new canonical field for a full redraw; the field is a
// borrowed snapshot valid until the next structural change.
// ApplyDestructionMask receives only the carved region for an incremental
// update. Clear wipes whatever is on screen.
type Renderer interface {
	Render(field HeightField, cfg Config)
	Clear()
	ApplyDestructionMask(region DestructionRegion)
}

// Manager owns the canonical height-field and fronts generation, queries
// and destruction. Every structural change replaces the field wholesale
// and re-arms the physics and query components with the new snapshot, so
// consumers must never cache a field across a DestroyAt or Generate call.
type Manager struct {
	cfg      Config
	field    HeightField
	gen      *Generator
	physics  *Physics
	query    *Query
	renderer Renderer
}

// NewManager builds a manager for cfg. The renderer may be nil for headless
// use. The seed drives noise, platform placement and spawn sampling; equal
// seeds with equal configs give identical battles.
func NewManager(cfg Config, renderer Renderer, seed int64) *Manager {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- config defaulting, not crypto
	cfg = cfg.withDefaults(rng)
	return &Manager{
		cfg:      cfg,
		gen:      NewGenerator(NewNoiseSource(cfg.Noise, seed), seed),
		physics:  NewPhysics(cfg),
		query:    NewQuery(seed + 1),
		renderer: renderer,
	}
}

// Generate builds a fresh canonical field and requests a full render.
func (m *Manager) Generate() {
	m.install(m.gen.Generate(m.cfg))
}

// Regenerate reseeds the noise source and builds a different map.
func (m *Manager) Regenerate() {
	m.install(m.gen.Regenerate(m.cfg))
}

func (m *Manager) install(field HeightField) {
	m.field = field
	m.physics.Reset(field)
	m.query.Reset(field)
	if m.renderer != nil {
		m.renderer.Render(field, m.cfg)
	}
}

// Clear drops the canonical field and wipes the renderer. Queries return
// neutral results until the next Generate.
func (m *Manager) Clear() {
	m.field = nil
	m.physics.Reset(nil)
	m.query.Reset(nil)
	if m.renderer != nil {
		m.renderer.Clear()
	}
}

// CheckCollision forwards to the physics engine. Neutral before Generate.
func (m *Manager) CheckCollision(x, y, radius float64) CollisionResult {
	if m.field == nil {
		return CollisionResult{}
	}
	return m.physics.CheckCollision(x, y, radius)
}

// DestroyAt carves a circular crater centred at (x, y), installs the
// resulting snapshot and hands the renderer the region for an incremental
// update. A no-op before Generate.
func (m *Manager) DestroyAt(x, y, radius float64) {
	if m.field == nil {
		return
	}
	region := DestructionRegion{X: x, Y: y, Radius: radius}
	next := m.physics.ApplyExplosion(region)
	if next == nil {
		return
	}
	m.field = next
	m.query.Reset(next)
	if m.renderer != nil {
		m.renderer.ApplyDestructionMask(region)
	}
}

// SpawnPositions forwards to the query helper. Nil before Generate.
func (m *Manager) SpawnPositions(count int, minDistance float64) []Position {
	return m.query.SpawnPositions(count, minDistance)
}

// HeightAt forwards to the query helper. -1 before Generate.
func (m *Manager) HeightAt(x float64) float64 {
	return m.query.HeightAt(x)
}

// NearestSurfacePoint forwards to the query helper. Nil before Generate.
func (m *Manager) NearestSurfacePoint(x, y, maxDistance float64) *Position {
	return m.query.NearestSurfacePoint(x, y, maxDistance)
}

// TrajectoryHit forwards to the query helper. Nil before Generate.
func (m *Manager) TrajectoryHit(startX, startY, endX, endY float64, steps int) *Position {
	return m.query.TrajectoryHit(startX, startY, endX, endY, steps)
}

// HeightMap returns a defensive copy of the canonical field, or nil before
// Generate. Callers may mutate the copy freely.
func (m *Manager) HeightMap() []float64 {
	return m.field.Clone()
}

// Data returns the canonical field and config for renderers. The field is
// a borrowed snapshot valid only until the next structural change.
func (m *Manager) Data() (HeightField, Config) {
	return m.field, m.cfg
}
