package game

import (
	"github.com/Tarnwood/Shellfall/internal/terrain"
)

// maxShellTicks bounds a single shot so a runaway shell can never hang a
// headless run.
const maxShellTicks = 10000

// Battle is a headless battle harness used by tests and the report tool.
// It drives the same ballistics and destruction path as Game.Update but
// never touches Ebiten.
type Battle struct {
	Terrain *terrain.Manager
	Tanks   []*Tank
	Width   int
	Height  int
}

type battleSetup struct {
	width    int
	height   int
	seed     int64
	noise    string
	renderer terrain.Renderer
	tankCols []float64
}

// BattleOption configures NewBattle.
type BattleOption func(*battleSetup)

// WithMapSize sets the playfield dimensions.
func WithMapSize(w, h int) BattleOption {
	return func(s *battleSetup) {
		s.width = w
		s.height = h
	}
}

// WithSeed sets the terrain seed for deterministic runs.
func WithSeed(seed int64) BattleOption {
	return func(s *battleSetup) {
		s.seed = seed
	}
}

// WithNoise selects the noise source by name.
func WithNoise(kind string) BattleOption {
	return func(s *battleSetup) {
		s.noise = kind
	}
}

// WithRenderer attaches a renderer; headless runs default to none.
func WithRenderer(r terrain.Renderer) BattleOption {
	return func(s *battleSetup) {
		s.renderer = r
	}
}

// WithTankAt pins a tank to a column instead of using the spawn search.
func WithTankAt(x float64) BattleOption {
	return func(s *battleSetup) {
		s.tankCols = append(s.tankCols, x)
	}
}

// NewBattle generates terrain and places tanks. When no columns are pinned
// the spawn search places two tanks.
func NewBattle(opts ...BattleOption) *Battle {
	s := &battleSetup{width: 1280, height: 720, seed: 1}
	for _, o := range opts {
		o(s)
	}
	m := terrain.NewManager(terrain.Config{Width: s.width, Height: s.height, Noise: s.noise}, s.renderer, s.seed)
	m.Generate()
	b := &Battle{Terrain: m, Width: s.width, Height: s.height}
	if len(s.tankCols) == 0 {
		for _, p := range m.SpawnPositions(2, terrain.DefaultMinSpawnGap) {
			b.addTankAt(p.X)
		}
	} else {
		for _, x := range s.tankCols {
			b.addTankAt(x)
		}
	}
	return b
}

func (b *Battle) addTankAt(x float64) {
	id := len(b.Tanks)
	pos := terrain.Position{X: x, Y: b.Terrain.HeightAt(x)}
	b.Tanks = append(b.Tanks, NewTank(id, pos, tankColors[id%len(tankColors)]))
}

// Fire aims tank i and steps its shell until resolution. Returns the
// impact point, or nil when the shell left the playfield.
func (b *Battle) Fire(i int, angle, power float64) *terrain.Position {
	t := b.Tanks[i]
	t.Angle = angle
	t.Power = power
	s := t.Fire()
	for tick := 0; !s.Done && tick < maxShellTicks; tick++ {
		if hit := s.Step(b.Terrain, b.Width, b.Height); hit != nil {
			resolveImpact(b.Terrain, b.Tanks, *hit)
			return hit
		}
	}
	return nil
}
