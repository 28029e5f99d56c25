package terrain

import "math/rand"

// Generator builds height-fields from a Config and a noise source.
// One generator can serve many generations; its RNG drives platform
// placement and regeneration seeds.
type Generator struct {
	noise NoiseSource
	rng   *rand.Rand
}

// NewGenerator returns a generator over the given noise source. The seed
// makes platform placement and Regenerate reproducible.
func NewGenerator(noise NoiseSource, seed int64) *Generator {
	return &Generator{
		noise: noise,
		rng:   rand.New(rand.NewSource(seed)), // #nosec G404 -- map generation, not crypto
	}
}

// Generate produces a fully populated height-field for cfg: noise
// synthesis, box-filter smoothing, then platform carving.
func (g *Generator) Generate(cfg Config) HeightField {
	cfg = cfg.withDefaults(g.rng)
	field := make(HeightField, cfg.Width)
	for x := range field {
		n := g.noise.Sample(float64(x) * cfg.NoiseScale)
		field[x] = cfg.BaseHeight + n*cfg.Amplitude
	}
	smooth(field, cfg.Smoothing)
	g.carvePlatforms(field, cfg)
	return field
}

// Regenerate reseeds the noise source from the generator's RNG stream and
// builds a fresh map: structurally valid, different profile.
func (g *Generator) Regenerate(cfg Config) HeightField {
	g.noise.Reseed(g.rng.Int63())
	return g.Generate(cfg)
}

// smooth applies a box filter of the given half-window radius. Every window
// reads from a snapshot of the field so writes from earlier columns cannot
// bleed into later windows.
func smooth(field HeightField, radius int) {
	if radius <= 0 || len(field) == 0 {
		return
	}
	src := field.Clone()
	for x := range field {
		lo := x - radius
		if lo < 0 {
			lo = 0
		}
		hi := x + radius
		if hi > len(src)-1 {
			hi = len(src) - 1
		}
		sum := 0.0
		for i := lo; i <= hi; i++ {
			sum += src[i]
		}
		field[x] = sum / float64(hi-lo+1)
	}
}

// carvePlatforms flattens PlatformCount random runs to the height found at
// each run's start column. Later platforms may overwrite earlier ones; the
// overlap is deliberate (last write wins).
func (g *Generator) carvePlatforms(field HeightField, cfg Config) {
	if cfg.PlatformWidth <= 0 || cfg.PlatformWidth >= cfg.Width {
		return
	}
	for p := 0; p < cfg.PlatformCount; p++ {
		start := g.rng.Intn(cfg.Width - cfg.PlatformWidth)
		level := field[start]
		for x := start; x < start+cfg.PlatformWidth; x++ {
			field[x] = level
		}
	}
}
