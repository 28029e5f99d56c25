package terrain

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseSource is a seedable, continuous pseudo-random function of one
// coordinate, returning values in [-1, 1]. Implementations must be
// deterministic per seed so harnesses can reproduce maps.
type NoiseSource interface {
	Reseed(seed int64)
	Sample(x float64) float64
}

// Perlin tuning. The octave stack gives rolling hills with enough
// high-frequency detail that smoothing still has work to do.
const (
	perlinAlpha   = 1.5
	perlinBeta    = 2.0
	perlinOctaves = 4
)

// PerlinSource generates 1D Perlin noise. Construct with NewPerlinSource;
// the zero value has no lattice and panics on Sample.
type PerlinSource struct {
	p *perlin.Perlin
}

// NewPerlinSource returns a Perlin noise source for the given seed.
func NewPerlinSource(seed int64) *PerlinSource {
	return &PerlinSource{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

// Reseed rebuilds the lattice from a new seed.
func (s *PerlinSource) Reseed(seed int64) {
	s.p = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
}

// Sample returns noise at x, clamped to [-1, 1].
func (s *PerlinSource) Sample(x float64) float64 {
	return clamp(s.p.Noise1D(x), -1, 1)
}

// SimplexSource generates 1D noise by slicing 2D OpenSimplex noise at y=0.
type SimplexSource struct {
	n opensimplex.Noise
}

// NewSimplexSource returns an OpenSimplex noise source for the given seed.
func NewSimplexSource(seed int64) *SimplexSource {
	return &SimplexSource{n: opensimplex.New(seed)}
}

// Reseed rebuilds the gradient table from a new seed.
func (s *SimplexSource) Reseed(seed int64) {
	s.n = opensimplex.New(seed)
}

// Sample returns noise at x, clamped to [-1, 1].
func (s *SimplexSource) Sample(x float64) float64 {
	return clamp(s.n.Eval2(x, 0), -1, 1)
}

// Noise source names accepted by NewNoiseSource and Config.Noise.
const (
	NoisePerlin  = "perlin"
	NoiseSimplex = "simplex"
)

// NewNoiseSource returns the implementation named by kind. Unknown or empty
// names fall back to Perlin.
func NewNoiseSource(kind string, seed int64) NoiseSource {
	if kind == NoiseSimplex {
		return NewSimplexSource(seed)
	}
	return NewPerlinSource(seed)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
