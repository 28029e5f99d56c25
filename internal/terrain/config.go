package terrain

import (
	"image/color"
	"math/rand"
)

// Default generation parameters. Amplitude and base height default to
// fractions of the map height instead of fixed values.
const (
	DefaultNoiseScale    = 0.01
	DefaultSmoothing     = 5
	DefaultPlatformWidth = 50

	defaultAmplitudeFrac  = 0.3
	defaultBaseHeightFrac = 0.7
)

// Config describes one terrain generation. Width and Height are required;
// every other field falls back to a default when left zero.
type Config struct {
	Width  int // columns, one height sample each
	Height int // visible band depth; y >= Height counts as the floor

	NoiseScale    float64 // noise frequency multiplier
	Amplitude     float64 // vertical span of the noise contribution
	BaseHeight    float64 // mean surface y before noise
	Smoothing     int     // half-window radius of the box filter
	PlatformCount int     // flat runs carved for placement; negative disables
	PlatformWidth int     // columns per platform

	Noise string // noise source name: NoisePerlin (default) or NoiseSimplex

	// Cosmetic fields, read by renderers only.
	SkyColor     color.RGBA
	GroundColor  color.RGBA
	SurfaceColor color.RGBA
}

// withDefaults fills unset fields. PlatformCount is rolled from rng when
// zero, giving each map 3-5 platforms unless the caller pins a count.
func (c Config) withDefaults(rng *rand.Rand) Config {
	if c.NoiseScale == 0 {
		c.NoiseScale = DefaultNoiseScale
	}
	if c.Amplitude == 0 {
		c.Amplitude = defaultAmplitudeFrac * float64(c.Height)
	}
	if c.BaseHeight == 0 {
		c.BaseHeight = defaultBaseHeightFrac * float64(c.Height)
	}
	if c.Smoothing == 0 {
		c.Smoothing = DefaultSmoothing
	}
	if c.PlatformCount == 0 {
		c.PlatformCount = 3 + rng.Intn(3)
	}
	if c.PlatformWidth == 0 {
		c.PlatformWidth = DefaultPlatformWidth
	}
	if c.Noise == "" {
		c.Noise = NoisePerlin
	}
	zero := color.RGBA{}
	if c.SkyColor == zero {
		c.SkyColor = color.RGBA{R: 18, G: 24, B: 38, A: 255}
	}
	if c.GroundColor == zero {
		c.GroundColor = color.RGBA{R: 74, G: 52, B: 34, A: 255}
	}
	if c.SurfaceColor == zero {
		c.SurfaceColor = color.RGBA{R: 52, G: 96, B: 42, A: 255}
	}
	return c
}
