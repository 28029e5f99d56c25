package terrain

import (
	"math"
	"testing"
)

// stubNoise is a deterministic noise source driven by a plain function.
// Reseed flips the sign so regeneration visibly changes the profile.
type stubNoise struct {
	fn      func(x float64) float64
	flipped bool
}

func (s *stubNoise) Reseed(seed int64) { s.flipped = !s.flipped }

func (s *stubNoise) Sample(x float64) float64 {
	v := s.fn(x)
	if s.flipped {
		v = -v
	}
	return v
}

func TestGenerate_FieldMatchesWidth(t *testing.T) {
	g := NewGenerator(NewPerlinSource(1), 1)
	for _, w := range []int{1, 50, 800, 1280} {
		field := g.Generate(Config{Width: w, Height: 600})
		if len(field) != w {
			t.Fatalf("width %d: field has %d columns", w, len(field))
		}
	}
}

func TestGenerate_ConstantNoiseIsFlat(t *testing.T) {
	g := NewGenerator(&stubNoise{fn: func(x float64) float64 { return 0.5 }}, 1)
	cfg := Config{
		Width: 200, Height: 600,
		Amplitude: 100, BaseHeight: 400,
		PlatformCount: -1,
	}
	field := g.Generate(cfg)
	for x, h := range field {
		if h != 450 {
			t.Fatalf("column %d: height=%f, want 450 (base 400 + 0.5*100)", x, h)
		}
	}
}

func TestSmooth_ReadsPreSmoothingSnapshot(t *testing.T) {
	// Impulse at column 0. With radius 1 the filter must average original
	// values: col 1 = (312+300+300)/3 = 304. An in-place filter would feed
	// the already-smoothed col 0 back in and land on 302.
	impulse := &stubNoise{fn: func(x float64) float64 {
		if x == 0 {
			return 1
		}
		return 0
	}}
	g := NewGenerator(impulse, 1)
	cfg := Config{
		Width: 9, Height: 600,
		NoiseScale: 1, Amplitude: 12, BaseHeight: 300,
		Smoothing: 1, PlatformCount: -1,
	}
	field := g.Generate(cfg)
	if math.Abs(field[0]-306) > 1e-9 {
		t.Fatalf("column 0: height=%f, want 306", field[0])
	}
	if math.Abs(field[1]-304) > 1e-9 {
		t.Fatalf("column 1: height=%f, want 304 (filter must read the unsmoothed array)", field[1])
	}
	if math.Abs(field[2]-300) > 1e-9 {
		t.Fatalf("column 2: height=%f, want 300", field[2])
	}
}

func TestGenerate_CarvesFlatPlatforms(t *testing.T) {
	wavy := &stubNoise{fn: math.Sin}
	g := NewGenerator(wavy, 3)
	cfg := Config{
		Width: 400, Height: 600,
		NoiseScale: 0.5, Amplitude: 80, BaseHeight: 400,
		PlatformCount: 2, PlatformWidth: 30,
	}
	field := g.Generate(cfg)

	longest := 1
	run := 1
	for x := 1; x < len(field); x++ {
		if field[x] == field[x-1] {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	if longest < cfg.PlatformWidth {
		t.Fatalf("longest flat run is %d columns, want >= %d", longest, cfg.PlatformWidth)
	}
}

func TestGenerate_DeterministicPerSeed(t *testing.T) {
	cfg := Config{Width: 300, Height: 600}
	a := NewGenerator(NewPerlinSource(11), 11).Generate(cfg)
	b := NewGenerator(NewPerlinSource(11), 11).Generate(cfg)
	if len(a) != len(b) {
		t.Fatalf("field lengths differ: %d vs %d", len(a), len(b))
	}
	for x := range a {
		if a[x] != b[x] {
			t.Fatalf("column %d differs between equally seeded generators: %f vs %f", x, a[x], b[x])
		}
	}
}

func TestRegenerate_ProducesDifferentMap(t *testing.T) {
	g := NewGenerator(NewPerlinSource(5), 5)
	cfg := Config{Width: 300, Height: 600, PlatformCount: -1}
	first := g.Generate(cfg)
	second := g.Regenerate(cfg)
	if len(second) != cfg.Width {
		t.Fatalf("regenerated field has %d columns, want %d", len(second), cfg.Width)
	}
	same := true
	for x := range first {
		if first[x] != second[x] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("regenerate returned an identical profile")
	}
}

func TestGenerate_HeightsNearVisibleBand(t *testing.T) {
	g := NewGenerator(NewPerlinSource(2), 2)
	cfg := Config{Width: 800, Height: 600, PlatformCount: -1}
	field := g.Generate(cfg)
	// base 0.7*600 = 420, amplitude 0.3*600 = 180: everything in [240, 600].
	for x, h := range field {
		if h < 240 || h > 600 {
			t.Fatalf("column %d: height=%f outside the configured band [240, 600]", x, h)
		}
	}
}
