package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/Tarnwood/Shellfall/internal/terrain"
)

type runStats struct {
	runIndex int
	seed     int64

	meanBefore float64
	meanAfter  float64

	carvedColumns int
	displaced     float64
	deepestCut    float64
	deepestCol    int

	spawnYield  int
	probeHits   int
	nearestHits int

	renders int
	masks   int
}

// countingRenderer tallies manager notifications without drawing anything.
type countingRenderer struct {
	renders int
	clears  int
	masks   int
}

func (r *countingRenderer) Render(field terrain.HeightField, cfg terrain.Config) {
	r.renders++
}

func (r *countingRenderer) Clear() {
	r.clears++
}

func (r *countingRenderer) ApplyDestructionMask(region terrain.DestructionRegion) {
	r.masks++
}

func main() {
	var runs int
	var shots int
	var width int
	var height int
	var seedBase int64
	var seedStep int64
	var noise string

	flag.IntVar(&runs, "runs", 5, "number of generation/destruction runs")
	flag.IntVar(&shots, "shots", 20, "random explosions per run")
	flag.IntVar(&width, "width", 1280, "map width in columns")
	flag.IntVar(&height, "height", 720, "map height in pixels")
	flag.Int64Var(&seedBase, "seed-base", 42, "terrain seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&noise, "noise", terrain.NoisePerlin, "noise source: perlin or simplex")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if shots < 0 {
		fmt.Println("error: -shots must be >= 0")
		return
	}
	if width < 200 || height < 100 {
		fmt.Println("error: map must be at least 200x100")
		return
	}
	if noise != terrain.NoisePerlin && noise != terrain.NoiseSimplex {
		fmt.Printf("error: unsupported noise %q (supported: perlin, simplex)\n", noise)
		return
	}

	fmt.Printf("=== Terrain Destruction Report ===\n")
	fmt.Printf("map=%dx%d noise=%s runs=%d shots=%d seed_base=%d seed_step=%d\n\n",
		width, height, noise, runs, shots, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runBatch(i+1, seed, width, height, shots, noise)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

// runBatch generates one map, fires random shots through the full manager
// path and measures what the destruction did to the surface.
func runBatch(runIndex int, seed int64, width, height, shots int, noise string) runStats {
	rend := &countingRenderer{}
	m := terrain.NewManager(terrain.Config{Width: width, Height: height, Noise: noise}, rend, seed)
	m.Generate()
	before := m.HeightMap()

	rng := rand.New(rand.NewSource(seed + 1000)) // #nosec G404 -- benchmark shot placement
	for s := 0; s < shots; s++ {
		x := rng.Float64() * float64(width)
		y := m.HeightAt(x)
		if y < 0 {
			continue
		}
		radius := 15 + rng.Float64()*40
		m.DestroyAt(x, y, radius)
	}
	after := m.HeightMap()

	carved, displaced, deepest, deepestCol := fieldDelta(before, after)
	spawn := len(m.SpawnPositions(8, 100))

	probeHits := 0
	for p := 0; p < 10; p++ {
		probeY := float64(height) * (0.30 + 0.05*float64(p))
		if m.TrajectoryHit(0, probeY, float64(width-1), probeY, 64) != nil {
			probeHits++
		}
	}

	nearestHits := 0
	for p := 1; p <= 10; p++ {
		x := float64(width*p) / 11
		y := m.HeightAt(x)
		if y < 0 {
			continue
		}
		if m.NearestSurfacePoint(x, y-10, terrain.DefaultSearchRadius) != nil {
			nearestHits++
		}
	}

	return runStats{
		runIndex:      runIndex,
		seed:          seed,
		meanBefore:    meanHeight(before),
		meanAfter:     meanHeight(after),
		carvedColumns: carved,
		displaced:     displaced,
		deepestCut:    deepest,
		deepestCol:    deepestCol,
		spawnYield:    spawn,
		probeHits:     probeHits,
		nearestHits:   nearestHits,
		renders:       rend.renders,
		masks:         rend.masks,
	}
}

// meanHeight averages a height map; 0 for an empty map.
func meanHeight(field []float64) float64 {
	if len(field) == 0 {
		return 0
	}
	sum := 0.0
	for _, h := range field {
		sum += h
	}
	return sum / float64(len(field))
}

// fieldDelta compares two height maps column by column and reports how many
// columns moved, the total displacement, and the single deepest cut.
func fieldDelta(before, after []float64) (carved int, displaced, deepest float64, deepestCol int) {
	deepestCol = -1
	for x := range before {
		d := before[x] - after[x]
		if d <= 0 {
			continue
		}
		carved++
		displaced += d
		if d > deepest {
			deepest = d
			deepestCol = x
		}
	}
	return carved, displaced, deepest, deepestCol
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("surface: mean_before=%.1f mean_after=%.1f\n", rs.meanBefore, rs.meanAfter)
	fmt.Printf("destruction: carved_columns=%d displaced=%.1f deepest_cut=%.1f at_column=%d\n",
		rs.carvedColumns, rs.displaced, rs.deepestCut, rs.deepestCol)
	fmt.Printf("queries: spawn_yield=%d trajectory_probe_hits=%d/10 nearest_probe_hits=%d/10\n",
		rs.spawnYield, rs.probeHits, rs.nearestHits)
	fmt.Printf("renderer: full_renders=%d destruction_masks=%d\n\n", rs.renders, rs.masks)
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	var carved, spawn, probes, masks int
	var displaced float64
	for _, rs := range all {
		carved += rs.carvedColumns
		spawn += rs.spawnYield
		probes += rs.probeHits
		masks += rs.masks
		displaced += rs.displaced
	}
	n := float64(len(all))
	fmt.Printf("=== Aggregate over %d runs ===\n", len(all))
	fmt.Printf("avg_carved_columns=%.1f avg_displaced=%.1f avg_spawn_yield=%.1f avg_probe_hits=%.1f avg_masks=%.1f\n",
		float64(carved)/n, displaced/n, float64(spawn)/n, float64(probes)/n, float64(masks)/n)
}
