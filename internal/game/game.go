package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Tarnwood/Shellfall/internal/terrain"
)

const (
	battleWidth  = 1280
	battleHeight = 720

	aimStep   = 0.02
	powerStep = 0.1
	spawnGap  = 300.0
)

var tankColors = []color.RGBA{
	{R: 178, G: 64, B: 48, A: 255},  // player 1
	{R: 58, G: 108, B: 180, A: 255}, // player 2
}

// watchedKeys are the keys tracked for edge-triggered presses.
var watchedKeys = []ebiten.Key{
	ebiten.KeySpace,
	ebiten.KeyR,
	ebiten.KeyC,
}

// Game is the Ebiten front-end: a two-player hot-seat artillery duel on a
// destructible height-field.
type Game struct {
	width    int
	height   int
	terrain  *terrain.Manager
	renderer *TerrainRenderer
	tanks    []*Tank
	shell    *Shell
	turn     int // index of the tank whose turn it is
	over     bool
	message  string
	prevKeys map[ebiten.Key]bool
}

// New builds a game with a freshly generated map.
func New() *Game {
	r := NewTerrainRenderer(battleWidth, battleHeight)
	m := terrain.NewManager(terrain.Config{Width: battleWidth, Height: battleHeight}, r, time.Now().UnixNano())
	r.Bind(m)
	g := &Game{
		width:    battleWidth,
		height:   battleHeight,
		terrain:  m,
		renderer: r,
		prevKeys: make(map[ebiten.Key]bool),
	}
	m.Generate()
	g.placeTanks()
	return g
}

// placeTanks spawns both players via the terrain's spawn search, padding
// with fixed columns if the search comes up short. Player 1 gets the
// leftmost position.
func (g *Game) placeTanks() {
	positions := g.terrain.SpawnPositions(2, spawnGap)
	fallbacks := []float64{float64(g.width) / 4, 3 * float64(g.width) / 4}
	for len(positions) < 2 {
		x := fallbacks[len(positions)]
		positions = append(positions, terrain.Position{X: x, Y: g.terrain.HeightAt(x)})
	}
	if positions[0].X > positions[1].X {
		positions[0], positions[1] = positions[1], positions[0]
	}
	g.tanks = g.tanks[:0]
	for i, p := range positions {
		g.tanks = append(g.tanks, NewTank(i, p, tankColors[i%len(tankColors)]))
	}
}

// newRound regenerates the map and resets both tanks.
func (g *Game) newRound() {
	g.terrain.Regenerate()
	g.placeTanks()
	g.shell = nil
	g.turn = 0
	g.over = false
	g.message = ""
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	defer g.trackKeys()

	if g.shell != nil {
		if hit := g.shell.Step(g.terrain, g.width, g.height); hit != nil {
			resolveImpact(g.terrain, g.tanks, *hit)
		}
		if g.shell.Done {
			g.shell = nil
			g.advanceTurn()
		}
		return nil
	}

	if g.keyJustPressed(ebiten.KeyR) {
		g.newRound()
		return nil
	}
	if g.keyJustPressed(ebiten.KeyC) {
		g.terrain.Clear()
		g.over = true
		g.message = "terrain cleared, press R for a new round"
		return nil
	}
	if g.over {
		if g.keyJustPressed(ebiten.KeySpace) {
			g.newRound()
		}
		return nil
	}

	t := g.tanks[g.turn]
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		t.AdjustAngle(-aimStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		t.AdjustAngle(aimStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		t.AdjustPower(powerStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		t.AdjustPower(-powerStep)
	}
	if g.keyJustPressed(ebiten.KeySpace) {
		g.shell = t.Fire()
	}
	return nil
}

// advanceTurn hands control to the next living tank, or ends the round
// when someone is knocked out.
func (g *Game) advanceTurn() {
	for i, t := range g.tanks {
		if !t.Alive() {
			g.over = true
			g.message = fmt.Sprintf("player %d wins, press SPACE for a new round", 2-i)
			return
		}
	}
	g.turn = (g.turn + 1) % len(g.tanks)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	for _, t := range g.tanks {
		t.Draw(screen)
	}
	if g.shell != nil {
		g.shell.Draw(screen)
	}

	if g.over {
		ebitenutil.DebugPrintAt(screen, g.message, 8, 8)
		return
	}
	t := g.tanks[g.turn]
	hud := fmt.Sprintf(
		"player %d  angle %3.0f  power %4.1f\nP1 HP %d   P2 HP %d\narrows aim/power  SPACE fire  R new map  C clear",
		g.turn+1, -t.Angle*180/math.Pi, t.Power, g.tanks[0].HP, g.tanks[1].HP,
	)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// keyJustPressed reports a rising edge on k since the previous Update.
func (g *Game) keyJustPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k) && !g.prevKeys[k]
}

func (g *Game) trackKeys() {
	for _, k := range watchedKeys {
		g.prevKeys[k] = ebiten.IsKeyPressed(k)
	}
}
