package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Tarnwood/Shellfall/internal/terrain"
)

const (
	tankHalfWidth  = 12.0
	tankBodyHeight = 8.0
	barrelLength   = 18.0
	tankMaxHP      = 100

	minBarrelAngle = -math.Pi // pointing left
	maxBarrelAngle = 0.0      // pointing right; the barrel always arcs overhead
	minFirePower   = 2.0
	maxFirePower   = 14.0
)

// Tank is one player's vehicle. It has no drive train: it sits where it
// spawned and follows the surface when the ground under it is carved away.
type Tank struct {
	ID    int
	X, Y  float64
	Angle float64 // barrel angle in radians; -Pi/2 is straight up
	Power float64 // shell launch speed in px/tick
	HP    int
	Color color.RGBA
}

// NewTank places a tank on the given surface position.
func NewTank(id int, pos terrain.Position, col color.RGBA) *Tank {
	angle := -math.Pi / 4 // default aim: up and to the right
	if id%2 == 1 {
		angle = -3 * math.Pi / 4 // second player faces left
	}
	return &Tank{
		ID:    id,
		X:     pos.X,
		Y:     pos.Y,
		Angle: angle,
		Power: 8,
		HP:    tankMaxHP,
		Color: col,
	}
}

// Settle drops (or lifts) the tank onto the current surface at its column.
func (t *Tank) Settle(m *terrain.Manager) {
	if h := m.HeightAt(t.X); h != -1 {
		t.Y = h
	}
}

// AdjustAngle nudges the barrel, clamped to the overhead arc.
func (t *Tank) AdjustAngle(delta float64) {
	t.Angle = math.Min(maxBarrelAngle, math.Max(minBarrelAngle, t.Angle+delta))
}

// AdjustPower nudges the launch power within its limits.
func (t *Tank) AdjustPower(delta float64) {
	t.Power = math.Min(maxFirePower, math.Max(minFirePower, t.Power+delta))
}

// Muzzle returns the barrel tip, where shells spawn.
func (t *Tank) Muzzle() (float64, float64) {
	bx := t.X + math.Cos(t.Angle)*barrelLength
	by := t.Y - tankBodyHeight + math.Sin(t.Angle)*barrelLength
	return bx, by
}

// Fire spawns a shell at the muzzle with the tank's current aim.
func (t *Tank) Fire() *Shell {
	mx, my := t.Muzzle()
	return &Shell{
		X:     mx,
		Y:     my,
		VX:    math.Cos(t.Angle) * t.Power,
		VY:    math.Sin(t.Angle) * t.Power,
		Owner: t.ID,
	}
}

// Damage applies hit points of damage, flooring at zero.
func (t *Tank) Damage(amount int) {
	t.HP -= amount
	if t.HP < 0 {
		t.HP = 0
	}
}

// Alive reports whether the tank can still act.
func (t *Tank) Alive() bool {
	return t.HP > 0
}

// Draw renders the hull, barrel and a health bar.
func (t *Tank) Draw(screen *ebiten.Image) {
	hull := t.Color
	if !t.Alive() {
		hull = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	}
	ebitenutil.DrawRect(screen, t.X-tankHalfWidth, t.Y-tankBodyHeight, tankHalfWidth*2, tankBodyHeight, hull)

	mx, my := t.Muzzle()
	ebitenutil.DrawLine(screen, t.X, t.Y-tankBodyHeight, mx, my, color.RGBA{R: 220, G: 220, B: 220, A: 255})

	// Health bar above the hull.
	frac := float64(t.HP) / tankMaxHP
	barY := t.Y - tankBodyHeight - 8
	ebitenutil.DrawRect(screen, t.X-tankHalfWidth, barY, tankHalfWidth*2, 3, color.RGBA{R: 60, G: 20, B: 20, A: 255})
	ebitenutil.DrawRect(screen, t.X-tankHalfWidth, barY, tankHalfWidth*2*frac, 3, color.RGBA{R: 60, G: 200, B: 60, A: 255})
}
