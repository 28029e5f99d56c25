package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Tarnwood/Shellfall/internal/terrain"
)

// Ballistics tuning. Crater radius is what a shell carves; blast radius is
// the wider splash-damage circle around the impact.
const (
	shellGravity    = 0.18
	shellTraceSteps = 12
	craterRadius    = 26.0
	blastRadius     = 60.0
	maxSplashDamage = 45
	cullMarginPx    = 80.0
)

// Shell is an in-flight projectile. Done flips once it has impacted or
// left the playfield; a done shell never moves again.
type Shell struct {
	X, Y   float64
	VX, VY float64
	Owner  int
	Done   bool
}

// Step advances one tick under gravity and resolves terrain impact along
// the swept segment. Shells may fly above the top edge and come back down;
// leaving the sides or bottom culls them. Returns the impact point when
// the shell hit terrain this tick.
func (s *Shell) Step(m *terrain.Manager, width, height int) *terrain.Position {
	if s.Done {
		return nil
	}
	prevX, prevY := s.X, s.Y
	s.VY += shellGravity
	s.X += s.VX
	s.Y += s.VY

	if s.X < -cullMarginPx || s.X > float64(width)+cullMarginPx || s.Y > float64(height)+cullMarginPx {
		s.Done = true
		return nil
	}

	if hit := m.TrajectoryHit(prevX, prevY, s.X, s.Y, shellTraceSteps); hit != nil {
		s.Done = true
		return hit
	}
	// Slow shells can hug the surface between segment samples; the point
	// probe catches the frame where the nose actually touches down.
	if res := m.CheckCollision(s.X, s.Y, 1); res.Hit {
		s.Done = true
		return &terrain.Position{X: res.Point.X, Y: res.Point.Y}
	}
	return nil
}

// Draw renders the shell as a small tracer square.
func (s *Shell) Draw(screen *ebiten.Image) {
	if s.Done {
		return
	}
	ebitenutil.DrawRect(screen, s.X-2, s.Y-2, 4, 4, color.RGBA{R: 255, G: 230, B: 120, A: 255})
}

// resolveImpact carves the crater, splashes damage onto nearby tanks with
// linear falloff, and re-settles every tank onto the new surface.
func resolveImpact(m *terrain.Manager, tanks []*Tank, hit terrain.Position) {
	m.DestroyAt(hit.X, hit.Y, craterRadius)
	for _, t := range tanks {
		d := math.Hypot(t.X-hit.X, t.Y-hit.Y)
		if d < blastRadius {
			t.Damage(int(maxSplashDamage * (1 - d/blastRadius)))
		}
		t.Settle(m)
	}
}
