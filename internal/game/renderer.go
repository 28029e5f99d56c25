package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Tarnwood/Shellfall/internal/terrain"
)

// surfaceBandPx is the thickness of the coloured turf strip painted on top
// of each ground column.
const surfaceBandPx = 3

// DataSource yields the current canonical field for incremental repaints.
// *terrain.Manager satisfies it.
type DataSource interface {
	Data() (terrain.HeightField, terrain.Config)
}

// TerrainRenderer implements terrain.Renderer against a cached offscreen
// image. Render repaints every column; ApplyDestructionMask repaints only
// the column span the crater touched.
type TerrainRenderer struct {
	buf   *ebiten.Image
	src   DataSource
	field terrain.HeightField
	cfg   terrain.Config
}

// NewTerrainRenderer allocates the offscreen buffer for a map of the given
// pixel dimensions.
func NewTerrainRenderer(width, height int) *TerrainRenderer {
	return &TerrainRenderer{buf: ebiten.NewImage(width, height)}
}

// Bind points the renderer at the manager so incremental updates can read
// the freshly installed snapshot rather than a stale one.
func (r *TerrainRenderer) Bind(src DataSource) {
	r.src = src
}

// Render implements terrain.Renderer with a full repaint.
func (r *TerrainRenderer) Render(field terrain.HeightField, cfg terrain.Config) {
	r.field = field
	r.cfg = cfg
	r.buf.Fill(cfg.SkyColor)
	for x := range field {
		r.drawColumn(x)
	}
}

// Clear implements terrain.Renderer.
func (r *TerrainRenderer) Clear() {
	r.field = nil
	r.buf.Fill(color.RGBA{})
}

// ApplyDestructionMask implements terrain.Renderer. The manager has already
// swapped in the post-explosion snapshot, so the renderer re-reads its data
// source before repainting the affected columns.
func (r *TerrainRenderer) ApplyDestructionMask(region terrain.DestructionRegion) {
	if r.src != nil {
		r.field, r.cfg = r.src.Data()
	}
	if len(r.field) == 0 {
		return
	}
	lo := int(region.X-region.Radius) - 1
	hi := int(region.X+region.Radius) + 1
	if lo < 0 {
		lo = 0
	}
	if hi > len(r.field)-1 {
		hi = len(r.field) - 1
	}
	for x := lo; x <= hi; x++ {
		vector.FillRect(r.buf, float32(x), 0, 1, float32(r.cfg.Height), r.cfg.SkyColor, false)
		r.drawColumn(x)
	}
}

// drawColumn paints one ground column from its surface down to the bottom
// of the visible band, with the turf strip on top.
func (r *TerrainRenderer) drawColumn(x int) {
	surface := float32(r.field[x])
	bottom := float32(r.cfg.Height)
	if surface >= bottom {
		return
	}
	if surface < 0 {
		surface = 0
	}
	vector.FillRect(r.buf, float32(x), surface, 1, bottom-surface, r.cfg.GroundColor, false)
	vector.FillRect(r.buf, float32(x), surface, 1, surfaceBandPx, r.cfg.SurfaceColor, false)
}

// Draw blits the cached terrain image onto the screen.
func (r *TerrainRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.buf, nil)
}
