//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"particle-sim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the brush cursor and status text on top of the grid.
type Overlay struct {
	sim      core.Sim
	scale    int
	showHelp bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the help text.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, brush Brush, status Status) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if brush.Visible {
		o.drawRing(screen, brush, scale)
	}
	ebitenutil.DebugPrintAt(screen, status.String(), 4, 2)
	if o.showHelp {
		for i, line := range HelpLines {
			ebitenutil.DebugPrintAt(screen, line, 4, 18+i*16)
		}
	}
}

func (o *Overlay) drawRing(screen *ebiten.Image, brush Brush, scale int) {
	col := color.RGBA{R: 230, G: 230, B: 240, A: 160}
	if brush.Heat {
		col = color.RGBA{R: 255, G: 120, B: 40, A: 200}
	}
	s := float64(scale)
	cx := (float64(brush.X) + 0.5) * s
	cy := (float64(brush.Y) + 0.5) * s
	r := (float64(brush.Radius) + 0.5) * s
	const segments = 24
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / segments
		a1 := 2 * math.Pi * float64(i+1) / segments
		o.drawLine(screen, cx+r*math.Cos(a0), cy+r*math.Sin(a0), cx+r*math.Cos(a1), cy+r*math.Sin(a1), 1, col)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
