//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"particle-sim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBg   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textFg    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimFg     = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	buttonOn  = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// readoutGroups are snapshot groups drawn as plain text under the controls.
var readoutGroups = map[string]bool{"Simulation": true, "Census": true}

// HUD is the parameter panel drawn to the right of the grid: a +/- row per
// integer control followed by live readouts.
type HUD struct {
	sim     core.Sim
	width   int
	offsetX int
	panel   *ebiten.Image
	pixel   *ebiten.Image

	controls []hudRow
	setter   core.IntParameterSetter
	snapshot core.ParameterSnapshot
}

type hudRow struct {
	ctrl  core.ParameterControl
	value int
	known bool
}

// NewHUD builds a panel for sim's integer controls.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0)}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		for _, c := range p.ParameterControls() {
			if c.Type == core.ParamTypeInt {
				h.controls = append(h.controls, hudRow{ctrl: c})
			}
		}
	}
	h.setter, _ = sim.(core.IntParameterSetter)
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes the snapshot and applies clicks on the +/- buttons.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	p, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	h.snapshot = p.Parameters()
	for i := range h.controls {
		r := &h.controls[i]
		r.known = false
		if param, ok := h.snapshot.Lookup(r.ctrl.Key); ok {
			if v, err := strconv.Atoi(param.Value); err == nil {
				r.value, r.known = v, true
			}
		}
	}
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		r := &h.controls[i]
		minus, plus := buttons(h.width, i)
		dir := 0
		switch {
		case pt.In(minus):
			dir = -1
		case pt.In(plus):
			dir = 1
		}
		if dir == 0 || !r.known {
			continue
		}
		if v := nudge(r.ctrl, r.value, dir); v != r.value && h.setter.SetIntParameter(r.ctrl.Key, v) {
			r.value = v
		}
		return
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width == 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBg)
	face := basicfont.Face7x13
	text.Draw(h.panel, h.sim.Name(), face, pad, titleY, textFg)

	for i, r := range h.controls {
		minus, plus := buttons(h.width, i)
		base := minus.Min.Y + 15
		text.Draw(h.panel, r.ctrl.Label, face, pad, base, textFg)
		value, fg := "--", dimFg
		if r.known {
			value, fg = strconv.Itoa(r.value), textFg
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, minus.Min.X-btnGap-w, base, fg)
		h.button(minus, "-", r.known && nudge(r.ctrl, r.value, -1) != r.value)
		h.button(plus, "+", r.known && nudge(r.ctrl, r.value, 1) != r.value)
	}

	y := firstRow + len(h.controls)*rowH + lineH
	for _, g := range h.snapshot.Groups {
		if !readoutGroups[g.Name] {
			continue
		}
		text.Draw(h.panel, g.Name, face, pad, y, textFg)
		y += lineH
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label+": "+p.Value, face, pad+8, y, dimFg)
			y += lineH
		}
		y += lineH / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) button(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonOff, dimFg
	if enabled && h.setter != nil {
		bg, fg = buttonOn, textFg
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)
	text.Draw(h.panel, label, basicfont.Face7x13, r.Min.X+(r.Dx()-7)/2, r.Min.Y+16, fg)
}
