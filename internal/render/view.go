package render

import "particle-sim/pkg/sims/sand"

// View selects what a Frame paints.
type View uint8

const (
	// ViewColor shows material colors with glow and noise.
	ViewColor View = iota
	// ViewThermal shows temperature on a gradient.
	ViewThermal
	// ViewPhase shows the state of matter.
	ViewPhase
)

func (v View) String() string {
	switch v {
	case ViewThermal:
		return "thermal"
	case ViewPhase:
		return "phase"
	default:
		return "color"
	}
}

// Frame holds the scratch buffers for rendering a grid in any view.
type Frame struct {
	Pix []byte

	// ThermalLow and ThermalHigh bound the thermal gradient in Kelvin.
	ThermalLow  uint32
	ThermalHigh uint32

	temps  []uint32
	phases []sand.Phase
}

// NewFrame allocates buffers for a w*h grid.
func NewFrame(w, h int) *Frame {
	n := w * h
	return &Frame{
		Pix:         make([]byte, 4*n),
		ThermalLow:  200,
		ThermalHigh: 2500,
		temps:       make([]uint32, n),
		phases:      make([]sand.Phase, n),
	}
}

// Fill renders g into Pix. Grids of another size are ignored.
func (f *Frame) Fill(g *sand.Grid, v View) {
	if g.Width()*g.Height() != len(f.temps) {
		return
	}
	switch v {
	case ViewThermal:
		g.Temperatures(f.temps)
		FillThermalRGBA(f.Pix, f.temps, f.ThermalLow, f.ThermalHigh)
	case ViewPhase:
		g.Phases(f.phases)
		FillPhaseRGBA(f.Pix, f.phases, PhasePalette)
	default:
		g.RenderRGBA(f.Pix)
	}
}
