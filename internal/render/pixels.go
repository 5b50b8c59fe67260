package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"particle-sim/pkg/sims/sand"
)

// ThermalStops are the gradient anchors from coldest to hottest.
var ThermalStops = []string{"#0b1a4a", "#2f6fb0", "#e3b23c", "#ff4500", "#ffffff"}

// PhasePalette colors cells by state of matter, indexed by sand.Phase.
var PhasePalette = []color.RGBA{
	sand.PhaseSolid:  {R: 110, G: 110, B: 120, A: 255},
	sand.PhasePowder: {R: 214, G: 180, B: 90, A: 255},
	sand.PhaseLiquid: {R: 40, G: 110, B: 220, A: 255},
	sand.PhaseGas:    {R: 12, G: 14, B: 20, A: 255},
}

var thermalLUT = buildGradient(ThermalStops)

// buildGradient samples a Lab blend through stops into 256 opaque colors.
func buildGradient(stops []string) [256]color.RGBA {
	var lut [256]color.RGBA
	if len(stops) == 0 {
		return lut
	}
	cols := make([]colorful.Color, len(stops))
	for i, s := range stops {
		cols[i] = colorful.MustParseHex(s)
	}
	if len(cols) == 1 {
		cols = append(cols, cols[0])
	}
	segs := len(cols) - 1
	for i := range lut {
		f := float64(i) / 255 * float64(segs)
		seg := min(int(f), segs-1)
		c := cols[seg].BlendLab(cols[seg+1], f-float64(seg)).Clamped()
		r, g, b := c.RGB255()
		lut[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return lut
}

// FillThermalRGBA maps temperatures onto the thermal gradient. lo and below is
// the coldest color, hi and above the hottest.
func FillThermalRGBA(buf []byte, temps []uint32, lo, hi uint32) {
	if hi <= lo {
		hi = lo + 1
	}
	span := uint64(hi - lo)
	for i, t := range temps {
		var idx uint64
		switch {
		case t <= lo:
			idx = 0
		case t >= hi:
			idx = 255
		default:
			idx = uint64(t-lo) * 255 / span
		}
		col := thermalLUT[idx]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillPhaseRGBA converts phases into RGBA pixels using a palette. When the
// palette is empty the buffer is cleared to transparent black.
func FillPhaseRGBA(buf []byte, phases []sand.Phase, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(phases)])
		return
	}

	last := len(palette) - 1
	for i, p := range phases {
		idx := int(p)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
