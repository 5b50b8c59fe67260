package ui

import (
	"image"

	"particle-sim/internal/core"
)

const (
	pad      = 12
	rowH     = 32
	btn      = 22
	btnGap   = 6
	titleY   = pad + 14
	firstRow = titleY + 12
	lineH    = 16
)

// nudge returns the value one control step away from v in direction dir,
// clamped to the control's range.
func nudge(c core.ParameterControl, v, dir int) int {
	step := int(c.Step)
	if step <= 0 {
		step = 1
	}
	return int(c.Clamp(float64(v + dir*step)))
}

// buttons returns the minus and plus button rectangles for control row i in a
// panel of the given width.
func buttons(width, i int) (minus, plus image.Rectangle) {
	y := firstRow + i*rowH + (rowH-btn)/2
	plus = image.Rect(width-pad-btn, y, width-pad, y+btn)
	minus = plus.Sub(image.Pt(btn+btnGap, 0))
	return minus, plus
}
