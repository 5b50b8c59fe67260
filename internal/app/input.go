package app

// brushCell converts a cursor position in screen pixels into grid cell
// coordinates, reporting false when the cursor is off the grid.
func brushCell(mx, my, scale, w, h int) (int, int, bool) {
	if scale <= 0 {
		scale = 1
	}
	if mx < 0 || my < 0 {
		return 0, 0, false
	}
	x, y := mx/scale, my/scale
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}
