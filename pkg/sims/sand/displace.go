package sand

type offset struct{ dx, dy int }

// Candidate moves in priority order. Index 0 is always the primary direction;
// the rest have their dx mirrored at random per mover.
var (
	powderOffsets = [...]offset{{0, 1}, {1, 1}, {-1, 1}}
	liquidOffsets = [...]offset{{0, 1}, {1, 1}, {-1, 1}, {1, 0}, {-1, 0}}
	gasOffsets    = [...]offset{{0, -1}, {1, -1}, {-1, -1}, {1, 0}, {-1, 0}}
)

// SimulatePowder lets powder particles sink into less dense fluids.
func (g *Grid) SimulatePowder(tick uint64) {
	g.sweep(tick, false, func(x, y int) {
		if g.At(x, y).Phase() == PhasePowder {
			g.movePowder(x, y)
		}
	})
}

// SimulateLiquids lets liquid particles sink and spread into less dense fluids.
func (g *Grid) SimulateLiquids(tick uint64) {
	g.sweep(tick, false, func(x, y int) {
		if g.At(x, y).Phase() == PhaseLiquid {
			g.moveFluid(x, y, liquidOffsets[:])
		}
	})
}

// SimulateGases lets gas particles rise and spread into less dense fluids.
func (g *Grid) SimulateGases(tick uint64) {
	g.sweep(tick, true, func(x, y int) {
		if g.At(x, y).Phase() == PhaseGas {
			g.moveFluid(x, y, gasOffsets[:])
		}
	})
}

// sweep visits every existing position once. Columns run right to left on
// even ticks and left to right on odd ticks; rows run bottom to top unless
// ascendingY is set. Visited markers are cleared afterwards.
func (g *Grid) sweep(tick uint64, ascendingY bool, visit func(x, y int)) {
	reverse := tick%2 == 0
	for yn := 0; yn < g.h; yn++ {
		y := g.h - yn - 1
		if ascendingY {
			y = yn
		}
		for xn := 0; xn < g.w; xn++ {
			x := xn
			if reverse {
				x = g.w - xn - 1
			}
			if g.Exists(x, y) {
				visit(x, y)
			}
		}
	}
	g.visited.Clear()
}

// canDisplace reports whether the mover at (x, y) may trade places with the
// particle at (tx, ty).
func (g *Grid) canDisplace(x, y, tx, ty int) bool {
	if !g.Exists(tx, ty) || g.visited.Marked(g.index(x, y)) {
		return false
	}
	target := g.At(tx, ty)
	return g.At(x, y).Density() > target.Density() && target.Phase().Fluid()
}

// unblocked reports whether a sideways move to column tx is open: the particle
// beside the mover in its own row must be fluid.
func (g *Grid) unblocked(tx, y int) bool {
	return g.At(tx, y).Phase().Fluid()
}

// commit swaps the mover with its target and marks it as moved. The marker
// travels with the mover.
func (g *Grid) commit(x, y, tx, ty int) {
	i, j := g.index(x, y), g.index(tx, ty)
	g.visited.Mark(i)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
	g.visited.Swap(i, j)
}

func (g *Grid) movePowder(x, y int) {
	mirror := g.rng.Bool()
	for i, o := range powderOffsets {
		dx := o.dx
		if mirror {
			dx = -dx
		}
		tx, ty := x+dx, y+o.dy
		if !g.canDisplace(x, y, tx, ty) {
			continue
		}
		if i == 0 || g.unblocked(tx, y) {
			g.commit(x, y, tx, ty)
			return
		}
	}
}

// moveFluid takes the primary direction if possible, otherwise the open
// candidate holding the densest particle.
func (g *Grid) moveFluid(x, y int, offsets []offset) {
	mirror := g.rng.Bool()
	best := -1
	var bestDensity float32
	for i, o := range offsets {
		dx := o.dx
		if mirror {
			dx = -dx
		}
		tx, ty := x+dx, y+o.dy
		if !g.canDisplace(x, y, tx, ty) {
			continue
		}
		if i == 0 {
			g.commit(x, y, tx, ty)
			return
		}
		if !g.unblocked(tx, y) {
			continue
		}
		if d := g.At(tx, ty).Density(); d > bestDensity {
			best = i
			bestDensity = d
		}
	}
	if best < 0 {
		return
	}
	dx := offsets[best].dx
	if mirror {
		dx = -dx
	}
	g.commit(x, y, x+dx, y+offsets[best].dy)
}
