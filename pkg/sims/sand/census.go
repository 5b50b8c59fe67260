package sand

// Census summarizes the simulated region of a grid.
type Census struct {
	Tick   uint64
	Cells  int
	Energy uint64
	Phases [NumPhases]int

	MinTemperature uint32
	MaxTemperature uint32
	// MeanTemperature is the unweighted mean over simulated cells.
	MeanTemperature float64
}

// Census counts phases and totals energy over every position where Exists holds.
func (g *Grid) Census() Census {
	c := Census{Tick: g.tick}
	var tempSum float64
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if !g.Exists(x, y) {
				continue
			}
			p := g.cells[g.index(x, y)]
			t := p.Temperature()
			if c.Cells == 0 || t < c.MinTemperature {
				c.MinTemperature = t
			}
			if t > c.MaxTemperature {
				c.MaxTemperature = t
			}
			c.Cells++
			c.Energy += uint64(p.energy)
			c.Phases[p.Phase()]++
			tempSum += float64(t)
		}
	}
	if c.Cells > 0 {
		c.MeanTemperature = tempSum / float64(c.Cells)
	}
	return c
}

// TotalEnergy sums the energy of every position, simulated or not.
func (g *Grid) TotalEnergy() uint64 {
	var total uint64
	for i := range g.cells {
		total += uint64(g.cells[i].energy)
	}
	return total
}
