// Package sand implements a falling-sand cellular automaton with powder, liquid
// and gas displacement driven by density, and explicit heat conduction.
//
// All passes mutate a single row-major array in place and in a fixed scan
// order; later iterations observe earlier writes within the same sweep. A Grid
// must be driven from one goroutine.
package sand

import (
	"errors"
	"fmt"

	"particle-sim/pkg/core"
)

var (
	// ErrInvalidSize is returned for grids with a non-positive dimension.
	ErrInvalidSize = errors.New("sand: grid dimensions must be positive")
	// ErrNilRand is returned when no tie-break source is supplied.
	ErrNilRand = errors.New("sand: nil random source")
)

// Rand supplies the uniformly random bits used to break left/right ties.
type Rand interface {
	Bool() bool
}

// Grid is a fixed-size field of particles plus the passes that evolve it.
//
// Only positions with x < Width()-1 and y < Height()-1 take part in the
// simulation; the last column and row are rendered but never mutated.
type Grid struct {
	w, h    int
	cells   []Particle
	visited *core.ByteGrid
	rng     Rand

	tick uint64
	heat HeatModel
}

// New returns a w*h grid with every position set to seed.
func New(w, h int, seed Particle, rng Rand) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrInvalidSize)
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if err := seed.material.Validate(); err != nil {
		return nil, fmt.Errorf("seed particle: %w", err)
	}
	cells := make([]Particle, w*h)
	for i := range cells {
		cells[i] = seed
	}
	return &Grid{
		w:       w,
		h:       h,
		cells:   cells,
		visited: core.NewByteGrid(w, h),
		rng:     rng,
		heat:    HeatFull,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the backing row-major slice for read access.
func (g *Grid) Cells() []Particle { return g.cells }

func (g *Grid) index(x, y int) int { return x + y*g.w }

// Exists reports whether (x, y) takes part in the simulation.
func (g *Grid) Exists(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w-1 && y < g.h-1
}

// At returns the particle at (x, y). It does not check Exists and panics when
// the index falls outside the backing array.
func (g *Grid) At(x, y int) Particle {
	return g.cells[g.index(x, y)]
}

// Set replaces the particle at (x, y). It is a no-op outside Exists.
func (g *Grid) Set(x, y int, p Particle) {
	if g.Exists(x, y) {
		g.cells[g.index(x, y)] = p
	}
}

// Swap exchanges two particles. It is a no-op unless both positions exist.
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	if g.Exists(x1, y1) && g.Exists(x2, y2) {
		i, j := g.index(x1, y1), g.index(x2, y2)
		g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
	}
}

// SetEnergy overwrites the internal energy at (x, y). It is a no-op outside Exists.
func (g *Grid) SetEnergy(x, y int, energy uint32) {
	if g.Exists(x, y) {
		g.cells[g.index(x, y)].energy = energy
	}
}

// SetTemperature sets the energy at (x, y) to match the given temperature.
func (g *Grid) SetTemperature(x, y int, kelvin uint32) {
	if g.Exists(x, y) {
		i := g.index(x, y)
		g.cells[i] = g.cells[i].WithTemperature(kelvin)
	}
}

// SetNoise overwrites the color noise at (x, y).
func (g *Grid) SetNoise(x, y int, noise uint8) {
	if g.Exists(x, y) {
		g.cells[g.index(x, y)].noise = noise
	}
}

// ColorAt returns the display color at (x, y), or black outside Exists.
func (g *Grid) ColorAt(x, y int) RGB {
	if !g.Exists(x, y) {
		return RGB{}
	}
	return g.At(x, y).Color()
}

// Render returns a fresh row-major snapshot of every position's color.
func (g *Grid) Render() []RGB {
	out := make([]RGB, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].Color()
	}
	return out
}

// RenderRGBA writes every position's color into dst as opaque RGBA pixels.
// dst must hold at least 4*Width()*Height() bytes.
func (g *Grid) RenderRGBA(dst []byte) {
	_ = dst[4*len(g.cells)-1]
	for i := range g.cells {
		c := g.cells[i].Color()
		base := i * 4
		dst[base+0] = c[0]
		dst[base+1] = c[1]
		dst[base+2] = c[2]
		dst[base+3] = 0xff
	}
}

// Temperatures writes every position's temperature into dst.
func (g *Grid) Temperatures(dst []uint32) {
	for i := range g.cells {
		dst[i] = g.cells[i].Temperature()
	}
}

// Phases writes every position's phase into dst.
func (g *Grid) Phases(dst []Phase) {
	for i := range g.cells {
		dst[i] = g.cells[i].Phase()
	}
}

// Tick reports how many times Step has run.
func (g *Grid) Tick() uint64 { return g.tick }

// HeatModel reports the conduction pass Step uses.
func (g *Grid) HeatModel() HeatModel { return g.heat }

// SetHeatModel selects the conduction pass Step uses.
func (g *Grid) SetHeatModel(m HeatModel) { g.heat = m }

// Step advances the simulation by one tick: powder, liquid and gas
// displacement followed by heat conduction.
func (g *Grid) Step() {
	t := g.tick
	g.SimulatePowder(t)
	g.SimulateLiquids(t)
	g.SimulateGases(t)
	switch g.heat {
	case HeatFull:
		g.SimulateHeat()
	case HeatSimplified:
		g.SimulateHeatSimplified()
	}
	g.tick++
}
