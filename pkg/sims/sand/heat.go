package sand

import (
	"fmt"
	"math"
	"strings"
)

// HeatModel selects the conduction pass run by Grid.Step.
type HeatModel uint8

const (
	// HeatFull exchanges energy with all eight neighbors.
	HeatFull HeatModel = iota
	// HeatSimplified treats gas as a sink: gas particles neither conduct nor
	// receive energy, but still drain the particles next to them.
	HeatSimplified
	// HeatOff disables conduction.
	HeatOff
)

func (m HeatModel) String() string {
	switch m {
	case HeatFull:
		return "full"
	case HeatSimplified:
		return "simplified"
	case HeatOff:
		return "off"
	default:
		return fmt.Sprintf("HeatModel(%d)", uint8(m))
	}
}

// ParseHeatModel converts a name produced by HeatModel.String back to a model.
func ParseHeatModel(s string) (HeatModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "":
		return HeatFull, nil
	case "simplified", "simple":
		return HeatSimplified, nil
	case "off", "none":
		return HeatOff, nil
	}
	return HeatFull, fmt.Errorf("sand: unknown heat model %q", s)
}

var neighborOffsets = [...]offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// SimulateHeat conducts energy between every particle and its eight neighbors.
func (g *Grid) SimulateHeat() { g.conduct(false) }

// SimulateHeatSimplified conducts energy like SimulateHeat but never writes
// into gas particles and skips gas sources entirely.
func (g *Grid) SimulateHeatSimplified() { g.conduct(true) }

// conduct walks columns left to right and rows top to bottom within each
// column. Each source uses a snapshot of itself taken before its neighbors are
// updated, but neighbors see writes from earlier sources in the same pass.
func (g *Grid) conduct(gasSink bool) {
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			if !g.Exists(x, y) {
				continue
			}
			i := g.index(x, y)
			src := g.cells[i]
			if gasSink && src.Phase() == PhaseGas {
				continue
			}
			srcTemp := int64(src.Temperature())
			capacity := int64(src.material.HeatCapacity)
			resistance := int64(src.material.HeatResistance)

			var moved int64
			for _, o := range neighborOffsets {
				nx, ny := x+o.dx, y+o.dy
				if !g.Exists(nx, ny) {
					continue
				}
				n := &g.cells[g.index(nx, ny)]
				delta := srcTemp - int64(n.Temperature())
				transfer := delta * capacity / (8 * (resistance + int64(n.material.HeatResistance) + 1))
				if gasSink && n.Phase() == PhaseGas {
					moved += transfer
					continue
				}
				// The source pays for what the neighbor actually absorbed, so a
				// neighbor clamped at zero cannot hand over energy it never held.
				before := n.energy
				n.energy = addEnergy(before, transfer)
				moved += int64(n.energy) - int64(before)
			}
			g.cells[i].energy = addEnergy(src.energy, -moved)
		}
	}
}

// addEnergy applies a signed change and saturates at the uint32 limits.
func addEnergy(e uint32, delta int64) uint32 {
	v := int64(e) + delta
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}
