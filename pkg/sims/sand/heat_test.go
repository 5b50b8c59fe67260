package sand

import (
	"testing"
)

// pair returns a grid whose only simulated cells are (0,0) and (1,0).
func pair(t *testing.T, a, b Particle) *Grid {
	t.Helper()
	g := newTestGrid(t, 3, 2, a, fixedRand(false))
	g.Set(0, 0, a)
	g.Set(1, 0, b)
	return g
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestHeatConvergesForTwoCells(t *testing.T) {
	m := Material{Name: "probe", Rigid: true, MeltingPoint: 60000, BoilingPoint: 60001, HeatCapacity: 100}
	g := pair(t, at(m, 1000), at(m, 0))
	total := g.TotalEnergy()

	prev := absDiff(g.At(0, 0).Temperature(), g.At(1, 0).Temperature())
	for i := 0; i < 60; i++ {
		g.SimulateHeat()
		diff := absDiff(g.At(0, 0).Temperature(), g.At(1, 0).Temperature())
		if diff > prev {
			t.Fatalf("pass %d: temperature gap grew from %d to %d", i, prev, diff)
		}
		if got := g.TotalEnergy(); got != total {
			t.Fatalf("pass %d: energy %d, want %d", i, got, total)
		}
		prev = diff
	}
	if prev > 10 {
		t.Fatalf("temperatures did not converge, gap %d", prev)
	}
	for _, x := range []int{0, 1} {
		if temp := g.At(x, 0).Temperature(); temp < 490 || temp > 510 {
			t.Fatalf("cell %d settled at %dK, want ~500K", x, temp)
		}
	}
}

func TestHeatResistanceSlowsTransfer(t *testing.T) {
	fast := Material{Name: "fast", Rigid: true, MeltingPoint: 60000, BoilingPoint: 60001, HeatCapacity: 100}
	slow := fast
	slow.Name = "slow"
	slow.HeatResistance = 20

	gf := pair(t, at(fast, 1000), at(fast, 0))
	gs := pair(t, at(slow, 1000), at(slow, 0))
	gf.SimulateHeat()
	gs.SimulateHeat()
	if gs.At(1, 0).Temperature() >= gf.At(1, 0).Temperature() {
		t.Fatalf("resistant material warmed to %d, conductive to %d",
			gs.At(1, 0).Temperature(), gf.At(1, 0).Temperature())
	}
}

func TestHeatFirstTransferMatchesFormula(t *testing.T) {
	m := Material{Name: "probe", Rigid: true, MeltingPoint: 60000, BoilingPoint: 60001, HeatCapacity: 100, HeatResistance: 1}
	g := pair(t, at(m, 900), at(m, 100))
	g.SimulateHeat()
	// Source (0,0) runs first: (900-100)*100 / (8*(1+1+1)) = 3333.
	// Then (1,0) at temperature 133 against 866: (133-866)*100/24 = -3054.
	wantA := uint32(90000 - 3333 - 3054)
	wantB := uint32(10000 + 3333 + 3054)
	if got := g.At(0, 0).Energy(); got != wantA {
		t.Fatalf("hot cell energy %d, want %d", got, wantA)
	}
	if got := g.At(1, 0).Energy(); got != wantB {
		t.Fatalf("cold cell energy %d, want %d", got, wantB)
	}
}

func TestHeatClampsUnderflow(t *testing.T) {
	sink := Material{Name: "sink", Rigid: true, MeltingPoint: 60000, BoilingPoint: 60001, HeatCapacity: 1000}
	thin := Material{Name: "thin", Rigid: true, MeltingPoint: 60000, BoilingPoint: 60001, HeatCapacity: 1}
	g := pair(t, at(sink, 0), at(thin, 100))
	total := g.TotalEnergy()
	g.SimulateHeat()
	// The first source pulls (0-100)*1000/8 = -12500 out of a neighbor holding 100.
	if got := g.At(1, 0).Energy(); got != 0 {
		t.Fatalf("neighbor energy = %d, want clamped to 0", got)
	}
	if got := g.At(0, 0).Energy(); got != 100 {
		t.Fatalf("source energy = %d, want the 100 the neighbor held", got)
	}
	if got := g.TotalEnergy(); got != total {
		t.Fatalf("clamped pass changed total energy: %d, want %d", got, total)
	}
}

func TestHeatConservesEnergyAcrossCapacities(t *testing.T) {
	dense := Material{Name: "dense", Rigid: true, MeltingPoint: 60000, BoilingPoint: 60001, HeatCapacity: 1000}
	thin := Material{Name: "thin", Rigid: true, MeltingPoint: 60000, BoilingPoint: 60001, HeatCapacity: 1}
	for _, c := range []struct{ a, b Particle }{
		{at(dense, 0), at(thin, 100)},
		{at(thin, 100), at(dense, 0)},
		{at(dense, 300), at(thin, 20)},
	} {
		g := pair(t, c.a, c.b)
		total := g.TotalEnergy()
		for i := 0; i < 20; i++ {
			g.SimulateHeat()
			if got := g.TotalEnergy(); got != total {
				t.Fatalf("%s/%s pass %d: energy %d, want %d",
					c.a.Material().Name, c.b.Material().Name, i, got, total)
			}
		}
	}
}

func TestHeatSaturatesOverflow(t *testing.T) {
	if got := addEnergy(4294967000, 1000); got != 4294967295 {
		t.Fatalf("addEnergy overflow = %d", got)
	}
	if got := addEnergy(10, -11); got != 0 {
		t.Fatalf("addEnergy underflow = %d", got)
	}
	if got := addEnergy(10, -3); got != 7 {
		t.Fatalf("addEnergy = %d, want 7", got)
	}
}

func TestHeatSimplifiedTreatsGasAsSink(t *testing.T) {
	hot := at(testStone, 800)
	air := at(testAir, roomTemperature)
	g := pair(t, hot, air)
	g.SimulateHeatSimplified()
	if got := g.At(1, 0).Energy(); got != air.Energy() {
		t.Fatalf("gas received energy: %d, want %d", got, air.Energy())
	}
	if got := g.At(0, 0).Energy(); got >= hot.Energy() {
		t.Fatalf("source should still lose energy into the gas: %d >= %d", got, hot.Energy())
	}

	full := pair(t, hot, air)
	full.SimulateHeat()
	if full.At(1, 0).Energy() <= air.Energy() {
		t.Fatal("full model should warm the gas")
	}
}

func TestHeatSimplifiedSkipsGasSource(t *testing.T) {
	steam := at(testWater, 600)
	cold := at(testStone, 100)
	g := pair(t, cold, steam)
	g.SimulateHeatSimplified()
	// The stone source runs first and writes nothing into gas; the steam is skipped.
	if got := g.At(1, 0).Energy(); got != steam.Energy() {
		t.Fatalf("steam energy changed to %d", got)
	}
}

func TestHeatIgnoresBoundaryCells(t *testing.T) {
	m := Material{Name: "probe", Rigid: true, MeltingPoint: 60000, BoilingPoint: 60001, HeatCapacity: 10}
	g := newTestGrid(t, 3, 3, at(m, 0), fixedRand(false))
	// The last row and column are never simulated, so their energy is inert.
	g.cells[g.index(2, 2)] = at(m, 5000)
	g.cells[g.index(1, 2)] = at(m, 5000)
	g.SimulateHeat()
	for _, xy := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if got := g.At(xy[0], xy[1]).Energy(); got != 0 {
			t.Fatalf("cell %v gained %d from a boundary cell", xy, got)
		}
	}
}

func TestStepUsesSelectedHeatModel(t *testing.T) {
	m := Material{Name: "probe", Rigid: true, MeltingPoint: 60000, BoilingPoint: 60001, HeatCapacity: 100}
	g := pair(t, at(m, 1000), at(m, 0))
	g.SetHeatModel(HeatOff)
	g.Step()
	if g.At(1, 0).Temperature() != 0 {
		t.Fatal("HeatOff must not conduct")
	}
	g.SetHeatModel(HeatFull)
	if g.HeatModel() != HeatFull {
		t.Fatal("HeatModel getter mismatch")
	}
	g.Step()
	if g.At(1, 0).Temperature() == 0 {
		t.Fatal("HeatFull should conduct")
	}
}

func TestParseHeatModel(t *testing.T) {
	for _, m := range []HeatModel{HeatFull, HeatSimplified, HeatOff} {
		got, err := ParseHeatModel(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseHeatModel(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseHeatModel("lukewarm"); err == nil {
		t.Fatal("expected an error for an unknown model")
	}
}
