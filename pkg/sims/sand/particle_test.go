package sand

import (
	"errors"
	"math"
	"testing"
)

func TestTemperatureFromEnergy(t *testing.T) {
	for _, m := range []Material{testAir, testSand, testWater, testOil, testStone} {
		p := MustParticle(m)
		if got := p.Temperature(); got != 0 {
			t.Fatalf("%s: temperature at zero energy = %d", m.Name, got)
		}
		prev := uint32(0)
		for e := uint32(0); e < 50000; e += 137 {
			got := p.WithEnergy(e).Temperature()
			if got < prev {
				t.Fatalf("%s: temperature decreased from %d to %d at energy %d", m.Name, prev, got, e)
			}
			if want := e / m.HeatCapacity; got != want {
				t.Fatalf("%s: temperature(%d) = %d, want %d", m.Name, e, got, want)
			}
			prev = got
		}
	}
}

func TestPhaseThresholds(t *testing.T) {
	m := Material{Name: "probe", MeltingPoint: 300, BoilingPoint: 400, HeatCapacity: 10}
	rigid := m
	rigid.Rigid = true

	tests := []struct {
		name   string
		m      Material
		energy uint32
		want   Phase
	}{
		{"powder below melting", m, 2999, PhasePowder},
		{"solid below melting", rigid, 2999, PhaseSolid},
		{"liquid at melting", m, 3000, PhaseLiquid},
		{"rigid liquid at melting", rigid, 3000, PhaseLiquid},
		{"liquid below boiling", m, 3999, PhaseLiquid},
		{"gas at boiling", m, 4000, PhaseGas},
		{"gas far above boiling", rigid, 90000, PhaseGas},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustParticle(tt.m).WithEnergy(tt.energy)
			if got := p.Phase(); got != tt.want {
				t.Errorf("phase at energy %d = %v, want %v", tt.energy, got, tt.want)
			}
		})
	}
}

func TestPhaseOrdering(t *testing.T) {
	if !(PhaseSolid < PhasePowder && PhasePowder < PhaseLiquid && PhaseLiquid < PhaseGas) {
		t.Fatal("phases must be ordered solid < powder < liquid < gas")
	}
	if PhasePowder.Fluid() || !PhaseLiquid.Fluid() || !PhaseGas.Fluid() {
		t.Fatal("only liquid and gas are fluid")
	}
	if PhaseGas.String() != "gas" || Phase(9).String() != "unknown" {
		t.Fatalf("unexpected phase names %q %q", PhaseGas, Phase(9))
	}
}

func TestDensityByPhase(t *testing.T) {
	liquid := at(testWater, 300)
	if got := liquid.Density(); math.Abs(float64(got)-1.0) > 1e-5 {
		t.Fatalf("liquid water density = %f, want ~1.0", got)
	}
	steam := at(testWater, 400)
	if got := steam.Density(); math.Abs(float64(got)-0.0018) > 1e-6 {
		t.Fatalf("steam density = %f, want ~0.0018", got)
	}
	// Non-liquid phases use the gas density.
	ice := at(testWater, 100)
	if got := ice.Density(); math.Abs(float64(got)-0.0018) > 1e-6 {
		t.Fatalf("ice density = %f, want gas density", got)
	}
	hot := at(testStone, 1000)
	cold := at(testStone, 10)
	if hot.Density() <= cold.Density() {
		t.Fatalf("density should grow with temperature: hot %f cold %f", hot.Density(), cold.Density())
	}
}

func TestNewParticleRejectsZeroHeatCapacity(t *testing.T) {
	m := testSand
	m.HeatCapacity = 0
	if _, err := NewParticle(m); !errors.Is(err, ErrZeroHeatCapacity) {
		t.Fatalf("expected ErrZeroHeatCapacity, got %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("MustParticle should panic on an invalid material")
		}
	}()
	MustParticle(m)
}

func TestParticleDefaultsAndSetters(t *testing.T) {
	p := MustParticle(testSand)
	if p.Energy() != 0 || p.Noise() != NeutralNoise {
		t.Fatalf("new particle energy=%d noise=%d", p.Energy(), p.Noise())
	}
	q := p.WithNoise(7).WithTemperature(500)
	if q.Noise() != 7 || q.Temperature() != 500 || q.Energy() != 500*testSand.HeatCapacity {
		t.Fatalf("setters did not apply: noise=%d temp=%d energy=%d", q.Noise(), q.Temperature(), q.Energy())
	}
	if p.Noise() != NeutralNoise || p.Energy() != 0 {
		t.Fatal("setters must not modify the receiver")
	}
	sat := p.WithTemperature(math.MaxUint32)
	if sat.Energy() != math.MaxUint32 {
		t.Fatalf("WithTemperature should saturate, got %d", sat.Energy())
	}
}

func TestZeroParticleIsInert(t *testing.T) {
	var p Particle
	if p.Temperature() != 0 {
		t.Fatal("zero particle must report zero temperature")
	}
}

func TestTable(t *testing.T) {
	table, err := NewTable(testAir, testSand, testWater)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("Len = %d, want 3", table.Len())
	}
	if m, ok := table.Get(2); !ok || m.Name != "water" {
		t.Fatalf("Get(2) = %v, %v", m.Name, ok)
	}
	if _, ok := table.Get(99); ok {
		t.Fatal("Get(99) should miss")
	}
	if m, err := table.Lookup("sand"); err != nil || m.ID != 1 {
		t.Fatalf("Lookup(sand) = %v, %v", m.ID, err)
	}
	if _, err := table.Lookup("lava"); !errors.Is(err, ErrUnknownMaterial) {
		t.Fatalf("expected ErrUnknownMaterial, got %v", err)
	}
	all := table.All()
	all[0].Name = "mutated"
	if m, _ := table.Get(0); m.Name != "air" {
		t.Fatal("All must return a copy")
	}

	dupID := testOil
	dupID.ID = testSand.ID
	if _, err := NewTable(testSand, dupID); !errors.Is(err, ErrDuplicateMaterial) {
		t.Fatalf("expected ErrDuplicateMaterial for id, got %v", err)
	}
	dupName := testOil
	dupName.Name = "sand"
	if _, err := NewTable(testSand, dupName); !errors.Is(err, ErrDuplicateMaterial) {
		t.Fatalf("expected ErrDuplicateMaterial for name, got %v", err)
	}
	broken := testOil
	broken.HeatCapacity = 0
	if _, err := NewTable(broken); !errors.Is(err, ErrZeroHeatCapacity) {
		t.Fatalf("expected ErrZeroHeatCapacity, got %v", err)
	}
}
