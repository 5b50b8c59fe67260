package render

import (
	"image/color"
	"slices"
	"testing"

	"particle-sim/pkg/sims/sand"
)

func TestFillThermalRGBAClampsRange(t *testing.T) {
	temps := []uint32{0, 200, 1000, 5000, 9000}
	buf := make([]byte, 4*len(temps))
	FillThermalRGBA(buf, temps, 200, 5000)

	px := func(i int) []byte { return buf[i*4 : i*4+4] }
	if !slices.Equal(px(0), px(1)) {
		t.Fatal("temperatures at or below lo should share the coldest color")
	}
	if !slices.Equal(px(3), px(4)) {
		t.Fatal("temperatures at or above hi should share the hottest color")
	}
	if slices.Equal(px(0), px(3)) || slices.Equal(px(0), px(2)) {
		t.Fatal("gradient should vary with temperature")
	}
	for i := range temps {
		if px(i)[3] != 255 {
			t.Fatalf("pixel %d not opaque", i)
		}
	}
	if c := thermalLUT[255]; c.R < 250 || c.G < 250 || c.B < 250 {
		t.Fatalf("hottest color should be near white, got %v", c)
	}
}

func TestFillThermalRGBADegenerateRange(t *testing.T) {
	buf := make([]byte, 8)
	FillThermalRGBA(buf, []uint32{10, 11}, 10, 10)
	if slices.Equal(buf[:4], buf[4:]) {
		t.Fatal("hi <= lo should still separate cold from hot")
	}
}

func TestFillPhaseRGBA(t *testing.T) {
	phases := []sand.Phase{sand.PhaseSolid, sand.PhaseGas, sand.PhaseLiquid}
	buf := make([]byte, 4*len(phases))
	FillPhaseRGBA(buf, phases, PhasePalette)
	for i, p := range phases {
		c := PhasePalette[p]
		if !slices.Equal(buf[i*4:i*4+4], []byte{c.R, c.G, c.B, c.A}) {
			t.Fatalf("pixel %d = %v, want %v", i, buf[i*4:i*4+4], c)
		}
	}

	short := []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}}
	FillPhaseRGBA(buf, phases, short)
	if buf[4] != 2 {
		t.Fatal("phases beyond the palette should use its last entry")
	}

	FillPhaseRGBA(buf, phases, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want cleared", i, b)
		}
	}
}

func TestFrameFillViews(t *testing.T) {
	stone := sand.Material{
		Name:         "stone",
		SolidColor:   color.NRGBA{R: 100, G: 100, B: 100, A: 255},
		Rigid:        true,
		MeltingPoint: 1500,
		BoilingPoint: 2800,
		HeatCapacity: 800,
	}
	g, err := sand.New(3, 3, sand.MustParticle(stone).WithTemperature(300), fixedBool(false))
	if err != nil {
		t.Fatalf("sand.New: %v", err)
	}
	f := NewFrame(3, 3)

	f.Fill(g, ViewColor)
	if !slices.Equal(f.Pix[:4], []byte{100, 100, 100, 255}) {
		t.Fatalf("color view pixel = %v", f.Pix[:4])
	}
	f.Fill(g, ViewPhase)
	solid := PhasePalette[sand.PhaseSolid]
	if !slices.Equal(f.Pix[:4], []byte{solid.R, solid.G, solid.B, solid.A}) {
		t.Fatalf("phase view pixel = %v", f.Pix[:4])
	}
	f.Fill(g, ViewThermal)
	if f.Pix[3] != 255 {
		t.Fatal("thermal view should be opaque")
	}

	other := NewFrame(4, 4)
	other.Fill(g, ViewColor)
	if other.Pix[3] != 0 {
		t.Fatal("mismatched grid should be ignored")
	}
	if ViewThermal.String() != "thermal" || ViewColor.String() != "color" {
		t.Fatal("unexpected view names")
	}
}

type fixedBool bool

func (b fixedBool) Bool() bool { return bool(b) }
