package sand

import (
	"image/color"
	"testing"
)

// fixedRand always returns the same tie-break bit.
type fixedRand bool

func (r fixedRand) Bool() bool { return bool(r) }

// countingRand alternates bits and counts draws.
type countingRand struct{ n int }

func (r *countingRand) Bool() bool {
	r.n++
	return r.n%2 == 0
}

const roomTemperature = 293

var (
	testAir = Material{
		ID:             0,
		Name:           "air",
		VaporColor:     color.NRGBA{R: 0, G: 0, B: 0, A: 0},
		LiquidColor:    color.NRGBA{R: 120, G: 160, B: 220, A: 255},
		SolidColor:     color.NRGBA{R: 200, G: 220, B: 255, A: 255},
		LiquidDensity:  0.87,
		GasDensity:     0.0012,
		MeltingPoint:   50,
		BoilingPoint:   80,
		HeatCapacity:   1005,
		HeatResistance: 40,
	}
	testSand = Material{
		ID:             1,
		Name:           "sand",
		VaporColor:     color.NRGBA{R: 250, G: 200, B: 120, A: 120},
		LiquidColor:    color.NRGBA{R: 255, G: 140, B: 40, A: 255},
		SolidColor:     color.NRGBA{R: 194, G: 178, B: 128, A: 255},
		LiquidDensity:  2.3,
		GasDensity:     1.6,
		MeltingPoint:   1986,
		BoilingPoint:   2503,
		HeatCapacity:   830,
		HeatResistance: 8,
	}
	testWater = Material{
		ID:             2,
		Name:           "water",
		VaporColor:     color.NRGBA{R: 220, G: 220, B: 230, A: 90},
		LiquidColor:    color.NRGBA{R: 40, G: 90, B: 200, A: 255},
		SolidColor:     color.NRGBA{R: 190, G: 220, B: 250, A: 255},
		LiquidDensity:  1.0,
		GasDensity:     0.0018,
		MeltingPoint:   273,
		BoilingPoint:   373,
		HeatCapacity:   4186,
		HeatResistance: 4,
	}
	testOil = Material{
		ID:             3,
		Name:           "oil",
		VaporColor:     color.NRGBA{R: 90, G: 80, B: 60, A: 90},
		LiquidColor:    color.NRGBA{R: 60, G: 45, B: 20, A: 255},
		SolidColor:     color.NRGBA{R: 80, G: 70, B: 40, A: 255},
		LiquidDensity:  0.8,
		GasDensity:     0.0025,
		MeltingPoint:   240,
		BoilingPoint:   570,
		HeatCapacity:   1900,
		HeatResistance: 10,
	}
	testStone = Material{
		ID:             4,
		Name:           "stone",
		VaporColor:     color.NRGBA{R: 200, G: 120, B: 80, A: 120},
		LiquidColor:    color.NRGBA{R: 230, G: 80, B: 20, A: 255},
		SolidColor:     color.NRGBA{R: 110, G: 110, B: 115, A: 255},
		Rigid:          true,
		LiquidDensity:  2.6,
		GasDensity:     2.7,
		MeltingPoint:   1473,
		BoilingPoint:   2773,
		HeatCapacity:   790,
		HeatResistance: 6,
	}
)

func at(m Material, kelvin uint32) Particle {
	return MustParticle(m).WithTemperature(kelvin)
}

func newTestGrid(t *testing.T, w, h int, fill Particle, rng Rand) *Grid {
	t.Helper()
	g, err := New(w, h, fill, rng)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return g
}

// paint sets rows of the grid from strings: '.' air, 's' sand, 'w' water,
// 'o' oil, '#' stone, 'v' steam. Unknown runes leave the cell untouched.
func paint(g *Grid, rows ...string) {
	for y, row := range rows {
		for x, r := range row {
			var p Particle
			switch r {
			case '.':
				p = at(testAir, roomTemperature)
			case 's':
				p = at(testSand, roomTemperature)
			case 'w':
				p = at(testWater, roomTemperature)
			case 'o':
				p = at(testOil, roomTemperature)
			case '#':
				p = at(testStone, roomTemperature)
			case 'v':
				p = at(testWater, 400)
			default:
				continue
			}
			g.Set(x, y, p)
		}
	}
}

func nameAt(g *Grid, x, y int) string {
	return g.At(x, y).Material().Name
}
