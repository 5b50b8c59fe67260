// Package sandbox wraps a sand grid as a registered simulation with a
// configurable material set, a demo scene and brush tools.
package sandbox

import (
	"fmt"

	"particle-sim/internal/core"
	pcore "particle-sim/pkg/core"
	"particle-sim/pkg/sims/sand"
	"particle-sim/pkg/texture"
)

const (
	moltenKelvin = 1800
	grainScale   = 6
	metalBand    = 8
	// DefaultBrush is the initial brush radius in cells.
	DefaultBrush = 3
)

// World is a sand grid plus the material table and texture sources used to
// populate it.
type World struct {
	cfg      Config
	table    *sand.Table
	textures map[string]string
	heat     sand.HeatModel
	bg       sand.Particle

	rng   *pcore.RNG
	grain *texture.Grain
	grid  *sand.Grid
	brush int
}

// New returns a default world with the given dimensions.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg and lays out the demo scene for cfg.Seed.
func NewWithConfig(cfg Config) (*World, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("sandbox: %dx%d: %w", cfg.Width, cfg.Height, sand.ErrInvalidSize)
	}
	heat, err := sand.ParseHeatModel(cfg.Heat)
	if err != nil {
		return nil, err
	}
	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}
	bgMat, err := table.Lookup(cfg.Background)
	if err != nil {
		return nil, err
	}
	bg, err := sand.NewParticle(bgMat)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:      cfg,
		table:    table,
		textures: cfg.textures(),
		heat:     heat,
		bg:       bg.WithTemperature(cfg.AmbientKelvin),
		brush:    DefaultBrush,
	}
	w.Reset(cfg.Seed)
	if w.grid == nil {
		return nil, fmt.Errorf("sandbox: could not build %dx%d grid", cfg.Width, cfg.Height)
	}
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandbox" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Grid exposes the underlying sand grid.
func (w *World) Grid() *sand.Grid { return w.grid }

// Materials lists the configured materials in table order.
func (w *World) Materials() []sand.Material { return w.table.All() }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Brush returns the brush radius.
func (w *World) Brush() int { return w.brush }

// Reset rebuilds the grid and lays out the demo scene. A zero seed reuses the
// configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	rng := pcore.NewRNG(effective)
	grid, err := sand.New(w.cfg.Width, w.cfg.Height, w.bg, rng)
	if err != nil {
		return
	}
	grid.SetHeatModel(w.heat)
	w.rng = rng
	w.grain = texture.NewGrain(effective, grainScale)
	w.grid = grid
	w.scene()
}

// Step advances the grid by one tick.
func (w *World) Step() { w.grid.Step() }

// RenderRGBA fills dst with the grid colors.
func (w *World) RenderRGBA(dst []byte) { w.grid.RenderRGBA(dst) }

// Paint fills a disk with the named material at ambient temperature.
func (w *World) Paint(x, y, radius int, name string) error {
	m, err := w.table.Lookup(name)
	if err != nil {
		return err
	}
	w.disk(x, y, radius, func(px, py int) {
		w.put(m, w.cfg.AmbientKelvin, px, py)
	})
	return nil
}

// AddHeat shifts the temperature of every particle in a disk by kelvin,
// stopping at absolute zero.
func (w *World) AddHeat(x, y, radius, kelvin int) {
	w.disk(x, y, radius, func(px, py int) {
		t := int64(w.grid.At(px, py).Temperature()) + int64(kelvin)
		if t < 0 {
			t = 0
		}
		if t > int64(^uint32(0)) {
			t = int64(^uint32(0))
		}
		w.grid.SetTemperature(px, py, uint32(t))
	})
}

// disk calls fn for every simulated cell within radius of (cx, cy).
func (w *World) disk(cx, cy, radius int, fn func(x, y int)) {
	if radius < 0 {
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x, y := cx+dx, cy+dy
			if w.grid.Exists(x, y) {
				fn(x, y)
			}
		}
	}
}

func (w *World) put(m sand.Material, kelvin uint32, x, y int) {
	p := sand.MustParticle(m).WithTemperature(kelvin).WithNoise(w.noise(m.Name, x, y))
	w.grid.Set(x, y, p)
}

// place puts the named material at (x, y); names missing from the table are
// skipped so custom material sets still get a partial scene.
func (w *World) place(name string, kelvin uint32, x, y int) {
	m, err := w.table.Lookup(name)
	if err != nil {
		return
	}
	w.put(m, kelvin, x, y)
}

func (w *World) noise(name string, x, y int) uint8 {
	strength := w.cfg.NoiseStrength
	switch w.textures[name] {
	case TextureRandom:
		return texture.Random(strength, w.rng)
	case TextureMetal:
		return texture.Metal(strength, metalBand, uint32(x), uint32(y))
	case TextureGrain:
		return w.grain.At(strength, x, y)
	default:
		return texture.Neutral
	}
}

// scene lays out a stone floor, a sand heap, a basin holding water under
// oil, an iron ledge and a blob of molten stone above it.
func (w *World) scene() {
	width, height := w.cfg.Width, w.cfg.Height
	amb := w.cfg.AmbientKelvin

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			w.grid.SetNoise(x, y, w.noise(w.cfg.Background, x, y))
		}
	}

	floor := height - 1 - max(2, height/16)
	for y := floor; y < height-1; y++ {
		for x := 0; x < width-1; x++ {
			w.place("stone", amb, x, y)
		}
	}

	cx, top := width/4, height/3
	for y := top; y < floor; y++ {
		half := (y - top) / 2
		for x := cx - half; x <= cx+half; x++ {
			w.place("sand", amb, x, y)
		}
	}

	left, right := width/2+width/16, width-1-max(1, width/16)
	wallTop := height / 2
	for y := wallTop; y < floor; y++ {
		w.place("stone", amb, left, y)
		w.place("stone", amb, right, y)
	}
	depth := floor - wallTop
	oilTop := wallTop + depth/3
	waterTop := oilTop + max(1, depth/6)
	for y := oilTop; y < floor; y++ {
		name := "water"
		if y < waterTop {
			name = "oil"
		}
		for x := left + 1; x < right; x++ {
			w.place(name, amb, x, y)
		}
	}

	ledge := height / 3
	for x := width/2 - width/8; x < width/2; x++ {
		w.place("iron", amb, x, ledge)
	}
	r := max(1, width/48)
	w.disk(width/2-width/16, height/5, r, func(x, y int) {
		w.place("stone", moltenKelvin, x, y)
	})
}

func init() {
	core.Register("sandbox", func(cfg map[string]string) (core.Sim, error) {
		base, err := LoadFile(cfg["config"])
		if err != nil {
			return nil, err
		}
		return NewWithConfig(base.Apply(cfg))
	})
}
