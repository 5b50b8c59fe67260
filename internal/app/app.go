//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"particle-sim/internal/core"
	"particle-sim/internal/render"
	"particle-sim/internal/ui"
	"particle-sim/pkg/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// heatPerFrame is how many Kelvin the heat brush adds or removes per frame.
const heatPerFrame = 40

type gridSim interface {
	Grid() *sand.Grid
}

type brushSim interface {
	Paint(x, y, radius int, name string) error
	AddHeat(x, y, radius, kelvin int)
	Materials() []sand.Material
	Brush() int
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	frame   *render.Frame
	overlay *ui.Overlay
	hud     *ui.HUD
	log     *slog.Logger

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64

	view      render.View
	material  int
	heatBrush bool
	brush     ui.Brush
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, hudWidth int, seed int64, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		frame:    render.NewFrame(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		log:      logger,
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
	if hudWidth > 0 {
		g.hud = ui.NewHUD(sim, hudWidth)
	}
	if b, ok := sim.(brushSim); ok {
		// Start on the first non-background material when there is one.
		if len(b.Materials()) > 1 {
			g.material = 1
		}
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.log.Info("reset", "sim", g.sim.Name(), "seed", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.toggleView(render.ViewThermal)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.toggleView(render.ViewPhase)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.heatBrush = !g.heatBrush
	}

	g.overlay.Update()
	if g.hud != nil {
		g.hud.Update(g.sim.Size().W * g.scale)
	}
	g.handleBrush()

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) toggleView(v render.View) {
	if g.view == v {
		g.view = render.ViewColor
		return
	}
	g.view = v
}

func (g *Game) handleBrush() {
	b, ok := g.sim.(brushSim)
	if !ok {
		g.brush.Visible = false
		return
	}
	mats := b.Materials()
	for i, key := range digitKeys {
		if i < len(mats) && inpututil.IsKeyJustPressed(key) {
			g.material = i
			g.heatBrush = false
		}
	}

	size := g.sim.Size()
	mx, my := ebiten.CursorPosition()
	x, y, on := brushCell(mx, my, g.scale, size.W, size.H)
	g.brush = ui.Brush{X: x, Y: y, Radius: b.Brush(), Visible: on, Heat: g.heatBrush}
	if !on {
		return
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	switch {
	case g.heatBrush && left:
		b.AddHeat(x, y, b.Brush(), heatPerFrame)
	case g.heatBrush && right:
		b.AddHeat(x, y, b.Brush(), -heatPerFrame)
	case left && g.material < len(mats):
		if err := b.Paint(x, y, b.Brush(), mats[g.material].Name); err != nil {
			g.log.Warn("paint failed", "err", err)
		}
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if gs, ok := g.sim.(gridSim); ok {
		g.frame.Fill(gs.Grid(), g.view)
	} else {
		g.sim.RenderRGBA(g.frame.Pix)
	}
	g.painter.Blit(screen, g.frame.Pix, g.scale)
	g.overlay.Draw(screen, g.brush, g.status())
	if g.hud != nil {
		g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	}
}

func (g *Game) status() ui.Status {
	s := ui.Status{
		Sim:    g.sim.Name(),
		Paused: g.paused,
		View:   g.view.String(),
		Heat:   g.heatBrush,
		TPS:    ebiten.ActualTPS(),
	}
	if gs, ok := g.sim.(gridSim); ok {
		s.Tick = gs.Grid().Tick()
	}
	if b, ok := g.sim.(brushSim); ok {
		if mats := b.Materials(); g.material < len(mats) {
			s.Material = mats[g.material].Name
		}
	}
	return s
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
