// Command sand-term runs the sandbox in a terminal, two grid rows per text
// row using half-block glyphs.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"particle-sim/internal/core"
	"particle-sim/internal/render"
	"particle-sim/internal/sims/sandbox"
	"particle-sim/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "YAML world/material file")
	seed := flag.Int64("seed", 0, "seed (0 keeps the configured seed)")
	tps := flag.Int("tps", 30, "ticks per second")
	logPath := flag.String("log", "", "write structured logs to this file")
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("opening log: %v", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, nil))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	cols, rows := screen.Size()
	base, err := sandbox.LoadFile(*configPath)
	if err != nil {
		screen.Fini()
		log.Fatalf("loading config: %v", err)
	}
	opts := map[string]string{
		"w": strconv.Itoa(cols),
		"h": strconv.Itoa(2 * (rows - 1)),
	}
	if *seed != 0 {
		opts["seed"] = strconv.FormatInt(*seed, 10)
	}
	world, err := sandbox.NewWithConfig(base.Apply(opts))
	if err != nil {
		screen.Fini()
		log.Fatalf("building world: %v", err)
	}
	logger.Info("started", "w", world.Size().W, "h", world.Size().H, "seed", world.Config().Seed)

	v := &viewer{
		screen: screen,
		world:  world,
		frame:  render.NewFrame(world.Size().W, world.Size().H),
		timer:  core.NewFixedStep(*tps),
		log:    logger,
		brush:  1,
	}
	v.run()
}

type viewer struct {
	screen tcell.Screen
	world  *sandbox.World
	frame  *render.Frame
	timer  *core.FixedStep
	log    *slog.Logger

	view     render.View
	paused   bool
	material int
	brush    int
}

func (v *viewer) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.handle(ev) {
				return
			}
		case <-ticker.C:
			due := v.timer.Due()
			if !v.paused {
				for i := 0; i < due; i++ {
					v.world.Step()
				}
			}
			v.draw()
		}
	}
}

func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.world.Step()
		case 'r':
			v.world.Reset(0)
			v.log.Info("reset")
		case 't':
			v.toggle(render.ViewThermal)
		case 'p':
			v.toggle(render.ViewPhase)
		default:
			if r >= '1' && r <= '9' {
				if i := int(r - '1'); i < len(v.world.Materials()) {
					v.material = i
				}
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		x, y := ev.Position()
		name := v.world.Materials()[v.material].Name
		if err := v.world.Paint(x, 2*y, v.brush, name); err != nil {
			v.log.Warn("paint failed", "err", err)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) toggle(view render.View) {
	if v.view == view {
		v.view = render.ViewColor
		return
	}
	v.view = view
}

func (v *viewer) draw() {
	grid := v.world.Grid()
	v.frame.Fill(grid, v.view)
	w, h := grid.Width(), grid.Height()
	for ty := 0; 2*ty < h; ty++ {
		for x := 0; x < w; x++ {
			top := pixel(v.frame.Pix, x+2*ty*w)
			bottom := top
			if 2*ty+1 < h {
				bottom = pixel(v.frame.Pix, x+(2*ty+1)*w)
			}
			v.screen.SetContent(x, ty, '▀', nil, halfBlock(top, bottom))
		}
	}
	mats := v.world.Materials()
	status := ui.Status{
		Sim:      v.world.Name(),
		Tick:     grid.Tick(),
		Paused:   v.paused,
		View:     v.view.String(),
		Material: mats[v.material].Name,
	}.String()
	drawText(v.screen, 0, (h+1)/2, fmt.Sprintf("%-*s", w, status))
	v.screen.Show()
}
