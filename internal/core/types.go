package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a front end needs to drive a simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// RenderRGBA fills dst (4*W*H bytes) with the current frame.
	RenderRGBA(dst []byte)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named simulation.
func New(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %v)", name, Names())
	}
	return f(cfg)
}
