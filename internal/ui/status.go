package ui

import (
	"fmt"
	"strings"
)

// Brush describes the paint cursor in grid coordinates.
type Brush struct {
	X, Y    int
	Radius  int
	Visible bool
	Heat    bool
}

// Status is the one-line summary drawn over the grid.
type Status struct {
	Sim      string
	Tick     uint64
	Paused   bool
	View     string
	Material string
	Heat     bool
	TPS      float64
}

func (s Status) String() string {
	parts := []string{fmt.Sprintf("%s tick %d", s.Sim, s.Tick)}
	brush := s.Material
	if s.Heat {
		brush = "heat"
	}
	if brush != "" {
		parts = append(parts, "brush "+brush)
	}
	if s.View != "" {
		parts = append(parts, "view "+s.View)
	}
	if s.TPS > 0 {
		parts = append(parts, fmt.Sprintf("%.0f tps", s.TPS))
	}
	if s.Paused {
		parts = append(parts, "paused")
	}
	return strings.Join(parts, " | ")
}

// HelpLines lists the key bindings shown when help is toggled on.
var HelpLines = []string{
	"space pause  n step  r reset  s reseed  q quit",
	"1-9 material  h heat brush  t thermal  p phase",
	"lmb paint/heat  rmb cool  F1 help",
}
