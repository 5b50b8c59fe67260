package sand

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	// ErrZeroHeatCapacity is returned for materials whose heat capacity is zero.
	// Temperature is energy divided by capacity, so such a material is unusable.
	ErrZeroHeatCapacity = errors.New("sand: heat capacity must be positive")
	// ErrDuplicateMaterial is returned when a table receives two entries with
	// the same ID or name.
	ErrDuplicateMaterial = errors.New("sand: duplicate material")
	// ErrUnknownMaterial is returned when a lookup misses.
	ErrUnknownMaterial = errors.New("sand: unknown material")
)

// Material describes one substance. Values are immutable once created and are
// copied into every particle made from them.
type Material struct {
	ID   uint32
	Name string

	// Colors are straight (non-premultiplied) RGBA; alpha is applied before display.
	VaporColor  color.NRGBA
	LiquidColor color.NRGBA
	SolidColor  color.NRGBA

	// Rigid materials are Solid below their melting point, others are Powder.
	Rigid bool

	LiquidDensity float32
	GasDensity    float32

	MeltingPoint uint16 // Kelvin
	BoilingPoint uint16 // Kelvin

	// HeatCapacity is the energy in joules needed to raise the temperature by one degree.
	HeatCapacity uint32
	// HeatResistance slows conduction into and out of the material.
	HeatResistance uint16
}

// Validate reports whether the material can be simulated.
func (m Material) Validate() error {
	if m.HeatCapacity == 0 {
		if m.Name != "" {
			return fmt.Errorf("material %q: %w", m.Name, ErrZeroHeatCapacity)
		}
		return fmt.Errorf("material %d: %w", m.ID, ErrZeroHeatCapacity)
	}
	return nil
}

// Table is a validated, read-only set of materials.
type Table struct {
	byID   map[uint32]int
	byName map[string]int
	items  []Material
}

// NewTable validates the provided materials and indexes them by ID and name.
// Names are optional; empty names are not indexed.
func NewTable(ms ...Material) (*Table, error) {
	t := &Table{
		byID:   make(map[uint32]int, len(ms)),
		byName: make(map[string]int, len(ms)),
		items:  make([]Material, 0, len(ms)),
	}
	for _, m := range ms {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, ok := t.byID[m.ID]; ok {
			return nil, fmt.Errorf("id %d: %w", m.ID, ErrDuplicateMaterial)
		}
		if m.Name != "" {
			if _, ok := t.byName[m.Name]; ok {
				return nil, fmt.Errorf("name %q: %w", m.Name, ErrDuplicateMaterial)
			}
			t.byName[m.Name] = len(t.items)
		}
		t.byID[m.ID] = len(t.items)
		t.items = append(t.items, m)
	}
	return t, nil
}

// Get returns the material registered under id.
func (t *Table) Get(id uint32) (Material, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Material{}, false
	}
	return t.items[i], true
}

// Lookup returns the material registered under name.
func (t *Table) Lookup(name string) (Material, error) {
	i, ok := t.byName[name]
	if !ok {
		return Material{}, fmt.Errorf("%q: %w", name, ErrUnknownMaterial)
	}
	return t.items[i], nil
}

// All returns the materials in insertion order.
func (t *Table) All() []Material {
	return append([]Material(nil), t.items...)
}

// Len reports the number of materials.
func (t *Table) Len() int { return len(t.items) }
