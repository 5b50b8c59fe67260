package sandbox

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"particle-sim/pkg/sims/sand"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrNoBackground is returned when the background material is not in the table.
var ErrNoBackground = errors.New("sandbox: background material missing")

// Texture names accepted in MaterialSpec.Texture.
const (
	TextureNone   = "none"
	TextureRandom = "random"
	TextureMetal  = "metal"
	TextureGrain  = "grain"
)

// ColorSpec is a straight-alpha color written as "#rrggbb" plus alpha.
type ColorSpec struct {
	Hex   string `yaml:"hex"`
	Alpha uint8  `yaml:"alpha"`
}

// NRGBA parses the hex triplet.
func (c ColorSpec) NRGBA() (color.NRGBA, error) {
	parsed, err := colorful.Hex(c.Hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", c.Hex, err)
	}
	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: c.Alpha}, nil
}

// MaterialSpec is the YAML form of a sand.Material.
type MaterialSpec struct {
	ID             uint32    `yaml:"id"`
	Name           string    `yaml:"name"`
	Vapor          ColorSpec `yaml:"vapor"`
	Liquid         ColorSpec `yaml:"liquid"`
	Solid          ColorSpec `yaml:"solid"`
	Rigid          bool      `yaml:"rigid"`
	LiquidDensity  float32   `yaml:"liquid_density"`
	GasDensity     float32   `yaml:"gas_density"`
	MeltingPoint   uint16    `yaml:"melting_point"`
	BoilingPoint   uint16    `yaml:"boiling_point"`
	HeatCapacity   uint32    `yaml:"heat_capacity"`
	HeatResistance uint16    `yaml:"heat_resistance"`
	Texture        string    `yaml:"texture"`
}

// Material converts the spec into a validated sand.Material.
func (s MaterialSpec) Material() (sand.Material, error) {
	m := sand.Material{
		ID:             s.ID,
		Name:           s.Name,
		Rigid:          s.Rigid,
		LiquidDensity:  s.LiquidDensity,
		GasDensity:     s.GasDensity,
		MeltingPoint:   s.MeltingPoint,
		BoilingPoint:   s.BoilingPoint,
		HeatCapacity:   s.HeatCapacity,
		HeatResistance: s.HeatResistance,
	}
	var err error
	if m.VaporColor, err = s.Vapor.NRGBA(); err != nil {
		return sand.Material{}, fmt.Errorf("material %q vapor: %w", s.Name, err)
	}
	if m.LiquidColor, err = s.Liquid.NRGBA(); err != nil {
		return sand.Material{}, fmt.Errorf("material %q liquid: %w", s.Name, err)
	}
	if m.SolidColor, err = s.Solid.NRGBA(); err != nil {
		return sand.Material{}, fmt.Errorf("material %q solid: %w", s.Name, err)
	}
	if err := m.Validate(); err != nil {
		return sand.Material{}, err
	}
	return m, nil
}

// Config controls the sandbox world.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	// Heat names the conduction model: full, simplified or off.
	Heat string `yaml:"heat"`
	// NoiseStrength divides the texture byte; 0 disables color noise.
	NoiseStrength uint8  `yaml:"noise_strength"`
	AmbientKelvin uint32 `yaml:"ambient_kelvin"`
	Background    string `yaml:"background"`

	Materials []MaterialSpec `yaml:"materials"`
}

// DefaultConfig returns the embedded default world.
func DefaultConfig() Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic(fmt.Sprintf("sandbox: parsing embedded defaults: %v", err))
	}
	return c
}

// LoadFile overlays a YAML file on the defaults. Fields absent from the file
// keep their default values; a materials list replaces the default list.
func LoadFile(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return c, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks the heat model and material table.
func (c Config) Validate() error {
	if _, err := sand.ParseHeatModel(c.Heat); err != nil {
		return err
	}
	_, err := c.Table()
	return err
}

// Table builds the material table described by the config and checks that
// the background material is present.
func (c Config) Table() (*sand.Table, error) {
	ms := make([]sand.Material, 0, len(c.Materials))
	for _, spec := range c.Materials {
		m, err := spec.Material()
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	table, err := sand.NewTable(ms...)
	if err != nil {
		return nil, err
	}
	if _, err := table.Lookup(c.Background); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoBackground, err)
	}
	return table, nil
}

// textures maps material names to their texture kind.
func (c Config) textures() map[string]string {
	out := make(map[string]string, len(c.Materials))
	for _, spec := range c.Materials {
		out[spec.Name] = spec.Texture
	}
	return out
}

// FromMap populates the defaults from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides fields from a string map. Unparseable values are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 1 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 1 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["heat"]; ok {
		if m, err := sand.ParseHeatModel(v); err == nil {
			c.Heat = m.String()
		}
	}
	if v, ok := cfg["noise"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 8); err == nil {
			c.NoiseStrength = uint8(parsed)
		}
	}
	if v, ok := cfg["ambient"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.AmbientKelvin = uint32(parsed)
		}
	}
	if v, ok := cfg["background"]; ok && v != "" {
		c.Background = v
	}
	return c
}
