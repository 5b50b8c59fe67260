package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	// Seed overrides the sim's configured seed when non-zero.
	Seed int64
	// ConfigPath points at a YAML world file for the sandbox.
	ConfigPath string
	// HUDWidth is the parameter panel width in pixels; 0 hides it.
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "sandbox", Scale: 4, TPS: 60, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 keeps the configured seed)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML world/material file")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
}

// SimOptions returns the factory options derived from the flags.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{}
	if c.ConfigPath != "" {
		opts["config"] = c.ConfigPath
	}
	return opts
}
