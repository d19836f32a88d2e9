package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Size     int
	Scale    int
	TPS      int
	Rate     int
	Seed     int64
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults. Rate 10 steps
// the swarm every 100ms.
func NewConfig() *Config {
	return &Config{Sim: "octopus", Size: 14, Scale: 24, TPS: 60, Rate: 10, Seed: 42, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Size, "size", c.Size, "grid columns (rows are capped)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
}

// SimOptions converts the flags into the key/value form accepted by sim
// factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"size": strconv.Itoa(c.Size),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
