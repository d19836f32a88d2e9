package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("octopus", flag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{"-size", "40", "-rate", "5", "-seed", "7", "-hud", "0"}))
	assert.Equal(t, 40, cfg.Size)
	assert.Equal(t, 5, cfg.Rate)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 0, cfg.HUDWidth)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, map[string]string{"size": "40", "seed": "7"}, cfg.SimOptions())
}
