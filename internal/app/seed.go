package app

import "dumbo-octopus/internal/core"

type seedReporter interface {
	Seed() int64
}

// resetSeed returns the seed the simulation is currently running with so a
// reset replays the grid on screen, including seeds changed from the HUD.
// Simulations that do not report a seed fall back to the last seed the game
// applied itself.
func resetSeed(sim core.Sim, fallback int64) int64 {
	if r, ok := sim.(seedReporter); ok {
		return r.Seed()
	}
	return fallback
}
