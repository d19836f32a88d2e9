package octopus

import (
	"log"

	"dumbo-octopus/internal/core"
)

// Swarm is a grid of dumbo octopuses whose energy levels advance with Step.
// The display buffer and flash mask are snapshots rebuilt after every change,
// so renderers never share the grid being stepped.
type Swarm struct {
	cfg  Config
	seed int64

	grid    *core.ByteGrid
	display []uint8
	mask    []float32

	history   []int
	total     int
	firstSync int
}

// New returns a swarm with size columns using the default config otherwise.
func New(size int) *Swarm {
	cfg := DefaultConfig()
	cfg.Size = size
	if cfg.Size > cfg.MaxSize {
		cfg.MaxSize = cfg.Size
	}
	return NewWithConfig(cfg)
}

// NewWithConfig returns a swarm configured from the provided options. The
// grid starts at zero energy until Reset or Load is called.
func NewWithConfig(cfg Config) *Swarm {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultConfig().MaxSize
	}
	if cfg.Size <= 0 {
		cfg.Size = 1
	}
	if cfg.Size > cfg.MaxSize {
		cfg.Size = cfg.MaxSize
	}
	s := &Swarm{cfg: cfg, seed: cfg.Seed}
	s.allocate(cfg.Dims())
	return s
}

func (s *Swarm) allocate(cols, rows int) {
	s.grid = core.NewByteGrid(cols, rows)
	total := s.grid.W * s.grid.H
	s.display = make([]uint8, total)
	s.mask = make([]float32, total)
	s.clearStats()
}

func (s *Swarm) clearStats() {
	s.history = s.history[:0]
	s.total = 0
	s.firstSync = 0
	for i := range s.mask {
		s.mask[i] = 0
	}
	s.grid.CopyTo(s.display)
}

// Name returns the simulation identifier.
func (s *Swarm) Name() string { return "octopus" }

// Size reports the grid dimensions.
func (s *Swarm) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Cells exposes the display snapshot of energy levels in row-major order.
func (s *Swarm) Cells() []uint8 { return s.display }

// Config returns the active configuration.
func (s *Swarm) Config() Config { return s.cfg }

// Seed returns the seed used by the last Reset.
func (s *Swarm) Seed() int64 { return s.seed }

// Levels returns a copy of the current grid as rows.
func (s *Swarm) Levels() [][]uint8 { return Clone(s.grid.Rows()) }

// Reset fills the grid with random energy levels. A zero seed selects the
// configured seed.
func (s *Swarm) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.seed = seed
	core.NewRNG(seed).Digits(s.grid.Cells())
	s.clearStats()
}

// Load replaces the grid with a copy of levels, adopting its dimensions.
// The configuration is left alone, so Reset keeps the loaded geometry while
// Resize returns to a configured square-ish grid.
func (s *Swarm) Load(levels [][]uint8) error {
	if err := Validate(levels); err != nil {
		return err
	}
	rows, cols := len(levels), len(levels[0])
	if cols != s.grid.W || rows != s.grid.H {
		s.allocate(cols, rows)
	}
	for r, row := range levels {
		copy(s.grid.Rows()[r], row)
	}
	s.clearStats()
	return nil
}

// Resize changes the column count, clamped to [1, MaxSize], and reseeds the
// grid with the current seed.
func (s *Swarm) Resize(size int) {
	if size < 1 {
		size = 1
	}
	if size > s.cfg.MaxSize {
		size = s.cfg.MaxSize
	}
	s.cfg.Size = size
	s.allocate(s.cfg.Dims())
	s.Reset(s.seed)
}

// Advance applies one step and records its flash count.
func (s *Swarm) Advance() (int, error) {
	flashes, err := Step(s.grid.Rows())
	if err != nil {
		return 0, err
	}
	s.history = append(s.history, flashes)
	s.total += flashes
	if s.firstSync == 0 && flashes == s.grid.W*s.grid.H {
		s.firstSync = len(s.history)
	}

	s.grid.CopyTo(s.display)
	for i, v := range s.display {
		// Every cell is incremented at least once, so zero means it flashed.
		if v == 0 {
			s.mask[i] = 1
		} else {
			s.mask[i] = 0
		}
	}
	return flashes, nil
}

// Step advances the swarm by one tick.
func (s *Swarm) Step() {
	if _, err := s.Advance(); err != nil {
		log.Printf("octopus: step %d: %v", s.Generation()+1, err)
	}
}

// Generation returns the number of steps applied since the last reset.
func (s *Swarm) Generation() int { return len(s.history) }

// TotalFlashes returns the number of flashes since the last reset.
func (s *Swarm) TotalFlashes() int { return s.total }

// LastFlashes returns the flash count of the most recent step.
func (s *Swarm) LastFlashes() int {
	if len(s.history) == 0 {
		return 0
	}
	return s.history[len(s.history)-1]
}

// History returns a copy of the per-step flash counts.
func (s *Swarm) History() []int { return append([]int(nil), s.history...) }

// FirstSync returns the first step in which every octopus flashed.
func (s *Swarm) FirstSync() (int, bool) { return s.firstSync, s.firstSync > 0 }

// FlashMask marks the cells that flashed during the last step with 1.
func (s *Swarm) FlashMask() []float32 { return s.mask }

func init() {
	core.Register("octopus", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
