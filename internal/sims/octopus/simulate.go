package octopus

// MaxSyncSteps bounds runs that wait for synchronization without a step limit.
const MaxSyncSteps = 100000

// Result summarises a headless run.
type Result struct {
	Steps        int
	TotalFlashes int
	Flashes      []int
	// FirstSync is the first step in which every cell flashed, or 0.
	FirstSync int
}

// Simulate runs up to steps ticks on a copy of levels. When stopAtSync is set
// the run ends at the first synchronized flash. A non-positive steps value
// with stopAtSync runs until synchronization or MaxSyncSteps.
func Simulate(levels [][]uint8, steps int, stopAtSync bool) (Result, error) {
	if err := Validate(levels); err != nil {
		return Result{}, err
	}
	grid := Clone(levels)
	cells := len(grid) * len(grid[0])

	limit := steps
	if limit <= 0 && stopAtSync {
		limit = MaxSyncSteps
	}

	var res Result
	for res.Steps < limit {
		flashes, err := Step(grid)
		if err != nil {
			return res, err
		}
		res.Steps++
		res.TotalFlashes += flashes
		res.Flashes = append(res.Flashes, flashes)
		if flashes == cells && res.FirstSync == 0 {
			res.FirstSync = res.Steps
			if stopAtSync {
				break
			}
		}
	}
	return res, nil
}
