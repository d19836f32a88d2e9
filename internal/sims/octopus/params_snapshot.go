package octopus

import (
	"strconv"

	"dumbo-octopus/internal/core"
)

// Parameters reports the geometry and running statistics of the swarm.
func (s *Swarm) Parameters() core.ParameterSnapshot {
	size := s.Size()
	sync := "--"
	if step, ok := s.FirstSync(); ok {
		sync = strconv.Itoa(step)
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Size", size.W),
				intParam("rows", "Rows", size.H),
				int64Param("seed", "Seed", s.seed),
			},
		},
		{
			Name: "Statistics",
			Params: []core.Parameter{
				intParam("generation", "Step", s.Generation()),
				intParam("last_flashes", "Last flashes", s.LastFlashes()),
				intParam("total_flashes", "Total flashes", s.TotalFlashes()),
				{Key: "first_sync", Label: "First sync", Type: core.ParamTypeInt, Value: sync},
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Swarm) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "size", Label: "Size", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: s.cfg.MaxSize, HasMin: true, HasMax: true},
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
	}
}

// SetIntParameter updates an adjustable parameter. Changing the size or seed
// draws a fresh random grid.
func (s *Swarm) SetIntParameter(key string, value int) bool {
	switch key {
	case "size":
		if value < 1 || value > s.cfg.MaxSize {
			return false
		}
		s.Resize(value)
		return true
	case "seed":
		if value < 1 {
			return false
		}
		s.Reset(int64(value))
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}
