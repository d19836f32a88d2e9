// Package scenario loads headless octopus runs described in YAML.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"dumbo-octopus/internal/sims/octopus"

	"gopkg.in/yaml.v3"
)

// Scenario describes a headless run.
type Scenario struct {
	Name       string
	Steps      int
	Seed       int64
	Size       int
	Interval   time.Duration
	StopAtSync bool
	// Levels is nil when the grid should be drawn at random from Seed.
	Levels [][]uint8
}

type scenarioFile struct {
	Name       string `yaml:"name"`
	Steps      int    `yaml:"steps"`
	Seed       int64  `yaml:"seed"`
	Size       int    `yaml:"size"`
	Interval   string `yaml:"interval"`
	StopAtSync bool   `yaml:"stop_at_sync"`
	Grid       string `yaml:"grid"`
}

// Load parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	if path == "" {
		return nil, fmt.Errorf("scenario: empty path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer f.Close()
	sc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return sc, nil
}

// Decode parses a scenario document. Unknown fields are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw scenarioFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document")
		}
		return nil, fmt.Errorf("parse: %w", err)
	}
	return raw.toScenario()
}

func (raw scenarioFile) toScenario() (*Scenario, error) {
	sc := &Scenario{
		Name:       raw.Name,
		Steps:      raw.Steps,
		Seed:       raw.Seed,
		Size:       raw.Size,
		StopAtSync: raw.StopAtSync,
	}
	if sc.Name == "" {
		sc.Name = "octopus"
	}
	if raw.Interval != "" {
		d, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return nil, fmt.Errorf("interval: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("interval must not be negative")
		}
		sc.Interval = d
	}
	if sc.Steps < 0 {
		return nil, fmt.Errorf("steps must not be negative")
	}
	if sc.Steps == 0 && !sc.StopAtSync {
		return nil, fmt.Errorf("steps must be positive unless stop_at_sync is set")
	}
	if strings.TrimSpace(raw.Grid) != "" {
		levels, err := octopus.ParseLevels(strings.NewReader(raw.Grid))
		if err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
		sc.Levels = levels
	} else if sc.Size < 0 {
		return nil, fmt.Errorf("size must not be negative")
	}
	return sc, nil
}
