package octopus

import "strconv"

// Config controls the octopus grid geometry and seeding.
type Config struct {
	// Size is the number of columns. Rows are capped at MaxRows.
	Size    int
	MaxSize int
	MaxRows int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:    14,
		MaxSize: 120,
		MaxRows: 20,
		Seed:    42,
	}
}

// Dims returns the column and row counts implied by the config.
func (c Config) Dims() (cols, rows int) {
	cols = c.Size
	rows = c.Size
	if c.MaxRows > 0 && rows > c.MaxRows {
		rows = c.MaxRows
	}
	return cols, rows
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["max_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxSize = parsed
		}
	}
	if v, ok := cfg["max_rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxRows = parsed
		}
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if c.Size > c.MaxSize {
		c.Size = c.MaxSize
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
