package octopus

import (
	"errors"
	"fmt"
)

// FlashThreshold is the energy level at which an octopus flashes when it is
// incremented.
const FlashThreshold = 9

var (
	// ErrInvalidGrid reports an empty or non-rectangular grid.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrOutOfRangeCell reports a cell level outside [0, 9].
	ErrOutOfRangeCell = errors.New("cell level out of range")
)

type coord struct{ r, c int }

// Validate checks that levels is a non-empty rectangle of digits.
func Validate(levels [][]uint8) error {
	if len(levels) == 0 {
		return fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	cols := len(levels[0])
	if cols == 0 {
		return fmt.Errorf("%w: empty row 0", ErrInvalidGrid)
	}
	for r, row := range levels {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, r, len(row), cols)
		}
		for c, v := range row {
			if v > FlashThreshold {
				return fmt.Errorf("%w: (%d,%d)=%d", ErrOutOfRangeCell, r, c, v)
			}
		}
	}
	return nil
}

// Step advances levels by one tick in place and returns the number of
// flashes. Every cell is queued once; each dequeue checks the cell against
// the threshold before incrementing it, and a cell found at the threshold
// queues all of its in-bounds neighbours. There is no per-step flashed flag.
// Cells left above the threshold are reset to zero at the end.
//
// The grid is left untouched when Validate fails.
func Step(levels [][]uint8) (int, error) {
	if err := Validate(levels); err != nil {
		return 0, err
	}
	rows, cols := len(levels), len(levels[0])

	queue := make([]coord, 0, rows*cols*2)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			queue = append(queue, coord{r, c})
		}
	}

	flashes := 0
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		if levels[p.r][p.c] == FlashThreshold {
			flashes++
			for dr := -1; dr <= 1; dr++ {
				nr := p.r + dr
				if nr < 0 || nr >= rows {
					continue
				}
				for dc := -1; dc <= 1; dc++ {
					nc := p.c + dc
					if (dr == 0 && dc == 0) || nc < 0 || nc >= cols {
						continue
					}
					queue = append(queue, coord{nr, nc})
				}
			}
		}
		levels[p.r][p.c]++
	}

	for _, row := range levels {
		for c, v := range row {
			if v > FlashThreshold {
				row[c] = 0
			}
		}
	}
	return flashes, nil
}

// Clone returns a deep copy of levels.
func Clone(levels [][]uint8) [][]uint8 {
	if levels == nil {
		return nil
	}
	out := make([][]uint8, len(levels))
	for i, row := range levels {
		out[i] = make([]uint8, len(row))
		copy(out[i], row)
	}
	return out
}
