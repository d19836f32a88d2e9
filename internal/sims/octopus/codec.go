package octopus

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseLevels reads a grid written as one line of digits per row. Blank lines
// and surrounding whitespace are ignored.
func ParseLevels(r io.Reader) ([][]uint8, error) {
	var levels [][]uint8
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]uint8, len(text))
		for i := 0; i < len(text); i++ {
			ch := text[i]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: %q is not a digit", ErrInvalidGrid, line, i+1, ch)
			}
			row[i] = ch - '0'
		}
		levels = append(levels, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	if err := Validate(levels); err != nil {
		return nil, err
	}
	return levels, nil
}

// FormatLevels renders levels as one line of digits per row, each line
// terminated by a newline.
func FormatLevels(levels [][]uint8) string {
	var b strings.Builder
	for _, row := range levels {
		for _, v := range row {
			b.WriteByte('0' + v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
