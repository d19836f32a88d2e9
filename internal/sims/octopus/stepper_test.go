package octopus

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleGrid = `
5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
`

func mustParse(t *testing.T, text string) [][]uint8 {
	t.Helper()
	levels, err := ParseLevels(strings.NewReader(text))
	if err != nil {
		t.Fatalf("parse grid: %v", err)
	}
	return levels
}

func filled(rows, cols int, v uint8) [][]uint8 {
	out := make([][]uint8, rows)
	for r := range out {
		out[r] = make([]uint8, cols)
		for c := range out[r] {
			out[r][c] = v
		}
	}
	return out
}

func TestStepSingleCell(t *testing.T) {
	levels := [][]uint8{{9}}
	flashes, err := Step(levels)
	if err != nil {
		t.Fatal(err)
	}
	if flashes != 1 {
		t.Fatalf("expected 1 flash, got %d", flashes)
	}
	if diff := cmp.Diff([][]uint8{{0}}, levels); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestStepAllNinesFlashTogether(t *testing.T) {
	levels := filled(3, 3, 9)
	flashes, err := Step(levels)
	if err != nil {
		t.Fatal(err)
	}
	if flashes != 9 {
		t.Fatalf("expected 9 flashes, got %d", flashes)
	}
	if diff := cmp.Diff(filled(3, 3, 0), levels); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestStepZerosNeverFlash(t *testing.T) {
	levels := filled(4, 6, 0)
	flashes, err := Step(levels)
	if err != nil {
		t.Fatal(err)
	}
	if flashes != 0 {
		t.Fatalf("expected no flashes, got %d", flashes)
	}
	if diff := cmp.Diff(filled(4, 6, 1), levels); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestStepIsolatedFlashTouchesOnlyNeighbours(t *testing.T) {
	levels := filled(5, 5, 0)
	levels[2][2] = 9

	flashes, err := Step(levels)
	if err != nil {
		t.Fatal(err)
	}
	if flashes != 1 {
		t.Fatalf("expected 1 flash, got %d", flashes)
	}
	want := [][]uint8{
		{1, 1, 1, 1, 1},
		{1, 2, 2, 2, 1},
		{1, 2, 0, 2, 1},
		{1, 2, 2, 2, 1},
		{1, 1, 1, 1, 1},
	}
	if diff := cmp.Diff(want, levels); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestStepCornerFlashStaysInBounds(t *testing.T) {
	levels := filled(2, 2, 0)
	levels[0][0] = 9
	flashes, err := Step(levels)
	if err != nil {
		t.Fatal(err)
	}
	if flashes != 1 {
		t.Fatalf("expected 1 flash, got %d", flashes)
	}
	if diff := cmp.Diff([][]uint8{{0, 2}, {2, 2}}, levels); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestStepSmallCascade(t *testing.T) {
	levels := mustParse(t, "11111\n19991\n19191\n19991\n11111\n")

	flashes, err := Step(levels)
	if err != nil {
		t.Fatal(err)
	}
	if flashes != 9 {
		t.Fatalf("step 1: expected 9 flashes, got %d", flashes)
	}
	want := mustParse(t, "34543\n40004\n50005\n40004\n34543\n")
	if diff := cmp.Diff(want, levels); diff != "" {
		t.Fatalf("step 1 mismatch (-want +got):\n%s", diff)
	}

	flashes, err = Step(levels)
	if err != nil {
		t.Fatal(err)
	}
	if flashes != 0 {
		t.Fatalf("step 2: expected 0 flashes, got %d", flashes)
	}
	want = mustParse(t, "45654\n51115\n61116\n51115\n45654\n")
	if diff := cmp.Diff(want, levels); diff != "" {
		t.Fatalf("step 2 mismatch (-want +got):\n%s", diff)
	}
}

func TestStepSampleFlashTotals(t *testing.T) {
	levels := mustParse(t, sampleGrid)
	total := 0
	for step := 1; step <= 100; step++ {
		flashes, err := Step(levels)
		if err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		total += flashes
		if step == 10 && total != 204 {
			t.Fatalf("after 10 steps expected 204 flashes, got %d", total)
		}
		for r, row := range levels {
			for c, v := range row {
				if v > FlashThreshold {
					t.Fatalf("step %d left (%d,%d)=%d above threshold", step, r, c, v)
				}
			}
		}
	}
	if total != 1656 {
		t.Fatalf("after 100 steps expected 1656 flashes, got %d", total)
	}
}

// Every cell flashes at most once per step and a flashed cell ends at zero,
// so the flash count must equal the number of zeros left behind.
func TestStepRandomGridsStayInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(2021, 11))
	for trial := 0; trial < 300; trial++ {
		rows, cols := 1+rng.IntN(12), 1+rng.IntN(12)
		levels := make([][]uint8, rows)
		for r := range levels {
			levels[r] = make([]uint8, cols)
			for c := range levels[r] {
				levels[r][c] = uint8(rng.IntN(10))
			}
		}
		for step := 1; step <= 30; step++ {
			flashes, err := Step(levels)
			if err != nil {
				t.Fatalf("trial %d step %d: %v", trial, step, err)
			}
			zeros := 0
			for r, row := range levels {
				for c, v := range row {
					if v > FlashThreshold {
						t.Fatalf("trial %d step %d left (%d,%d)=%d above threshold", trial, step, r, c, v)
					}
					if v == 0 {
						zeros++
					}
				}
			}
			if flashes != zeros {
				t.Fatalf("trial %d step %d: %d flashes but %d zero cells", trial, step, flashes, zeros)
			}
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	a := mustParse(t, sampleGrid)
	b := Clone(a)

	fa, err := Step(a)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := Step(b)
	if err != nil {
		t.Fatal(err)
	}
	if fa != fb {
		t.Fatalf("flash counts differ: %d vs %d", fa, fb)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("grids differ (-a +b):\n%s", diff)
	}
}

func TestStepRejectsInvalidGrids(t *testing.T) {
	cases := []struct {
		name   string
		levels [][]uint8
		want   error
	}{
		{"nil", nil, ErrInvalidGrid},
		{"no rows", [][]uint8{}, ErrInvalidGrid},
		{"empty row", [][]uint8{{}}, ErrInvalidGrid},
		{"ragged", [][]uint8{{1, 2}, {3}}, ErrInvalidGrid},
		{"out of range", [][]uint8{{1, 10}}, ErrOutOfRangeCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := Clone(tc.levels)
			flashes, err := Step(tc.levels)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if flashes != 0 {
				t.Fatalf("expected 0 flashes on error, got %d", flashes)
			}
			if diff := cmp.Diff(before, tc.levels); diff != "" {
				t.Fatalf("invalid grid was mutated (-before +after):\n%s", diff)
			}
		})
	}
}
