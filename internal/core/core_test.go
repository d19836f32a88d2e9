package core

import (
	"slices"
	"testing"
	"time"
)

func TestByteGridRowsAliasCells(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Rows()[1][2] = 7
	if got := g.Cells()[1*3+2]; got != 7 {
		t.Fatalf("row write not visible in cells: got %d", got)
	}
	g.Cells()[0] = 4
	if got := g.Rows()[0][0]; got != 4 {
		t.Fatalf("cell write not visible in rows: got %d", got)
	}

	_ = append(g.Rows()[0], 9)
	if g.Rows()[1][0] == 9 {
		t.Fatal("appending to a row must not overwrite the next row")
	}

}

func TestByteGridCopyTo(t *testing.T) {
	g := NewByteGrid(2, 2)
	copy(g.Cells(), []uint8{1, 2, 3, 4})
	dst := make([]uint8, 3)
	if n := g.CopyTo(dst); n != 3 {
		t.Fatalf("CopyTo copied %d cells, want 3", n)
	}
	if !slices.Equal(dst, []uint8{1, 2, 3}) {
		t.Fatalf("CopyTo wrote %v", dst)
	}
}

func TestRNGDigitsDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	NewRNG(7).Digits(a)
	NewRNG(7).Digits(b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different digits")
	}
	for i, v := range a {
		if v > 9 {
			t.Fatalf("digit %d out of range: %d", i, v)
		}
	}
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first poll should step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before the interval elapsed")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step once the interval elapsed")
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("unexpected interval %s", fs.Interval())
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
	if _, ok := Lookup("nil-factory"); ok {
		t.Fatal("nil factory should not be registered")
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 1, Max: 5, HasMin: true, HasMax: true}
	if got := c.Clamp(0); got != 1 {
		t.Fatalf("Clamp(0)=%d", got)
	}
	if got := c.Clamp(9); got != 5 {
		t.Fatalf("Clamp(9)=%d", got)
	}
	if got := (ParameterControl{}).Clamp(-3); got != -3 {
		t.Fatalf("unbounded clamp changed value: %d", got)
	}
}

func TestParameterControlAdjust(t *testing.T) {
	size := ParameterControl{Step: 1, Min: 1, Max: 3, HasMin: true, HasMax: true}
	cases := []struct {
		name      string
		ctrl      ParameterControl
		current   int
		direction int
		want      int
		moved     bool
	}{
		{"up", size, 2, 1, 3, true},
		{"down", size, 2, -1, 1, true},
		{"at max", size, 3, 1, 3, false},
		{"at min", size, 1, -1, 1, false},
		{"no direction", size, 2, 0, 2, false},
		{"zero step defaults to one", ParameterControl{}, 4, -1, 3, true},
		{"large step clamps", ParameterControl{Step: 10, Max: 15, HasMax: true}, 8, 1, 15, true},
	}
	for _, c := range cases {
		got, moved := c.ctrl.Adjust(c.current, c.direction)
		if got != c.want || moved != c.moved {
			t.Fatalf("%s: Adjust(%d,%d)=(%d,%v), want (%d,%v)", c.name, c.current, c.direction, got, moved, c.want, c.moved)
		}
	}
}
