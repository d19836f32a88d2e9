package main

import "testing"

func TestWindowTitleIsPlainASCII(t *testing.T) {
	got := windowTitle("octopus")
	if got != "Dumbo Octopus - octopus" {
		t.Fatalf("windowTitle = %q", got)
	}
	for i, r := range got {
		if r > 0x7f {
			t.Fatalf("non-ASCII rune %q at %d", r, i)
		}
	}
}
