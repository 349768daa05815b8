package ui

import (
	"testing"
)

func TestReturnButtonBounds(t *testing.T) {
	cases := []struct {
		x, y float64
		want bool
	}{
		{3, 3, true},
		{83, 25, true},
		{40, 14, true},
		{2, 10, false},
		{84, 10, false},
		{40, 26, false},
	}
	for _, c := range cases {
		if got := ReturnButton.Contains(c.x, c.y); got != c.want {
			t.Fatalf("Contains(%v,%v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestStatsLinesNewestFirst(t *testing.T) {
	lines := StatsLines([]int{100, 250, 80}, 2)
	want := []string{
		"High score:   0000250",
		"Games played: 3",
		"",
		"Recent runs",
		"0000080",
		"0000250",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestStatsLinesEmpty(t *testing.T) {
	lines := StatsLines(nil, 5)
	if lines[len(lines)-1] != "No runs yet" {
		t.Fatalf("lines = %q", lines)
	}
}
