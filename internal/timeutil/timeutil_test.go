package timeutil

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	got := DayKey(time.Date(2025, 12, 25, 23, 59, 0, 0, time.UTC))

	if got != "2025-12-25" {
		t.Fatalf("day key = %q, want 2025-12-25", got)
	}
}

func TestSecondsBetween(t *testing.T) {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		b    time.Time
		want int
	}{
		{name: "whole seconds", b: base.Add(90 * time.Second), want: 90},
		{name: "rounds to nearest", b: base.Add(89*time.Second + 600*time.Millisecond), want: 90},
		{name: "rounds down", b: base.Add(89*time.Second + 400*time.Millisecond), want: 89},
		{name: "floors at zero", b: base.Add(-10 * time.Second), want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SecondsBetween(base, tc.b); got != tc.want {
				t.Fatalf("seconds = %d, want %d", got, tc.want)
			}
		})
	}
}
