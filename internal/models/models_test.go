package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSettingsPatchMergesOverCurrent(t *testing.T) {
	current := Settings{
		FocusSeconds:      1500,
		ShortBreakSeconds: 300,
		LongBreakSeconds:  900,
		LongBreakEvery:    4,
		AutoStartBreaks:   true,
		Notify:            true,
	}

	focus := 3000
	autoFocus := true

	got := SettingsPatch{
		FocusSeconds:   &focus,
		AutoStartFocus: &autoFocus,
	}.ApplyTo(current)

	want := current
	want.FocusSeconds = 3000
	want.AutoStartFocus = true

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged settings mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyPatchIsANoOp(t *testing.T) {
	current := Settings{
		FocusSeconds:      1500,
		ShortBreakSeconds: 300,
		LongBreakSeconds:  900,
		LongBreakEvery:    4,
	}

	got := SettingsPatch{}.ApplyTo(current)

	if diff := cmp.Diff(current, got); diff != "" {
		t.Fatalf("settings changed (-want +got):\n%s", diff)
	}
}

func TestDurationFor(t *testing.T) {
	s := Settings{
		FocusSeconds:      1500,
		ShortBreakSeconds: 300,
		LongBreakSeconds:  900,
	}

	cases := []struct {
		mode Mode
		want int
	}{
		{mode: Focus, want: 1500},
		{mode: ShortBreak, want: 300},
		{mode: LongBreak, want: 900},
	}

	for _, tc := range cases {
		got, err := s.DurationFor(tc.mode)
		if err != nil {
			t.Fatal(err)
		}

		if got != tc.want {
			t.Fatalf("%s duration = %d, want %d", tc.mode, got, tc.want)
		}
	}

	_, err := s.DurationFor(Mode("nap"))
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("err = %v, want ErrUnknownMode", err)
	}
}

func TestSessionRemaining(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	end := now.Add(90 * time.Second)

	running := &Session{
		IsRunning:        true,
		EndTime:          &end,
		RemainingSeconds: 1500,
	}

	if got := running.Remaining(now); got != 90 {
		t.Fatalf("remaining = %d, want 90", got)
	}

	// past the end, the countdown floors at zero
	if got := running.Remaining(now.Add(2 * time.Minute)); got != 0 {
		t.Fatalf("remaining = %d, want 0", got)
	}

	idle := &Session{
		RemainingSeconds: 1400,
	}

	if got := idle.Remaining(now); got != 1400 {
		t.Fatalf("remaining = %d, want 1400", got)
	}
}
