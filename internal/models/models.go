// Package models defines the records persisted by the data store
package models

import (
	"time"

	"github.com/tomatick/pomo/internal/apperr"
	"github.com/tomatick/pomo/internal/timeutil"
)

// Mode identifies the kind of interval a session counts down.
type Mode string

const (
	Focus      Mode = "focus"
	ShortBreak Mode = "short_break"
	LongBreak  Mode = "long_break"
)

var ErrUnknownMode = &apperr.Error{
	Message: "unknown session mode",
}

// Valid reports whether m is one of the three recognised modes.
func (m Mode) Valid() bool {
	switch m {
	case Focus, ShortBreak, LongBreak:
		return true
	}

	return false
}

// Settings holds the user-configurable timer durations and chaining
// behaviour. Durations are in seconds.
type Settings struct {
	SessionCmd        string `json:"session_cmd"`
	FocusSeconds      int    `json:"focus"`
	ShortBreakSeconds int    `json:"short_break"`
	LongBreakSeconds  int    `json:"long_break"`
	LongBreakEvery    int    `json:"long_break_every"`
	AutoStartBreaks   bool   `json:"auto_start_breaks"`
	AutoStartFocus    bool   `json:"auto_start_focus"`
	Notify            bool   `json:"notify"`
}

// DurationFor returns the configured duration in seconds for the given mode.
func (s Settings) DurationFor(mode Mode) (int, error) {
	switch mode {
	case Focus:
		return s.FocusSeconds, nil
	case ShortBreak:
		return s.ShortBreakSeconds, nil
	case LongBreak:
		return s.LongBreakSeconds, nil
	}

	return 0, ErrUnknownMode
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged
// when the patch is applied.
type SettingsPatch struct {
	SessionCmd        *string `json:"session_cmd,omitempty"`
	FocusSeconds      *int    `json:"focus,omitempty"`
	ShortBreakSeconds *int    `json:"short_break,omitempty"`
	LongBreakSeconds  *int    `json:"long_break,omitempty"`
	LongBreakEvery    *int    `json:"long_break_every,omitempty"`
	AutoStartBreaks   *bool   `json:"auto_start_breaks,omitempty"`
	AutoStartFocus    *bool   `json:"auto_start_focus,omitempty"`
	Notify            *bool   `json:"notify,omitempty"`
}

// ApplyTo shallow-merges the patch over s and returns the result. Values are
// copied as given, no validation happens here.
func (p SettingsPatch) ApplyTo(s Settings) Settings {
	if p.SessionCmd != nil {
		s.SessionCmd = *p.SessionCmd
	}

	if p.FocusSeconds != nil {
		s.FocusSeconds = *p.FocusSeconds
	}

	if p.ShortBreakSeconds != nil {
		s.ShortBreakSeconds = *p.ShortBreakSeconds
	}

	if p.LongBreakSeconds != nil {
		s.LongBreakSeconds = *p.LongBreakSeconds
	}

	if p.LongBreakEvery != nil {
		s.LongBreakEvery = *p.LongBreakEvery
	}

	if p.AutoStartBreaks != nil {
		s.AutoStartBreaks = *p.AutoStartBreaks
	}

	if p.AutoStartFocus != nil {
		s.AutoStartFocus = *p.AutoStartFocus
	}

	if p.Notify != nil {
		s.Notify = *p.Notify
	}

	return s
}

// Session is the single active timer record. While running, StartTime and
// EndTime are set and authoritative; while idle they are nil and
// RemainingSeconds holds the countdown for the current mode.
type Session struct {
	StartTime        *time.Time `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	Mode             Mode       `json:"mode"`
	DateKey          string     `json:"date_key"`
	RemainingSeconds int        `json:"remaining_seconds"`
	CycleCount       int        `json:"cycle_count"`
	CompletedToday   int        `json:"completed_today"`
	IsRunning        bool       `json:"is_running"`
}

// Remaining returns the seconds left until EndTime, rounded to the nearest
// second and floored at zero. When the session is idle it returns
// RemainingSeconds.
func (s *Session) Remaining(now time.Time) int {
	if s.EndTime == nil {
		return s.RemainingSeconds
	}

	return timeutil.SecondsBetween(now, *s.EndTime)
}

// ClearTimestamps marks the session idle.
func (s *Session) ClearTimestamps() {
	s.IsRunning = false
	s.StartTime = nil
	s.EndTime = nil
}
