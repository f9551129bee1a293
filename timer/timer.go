// Package timer operates the Pomodoro session state machine and its
// persistence and scheduling contract
package timer

import (
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/tomatick/pomo/internal/models"
	"github.com/tomatick/pomo/internal/timeutil"
	"github.com/tomatick/pomo/store"
)

// Scheduler schedules the wake-ups that drive the timer while no client is
// connected. At most one end wake-up and one refresh wake-up are outstanding
// at a time; re-scheduling replaces the previous one.
type Scheduler interface {
	// ScheduleEnd requests a one-shot callback at the given time, floored
	// at one second from now
	ScheduleEnd(at time.Time)
	// ScheduleRefresh requests a recurring callback at a fixed one-minute
	// period
	ScheduleRefresh()
	// CancelAll cancels both wake-ups
	CancelAll()
}

// Notifier delivers a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// Indicator surfaces the countdown at a glance, e.g. as a status file or an
// action-bar badge. Implementations are best-effort.
type Indicator interface {
	Update(sess *models.Session, now time.Time)
}

// Engine drives the session state machine. Every operation performs a
// read-modify-write against the persisted session record; operations are
// serialised by a mutex so concurrent commands cannot interleave mid-write.
type Engine struct {
	db        store.DB
	sched     Scheduler
	notifier  Notifier
	indicator Indicator
	now       func() time.Time
	defaults  models.Settings
	mu        sync.Mutex
}

// New creates the session engine. The defaults are used whenever no settings
// overrides have been persisted yet.
func New(
	db store.DB,
	defaults models.Settings,
	sched Scheduler,
	notifier Notifier,
	indicator Indicator,
) *Engine {
	return &Engine{
		db:        db,
		defaults:  defaults,
		sched:     sched,
		notifier:  notifier,
		indicator: indicator,
		now:       time.Now,
	}
}

// Init seeds the settings and session records on first run and brings the
// indicator up to date.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	stored, err := e.db.GetSettings()
	if err != nil {
		return err
	}

	if stored == nil {
		err = e.db.SaveSettings(&e.defaults)
		if err != nil {
			return err
		}
	}

	sess, err := e.db.GetSession()
	if err != nil {
		return err
	}

	if sess == nil {
		settings, err := e.settings()
		if err != nil {
			return err
		}

		sess = defaultSession(settings, e.now())

		err = e.db.SaveSession(sess)
		if err != nil {
			return err
		}
	}

	e.indicator.Update(sess, e.now())

	return nil
}

// Resume restores scheduling after a daemon restart: a running session whose
// end is still ahead gets its wake-ups re-armed, one whose end has already
// passed is rolled over immediately.
func (e *Engine) Resume() error {
	e.mu.Lock()

	settings, err := e.settings()
	if err != nil {
		e.mu.Unlock()
		return err
	}

	sess, err := e.session(settings)
	if err != nil {
		e.mu.Unlock()
		return err
	}

	if sess.IsRunning && sess.EndTime != nil {
		if sess.EndTime.After(e.now()) {
			e.sched.ScheduleEnd(*sess.EndTime)
			e.sched.ScheduleRefresh()
			e.indicator.Update(sess, e.now())
			e.mu.Unlock()

			return nil
		}

		e.mu.Unlock()

		return e.HandleSessionEnd()
	}

	e.indicator.Update(sess, e.now())
	e.mu.Unlock()

	return nil
}

// State returns the current session and settings.
func (e *Engine) State() (*models.Session, models.Settings, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	settings, err := e.settings()
	if err != nil {
		return nil, models.Settings{}, err
	}

	sess, err := e.session(settings)
	if err != nil {
		return nil, models.Settings{}, err
	}

	return sess, settings, nil
}

// Start launches the countdown for the current mode, resuming from the
// remaining time when one is on the clock. Starting an already running
// session re-arms it with its current remaining time.
func (e *Engine) Start() (*models.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.start(0)
}

// start arms the timer. A zero explicitSeconds means the current remaining
// time, falling back to the configured duration for the mode.
func (e *Engine) start(explicitSeconds int) (*models.Session, error) {
	settings, err := e.settings()
	if err != nil {
		return nil, err
	}

	sess, err := e.session(settings)
	if err != nil {
		return nil, err
	}

	duration := explicitSeconds
	if duration == 0 {
		duration = sess.RemainingSeconds
	}

	if duration == 0 {
		duration, err = settings.DurationFor(sess.Mode)
		if err != nil {
			return nil, err
		}
	}

	now := e.now()
	end := now.Add(time.Duration(duration) * time.Second)

	sess.IsRunning = true
	sess.StartTime = &now
	sess.EndTime = &end
	sess.RemainingSeconds = duration

	err = e.db.SaveSession(sess)
	if err != nil {
		return nil, err
	}

	e.sched.ScheduleEnd(end)
	e.sched.ScheduleRefresh()
	e.indicator.Update(sess, now)

	return sess, nil
}

// Pause stops the countdown, banking the remaining time for a later Start.
func (e *Engine) Pause() (*models.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sched.CancelAll()

	settings, err := e.settings()
	if err != nil {
		return nil, err
	}

	sess, err := e.session(settings)
	if err != nil {
		return nil, err
	}

	remaining := sess.RemainingSeconds
	if sess.EndTime != nil {
		remaining = timeutil.SecondsBetween(e.now(), *sess.EndTime)
	}

	sess.ClearTimestamps()
	sess.RemainingSeconds = remaining

	err = e.db.SaveSession(sess)
	if err != nil {
		return nil, err
	}

	e.indicator.Update(sess, e.now())

	return sess, nil
}

// Reset stops the countdown and returns to an idle focus session with the
// configured focus duration. The cycle and daily counters are kept.
func (e *Engine) Reset() (*models.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sched.CancelAll()

	settings, err := e.settings()
	if err != nil {
		return nil, err
	}

	sess, err := e.session(settings)
	if err != nil {
		return nil, err
	}

	sess.Mode = models.Focus
	sess.ClearTimestamps()
	sess.RemainingSeconds = settings.FocusSeconds

	err = e.db.SaveSession(sess)
	if err != nil {
		return nil, err
	}

	e.indicator.Update(sess, e.now())

	return sess, nil
}

// SwitchMode stops the countdown and moves to an idle session of the target
// mode with its configured duration. Unknown modes are rejected.
func (e *Engine) SwitchMode(target models.Mode) (*models.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !target.Valid() {
		return nil, models.ErrUnknownMode
	}

	e.sched.CancelAll()

	settings, err := e.settings()
	if err != nil {
		return nil, err
	}

	sess, err := e.session(settings)
	if err != nil {
		return nil, err
	}

	duration, err := settings.DurationFor(target)
	if err != nil {
		return nil, err
	}

	sess.Mode = target
	sess.ClearTimestamps()
	sess.RemainingSeconds = duration

	err = e.db.SaveSession(sess)
	if err != nil {
		return nil, err
	}

	e.indicator.Update(sess, e.now())

	return sess, nil
}

// UpdateSettings merges the patch over the active settings and persists the
// result. An idle session has its remaining time recomputed from the new
// settings immediately; a running countdown is left untouched until the next
// idle transition.
func (e *Engine) UpdateSettings(
	patch models.SettingsPatch,
) (models.Settings, *models.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current, err := e.settings()
	if err != nil {
		return models.Settings{}, nil, err
	}

	updated := patch.ApplyTo(current)

	err = e.db.SaveSettings(&updated)
	if err != nil {
		return models.Settings{}, nil, err
	}

	sess, err := e.session(updated)
	if err != nil {
		return models.Settings{}, nil, err
	}

	if !sess.IsRunning {
		duration, err := updated.DurationFor(sess.Mode)
		if err != nil {
			return models.Settings{}, nil, err
		}

		sess.RemainingSeconds = duration

		err = e.db.SaveSession(sess)
		if err != nil {
			return models.Settings{}, nil, err
		}
	}

	return updated, sess, nil
}

// HandleSessionEnd rolls the session over when the end wake-up fires. A
// completed focus session advances the cycle and daily counters and moves to
// a break; a completed break moves back to focus. The next session is
// auto-started when the corresponding setting is enabled.
func (e *Engine) HandleSessionEnd() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	settings, err := e.settings()
	if err != nil {
		return err
	}

	sess, err := e.session(settings)
	if err != nil {
		return err
	}

	var autoStart bool

	if sess.Mode == models.Focus {
		// a degenerate cadence of zero or below never wraps, so the long
		// break never arrives
		newCycle := sess.CycleCount + 1
		if settings.LongBreakEvery > 0 {
			newCycle %= settings.LongBreakEvery
		}

		nextMode := models.ShortBreak
		message := "Great job! Take a short break."

		if newCycle == 0 {
			nextMode = models.LongBreak
			message = "Time for a long break."
		}

		e.notify(settings, "Focus complete", message)

		duration, err := settings.DurationFor(nextMode)
		if err != nil {
			return err
		}

		sess.Mode = nextMode
		sess.CycleCount = newCycle
		sess.CompletedToday++
		sess.ClearTimestamps()
		sess.RemainingSeconds = duration

		err = e.db.SaveSession(sess)
		if err != nil {
			return err
		}

		autoStart = settings.AutoStartBreaks
	} else {
		e.notify(settings, "Break finished", "Let's get back to focus.")

		sess.Mode = models.Focus
		sess.ClearTimestamps()
		sess.RemainingSeconds = settings.FocusSeconds

		err = e.db.SaveSession(sess)
		if err != nil {
			return err
		}

		autoStart = settings.AutoStartFocus
	}

	e.runSessionCmd(settings.SessionCmd)

	if autoStart {
		_, err = e.start(sess.RemainingSeconds)
		return err
	}

	e.indicator.Update(sess, e.now())

	return nil
}

// RefreshIndicator brings the indicator up to date. It backs the recurring
// refresh wake-up, which keeps the countdown visible even when no client is
// connected.
func (e *Engine) RefreshIndicator() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	settings, err := e.settings()
	if err != nil {
		return err
	}

	sess, err := e.session(settings)
	if err != nil {
		return err
	}

	e.indicator.Update(sess, e.now())

	return nil
}

// notify sends a desktop notification. Delivery is best-effort: a failed or
// disabled notification never blocks a mode transition.
func (e *Engine) notify(settings models.Settings, title, message string) {
	if !settings.Notify {
		return
	}

	err := e.notifier.Notify(title, message)
	if err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}

// runSessionCmd executes the configured session command, if any. Failures
// are logged and ignored.
func (e *Engine) runSessionCmd(sessionCmd string) {
	if sessionCmd == "" {
		return
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		slog.Error("unable to parse session_cmd option", slog.Any("error", err))
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	err = exec.Command(name, args...).Run()
	if err != nil {
		slog.Error("session_cmd failed", slog.Any("error", err))
	}
}
