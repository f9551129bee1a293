package timer

import (
	"time"

	"github.com/tomatick/pomo/internal/models"
	"github.com/tomatick/pomo/internal/timeutil"
)

// defaultSession is the record created on first run: idle in focus mode with
// the configured focus duration on the clock.
func defaultSession(settings models.Settings, now time.Time) *models.Session {
	return &models.Session{
		Mode:             models.Focus,
		RemainingSeconds: settings.FocusSeconds,
		DateKey:          timeutil.DayKey(now),
	}
}

// settings returns the active settings: the persisted overrides if any have
// been saved, the defaults otherwise.
func (e *Engine) settings() (models.Settings, error) {
	stored, err := e.db.GetSettings()
	if err != nil {
		return models.Settings{}, err
	}

	if stored == nil {
		return e.defaults, nil
	}

	return *stored, nil
}

// session returns the current timer record. Crossing into a new calendar day
// resets the daily counter and the long-break cycle; the correction is
// persisted before the record is returned.
func (e *Engine) session(settings models.Settings) (*models.Session, error) {
	sess, err := e.db.GetSession()
	if err != nil {
		return nil, err
	}

	now := e.now()

	if sess == nil {
		sess = defaultSession(settings, now)
	}

	if tk := timeutil.DayKey(now); sess.DateKey != tk {
		sess.DateKey = tk
		sess.CompletedToday = 0
		sess.CycleCount = 0

		err = e.db.SaveSession(sess)
		if err != nil {
			return nil, err
		}
	}

	return sess, nil
}
