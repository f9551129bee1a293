package router_test

import (
	"testing"
	"time"

	"github.com/tomatick/pomo/internal/models"
	"github.com/tomatick/pomo/router"
	"github.com/tomatick/pomo/timer"
)

type memDB struct {
	settings *models.Settings
	session  *models.Session
}

func (m *memDB) GetSettings() (*models.Settings, error) { return m.settings, nil }

func (m *memDB) SaveSettings(s *models.Settings) error {
	saved := *s
	m.settings = &saved

	return nil
}

func (m *memDB) GetSession() (*models.Session, error) { return m.session, nil }

func (m *memDB) SaveSession(sess *models.Session) error {
	saved := *sess
	m.session = &saved

	return nil
}

func (m *memDB) Close() error { return nil }

func (m *memDB) Open() error { return nil }

type nopScheduler struct{}

func (nopScheduler) ScheduleEnd(_ time.Time) {}

func (nopScheduler) ScheduleRefresh() {}

func (nopScheduler) CancelAll() {}

type nopNotifier struct{}

func (nopNotifier) Notify(_, _ string) error { return nil }

type nopIndicator struct{}

func (nopIndicator) Update(_ *models.Session, _ time.Time) {}

func newTestRouter(t *testing.T) *router.Router {
	t.Helper()

	defaults := models.Settings{
		FocusSeconds:      1500,
		ShortBreakSeconds: 300,
		LongBreakSeconds:  900,
		LongBreakEvery:    4,
		Notify:            true,
	}

	engine := timer.New(
		&memDB{},
		defaults,
		nopScheduler{},
		nopNotifier{},
		nopIndicator{},
	)

	return router.New(engine)
}

func TestUnknownMessageType(t *testing.T) {
	r := newTestRouter(t)

	resp := r.Handle(router.Message{Type: "EXPLODE"})

	if resp.OK {
		t.Fatal("expected a failure response")
	}

	if resp.Error != "Unknown message type" {
		t.Fatalf("error = %q, want %q", resp.Error, "Unknown message type")
	}
}

func TestGetStateReturnsBothRecords(t *testing.T) {
	r := newTestRouter(t)

	resp := r.Handle(router.Message{Type: router.GetState})

	if !resp.OK {
		t.Fatalf("unexpected failure: %s", resp.Error)
	}

	if resp.State == nil || resp.Settings == nil {
		t.Fatal("expected both state and settings in the response")
	}

	if resp.State.Mode != models.Focus || resp.State.IsRunning {
		t.Fatalf("state = %+v, want an idle focus session", resp.State)
	}
}

func TestStartPauseThroughRouter(t *testing.T) {
	r := newTestRouter(t)

	resp := r.Handle(router.Message{Type: router.Start})

	if !resp.OK || !resp.State.IsRunning {
		t.Fatalf("start response = %+v", resp)
	}

	resp = r.Handle(router.Message{Type: router.Pause})

	if !resp.OK || resp.State.IsRunning {
		t.Fatalf("pause response = %+v", resp)
	}
}

func TestSwitchModeFailureIsStructured(t *testing.T) {
	r := newTestRouter(t)

	resp := r.Handle(router.Message{
		Type: router.SwitchMode,
		Mode: models.Mode("nap"),
	})

	if resp.OK {
		t.Fatal("expected a failure response")
	}

	if resp.Error == "" {
		t.Fatal("expected the error message to be set")
	}
}

func TestUpdateSettingsRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	focus := 2700

	resp := r.Handle(router.Message{
		Type: router.UpdateSettings,
		Settings: &models.SettingsPatch{
			FocusSeconds: &focus,
		},
	})

	if !resp.OK {
		t.Fatalf("unexpected failure: %s", resp.Error)
	}

	if resp.Settings.FocusSeconds != 2700 {
		t.Fatalf("focus = %d, want 2700", resp.Settings.FocusSeconds)
	}

	got := r.Handle(router.Message{Type: router.GetState})

	if got.Settings.FocusSeconds != 2700 {
		t.Fatalf("persisted focus = %d, want 2700", got.Settings.FocusSeconds)
	}
}
