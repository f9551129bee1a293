package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tomatick/pomo/internal/models"
	"github.com/tomatick/pomo/store"
)

func newTestClient(t *testing.T) *store.Client {
	t.Helper()

	client, err := store.NewClient(filepath.Join(t.TempDir(), "pomo.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestMissingRecordsReturnNil(t *testing.T) {
	client := newTestClient(t)

	settings, err := client.GetSettings()
	if err != nil {
		t.Fatal(err)
	}

	if settings != nil {
		t.Fatalf("settings = %+v, want nil", settings)
	}

	sess, err := client.GetSession()
	if err != nil {
		t.Fatal(err)
	}

	if sess != nil {
		t.Fatalf("session = %+v, want nil", sess)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	client := newTestClient(t)

	want := &models.Settings{
		FocusSeconds:      1500,
		ShortBreakSeconds: 300,
		LongBreakSeconds:  900,
		LongBreakEvery:    4,
		AutoStartBreaks:   true,
		Notify:            true,
		SessionCmd:        "notify-send done",
	}

	err := client.SaveSettings(want)
	if err != nil {
		t.Fatal(err)
	}

	got, err := client.GetSettings()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	client := newTestClient(t)

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(25 * time.Minute)

	want := &models.Session{
		Mode:             models.Focus,
		IsRunning:        true,
		StartTime:        &start,
		EndTime:          &end,
		RemainingSeconds: 1500,
		CycleCount:       2,
		CompletedToday:   3,
		DateKey:          "2025-06-02",
	}

	err := client.SaveSession(want)
	if err != nil {
		t.Fatal(err)
	}

	got, err := client.GetSession()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveOverwritesWholeRecord(t *testing.T) {
	client := newTestClient(t)

	first := &models.Session{
		Mode:             models.Focus,
		RemainingSeconds: 1500,
		CompletedToday:   3,
		DateKey:          "2025-06-02",
	}

	err := client.SaveSession(first)
	if err != nil {
		t.Fatal(err)
	}

	second := &models.Session{
		Mode:             models.ShortBreak,
		RemainingSeconds: 300,
		DateKey:          "2025-06-03",
	}

	err = client.SaveSession(second)
	if err != nil {
		t.Fatal(err)
	}

	got, err := client.GetSession()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(second, got); diff != "" {
		t.Fatalf("session mismatch (-want +got):\n%s", diff)
	}
}
