package notify

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/tomatick/pomo/internal/models"
)

// Status mirrors the visible state of the countdown. It is what an open
// client or the status subcommand shows without touching the data store.
type Status struct {
	EndTime          *time.Time  `json:"end_time"`
	Mode             models.Mode `json:"mode"`
	RemainingSeconds int         `json:"remaining_seconds"`
	CycleCount       int         `json:"cycle_count"`
	CompletedToday   int         `json:"completed_today"`
	IsRunning        bool        `json:"is_running"`
}

// StatusFile writes the countdown state to a JSON file on every update. It
// is the badge analogue: a passive indicator that stays current through the
// refresh wake-up even when no client is connected.
type StatusFile struct {
	path string
}

func NewStatusFile(path string) *StatusFile {
	return &StatusFile{
		path: path,
	}
}

// Update rewrites the status file. Failures are logged and ignored so a
// broken indicator never blocks a timer operation.
func (f *StatusFile) Update(sess *models.Session, now time.Time) {
	s := Status{
		Mode:             sess.Mode,
		IsRunning:        sess.IsRunning,
		RemainingSeconds: sess.Remaining(now),
		CycleCount:       sess.CycleCount,
		CompletedToday:   sess.CompletedToday,
		EndTime:          sess.EndTime,
	}

	err := f.write(&s)
	if err != nil {
		slog.Error("unable to update status file", slog.Any("error", err))
	}
}

func (f *StatusFile) write(s *Status) error {
	statusFile, err := os.Create(f.path)
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return writer.Flush()
}

// ReadStatus loads the status file, for reporting the countdown without
// going through the daemon. A missing file yields a nil status.
func ReadStatus(path string) (*Status, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	var s Status

	err = json.Unmarshal(fileBytes, &s)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
