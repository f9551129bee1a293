package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tomatick/pomo/alarm"
	"github.com/tomatick/pomo/api"
	"github.com/tomatick/pomo/config"
	"github.com/tomatick/pomo/internal/apperr"
	"github.com/tomatick/pomo/internal/models"
	"github.com/tomatick/pomo/notify"
	"github.com/tomatick/pomo/router"
	"github.com/tomatick/pomo/store"
	"github.com/tomatick/pomo/timer"
)

const (
	envNoColor     = "NO_COLOR"
	envPomoNoColor = "POMO_NO_COLOR"
	envDebug       = "POMO_DEBUG"
)

// port resolves the daemon port from the command line or the config file.
func port(ctx *cli.Context) uint {
	if p := ctx.Uint("port"); p > 0 {
		return p
	}

	return config.Port()
}

// initLogging routes slog output to the rotated daemon log file.
func initLogging() {
	level := slog.LevelInfo

	if _, found := os.LookupEnv(envDebug); found {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
	}, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}

// modeLabel formats the mode tag shown in front of the countdown. The
// settings pointer may be nil when the cadence is unknown.
func modeLabel(sess *models.Session, settings *models.Settings) string {
	switch sess.Mode {
	case models.Focus:
		if settings != nil {
			return pterm.Green(fmt.Sprintf(
				"[Focus %d/%d]",
				sess.CycleCount,
				settings.LongBreakEvery,
			))
		}

		return pterm.Green("[Focus]")
	case models.ShortBreak:
		return pterm.Blue("[Short break]")
	case models.LongBreak:
		return pterm.Magenta("[Long break]")
	}

	return fmt.Sprintf("[%s]", sess.Mode)
}

// printState writes a one-line summary of the session to stdout.
func printState(sess *models.Session, settings *models.Settings) {
	remaining := sess.Remaining(time.Now())

	state := "paused"
	if sess.IsRunning {
		state = "running"
	}

	pterm.Printfln(
		"%s %02d:%02d (%s) - %d completed today",
		modeLabel(sess, settings),
		remaining/60,
		remaining%60,
		state,
		sess.CompletedToday,
	)
}

// sendCommand posts a single command to the daemon and prints the resulting
// state.
func sendCommand(ctx *cli.Context, msg router.Message) error {
	client := api.NewClient(port(ctx))

	resp, err := client.Send(msg)
	if err != nil {
		return err
	}

	if !resp.OK {
		return &apperr.Error{Message: resp.Error}
	}

	if resp.State != nil {
		printState(resp.State, resp.Settings)
	}

	return nil
}

func startAction(ctx *cli.Context) error {
	return sendCommand(ctx, router.Message{Type: router.Start})
}

func pauseAction(ctx *cli.Context) error {
	return sendCommand(ctx, router.Message{Type: router.Pause})
}

func resetAction(ctx *cli.Context) error {
	return sendCommand(ctx, router.Message{Type: router.Reset})
}

func switchAction(ctx *cli.Context) error {
	mode := ctx.Args().First()
	if mode == "" {
		return errMissingMode
	}

	return sendCommand(ctx, router.Message{
		Type: router.SwitchMode,
		Mode: models.Mode(mode),
	})
}

// onOff parses an on/off flag value into a bool pointer for a settings
// patch.
func onOff(val string) (*bool, error) {
	switch val {
	case "on":
		v := true
		return &v, nil
	case "off":
		v := false
		return &v, nil
	}

	return nil, errInvalidOnOff
}

// setAction validates the provided settings flags and sends an update. The
// validation lives here on purpose: the engine persists whatever it is
// given.
func setAction(ctx *cli.Context) error {
	var patch models.SettingsPatch

	var touched bool

	if v := ctx.Uint("focus"); v > 0 {
		secs := int(v) * 60
		patch.FocusSeconds = &secs
		touched = true
	}

	if v := ctx.Uint("short-break"); v > 0 {
		secs := int(v) * 60
		patch.ShortBreakSeconds = &secs
		touched = true
	}

	if v := ctx.Uint("long-break"); v > 0 {
		secs := int(v) * 60
		patch.LongBreakSeconds = &secs
		touched = true
	}

	if v := ctx.Uint("long-break-interval"); v > 0 {
		if v < 2 {
			return errInvalidInterval
		}

		n := int(v)
		patch.LongBreakEvery = &n
		touched = true
	}

	for flag, dst := range map[string]**bool{
		"auto-start-breaks": &patch.AutoStartBreaks,
		"auto-start-focus":  &patch.AutoStartFocus,
		"notify":            &patch.Notify,
	} {
		if val := ctx.String(flag); val != "" {
			b, err := onOff(val)
			if err != nil {
				return err
			}

			*dst = b
			touched = true
		}
	}

	if ctx.IsSet("session-cmd") {
		cmd := ctx.String("session-cmd")
		patch.SessionCmd = &cmd
		touched = true
	}

	if !touched {
		return errNoSettings
	}

	return sendCommand(ctx, router.Message{
		Type:     router.UpdateSettings,
		Settings: &patch,
	})
}

// statusAction prints the timer status. It asks the daemon first and falls
// back to the status file when the daemon is not running.
func statusAction(ctx *cli.Context) error {
	client := api.NewClient(port(ctx))

	resp, err := client.Send(router.Message{Type: router.GetState})
	if err == nil {
		if !resp.OK {
			return &apperr.Error{Message: resp.Error}
		}

		printState(resp.State, resp.Settings)

		return nil
	}

	s, err := notify.ReadStatus(config.StatusFilePath())
	if err != nil {
		return err
	}

	if s == nil {
		pterm.Println("the timer has not been started yet")
		return nil
	}

	remaining := s.RemainingSeconds
	if s.IsRunning && s.EndTime != nil {
		remaining = max(0, int(time.Until(*s.EndTime).Round(time.Second)/time.Second))
	}

	sess := &models.Session{
		Mode:             s.Mode,
		IsRunning:        s.IsRunning,
		RemainingSeconds: remaining,
		CycleCount:       s.CycleCount,
		CompletedToday:   s.CompletedToday,
	}

	printState(sess, nil)

	return nil
}

// serveAction runs the timer daemon until it is interrupted.
func serveAction(ctx *cli.Context) error {
	initLogging()

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	// The scheduler's callbacks fire outside any command, so their errors
	// stop here and go to the log.
	var eng *timer.Engine

	sched := alarm.NewScheduler(
		func() {
			if err := eng.HandleSessionEnd(); err != nil {
				slog.Error("session rollover failed", slog.Any("error", err))
			}
		},
		func() {
			if err := eng.RefreshIndicator(); err != nil {
				slog.Error("indicator refresh failed", slog.Any("error", err))
			}
		},
	)

	defer sched.CancelAll()

	eng = timer.New(
		db,
		config.Defaults(),
		sched,
		notify.NewDesktop(),
		notify.NewStatusFile(config.StatusFilePath()),
	)

	err = eng.Init()
	if err != nil {
		return err
	}

	err = eng.Resume()
	if err != nil {
		return err
	}

	srv := api.NewServer(router.New(eng), port(ctx))

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	return srv.ListenAndServe(sigCtx)
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMO_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomoNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
