// Package app defines the command-line interface for pomo
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomo app instance.
func Get() *cli.App {
	pomoApp := &cli.App{
		Name: "pomo",
		Usage: `
		Pomo is a Pomodoro timer daemon. It alternates focus sessions with
		short and long breaks, keeps its state across restarts, and surfaces
		progress through desktop notifications and a status indicator.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the timer daemon",
				Action: serveAction,
			},
			{
				Name:   "start",
				Usage:  "Start or resume the countdown for the current mode",
				Action: startAction,
			},
			{
				Name:   "pause",
				Usage:  "Pause the countdown, keeping the remaining time",
				Action: pauseAction,
			},
			{
				Name:   "reset",
				Usage:  "Return to an idle focus session",
				Action: resetAction,
			},
			{
				Name:      "switch",
				Usage:     "Switch to another mode: focus, short_break, or long_break",
				UsageText: "pomo switch MODE",
				Action:    switchAction,
			},
			{
				Name:   "set",
				Usage:  "Update the timer settings",
				Flags:  setFlags,
				Action: setAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			portFlag,
			noColorFlag,
		},
		Action: statusAction,
		Before: beforeAction,
	}

	return pomoApp
}
