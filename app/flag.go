package app

import "github.com/urfave/cli/v2"

var (
	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Daemon port, overriding the config file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)

var setFlags = []cli.Flag{
	&cli.UintFlag{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "Focus session length in `MINUTES`",
	},
	&cli.UintFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break length in `MINUTES`",
	},
	&cli.UintFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break length in `MINUTES`",
	},
	&cli.UintFlag{
		Name:    "long-break-interval",
		Aliases: []string{"int"},
		Usage:   "Focus sessions before a long break (minimum 2)",
	},
	&cli.StringFlag{
		Name:  "auto-start-breaks",
		Usage: "Start breaks automatically: on or off",
	},
	&cli.StringFlag{
		Name:  "auto-start-focus",
		Usage: "Start the next focus session automatically: on or off",
	},
	&cli.StringFlag{
		Name:  "notify",
		Usage: "Desktop notifications: on or off",
	},
	&cli.StringFlag{
		Name:  "session-cmd",
		Usage: "Command to run after every completed session",
	},
}
