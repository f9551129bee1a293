package app

import "github.com/tomatick/pomo/internal/apperr"

var (
	errInvalidInterval = &apperr.Error{
		Message: "the long break interval must be at least 2",
	}

	errInvalidOnOff = &apperr.Error{
		Message: "expected 'on' or 'off'",
	}

	errNoSettings = &apperr.Error{
		Message: "no settings provided: see pomo set --help",
	}

	errMissingMode = &apperr.Error{
		Message: "a mode is required: focus, short_break, or long_break",
	}
)
