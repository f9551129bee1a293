// Package router translates inbound command messages into session engine
// calls and wraps the outcome in a response envelope
package router

import (
	"github.com/tomatick/pomo/internal/apperr"
	"github.com/tomatick/pomo/internal/models"
	"github.com/tomatick/pomo/timer"
)

// MessageType identifies a timer command.
type MessageType string

const (
	GetState       MessageType = "GET_STATE"
	Start          MessageType = "START"
	Pause          MessageType = "PAUSE"
	Reset          MessageType = "RESET"
	SwitchMode     MessageType = "SWITCH_MODE"
	UpdateSettings MessageType = "UPDATE_SETTINGS"
)

var errUnknownMessage = &apperr.Error{
	Message: "Unknown message type",
}

// Message is an inbound command.
type Message struct {
	Settings *models.SettingsPatch `json:"settings,omitempty"`
	Type     MessageType           `json:"type"`
	Mode     models.Mode           `json:"mode,omitempty"`
}

// Response is the outcome of a command. Error is set when OK is false;
// State and Settings carry the resulting records where the command produces
// them.
type Response struct {
	State    *models.Session  `json:"state,omitempty"`
	Settings *models.Settings `json:"settings,omitempty"`
	Error    string           `json:"error,omitempty"`
	OK       bool             `json:"ok"`
}

// Router dispatches command messages to the session engine. Any error from
// an operation surfaces here as a structured failure response; nothing
// propagates past this boundary.
type Router struct {
	engine *timer.Engine
}

func New(engine *timer.Engine) *Router {
	return &Router{
		engine: engine,
	}
}

func failure(err error) Response {
	return Response{
		OK:    false,
		Error: err.Error(),
	}
}

// Handle runs a single command to completion and returns its response.
func (r *Router) Handle(msg Message) Response {
	switch msg.Type {
	case GetState:
		sess, settings, err := r.engine.State()
		if err != nil {
			return failure(err)
		}

		return Response{
			OK:       true,
			State:    sess,
			Settings: &settings,
		}
	case Start:
		sess, err := r.engine.Start()
		if err != nil {
			return failure(err)
		}

		return Response{
			OK:    true,
			State: sess,
		}
	case Pause:
		sess, err := r.engine.Pause()
		if err != nil {
			return failure(err)
		}

		return Response{
			OK:    true,
			State: sess,
		}
	case Reset:
		sess, err := r.engine.Reset()
		if err != nil {
			return failure(err)
		}

		return Response{
			OK:    true,
			State: sess,
		}
	case SwitchMode:
		sess, err := r.engine.SwitchMode(msg.Mode)
		if err != nil {
			return failure(err)
		}

		return Response{
			OK:    true,
			State: sess,
		}
	case UpdateSettings:
		var patch models.SettingsPatch
		if msg.Settings != nil {
			patch = *msg.Settings
		}

		settings, sess, err := r.engine.UpdateSettings(patch)
		if err != nil {
			return failure(err)
		}

		return Response{
			OK:       true,
			Settings: &settings,
			State:    sess,
		}
	}

	return failure(errUnknownMessage)
}
