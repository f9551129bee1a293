package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tomatick/pomo/internal/apperr"
	"github.com/tomatick/pomo/router"
)

var errDaemonUnreachable = &apperr.Error{
	Message: "unable to reach the pomo daemon: is it running? (pomo serve)",
}

// Client posts command messages to a running daemon.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(port uint) *Client {
	return &Client{
		baseURL: fmt.Sprintf("http://127.0.0.1:%d", port),
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Send delivers a single command and returns the daemon's response
// envelope. Transport failures are reported as errors; command failures
// come back inside the envelope.
func (c *Client) Send(msg router.Message) (*router.Response, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Post(
		c.baseURL+"/api/message",
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, errDaemonUnreachable.Wrap(err)
	}

	defer resp.Body.Close()

	var envelope router.Response

	err = json.NewDecoder(resp.Body).Decode(&envelope)
	if err != nil {
		return nil, err
	}

	return &envelope, nil
}
