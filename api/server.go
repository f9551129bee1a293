// Package api exposes the timer command surface over a local HTTP endpoint
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/tomatick/pomo/router"
)

const envDebug = "POMO_DEBUG"

// Server serves the command endpoint for local clients. Responses always
// carry the router envelope; transport-level failures are the only thing
// reported through HTTP status codes.
type Server struct {
	router *router.Router
	port   uint
}

func NewServer(r *router.Router, port uint) *Server {
	return &Server{
		router: r,
		port:   port,
	}
}

func writeJSON(w http.ResponseWriter, resp router.Response) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		slog.Error("unable to encode response", slog.Any("error", err))
	}
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var msg router.Message

	err := json.NewDecoder(r.Body).Decode(&msg)
	if err != nil {
		writeJSON(w, router.Response{
			OK:    false,
			Error: fmt.Sprintf("invalid message: %v", err),
		})

		return
	}

	if _, found := os.LookupEnv(envDebug); found {
		slog.Debug(spew.Sdump(msg))
	}

	writeJSON(w, s.router.Handle(msg))
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.router.Handle(router.Message{Type: router.GetState}))
}

// ListenAndServe blocks serving the command endpoint until the context is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/message", s.handleMessage)
	mux.HandleFunc("GET /api/state", s.handleState)

	srv := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", s.port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			5*time.Second,
		)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("daemon listening", slog.Uint64("port", uint64(s.port)))

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
