package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"tween/internal/logging"
	"tween/internal/telemetry"
)

// StatusFunc supplies the /v1/status payload.
type StatusFunc func() any

type Server struct {
	http *http.Server
	lis  net.Listener
}

// StartServer binds the control surface: health, metrics, and a status
// snapshot of the running show.
func StartServer(port int, status StatusFunc) (*Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	s := &Server{
		http: &http.Server{Handler: NewHandler(status)},
		lis:  lis,
	}
	return s, nil
}

// NewHandler builds the route tree; split out so tests can drive it without
// a listener.
func NewHandler(status StatusFunc) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", telemetry.Handler())
	r.Get("/v1/status", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status())
	})
	return r
}

func (s *Server) Serve() error {
	err := s.http.Serve(s.lis)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		logging.L().Warn("transport: shutdown", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.L().Warn("transport: encode response", "err", err)
	}
}
