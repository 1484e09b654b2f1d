package status

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jason-murray/internet-check/internal/health"
)

// HealthSource exposes the latest published health verdict.
type HealthSource interface {
	Healthy() bool
}

// Server is an optional read-only HTTP surface: /healthz answers as long
// as the process is alive, /status mirrors the health file contents.
type Server struct {
	srv *http.Server
}

func NewServer(addr string, source HealthSource) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(health.StatusText(source.Healthy())))
	})
	return &Server{
		srv: &http.Server{
			Handler: mux,
			Addr:    addr,
		},
	}
}

func (s *Server) Start() {
	go func() {
		err := s.srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("status server stopped")
		}
	}()
}

func (s *Server) Close() {
	_ = s.srv.Close()
}
