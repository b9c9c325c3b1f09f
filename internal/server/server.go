// Package server exposes the board over a small JSON API: the visitor
// join path, share-link activation, and the password-gated operator
// controls. Rendering stays client-side; this only serves records.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/section308/heartboard/internal/store"
	"github.com/section308/heartboard/internal/syncd"
	"github.com/section308/heartboard/pkg/types"
)

// Server handles the board's HTTP API.
type Server struct {
	store     *store.Store
	webhook   *syncd.Webhook
	scheduler *syncd.Scheduler // nil when no source is configured
	password  string
	log       zerolog.Logger
}

// New assembles a Server. scheduler may be nil; manual sync then
// reports that no source is configured.
func New(st *store.Store, webhook *syncd.Webhook, scheduler *syncd.Scheduler, password string, log zerolog.Logger) *Server {
	return &Server{
		store:     st,
		webhook:   webhook,
		scheduler: scheduler,
		password:  password,
		log:       log,
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /board", s.handleBoard)
	mux.HandleFunc("POST /join", s.handleJoin)
	mux.HandleFunc("GET /activate", s.handleActivate)
	mux.HandleFunc("POST /admin/toggle", s.requireAdmin(s.handleToggle))
	mux.HandleFunc("POST /admin/sync", s.requireAdmin(s.handleSync))
	mux.HandleFunc("POST /admin/reset", s.requireAdmin(s.handleReset))
	return s.logRequests(mux)
}

// ListenAndServe runs the API at addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info().Str("addr", addr).Msg("serving board API")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requireAdmin gates a handler behind the plain-text operator password.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.password == "" || r.Header.Get("X-Admin-Password") != s.password {
			writeError(w, http.StatusForbidden, "admin access denied")
			return
		}
		next(w, r)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// boardResponse is the GET /board payload.
type boardResponse struct {
	Capacity     int                 `json:"capacity"`
	Lit          int                 `json:"lit"`
	Remaining    int                 `json:"remaining"`
	Mask         []string            `json:"mask"`
	Participants []types.Participant `json:"participants"`
}
