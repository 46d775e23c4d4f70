// Package web serves the read-only leaderboard over HTTP as JSON.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/ramadhan-rush/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Source is the run history the leaderboard reads.
type Source interface {
	TopRuns(difficulty string, limit int) ([]storage.Run, error)
	RecentRuns(profile string, limit int) ([]storage.Run, error)
	RunByID(runID string) (*storage.Run, error)
	AllStats() (map[string]*storage.Stats, error)
}

// Server routes leaderboard requests.
type Server struct {
	src    Source
	logger *log.Logger
	router *mux.Router
}

// NewServer builds the router:
//
//	GET /runs?difficulty=&limit=        best runs
//	GET /runs/{id}                      one run by uuid
//	GET /profiles/{profile}/runs?limit= a player's latest runs
//	GET /stats                          per-difficulty aggregates
func NewServer(src Source, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{src: src, logger: logger, router: mux.NewRouter()}

	s.router.HandleFunc("/runs", s.handleTopRuns).Methods(http.MethodGet)
	s.router.HandleFunc("/runs/{id}", s.handleRun).Methods(http.MethodGet)
	s.router.HandleFunc("/profiles/{profile}/runs", s.handleProfileRuns).Methods(http.MethodGet)
	s.router.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	s.router.Use(s.logRequests)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting leaderboard", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

func (s *Server) handleTopRuns(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	runs, err := s.src.TopRuns(r.URL.Query().Get("difficulty"), limit)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(runs))
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid run id")
		return
	}
	run, err := s.src.RunByID(id)
	if err != nil {
		s.fail(w, err)
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleProfileRuns(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	runs, err := s.src.RecentRuns(mux.Vars(r)["profile"], limit)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(runs))
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	stats, err := s.src.AllStats()
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.logger.Warn("leaderboard query failed", "err", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// parseLimit reads ?limit=, defaulting to 10 and capping at 100. It writes
// a 400 and returns false for a malformed value.
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return 0, false
	}
	return min(n, maxLimit), true
}

func orEmpty(runs []storage.Run) []storage.Run {
	if runs == nil {
		return []storage.Run{}
	}
	return runs
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // client went away
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
