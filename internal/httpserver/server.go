// internal/httpserver/server.go
//
// HTTP preview surface for the dictionary bot.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/dictionaries".
//   - Lookup endpoints: GET /lookup/{dict}, GET /gm. Both answer with the
//     exact payloads the bot would send.
//
// Notes:
//   - Backends are interfaces so the router tests offline.
//   - Upstream failures map to 502 with the upstream status when known.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/LFalch/ordabottur/internal/dictionary"
	"github.com/LFalch/ordabottur/internal/dictionary/sprotin"
	"github.com/LFalch/ordabottur/internal/dictionary/uio"
)

// Searcher is the Sprotin search backend.
type Searcher interface {
	Search(ctx context.Context, q sprotin.Query) (*sprotin.Response, error)
}

// GMSearcher is the Grunnmanuskriptet backend.
type GMSearcher interface {
	SearchGM(ctx context.Context, word string, rows int) (*uio.Result, error)
}

// Server bundles the router and its backends.
type Server struct {
	r       *chi.Mux
	log     zerolog.Logger
	sprotin Searcher
	gm      GMSearcher
}

// New constructs a Server, installs middleware, and registers routes.
func New(log zerolog.Logger, sp Searcher, gm GMSearcher) *Server {
	s := &Server{r: chi.NewRouter(), log: log, sprotin: sp, gm: gm}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(20 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(s.accessLog)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"ordabottur","endpoints":["/health","/dictionaries","/lookup/{dict}?q=&n=","/gm?q="]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.mountLookup(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Start serves HTTP on addr until ctx is done, then shuts down.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("req", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("http")
	})
}

// ------------------------------ helpers ------------------------------------

type errorRes struct {
	Error    string `json:"error"`
	Upstream int    `json:"upstream,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorRes{Error: code})
}

// upstreamFailed reports a backend error as 502.
func (s *Server) upstreamFailed(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Warn().Err(err).Str("req", chimw.GetReqID(r.Context())).Str("path", r.URL.Path).Msg("lookup failed")
	res := errorRes{Error: "upstream_failed"}
	var se *dictionary.StatusError
	if errors.As(err, &se) {
		res.Upstream = se.Code
	}
	writeJSON(w, http.StatusBadGateway, res)
}
