// internal/httpserver/routes_lookup.go
//
// Lookup routes:
//   - GET /dictionaries      → the per-dictionary shortcuts
//   - GET /lookup/{dict}     → Sprotin search (?q=word, optional &n=word number)
//   - GET /gm                → Grunnmanuskriptet search (?q=word)
//
// Responses carry the chat payloads as rendered for Discord.

package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/LFalch/ordabottur/internal/dictionary/sprotin"
	"github.com/LFalch/ordabottur/internal/dictionary/uio"
	"github.com/LFalch/ordabottur/internal/msgbunch"
)

type messagesRes struct {
	Messages []string `json:"messages"`
}

type dictionaryRes struct {
	Name        string   `json:"name"`
	ID          int      `json:"id"`
	Display     string   `json:"display"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description"`
}

func (s *Server) mountLookup(r chi.Router) {
	r.Get("/dictionaries", s.handleDictionaries)
	r.Get("/lookup/{dict}", s.handleLookup)
	r.Get("/gm", s.handleGM)
}

func (s *Server) handleDictionaries(w http.ResponseWriter, r *http.Request) {
	out := make([]dictionaryRes, 0, len(sprotin.Shortcuts))
	for _, sc := range sprotin.Shortcuts {
		id, _ := sprotin.ParseDictionary(sc.Name)
		out = append(out, dictionaryRes{
			Name:        sc.Name,
			ID:          id,
			Display:     sprotin.DictionaryName(id),
			Aliases:     sc.Aliases,
			Description: sc.Description,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	dict, ok := sprotin.ParseDictionary(chi.URLParam(r, "dict"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown_dictionary")
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "missing_query")
		return
	}
	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			writeError(w, http.StatusBadRequest, "bad_word_number")
			return
		}
		n = v
	}

	res, err := s.sprotin.Search(r.Context(), sprotin.Query{Dictionary: dict, Page: 1, SearchFor: q})
	if err != nil {
		s.upstreamFailed(w, r, err)
		return
	}
	if n > 0 {
		if bunch, ok, err := res.WordAt(n); ok {
			s.writeBunch(w, r, bunch, err)
			return
		}
	}
	bunch, err := res.Summary()
	s.writeBunch(w, r, bunch, err)
}

func (s *Server) handleGM(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "missing_query")
		return
	}
	res, err := s.gm.SearchGM(r.Context(), q, uio.GMRows)
	if err != nil {
		s.upstreamFailed(w, r, err)
		return
	}
	bunch, err := res.Bunch()
	s.writeBunch(w, r, bunch, err)
}

func (s *Server) writeBunch(w http.ResponseWriter, r *http.Request, b msgbunch.Bunch, err error) {
	if err != nil {
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("render failed")
		writeError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	msgs := b.Messages
	if msgs == nil {
		msgs = []string{}
	}
	writeJSON(w, http.StatusOK, messagesRes{Messages: msgs})
}
