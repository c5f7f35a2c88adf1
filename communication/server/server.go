package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"othello/communication"
	"othello/player"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Server exposes one player over HTTP:
//
//	POST /move  MoveRequest -> MoveResponse
//	GET  /ping
type Server struct {
	mu     sync.Mutex
	player *player.Player
	router chi.Router
}

func NewServer(p *player.Player) *Server {
	s := &Server{player: p}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post("/move", s.handleMove)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe blocks serving on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Str("addr", addr).Stringer("side", s.player.Side()).Msg("agent server listening")
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req communication.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, communication.ErrorResponse{Error: "bad request: " + err.Error()})
		return
	}

	// Turns are strictly sequential
	s.mu.Lock()
	turn, err := s.player.ComputeMove(req.OpponentsMove, req.MsLeft)
	s.mu.Unlock()

	if errors.Is(err, player.ErrIllegalOpponentMove) {
		writeJSON(w, http.StatusBadRequest, communication.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to compute move")
		writeJSON(w, http.StatusInternalServerError, communication.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, communication.MoveResponse{Move: turn})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
