// internal/httpserver/routes_game.go
//
// HTTP routes for playing a game:
//   - POST   /game/new          → create a game and start its first round
//   - GET    /game/{id}         → current round state
//   - POST   /game/{id}/submit  → submit a candidate word
//   - POST   /game/{id}/restart → abandon the round and start a new one
//   - DELETE /game/{id}         → drop the game
//
// Every route except /game/new requires the bearer token returned by
// /game/new. Rejected words are ordinary 200 responses; the disposition
// field tells the client what happened.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/words"
)

func (s *Server) mountGame() {
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireGame)
		r.Get("/", s.handleState)
		r.Post("/submit", s.handleSubmit)
		r.Post("/restart", s.handleRestart)
		r.Delete("/", s.handleDelete)
	})
}

// stateRes is the JSON view of a game's current round.
type stateRes struct {
	GameID        string    `json:"gameId"`
	Mode          game.Mode `json:"mode"`
	Date          string    `json:"date,omitempty"`
	RootWord      string    `json:"rootWord"`
	AcceptedWords []string  `json:"acceptedWords"`
	AcceptedCount int       `json:"acceptedCount"`
}

func stateOf(snap game.Snapshot) stateRes {
	return stateRes{
		GameID:        snap.ID,
		Mode:          snap.Mode,
		Date:          snap.Date,
		RootWord:      snap.RootWord,
		AcceptedWords: snap.AcceptedWords,
		AcceptedCount: snap.AcceptedCount,
	}
}

// startRound begins a round according to the game's mode.
func (s *Server) startRound(g *game.Game) game.Snapshot {
	if g.Mode == game.ModeDaily {
		now := s.now()
		return g.StartDaily(words.DateKey(now), words.DailyRoot(now, s.cfg.Words.DailySalt, s.roots))
	}
	return g.StartRound(s.roots)
}

// -----------------------------------------------------------------------------
// /game/new

type newGameReq struct {
	Mode string `json:"mode"` // "random" (default) | "daily"
}

type newGameRes struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	stateRes
}

// handleNewGame creates a game, starts its first round, stores it and
// returns a token scoped to it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req) // empty body means defaults

	g := game.NewGame(game.ParseMode(req.Mode), game.New(s.dict, words.Provider{}, s.cfg.Words.Language))
	snap := s.startRound(g)

	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeJSONError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signGameToken(g.ID)
	if err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("sign game token")
		writeJSONError(w, http.StatusInternalServerError, "sign_failed")
		return
	}

	st := stateOf(snap)
	log.Info().Str("gameId", g.ID).Str("mode", string(g.Mode)).Str("root", st.RootWord).Msg("game started")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(newGameRes{Token: tok, ExpiresAt: exp.Unix(), stateRes: st})
}

// -----------------------------------------------------------------------------
// /game/{id}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(stateOf(gameFrom(r.Context()).Snapshot()))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	g := gameFrom(r.Context())
	if err := s.store.Delete(r.Context(), g.ID); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("delete game")
		writeJSONError(w, http.StatusInternalServerError, "store_error")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	g := gameFrom(r.Context())
	st := stateOf(s.startRound(g))
	log.Info().Str("gameId", g.ID).Str("root", st.RootWord).Msg("round restarted")
	_ = json.NewEncoder(w).Encode(st)
}

// -----------------------------------------------------------------------------
// /game/{id}/submit

type submitReq struct {
	Word string `json:"word"`
}

type submitRes struct {
	Disposition game.Disposition   `json:"disposition"`
	Reason      game.RejectionKind `json:"reason,omitempty"`
	Title       string             `json:"title,omitempty"`
	Message     string             `json:"message,omitempty"`
	Word        string             `json:"word"`
	State       stateRes           `json:"state"`
}

// handleSubmit runs a word through the engine and reports the outcome
// together with the resulting round state.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g := gameFrom(r.Context())
	out, snap := g.Submit(req.Word)
	st := stateOf(snap)

	res := submitRes{Disposition: out.Disposition, Word: out.Word, State: st}
	if out.Disposition == game.Rejected {
		res.Reason = out.Reason
		res.Title = out.Reason.Title()
		res.Message = out.Reason.Message(st.RootWord)
	}
	log.Debug().Str("gameId", g.ID).Str("word", out.Word).
		Str("disposition", string(out.Disposition)).Str("reason", string(out.Reason)).
		Msg("submission")
	_ = json.NewEncoder(w).Encode(res)
}
