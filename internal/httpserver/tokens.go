package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
)

// gameClaims scope a token to exactly one game.
type gameClaims struct {
	GameID string `json:"gid"`
	jwt.RegisteredClaims
}

// signGameToken creates an HS256 token for gameID valid for the configured TTL.
func (s *Server) signGameToken(gameID string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.cfg.Auth.GameTokenTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, gameClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := t.SignedString([]byte(s.cfg.Auth.JWTSecret))
	return ss, exp, err
}

// parseGameToken verifies tok and returns the game ID it grants.
func (s *Server) parseGameToken(tok string) (string, error) {
	claims := &gameClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.GameID == "" {
		return "", errors.New("invalid token")
	}
	return claims.GameID, nil
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// ctxGameKey is the context key type for the authorized *game.Game.
type ctxGameKey struct{}

// requireGame enforces a valid token for the {id} in the path, loads the
// game, and injects it into the request context.
func (s *Server) requireGame(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		tok := bearerToken(r)
		if tok == "" {
			writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		gid, err := s.parseGameToken(tok)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		if gid != id {
			writeJSONError(w, http.StatusForbidden, "Forbidden")
			return
		}
		g, err := s.store.Get(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found")
			return
		}
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "store_error")
			return
		}
		ctx := context.WithValue(r.Context(), ctxGameKey{}, g)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// gameFrom returns the game placed in ctx by requireGame.
func gameFrom(ctx context.Context) *game.Game {
	g, _ := ctx.Value(ctxGameKey{}).(*game.Game)
	return g
}
