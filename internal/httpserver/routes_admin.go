package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const adminUser = "admin"

// maxImportWords caps a single import request.
const maxImportWords = 50000

func (s *Server) mountAdmin() {
	if s.cfg.Auth.AdminPasswordHash == "" {
		return
	}
	s.r.With(s.requireAdmin).Post("/admin/dictionary", s.handleImport)
}

// requireAdmin checks HTTP basic auth against the configured bcrypt hash.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pw, ok := r.BasicAuth()
		if !ok || user != adminUser || !checkPassword(s.cfg.Auth.AdminPasswordHash, pw) {
			w.Header().Set("WWW-Authenticate", `Basic realm="wordscramble-admin"`)
			writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkPassword is a bcrypt verifier.
func checkPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

type importReq struct {
	Language string   `json:"language"`
	Words    []string `json:"words"`
}

type importRes struct {
	Language string `json:"language"`
	Inserted int    `json:"inserted"`
	Total    int    `json:"total"`
}

// handleImport adds words to the dictionary.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var req importReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if len(req.Words) == 0 || len(req.Words) > maxImportWords {
		writeJSONError(w, http.StatusBadRequest, "invalid_word_count")
		return
	}
	if req.Language == "" {
		req.Language = s.cfg.Words.Language
	}

	n, err := s.dict.Import(r.Context(), req.Language, req.Words)
	if err != nil {
		log.Error().Err(err).Str("language", req.Language).Msg("import dictionary")
		writeJSONError(w, http.StatusInternalServerError, "import_failed")
		return
	}
	total, err := s.dict.Count(r.Context(), req.Language)
	if err != nil {
		log.Warn().Err(err).Str("language", req.Language).Msg("count dictionary")
	}
	log.Info().Str("language", req.Language).Int("inserted", n).Msg("dictionary import")
	_ = json.NewEncoder(w).Encode(importRes{Language: req.Language, Inserted: n, Total: total})
}
