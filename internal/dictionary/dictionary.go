// Package dictionary answers "is this a real word?" for the game engine.
//
// Two implementations satisfy game.Dictionary:
//   - Set:    in-memory word sets keyed by language.
//   - SQLite: a dictionary_words table in a SQLite database.
//
// Language tags are reduced to their base language ("en-US" → "en") so
// regional variants share one word list.
package dictionary

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when a caller passes an empty or invalid tag.
const DefaultLanguage = "en"

// BaseLanguage canonicalizes a BCP 47 tag to its base language.
func BaseLanguage(tag string) string {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil || t == language.Und {
		return DefaultLanguage
	}
	base, _ := t.Base()
	return base.String()
}

func normalizeWord(w string) string {
	return strings.TrimSpace(cases.Fold().String(w))
}

// Set is an in-memory dictionary. Safe for concurrent use.
type Set struct {
	mu    sync.RWMutex
	words map[string]map[string]struct{} // language → words
}

// NewSet builds a Set holding words for lang.
func NewSet(lang string, words []string) *Set {
	s := &Set{words: make(map[string]map[string]struct{})}
	s.Add(lang, words...)
	return s
}

// Add inserts words for lang.
func (s *Set) Add(lang string, words ...string) {
	lang = BaseLanguage(lang)
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.words[lang]
	if !ok {
		m = make(map[string]struct{}, len(words))
		s.words[lang] = m
	}
	for _, w := range words {
		if w = normalizeWord(w); w != "" {
			m[w] = struct{}{}
		}
	}
}

// IsRecognizedWord implements game.Dictionary.
func (s *Set) IsRecognizedWord(word, lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.words[BaseLanguage(lang)][normalizeWord(word)]
	return ok
}

// Import adds words for lang and returns how many were new.
func (s *Set) Import(_ context.Context, lang string, words []string) (int, error) {
	before := s.count(lang)
	s.Add(lang, words...)
	return s.count(lang) - before, nil
}

// Count returns the number of words stored for lang.
func (s *Set) Count(_ context.Context, lang string) (int, error) {
	return s.count(lang), nil
}

func (s *Set) count(lang string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words[BaseLanguage(lang)])
}
