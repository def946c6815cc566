// internal/game/engine.go
//
// Core game engine for a single Word Scramble round.
// Responsibilities:
//   - Start rounds from a candidate root-word list (via an injected RootPicker).
//   - Normalize and validate submissions in a fixed order:
//       empty → same as root → already used → spellable → dictionary.
//   - Track accepted words (most recent first) and the accepted count.
//
// Notes:
//   - Rejections are returned as data (Outcome), never as errors.
//   - The dictionary is consulted last since it is the most expensive check.
//   - An Engine serializes its own state; one Engine per active game.
package game

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Dictionary reports whether word is spelled correctly in language.
type Dictionary interface {
	IsRecognizedWord(word, language string) bool
}

// RootPicker chooses a root word from candidates. Implementations must
// return a non-empty word even when candidates is empty.
type RootPicker interface {
	SelectRoot(candidates []string) string
}

// Engine owns the state of one round and gates every submission.
type Engine struct {
	mu       sync.Mutex
	dict     Dictionary
	roots    RootPicker
	language string

	root     string
	accepted []string
	count    int
}

// New constructs an engine that has not started a round yet.
func New(dict Dictionary, roots RootPicker, language string) *Engine {
	return &Engine{dict: dict, roots: roots, language: language}
}

// Normalize case-folds raw and trims surrounding whitespace.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	return strings.TrimSpace(cases.Fold().String(raw))
}

// StartRound picks a new root word from candidates and discards any
// progress in the current round. It returns the new root word.
func (e *Engine) StartRound(candidates []string) string {
	return e.reset(e.roots.SelectRoot(candidates))
}

// StartRoundWith starts a round on a caller-chosen root word. A blank
// root falls back to the picker's default.
func (e *Engine) StartRoundWith(root string) string {
	if Normalize(root) == "" {
		return e.reset(e.roots.SelectRoot(nil))
	}
	return e.reset(root)
}

func (e *Engine) reset(root string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.root = Normalize(root)
	e.accepted = []string{}
	e.count = 0
	return e.root
}

// Started reports whether a round is in progress.
func (e *Engine) Started() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.root != ""
}

// Submit validates raw against the current round. On acceptance the
// normalized word is prepended to the accepted list.
func (e *Engine) Submit(raw string) Outcome {
	word := Normalize(raw)

	e.mu.Lock()
	defer e.mu.Unlock()

	if word == "" || e.root == "" {
		return Outcome{Disposition: Ignored, Word: word}
	}
	if word == e.root {
		return rejected(word, SameAsRoot)
	}
	if e.isUsed(word) {
		return rejected(word, AlreadyUsed)
	}
	if !spellable(word, e.root) {
		return rejected(word, NotSpellable)
	}
	if !e.dict.IsRecognizedWord(word, e.language) {
		return rejected(word, NotAWord)
	}

	e.accepted = append([]string{word}, e.accepted...)
	e.count++
	return Outcome{Disposition: Accepted, Word: word}
}

// State returns a copy of the current round.
func (e *Engine) State() RoundState {
	e.mu.Lock()
	defer e.mu.Unlock()
	words := make([]string, len(e.accepted))
	copy(words, e.accepted)
	return RoundState{RootWord: e.root, AcceptedWords: words, AcceptedCount: e.count}
}

func (e *Engine) isUsed(word string) bool {
	for _, w := range e.accepted {
		if w == word {
			return true
		}
	}
	return false
}

func rejected(word string, kind RejectionKind) Outcome {
	return Outcome{Disposition: Rejected, Reason: kind, Word: word}
}

// spellable reports whether word can be built from the letters of root,
// using each occurrence in root at most once.
//
// Greedy multiset subtraction: count root letters, then consume one per
// letter of word and fail on the first letter with nothing left.
func spellable(word, root string) bool {
	avail := make(map[rune]int, len(root))
	for _, r := range root {
		avail[r]++
	}
	for _, r := range word {
		if avail[r] == 0 {
			return false
		}
		avail[r]--
	}
	return true
}
