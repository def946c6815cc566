package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Mode selects how a game picks its root words.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeDaily  Mode = "daily"
)

// ParseMode maps a request value to a Mode, defaulting to ModeRandom.
func ParseMode(s string) Mode {
	if Mode(s) == ModeDaily {
		return ModeDaily
	}
	return ModeRandom
}

// Game is one player's game session: an engine plus bookkeeping.
// Round changes and reads go through Game's methods so that a submission
// and the state reported with it always belong to the same round.
type Game struct {
	ID        string
	Mode      Mode
	CreatedAt time.Time

	mu     sync.Mutex // guards date and round transitions on engine
	date   string     // daily mode only, YYYY-MM-DD
	engine *Engine
}

// Snapshot is a consistent view of a game's current round.
type Snapshot struct {
	ID   string
	Mode Mode
	Date string
	RoundState
}

// NewGame wraps e in a Game with a fresh random ID.
func NewGame(mode Mode, e *Engine) *Game {
	return &Game{
		ID:        uuid.NewString(),
		Mode:      mode,
		CreatedAt: time.Now().UTC(),
		engine:    e,
	}
}

// StartRound starts a random round from candidates.
func (g *Game) StartRound(candidates []string) Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.date = ""
	g.engine.StartRound(candidates)
	return g.snapshot()
}

// StartDaily starts the round of the day for date on root.
func (g *Game) StartDaily(date, root string) Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.date = date
	g.engine.StartRoundWith(root)
	return g.snapshot()
}

// Submit runs raw through the engine and returns the outcome with the
// state it produced.
func (g *Game) Submit(raw string) (Outcome, Snapshot) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := g.engine.Submit(raw)
	return out, g.snapshot()
}

// Snapshot returns the current round.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	return Snapshot{ID: g.ID, Mode: g.Mode, Date: g.date, RoundState: g.engine.State()}
}
