// internal/game/types.go
//
// Core type definitions for the Word Scramble engine.
// Defines:
//   - Disposition: what the engine did with a submission (ignored/accepted/rejected).
//   - RejectionKind: why a submission was rejected.
//   - Outcome: the result of a single Submit call.
//   - RoundState: snapshot of a round (root word, accepted words, count).

package game

// Disposition is the coarse result of a submission.
type Disposition string

const (
	// Ignored means the submission was empty; nothing happened and
	// callers are free to give no feedback.
	Ignored  Disposition = "ignored"
	Accepted Disposition = "accepted"
	Rejected Disposition = "rejected"
)

// RejectionKind is the reason a submission was rejected.
// Only the first failing rule is reported.
type RejectionKind string

const (
	SameAsRoot   RejectionKind = "same_as_root"
	AlreadyUsed  RejectionKind = "already_used"
	NotSpellable RejectionKind = "not_spellable"
	NotAWord     RejectionKind = "not_a_word"
)

// Title returns a short heading suitable for an alert.
func (k RejectionKind) Title() string {
	switch k {
	case SameAsRoot:
		return "Nice try"
	case AlreadyUsed:
		return "Word used already"
	case NotSpellable:
		return "Word not possible"
	case NotAWord:
		return "Word not recognized"
	}
	return ""
}

// Message returns a one-line explanation for the player.
func (k RejectionKind) Message(root string) string {
	switch k {
	case SameAsRoot:
		return "You can't just use the root word!"
	case AlreadyUsed:
		return "Be more original"
	case NotSpellable:
		return "You can't spell that word from '" + root + "'!"
	case NotAWord:
		return "You can't just make them up, you know!"
	}
	return ""
}

// Outcome is returned by Engine.Submit. Reason is set only when
// Disposition is Rejected; Word is the normalized submission.
type Outcome struct {
	Disposition Disposition
	Reason      RejectionKind
	Word        string
}

// RoundState is a read-only snapshot of a round.
type RoundState struct {
	RootWord      string   // empty while the engine has not started a round
	AcceptedWords []string // most recent first
	AcceptedCount int
}
