// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Status: lifecycle of a round (idle/in_progress/won/lost).
//   - Outcome: what a single guess did to the round.
//   - Game: state for the current round.

package game

const (
	// MaxMisses is the number of wrong guesses that loses a round.
	MaxMisses = 9
	// Stages is the number of illustration stages (0..MaxMisses).
	Stages = MaxMisses + 1
	// Placeholder marks an unrevealed board cell.
	Placeholder = '_'
	// Alphabet lists the guessable letters in keyboard order.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Status represents the lifecycle state of the current round.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Finished reports whether the round has ended.
func (s Status) Finished() bool { return s == StatusWon || s == StatusLost }

// Outcome is the result of a single Guess call.
//   - "ignored": the guess was not accepted (used letter, not a letter, round not running).
//   - "hit":     the letter is in the word and the round continues.
//   - "miss":    the letter is not in the word and the round continues.
//   - "won":     the guess revealed the last placeholder.
//   - "lost":    the guess was the final allowed miss.
type Outcome string

const (
	OutcomeIgnored Outcome = "ignored"
	OutcomeHit     Outcome = "hit"
	OutcomeMiss    Outcome = "miss"
	OutcomeWon     Outcome = "won"
	OutcomeLost    Outcome = "lost"
)

// Picker supplies secret words for new rounds.
type Picker interface {
	Pick() string
}

// PickerFunc adapts a plain function to Picker.
type PickerFunc func() string

func (f PickerFunc) Pick() string { return f() }

// Game holds the state of the current hangman round.
type Game struct {
	picker Picker

	word   string   // secret word, uppercase A–Z
	board  []byte   // one cell per letter; Placeholder or the revealed letter
	misses int      // wrong guesses this round, 0..MaxMisses
	status Status   // idle until the first Start
	used   [26]bool // letters already tried this round
}
