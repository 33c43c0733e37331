// internal/game/engine.go
//
// Core game engine for a single hangman session.
// Responsibilities:
//   - Start rounds with a word from the configured Picker.
//   - Apply letter guesses: reveal every matching cell or count a miss.
//   - Track state transitions: in_progress → won/lost.
//
// Invalid guesses (used letters, non-letters, finished rounds) are no-ops
// reported as OutcomeIgnored; the window disables those controls anyway.
package game

import (
	"strings"
)

// New constructs an idle game that draws its words from p.
func New(p Picker) *Game {
	return &Game{picker: p, status: StatusIdle}
}

// Start begins a new round with a word chosen by the picker.
func (g *Game) Start() {
	g.StartWith(g.picker.Pick())
}

// StartWith begins a new round with a fixed word.
// The previous word, board, miss count and used letters are discarded.
func (g *Game) StartWith(word string) {
	g.word = strings.ToUpper(strings.TrimSpace(word))
	g.board = make([]byte, len(g.word))
	for i := range g.board {
		g.board[i] = Placeholder
	}
	g.misses = 0
	g.used = [26]bool{}
	g.status = StatusInProgress
}

// Guess applies a letter guess and returns what it did to the round.
//
// State transitions:
//   - No placeholder left → StatusWon.
//   - Misses reaches MaxMisses → StatusLost.
func (g *Game) Guess(letter rune) Outcome {
	i := idx(letter)
	if g.status != StatusInProgress || i < 0 || g.used[i] {
		return OutcomeIgnored
	}
	g.used[i] = true
	c := byte('A' + i)

	hit := false
	for j := 0; j < len(g.word); j++ {
		if g.word[j] == c {
			g.board[j] = c
			hit = true
		}
	}
	if !hit {
		g.misses++
	}

	switch {
	case !g.hasPlaceholder():
		g.status = StatusWon
		return OutcomeWon
	case g.misses >= MaxMisses:
		g.status = StatusLost
		return OutcomeLost
	case hit:
		return OutcomeHit
	default:
		return OutcomeMiss
	}
}

// Word returns the secret word of the current round ("" while idle).
func (g *Game) Word() string { return g.word }

// Misses returns the number of wrong guesses this round.
func (g *Game) Misses() int { return g.misses }

// Stage returns the illustration stage to show, 0..MaxMisses.
func (g *Game) Stage() int { return g.misses }

// Status returns the current round status.
func (g *Game) Status() Status { return g.status }

// Board returns a copy of the board cells.
func (g *Game) Board() []byte {
	out := make([]byte, len(g.board))
	copy(out, g.board)
	return out
}

// Used reports whether letter has already been guessed this round.
// Non-letters report false.
func (g *Game) Used(letter rune) bool {
	i := idx(letter)
	return i >= 0 && g.used[i]
}

// Available reports whether letter can be guessed right now.
func (g *Game) Available(letter rune) bool {
	i := idx(letter)
	return g.status == StatusInProgress && i >= 0 && !g.used[i]
}

// BoardString renders the board for display: placeholders get one space
// either side, revealed letters are shown bare.
func (g *Game) BoardString() string {
	var b strings.Builder
	for _, c := range g.board {
		if c == Placeholder {
			b.WriteString(" _ ")
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func (g *Game) hasPlaceholder() bool {
	for _, c := range g.board {
		if c == Placeholder {
			return true
		}
	}
	return false
}

// idx maps an ASCII letter of either case to 0..25, or -1.
func idx(r rune) int {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A')
	case r >= 'a' && r <= 'z':
		return int(r - 'a')
	}
	return -1
}
