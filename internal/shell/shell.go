// internal/shell/shell.go
//
// Presentation shell for the hangman window.
// Responsibilities:
//   - Own the Game and translate input capabilities into game operations.
//   - Pick the status banner, audio cue and enabled controls for each state.
//   - Ask for confirmation before discarding a round in progress.
//   - Record finished rounds in the ledger and keep the footer tally fresh.
//
// The shell has no rendering or audio code of its own; the window runtime
// reads View() every frame and supplies a Cues implementation.

package shell

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sqrtxander/hangman/internal/game"
	"github.com/sqrtxander/hangman/internal/store"
)

// Handler is the capability set the window runtime invokes on user input.
type Handler interface {
	OnLetter(letter rune)
	OnNewRound()
	OnMuteToggle()
}

// Confirmer answers the "restart the game?" question.
type Confirmer interface {
	OnConfirm(yes bool)
}

// Input is everything a window runtime can send to the shell.
type Input interface {
	Handler
	Confirmer
}

// Cue identifies one of the four sound effects.
type Cue int

const (
	CueCorrect Cue = iota
	CueIncorrect
	CueWin
	CueLose
)

func (c Cue) String() string {
	switch c {
	case CueCorrect:
		return "correct"
	case CueIncorrect:
		return "incorrect"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Cues plays sound effects. Play is fire-and-forget.
type Cues interface {
	Play(c Cue)
	SetMuted(muted bool)
}

// Banner texts.
const (
	BannerWelcome = "Welcome to Hangman"
	BannerPlaying = "Pick a letter"
	BannerWon     = "You win!"
	BannerLostFmt = "You lost. The word was %s"

	ConfirmTitle   = "New game"
	ConfirmMessage = "Are you sure you want to restart the game?"
)

const ledgerTimeout = 2 * time.Second

// Shell owns the game for the lifetime of the window.
type Shell struct {
	game   *game.Game
	cues   Cues
	ledger store.Store
	log    zerolog.Logger
	now    func() time.Time

	muted      bool
	confirming bool
	tally      store.Tally
}

// Option customizes a Shell.
type Option func(*Shell)

// WithMuted sets the initial mute state.
func WithMuted(muted bool) Option {
	return func(s *Shell) { s.muted = muted }
}

// WithClock overrides the time source used for ledger timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Shell) { s.now = now }
}

// New wires a shell around an idle game.
func New(g *game.Game, cues Cues, ledger store.Store, logger zerolog.Logger, opts ...Option) *Shell {
	s := &Shell{
		game:   g,
		cues:   cues,
		ledger: ledger,
		log:    logger.With().Str("component", "shell").Logger(),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.cues.SetMuted(s.muted)
	s.refreshTally()
	return s
}

// OnLetter forwards a guess to the game and reacts to its outcome.
func (s *Shell) OnLetter(letter rune) {
	if s.confirming {
		return
	}
	out := s.game.Guess(letter)
	if out == game.OutcomeIgnored {
		return
	}
	s.log.Debug().
		Str("letter", string(letter)).
		Str("outcome", string(out)).
		Int("misses", s.game.Misses()).
		Msg("guess")

	switch out {
	case game.OutcomeHit:
		s.cues.Play(CueCorrect)
	case game.OutcomeMiss:
		s.cues.Play(CueIncorrect)
	case game.OutcomeWon:
		s.cues.Play(CueWin)
		s.record(store.OutcomeWon)
	case game.OutcomeLost:
		s.cues.Play(CueLose)
		s.record(store.OutcomeLost)
	}
}

// OnNewRound starts a round right away unless one is in progress, in which
// case it opens the confirmation dialog.
func (s *Shell) OnNewRound() {
	if s.confirming {
		return
	}
	if s.game.Status() == game.StatusInProgress {
		s.confirming = true
		return
	}
	s.startRound()
}

// OnConfirm closes the dialog; yes discards the current round.
func (s *Shell) OnConfirm(yes bool) {
	if !s.confirming {
		return
	}
	s.confirming = false
	if !yes {
		return
	}
	s.record(store.OutcomeAbandoned)
	s.startRound()
}

// OnMuteToggle silences or restores every cue.
func (s *Shell) OnMuteToggle() {
	s.muted = !s.muted
	s.cues.SetMuted(s.muted)
	s.log.Debug().Bool("muted", s.muted).Msg("mute toggled")
}

func (s *Shell) startRound() {
	s.game.Start()
	s.log.Info().Int("length", len(s.game.Word())).Msg("round started")
	s.log.Debug().Str("word", s.game.Word()).Msg("secret word")
}

// record stores the current round; ledger failures never interrupt play.
func (s *Shell) record(o store.Outcome) {
	r := store.Result{
		Word:       s.game.Word(),
		Misses:     s.game.Misses(),
		Outcome:    o,
		FinishedAt: s.now(),
	}
	s.log.Info().Str("outcome", string(o)).Str("word", r.Word).Int("misses", r.Misses).Msg("round finished")

	ctx, cancel := context.WithTimeout(context.Background(), ledgerTimeout)
	defer cancel()
	if err := s.ledger.Record(ctx, r); err != nil {
		s.log.Warn().Err(err).Msg("record round")
		return
	}
	s.refreshTally()
}

func (s *Shell) refreshTally() {
	ctx, cancel := context.WithTimeout(context.Background(), ledgerTimeout)
	defer cancel()
	t, err := s.ledger.Tally(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("load tally")
		return
	}
	s.tally = t
}

// View is a render-ready snapshot of the shell.
type View struct {
	Status  game.Status
	Banner  string
	Stage   int      // illustration index, 0..game.MaxMisses
	Board   string   // masked word as displayed
	Letters [26]bool // enabled letter buttons, A..Z
	Muted   bool
	Confirm bool // restart dialog open
	Tally   store.Tally
}

// View snapshots the state the window needs to draw a frame.
func (s *Shell) View() View {
	v := View{
		Status:  s.game.Status(),
		Stage:   s.game.Stage(),
		Board:   s.game.BoardString(),
		Muted:   s.muted,
		Confirm: s.confirming,
		Tally:   s.tally,
	}
	switch v.Status {
	case game.StatusIdle:
		v.Banner = BannerWelcome
	case game.StatusInProgress:
		v.Banner = BannerPlaying
	case game.StatusWon:
		v.Banner = BannerWon
	case game.StatusLost:
		v.Banner = fmt.Sprintf(BannerLostFmt, s.game.Word())
	}
	for i, c := range game.Alphabet {
		v.Letters[i] = s.game.Available(c)
	}
	return v
}
