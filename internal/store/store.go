// internal/store/store.go
//
// Round ledger: a record of every finished round and the running tally
// shown in the window footer.
//
// Implementations:
//   - memory (this package): slice-backed, gone when the process exits.
//   - sqlite (sqlite.go): mattn/go-sqlite3, schema applied from embedded migrations.

package store

import (
	"context"
	"time"
)

// Outcome is how a recorded round ended.
type Outcome string

const (
	OutcomeWon       Outcome = "won"
	OutcomeLost      Outcome = "lost"
	OutcomeAbandoned Outcome = "abandoned" // restarted mid-round
)

// Result is a single finished round.
type Result struct {
	Word       string
	Misses     int
	Outcome    Outcome
	FinishedAt time.Time
}

// Tally summarizes recorded rounds. Abandoned rounds are not counted.
type Tally struct {
	Played int // won + lost
	Won    int
	Lost   int
	Streak int // consecutive wins ending at the latest won/lost round
}

// Store defines the persistence interface for round results.
type Store interface {
	// Record appends a finished round.
	Record(ctx context.Context, r Result) error

	// Tally summarizes everything recorded so far.
	Tally(ctx context.Context) (Tally, error)

	// Close releases any underlying resources.
	Close() error
}
