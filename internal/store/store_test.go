package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
}

func record(t *testing.T, s Store, outcomes ...Outcome) {
	t.Helper()
	for i, o := range outcomes {
		err := s.Record(context.Background(), Result{
			Word:       "WORD",
			Misses:     i % 10,
			Outcome:    o,
			FinishedAt: time.Date(2026, 1, 1, 0, i, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}
}

func TestStore_Tally(t *testing.T) {
	cases := []struct {
		name     string
		outcomes []Outcome
		want     Tally
	}{
		{"empty", nil, Tally{}},
		{"single win", []Outcome{OutcomeWon}, Tally{Played: 1, Won: 1, Streak: 1}},
		{"single loss", []Outcome{OutcomeLost}, Tally{Played: 1, Lost: 1}},
		{
			"streak resets on loss",
			[]Outcome{OutcomeWon, OutcomeWon, OutcomeLost, OutcomeWon},
			Tally{Played: 4, Won: 3, Lost: 1, Streak: 1},
		},
		{
			"abandoned rounds ignored",
			[]Outcome{OutcomeWon, OutcomeAbandoned, OutcomeWon, OutcomeAbandoned},
			Tally{Played: 2, Won: 2, Streak: 2},
		},
		{
			"loss last",
			[]Outcome{OutcomeWon, OutcomeWon, OutcomeWon, OutcomeLost},
			Tally{Played: 4, Won: 3, Lost: 1, Streak: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for name, s := range openStores(t) {
				record(t, s, tc.outcomes...)
				got, err := s.Tally(context.Background())
				require.NoError(t, err, name)
				assert.Equal(t, tc.want, got, name)
			}
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data", "rounds.db")

	s, err := OpenSQLite(dsn)
	require.NoError(t, err)
	record(t, s, OutcomeWon, OutcomeLost, OutcomeWon)
	require.NoError(t, s.Close())

	// Reopening must not re-run migrations or lose rows.
	s, err = OpenSQLite(dsn)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Tally(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Tally{Played: 3, Won: 2, Lost: 1, Streak: 1}, got)
}

func TestSQLite_RejectsUnknownOutcome(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	err = s.Record(context.Background(), Result{Word: "CAT", Outcome: Outcome("draw")})
	assert.Error(t, err)
}

func TestSQLite_ZeroTimeDefaultsToNow(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Record(context.Background(), Result{Word: "CAT", Outcome: OutcomeWon}))

	var at string
	require.NoError(t, s.(*sqliteStore).db.QueryRow(`SELECT finished_at FROM rounds`).Scan(&at))
	ts, err := time.Parse(time.RFC3339, at)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}
