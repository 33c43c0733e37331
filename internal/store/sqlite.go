// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Recording rounds and computing the tally.
//
// The connection pool is pinned to one connection: the game writes from a
// single goroutine, and ":memory:" databases are per-connection.

package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrations embed.FS

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the ledger at dsn and applies
// migrations.
func OpenSQLite(dsn string) (Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db, migrations); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func openDB(dsn string) (*sql.DB, error) {
	inMemory := strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")

	// Ensure directory exists for ./data/rounds.db, etc.
	if !inMemory && !strings.HasPrefix(dsn, "file:") {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", dsn+sep+"_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	return db, nil
}

// migrate applies every *.sql file of fsys in lexical order, each inside its
// own transaction, skipping files already listed in _migrations.
func migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

func (s *sqliteStore) Record(ctx context.Context, r Result) error {
	at := r.FinishedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (word, misses, outcome, finished_at) VALUES (?, ?, ?, ?)`,
		r.Word, r.Misses, string(r.Outcome), at.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *sqliteStore) Tally(ctx context.Context) (Tally, error) {
	var t Tally
	if err := s.db.QueryRowContext(ctx, `
        SELECT
            COALESCE(SUM(outcome = 'won'), 0),
            COALESCE(SUM(outcome = 'lost'), 0)
        FROM rounds`,
	).Scan(&t.Won, &t.Lost); err != nil {
		return Tally{}, err
	}
	t.Played = t.Won + t.Lost

	// Streak: wins since the most recent loss.
	if err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(1) FROM rounds
        WHERE outcome = 'won'
          AND id > COALESCE((SELECT MAX(id) FROM rounds WHERE outcome = 'lost'), 0)`,
	).Scan(&t.Streak); err != nil {
		return Tally{}, err
	}
	return t, nil
}

func (s *sqliteStore) Close() error { return s.db.Close() }
