// internal/history/history.go
//
// SQLite persistence for finished games and solver sessions.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout,
//     foreign keys).
//   - Applying embedded migrations (idempotent, recorded in
//     _migrations), so the binary needs no schema files on disk.
//   - Insert/query helpers for the two result tables.
//
// Writes are best-effort from the caller's point of view: the HTTP
// layer logs failures and keeps serving.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// migrations run in order, once each, tracked by name.
var migrations = []struct {
	name string
	stmt string
}{
	{
		name: "001_games",
		stmt: `CREATE TABLE IF NOT EXISTS games (
			id          TEXT PRIMARY KEY,
			answer      TEXT NOT NULL,
			word_len    INTEGER NOT NULL,
			guesses     INTEGER NOT NULL,
			daily       INTEGER NOT NULL DEFAULT 0,
			started_at  TEXT NOT NULL,
			finished_at TEXT NOT NULL
		);`,
	},
	{
		name: "002_solves",
		stmt: `CREATE TABLE IF NOT EXISTS solves (
			id          TEXT PRIMARY KEY,
			word_len    INTEGER NOT NULL,
			rounds      INTEGER NOT NULL,
			remaining   INTEGER NOT NULL,
			solved      INTEGER NOT NULL,
			answer      TEXT NOT NULL,
			started_at  TEXT NOT NULL,
			finished_at TEXT NOT NULL
		);`,
	},
}

// Open opens (and creates if missing) the SQLite database at dsn,
// sets pragmas, and applies migrations.
func Open(dsn string) (*sql.DB, error) {
	// Ensure directory exists for ./data/history.db, etc.
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate applies any unapplied embedded migrations.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}
	for _, m := range migrations {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, m.name).Scan(&done)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.name, err)
		}
		log.Info().Str("migration", m.name).Msg("applied")
	}
	return nil
}

// GameResult is one finished hidden-word game.
type GameResult struct {
	ID         string    `json:"id"`
	Answer     string    `json:"answer"`
	WordLen    int       `json:"wordLen"`
	Guesses    int       `json:"guesses"`
	Daily      bool      `json:"daily"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// SolveResult is one finished solver session.
type SolveResult struct {
	ID         string    `json:"id"`
	WordLen    int       `json:"wordLen"`
	Rounds     int       `json:"rounds"`
	Remaining  int       `json:"remaining"`
	Solved     bool      `json:"solved"`
	Answer     string    `json:"answer"` // the word the solver converged on, if any
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// InsertGame records a finished game. Duplicate IDs are ignored.
func InsertGame(ctx context.Context, db *sql.DB, r GameResult) error {
	_, err := db.ExecContext(ctx, `
		INSERT OR IGNORE INTO games
			(id, answer, word_len, guesses, daily, started_at, finished_at)
		VALUES (?,?,?,?,?,?,?)`,
		r.ID, r.Answer, r.WordLen, r.Guesses, boolInt(r.Daily),
		fmtTime(r.StartedAt), fmtTime(r.FinishedAt),
	)
	return err
}

// InsertSolve records a finished solver session. Duplicate IDs are ignored.
func InsertSolve(ctx context.Context, db *sql.DB, r SolveResult) error {
	_, err := db.ExecContext(ctx, `
		INSERT OR IGNORE INTO solves
			(id, word_len, rounds, remaining, solved, answer, started_at, finished_at)
		VALUES (?,?,?,?,?,?,?,?)`,
		r.ID, r.WordLen, r.Rounds, r.Remaining, boolInt(r.Solved), r.Answer,
		fmtTime(r.StartedAt), fmtTime(r.FinishedAt),
	)
	return err
}

// RecentGames fetches the most recently finished games, newest first.
func RecentGames(ctx context.Context, db *sql.DB, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.QueryContext(ctx, `
		SELECT id, answer, word_len, guesses, daily, started_at, finished_at
		FROM games ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]GameResult, 0, limit)
	for rows.Next() {
		var r GameResult
		var daily int
		var started, finished string
		if err := rows.Scan(&r.ID, &r.Answer, &r.WordLen, &r.Guesses, &daily, &started, &finished); err != nil {
			return nil, err
		}
		r.Daily = daily != 0
		r.StartedAt = parseTime(started)
		r.FinishedAt = parseTime(finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

// RecentSolves fetches the most recently finished solver sessions.
func RecentSolves(ctx context.Context, db *sql.DB, limit int) ([]SolveResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.QueryContext(ctx, `
		SELECT id, word_len, rounds, remaining, solved, answer, started_at, finished_at
		FROM solves ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SolveResult, 0, limit)
	for rows.Next() {
		var r SolveResult
		var solved int
		var started, finished string
		if err := rows.Scan(&r.ID, &r.WordLen, &r.Rounds, &r.Remaining, &solved, &r.Answer, &started, &finished); err != nil {
			return nil, err
		}
		r.Solved = solved != 0
		r.StartedAt = parseTime(started)
		r.FinishedAt = parseTime(finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func fmtTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
