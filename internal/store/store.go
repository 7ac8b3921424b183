// Package store keeps finished rounds in SQLite for the current process.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/breaker/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store wraps SQLite access for round results.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database and applies migrations.
func Open(path string) (*Store, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			score INTEGER NOT NULL,
			hits INTEGER NOT NULL,
			shots INTEGER NOT NULL,
			background TEXT NOT NULL,
			duration_sec INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRound stores a finished round.
func (s *Store) InsertRound(ctx context.Context, r model.RoundResult) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (started_at, ended_at, score, hits, shots, background, duration_sec)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.StartedAt.Format(time.RFC3339Nano),
		r.EndedAt.Format(time.RFC3339Nano),
		r.Score,
		r.Hits,
		r.Shots,
		r.Background,
		r.DurationSec,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRounds returns rounds in the order they finished. last > 0 keeps only
// the most recent ones.
func (s *Store) ListRounds(ctx context.Context, last int) ([]model.RoundResult, error) {
	limit := -1
	if last > 0 {
		limit = last
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT started_at, ended_at, score, hits, shots, background, duration_sec FROM (
			SELECT id, started_at, ended_at, score, hits, shots, background, duration_sec
			FROM rounds
			ORDER BY id DESC
			LIMIT ?
		) ORDER BY id ASC`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var rounds []model.RoundResult
	for rows.Next() {
		var r model.RoundResult
		var startedAt, endedAt string
		if err := rows.Scan(&startedAt, &endedAt, &r.Score, &r.Hits, &r.Shots, &r.Background, &r.DurationSec); err != nil {
			return nil, err
		}
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if r.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rounds, nil
}

// BestScore returns the highest score and how many rounds were recorded.
func (s *Store) BestScore(ctx context.Context) (best int, rounds int, err error) {
	row := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(score), 0), COUNT(*) FROM rounds`)
	if err := row.Scan(&best, &rounds); err != nil {
		return 0, 0, err
	}
	return best, rounds, nil
}
