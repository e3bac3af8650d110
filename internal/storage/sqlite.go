// Package storage provides SQLite-based persistence for world
// snapshots and finished runs. Uses the pure-Go modernc.org/sqlite
// driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SnapshotCell is one persisted cell entry.
type SnapshotCell struct {
	Value     int
	Collected bool
}

// RunEntry records one finished game: the final held token, whether
// the target was reached, and how long the run took.
type RunEntry struct {
	ID        int64
	World     string
	Held      int
	Won       bool
	Duration  int // seconds
	CreatedAt time.Time
}

// WorldStats aggregates the run history of one world.
type WorldStats struct {
	World    string
	Runs     int
	Wins     int
	BestHeld int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			world TEXT NOT NULL,
			cell_key TEXT NOT NULL,
			value INTEGER NOT NULL,
			collected INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (world, cell_key)
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_world ON snapshots(world);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			world TEXT NOT NULL,
			held INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_world ON runs(world);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSnapshot replaces the stored snapshot of the named world with
// the given cell entries, atomically.
func (s *Store) SaveSnapshot(world string, cells map[string]SnapshotCell) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM snapshots WHERE world = ?", world); err != nil {
		return fmt.Errorf("storage: cannot clear previous snapshot: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO snapshots (world, cell_key, value, collected) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare snapshot insert: %w", err)
	}
	defer stmt.Close()

	for key, cell := range cells {
		collected := 0
		if cell.Collected {
			collected = 1
		}
		if _, err := stmt.Exec(world, key, cell.Value, collected); err != nil {
			return fmt.Errorf("storage: cannot insert snapshot cell %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot retrieves the stored snapshot of the named world.
// An absent world returns an empty map and no error.
func (s *Store) LoadSnapshot(world string) (map[string]SnapshotCell, error) {
	rows, err := s.db.Query(
		"SELECT cell_key, value, collected FROM snapshots WHERE world = ?",
		world,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshot: %w", err)
	}
	defer rows.Close()

	cells := make(map[string]SnapshotCell)
	for rows.Next() {
		var key string
		var value, collected int
		if err := rows.Scan(&key, &value, &collected); err != nil {
			return nil, fmt.Errorf("storage: cannot scan snapshot row: %w", err)
		}
		cells[key] = SnapshotCell{Value: value, Collected: collected != 0}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return cells, nil
}

// ClearSnapshot deletes the stored snapshot of the named world.
func (s *Store) ClearSnapshot(world string) error {
	_, err := s.db.Exec("DELETE FROM snapshots WHERE world = ?", world)
	if err != nil {
		return fmt.Errorf("storage: cannot clear snapshot: %w", err)
	}
	return nil
}

// WorldNames lists the worlds that have a stored snapshot or run.
func (s *Store) WorldNames() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT world FROM snapshots
		 UNION SELECT world FROM runs
		 ORDER BY world`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query worlds: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan world name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteWorld removes the snapshot and run history of a world.
func (s *Store) DeleteWorld(world string) error {
	if _, err := s.db.Exec("DELETE FROM snapshots WHERE world = ?", world); err != nil {
		return fmt.Errorf("storage: cannot delete world snapshot: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE world = ?", world); err != nil {
		return fmt.Errorf("storage: cannot delete world runs: %w", err)
	}
	return nil
}

// SaveRun records a finished game. Returns the ID of the inserted record.
func (s *Store) SaveRun(world string, held int, won bool, durationSecs int) (int64, error) {
	wonInt := 0
	if won {
		wonInt = 1
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (world, held, won, duration_secs) VALUES (?, ?, ?, ?)",
		world, held, wonInt, durationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns retrieves the most recent finished games for a world.
func (s *Store) RecentRuns(world string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, world, held, won, duration_secs, created_at
		 FROM runs
		 WHERE world = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		world, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var won int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.World, &e.Held, &won, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run row: %w", err)
		}
		e.Won = won != 0

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Stats aggregates the run history of a world.
func (s *Store) Stats(world string) (*WorldStats, error) {
	stats := &WorldStats{World: world}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(held), 0)
		 FROM runs WHERE world = ?`,
		world,
	).Scan(&stats.Runs, &stats.Wins, &stats.BestHeld)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get world stats: %w", err)
	}
	return stats, nil
}
