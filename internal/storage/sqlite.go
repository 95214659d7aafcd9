// Package storage provides SQLite-based history logging for the study
// tracker: completed study sessions, resolved game rounds, and shop
// purchases. Session state itself is never persisted or restored; this
// is an append-only log read by the stats views.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for history logging.
type Store struct {
	db *sql.DB
}

// StudySessionEntry is one completed and claimed study countdown.
type StudySessionEntry struct {
	ID        int64
	Minutes   int
	Earned    int
	CreatedAt time.Time
}

// GameRoundEntry is one resolved wager.
type GameRoundEntry struct {
	ID        int64
	GameID    string
	Bet       int
	Won       bool
	Delta     int
	CreatedAt time.Time
}

// PurchaseEntry is one shop purchase.
type PurchaseEntry struct {
	ID        int64
	Category  string
	Item      string
	Price     int
	CreatedAt time.Time
}

// GameStats aggregates the rounds played for one game.
type GameStats struct {
	GameID string
	Rounds int
	Wins   int
	Net    int
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
		CREATE TABLE IF NOT EXISTS study_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			minutes INTEGER NOT NULL,
			earned INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS game_rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			bet INTEGER NOT NULL,
			won INTEGER NOT NULL,
			delta INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_game_rounds_game_id ON game_rounds(game_id);

		CREATE TABLE IF NOT EXISTS purchases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT NOT NULL,
			item TEXT NOT NULL,
			price INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// LogStudySession records a claimed study session.
func (s *Store) LogStudySession(minutes, earned int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO study_sessions (minutes, earned) VALUES (?, ?)",
		minutes, earned,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot log study session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LogGameRound records a resolved wager.
func (s *Store) LogGameRound(gameID string, bet int, won bool, delta int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO game_rounds (game_id, bet, won, delta) VALUES (?, ?, ?, ?)",
		gameID, bet, won, delta,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot log game round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LogPurchase records a shop purchase.
func (s *Store) LogPurchase(category, item string, price int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO purchases (category, item, price) VALUES (?, ?, ?)",
		category, item, price,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot log purchase: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// StudySessions retrieves the most recent study sessions, newest first.
func (s *Store) StudySessions(limit int) ([]StudySessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, minutes, earned, created_at
		 FROM study_sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query study sessions: %w", err)
	}
	defer rows.Close()

	var entries []StudySessionEntry
	for rows.Next() {
		var e StudySessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Minutes, &e.Earned, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// TotalStudyMinutes returns the sum of all logged study minutes.
func (s *Store) TotalStudyMinutes() (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRow("SELECT SUM(minutes) FROM study_sessions").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query total study minutes: %w", err)
	}
	if !total.Valid {
		return 0, nil
	}
	return int(total.Int64), nil
}

// GameRoundStats aggregates rounds, wins, and net winnings per game.
func (s *Store) GameRoundStats() ([]GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), SUM(won), SUM(delta)
		 FROM game_rounds
		 GROUP BY game_id
		 ORDER BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game stats: %w", err)
	}
	defer rows.Close()

	var stats []GameStats
	for rows.Next() {
		var g GameStats
		if err := rows.Scan(&g.GameID, &g.Rounds, &g.Wins, &g.Net); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats = append(stats, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// Purchases retrieves all logged purchases, newest first.
func (s *Store) Purchases() ([]PurchaseEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, category, item, price, created_at
		 FROM purchases
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query purchases: %w", err)
	}
	defer rows.Close()

	var entries []PurchaseEntry
	for rows.Next() {
		var e PurchaseEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Category, &e.Item, &e.Price, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
