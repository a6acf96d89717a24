// Package storage keeps the leaderboard of finished games.
// The database lives in memory for the lifetime of the process; scores are
// shared between every local or SSH session but nothing survives a restart.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Leaderboard records scores in an in-memory SQLite database.
// It is safe for concurrent use.
type Leaderboard struct {
	db *sql.DB
}

// Entry is a single leaderboard row.
type Entry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	Waves     int // Waves cleared during the game
	CreatedAt time.Time
}

// Stats aggregates all entries of one game.
type Stats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// OpenLeaderboard creates an empty in-memory leaderboard.
func OpenLeaderboard() (*Leaderboard, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every new connection to :memory: is a separate empty database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	lb := &Leaderboard{db: db}
	if err := lb.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return lb, nil
}

// migrate creates the schema.
func (lb *Leaderboard) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			waves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
	`

	_, err := lb.db.Exec(schema)
	return err
}

// Close releases the database. All entries are lost.
func (lb *Leaderboard) Close() error {
	if lb.db != nil {
		return lb.db.Close()
	}
	return nil
}

// Record stores a finished game and returns its ID.
func (lb *Leaderboard) Record(gameID, player string, score, waves int) (int64, error) {
	if player == "" {
		player = "anonymous"
	}

	result, err := lb.db.Exec(
		"INSERT INTO scores (game_id, player, score, waves) VALUES (?, ?, ?, ?)",
		gameID, player, score, waves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Top returns the best entries for a game, highest first.
// Equal scores keep the order in which they were recorded.
func (lb *Leaderboard) Top(gameID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := lb.db.Query(
		`SELECT id, game_id, player, score, waves, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.Waves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best score for a game, or 0 if nobody played it.
func (lb *Leaderboard) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := lb.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats returns aggregated statistics for a game.
func (lb *Leaderboard) Stats(gameID string) (Stats, error) {
	stats := Stats{GameID: gameID}
	var lastPlayed any

	err := lb.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.LastPlayed = parseTimestamp(lastPlayed)
	return stats, nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
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
