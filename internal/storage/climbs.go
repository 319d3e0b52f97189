package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ClimbRecord is one finished climb.
type ClimbRecord struct {
	ID              int64
	GameID          string
	Outcome         string // "won" or "lost"
	Score           int
	HeightRemaining float64
	Lives           int
	Elapsed         time.Duration
	CreatedAt       time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Wins       int
	FastestWin time.Duration // Zero when the game has never been won
	LastPlayed time.Time
}

// SaveClimb records a finished climb. Returns the ID of the inserted record.
func (s *Store) SaveClimb(rec ClimbRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO climbs
		 (game_id, outcome, score, height_remaining, lives, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.GameID,
		rec.Outcome,
		rec.Score,
		rec.HeightRemaining,
		rec.Lives,
		rec.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save climb: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentClimbs retrieves the most recent climbs for the given game, newest first.
func (s *Store) RecentClimbs(gameID string, limit int) ([]ClimbRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, outcome, score, height_remaining, lives, elapsed_ms, created_at
		 FROM climbs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query climbs: %w", err)
	}
	defer rows.Close()

	var records []ClimbRecord
	for rows.Next() {
		var rec ClimbRecord
		var elapsedMs int64
		var createdAt any

		if err := rows.Scan(
			&rec.ID,
			&rec.GameID,
			&rec.Outcome,
			&rec.Score,
			&rec.HeightRemaining,
			&rec.Lives,
			&elapsedMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		rec.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	// Get count, high, avg, total
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	// Wins and fastest win come from the climb history
	var fastest sql.NullInt64
	err = s.db.QueryRow(
		`SELECT COUNT(*), MIN(elapsed_ms)
		 FROM climbs WHERE game_id = ? AND outcome = 'won'`,
		gameID,
	).Scan(&stats.Wins, &fastest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get win stats: %w", err)
	}
	if fastest.Valid {
		stats.FastestWin = time.Duration(fastest.Int64) * time.Millisecond
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}
