package db

import "time"

const (
	LeaderboardDefaultLimit = 12
	leaderboardMinLimit     = 5
	leaderboardMaxLimit     = 50

	HistoryDefaultLimit = 10
	historyMinLimit     = 5
	historyMaxLimit     = 40
)

// LeaderboardEntry is a closed session joined with its player's current name.
type LeaderboardEntry struct {
	ID              uint       `json:"id"`
	PlayerName      string     `json:"player_name"`
	Result          string     `json:"result"`
	Score           int        `json:"score"`
	Crystals        int        `json:"crystals"`
	EnemiesDefeated int        `json:"enemies_defeated"`
	SurvivedSeconds int        `json:"survived_seconds"`
	MaxCombo        int        `json:"max_combo"`
	EndedAt         *time.Time `json:"ended_at"`
}

// HistoryEntry is one of a player's sessions, open or closed.
type HistoryEntry struct {
	ID              uint       `json:"id"`
	Mode            string     `json:"mode"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
	Result          *string    `json:"result"`
	Score           int        `json:"score"`
	Crystals        int        `json:"crystals"`
	EnemiesDefeated int        `json:"enemies_defeated"`
	SurvivedSeconds int        `json:"survived_seconds"`
	MaxCombo        int        `json:"max_combo"`
}

// Stats are four independent full-table counts. Each count is its own
// statement, so a write landing between two of them can show up in one total
// and not another.
type Stats struct {
	Players           int64 `json:"players"`
	Sessions          int64 `json:"sessions"`
	CompletedSessions int64 `json:"completed_sessions"`
	Events            int64 `json:"events"`
}

// Leaderboard returns closed sessions ranked by score, survival time as the
// tie-break. The limit is clamped to [5, 50].
func (s *Store) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	limit = clampLimit(limit, leaderboardMinLimit, leaderboardMaxLimit)
	entries := make([]LeaderboardEntry, 0, limit)
	err := s.conn.Model(&GameSession{}).
		Select("game_sessions.id, players.name AS player_name, game_sessions.result, game_sessions.score, game_sessions.crystals, game_sessions.enemies_defeated, game_sessions.survived_seconds, game_sessions.max_combo, game_sessions.ended_at").
		Joins("JOIN players ON players.id = game_sessions.player_id").
		Where("game_sessions.ended_at IS NOT NULL").
		Order("game_sessions.score DESC, game_sessions.survived_seconds DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// History returns a player's sessions most-recent-first. An unknown player
// yields an empty slice, not an error; unlike StartSession this path never
// checks that the player exists.
func (s *Store) History(playerID, limit int) ([]HistoryEntry, error) {
	limit = clampLimit(limit, historyMinLimit, historyMaxLimit)
	entries := make([]HistoryEntry, 0, limit)
	err := s.conn.Model(&GameSession{}).
		Select("id, mode, started_at, ended_at, result, score, crystals, enemies_defeated, survived_seconds, max_combo").
		Where("player_id = ?", playerID).
		Order("id DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GlobalStats counts players, sessions, completed sessions and events.
func (s *Store) GlobalStats() (Stats, error) {
	var stats Stats
	if err := s.conn.Model(&Player{}).Count(&stats.Players).Error; err != nil {
		return Stats{}, err
	}
	if err := s.conn.Model(&GameSession{}).Count(&stats.Sessions).Error; err != nil {
		return Stats{}, err
	}
	if err := s.conn.Model(&GameSession{}).Where("ended_at IS NOT NULL").Count(&stats.CompletedSessions).Error; err != nil {
		return Stats{}, err
	}
	if err := s.conn.Model(&GameEvent{}).Count(&stats.Events).Error; err != nil {
		return Stats{}, err
	}
	return stats, nil
}
