package db

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// SessionOutcome carries the final counters recorded when a session closes.
type SessionOutcome struct {
	Result          string
	Score           int
	Crystals        int
	EnemiesDefeated int
	SurvivedSeconds int
	MaxCombo        int
}

// StartSession opens a new session for an existing player. Counters start at
// zero and result stays null until the session is closed.
func (s *Store) StartSession(playerID int, mode string) (uint, error) {
	if playerID <= 0 {
		return 0, validationErrorf("player_id must be positive")
	}
	mode = normalizeText(mode, maxModeLength)
	if mode == "" {
		mode = defaultMode
	}

	var player Player
	if err := s.conn.Select("id").First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &NotFoundError{What: "player", ID: uint(playerID)}
		}
		return 0, err
	}

	session := GameSession{
		PlayerID:  player.ID,
		Mode:      mode,
		StartedAt: time.Now().UTC(),
	}
	if err := s.conn.Create(&session).Error; err != nil {
		return 0, wrapConstraint(err)
	}
	return session.ID, nil
}

// CloseSession stamps ended_at and overwrites the summary counters wholesale.
// A session can be closed again: the later call replaces the earlier outcome
// and timestamp, which lets callers correct a mis-submitted score.
func (s *Store) CloseSession(sessionID int, outcome SessionOutcome) error {
	if sessionID <= 0 {
		return validationErrorf("session_id must be positive")
	}
	result := normalizeText(outcome.Result, maxResultLength)
	if result == "" {
		result = defaultResult
	}

	res := s.conn.Model(&GameSession{}).Where("id = ?", sessionID).Updates(map[string]any{
		"ended_at":         time.Now().UTC(),
		"result":           result,
		"score":            outcome.Score,
		"crystals":         outcome.Crystals,
		"enemies_defeated": outcome.EnemiesDefeated,
		"survived_seconds": outcome.SurvivedSeconds,
		"max_combo":        outcome.MaxCombo,
	})
	if res.Error != nil {
		return wrapConstraint(res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{What: "session", ID: uint(sessionID)}
	}
	return nil
}
