package db

import (
	"time"

	"gorm.io/gorm/clause"
)

// RegisterPlayer resolves a display name to a stable identity. Registering a
// name that already exists refreshes last_seen instead of creating a second
// row; either way the surviving row is returned.
func (s *Store) RegisterPlayer(name string) (Player, error) {
	name = normalizeText(name, maxNameLength)
	if len([]rune(name)) < minNameLength {
		return Player{}, validationErrorf("name must be at least %d characters", minNameLength)
	}
	return s.upsertPlayer(name)
}

// upsertPlayer is a single atomic insert-or-refresh-last-seen keyed on name,
// with RETURNING so no second read can race a concurrent registration.
func (s *Store) upsertPlayer(name string) (Player, error) {
	now := time.Now().UTC()
	player := Player{Name: name, CreatedAt: now, LastSeen: now}
	err := s.conn.Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]any{"last_seen": now}),
		},
		clause.Returning{},
	).Create(&player).Error
	if err != nil {
		return Player{}, wrapConstraint(err)
	}
	return player, nil
}
