package db

import (
	"time"

	"gorm.io/datatypes"
)

// Player is one registered identity. Rows are created on first registration
// and only ever touched again to refresh LastSeen; they are never deleted.
type Player struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"size:40;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time     `gorm:"not null" json:"created_at"`
	LastSeen  time.Time     `gorm:"not null" json:"last_seen"`
	Sessions  []GameSession `json:"-"`
}

// GameSession is one play-through. EndedAt and Result are null while the
// session is open and are set together on close; the counters start at zero
// and are overwritten wholesale when the session closes.
type GameSession struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	PlayerID        uint        `gorm:"index;not null" json:"player_id"`
	Mode            string      `gorm:"size:20;not null;default:'survival'" json:"mode"`
	StartedAt       time.Time   `gorm:"not null" json:"started_at"`
	EndedAt         *time.Time  `json:"ended_at"`
	Result          *string     `gorm:"size:20" json:"result"`
	Score           int         `gorm:"not null;default:0" json:"score"`
	Crystals        int         `gorm:"not null;default:0" json:"crystals"`
	EnemiesDefeated int         `gorm:"not null;default:0" json:"enemies_defeated"`
	SurvivedSeconds int         `gorm:"not null;default:0" json:"survived_seconds"`
	MaxCombo        int         `gorm:"not null;default:0" json:"max_combo"`
	Events          []GameEvent `gorm:"foreignKey:SessionID" json:"-"`
}

// GameEvent is a single telemetry datum emitted during a session. Events are
// append-only and accepted whether the owning session is open or closed.
type GameEvent struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SessionID uint           `gorm:"index;not null" json:"session_id"`
	Type      string         `gorm:"size:40;not null" json:"event_type"`
	Value     int            `gorm:"not null;default:0" json:"event_value"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}
