package db

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AppendEvent records one telemetry datum for an existing session. The
// payload is stored verbatim; events keep flowing after close so late client
// flushes are not dropped.
func (s *Store) AppendEvent(sessionID int, eventType string, value int, payload json.RawMessage) error {
	if sessionID <= 0 {
		return validationErrorf("session_id must be positive")
	}
	eventType = normalizeText(eventType, maxEventTypeLength)
	if eventType == "" {
		return validationErrorf("event_type is required")
	}
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}

	var session GameSession
	if err := s.conn.Select("id").First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{What: "session", ID: uint(sessionID)}
		}
		return err
	}

	event := GameEvent{
		SessionID: session.ID,
		Type:      eventType,
		Value:     value,
		Payload:   datatypes.JSON(payload),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.conn.Create(&event).Error; err != nil {
		return wrapConstraint(err)
	}
	return nil
}
