package db

import (
	"encoding/json"
	"testing"
)

func TestAppendEventOnOpenSession(t *testing.T) {
	store := newTestStore(t)
	player := mustRegister(t, store, "Hero")
	sessionID := mustStart(t, store, int(player.ID), "survival")

	payload := json.RawMessage(`{"weapon":"pickaxe","combo":3}`)
	if err := store.AppendEvent(int(sessionID), "hit", 10, payload); err != nil {
		t.Fatalf("append event: %v", err)
	}

	var event GameEvent
	if err := store.conn.Where("session_id = ?", sessionID).First(&event).Error; err != nil {
		t.Fatalf("load event: %v", err)
	}
	if event.Type != "hit" || event.Value != 10 {
		t.Fatalf("unexpected event %q value=%d", event.Type, event.Value)
	}
	var decoded map[string]any
	if err := json.Unmarshal(event.Payload, &decoded); err != nil {
		t.Fatalf("payload not stored as JSON: %v", err)
	}
	if decoded["weapon"] != "pickaxe" {
		t.Fatalf("payload not stored verbatim: %v", decoded)
	}
}

func TestAppendEventDefaultsPayloadToEmptyObject(t *testing.T) {
	store := newTestStore(t)
	player := mustRegister(t, store, "Hero")
	sessionID := mustStart(t, store, int(player.ID), "survival")

	if err := store.AppendEvent(int(sessionID), "pickup", 1, nil); err != nil {
		t.Fatalf("append event: %v", err)
	}
	var event GameEvent
	if err := store.conn.Where("session_id = ?", sessionID).First(&event).Error; err != nil {
		t.Fatalf("load event: %v", err)
	}
	if string(event.Payload) != "{}" {
		t.Fatalf("expected empty object payload, got %q", event.Payload)
	}
}

// Events are not gated on session state; a late flush after close must land.
func TestAppendEventAfterClose(t *testing.T) {
	store := newTestStore(t)
	player := mustRegister(t, store, "Hero")
	sessionID := mustStart(t, store, int(player.ID), "survival")

	if err := store.CloseSession(int(sessionID), SessionOutcome{Result: "defeat"}); err != nil {
		t.Fatalf("close session: %v", err)
	}
	if err := store.AppendEvent(int(sessionID), "death_recap", 0, nil); err != nil {
		t.Fatalf("append after close: %v", err)
	}
}

func TestAppendEventValidation(t *testing.T) {
	store := newTestStore(t)
	player := mustRegister(t, store, "Hero")
	sessionID := mustStart(t, store, int(player.ID), "survival")

	if err := store.AppendEvent(0, "hit", 1, nil); !IsValidation(err) {
		t.Fatalf("expected validation error for session_id 0, got %v", err)
	}
	if err := store.AppendEvent(int(sessionID), "   ", 1, nil); !IsValidation(err) {
		t.Fatalf("expected validation error for blank type, got %v", err)
	}
	if err := store.AppendEvent(9999, "hit", 1, nil); !IsNotFound(err) {
		t.Fatalf("expected not-found error for unknown session, got %v", err)
	}
}
