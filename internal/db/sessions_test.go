package db

import (
	"strings"
	"testing"
)

func TestStartSessionValidatesPlayerID(t *testing.T) {
	store := newTestStore(t)

	for _, playerID := range []int{0, -3} {
		if _, err := store.StartSession(playerID, "survival"); !IsValidation(err) {
			t.Fatalf("expected validation error for player_id %d, got %v", playerID, err)
		}
	}
	if _, err := store.StartSession(999, "survival"); !IsNotFound(err) {
		t.Fatalf("expected not-found error for unknown player, got %v", err)
	}
}

func TestStartSessionDefaultsAndNormalizesMode(t *testing.T) {
	store := newTestStore(t)
	player := mustRegister(t, store, "Hero")

	sessionID := mustStart(t, store, int(player.ID), "   ")
	var session GameSession
	if err := store.conn.First(&session, sessionID).Error; err != nil {
		t.Fatalf("load session: %v", err)
	}
	if session.Mode != "survival" {
		t.Fatalf("expected default mode survival, got %q", session.Mode)
	}
	if session.EndedAt != nil || session.Result != nil {
		t.Fatal("new session must be open with no result")
	}
	if session.Score != 0 || session.Crystals != 0 || session.MaxCombo != 0 {
		t.Fatal("new session counters must start at zero")
	}

	longMode := mustStart(t, store, int(player.ID), strings.Repeat("m", 30))
	session = GameSession{}
	if err := store.conn.First(&session, longMode).Error; err != nil {
		t.Fatalf("load session: %v", err)
	}
	if len(session.Mode) != maxModeLength {
		t.Fatalf("expected mode truncated to %d chars, got %d", maxModeLength, len(session.Mode))
	}
}

func TestCloseSessionRecordsOutcome(t *testing.T) {
	store := newTestStore(t)
	player := mustRegister(t, store, "Hero")
	sessionID := mustStart(t, store, int(player.ID), "survival")

	err := store.CloseSession(int(sessionID), SessionOutcome{
		Result:          "victory",
		Score:           500,
		Crystals:        7,
		EnemiesDefeated: 3,
		SurvivedSeconds: 95,
		MaxCombo:        4,
	})
	if err != nil {
		t.Fatalf("close session: %v", err)
	}

	var session GameSession
	if err := store.conn.First(&session, sessionID).Error; err != nil {
		t.Fatalf("load session: %v", err)
	}
	if session.EndedAt == nil {
		t.Fatal("expected ended_at to be set")
	}
	if session.Result == nil || *session.Result != "victory" {
		t.Fatalf("expected result victory, got %v", session.Result)
	}
	if session.Score != 500 || session.SurvivedSeconds != 95 {
		t.Fatalf("expected counters 500/95, got %d/%d", session.Score, session.SurvivedSeconds)
	}
}

func TestCloseSessionDefaultsResult(t *testing.T) {
	store := newTestStore(t)
	player := mustRegister(t, store, "Hero")
	sessionID := mustStart(t, store, int(player.ID), "survival")

	if err := store.CloseSession(int(sessionID), SessionOutcome{Result: "   "}); err != nil {
		t.Fatalf("close session: %v", err)
	}
	var session GameSession
	if err := store.conn.First(&session, sessionID).Error; err != nil {
		t.Fatalf("load session: %v", err)
	}
	if session.Result == nil || *session.Result != "defeat" {
		t.Fatalf("expected default result defeat, got %v", session.Result)
	}
}

func TestCloseSessionValidatesID(t *testing.T) {
	store := newTestStore(t)

	if err := store.CloseSession(0, SessionOutcome{}); !IsValidation(err) {
		t.Fatalf("expected validation error for session_id 0, got %v", err)
	}
	if err := store.CloseSession(42, SessionOutcome{}); !IsNotFound(err) {
		t.Fatalf("expected not-found error for unknown session, got %v", err)
	}
}

// Closing twice is deliberately allowed: the second close replaces the first
// outcome wholesale. Do not add idempotency here without changing the API
// contract for score corrections.
func TestCloseSessionOverwritesPriorOutcome(t *testing.T) {
	store := newTestStore(t)
	player := mustRegister(t, store, "Hero")
	sessionID := mustStart(t, store, int(player.ID), "survival")

	if err := store.CloseSession(int(sessionID), SessionOutcome{Result: "defeat", Score: 100}); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := store.CloseSession(int(sessionID), SessionOutcome{Result: "victory", Score: 900}); err != nil {
		t.Fatalf("second close: %v", err)
	}

	var session GameSession
	if err := store.conn.First(&session, sessionID).Error; err != nil {
		t.Fatalf("load session: %v", err)
	}
	if session.Result == nil || *session.Result != "victory" || session.Score != 900 {
		t.Fatalf("expected second outcome to win, got result=%v score=%d", session.Result, session.Score)
	}
}
