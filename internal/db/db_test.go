package db

import "testing"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	conn, err := OpenMemory()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewStore(conn)
}

func mustRegister(t *testing.T, store *Store, name string) Player {
	t.Helper()
	player, err := store.RegisterPlayer(name)
	if err != nil {
		t.Fatalf("register %q: %v", name, err)
	}
	return player
}

func mustStart(t *testing.T, store *Store, playerID int, mode string) uint {
	t.Helper()
	sessionID, err := store.StartSession(playerID, mode)
	if err != nil {
		t.Fatalf("start session for player %d: %v", playerID, err)
	}
	return sessionID
}
