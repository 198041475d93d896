package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"voxel-quest/internal/db"
)

type registerRequest struct {
	Name string `json:"name"`
}

type startSessionRequest struct {
	PlayerID int    `json:"player_id"`
	Mode     string `json:"mode"`
}

type sessionEventRequest struct {
	SessionID  int             `json:"session_id"`
	EventType  string          `json:"event_type"`
	EventValue int             `json:"event_value"`
	Payload    json.RawMessage `json:"payload"`
}

type endSessionRequest struct {
	SessionID       int    `json:"session_id"`
	Result          string `json:"result"`
	Score           int    `json:"score"`
	Crystals        int    `json:"crystals"`
	EnemiesDefeated int    `json:"enemies_defeated"`
	SurvivedSeconds int    `json:"survived_seconds"`
	MaxCombo        int    `json:"max_combo"`
}

type importRequest struct {
	Leaderboard []db.ImportItem `json:"leaderboard"`
}

func (s *Server) handleRegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	_ = readJSON(r.Body, &req)

	player, err := s.store.RegisterPlayer(req.Name)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":     true,
		"player": player,
	})
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	_ = readJSON(r.Body, &req)

	sessionID, err := s.store.StartSession(req.PlayerID, req.Mode)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	log.Printf("session started session_id=%d player_id=%d", sessionID, req.PlayerID)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"session_id": sessionID,
	})
}

func (s *Server) handleSessionEvent(w http.ResponseWriter, r *http.Request) {
	var req sessionEventRequest
	_ = readJSON(r.Body, &req)

	if err := s.store.AppendEvent(req.SessionID, req.EventType, req.EventValue, req.Payload); err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	var req endSessionRequest
	_ = readJSON(r.Body, &req)

	outcome := db.SessionOutcome{
		Result:          req.Result,
		Score:           req.Score,
		Crystals:        req.Crystals,
		EnemiesDefeated: req.EnemiesDefeated,
		SurvivedSeconds: req.SurvivedSeconds,
		MaxCombo:        req.MaxCombo,
	}
	if err := s.store.CloseSession(req.SessionID, outcome); err != nil {
		s.writeStoreError(w, err)
		return
	}
	log.Printf("session ended session_id=%d result=%q score=%d", req.SessionID, req.Result, req.Score)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.Leaderboard(limitQuery(r, db.LeaderboardDefaultLimit))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":    true,
		"items": items,
	})
}

func (s *Server) handlePlayerHistory(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	items, err := s.store.History(playerID, limitQuery(r, db.HistoryDefaultLimit))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":    true,
		"items": items,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GlobalStats()
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":                 true,
		"players":            stats.Players,
		"sessions":           stats.Sessions,
		"completed_sessions": stats.CompletedSessions,
		"events":             stats.Events,
	})
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	inserted, err := s.store.SeedDemo()
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	log.Printf("seeded %d demo sessions", inserted)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"inserted": inserted,
	})
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	_ = readJSON(r.Body, &req)

	imported, err := s.store.Import(req.Leaderboard)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	log.Printf("imported %d leaderboard sessions", imported)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"imported": imported,
	})
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case db.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case db.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("store error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func limitQuery(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
