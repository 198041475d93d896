package server

import (
	"net/http"

	"voxel-quest/internal/config"
	"voxel-quest/internal/db"

	"gorm.io/gorm"
)

type Server struct {
	conn  *gorm.DB
	store *db.Store
	cfg   config.Config
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	return &Server{
		conn:  conn,
		store: db.NewStore(conn),
		cfg:   cfg,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/player/register", s.handleRegisterPlayer)
	mux.HandleFunc("POST /api/session/start", s.handleStartSession)
	mux.HandleFunc("POST /api/session/event", s.handleSessionEvent)
	mux.HandleFunc("POST /api/session/end", s.handleEndSession)
	mux.HandleFunc("GET /api/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("GET /api/player/{id}/history", s.handlePlayerHistory)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("POST /api/seed", s.handleSeed)
	mux.HandleFunc("POST /api/import", s.handleImport)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "static/index.html")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"db": s.conn.Name(),
	})
}
