package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"gamerooms/internal/config"
	"gamerooms/internal/db"
	"gamerooms/internal/game"
	"gamerooms/internal/metrics"

	"github.com/google/uuid"
)

func Run() error {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	if err := database.Migrate(); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	srv := &Server{
		Game: &game.Controller{DB: database, TotalCells: cfg.BoardCells},
		DB:   database,
	}

	go sweepStaleRooms(database, time.Duration(cfg.RoomTTLMinutes)*time.Minute)

	mux := http.NewServeMux()
	srv.routes(mux)

	addr := "0.0.0.0:" + cfg.Port
	fmt.Printf("Server listening on http://localhost:%s\n", cfg.Port)
	return http.ListenAndServe(addr, withRequestLog(mux))
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/rooms", s.handleCreateRoom)
	mux.HandleFunc("GET /api/rooms/{code}", s.handleRoomState)
	mux.HandleFunc("POST /api/rooms/{code}/join", s.handleJoinRoom)
	mux.HandleFunc("POST /api/rooms/{code}/start", s.handleStartRoom)
	mux.HandleFunc("POST /api/rooms/{code}/finish", s.handleFinishRoom)
	mux.HandleFunc("POST /api/rooms/{code}/state", s.handleUpdateState)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", metrics.Handler())
}

// withRequestLog tags every request with an ID and logs it on completion.
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[HTTP] %s %s %s (%s)\n", id, r.Method, r.URL.Path, time.Since(start))
	})
}

// sweepStaleRooms periodically deletes waiting rooms that nobody ever started.
func sweepStaleRooms(database *db.DB, ttl time.Duration) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		n, err := database.DeleteStaleRooms(time.Now().Add(-ttl))
		if err != nil {
			log.Printf("[DB] DeleteStaleRooms error: %v\n", err)
			continue
		}
		if n > 0 {
			log.Printf("[DB] Swept %d stale rooms\n", n)
		}
	}
}
