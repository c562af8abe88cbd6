package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"gamerooms/internal/db"
	"gamerooms/internal/game"
	"gamerooms/internal/rooms"
)

type Server struct {
	Game *game.Controller
	DB   *db.DB
}

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type joinRequest struct {
	PlayerName string `json:"player_name"`
}

type joinResponse struct {
	PlayerID    int    `json:"player_id"`
	RoomID      string `json:"room_id"`
	PlayerName  string `json:"player_name"`
	PlayerColor string `json:"player_color"`
}

type updateRequest struct {
	PlayerID        *int              `json:"player_id"`
	Updates         rooms.PlayerPatch `json:"updates"`
	CurrentPlayerID *int              `json:"current_player_id"`
}

type stateResponse struct {
	Room    *rooms.Room    `json:"room"`
	Players []rooms.Player `json:"players"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println(err)
	}
}

// writeError maps domain errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rooms.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, rooms.ErrNotJoinable),
		errors.Is(err, rooms.ErrRoomFull),
		errors.Is(err, rooms.ErrNotPlaying),
		errors.Is(err, rooms.ErrPlayerRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		log.Printf("[HTTP] Internal error: %v\n", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// decodeBody decodes a JSON request body into v. An empty body is fine.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// roomCode pulls the room code out of the path. Codes are stored uppercase.
func roomCode(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(r.PathValue("code")))
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:CreateRoom] Request Received")

	room, err := s.Game.CreateRoom()
	if err != nil {
		writeError(w, err)
		return
	}

	fmt.Printf("[Handle:CreateRoom] Created room %s\n", room.ID)
	writeJSON(w, http.StatusOK, room)
}

func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:JoinRoom] Request Received")

	var req joinRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	code := roomCode(r)
	player, err := s.Game.JoinRoom(code, strings.TrimSpace(req.PlayerName))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, joinResponse{
		PlayerID:    player.ID,
		RoomID:      code,
		PlayerName:  player.Name,
		PlayerColor: player.Color,
	})
}

func (s *Server) handleStartRoom(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:StartRoom] Request Received")

	if err := s.Game.StartRoom(roomCode(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleFinishRoom(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:FinishRoom] Request Received")

	if err := s.Game.FinishRoom(roomCode(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleUpdateState(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := s.Game.UpdateState(roomCode(r), req.PlayerID, req.Updates, req.CurrentPlayerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleRoomState(w http.ResponseWriter, r *http.Request) {
	room, players, err := s.Game.RoomState(roomCode(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{Room: room, Players: players})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if err := s.DB.Ping(); err != nil {
		status = "db_error"
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintf(w, `{"status":"%s","error":"%s"}`, status, err.Error())
		return
	}
	fmt.Fprintf(w, `{"status":"%s"}`, status)
}
