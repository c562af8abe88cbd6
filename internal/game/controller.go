package game

import (
	"fmt"
	"log"

	"gamerooms/internal/db"
	"gamerooms/internal/metrics"
	"gamerooms/internal/rooms"
)

// Controller enforces the room lifecycle over the storage layer. It holds no
// state of its own; every operation reads and writes the database, so any
// number of instances can serve the same rooms.
type Controller struct {
	DB         *db.DB
	TotalCells int
}

// CreateRoom allocates a code and inserts a waiting room. Code collisions are
// retried with a fresh code.
func (c *Controller) CreateRoom() (*rooms.Room, error) {
	// Try up to 10 times to land a unique code
	for range 10 {
		code := rooms.GenerateCode()
		room, err := c.DB.InsertRoom(code, c.TotalCells)
		if db.IsUniqueViolation(err) {
			log.Printf("[Game] Room code collision on %s, retrying\n", code)
			continue
		}
		if err != nil {
			return nil, err
		}
		metrics.RoomsCreated.Inc()
		return room, nil
	}
	return nil, fmt.Errorf("failed to generate unique room code after 10 attempts")
}

// JoinRoom adds a named player to a waiting room and returns the new row with
// its assigned color. An empty name falls back to a placeholder.
func (c *Controller) JoinRoom(code, name string) (*rooms.Player, error) {
	if name == "" {
		name = "Player"
	}
	player, err := c.DB.JoinRoom(code, name)
	if err != nil {
		return nil, err
	}
	metrics.PlayersJoined.Inc()
	return player, nil
}

// StartRoom moves a room to playing. Deliberately permissive: no player-count
// or readiness requirement, that policy belongs to the front-end.
func (c *Controller) StartRoom(code string) error {
	if err := c.DB.StartRoom(code); err != nil {
		return err
	}
	metrics.GamesStarted.Inc()
	return nil
}

// FinishRoom moves a playing room to its terminal state.
func (c *Controller) FinishRoom(code string) error {
	if err := c.DB.FinishRoom(code); err != nil {
		return err
	}
	metrics.GamesFinished.Inc()
	return nil
}

// UpdateState applies a player patch and/or advances the room's turn. playerID
// is required only when the patch carries fields. currentPlayerID is written
// as given; whether it names a player in the room is the caller's business.
func (c *Controller) UpdateState(code string, playerID *int, patch rooms.PlayerPatch, currentPlayerID *int) error {
	if !patch.IsEmpty() {
		if playerID == nil {
			return rooms.ErrPlayerRequired
		}
		if err := c.DB.UpdatePlayer(code, *playerID, patch); err != nil {
			return err
		}
	}
	if currentPlayerID != nil {
		if err := c.DB.SetCurrentPlayer(code, *currentPlayerID); err != nil {
			return err
		}
	}
	metrics.StateUpdates.Inc()
	return nil
}

// RoomState returns the room row and its players in join order.
func (c *Controller) RoomState(code string) (*rooms.Room, []rooms.Player, error) {
	room, err := c.DB.GetRoom(code)
	if err != nil {
		return nil, nil, err
	}
	players, err := c.DB.ListPlayers(code)
	if err != nil {
		return nil, nil, err
	}
	return room, players, nil
}
