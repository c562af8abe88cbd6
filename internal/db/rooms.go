package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gamerooms/internal/rooms"
)

const roomColumns = "room_id, status, created_at, started_at, finished_at, current_player_id, total_cells"

func scanRoom(row *sql.Row) (*rooms.Room, error) {
	var r rooms.Room
	err := row.Scan(&r.ID, &r.Status, &r.CreatedAt, &r.StartedAt, &r.FinishedAt, &r.CurrentPlayerID, &r.TotalCells)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// InsertRoom creates a waiting room under the given code. A code collision
// surfaces as a unique violation; the caller decides whether to retry.
func (d *DB) InsertRoom(code string, totalCells int) (*rooms.Room, error) {
	room, err := scanRoom(d.conn.QueryRow(`
		INSERT INTO game_rooms (room_id, total_cells)
		VALUES ($1, $2)
		RETURNING `+roomColumns+`
	`, code, totalCells))
	if err != nil {
		return nil, fmt.Errorf("inserting room: %w", err)
	}
	return room, nil
}

func (d *DB) GetRoom(code string) (*rooms.Room, error) {
	room, err := scanRoom(d.conn.QueryRow(`
		SELECT `+roomColumns+` FROM game_rooms WHERE room_id = $1
	`, code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rooms.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting room: %w", err)
	}
	return room, nil
}

// StartRoom moves a room to playing and stamps started_at. No player-count or
// readiness check: any room can be started.
func (d *DB) StartRoom(code string) error {
	res, err := d.conn.Exec(`
		UPDATE game_rooms SET status = $1, started_at = now() WHERE room_id = $2
	`, rooms.StatusPlaying, code)
	if err != nil {
		return fmt.Errorf("starting room: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("starting room: %w", err)
	}
	if n == 0 {
		return rooms.ErrNotFound
	}
	return nil
}

// FinishRoom moves a playing room to finished and stamps finished_at.
func (d *DB) FinishRoom(code string) error {
	res, err := d.conn.Exec(`
		UPDATE game_rooms SET status = $1, finished_at = now()
		WHERE room_id = $2 AND status = $3
	`, rooms.StatusFinished, code, rooms.StatusPlaying)
	if err != nil {
		return fmt.Errorf("finishing room: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finishing room: %w", err)
	}
	if n == 0 {
		if _, err := d.GetRoom(code); err != nil {
			return err
		}
		return rooms.ErrNotPlaying
	}
	return nil
}

// SetCurrentPlayer advances the turn. The value is not checked against the
// room's player list; turn order is the caller's business.
func (d *DB) SetCurrentPlayer(code string, playerID int) error {
	_, err := d.conn.Exec(`
		UPDATE game_rooms SET current_player_id = $1 WHERE room_id = $2
	`, playerID, code)
	if err != nil {
		return fmt.Errorf("setting current player: %w", err)
	}
	return nil
}

// DeleteStaleRooms removes waiting rooms created before the cutoff. Players
// go with them via the FK cascade.
func (d *DB) DeleteStaleRooms(olderThan time.Time) (int64, error) {
	res, err := d.conn.Exec(`
		DELETE FROM game_rooms WHERE status = $1 AND created_at < $2
	`, rooms.StatusWaiting, olderThan)
	if err != nil {
		return 0, fmt.Errorf("deleting stale rooms: %w", err)
	}
	return res.RowsAffected()
}
