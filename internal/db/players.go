package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gamerooms/internal/rooms"
)

const playerColumns = "id, room_id, player_name, player_color, position, health, heart_rate, pressure_systolic, pressure_diastolic, skipped_turns, is_ready, joined_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*rooms.Player, error) {
	var p rooms.Player
	err := row.Scan(&p.ID, &p.RoomID, &p.Name, &p.Color, &p.Position, &p.Health,
		&p.HeartRate, &p.Systolic, &p.Diastolic, &p.SkippedTurns, &p.Ready, &p.JoinedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// JoinRoom adds a player to a waiting room. The status check, capacity check,
// color pick and insert run in one transaction with the room row locked, so
// concurrent joins cannot overshoot the cap or collide on a color.
func (d *DB) JoinRoom(code, name string) (*rooms.Player, error) {
	tx, err := d.conn.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning join transaction: %w", err)
	}
	defer tx.Rollback()

	var status rooms.Status
	err = tx.QueryRow(`
		SELECT status FROM game_rooms WHERE room_id = $1 FOR UPDATE
	`, code).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rooms.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("locking room: %w", err)
	}
	if status != rooms.StatusWaiting {
		return nil, rooms.ErrNotJoinable
	}

	used, err := usedColors(tx, code)
	if err != nil {
		return nil, err
	}
	if len(used) >= rooms.MaxPlayers {
		return nil, rooms.ErrRoomFull
	}

	player, err := scanPlayer(tx.QueryRow(`
		INSERT INTO room_players (room_id, player_name, player_color)
		VALUES ($1, $2, $3)
		RETURNING `+playerColumns+`
	`, code, name, rooms.AssignColor(used)))
	if err != nil {
		return nil, fmt.Errorf("inserting player: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing join: %w", err)
	}
	return player, nil
}

func usedColors(tx *sql.Tx, code string) ([]string, error) {
	rows, err := tx.Query(`
		SELECT player_color FROM room_players WHERE room_id = $1
	`, code)
	if err != nil {
		return nil, fmt.Errorf("listing used colors: %w", err)
	}
	defer rows.Close()

	var used []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scanning color: %w", err)
		}
		used = append(used, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing used colors: %w", err)
	}
	return used, nil
}

func (d *DB) GetPlayer(code string, playerID int) (*rooms.Player, error) {
	player, err := scanPlayer(d.conn.QueryRow(`
		SELECT `+playerColumns+` FROM room_players WHERE room_id = $1 AND id = $2
	`, code, playerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rooms.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting player: %w", err)
	}
	return player, nil
}

// ListPlayers returns a room's players in join order.
func (d *DB) ListPlayers(code string) ([]rooms.Player, error) {
	rows, err := d.conn.Query(`
		SELECT `+playerColumns+` FROM room_players WHERE room_id = $1 ORDER BY id
	`, code)
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	defer rows.Close()

	players := make([]rooms.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	return players, nil
}

// UpdatePlayer applies the non-nil fields of patch. A patch with nothing set
// is a no-op. Values are written as given; vitals are not bounds-checked.
func (d *DB) UpdatePlayer(code string, playerID int, patch rooms.PlayerPatch) error {
	var sets []string
	var args []any
	set := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Position != nil {
		set("position", *patch.Position)
	}
	if patch.Health != nil {
		set("health", *patch.Health)
	}
	if patch.HeartRate != nil {
		set("heart_rate", *patch.HeartRate)
	}
	if patch.Systolic != nil {
		set("pressure_systolic", *patch.Systolic)
	}
	if patch.Diastolic != nil {
		set("pressure_diastolic", *patch.Diastolic)
	}
	if patch.SkippedTurns != nil {
		set("skipped_turns", *patch.SkippedTurns)
	}
	if patch.Ready != nil {
		set("is_ready", *patch.Ready)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, code, playerID)
	query := fmt.Sprintf(`UPDATE room_players SET %s WHERE room_id = $%d AND id = $%d`,
		strings.Join(sets, ", "), len(args)-1, len(args))
	if _, err := d.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("updating player: %w", err)
	}
	return nil
}
