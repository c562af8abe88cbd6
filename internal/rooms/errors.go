package rooms

import "errors"

var (
	ErrNotFound       = errors.New("room not found")
	ErrNotJoinable    = errors.New("game already started")
	ErrRoomFull       = errors.New("room is full (max 4 players)")
	ErrNotPlaying     = errors.New("game is not in progress")
	ErrPlayerRequired = errors.New("player_id required")
)
