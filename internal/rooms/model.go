package rooms

import "time"

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

// MaxPlayers matches the palette size; a room can never hold more.
const MaxPlayers = 4

type Room struct {
	ID              string     `json:"room_id"`
	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	StartedAt       *time.Time `json:"started_at"`
	FinishedAt      *time.Time `json:"finished_at"`
	CurrentPlayerID int        `json:"current_player_id"`
	TotalCells      int        `json:"total_cells"`
}

type Player struct {
	ID           int       `json:"player_id"`
	RoomID       string    `json:"-"`
	Name         string    `json:"player_name"`
	Color        string    `json:"color"`
	Position     int       `json:"position"`
	Health       int       `json:"health"`
	HeartRate    int       `json:"heart_rate"`
	Systolic     int       `json:"systolic"`
	Diastolic    int       `json:"diastolic"`
	SkippedTurns int       `json:"skipped_turns"`
	Ready        bool      `json:"is_ready"`
	JoinedAt     time.Time `json:"joined_at"`
}

// PlayerPatch is a partial update of a player's mutable fields. Only known
// fields exist to be set, so unknown keys in a request body are dropped at
// decode time.
type PlayerPatch struct {
	Position     *int  `json:"position"`
	Health       *int  `json:"health"`
	HeartRate    *int  `json:"heart_rate"`
	Systolic     *int  `json:"systolic"`
	Diastolic    *int  `json:"diastolic"`
	SkippedTurns *int  `json:"skipped_turns"`
	Ready        *bool `json:"is_ready"`
}

func (p PlayerPatch) IsEmpty() bool {
	return p.Position == nil && p.Health == nil && p.HeartRate == nil &&
		p.Systolic == nil && p.Diastolic == nil && p.SkippedTurns == nil &&
		p.Ready == nil
}
