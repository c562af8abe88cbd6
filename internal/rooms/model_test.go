package rooms

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestPlayerPatch_UnknownKeysIgnored(t *testing.T) {
	var patch PlayerPatch
	body := `{"position": 7, "bogus": 1, "mana": 50}`
	if err := json.Unmarshal([]byte(body), &patch); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if patch.Position == nil || *patch.Position != 7 {
		t.Errorf("Position not decoded, got %v", patch.Position)
	}
	if patch.Health != nil || patch.HeartRate != nil || patch.SkippedTurns != nil {
		t.Error("unknown keys should not populate other fields")
	}
}

func TestPlayerPatch_IsEmpty(t *testing.T) {
	if !(PlayerPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}

	pos := 3
	if (PlayerPatch{Position: &pos}).IsEmpty() {
		t.Error("patch with position should not be empty")
	}

	ready := true
	if (PlayerPatch{Ready: &ready}).IsEmpty() {
		t.Error("patch with is_ready should not be empty")
	}
}

func TestRoomJSON_NullTimestamps(t *testing.T) {
	room := Room{
		ID:         "ABCD1234",
		Status:     StatusWaiting,
		CreatedAt:  time.Now(),
		TotalCells: 50,
	}
	data, err := json.Marshal(room)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, `"started_at":null`) {
		t.Errorf("started_at should serialize as null, got %s", s)
	}
	if !strings.Contains(s, `"finished_at":null`) {
		t.Errorf("finished_at should serialize as null, got %s", s)
	}
}

func TestPlayerJSON_FieldNames(t *testing.T) {
	data, err := json.Marshal(Player{ID: 1, Name: "Alice", Color: Palette[0]})
	if err != nil {
		t.Fatal(err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"player_id", "player_name", "color", "position", "health", "heart_rate", "systolic", "diastolic", "skipped_turns"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("player JSON missing %q", key)
		}
	}
	if _, ok := fields["room_id"]; ok {
		t.Error("player JSON should not expose room_id")
	}
}
