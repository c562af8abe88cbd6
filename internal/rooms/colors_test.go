package rooms

import "testing"

func TestAssignColor_EmptyRoom(t *testing.T) {
	got := AssignColor(nil)
	if got != Palette[0] {
		t.Errorf("AssignColor(nil) = %q, want %q", got, Palette[0])
	}
}

func TestAssignColor_SkipsUsed(t *testing.T) {
	got := AssignColor([]string{Palette[0]})
	if got != Palette[1] {
		t.Errorf("AssignColor() = %q, want %q", got, Palette[1])
	}
}

func TestAssignColor_FillsGaps(t *testing.T) {
	// Second and fourth colors taken, first free slot in palette order wins.
	got := AssignColor([]string{Palette[1], Palette[3]})
	if got != Palette[0] {
		t.Errorf("AssignColor() = %q, want %q", got, Palette[0])
	}
}

func TestAssignColor_AllUsed(t *testing.T) {
	got := AssignColor(Palette)
	if got != Palette[0] {
		t.Errorf("AssignColor() fallback = %q, want %q", got, Palette[0])
	}
}

func TestAssignColor_SequentialJoinsDistinct(t *testing.T) {
	var used []string
	for i := 0; i < MaxPlayers; i++ {
		c := AssignColor(used)
		for _, u := range used {
			if c == u {
				t.Fatalf("join %d assigned duplicate color %q", i+1, c)
			}
		}
		used = append(used, c)
	}
}
