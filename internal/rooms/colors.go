package rooms

import "slices"

// Palette is the fixed set of player colors, assigned in order. The values
// are CSS classes the frontend renders directly.
var Palette = []string{"bg-blue-500", "bg-red-500", "bg-green-500", "bg-yellow-500"}

// AssignColor returns the first palette color not present in used, falling
// back to the first entry if all are taken. With the player cap equal to the
// palette size the fallback is unreachable.
func AssignColor(used []string) string {
	for _, c := range Palette {
		if !slices.Contains(used, c) {
			return c
		}
	}
	return Palette[0]
}
