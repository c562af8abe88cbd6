package rooms

import "math/rand/v2"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const codeLength = 8

// GenerateCode produces a shareable room code. Codes are not checked for
// uniqueness here; the rooms table's primary key catches collisions and the
// controller retries with a fresh code.
func GenerateCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(code)
}
