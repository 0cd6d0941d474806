package uid

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateMatchID returns a random 128-bit hex identifier.
func GenerateMatchID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
