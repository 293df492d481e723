package utils

import (
	"crypto/rand"
	"fmt"
)

// GenerateSessionID returns a random UUID-shaped identifier for server-side
// session records.
func GenerateSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}
