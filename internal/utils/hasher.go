package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the hex SHA-256 of input. Used to build fixed-length page
// cache keys from locale and request path.
func Hash(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
