package impl

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashToken derives the storage key for a raw refresh token. Only the hash
// ever reaches the database, so a leaked table cannot be replayed.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
