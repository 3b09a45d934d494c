package helper

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Reset tokens live for one hour.
const ResetTokenTTL = time.Hour

// GenerateResetToken returns the raw token sent to the user and the
// SHA-256 hash stored in the database. Only the hash ever persists.
func GenerateResetToken() (token string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(buf)
	return token, HashResetToken(token), nil
}

func HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
