package models

import (
	"crypto/rand"
	"encoding/hex"
)

// NewObjectID returns a fresh 24-character hex identifier for a new record.
func NewObjectID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		panic("models: failed to read random bytes: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// IsObjectID reports whether s has the 24-hex-character identifier form, as
// opposed to a human-readable code like "S001" or a class name.
func IsObjectID(s string) bool {
	if len(s) != 24 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
