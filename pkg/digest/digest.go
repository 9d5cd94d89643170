package digest

import (
	"crypto/sha256"
	"encoding/hex"
)

// ShortLength is the number of hex characters
// kept by Short.
const ShortLength = 8

// Sum returns the lowercase hex-encoded SHA256
// digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Short truncates a hex digest to ShortLength characters.
// The result is for display only and should not be
// relied on for collision resistance.
func Short(digest string) string {
	if len(digest) <= ShortLength {
		return digest
	}
	return digest[:ShortLength]
}
