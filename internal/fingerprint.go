package internal

import (
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintLen is the hex length of a content fingerprint.
const FingerprintLen = 12

// DeriveID fingerprints content into a short stable identifier. Equal content
// always yields the same id.
func DeriveID(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])[:FingerprintLen]
}
