package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// CalculateChecksum returns the hex SHA-256 digest of data
func CalculateChecksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Fingerprint returns a short SHA-256 fingerprint used in log output.
func Fingerprint(data []byte) string {
	return CalculateChecksum(data)[:16]
}
