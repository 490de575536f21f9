package utils

import (
	"encoding/base64"
	"fmt"
)

// DecodeBase64 decodes standard, padded base64 text. Non-zero trailing bits
// are rejected so that each key has exactly one accepted spelling.
func DecodeBase64(text string) ([]byte, error) {
	data, err := base64.StdEncoding.Strict().DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return data, nil
}
