package utils

import (
	"errors"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a text file contains invalid UTF-8.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8 text")

// ReadTextFile reads the whole file and checks that it is UTF-8 text.
// The returned bytes are the file content unchanged.
func ReadTextFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	return data, nil
}

// WriteFile writes data to a file, creating directories as needed
func WriteFile(path string, data []byte, perm os.FileMode) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, perm)
}
