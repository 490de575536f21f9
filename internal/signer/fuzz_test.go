package signer

import (
	"errors"
	"testing"
)

// FuzzReconstructKey checks that arbitrary input never panics and that only
// exactly sized buffers are accepted.
func FuzzReconstructKey(f *testing.F) {
	f.Add([]byte{})
	f.Add(make([]byte, 64))
	f.Add(make([]byte, EncodedSigningKeySize-1))
	f.Add(make([]byte, EncodedSigningKeySize))
	f.Add(make([]byte, EncodedSigningKeySize+1))

	f.Fuzz(func(t *testing.T, data []byte) {
		key, err := ReconstructKey(data)
		if len(data) != EncodedSigningKeySize {
			if !errors.Is(err, ErrWrongKeySize) {
				t.Fatalf("len %d: expected wrong size error, got %v", len(data), err)
			}
			return
		}
		if err != nil || key == nil {
			t.Fatalf("len %d: expected key, got %v", len(data), err)
		}
	})
}
