package signer

import (
	"bytes"
	"fmt"

	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

// SignatureBlockType is the armor block type used for ML-DSA-65 signatures.
const SignatureBlockType = "ML-DSA-65 SIGNATURE"

// ArmorSignature wraps an encoded signature in an ASCII armor block
func ArmorSignature(sig []byte, headers map[string]string) ([]byte, error) {
	var buf bytes.Buffer

	w, err := armor.Encode(&buf, SignatureBlockType, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to create armor writer: %w", err)
	}

	if _, err := w.Write(sig); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to armor signature: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
