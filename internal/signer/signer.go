package signer

// Signer interface for producing detached signatures over file contents
type Signer interface {
	// SignDetached creates a detached signature in its canonical encoding
	SignDetached(data []byte) ([]byte, error)

	// GetPublicKey returns the packed public key matching the signing key
	GetPublicKey() ([]byte, error)
}
