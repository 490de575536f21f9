package signer

import (
	"errors"
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

const (
	// EncodedSigningKeySize is the size of a packed ML-DSA-65 private key.
	EncodedSigningKeySize = mldsa65.PrivateKeySize

	// SignatureSize is the size of an encoded ML-DSA-65 signature.
	SignatureSize = mldsa65.SignatureSize

	// MaxContextSize is the longest context string FIPS 204 allows.
	MaxContextSize = 255
)

var (
	// ErrWrongKeySize is matched by every *KeySizeError.
	ErrWrongKeySize = errors.New("wrong encoded signing key size")

	ErrContextTooLong = errors.New("context string is longer than 255 bytes")

	errMissingKey = errors.New("mldsa signing key is required")
)

// EncodedSigningKey is the packed form of an ML-DSA-65 private key.
type EncodedSigningKey [EncodedSigningKeySize]byte

// Signature is an encoded ML-DSA-65 signature.
type Signature [SignatureSize]byte

// Encode returns the canonical byte encoding of the signature.
func (s *Signature) Encode() []byte {
	out := make([]byte, SignatureSize)
	copy(out, s[:])
	return out
}

// KeySizeError reports a raw key whose length is not EncodedSigningKeySize.
type KeySizeError struct {
	Got  int
	Want int
}

func (e *KeySizeError) Error() string {
	return fmt.Sprintf("encoded signing key must be %d bytes, got %d", e.Want, e.Got)
}

func (e *KeySizeError) Is(target error) bool {
	return target == ErrWrongKeySize
}

// unpackKey is swapped out in tests to observe decode attempts.
var unpackKey = func(sk *mldsa65.PrivateKey, buf *[mldsa65.PrivateKeySize]byte) {
	sk.Unpack(buf)
}

// ReconstructKey validates raw and decodes it into an ML-DSA-65 private key.
// The length is checked before anything is copied or decoded. Any buffer of
// the right size decodes; the scheme's decoder is total.
func ReconstructKey(raw []byte) (*mldsa65.PrivateKey, error) {
	if len(raw) != EncodedSigningKeySize {
		return nil, &KeySizeError{Got: len(raw), Want: EncodedSigningKeySize}
	}

	var enc EncodedSigningKey
	copy(enc[:], raw)

	return DecodeSigningKey(&enc), nil
}

// DecodeSigningKey decodes a packed private key.
func DecodeSigningKey(enc *EncodedSigningKey) *mldsa65.PrivateKey {
	sk := new(mldsa65.PrivateKey)
	unpackKey(sk, (*[mldsa65.PrivateKeySize]byte)(enc))
	return sk
}

// Option configures an MLDSASigner
type Option func(*MLDSASigner)

// WithContext binds signatures to a FIPS 204 context string.
func WithContext(ctx []byte) Option {
	return func(s *MLDSASigner) {
		s.ctx = ctx
	}
}

// WithRandomized switches between hedged and deterministic signing.
func WithRandomized(randomized bool) Option {
	return func(s *MLDSASigner) {
		s.randomized = randomized
	}
}

// MLDSASigner implements Signer interface using ML-DSA-65
type MLDSASigner struct {
	key        *mldsa65.PrivateKey
	ctx        []byte
	randomized bool
}

// NewMLDSASigner creates a new signer around a reconstructed private key.
// Signing is deterministic with an empty context unless options say otherwise.
func NewMLDSASigner(key *mldsa65.PrivateKey, opts ...Option) (*MLDSASigner, error) {
	if key == nil {
		return nil, errMissingKey
	}

	s := &MLDSASigner{key: key}
	for _, opt := range opts {
		opt(s)
	}

	if len(s.ctx) > MaxContextSize {
		return nil, ErrContextTooLong
	}

	return s, nil
}

// Sign signs msg. Context length is checked by NewMLDSASigner, so a failure
// here means the entropy source is broken and the process cannot continue.
func (s *MLDSASigner) Sign(msg []byte) Signature {
	sig, err := s.sign(msg)
	if err != nil {
		panic(fmt.Sprintf("mldsa65: signing failed: %v", err))
	}
	return sig
}

// SignDetached creates a detached signature over data
func (s *MLDSASigner) SignDetached(data []byte) ([]byte, error) {
	sig, err := s.sign(data)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}
	return sig.Encode(), nil
}

// GetPublicKey returns the packed public key derived from the private key
func (s *MLDSASigner) GetPublicKey() ([]byte, error) {
	pub, ok := s.key.Public().(*mldsa65.PublicKey)
	if !ok {
		return nil, fmt.Errorf("unexpected public key type %T", s.key.Public())
	}
	return pub.MarshalBinary()
}

func (s *MLDSASigner) sign(msg []byte) (Signature, error) {
	var sig Signature
	if err := mldsa65.SignTo(s.key, msg, s.ctx, s.randomized, sig[:]); err != nil {
		return Signature{}, err
	}
	return sig, nil
}
