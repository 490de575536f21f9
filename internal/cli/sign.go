package cli

import (
	"fmt"
	"io"

	"github.com/ralt/mldsasign/internal/models"
	"github.com/ralt/mldsasign/internal/signer"
	"github.com/ralt/mldsasign/internal/utils"
	"github.com/sirupsen/logrus"
)

func runSign(config *models.SignConfig, out io.Writer) error {
	// Step 1: Read the message
	logrus.Debugf("Reading input file: %s", config.InputPath)
	message, err := utils.ReadTextFile(config.InputPath)
	if err != nil {
		return &models.SignError{
			Type: models.ErrFileOp,
			Path: config.InputPath,
			Err:  fmt.Errorf("failed to read input file: %w", err),
		}
	}
	logrus.Debugf("Read %d bytes, sha256 %s", len(message), utils.Fingerprint(message))

	// Step 2: Decode and reconstruct the signing key
	raw, err := utils.DecodeBase64(config.EncodedKey)
	if err != nil {
		return &models.SignError{
			Type: models.ErrBase64Decode,
			Err:  fmt.Errorf("failed to decode signing key: %w", err),
		}
	}

	key, err := signer.ReconstructKey(raw)
	if err != nil {
		return &models.SignError{
			Type: models.ErrKeySize,
			Err:  fmt.Errorf("failed to reconstruct ML-DSA-65 key: %w", err),
		}
	}

	opts := []signer.Option{signer.WithRandomized(config.Randomized)}
	if config.Context != "" {
		opts = append(opts, signer.WithContext([]byte(config.Context)))
	}

	s, err := signer.NewMLDSASigner(key, opts...)
	if err != nil {
		return &models.SignError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("failed to initialize signer: %w", err),
		}
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		if pub, err := s.GetPublicKey(); err == nil {
			logrus.Debugf("Public key fingerprint: %s", utils.Fingerprint(pub))
		}
	}

	// Step 3: Sign and encode
	sig, err := s.SignDetached(message)
	if err != nil {
		return &models.SignError{
			Type: models.ErrSigning,
			Err:  err,
		}
	}
	logrus.Debugf("Signature sha256 %s", utils.Fingerprint(sig))

	if config.Armor {
		sig, err = signer.ArmorSignature(sig, nil)
		if err != nil {
			return &models.SignError{
				Type: models.ErrSigning,
				Err:  err,
			}
		}
	}

	// Step 4: Write the signature
	if err := utils.WriteFile(config.OutputPath, sig, 0644); err != nil {
		return &models.SignError{
			Type: models.ErrFileOp,
			Path: config.OutputPath,
			Err:  fmt.Errorf("failed to write signature: %w", err),
		}
	}

	fmt.Fprintf(out, "Signature saved to %s\n", config.OutputPath)
	return nil
}
