package cli

import (
	"fmt"

	"github.com/ralt/mldsasign/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var config models.SignConfig

	rootCmd := &cobra.Command{
		Use:   "mldsasign --sign <base64 key> --file <path>",
		Short: "Sign a file with an ML-DSA-65 private key",
		Long: `Mldsasign decodes a base64 ML-DSA-65 (FIPS 204) private key and writes a
detached signature over the contents of a file.

The signature is written in its raw 3309-byte encoding to sign.sig in the
current directory unless --output is given.

Exit codes:
  1  file error
  2  key is not valid base64
  3  key has the wrong size
  4  invalid arguments
  5  signing error`,
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate configuration
			if err := validateConfig(cmd, &config); err != nil {
				return err
			}

			logrus.Debugf("Input: %s, output: %s, randomized: %t, armor: %t",
				config.InputPath, config.OutputPath, config.Randomized, config.Armor)

			return runSign(&config, cmd.OutOrStdout())
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &models.SignError{
			Type: models.ErrInvalidConfig,
			Err:  err,
		}
	})

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Input/Output flags
	rootCmd.Flags().StringVar(&config.EncodedKey, "sign", "", "ML-DSA-65 private key, base64 encoded")
	rootCmd.Flags().StringVar(&config.InputPath, "file", "", "File to sign")
	rootCmd.Flags().StringVarP(&config.OutputPath, "output", "o", models.DefaultOutputPath, "Signature output path")

	// Signature flags
	rootCmd.Flags().StringVar(&config.Context, "context", "", "FIPS 204 context string")
	rootCmd.Flags().BoolVar(&config.Randomized, "randomized", false, "Use hedged (randomized) signing")
	rootCmd.Flags().BoolVar(&config.Armor, "armor", false, "Write an ASCII-armored signature")

	return rootCmd
}

// noArgs rejects positional arguments as an invalid configuration
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &models.SignError{
			Type: models.ErrInvalidConfig,
			Err:  err,
		}
	}
	return nil
}

func validateConfig(cmd *cobra.Command, config *models.SignConfig) error {
	// An empty --sign value is allowed through; it fails the size check
	if !cmd.Flags().Changed("sign") {
		return &models.SignError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("--sign is required"),
		}
	}

	if config.InputPath == "" {
		return &models.SignError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("--file is required"),
		}
	}

	if config.OutputPath == "" {
		config.OutputPath = models.DefaultOutputPath
	}

	if len(config.Context) > 255 {
		return &models.SignError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("--context must be at most 255 bytes, got %d", len(config.Context)),
		}
	}

	return nil
}
