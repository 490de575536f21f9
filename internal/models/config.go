package models

// DefaultOutputPath is where the signature is written when no output is given.
const DefaultOutputPath = "sign.sig"

// SignConfig contains configuration for a single signing run
type SignConfig struct {
	// Key material, base64 (standard alphabet, padded)
	EncodedKey string

	// Input/Output
	InputPath  string
	OutputPath string

	// Signature options
	Context    string // FIPS 204 context string, empty by default
	Randomized bool   // Hedged signing instead of deterministic
	Armor      bool   // ASCII-armor the signature before writing
}
