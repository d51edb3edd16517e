package main

import (
	"fmt"
	"os"

	"github.com/rustkas/verifai-runtime/internal/hexutil"
)

// Config holds the verifaidemo CLI configuration: which mode to run and
// where to find the model/input/output/artifact buffers and key material.
type Config struct {
	Mode string

	ModelPath    string
	InputPath    string
	OutputPath   string
	ArtifactPath string

	RuntimeIDHex string
	SecretHex    string

	Verbose bool
}

// NewConfig parses mode and flags from the given args (typically
// os.Args[1:]), falling back to environment variables and then defaults, in
// the same precedence order as the teacher's prover CLI.
func NewConfig(args ...string) *Config {
	config := &Config{
		Mode:         getEnv("VERIFAI_MODE", "prove-lr"),
		ModelPath:    getEnv("VERIFAI_MODEL", "model.bin"),
		InputPath:    getEnv("VERIFAI_INPUT", "input.bin"),
		OutputPath:   getEnv("VERIFAI_OUTPUT", "output.bin"),
		ArtifactPath: getEnv("VERIFAI_ARTIFACT", "artifact.bin"),
		RuntimeIDHex: getEnv("VERIFAI_RUNTIME_ID", ""),
		SecretHex:    getEnv("VERIFAI_SECRET", ""),
	}

	for i := 0; i < len(args); i++ {
		if args[i] == "--verbose" {
			config.Verbose = true
			continue
		}
		if len(args) <= i+1 {
			panic(fmt.Errorf("verifaidemo: missing value for %s", args[i]))
		}
		switch args[i] {
		case "--mode":
			config.Mode = args[i+1]
		case "--model":
			config.ModelPath = args[i+1]
		case "--input":
			config.InputPath = args[i+1]
		case "--output":
			config.OutputPath = args[i+1]
		case "--artifact":
			config.ArtifactPath = args[i+1]
		case "--runtime-id":
			config.RuntimeIDHex = args[i+1]
		case "--secret":
			config.SecretHex = args[i+1]
		default:
			panic(fmt.Errorf("verifaidemo: unknown flag %q", args[i]))
		}
		i++
	}

	return config
}

// RuntimeID decodes RuntimeIDHex, generating a zero ID when unset.
func (c *Config) RuntimeID() ([32]byte, error) {
	return fixed32(c.RuntimeIDHex)
}

// Secret decodes SecretHex, the Ed25519 signing seed.
func (c *Config) Secret() ([32]byte, error) {
	return fixed32(c.SecretHex)
}

func fixed32(hexStr string) ([32]byte, error) {
	var out [32]byte
	if hexStr == "" {
		return out, nil
	}
	b, err := hexutil.Decode(hexStr)
	if err != nil {
		return out, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
