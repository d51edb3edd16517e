// Command verifaidemo drives the verifai core library end to end: it loads
// a model and input buffer from disk, runs prove or verify, and writes the
// resulting output/artifact buffers back out. All I/O and logging lives
// here; the verifai, codec, engine and hash packages stay pure (spec §5).
package main

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"

	verifai "github.com/rustkas/verifai-runtime"
)

var errUnknownMode = errors.New("verifaidemo: unknown mode")

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
	Level(zerolog.InfoLevel).
	With().
	Timestamp().
	Logger()

func main() {
	config := NewConfig(os.Args[1:]...)
	if config.Verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	if err := run(config); err != nil {
		log.Fatal().Err(err).Str("mode", config.Mode).Msg("verifaidemo failed")
	}
}

func run(config *Config) error {
	switch config.Mode {
	case "prove-lr":
		return runProveLR(config)
	case "prove-mlp":
		return runProveMLP(config)
	case "verify-lr0":
		return runVerify(config, verifai.VerifyLRV0)
	case "verify-lr1":
		return runVerify(config, verifai.VerifyLRV1)
	case "verify-mlp":
		return runVerify(config, verifai.VerifyMLPV1)
	default:
		log.Error().Str("mode", config.Mode).Msg("unknown mode")
		return errUnknownMode
	}
}

func runProveLR(config *Config) error {
	modelBin, inputBin, err := readModelInput(config)
	if err != nil {
		return err
	}
	runtimeID, err := config.RuntimeID()
	if err != nil {
		return err
	}
	secret, err := config.Secret()
	if err != nil {
		return err
	}

	outputBin, artifactBin, err := verifai.ProveLRV0(runtimeID, secret, modelBin, inputBin)
	if err != nil {
		log.Error().Err(err).Msg("prove-lr failed")
		return err
	}

	log.Info().
		Int("output_len", len(outputBin)).
		Int("artifact_len", len(artifactBin)).
		Msg("prove-lr succeeded")

	return writeOutputs(config, outputBin, artifactBin)
}

func runProveMLP(config *Config) error {
	modelBin, inputBin, err := readModelInput(config)
	if err != nil {
		return err
	}
	runtimeID, err := config.RuntimeID()
	if err != nil {
		return err
	}
	secret, err := config.Secret()
	if err != nil {
		return err
	}

	outputBin, artifactBin, err := verifai.ProveMLPV1(runtimeID, secret, modelBin, inputBin)
	if err != nil {
		log.Error().Err(err).Msg("prove-mlp failed")
		return err
	}

	log.Info().
		Int("output_len", len(outputBin)).
		Int("artifact_len", len(artifactBin)).
		Msg("prove-mlp succeeded")

	return writeOutputs(config, outputBin, artifactBin)
}

func runVerify(config *Config, verify func(artifactBin, modelBin, inputBin, outputBin []byte) error) error {
	modelBin, inputBin, err := readModelInput(config)
	if err != nil {
		return err
	}
	outputBin, err := os.ReadFile(config.OutputPath)
	if err != nil {
		return err
	}
	artifactBin, err := os.ReadFile(config.ArtifactPath)
	if err != nil {
		return err
	}

	if err := verify(artifactBin, modelBin, inputBin, outputBin); err != nil {
		log.Error().Err(err).Msg("verification failed")
		return err
	}

	log.Info().Msg("verification succeeded")
	return nil
}

func readModelInput(config *Config) (modelBin, inputBin []byte, err error) {
	modelBin, err = os.ReadFile(config.ModelPath)
	if err != nil {
		return nil, nil, err
	}
	inputBin, err = os.ReadFile(config.InputPath)
	if err != nil {
		return nil, nil, err
	}
	return modelBin, inputBin, nil
}

func writeOutputs(config *Config, outputBin, artifactBin []byte) error {
	if err := os.WriteFile(config.OutputPath, outputBin, 0o644); err != nil {
		return err
	}
	return os.WriteFile(config.ArtifactPath, artifactBin, 0o644)
}
