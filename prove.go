package verifai

import (
	"github.com/rustkas/verifai-runtime/attest"
	"github.com/rustkas/verifai-runtime/codec"
	"github.com/rustkas/verifai-runtime/engine"
	"github.com/rustkas/verifai-runtime/hash"
)

// runLR runs the logistic-regression engine and maps its errors onto the
// verifai error taxonomy.
func runLR(modelBin, inputBin []byte) (*engine.Run, *Error) {
	run, err := engine.RunLogisticRegressionV0(modelBin, inputBin)
	if err != nil {
		if err == engine.ErrDimensionMismatch {
			return nil, newError(ErrDimensionMismatch, err)
		}
		return nil, mapCoreDecode(err)
	}
	return run, nil
}

// runMLP runs the MLP engine and maps its errors onto the verifai error
// taxonomy.
func runMLP(modelBin, inputBin []byte) (*engine.Run, *Error) {
	run, err := engine.RunMLPV1(modelBin, inputBin)
	if err != nil {
		if err == engine.ErrDimensionMismatch {
			return nil, newError(ErrDimensionMismatch, err)
		}
		return nil, mapCoreDecode(err)
	}
	return run, nil
}

// bindings computes the three SHA-256 hashes and the Merkle trace root that
// every artifact binds, from a completed inference Run.
func bindings(modelBin, inputBin []byte, run *engine.Run) (modelHash, inputHash, outputHash, traceRoot [32]byte, outputBin []byte) {
	outputBin = run.Output.EncodeBin()
	modelHash = hash.SHA256(modelBin)
	inputHash = hash.SHA256(inputBin)
	outputHash = hash.SHA256(outputBin)
	traceRoot = hash.TraceRoot(codec.EncodeEvents(run.Events))
	return
}

// ProveLRV0 runs the logistic-regression engine over (modelBin, inputBin),
// binds model/input/output/trace into an unattested V0 artifact signed with
// secret, and returns (output_bin, artifact_bin). The encoded artifact is
// always exactly codec.ProofArtifactV0Len bytes.
func ProveLRV0(runtimeID, secret [32]byte, modelBin, inputBin []byte) (outputBin, artifactBin []byte, err error) {
	run, verr := runLR(modelBin, inputBin)
	if verr != nil {
		return nil, nil, verr
	}

	modelHash, inputHash, outputHash, traceRoot, outputBin := bindings(modelBin, inputBin, run)

	artifact := &codec.ProofArtifactV0{
		Version:    0,
		RuntimeID:  runtimeID,
		ModelHash:  modelHash,
		InputHash:  inputHash,
		OutputHash: outputHash,
		TraceRoot:  traceRoot,
	}
	artifact.SignDetached(secret)

	artifactBin = artifact.EncodeBin()
	if len(artifactBin) != codec.ProofArtifactV0Len {
		return nil, nil, newError(ErrCoreDecode, nil)
	}
	return outputBin, artifactBin, nil
}

// buildArtifactV1 populates, signs and encodes a V1 artifact from
// precomputed bindings and an attestation bundle.
func buildArtifactV1(runtimeID, secret [32]byte, modelHash, inputHash, outputHash, traceRoot [32]byte, attestation codec.AttestationBundle) []byte {
	artifact := &codec.ProofArtifactV1{
		Version:     1,
		RuntimeID:   runtimeID,
		ModelHash:   modelHash,
		InputHash:   inputHash,
		OutputHash:  outputHash,
		TraceRoot:   traceRoot,
		Attestation: attestation,
	}
	artifact.SignDetached(secret)
	return artifact.EncodeBin()
}

// ProveLRV1WithAttester runs the logistic-regression engine, invokes
// attester with the resulting trace root as measurement, and returns a
// signed, attested V1 artifact bound to model/input/output/trace/attestation.
func ProveLRV1WithAttester(runtimeID, secret [32]byte, modelBin, inputBin []byte, attester attest.Attester) (outputBin, artifactBin []byte, err error) {
	run, verr := runLR(modelBin, inputBin)
	if verr != nil {
		return nil, nil, verr
	}

	modelHash, inputHash, outputHash, traceRoot, outputBin := bindings(modelBin, inputBin, run)
	attestation := attester.Attest(traceRoot)
	artifactBin = buildArtifactV1(runtimeID, secret, modelHash, inputHash, outputHash, traceRoot, attestation)
	return outputBin, artifactBin, nil
}

// ProveMLPV1 runs the MLP engine over (modelBin, inputBin), attests the
// resulting trace root with the default no-op attester, and returns a
// signed V1 artifact.
func ProveMLPV1(runtimeID, secret [32]byte, modelBin, inputBin []byte) (outputBin, artifactBin []byte, err error) {
	run, verr := runMLP(modelBin, inputBin)
	if verr != nil {
		return nil, nil, verr
	}

	modelHash, inputHash, outputHash, traceRoot, outputBin := bindings(modelBin, inputBin, run)
	attestation := attest.NoopAttester{}.Attest(traceRoot)
	artifactBin = buildArtifactV1(runtimeID, secret, modelHash, inputHash, outputHash, traceRoot, attestation)
	return outputBin, artifactBin, nil
}
