package verifai

import (
	"github.com/rustkas/verifai-runtime/codec"
	"github.com/rustkas/verifai-runtime/engine"
	"github.com/rustkas/verifai-runtime/hash"
)

// checkBindings re-derives model_hash/input_hash/output_hash/trace_root
// from the supplied buffers and a freshly re-run inference, and compares
// them against the artifact's claimed values. runFn abstracts over the LR
// and MLP engines so VerifyLRV0/VerifyLRV1/VerifyMLPV1 share one body.
func checkBindings(
	modelBin, inputBin, outputBin []byte,
	claimedModelHash, claimedInputHash, claimedOutputHash, claimedTraceRoot [32]byte,
	runFn func(modelBin, inputBin []byte) (*engine.Run, *Error),
) *Error {
	modelHash := hash.SHA256(modelBin)
	inputHash := hash.SHA256(inputBin)
	outputHash := hash.SHA256(outputBin)

	if modelHash != claimedModelHash || inputHash != claimedInputHash || outputHash != claimedOutputHash {
		return newError(ErrHashMismatch, nil)
	}

	run, verr := runFn(modelBin, inputBin)
	if verr != nil {
		return verr
	}

	recomputedOutputBin := run.Output.EncodeBin()
	if hash.SHA256(recomputedOutputBin) != outputHash {
		return newError(ErrHashMismatch, nil)
	}

	traceRoot := hash.TraceRoot(codec.EncodeEvents(run.Events))
	if traceRoot != claimedTraceRoot {
		return newError(ErrTraceMismatch, nil)
	}

	return nil
}

// VerifyLRV0 re-runs the logistic-regression engine over modelBin/inputBin
// and checks that artifactBin's signature and every hash/trace binding
// matches, per spec §4.H.
func VerifyLRV0(artifactBin, modelBin, inputBin, outputBin []byte) error {
	artifact, err := codec.DecodeProofArtifactV0Bin(artifactBin)
	if err != nil {
		return mapCoreDecode(err)
	}
	if artifact.Version != 0 {
		return newError(ErrCoreDecode, nil)
	}
	if err := artifact.VerifySignature(); err != nil {
		return newError(ErrSignatureInvalid, err)
	}

	if verr := checkBindings(
		modelBin, inputBin, outputBin,
		artifact.ModelHash, artifact.InputHash, artifact.OutputHash, artifact.TraceRoot,
		runLR,
	); verr != nil {
		return verr
	}
	return nil
}

// VerifyLRV1 is VerifyLRV0 plus the V1 attestation-measurement binding
// check: the decoded artifact's attestation.measurement must equal the
// recomputed trace root.
func VerifyLRV1(artifactBin, modelBin, inputBin, outputBin []byte) error {
	return verifyV1(artifactBin, modelBin, inputBin, outputBin, runLR)
}

// VerifyMLPV1 re-runs the MLP engine and checks every binding, including
// the V1 attestation-measurement binding.
func VerifyMLPV1(artifactBin, modelBin, inputBin, outputBin []byte) error {
	return verifyV1(artifactBin, modelBin, inputBin, outputBin, runMLP)
}

func verifyV1(artifactBin, modelBin, inputBin, outputBin []byte, runFn func(modelBin, inputBin []byte) (*engine.Run, *Error)) error {
	artifact, err := codec.DecodeProofArtifactV1Bin(artifactBin)
	if err != nil {
		return mapCoreDecode(err)
	}
	if artifact.Version != 1 {
		return newError(ErrCoreDecode, nil)
	}
	if err := artifact.VerifySignature(); err != nil {
		return newError(ErrSignatureInvalid, err)
	}

	if verr := checkBindings(
		modelBin, inputBin, outputBin,
		artifact.ModelHash, artifact.InputHash, artifact.OutputHash, artifact.TraceRoot,
		runFn,
	); verr != nil {
		return verr
	}

	if artifact.Attestation.Measurement != artifact.TraceRoot {
		return newError(ErrTraceMismatch, nil)
	}
	return nil
}

// ArtifactVersion re-exports codec.ArtifactVersion for caller dispatch.
func ArtifactVersion(artifactBin []byte) (version uint16, ok bool) {
	return codec.ArtifactVersion(artifactBin)
}
