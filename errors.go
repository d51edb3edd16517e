// Package verifai composes the codec, hash and engine packages into the
// prove/verify orchestrators: it runs the inference engine, binds
// model/input/output/trace into a signed artifact, and on verification
// re-derives every binding independently and compares it field-by-field.
//
// The package performs no I/O and no logging (spec §5): every function is a
// pure transformation of its arguments, freely callable from multiple
// goroutines provided each call uses its own buffers.
package verifai

import "fmt"

// ErrorKind closes the taxonomy of ways prove/verify can fail.
type ErrorKind int

const (
	// ErrCoreDecode covers any binary decoding failure: bad magic, a
	// short read, trailing bytes, an unknown tag, or an artifact whose
	// version does not match the codec being invoked.
	ErrCoreDecode ErrorKind = iota
	// ErrDimensionMismatch covers model/input dimensions disagreeing at
	// inference entry.
	ErrDimensionMismatch
	// ErrSignatureInvalid covers an Ed25519 verification failure or a
	// malformed sig_pubkey.
	ErrSignatureInvalid
	// ErrHashMismatch covers a supplied buffer's SHA-256 disagreeing with
	// the artifact's binding, including a recomputed output encoding
	// disagreeing with output_hash.
	ErrHashMismatch
	// ErrTraceMismatch covers a recomputed Merkle root differing from
	// trace_root, or (V1) an attestation measurement differing from the
	// trace root.
	ErrTraceMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case ErrCoreDecode:
		return "core decode error"
	case ErrDimensionMismatch:
		return "dimension mismatch"
	case ErrSignatureInvalid:
		return "signature invalid"
	case ErrHashMismatch:
		return "hash mismatch"
	case ErrTraceMismatch:
		return "trace mismatch"
	default:
		return "unknown verifai error"
	}
}

// Error is the single error type returned by every prove/verify entry
// point. It carries a closed ErrorKind plus an optional wrapped cause, so
// callers can both switch on Kind and errors.Unwrap through to the
// underlying codec/engine error.
type Error struct {
	Kind  ErrorKind
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("verifai: %s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("verifai: %s", e.Kind)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

func newError(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

// mapCoreDecode wraps any decode-layer failure (codec.DecodeError,
// engine.ErrDimensionMismatch already excepted by its own caller) as a
// verifai.Error with Kind ErrCoreDecode, mirroring the original Rust
// map_core helper.
func mapCoreDecode(err error) *Error {
	if err == nil {
		return nil
	}
	return newError(ErrCoreDecode, err)
}
