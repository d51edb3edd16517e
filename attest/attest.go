// Package attest defines the pluggable attester capability: given a
// measurement (always the trace root, for this system), produce an
// AttestationBundle. Real attesters (TEE quotes, signed measurements) plug
// into the same single-method interface the default NoopAttester satisfies;
// a verifier never re-executes the attester, it only checks that the
// bundle's measurement equals the recomputed trace root.
//
// This mirrors the teacher's own use of a single-method interface
// (provers/types.Fetcher) to swap data sources without touching the
// relayer that consumes it.
package attest

import "github.com/rustkas/verifai-runtime/codec"

// Attester produces an AttestationBundle for a given measurement.
type Attester interface {
	Attest(measurement [32]byte) codec.AttestationBundle
}

// NoopAttester is the default, spec-exact attester: it reports a zeroed
// attester id and carries the measurement itself as the opaque attestation
// payload. It is the only attester this module ships; real attesters
// (TEE quotes, signed measurements) are supplied by the caller.
type NoopAttester struct{}

// Attest implements Attester.
func (NoopAttester) Attest(measurement [32]byte) codec.AttestationBundle {
	return codec.AttestationBundle{
		AttesterID:  [32]byte{},
		Measurement: measurement,
		Attestation: append([]byte(nil), measurement[:]...),
	}
}
