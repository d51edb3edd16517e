package codec

// AttestationBundle binds an attester identity and measurement to an opaque,
// provider-specific attestation blob. For V1 artifacts, measurement is
// always the trace root (enforced by the verifier, not by this codec).
type AttestationBundle struct {
	AttesterID  [32]byte
	Measurement [32]byte
	Attestation []byte
}

// EncodeBin produces the canonical byte encoding of b.
func (b *AttestationBundle) EncodeBin() []byte {
	out := make([]byte, 0, 32+32+4+len(b.Attestation))
	out = PutBytes(out, b.AttesterID[:])
	out = PutBytes(out, b.Measurement[:])
	out = PutU32LE(out, uint32(len(b.Attestation)))
	out = PutBytes(out, b.Attestation)
	return out
}

// DecodeAttestationBundleBin decodes buf, rejecting short reads, an
// att_len that would overflow MaxVectorLen bytes of allocation, and
// trailing bytes.
func DecodeAttestationBundleBin(buf []byte) (*AttestationBundle, error) {
	r := NewReader(buf)
	attesterID, err := r.ReadExact(32)
	if err != nil {
		return nil, err
	}
	measurement, err := r.ReadExact(32)
	if err != nil {
		return nil, err
	}
	attLen, err := r.ReadU32LE()
	if err != nil {
		return nil, err
	}
	if uint64(attLen) > MaxVectorLen {
		return nil, newDecodeError(ErrInvalidLength)
	}
	attestation, err := r.ReadExact(int(attLen))
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	out := &AttestationBundle{Attestation: append([]byte(nil), attestation...)}
	copy(out.AttesterID[:], attesterID)
	copy(out.Measurement[:], measurement)
	return out, nil
}
