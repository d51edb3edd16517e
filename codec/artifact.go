package codec

import (
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
)

// ProofArtifactV0Len is the exact encoded length of a V0 artifact.
const ProofArtifactV0Len = 258

var (
	signPrefixV0 = [19]byte{'V', 'E', 'R', 'I', 'F', 'A', 'I', 0, 'A', 'R', 'T', 'I', 'F', 'A', 'C', 'T', 0, 'V', '0'}
	signPrefixV1 = [19]byte{'V', 'E', 'R', 'I', 'F', 'A', 'I', 0, 'A', 'R', 'T', 'I', 'F', 'A', 'C', 'T', 0, 'V', '1'}
)

// ProofArtifactV0 is the unattested, fixed-258-byte signed artifact binding
// model/input/output/trace hashes to an Ed25519 signature.
type ProofArtifactV0 struct {
	Version    uint16 // must be 0
	RuntimeID  [32]byte
	ModelHash  [32]byte
	InputHash  [32]byte
	OutputHash [32]byte
	TraceRoot  [32]byte
	SigPubkey  [32]byte
	Signature  [64]byte
}

// MessageToSign builds the domain-separated signing message: the V0 prefix
// followed by every field except Signature, including SigPubkey so the key
// itself is bound to the payload.
func (a *ProofArtifactV0) MessageToSign() []byte {
	out := make([]byte, 0, 19+2+32*6)
	out = PutBytes(out, signPrefixV0[:])
	out = PutU16LE(out, a.Version)
	out = PutBytes(out, a.RuntimeID[:])
	out = PutBytes(out, a.ModelHash[:])
	out = PutBytes(out, a.InputHash[:])
	out = PutBytes(out, a.OutputHash[:])
	out = PutBytes(out, a.TraceRoot[:])
	out = PutBytes(out, a.SigPubkey[:])
	return out
}

// EncodeBin produces the canonical 258-byte encoding of a.
func (a *ProofArtifactV0) EncodeBin() []byte {
	out := make([]byte, 0, ProofArtifactV0Len)
	out = PutU16LE(out, a.Version)
	out = PutBytes(out, a.RuntimeID[:])
	out = PutBytes(out, a.ModelHash[:])
	out = PutBytes(out, a.InputHash[:])
	out = PutBytes(out, a.OutputHash[:])
	out = PutBytes(out, a.TraceRoot[:])
	out = PutBytes(out, a.SigPubkey[:])
	out = PutBytes(out, a.Signature[:])
	return out
}

// DecodeProofArtifactV0Bin decodes buf, requiring it be exactly
// ProofArtifactV0Len bytes.
func DecodeProofArtifactV0Bin(buf []byte) (*ProofArtifactV0, error) {
	if len(buf) != ProofArtifactV0Len {
		return nil, newDecodeError(ErrInvalidLength)
	}
	r := NewReader(buf)
	a := &ProofArtifactV0{}
	var err error
	if a.Version, err = r.ReadU16LE(); err != nil {
		return nil, err
	}
	if err := readInto32(r, &a.RuntimeID); err != nil {
		return nil, err
	}
	if err := readInto32(r, &a.ModelHash); err != nil {
		return nil, err
	}
	if err := readInto32(r, &a.InputHash); err != nil {
		return nil, err
	}
	if err := readInto32(r, &a.OutputHash); err != nil {
		return nil, err
	}
	if err := readInto32(r, &a.TraceRoot); err != nil {
		return nil, err
	}
	if err := readInto32(r, &a.SigPubkey); err != nil {
		return nil, err
	}
	if err := readInto64(r, &a.Signature); err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return a, nil
}

// SignDetached derives the Ed25519 public key from secret (a 32-byte seed),
// sets SigPubkey, and signs MessageToSign into Signature.
func (a *ProofArtifactV0) SignDetached(secret [32]byte) {
	sk := ed25519.NewKeyFromSeed(secret[:])
	copy(a.SigPubkey[:], sk.Public().(ed25519.PublicKey))
	sig := ed25519.Sign(sk, a.MessageToSign())
	copy(a.Signature[:], sig)
}

// VerifySignature parses SigPubkey as an Ed25519 public key and verifies
// Signature over the recomputed MessageToSign.
func (a *ProofArtifactV0) VerifySignature() error {
	pub := ed25519.PublicKey(a.SigPubkey[:])
	if len(pub) != ed25519.PublicKeySize {
		return errInvalidSignature
	}
	if !ed25519.Verify(pub, a.MessageToSign(), a.Signature[:]) {
		return errInvalidSignature
	}
	return nil
}

// ProofArtifactV1 is the attested variant: the V0 prefix plus an encoded
// AttestationBundle appended after Signature, with that bundle also folded
// into the signing message so the signature transitively covers it.
type ProofArtifactV1 struct {
	Version     uint16 // must be 1
	RuntimeID   [32]byte
	ModelHash   [32]byte
	InputHash   [32]byte
	OutputHash  [32]byte
	TraceRoot   [32]byte
	SigPubkey   [32]byte
	Signature   [64]byte
	Attestation AttestationBundle
}

// MessageToSign builds the domain-separated V1 signing message.
func (a *ProofArtifactV1) MessageToSign() []byte {
	attBin := a.Attestation.EncodeBin()
	out := make([]byte, 0, 19+2+32*6+len(attBin))
	out = PutBytes(out, signPrefixV1[:])
	out = PutU16LE(out, a.Version)
	out = PutBytes(out, a.RuntimeID[:])
	out = PutBytes(out, a.ModelHash[:])
	out = PutBytes(out, a.InputHash[:])
	out = PutBytes(out, a.OutputHash[:])
	out = PutBytes(out, a.TraceRoot[:])
	out = PutBytes(out, a.SigPubkey[:])
	out = PutBytes(out, attBin)
	return out
}

// EncodeBin produces the canonical encoding of a.
func (a *ProofArtifactV1) EncodeBin() []byte {
	attBin := a.Attestation.EncodeBin()
	out := make([]byte, 0, 2+32*6+64+len(attBin))
	out = PutU16LE(out, a.Version)
	out = PutBytes(out, a.RuntimeID[:])
	out = PutBytes(out, a.ModelHash[:])
	out = PutBytes(out, a.InputHash[:])
	out = PutBytes(out, a.OutputHash[:])
	out = PutBytes(out, a.TraceRoot[:])
	out = PutBytes(out, a.SigPubkey[:])
	out = PutBytes(out, a.Signature[:])
	out = PutBytes(out, attBin)
	return out
}

// DecodeProofArtifactV1Bin decodes buf, requiring version == 1 and a
// well-formed trailing AttestationBundle with no leftover bytes.
func DecodeProofArtifactV1Bin(buf []byte) (*ProofArtifactV1, error) {
	r := NewReader(buf)
	a := &ProofArtifactV1{}
	var err error
	if a.Version, err = r.ReadU16LE(); err != nil {
		return nil, err
	}
	if a.Version != 1 {
		return nil, newDecodeError(ErrInvalidLength)
	}
	if err := readInto32(r, &a.RuntimeID); err != nil {
		return nil, err
	}
	if err := readInto32(r, &a.ModelHash); err != nil {
		return nil, err
	}
	if err := readInto32(r, &a.InputHash); err != nil {
		return nil, err
	}
	if err := readInto32(r, &a.OutputHash); err != nil {
		return nil, err
	}
	if err := readInto32(r, &a.TraceRoot); err != nil {
		return nil, err
	}
	if err := readInto32(r, &a.SigPubkey); err != nil {
		return nil, err
	}
	if err := readInto64(r, &a.Signature); err != nil {
		return nil, err
	}
	rest, err := r.ReadExact(r.Remaining())
	if err != nil {
		return nil, err
	}
	bundle, err := DecodeAttestationBundleBin(rest)
	if err != nil {
		return nil, err
	}
	a.Attestation = *bundle
	return a, nil
}

// SignDetached derives the Ed25519 public key from secret, sets SigPubkey,
// and signs MessageToSign (which includes the encoded attestation) into
// Signature.
func (a *ProofArtifactV1) SignDetached(secret [32]byte) {
	sk := ed25519.NewKeyFromSeed(secret[:])
	copy(a.SigPubkey[:], sk.Public().(ed25519.PublicKey))
	sig := ed25519.Sign(sk, a.MessageToSign())
	copy(a.Signature[:], sig)
}

// VerifySignature parses SigPubkey as an Ed25519 public key and verifies
// Signature over the recomputed MessageToSign.
func (a *ProofArtifactV1) VerifySignature() error {
	pub := ed25519.PublicKey(a.SigPubkey[:])
	if len(pub) != ed25519.PublicKeySize {
		return errInvalidSignature
	}
	if !ed25519.Verify(pub, a.MessageToSign(), a.Signature[:]) {
		return errInvalidSignature
	}
	return nil
}

// ArtifactVersion peeks the leading little-endian u16 version discriminator
// without decoding the rest of the artifact. It returns ok == false if buf
// is shorter than 2 bytes.
func ArtifactVersion(buf []byte) (version uint16, ok bool) {
	if len(buf) < 2 {
		return 0, false
	}
	r := NewReader(buf)
	v, _ := r.ReadU16LE()
	return v, true
}

// RuntimeIDFromBytes derives a deterministic 32-byte runtime_id from an
// arbitrary byte slice via SHA-256, for callers who want a reproducible tag
// instead of a randomly chosen one.
func RuntimeIDFromBytes(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// ErrInvalidSignature is returned by VerifySignature when the public key is
// malformed or the Ed25519 signature does not verify. Callers in the root
// package map this onto the SignatureInvalid error kind.
var ErrInvalidSignature = errors.New("codec: invalid ed25519 signature")

var errInvalidSignature = ErrInvalidSignature

func readInto32(r *Reader, dst *[32]byte) error {
	b, err := r.ReadExact(32)
	if err != nil {
		return err
	}
	copy(dst[:], b)
	return nil
}

func readInto64(r *Reader, dst *[64]byte) error {
	b, err := r.ReadExact(64)
	if err != nil {
		return err
	}
	copy(dst[:], b)
	return nil
}
