// Package codec implements the canonical binary encodings shared by every
// artifact in the proving pipeline: models, inputs, outputs, trace events,
// attestation bundles and proof artifacts. All multi-byte integers and
// float64s are little-endian; decoders reject short reads, wrong magic and
// trailing bytes.
package codec

import (
	"encoding/binary"
	"math"
)

// DecodeErrorKind closes the set of ways a canonical decode can fail.
type DecodeErrorKind int

const (
	// ErrUnexpectedEOF means the buffer ran out before a fixed-size field
	// could be read.
	ErrUnexpectedEOF DecodeErrorKind = iota
	// ErrInvalidMagic means the leading magic bytes did not match.
	ErrInvalidMagic
	// ErrInvalidLength means trailing bytes remained after decode, a
	// length field produced an overflowing allocation, or a tag/enum
	// byte was unrecognized.
	ErrInvalidLength
)

func (k DecodeErrorKind) String() string {
	switch k {
	case ErrUnexpectedEOF:
		return "unexpected eof"
	case ErrInvalidMagic:
		return "invalid magic"
	case ErrInvalidLength:
		return "invalid length"
	default:
		return "unknown decode error"
	}
}

// DecodeError is returned by every Decode*Bin function in this package.
type DecodeError struct {
	Kind DecodeErrorKind
}

func (e *DecodeError) Error() string { return "codec: " + e.Kind.String() }

func newDecodeError(kind DecodeErrorKind) error { return &DecodeError{Kind: kind} }

// MaxVectorLen bounds the number of scalar elements any length-prefixed
// decoder will allocate for. The wire format's length fields are u32 (up to
// 2^32-1 per spec), but an implementation may impose a sanity cap as long as
// it documents that doing so makes otherwise-valid buffers fail to decode
// (spec §9 Open Question). 1<<24 elements is 128MiB of float64s per vector,
// comfortably above any realistic model while guarding against a hostile
// length field paired with a short buffer.
const MaxVectorLen = 1 << 24

// Reader is a bounded little-endian reader over a byte slice. It never
// panics: every read fails with ErrUnexpectedEOF once the cursor would run
// past the end of the buffer.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential little-endian reads.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining reports how many bytes are left unread.
func (r *Reader) Remaining() int {
	if r.pos >= len(r.buf) {
		return 0
	}
	return len(r.buf) - r.pos
}

// Finish returns ErrInvalidLength if any bytes remain unread. Every
// composite decoder in this package calls Finish as its last step, per
// spec §3's "decoders MUST reject trailing bytes" invariant.
func (r *Reader) Finish() error {
	if r.Remaining() != 0 {
		return newDecodeError(ErrInvalidLength)
	}
	return nil
}

// ReadExact returns the next n bytes, or ErrUnexpectedEOF if fewer than n
// remain. The comparison is overflow-safe: pos+n is never computed directly.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	if n < 0 || n > len(r.buf)-r.pos {
		return nil, newDecodeError(ErrUnexpectedEOF)
	}
	start := r.pos
	r.pos += n
	return r.buf[start:r.pos], nil
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.ReadExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16LE reads a little-endian u16.
func (r *Reader) ReadU16LE() (uint16, error) {
	b, err := r.ReadExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32LE reads a little-endian u32.
func (r *Reader) ReadU32LE() (uint32, error) {
	b, err := r.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadF64LE reads a little-endian IEEE-754 float64 (to/from_le_bytes
// semantics — no NaN canonicalization, the raw bit pattern round-trips).
func (r *Reader) ReadF64LE() (float64, error) {
	b, err := r.ReadExact(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// PutU8 appends a single byte.
func PutU8(out []byte, v uint8) []byte {
	return append(out, v)
}

// PutU16LE appends a little-endian u16.
func PutU16LE(out []byte, v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(out, b[:]...)
}

// PutU32LE appends a little-endian u32.
func PutU32LE(out []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(out, b[:]...)
}

// PutF64LE appends a little-endian IEEE-754 float64.
func PutF64LE(out []byte, v float64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return append(out, b[:]...)
}

// PutBytes appends v verbatim.
func PutBytes(out []byte, v []byte) []byte {
	return append(out, v...)
}
