package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderRoundTrip(t *testing.T) {
	var buf []byte
	buf = PutU8(buf, 0x7F)
	buf = PutU16LE(buf, 0xBEEF)
	buf = PutU32LE(buf, 0xCAFEBABE)
	buf = PutF64LE(buf, 3.5)
	buf = PutBytes(buf, []byte{1, 2, 3})

	r := NewReader(buf)

	u8, err := r.ReadU8()
	require.NoError(t, err)
	require.EqualValues(t, 0x7F, u8)

	u16, err := r.ReadU16LE()
	require.NoError(t, err)
	require.EqualValues(t, 0xBEEF, u16)

	u32, err := r.ReadU32LE()
	require.NoError(t, err)
	require.EqualValues(t, 0xCAFEBABE, u32)

	f64, err := r.ReadF64LE()
	require.NoError(t, err)
	require.Equal(t, 3.5, f64)

	rest, err := r.ReadExact(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, rest)

	require.NoError(t, r.Finish())
}

func TestReaderUnexpectedEOF(t *testing.T) {
	r := NewReader([]byte{1, 2})
	_, err := r.ReadU32LE()
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrUnexpectedEOF, decErr.Kind)
}

func TestReaderFinishRejectsTrailingBytes(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	_, err := r.ReadU8()
	require.NoError(t, err)
	err = r.Finish()
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrInvalidLength, decErr.Kind)
}

func TestReadExactNegativeLength(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	_, err := r.ReadExact(-1)
	require.Error(t, err)
}

func TestReaderRemaining(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	require.Equal(t, 3, r.Remaining())
	_, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, 2, r.Remaining())
}
