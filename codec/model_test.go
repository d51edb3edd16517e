package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogisticModelV0RoundTrip(t *testing.T) {
	m := &LogisticModelV0{Weights: []float64{0.1, -0.2, 3.5}, Bias: 0.75}
	buf := m.EncodeBin()

	decoded, err := DecodeLogisticModelV0Bin(buf)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestLogisticModelV0RejectsBadMagic(t *testing.T) {
	m := &LogisticModelV0{Weights: []float64{1}, Bias: 0}
	buf := m.EncodeBin()
	buf[0] ^= 0xFF

	_, err := DecodeLogisticModelV0Bin(buf)
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrInvalidMagic, decErr.Kind)
}

func TestLogisticModelV0RejectsTrailingBytes(t *testing.T) {
	m := &LogisticModelV0{Weights: []float64{1, 2}, Bias: 0}
	buf := append(m.EncodeBin(), 0xAA)

	_, err := DecodeLogisticModelV0Bin(buf)
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrInvalidLength, decErr.Kind)
}

func TestLogisticModelV0RejectsOversizedLength(t *testing.T) {
	buf := PutBytes(nil, modelMagic[:])
	buf = PutU32LE(buf, MaxVectorLen+1)

	_, err := DecodeLogisticModelV0Bin(buf)
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrInvalidLength, decErr.Kind)
}

func TestInputV0RoundTrip(t *testing.T) {
	in := &InputV0{X: []float64{1, 2, 3, 4}}
	buf := in.EncodeBin()

	decoded, err := DecodeInputV0Bin(buf)
	require.NoError(t, err)
	require.Equal(t, in, decoded)
}

func TestInputV0EmptyVector(t *testing.T) {
	in := &InputV0{X: nil}
	buf := in.EncodeBin()

	decoded, err := DecodeInputV0Bin(buf)
	require.NoError(t, err)
	require.Empty(t, decoded.X)
}

func TestOutputV0RoundTrip(t *testing.T) {
	o := &OutputV0{Y: 0.123456789}
	buf := o.EncodeBin()
	require.Len(t, buf, 16)

	decoded, err := DecodeOutputV0Bin(buf)
	require.NoError(t, err)
	require.Equal(t, o, decoded)
}

func TestMlpModelV1RoundTrip(t *testing.T) {
	m := &MlpModelV1{
		InputDim:   2,
		HiddenSize: 3,
		W1:         []float64{1, 2, 3, 4, 5, 6},
		B1:         []float64{0.1, 0.2, 0.3},
		W2:         []float64{1, 1, 1},
		B2:         0.5,
	}
	buf := m.EncodeBin()

	decoded, err := DecodeMlpModelV1Bin(buf)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestMlpModelV1RejectsTruncatedW1(t *testing.T) {
	m := &MlpModelV1{
		InputDim:   2,
		HiddenSize: 3,
		W1:         []float64{1, 2, 3, 4, 5, 6},
		B1:         []float64{0.1, 0.2, 0.3},
		W2:         []float64{1, 1, 1},
		B2:         0.5,
	}
	buf := m.EncodeBin()
	buf = buf[:len(buf)-10]

	_, err := DecodeMlpModelV1Bin(buf)
	require.Error(t, err)
}

func TestMlpModelV1RejectsHugeDimensionProduct(t *testing.T) {
	buf := PutBytes(nil, mlpMagic[:])
	buf = PutU32LE(buf, 1<<20)
	buf = PutU32LE(buf, 1<<20)

	_, err := DecodeMlpModelV1Bin(buf)
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrInvalidLength, decErr.Kind)
}
