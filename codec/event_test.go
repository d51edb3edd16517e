package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpLinearRoundTrip(t *testing.T) {
	e := OpLinear{OpID: 7, Z: -1.5}
	decoded, err := DecodeTraceEventV0Bin(e.EncodeBin())
	require.NoError(t, err)
	require.Equal(t, e, decoded)
}

func TestOpActivationRoundTrip(t *testing.T) {
	e := OpActivation{OpID: 1, Kind: Sigmoid, Input: 0.5, Output: 0.62}
	decoded, err := DecodeTraceEventV0Bin(e.EncodeBin())
	require.NoError(t, err)
	require.Equal(t, e, decoded)
}

func TestOpOutputRoundTrip(t *testing.T) {
	e := OpOutput{Y: 0.999}
	decoded, err := DecodeTraceEventV0Bin(e.EncodeBin())
	require.NoError(t, err)
	require.Equal(t, e, decoded)
}

func TestDecodeTraceEventRejectsUnknownTag(t *testing.T) {
	_, err := DecodeTraceEventV0Bin([]byte{0xFF})
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrInvalidLength, decErr.Kind)
}

func TestDecodeTraceEventRejectsUnknownActivationKind(t *testing.T) {
	buf := PutU8(nil, tagOpActivation)
	buf = PutU32LE(buf, 0)
	buf = PutU8(buf, 99)
	buf = PutF64LE(buf, 0)
	buf = PutF64LE(buf, 0)

	_, err := DecodeTraceEventV0Bin(buf)
	require.Error(t, err)
}

func TestDecodeTraceEventRejectsTrailingBytes(t *testing.T) {
	e := OpOutput{Y: 1}
	buf := append(e.EncodeBin(), 0x00)

	_, err := DecodeTraceEventV0Bin(buf)
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrInvalidLength, decErr.Kind)
}

func TestEncodeEventsPreservesOrder(t *testing.T) {
	events := []TraceEventV0{
		OpLinear{OpID: 0, Z: 1},
		OpActivation{OpID: 1, Kind: Relu, Input: 1, Output: 1},
		OpOutput{Y: 1},
	}
	encoded := EncodeEvents(events)
	require.Len(t, encoded, 3)
	for i, e := range events {
		require.Equal(t, e.EncodeBin(), encoded[i])
	}
}
