package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rustkas/verifai-runtime/codec"
)

func TestRunMLPV1(t *testing.T) {
	model := &codec.MlpModelV1{
		InputDim:   2,
		HiddenSize: 2,
		W1:         []float64{1, -1, 0.5, 0.5},
		B1:         []float64{0, -1},
		W2:         []float64{1, 1},
		B2:         0,
	}
	input := &codec.InputV0{X: []float64{2, 1}}

	run, err := RunMLPV1(model.EncodeBin(), input.EncodeBin())
	require.NoError(t, err)

	z0 := 0.0 + 1*2 + -1*1
	a0 := math.Max(z0, 0)
	z1 := -1.0 + 0.5*2 + 0.5*1
	a1 := math.Max(z1, 0)
	z2 := 0.0 + a0 + a1
	wantY := 1.0 / (1.0 + math.Exp(-z2))

	require.InDelta(t, wantY, run.Output.Y, 1e-12)
	require.Len(t, run.Events, 7)
	require.Equal(t, codec.OpLinear{OpID: 0, Z: z0}, run.Events[0])
	require.Equal(t, codec.OpActivation{OpID: 100, Kind: codec.Relu, Input: z0, Output: a0}, run.Events[1])
	require.Equal(t, codec.OpLinear{OpID: 1, Z: z1}, run.Events[2])
	require.Equal(t, codec.OpActivation{OpID: 101, Kind: codec.Relu, Input: z1, Output: a1}, run.Events[3])
	require.Equal(t, codec.OpLinear{OpID: 200, Z: z2}, run.Events[4])
	require.Equal(t, codec.OpActivation{OpID: 300, Kind: codec.Sigmoid, Input: z2, Output: wantY}, run.Events[5])
	require.Equal(t, codec.OpOutput{Y: wantY}, run.Events[6])
}

func TestRunMLPV1DimensionMismatch(t *testing.T) {
	model := &codec.MlpModelV1{
		InputDim:   3,
		HiddenSize: 1,
		W1:         []float64{1, 1, 1},
		B1:         []float64{0},
		W2:         []float64{1},
		B2:         0,
	}
	input := &codec.InputV0{X: []float64{1, 2}}

	_, err := RunMLPV1(model.EncodeBin(), input.EncodeBin())
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
