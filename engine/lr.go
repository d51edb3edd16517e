// Package engine implements the deterministic scalar inference engines:
// logistic regression and a single-hidden-layer MLP. Both run ordinary
// float64 arithmetic in a fixed summation order (ascending index,
// accumulator seeded with bias) and emit an ordered trace of the exact
// arithmetic performed, so that any implementation reproducing identical
// trace bytes must have reproduced identical arithmetic. No FMA, no SIMD
// reduction, no reordering.
package engine

import (
	"errors"
	"math"

	"github.com/rustkas/verifai-runtime/codec"
)

// ErrDimensionMismatch is returned when the model and input dimensions
// disagree at inference entry.
var ErrDimensionMismatch = errors.New("engine: model/input dimension mismatch")

// Run is the result of an inference engine: the encoded scalar output plus
// the ordered trace of arithmetic events that produced it.
type Run struct {
	Output codec.OutputV0
	Events []codec.TraceEventV0
}

// RunLogisticRegressionV0 decodes modelBin/inputBin, computes
// z = bias + sum(weights[i]*x[i]) in ascending index order, y = sigmoid(z),
// and emits OpLinear{0,z}, OpActivation{1,Sigmoid,z,y}, OpOutput{y}.
func RunLogisticRegressionV0(modelBin, inputBin []byte) (*Run, error) {
	model, err := codec.DecodeLogisticModelV0Bin(modelBin)
	if err != nil {
		return nil, err
	}
	input, err := codec.DecodeInputV0Bin(inputBin)
	if err != nil {
		return nil, err
	}
	if len(model.Weights) != len(input.X) {
		return nil, ErrDimensionMismatch
	}

	z := model.Bias
	for i := range model.Weights {
		z += model.Weights[i] * input.X[i]
	}

	y := sigmoid(z)

	events := []codec.TraceEventV0{
		codec.OpLinear{OpID: 0, Z: z},
		codec.OpActivation{OpID: 1, Kind: codec.Sigmoid, Input: z, Output: y},
		codec.OpOutput{Y: y},
	}

	return &Run{Output: codec.OutputV0{Y: y}, Events: events}, nil
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
