package engine

import (
	"math"

	"github.com/rustkas/verifai-runtime/codec"
)

// RunMLPV1 decodes modelBin/inputBin and runs the single-hidden-layer MLP:
// for each hidden neuron h, z_h = b1[h] + sum(w1[h*input_dim+i]*x[i]); then
// a_h = relu(z_h); then z2 = b2 + sum(w2[h]*a_h); then y = sigmoid(z2).
// Events are emitted in the exact order spec'd: per-neuron OpLinear then
// OpActivation (op_id h / 100+h), then the output-layer OpLinear{200},
// OpActivation{300,Sigmoid}, OpOutput.
func RunMLPV1(modelBin, inputBin []byte) (*Run, error) {
	model, err := codec.DecodeMlpModelV1Bin(modelBin)
	if err != nil {
		return nil, err
	}
	input, err := codec.DecodeInputV0Bin(inputBin)
	if err != nil {
		return nil, err
	}
	if uint32(len(input.X)) != model.InputDim {
		return nil, ErrDimensionMismatch
	}

	hiddenSize := int(model.HiddenSize)
	inputDim := int(model.InputDim)
	hidden := make([]float64, hiddenSize)
	for h := 0; h < hiddenSize; h++ {
		z := model.B1[h]
		rowOffset := h * inputDim
		for i, x := range input.X {
			z += model.W1[rowOffset+i] * x
		}
		hidden[h] = z
	}

	events := make([]codec.TraceEventV0, 0, hiddenSize*2+3)

	for h := 0; h < hiddenSize; h++ {
		z := hidden[h]
		events = append(events, codec.OpLinear{OpID: uint32(h), Z: z})
		activated := math.Max(z, 0)
		events = append(events, codec.OpActivation{
			OpID:   uint32(100 + h),
			Kind:   codec.Relu,
			Input:  z,
			Output: activated,
		})
		hidden[h] = activated
	}

	z2 := model.B2
	for h := 0; h < hiddenSize; h++ {
		z2 += model.W2[h] * hidden[h]
	}

	events = append(events, codec.OpLinear{OpID: 200, Z: z2})
	y := sigmoid(z2)
	events = append(events, codec.OpActivation{OpID: 300, Kind: codec.Sigmoid, Input: z2, Output: y})
	events = append(events, codec.OpOutput{Y: y})

	return &Run{Output: codec.OutputV0{Y: y}, Events: events}, nil
}
