package codec

import "bytes"

var (
	modelMagic  = [8]byte{'V', 'F', 'A', 'I', 'M', 'D', 'L', '0'}
	inputMagic  = [8]byte{'V', 'F', 'A', 'I', 'I', 'N', 'P', '0'}
	outputMagic = [8]byte{'V', 'F', 'A', 'I', 'O', 'U', 'T', '0'}
	mlpMagic    = [8]byte{'V', 'F', 'A', 'I', 'M', 'L', 'P', '1'}
)

// LogisticModelV0 is the canonical logistic-regression model: a weight
// vector and bias, magic-tagged "VFAIMDL0".
type LogisticModelV0 struct {
	Weights []float64
	Bias    float64
}

// EncodeBin produces the canonical byte encoding of m.
func (m *LogisticModelV0) EncodeBin() []byte {
	out := make([]byte, 0, 8+4+len(m.Weights)*8+8)
	out = PutBytes(out, modelMagic[:])
	out = PutU32LE(out, uint32(len(m.Weights)))
	for _, w := range m.Weights {
		out = PutF64LE(out, w)
	}
	out = PutF64LE(out, m.Bias)
	return out
}

// DecodeLogisticModelV0Bin decodes buf, rejecting wrong magic, short reads
// and trailing bytes.
func DecodeLogisticModelV0Bin(buf []byte) (*LogisticModelV0, error) {
	r := NewReader(buf)
	magic, err := r.ReadExact(8)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, modelMagic[:]) {
		return nil, newDecodeError(ErrInvalidMagic)
	}
	n, err := r.ReadU32LE()
	if err != nil {
		return nil, err
	}
	if n > MaxVectorLen {
		return nil, newDecodeError(ErrInvalidLength)
	}
	weights := make([]float64, n)
	for i := range weights {
		w, err := r.ReadF64LE()
		if err != nil {
			return nil, err
		}
		weights[i] = w
	}
	bias, err := r.ReadF64LE()
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return &LogisticModelV0{Weights: weights, Bias: bias}, nil
}

// InputV0 is the canonical input vector, magic-tagged "VFAIINP0".
type InputV0 struct {
	X []float64
}

// EncodeBin produces the canonical byte encoding of in.
func (in *InputV0) EncodeBin() []byte {
	out := make([]byte, 0, 8+4+len(in.X)*8)
	out = PutBytes(out, inputMagic[:])
	out = PutU32LE(out, uint32(len(in.X)))
	for _, v := range in.X {
		out = PutF64LE(out, v)
	}
	return out
}

// DecodeInputV0Bin decodes buf, rejecting wrong magic, short reads and
// trailing bytes.
func DecodeInputV0Bin(buf []byte) (*InputV0, error) {
	r := NewReader(buf)
	magic, err := r.ReadExact(8)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, inputMagic[:]) {
		return nil, newDecodeError(ErrInvalidMagic)
	}
	n, err := r.ReadU32LE()
	if err != nil {
		return nil, err
	}
	if n > MaxVectorLen {
		return nil, newDecodeError(ErrInvalidLength)
	}
	x := make([]float64, n)
	for i := range x {
		v, err := r.ReadF64LE()
		if err != nil {
			return nil, err
		}
		x[i] = v
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return &InputV0{X: x}, nil
}

// OutputV0 is the canonical scalar output, magic-tagged "VFAIOUT0". Its
// encoding is always exactly 16 bytes.
type OutputV0 struct {
	Y float64
}

// EncodeBin produces the canonical 16-byte encoding of o.
func (o *OutputV0) EncodeBin() []byte {
	out := make([]byte, 0, 16)
	out = PutBytes(out, outputMagic[:])
	out = PutF64LE(out, o.Y)
	return out
}

// DecodeOutputV0Bin decodes buf, rejecting wrong magic, short reads and
// trailing bytes.
func DecodeOutputV0Bin(buf []byte) (*OutputV0, error) {
	r := NewReader(buf)
	magic, err := r.ReadExact(8)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, outputMagic[:]) {
		return nil, newDecodeError(ErrInvalidMagic)
	}
	y, err := r.ReadF64LE()
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return &OutputV0{Y: y}, nil
}

// MlpModelV1 is the canonical single-hidden-layer MLP model, magic-tagged
// "VFAIMLP1": a ReLU hidden layer (W1 row-major per hidden neuron, B1) and a
// sigmoid output layer (W2, B2).
type MlpModelV1 struct {
	InputDim   uint32
	HiddenSize uint32
	W1         []float64 // len == HiddenSize*InputDim, row-major per hidden neuron
	B1         []float64 // len == HiddenSize
	W2         []float64 // len == HiddenSize
	B2         float64
}

// EncodeBin produces the canonical byte encoding of m.
func (m *MlpModelV1) EncodeBin() []byte {
	out := make([]byte, 0, 8+4+4+len(m.W1)*8+len(m.B1)*8+len(m.W2)*8+8)
	out = PutBytes(out, mlpMagic[:])
	out = PutU32LE(out, m.InputDim)
	out = PutU32LE(out, m.HiddenSize)
	for _, w := range m.W1 {
		out = PutF64LE(out, w)
	}
	for _, b := range m.B1 {
		out = PutF64LE(out, b)
	}
	for _, w := range m.W2 {
		out = PutF64LE(out, w)
	}
	out = PutF64LE(out, m.B2)
	return out
}

// DecodeMlpModelV1Bin decodes buf, rejecting wrong magic, short reads,
// trailing bytes, and an input_dim*hidden_size product that would overflow
// or exceed MaxVectorLen.
func DecodeMlpModelV1Bin(buf []byte) (*MlpModelV1, error) {
	r := NewReader(buf)
	magic, err := r.ReadExact(8)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, mlpMagic[:]) {
		return nil, newDecodeError(ErrInvalidMagic)
	}
	inputDim, err := r.ReadU32LE()
	if err != nil {
		return nil, err
	}
	hiddenSize, err := r.ReadU32LE()
	if err != nil {
		return nil, err
	}
	w1Len := w1Length(inputDim, hiddenSize)
	if w1Len > MaxVectorLen || uint64(hiddenSize) > MaxVectorLen {
		return nil, newDecodeError(ErrInvalidLength)
	}
	w1 := make([]float64, w1Len)
	for i := range w1 {
		v, err := r.ReadF64LE()
		if err != nil {
			return nil, err
		}
		w1[i] = v
	}
	b1 := make([]float64, hiddenSize)
	for i := range b1 {
		v, err := r.ReadF64LE()
		if err != nil {
			return nil, err
		}
		b1[i] = v
	}
	w2 := make([]float64, hiddenSize)
	for i := range w2 {
		v, err := r.ReadF64LE()
		if err != nil {
			return nil, err
		}
		w2[i] = v
	}
	b2, err := r.ReadF64LE()
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return &MlpModelV1{
		InputDim:   inputDim,
		HiddenSize: hiddenSize,
		W1:         w1,
		B1:         b1,
		W2:         w2,
		B2:         b2,
	}, nil
}

// w1Length computes hidden_size*input_dim as a uint64 — wide enough that the
// multiply of two uint32 wire fields can never itself overflow — so the
// result can be compared against MaxVectorLen before any allocation happens,
// per spec §9's "check hidden*input_dim for arithmetic overflow" note.
func w1Length(inputDim, hiddenSize uint32) uint64 {
	return uint64(inputDim) * uint64(hiddenSize)
}
