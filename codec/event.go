package codec

const (
	tagOpLinear     = 0x01
	tagOpActivation = 0x02
	tagOpOutput     = 0x03
)

// ActivationKind is the closed enumeration of activation functions a trace
// event can record.
type ActivationKind uint8

const (
	// Sigmoid is 1/(1+exp(-z)).
	Sigmoid ActivationKind = 1
	// Relu is max(z, 0).
	Relu ActivationKind = 2
)

func activationKindFromU8(v uint8) (ActivationKind, error) {
	switch ActivationKind(v) {
	case Sigmoid, Relu:
		return ActivationKind(v), nil
	default:
		return 0, newDecodeError(ErrInvalidLength)
	}
}

// TraceEventV0 is one entry in the ordered arithmetic trace emitted by an
// inference engine. It is a closed, tag-dispatched union of OpLinear,
// OpActivation and OpOutput.
type TraceEventV0 interface {
	EncodeBin() []byte
	isTraceEvent()
}

// OpLinear records the result of a weighted-sum accumulation.
type OpLinear struct {
	OpID uint32
	Z    float64
}

func (OpLinear) isTraceEvent() {}

// EncodeBin produces the canonical byte encoding of the event.
func (e OpLinear) EncodeBin() []byte {
	out := make([]byte, 0, 1+4+8)
	out = PutU8(out, tagOpLinear)
	out = PutU32LE(out, e.OpID)
	out = PutF64LE(out, e.Z)
	return out
}

// OpActivation records an activation function application.
type OpActivation struct {
	OpID   uint32
	Kind   ActivationKind
	Input  float64
	Output float64
}

func (OpActivation) isTraceEvent() {}

// EncodeBin produces the canonical byte encoding of the event.
func (e OpActivation) EncodeBin() []byte {
	out := make([]byte, 0, 1+4+1+8+8)
	out = PutU8(out, tagOpActivation)
	out = PutU32LE(out, e.OpID)
	out = PutU8(out, uint8(e.Kind))
	out = PutF64LE(out, e.Input)
	out = PutF64LE(out, e.Output)
	return out
}

// OpOutput records the final scalar output of the traced computation.
type OpOutput struct {
	Y float64
}

func (OpOutput) isTraceEvent() {}

// EncodeBin produces the canonical byte encoding of the event.
func (e OpOutput) EncodeBin() []byte {
	out := make([]byte, 0, 1+8)
	out = PutU8(out, tagOpOutput)
	out = PutF64LE(out, e.Y)
	return out
}

// DecodeTraceEventV0Bin decodes buf, rejecting unknown tags, unknown
// activation kinds, short reads and trailing bytes.
func DecodeTraceEventV0Bin(buf []byte) (TraceEventV0, error) {
	r := NewReader(buf)
	tag, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagOpLinear:
		opID, err := r.ReadU32LE()
		if err != nil {
			return nil, err
		}
		z, err := r.ReadF64LE()
		if err != nil {
			return nil, err
		}
		if err := r.Finish(); err != nil {
			return nil, err
		}
		return OpLinear{OpID: opID, Z: z}, nil
	case tagOpActivation:
		opID, err := r.ReadU32LE()
		if err != nil {
			return nil, err
		}
		kindByte, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		kind, err := activationKindFromU8(kindByte)
		if err != nil {
			return nil, err
		}
		input, err := r.ReadF64LE()
		if err != nil {
			return nil, err
		}
		output, err := r.ReadF64LE()
		if err != nil {
			return nil, err
		}
		if err := r.Finish(); err != nil {
			return nil, err
		}
		return OpActivation{OpID: opID, Kind: kind, Input: input, Output: output}, nil
	case tagOpOutput:
		y, err := r.ReadF64LE()
		if err != nil {
			return nil, err
		}
		if err := r.Finish(); err != nil {
			return nil, err
		}
		return OpOutput{Y: y}, nil
	default:
		return nil, newDecodeError(ErrInvalidLength)
	}
}

// EncodeEvents encodes a trace in emission order, one entry per event.
func EncodeEvents(events []TraceEventV0) [][]byte {
	out := make([][]byte, len(events))
	for i, e := range events {
		out[i] = e.EncodeBin()
	}
	return out
}
