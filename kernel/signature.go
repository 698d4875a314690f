package kernel

// Direction indicates how a kernel parameter is accessed.
type Direction uint8

const (
	Input Direction = iota
	Output
	Bidirectional
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Input:
		return "in"
	case Output:
		return "out"
	case Bidirectional:
		return "inout"
	default:
		return "unknown"
	}
}

// ParamType is the object class a kernel parameter accepts.
type ParamType uint8

const (
	TypeImage ParamType = iota
	TypeScalar
	TypeEnum
	TypeLUT
	TypeDistribution
	TypeThreshold
	TypeConvolution
	TypeMatrix
	TypePyramid
	TypeArray
	TypeRemap
)

// String returns a human-readable parameter type name.
func (t ParamType) String() string {
	switch t {
	case TypeImage:
		return "Image"
	case TypeScalar:
		return "Scalar"
	case TypeEnum:
		return "Enum"
	case TypeLUT:
		return "LUT"
	case TypeDistribution:
		return "Distribution"
	case TypeThreshold:
		return "Threshold"
	case TypeConvolution:
		return "Convolution"
	case TypeMatrix:
		return "Matrix"
	case TypePyramid:
		return "Pyramid"
	case TypeArray:
		return "Array"
	case TypeRemap:
		return "Remap"
	default:
		return "Unknown"
	}
}

// Param describes one slot of a kernel's parameter list.
type Param struct {
	Name      string
	Direction Direction
	Type      ParamType
	Optional  bool
}

// Signature is a kernel's ordered parameter list. It is declarative data:
// it says what a kernel consumes and produces, not how.
type Signature []Param

// Arity returns the total number of parameter slots.
func (s Signature) Arity() int { return len(s) }

// RequiredArity returns the number of non-optional slots.
func (s Signature) RequiredArity() int {
	n := 0
	for _, p := range s {
		if !p.Optional {
			n++
		}
	}
	return n
}

// Inputs returns the indices of input parameters.
func (s Signature) Inputs() []int { return s.indices(Input) }

// Outputs returns the indices of output parameters.
func (s Signature) Outputs() []int { return s.indices(Output) }

// InOuts returns the indices of bidirectional parameters.
func (s Signature) InOuts() []int { return s.indices(Bidirectional) }

func (s Signature) indices(d Direction) []int {
	var out []int
	for i, p := range s {
		if p.Direction == d {
			out = append(out, i)
		}
	}
	return out
}

// SignatureOf returns the standard signature of a base kernel.
func SignatureOf(id ID) (Signature, bool) {
	sig, ok := standardSignatures[id]
	return sig, ok
}
