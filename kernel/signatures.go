package kernel

func in(name string, t ParamType) Param    { return Param{Name: name, Direction: Input, Type: t} }
func out(name string, t ParamType) Param   { return Param{Name: name, Direction: Output, Type: t} }
func inout(name string, t ParamType) Param { return Param{Name: name, Direction: Bidirectional, Type: t} }

func opt(p Param) Param {
	p.Optional = true
	return p
}

// standardSignatures carries the parameter lists of the 1.0 base kernels.
// Order matters: consumers refer to parameters by index.
var standardSignatures = map[ID]Signature{
	ColorConvert: {
		in("input", TypeImage),
		out("output", TypeImage),
	},
	ChannelExtract: {
		in("input", TypeImage),
		in("channel", TypeEnum),
		out("output", TypeImage),
	},
	ChannelCombine: {
		in("plane0", TypeImage),
		in("plane1", TypeImage),
		opt(in("plane2", TypeImage)),
		opt(in("plane3", TypeImage)),
		out("output", TypeImage),
	},
	Sobel3x3: {
		in("input", TypeImage),
		opt(out("output_x", TypeImage)),
		opt(out("output_y", TypeImage)),
	},
	Magnitude: {
		in("grad_x", TypeImage),
		in("grad_y", TypeImage),
		out("mag", TypeImage),
	},
	Phase: {
		in("grad_x", TypeImage),
		in("grad_y", TypeImage),
		out("orientation", TypeImage),
	},
	ScaleImage: {
		in("src", TypeImage),
		out("dst", TypeImage),
		in("type", TypeEnum),
	},
	TableLookup: {
		in("input", TypeImage),
		in("lut", TypeLUT),
		out("output", TypeImage),
	},
	Histogram: {
		in("input", TypeImage),
		out("distribution", TypeDistribution),
	},
	EqualizeHistogram: {
		in("input", TypeImage),
		out("output", TypeImage),
	},
	AbsDiff: {
		in("in1", TypeImage),
		in("in2", TypeImage),
		out("out", TypeImage),
	},
	MeanStdDev: {
		in("input", TypeImage),
		out("mean", TypeScalar),
		out("stddev", TypeScalar),
	},
	Threshold: {
		in("input", TypeImage),
		in("thresh", TypeThreshold),
		out("output", TypeImage),
	},
	IntegralImage: {
		in("input", TypeImage),
		out("output", TypeImage),
	},
	Dilate3x3: {
		in("input", TypeImage),
		out("output", TypeImage),
	},
	Erode3x3: {
		in("input", TypeImage),
		out("output", TypeImage),
	},
	Median3x3: {
		in("input", TypeImage),
		out("output", TypeImage),
	},
	Box3x3: {
		in("input", TypeImage),
		out("output", TypeImage),
	},
	Gaussian3x3: {
		in("input", TypeImage),
		out("output", TypeImage),
	},
	CustomConvolution: {
		in("input", TypeImage),
		in("conv", TypeConvolution),
		out("output", TypeImage),
	},
	GaussianPyramid: {
		in("input", TypeImage),
		out("gaussian", TypePyramid),
	},
	Accumulate: {
		in("input", TypeImage),
		inout("accum", TypeImage),
	},
	AccumulateWeighted: {
		in("input", TypeImage),
		in("alpha", TypeScalar),
		inout("accum", TypeImage),
	},
	AccumulateSquare: {
		in("input", TypeImage),
		in("shift", TypeScalar),
		inout("accum", TypeImage),
	},
	MinMaxLoc: {
		in("input", TypeImage),
		out("minVal", TypeScalar),
		out("maxVal", TypeScalar),
		opt(out("minLoc", TypeArray)),
		opt(out("maxLoc", TypeArray)),
	},
	ConvertDepth: {
		in("input", TypeImage),
		out("output", TypeImage),
		in("policy", TypeEnum),
		in("shift", TypeScalar),
	},
	CannyEdgeDetector: {
		in("input", TypeImage),
		in("hyst", TypeThreshold),
		in("gradient_size", TypeScalar),
		in("norm_type", TypeEnum),
		out("output", TypeImage),
	},
	And: {
		in("in1", TypeImage),
		in("in2", TypeImage),
		out("out", TypeImage),
	},
	Or: {
		in("in1", TypeImage),
		in("in2", TypeImage),
		out("out", TypeImage),
	},
	Xor: {
		in("in1", TypeImage),
		in("in2", TypeImage),
		out("out", TypeImage),
	},
	Not: {
		in("input", TypeImage),
		out("output", TypeImage),
	},
	Multiply: {
		in("in1", TypeImage),
		in("in2", TypeImage),
		in("scale", TypeScalar),
		in("overflow_policy", TypeEnum),
		in("rounding_policy", TypeEnum),
		out("out", TypeImage),
	},
	Add: {
		in("in1", TypeImage),
		in("in2", TypeImage),
		in("policy", TypeEnum),
		out("out", TypeImage),
	},
	Subtract: {
		in("in1", TypeImage),
		in("in2", TypeImage),
		in("policy", TypeEnum),
		out("out", TypeImage),
	},
	WarpAffine: {
		in("input", TypeImage),
		in("matrix", TypeMatrix),
		in("type", TypeEnum),
		out("output", TypeImage),
	},
	WarpPerspective: {
		in("input", TypeImage),
		in("matrix", TypeMatrix),
		in("type", TypeEnum),
		out("output", TypeImage),
	},
	HarrisCorners: {
		in("input", TypeImage),
		in("strength_thresh", TypeScalar),
		in("min_distance", TypeScalar),
		in("sensitivity", TypeScalar),
		in("gradient_size", TypeScalar),
		in("block_size", TypeScalar),
		out("corners", TypeArray),
		opt(out("num_corners", TypeScalar)),
	},
	FastCorners: {
		in("input", TypeImage),
		in("strength_thresh", TypeScalar),
		in("nonmax_suppression", TypeScalar),
		out("corners", TypeArray),
		opt(out("num_corners", TypeScalar)),
	},
	OpticalFlowPyrLK: {
		in("old_images", TypePyramid),
		in("new_images", TypePyramid),
		in("old_points", TypeArray),
		in("new_points_estimates", TypeArray),
		out("new_points", TypeArray),
		in("termination", TypeEnum),
		in("epsilon", TypeScalar),
		in("num_iterations", TypeScalar),
		in("use_initial_estimate", TypeScalar),
		in("window_dimension", TypeScalar),
	},
	Remap: {
		in("input", TypeImage),
		in("table", TypeRemap),
		in("policy", TypeEnum),
		out("output", TypeImage),
	},
	HalfscaleGaussian: {
		in("input", TypeImage),
		out("output", TypeImage),
		in("kernel_size", TypeScalar),
	},
}
