package kernel

import "iter"

// The base kernel table. Values are Base(VendorKhronos, LibraryKHRBase) plus
// a frozen offset; new kernels are appended before Max10 and existing
// entries are never renumbered.
const (
	// Invalid is offset 0x0 of the base library: never a valid kernel.
	Invalid ID = ID(VendorKhronos)<<vendorShift | ID(LibraryKHRBase)<<libraryShift

	ColorConvert       ID = Invalid + 0x1
	ChannelExtract     ID = Invalid + 0x2
	ChannelCombine     ID = Invalid + 0x3
	Sobel3x3           ID = Invalid + 0x4
	Magnitude          ID = Invalid + 0x5
	Phase              ID = Invalid + 0x6
	ScaleImage         ID = Invalid + 0x7
	TableLookup        ID = Invalid + 0x8
	Histogram          ID = Invalid + 0x9
	EqualizeHistogram  ID = Invalid + 0xA
	AbsDiff            ID = Invalid + 0xB
	MeanStdDev         ID = Invalid + 0xC
	Threshold          ID = Invalid + 0xD
	IntegralImage      ID = Invalid + 0xE
	Dilate3x3          ID = Invalid + 0xF
	Erode3x3           ID = Invalid + 0x10
	Median3x3          ID = Invalid + 0x11
	Box3x3             ID = Invalid + 0x12
	Gaussian3x3        ID = Invalid + 0x13
	CustomConvolution  ID = Invalid + 0x14
	GaussianPyramid    ID = Invalid + 0x15
	Accumulate         ID = Invalid + 0x16
	AccumulateWeighted ID = Invalid + 0x17
	AccumulateSquare   ID = Invalid + 0x18
	MinMaxLoc          ID = Invalid + 0x19
	ConvertDepth       ID = Invalid + 0x1A
	CannyEdgeDetector  ID = Invalid + 0x1B
	And                ID = Invalid + 0x1C
	Or                 ID = Invalid + 0x1D
	Xor                ID = Invalid + 0x1E
	Not                ID = Invalid + 0x1F
	Multiply           ID = Invalid + 0x20
	Add                ID = Invalid + 0x21
	Subtract           ID = Invalid + 0x22
	WarpAffine         ID = Invalid + 0x23
	WarpPerspective    ID = Invalid + 0x24
	HarrisCorners      ID = Invalid + 0x25
	FastCorners        ID = Invalid + 0x26
	OpticalFlowPyrLK   ID = Invalid + 0x27
	Remap              ID = Invalid + 0x28
	HalfscaleGaussian  ID = Invalid + 0x29

	// Max10 is the sentinel following the last defined kernel of the 1.0
	// table. Consumers size kernel tables with it and reject identifiers
	// at or above it.
	Max10 ID = Invalid + 0x2A
)

// standardNames maps each defined base kernel to its canonical dotted name.
// Invalid and the Max10 sentinel are deliberately absent: they are markers,
// not kernels.
var standardNames = map[ID]string{
	ColorConvert:       "org.khronos.openvx.color_convert",
	ChannelExtract:     "org.khronos.openvx.channel_extract",
	ChannelCombine:     "org.khronos.openvx.channel_combine",
	Sobel3x3:           "org.khronos.openvx.sobel_3x3",
	Magnitude:          "org.khronos.openvx.magnitude",
	Phase:              "org.khronos.openvx.phase",
	ScaleImage:         "org.khronos.openvx.scale_image",
	TableLookup:        "org.khronos.openvx.table_lookup",
	Histogram:          "org.khronos.openvx.histogram",
	EqualizeHistogram:  "org.khronos.openvx.equalize_histogram",
	AbsDiff:            "org.khronos.openvx.absdiff",
	MeanStdDev:         "org.khronos.openvx.mean_stddev",
	Threshold:          "org.khronos.openvx.threshold",
	IntegralImage:      "org.khronos.openvx.integral_image",
	Dilate3x3:          "org.khronos.openvx.dilate_3x3",
	Erode3x3:           "org.khronos.openvx.erode_3x3",
	Median3x3:          "org.khronos.openvx.median_3x3",
	Box3x3:             "org.khronos.openvx.box_3x3",
	Gaussian3x3:        "org.khronos.openvx.gaussian_3x3",
	CustomConvolution:  "org.khronos.openvx.custom_convolution",
	GaussianPyramid:    "org.khronos.openvx.gaussian_pyramid",
	Accumulate:         "org.khronos.openvx.accumulate",
	AccumulateWeighted: "org.khronos.openvx.accumulate_weighted",
	AccumulateSquare:   "org.khronos.openvx.accumulate_square",
	MinMaxLoc:          "org.khronos.openvx.minmaxloc",
	ConvertDepth:       "org.khronos.openvx.convertdepth",
	CannyEdgeDetector:  "org.khronos.openvx.canny_edge_detector",
	And:                "org.khronos.openvx.and",
	Or:                 "org.khronos.openvx.or",
	Xor:                "org.khronos.openvx.xor",
	Not:                "org.khronos.openvx.not",
	Multiply:           "org.khronos.openvx.multiply",
	Add:                "org.khronos.openvx.add",
	Subtract:           "org.khronos.openvx.subtract",
	WarpAffine:         "org.khronos.openvx.warp_affine",
	WarpPerspective:    "org.khronos.openvx.warp_perspective",
	HarrisCorners:      "org.khronos.openvx.harris_corners",
	FastCorners:        "org.khronos.openvx.fast_corners",
	OpticalFlowPyrLK:   "org.khronos.openvx.optical_flow_pyr_lk",
	Remap:              "org.khronos.openvx.remap",
	HalfscaleGaussian:  "org.khronos.openvx.halfscale_gaussian",
}

var standardIDs = func() map[string]ID {
	m := make(map[string]ID, len(standardNames))
	for id, name := range standardNames {
		m[name] = id
	}
	return m
}()

// Standard iterates the defined base kernels in offset order, excluding
// Invalid and the sentinel.
func Standard() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for id := ColorConvert; id < Max10; id++ {
			if !yield(id) {
				return
			}
		}
	}
}

// StandardCount is the number of defined base kernels.
const StandardCount = int(Max10 - ColorConvert)
