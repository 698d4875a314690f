// Package vxgo provides an OpenVX-style kernel identifier model for Go.
//
// Kernel identifiers are 32-bit values composed of a vendor ID, a
// library ID and a kernel offset, matching the OpenVX enumeration
// layout. The standard vision kernel table ships with the module, and
// vendors can register additional kernels under their own IDs.
//
// The module is declarative: it models identifiers, signatures,
// capability sets and serialized graph descriptions, but contains no
// image processing or graph execution.
//
// # Quick Start
//
// Create a context and resolve kernels:
//
//	ctx, err := vxgo.New(
//	    vxgo.WithImplementationName("vxgo-reference"),
//	)
//	if err != nil {
//	    panic(err)
//	}
//	defer ctx.Close()
//
//	desc, err := ctx.ResolveName("org.khronos.openvx.sobel_3x3")
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(desc.ID, desc.Signature.Arity())
//
// Register a vendor kernel:
//
//	id := kernel.New(kernel.VendorDefault, 1, 0)
//	err = ctx.Register(id, "com.example.remosaic", sig)
//
// Subpackages:
//
//   - kernel: identifiers, the standard kernel table, signatures
//   - kernelset: capability sets over kernel identifiers
//   - registry: name/ID resolution and vendor registration
//   - graphdesc: serialized graph descriptions and validation
//   - manifest: persisted registry snapshots
//   - blobstore: artifact storage (local, S3, MinIO)
package vxgo
