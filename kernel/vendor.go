package kernel

// Vendor identifiers assigned by the standard. The vendor component
// partitions the identifier space so independently developed kernel
// libraries never collide.
const (
	VendorKhronos     VendorID = 0x000
	VendorTI          VendorID = 0x001
	VendorQualcomm    VendorID = 0x002
	VendorNVIDIA      VendorID = 0x003
	VendorARM         VendorID = 0x004
	VendorBDTI        VendorID = 0x005
	VendorRenesas     VendorID = 0x006
	VendorVivante     VendorID = 0x007
	VendorXilinx      VendorID = 0x008
	VendorAxis        VendorID = 0x009
	VendorMovidius    VendorID = 0x00A
	VendorSamsung     VendorID = 0x00B
	VendorFreescale   VendorID = 0x00C
	VendorAMD         VendorID = 0x00D
	VendorBroadcom    VendorID = 0x00E
	VendorIntel       VendorID = 0x00F
	VendorMarvell     VendorID = 0x010
	VendorMediaTek    VendorID = 0x011
	VendorST          VendorID = 0x012
	VendorCEVA        VendorID = 0x013
	VendorItseez      VendorID = 0x014
	VendorImagination VendorID = 0x015

	// VendorDefault is reserved for implementations that do not carry a
	// vendor assignment.
	VendorDefault VendorID = 0xFFF

	// VendorMax bounds the vendor component (12 bits).
	VendorMax VendorID = 0xFFF
)

// LibraryKHRBase is the single library group the base standard defines.
const LibraryKHRBase LibraryID = 0x0
