package section

const (
	// HeaderSize is the size in bytes of the fixed run-length blob header.
	HeaderSize = 24

	// Bit masks for the Options field.
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3), must be 0
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicRunLengthV1Opt is the version 1 magic number for the run-length
	// time blob format, stored in bits 4-15 of the Options field.
	MagicRunLengthV1Opt = 0x5A10
)
