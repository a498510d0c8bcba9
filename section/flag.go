package section

import (
	"fmt"

	"github.com/telqor/timerle/endian"
	"github.com/telqor/timerle/errs"
	"github.com/telqor/timerle/format"
)

// Flag is the packed field at the start of the run-length blob header.
type Flag struct {
	// Options is a packed field for format options.
	// Bit 0 is the endianness flag: 0 means little-endian payload, 1 means
	// big-endian.
	// Bits 1-3 are reserved and must be 0.
	// Bits 4-15 are the magic number identifying the blob format
	// (MagicRunLengthV1Opt).
	//
	// The Options field itself is always serialized little-endian so the
	// endianness bit can be read before the payload byte order is known.
	Options uint16

	// CompressionType is the compression applied to the blob payload.
	CompressionType uint8

	// TimeFormat records the time representation of the boundary values
	// (relative seconds, Unix seconds, or MJD days). The codec never
	// interprets it; it travels with the blob so consumers can.
	TimeFormat uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

var validTimeFormats = map[uint8]struct{}{
	uint8(format.TimeRelativeSeconds): {},
	uint8(format.TimeUnixSeconds):     {},
	uint8(format.TimeMJD):             {},
}

// NewFlag creates a Flag with default settings: little-endian payload, no
// compression, relative-seconds time format.
func NewFlag() Flag {
	flag := Flag{
		Options:         MagicRunLengthV1Opt,
		CompressionType: uint8(format.CompressionNone),
		TimeFormat:      uint8(format.TimeRelativeSeconds),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the payload is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the payload is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian payload byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= uint16(EndiannessMask)
}

// WithBigEndian sets big-endian payload byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// MagicNumber returns the magic number from the Options field.
func (f Flag) MagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression records the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Format returns the time representation of the boundary values.
func (f Flag) Format() format.TimeFormat {
	return format.TimeFormat(f.TimeFormat)
}

// SetFormat records the time representation of the boundary values.
func (f *Flag) SetFormat(timeFormat format.TimeFormat) {
	f.TimeFormat = uint8(timeFormat)
}

// Validate checks the magic number and that the compression and time format
// enums carry known values.
func (f Flag) Validate() error {
	if f.MagicNumber() != MagicRunLengthV1Opt {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, f.MagicNumber())
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: options 0x%04X", errs.ErrInvalidReservedBits, f.Options)
	}
	if _, ok := validCompressions[f.CompressionType]; !ok {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompressionType, f.CompressionType)
	}
	if _, ok := validTimeFormats[f.TimeFormat]; !ok {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidTimeFormat, f.TimeFormat)
	}

	return nil
}
