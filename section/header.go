// Package section defines the fixed-size header of the run-length time blob.
//
// A blob is the header followed by a single payload holding the three
// columnar sections of the encoding. The header records everything a decoder
// needs before touching the payload: format magic and byte order, payload
// compression, time representation, run and sample counts, the stream
// identity hash, and the payload checksum.
package section

import "github.com/telqor/timerle/errs"

// Header is the fixed-size header at the start of a run-length time blob.
//
// Byte layout (offsets within the 24-byte header):
//
//	0-1   Flag.Options (always little-endian)
//	2     Flag.CompressionType
//	3     Flag.TimeFormat
//	4-7   RunCount
//	8-11  SampleCount
//	12-19 StreamID
//	20-23 PayloadChecksum
type Header struct {
	// RunCount is the number of runs in the encoded payload.
	RunCount uint32
	// SampleCount is the total number of samples the runs represent, i.e.
	// the sum of the run lengths. Stored redundantly so readers can size
	// reconstruction buffers without decoding the payload.
	SampleCount uint32
	// StreamID is the xxHash64 of the caller-supplied stream name, 0 when no
	// name was given.
	StreamID uint64
	// PayloadChecksum is the CRC32 (IEEE) of the stored payload bytes, after
	// compression.
	PayloadChecksum uint32

	// Flag is the packed options field, serialized at byte offset 0-3.
	Flag Flag
}

// NewHeader creates a Header with default flags; counts and checksum are
// filled in when the encoder finishes.
func NewHeader() *Header {
	return &Header{
		Flag: NewFlag(),
	}
}

// Parse parses the header from a byte slice of exactly HeaderSize bytes and
// validates the flag.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The options word is little-endian regardless of payload byte order;
	// the rest of the header follows the endianness bit it carries.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.CompressionType = data[2]
	h.Flag.TimeFormat = data[3]

	engine := h.Flag.GetEndianEngine()
	h.RunCount = engine.Uint32(data[4:8])
	h.SampleCount = engine.Uint32(data[8:12])
	h.StreamID = engine.Uint64(data[12:20])
	h.PayloadChecksum = engine.Uint32(data[20:24])

	return h.Flag.Validate()
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.CompressionType
	b[3] = h.Flag.TimeFormat

	engine := h.Flag.GetEndianEngine()
	engine.PutUint32(b[4:8], h.RunCount)
	engine.PutUint32(b[8:12], h.SampleCount)
	engine.PutUint64(b[12:20], h.StreamID)
	engine.PutUint32(b[20:24], h.PayloadChecksum)

	return b
}

// ParseHeader parses a Header from the start of data, tolerating trailing
// payload bytes.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	var h Header
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
