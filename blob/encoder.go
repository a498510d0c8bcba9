package blob

import (
	"fmt"
	"hash/crc32"

	"github.com/telqor/timerle/compress"
	"github.com/telqor/timerle/errs"
	"github.com/telqor/timerle/format"
	"github.com/telqor/timerle/internal/hash"
	"github.com/telqor/timerle/internal/options"
	"github.com/telqor/timerle/internal/pool"
	"github.com/telqor/timerle/rle"
	"github.com/telqor/timerle/section"
)

// Encoder serializes run-length encodings into blobs. An Encoder holds only
// configuration, so one instance may encode any number of blobs and is safe
// for concurrent use.
type Encoder struct {
	compression format.CompressionType
	timeFormat  format.TimeFormat
	streamID    uint64
	bigEndian   bool
}

// Option configures an Encoder.
type Option = options.Option[*Encoder]

// WithCompression selects the payload compression codec. The default is no
// compression; run-length payloads are often a few dozen bytes.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(e *Encoder) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		e.compression = compression

		return nil
	})
}

// WithTimeFormat records the time representation of the boundary values in
// the blob header. The codec never interprets it; it is carried so consumers
// know how to map the floats back to wall-clock time. The default is
// format.TimeRelativeSeconds.
func WithTimeFormat(timeFormat format.TimeFormat) Option {
	return options.New(func(e *Encoder) error {
		switch timeFormat {
		case format.TimeRelativeSeconds, format.TimeUnixSeconds, format.TimeMJD:
			e.timeFormat = timeFormat
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidTimeFormat, timeFormat)
		}
	})
}

// WithStreamName identifies the acquisition stream the encoding belongs to.
// The blob header stores the xxHash64 of the name, not the name itself.
func WithStreamName(name string) Option {
	return options.NoError(func(e *Encoder) {
		e.streamID = hash.StreamID(name)
	})
}

// WithStreamID sets the stream identity hash directly, for callers that
// already track 64-bit stream IDs.
func WithStreamID(id uint64) Option {
	return options.NoError(func(e *Encoder) {
		e.streamID = id
	})
}

// WithBigEndian serializes the header fields in big-endian byte order. The
// default is little-endian. The payload is all varints and carries no byte
// order of its own.
func WithBigEndian() Option {
	return options.NoError(func(e *Encoder) {
		e.bigEndian = true
	})
}

// NewEncoder creates an Encoder with the given options. The zero-option
// encoder produces uncompressed little-endian blobs with no stream identity
// and the relative-seconds time format.
func NewEncoder(opts ...Option) (*Encoder, error) {
	enc := &Encoder{
		compression: format.CompressionNone,
		timeFormat:  format.TimeRelativeSeconds,
	}
	if err := options.Apply(enc, opts...); err != nil {
		return nil, err
	}

	return enc, nil
}

// Encode serializes enc into a self-describing blob: fixed header followed by
// the (optionally compressed) columnar payload.
//
// The encoding is validated first, so a malformed encoding fails here rather
// than producing a blob that cannot be decoded.
func (e *Encoder) Encode(enc rle.Encoding) ([]byte, error) {
	if err := enc.Validate(); err != nil {
		return nil, err
	}

	header := section.NewHeader()
	header.Flag.SetCompression(e.compression)
	header.Flag.SetFormat(e.timeFormat)
	if e.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.StreamID = e.streamID
	header.RunCount = uint32(enc.NumRuns())
	header.SampleCount = uint32(enc.NumSamples())

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	appendPayload(buf, enc)

	codec, err := compress.GetCodec(e.compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compressing payload: %w", err)
	}

	header.PayloadChecksum = crc32.ChecksumIEEE(payload)

	out := make([]byte, 0, section.HeaderSize+len(payload))
	out = append(out, header.Bytes()...)
	out = append(out, payload...)

	return out, nil
}
