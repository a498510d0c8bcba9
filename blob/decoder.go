package blob

import (
	"fmt"
	"hash/crc32"

	"github.com/telqor/timerle/compress"
	"github.com/telqor/timerle/errs"
	"github.com/telqor/timerle/rle"
	"github.com/telqor/timerle/section"
)

// Decode parses a blob back into its run-length encoding and header.
//
// The header flag is validated (magic, compression, time format), the stored
// payload is checked against the header checksum before decompression, and
// the decoded encoding must match the header's run and sample counts and
// pass the structural validation used by rle.Decompress. Corruption fails
// loudly; Decode never returns a truncated encoding.
func Decode(data []byte) (rle.Encoding, section.Header, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return rle.Encoding{}, section.Header{}, err
	}

	payload := data[section.HeaderSize:]
	if checksum := crc32.ChecksumIEEE(payload); checksum != header.PayloadChecksum {
		return rle.Encoding{}, section.Header{}, fmt.Errorf("%w: stored 0x%08X, computed 0x%08X",
			errs.ErrChecksumMismatch, header.PayloadChecksum, checksum)
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return rle.Encoding{}, section.Header{}, err
	}
	raw, err := codec.Decompress(payload)
	if err != nil {
		return rle.Encoding{}, section.Header{}, fmt.Errorf("decompressing payload: %w", err)
	}

	enc, err := decodePayload(raw, int(header.RunCount))
	if err != nil {
		return rle.Encoding{}, section.Header{}, err
	}
	if err := enc.Validate(); err != nil {
		return rle.Encoding{}, section.Header{}, err
	}
	if samples := enc.NumSamples(); samples != int(header.SampleCount) {
		return rle.Encoding{}, section.Header{}, fmt.Errorf("%w: header declares %d samples, runs sum to %d",
			errs.ErrMalformedEncoding, header.SampleCount, samples)
	}

	return enc, header, nil
}
