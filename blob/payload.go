package blob

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/telqor/timerle/errs"
	"github.com/telqor/timerle/internal/pool"
	"github.com/telqor/timerle/rle"
)

// appendPayload serializes the three columnar sections of enc into buf:
// start times, end times, run lengths.
//
// Boundary times are stored as their IEEE-754 bit patterns, varint-delta
// encoded: the first value of each section is a full uvarint, every
// subsequent value a zigzag+uvarint encoded delta from the previous bit
// pattern. Deltas over the integer bit patterns are exact, so the floats
// survive the round trip bit-for-bit, and consecutive run boundaries share
// exponent and high mantissa bits, which keeps the deltas small. Run lengths
// are plain uvarints. The whole payload is varints, so it has no byte order
// of its own.
func appendPayload(buf *pool.ByteBuffer, enc rle.Encoding) {
	buf.Grow(3 * enc.NumRuns() * binary.MaxVarintLen64)

	var temp [binary.MaxVarintLen64]byte
	appendBitsDelta(buf, temp[:], enc.StartTimes)
	appendBitsDelta(buf, temp[:], enc.EndTimes)

	for _, n := range enc.RunLengths {
		w := binary.PutUvarint(temp[:], uint64(n))
		buf.MustWrite(temp[:w])
	}
}

// appendBitsDelta writes one boundary-time section: full uvarint bit pattern
// for the first value, zigzag+uvarint bit-pattern deltas after that.
func appendBitsDelta(buf *pool.ByteBuffer, temp []byte, values []float64) {
	var prev uint64
	for i, v := range values {
		bits := math.Float64bits(v)
		if i == 0 {
			w := binary.PutUvarint(temp, bits)
			buf.MustWrite(temp[:w])
		} else {
			// Two's-complement wraparound keeps the delta exact for any
			// pair of bit patterns.
			delta := int64(bits - prev)
			zigzag := uint64(delta<<1) ^ uint64(delta>>63)
			w := binary.PutUvarint(temp, zigzag)
			buf.MustWrite(temp[:w])
		}
		prev = bits
	}
}

// decodeBitsDelta reads count values written by appendBitsDelta from data,
// returning the bytes consumed.
func decodeBitsDelta(data []byte, count int, out []float64) (int, error) {
	offset := 0
	var prev uint64
	for i := 0; i < count; i++ {
		raw, w := binary.Uvarint(data[offset:])
		if w <= 0 {
			return 0, fmt.Errorf("%w: boundary time %d of %d",
				errs.ErrPayloadTruncated, i, count)
		}
		offset += w

		if i == 0 {
			prev = raw
		} else {
			delta := int64(raw>>1) ^ -int64(raw&1)
			prev += uint64(delta)
		}
		out[i] = math.Float64frombits(prev)
	}

	return offset, nil
}

// decodePayload parses a payload produced by appendPayload back into an
// Encoding with runCount runs. It returns an error wrapping
// errs.ErrPayloadTruncated when data ends before all sections are complete.
func decodePayload(data []byte, runCount int) (rle.Encoding, error) {
	enc := rle.Encoding{
		StartTimes: make([]float64, runCount),
		EndTimes:   make([]float64, runCount),
		RunLengths: make([]int, runCount),
	}

	offset, err := decodeBitsDelta(data, runCount, enc.StartTimes)
	if err != nil {
		return rle.Encoding{}, err
	}
	w, err := decodeBitsDelta(data[offset:], runCount, enc.EndTimes)
	if err != nil {
		return rle.Encoding{}, err
	}
	offset += w

	for i := range enc.RunLengths {
		n, w := binary.Uvarint(data[offset:])
		if w <= 0 {
			return rle.Encoding{}, fmt.Errorf("%w: run length %d of %d",
				errs.ErrPayloadTruncated, i, runCount)
		}
		enc.RunLengths[i] = int(n)
		offset += w
	}

	return enc, nil
}
